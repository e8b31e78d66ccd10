package uniq

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// renderer always emits ANSI sequences, whether or not the output is a
// terminal: styling is chosen by flags, not detected.
var renderer = func() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)
	return r
}()

// Theme holds the styles for the count prefix and the verbose header.
type Theme struct {
	count  lipgloss.Style
	header lipgloss.Style
}

// PlainTheme leaves counts unstyled. The header is still bold.
func PlainTheme() Theme {
	return Theme{
		count:  renderer.NewStyle(),
		header: renderer.NewStyle().Bold(true).TabWidth(lipgloss.NoTabConversion),
	}
}

// ColorTheme shows counts in yellow and the header in bold cyan.
func ColorTheme() Theme {
	return Theme{
		count: renderer.NewStyle().Foreground(lipgloss.Color("3")),
		header: renderer.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6")).
			TabWidth(lipgloss.NoTabConversion),
	}
}

// Count styles a formatted count.
func (t Theme) Count(s string) string {
	return t.count.Render(s)
}

// Header styles the verbose header line.
func (t Theme) Header(s string) string {
	return t.header.Render(s)
}
