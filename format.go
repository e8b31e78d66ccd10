package uniq

import "fmt"

// StdinLabel is the source name shown in the verbose header when input comes
// from standard input.
const StdinLabel = "stdin"

// countWidth is the minimum width of the right-aligned count prefix.
const countWidth = 4

// Options selects which distinct lines are output, and how.
type Options struct {
	// Count prefixes each line with its number of occurrences.
	Count bool
	// Duplicates drops lines that occur only once.
	Duplicates bool
	// Unique drops lines that occur more than once.
	Unique bool
	// Color styles the count prefix and header with ANSI escapes.
	Color bool
	// Verbose emits a header naming the source before any lines.
	Verbose bool
	// Label is the source name used in the header. Empty means stdin.
	Label string
}

// Keep reports whether a line occurring count times survives the selection.
// Duplicates and Unique are applied independently, so setting both keeps
// nothing.
func (o Options) Keep(count int) bool {
	if o.Duplicates && count < 2 {
		return false
	}
	if o.Unique && count > 1 {
		return false
	}
	return true
}

func (o Options) label() string {
	if o.Label == "" {
		return StdinLabel
	}
	return o.Label
}

func (o Options) theme() Theme {
	if o.Color {
		return ColorTheme()
	}
	return PlainTheme()
}

// Render collapses lines to their distinct values in first-seen order, keeps
// those selected by opts, and returns the output lines, without terminating
// newlines. If opts.Verbose is set, the first element is the header.
func Render(lines []string, opts Options) []string {
	table := Tally(lines)
	theme := opts.theme()
	out := make([]string, 0, table.Len()+1)
	if opts.Verbose {
		out = append(out, theme.Header(fmt.Sprintf("==> %s <==", opts.label())))
	}
	for _, e := range table.Select(opts) {
		if !opts.Count {
			out = append(out, e.Line)
			continue
		}
		prefix := theme.Count(fmt.Sprintf("%*d", countWidth, e.Count))
		out = append(out, prefix+" "+e.Line)
	}
	return out
}
