package uniq

import (
	"strings"
)

// Uniq reads the whole of the pipe, and returns it reading only the distinct
// lines of the input, in the order each was first seen, as selected and
// formatted by opts. Unlike uniq(1), duplicates need not be adjacent to be
// collapsed. If there is an error reading the pipe, the pipe's error status
// is also set.
func (p *Pipe) Uniq(opts Options) *Pipe {
	if p == nil || p.Error() != nil {
		return p
	}
	lines, err := p.Lines()
	if err != nil {
		return p
	}
	var output strings.Builder
	for _, line := range Render(lines, opts) {
		output.WriteString(line)
		output.WriteByte('\n')
	}
	return p.WithReader(strings.NewReader(output.String()))
}

// Freq reads the whole of the pipe, and returns it reading each distinct line
// of the input once, prefixed by its number of occurrences, in the order each
// line was first seen. It is shorthand for Uniq(Options{Count: true}).
func (p *Pipe) Freq() *Pipe {
	return p.Uniq(Options{Count: true})
}

// Duplicates returns the pipe reading only those distinct lines that occur
// more than once in the input, in first-seen order.
func (p *Pipe) Duplicates() *Pipe {
	return p.Uniq(Options{Duplicates: true})
}

// Unique returns the pipe reading only those lines that occur exactly once in
// the input, in their original order.
func (p *Pipe) Unique() *Pipe {
	return p.Uniq(Options{Unique: true})
}
