package uniq

import (
	"io"
	"os"
	"strings"
)

// Pipe represents a stream of input lines, together with an error status and
// the writer that the Stdout sink writes to.
type Pipe struct {
	reader io.ReadCloser
	err    error
	stdout io.Writer
}

// NewPipe returns a pointer to a new empty pipe, whose Stdout sink writes to
// os.Stdout.
func NewPipe() *Pipe {
	return &Pipe{
		reader: newLineReader(strings.NewReader("")),
		stdout: os.Stdout,
	}
}

// Close closes the pipe's underlying source, if it is closable. It is safe
// to call Close more than once, and on a nil pipe.
func (p *Pipe) Close() error {
	if p == nil || p.reader == nil {
		return nil
	}
	return p.reader.Close()
}

// Error returns the error status of the pipe, or nil if no operation on it
// has failed.
func (p *Pipe) Error() error {
	if p == nil {
		return nil
	}
	return p.err
}

// Read reads decoded input from the pipe into b. At the end of input, or on a
// nil pipe, Read returns 0, io.EOF.
func (p *Pipe) Read(b []byte) (int, error) {
	if p == nil || p.reader == nil {
		return 0, io.EOF
	}
	return p.reader.Read(b)
}

// SetError sets the pipe's error status to err. A non-nil error also closes
// the pipe's source, since nothing will read from it again.
func (p *Pipe) SetError(err error) {
	if p == nil {
		return
	}
	if err != nil {
		p.Close()
	}
	p.err = err
}

// WithError sets the pipe's error status to err and returns the pipe.
func (p *Pipe) WithError(err error) *Pipe {
	p.SetError(err)
	return p
}

// WithReader makes r the pipe's source. Input read from r is decoded as
// UTF-8, with any invalid byte sequences replaced by U+FFFD, and r is closed
// (if it is an io.Closer) once it has been read to the end.
func (p *Pipe) WithReader(r io.Reader) *Pipe {
	if p == nil {
		return nil
	}
	p.reader = newLineReader(r)
	return p
}

// WithStdout makes w the destination of the pipe's Stdout sink, instead of
// os.Stdout. This is mostly useful for testing.
func (p *Pipe) WithStdout(w io.Writer) *Pipe {
	if p == nil {
		return nil
	}
	p.stdout = w
	return p
}
