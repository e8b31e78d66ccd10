package uniq

import (
	"fmt"
	"io"
)

// Lines reads the whole of the pipe and returns its contents as a slice of
// lines, with line endings removed. Empty input gives a nil slice. If there
// is an error reading the pipe, the pipe's error status is also set.
func (p *Pipe) Lines() ([]string, error) {
	if p == nil {
		return nil, nil
	}
	if p.Error() != nil {
		return nil, p.Error()
	}
	defer p.Close()
	var lines []string
	err := scanLines(p, func(line string) {
		lines = append(lines, line)
	})
	if err != nil {
		p.SetError(err)
		return nil, err
	}
	return lines, nil
}

// String returns the contents of the pipe as a string, or an error, and
// closes the pipe after reading. If there is an error reading, the pipe's
// error status is also set.
func (p *Pipe) String() (string, error) {
	if p == nil {
		return "", nil
	}
	if p.Error() != nil {
		return "", p.Error()
	}
	defer p.Close()
	data, err := io.ReadAll(p)
	if err != nil {
		p.SetError(err)
		return "", err
	}
	return string(data), nil
}

// Stdout writes the contents of the pipe to the pipe's standard output (see
// WithStdout). It returns the number of bytes written, or an error. If the
// pipe has error status, Stdout writes nothing and returns that error.
func (p *Pipe) Stdout() (int, error) {
	if p == nil {
		return 0, nil
	}
	if p.Error() != nil {
		return 0, p.Error()
	}
	output, err := p.String()
	if err != nil {
		return 0, err
	}
	n, err := fmt.Fprint(p.stdout, output)
	if err != nil {
		p.SetError(err)
	}
	return n, err
}
