package uniq

import (
	"os"
	"strings"
)

// Echo returns a pipe containing the supplied string.
func Echo(s string) *Pipe {
	return NewPipe().WithReader(strings.NewReader(s))
}

// File returns a pipe that reads from the named file. If the file cannot be
// opened, the pipe's error status is set.
func File(path string) *Pipe {
	p := NewPipe()
	f, err := os.Open(path)
	if err != nil {
		return p.WithError(err)
	}
	return p.WithReader(f)
}

// Slice returns a pipe containing each element of lines as a separate line.
// An element containing a newline will, naturally, read back as more than one
// line.
func Slice(lines []string) *Pipe {
	if len(lines) == 0 {
		return NewPipe()
	}
	return Echo(strings.Join(lines, "\n") + "\n")
}

// Stdin returns a pipe that reads from the program's standard input.
func Stdin() *Pipe {
	return NewPipe().WithReader(os.Stdin)
}

// IsRegularFile reports whether path names an existing regular file, after
// following symlinks. Directories, devices, and missing paths all report
// false.
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
