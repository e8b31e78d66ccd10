package uniq

import (
	"bufio"
	"bytes"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// maxLineLength is the longest single line the scanner will accept.
const maxLineLength = 1 << 30

// lineReader decodes its source as UTF-8, replacing malformed byte sequences
// with U+FFFD rather than failing, and closes the source once it has been
// read to the end.
type lineReader struct {
	src     io.Reader
	decoded io.Reader
}

func newLineReader(src io.Reader) *lineReader {
	return &lineReader{
		src:     src,
		decoded: transform.NewReader(src, unicode.UTF8.NewDecoder()),
	}
}

func (l *lineReader) Read(b []byte) (int, error) {
	n, err := l.decoded.Read(b)
	if err == io.EOF {
		l.Close()
	}
	return n, err
}

// Close closes the source if it is closable. Errors from closing an
// already-closed source are the caller's to ignore.
func (l *lineReader) Close() error {
	c, ok := l.src.(io.Closer)
	if !ok {
		return nil
	}
	return c.Close()
}

// scanLines calls fn with each line read from r, stripped of its line
// ending. A final line with no line ending is still reported.
func scanLines(r io.Reader, fn func(string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 4096), maxLineLength)
	scanner.Split(splitLines)
	for scanner.Scan() {
		fn(scanner.Text())
	}
	return scanner.Err()
}

// splitLines is a bufio.SplitFunc that ends a line at "\n", "\r\n", or a
// lone "\r".
func splitLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	i := bytes.IndexAny(data, "\r\n")
	switch {
	case i < 0:
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	case data[i] == '\n':
		return i + 1, data[:i], nil
	case i+1 < len(data):
		if data[i+1] == '\n' {
			return i + 2, data[:i], nil
		}
		return i + 1, data[:i], nil
	case atEOF:
		return i + 1, data[:i], nil
	}
	// A "\r" at the end of the buffer may be the start of "\r\n".
	return 0, nil, nil
}
