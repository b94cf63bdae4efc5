package qualifier

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 is the cause of a KindIO error for a streamed line that is not UTF-8.
// The offending line is consumed, so the next read starts on the following line.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// LineSource yields logical lines with their terminator stripped.
// NextLine returns io.EOF once the input is drained.
type LineSource interface {
	NextLine() (string, error)
}

// StringLines splits an in-memory string; lines share its backing array
type StringLines struct {
	rest string
	done bool
}

// NewStringLines returns a source over s
func NewStringLines(s string) *StringLines {
	return &StringLines{rest: s, done: s == ""}
}

// NextLine never fails; the only error is io.EOF
func (s *StringLines) NextLine() (string, error) {
	if s.done {
		return "", io.EOF
	}
	i := strings.IndexByte(s.rest, '\n')
	if i < 0 {
		line := s.rest
		s.rest, s.done = "", true
		return line, nil
	}
	line := s.rest[:i]
	s.rest = s.rest[i+1:]
	if s.rest == "" {
		s.done = true
	}
	return strings.TrimSuffix(line, "\r"), nil
}

// StreamLines reads lines from a byte stream, allocating one string per line
type StreamLines struct {
	br   *bufio.Reader
	done bool
}

// NewStreamLines wraps r; an existing *bufio.Reader is used as is
func NewStreamLines(r io.Reader) *StreamLines {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &StreamLines{br: br}
}

// NextLine returns the next line, io.EOF at end of input, or a *ParseError of KindIO
// for a failed read or a line that is not valid UTF-8
func (s *StreamLines) NextLine() (string, error) {
	if s.done {
		return "", io.EOF
	}
	line, err := s.br.ReadString('\n')
	switch {
	case err == nil:
		line = strings.TrimSuffix(line[:len(line)-1], "\r")
	case errors.Is(err, io.EOF):
		s.done = true
		if line == "" {
			return "", io.EOF
		}
		// unterminated final line
	default:
		return "", &ParseError{Kind: KindIO, Err: err}
	}
	if !utf8.ValidString(line) {
		return "", &ParseError{Kind: KindIO, Err: ErrInvalidUTF8}
	}
	return line, nil
}
