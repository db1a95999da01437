package parser

import (
	"fmt"
	"strings"
)

// Scanner is a window onto a source. Slicing a scanner keeps offsets relative to the
// original source, so sub-lexers report positions in the enclosing file.
type Scanner struct {
	src         source // the source the scanner is drawing from
	sliceStart  int    // the start of the slice visible to the scanner, based on the original src
	sliceLength int    // the length of the slice visible to the scanner, based on the original src
}

type source interface {
	length() int                // the length of the entire source string
	slice(i, length int) string // the string of the given slice
	filename() string           // the name of the file from which the source is derived (or empty if none)
}

type stringSource struct {
	origin string // the entire source string
	f      string // the source filename
}

func NewScanner(str string) *Scanner {
	return &Scanner{stringSource{origin: str}, 0, len(str)}
}

func NewScannerWithFilename(str, filename string) *Scanner {
	return &Scanner{stringSource{str, filename}, 0, len(str)}
}

// - Scanner

// The name of the file from which the source is derived (or empty if none).
func (s Scanner) Filename() string {
	if s.src == nil {
		return ""
	}
	return s.src.filename()
}

func (s Scanner) String() string {
	if s.src == nil {
		return ""
	}
	return s.slice()
}

func (s Scanner) Format(state fmt.State, c rune) {
	if c == 'q' {
		_, _ = fmt.Fprintf(state, "%q", s.String())
	} else {
		_, _ = state.Write([]byte(s.String()))
	}
}

var (
	NoLimit      = -1
	DefaultLimit = 1
)

// Context renders the scanner's slice highlighted within its surrounding lines.
func (s Scanner) Context(limitLines int) string {
	end := s.sliceStart + s.sliceLength
	lineno, colno := s.Position()

	aboveCxt := s.src.slice(0, s.sliceStart)
	belowCxt := s.src.slice(end, s.src.length()-end)
	if limitLines != NoLimit {
		a := strings.Split(aboveCxt, "\n")
		if len(a) > limitLines {
			aboveCxt = strings.Join(a[len(a)-limitLines-1:], "\n")
		}
		b := strings.Split(belowCxt, "\n")
		if len(b) > limitLines {
			belowCxt = strings.Join(b[:limitLines], "\n")
		}
	}

	return fmt.Sprintf("\n\033[1;37m%s:%d:%d:\033[0m\n%s\033[1;31m%s\033[0m%s",
		s.Filename(),
		lineno,
		colno,
		aboveCxt,
		s.slice(),
		belowCxt,
	)
}

// The position of the start of the scanner within the original source.
func (s Scanner) Offset() int {
	return s.sliceStart
}

// The position just past the end of the scanner within the original source.
func (s Scanner) End() int {
	return s.sliceStart + s.sliceLength
}

func (s Scanner) Len() int {
	return s.sliceLength
}

// The 1-indexed line and column number of the start of the scanner within the original source.
func (s Scanner) Position() (int, int) {
	return lineColumn(s.src.slice(0, s.sliceStart), s.sliceStart)
}

// The slice that is visible to the scanner
func (s Scanner) slice() string {
	return s.src.slice(s.sliceStart, s.sliceLength)
}

func (s Scanner) Slice(a, b int) *Scanner {
	return &Scanner{s.src, s.sliceStart + a, b - a}
}

func (s Scanner) Skip(i int) *Scanner {
	return &Scanner{s.src, s.sliceStart + i, s.sliceLength - i}
}

// Eat returns a scanner containing the next i bytes and advances s past them.
func (s *Scanner) Eat(i int, eaten *Scanner) *Scanner {
	eaten.src = s.src
	eaten.sliceStart = s.sliceStart
	eaten.sliceLength = i
	*s = *s.Skip(i)
	return s
}

// - stringSource

func (s stringSource) length() int {
	return len(s.origin)
}

func (s stringSource) slice(i, length int) string {
	// Offsets come from the original source, so clamp rather than panic on a stale window.
	if i < 0 || length < 0 || i+length > len(s.origin) {
		return s.origin
	}
	return s.origin[i : i+length]
}

func (s stringSource) filename() string {
	return s.f
}

// The 1-indexed line and column number of the given position within the given string.
func lineColumn(str string, pos int) (line, col int) {
	prefix := str[:pos]
	line = strings.Count(prefix, "\n") + 1
	col = pos - strings.LastIndex(prefix, "\n")
	return
}
