package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScannerLineColumn(t *testing.T) {
	scanner := NewScanner("one\ntwo\nthree\nfour")

	// test the scanner starts at position 1,1
	assertLineColumn(t, scanner, 1, 1)

	// eat within the same line:
	// test the eaten scanner is left at the existing position
	// test the scanner is advanced within the line
	eaten := Scanner{}
	scanner.Eat(1, &eaten)
	assertLineColumn(t, &eaten, 1, 1)
	assertLineColumn(t, scanner, 1, 2)

	// eat a line
	scanner.Eat(3, &eaten)
	assertLineColumn(t, &eaten, 1, 2)
	assertLineColumn(t, scanner, 2, 1)

	// eat multiple lines and into a column
	scanner.Eat(12, &eaten)
	assertLineColumn(t, &eaten, 2, 1)
	assertLineColumn(t, scanner, 4, 3)
}

func assertLineColumn(t *testing.T, scanner *Scanner, line, column int) {
	l, c := scanner.Position()
	assert.Equal(t, line, l)
	assert.Equal(t, column, c)
}

func TestScannerSliceKeepsOffsets(t *testing.T) {
	s := NewScannerWithFilename("grammar g { x: 'a'; }", "g.grammar")
	inner := s.Slice(12, 13)
	assert.Equal(t, "x", inner.String())
	assert.Equal(t, 12, inner.Offset())
	assert.Equal(t, 13, inner.End())
	assert.Equal(t, "g.grammar", inner.Filename())

	sub := inner.Slice(0, 1)
	assert.Equal(t, 12, sub.Offset())
}

func TestScannerContext(t *testing.T) {
	s := NewScannerWithFilename("one\ntwo\nthree", "f")
	ctx := s.Slice(4, 7).Context(DefaultLimit)
	assert.Contains(t, ctx, "f:2:1:")
	assert.Contains(t, ctx, "two")
}
