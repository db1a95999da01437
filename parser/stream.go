package parser

import (
	"strings"

	"github.com/arr-ai/frozen"
)

// Stream is a backtracking cursor over a Scanner. Besides the current position it remembers
// the furthest token ever consumed and the tokens that were tried just after it, which is
// what a failed parse reports.
type Stream struct {
	input    Scanner
	last     Scanner
	furthest Scanner

	expected   frozen.Set
	expectedAt int
	rejected   error
	rejectedAt int
}

// Mark is a saved Stream position.
type Mark struct {
	input Scanner
	last  Scanner
}

func NewStream(input *Scanner) *Stream {
	return &Stream{
		input:      *input,
		last:       *input.Slice(0, 0),
		furthest:   *input.Slice(0, 0),
		expected:   frozen.NewSet(),
		expectedAt: -1,
		rejectedAt: -1,
	}
}

func (st *Stream) Mark() Mark {
	return Mark{input: st.input, last: st.last}
}

func (st *Stream) Reset(m Mark) {
	st.input = m.input
	st.last = m.last
}

// Begin skips t's skip tokens and returns the offset of the next significant byte.
func (st *Stream) Begin(t Tokenizer) int {
	st.skip(t)
	return st.input.Offset()
}

// LastEnd is the end offset of the most recently consumed token.
func (st *Stream) LastEnd() int {
	return st.last.End()
}

// Remaining is the unconsumed input.
func (st *Stream) Remaining() Scanner {
	return st.input
}

// AtEnd reports whether only skip tokens of t remain.
func (st *Stream) AtEnd(t Tokenizer) bool {
	st.skip(t)
	if st.input.Len() == 0 {
		return true
	}
	st.expect("end of input")
	return false
}

func (st *Stream) skip(t Tokenizer) {
	if n := t.Skip(st.input.String()); n > 0 {
		st.input = *st.input.Skip(n)
	}
}

func (st *Stream) match(t Tokenizer, id TokenID, name string) (Scanner, bool) {
	st.skip(t)
	ids, n := t.Match(st.input.String())
	if n > 0 {
		for _, i := range ids {
			if i == id {
				var eaten Scanner
				st.input.Eat(n, &eaten)
				st.consumed(eaten)
				return eaten, true
			}
		}
	}
	st.expect(name)
	return Scanner{}, false
}

func (st *Stream) consumed(tok Scanner) {
	st.last = tok
	if tok.End() > st.furthest.End() {
		st.furthest = tok
	}
}

func (st *Stream) expect(name string) {
	switch at := st.input.Offset(); {
	case at > st.expectedAt:
		st.expected = frozen.NewSet(name)
		st.expectedAt = at
	case at == st.expectedAt:
		st.expected = st.expected.With(name)
	}
}

// Reject records that a token was recognised but its value could not be built.
func (st *Stream) Reject(tok Scanner, err error) {
	if tok.Offset() >= st.rejectedAt {
		st.rejected = err
		st.rejectedAt = tok.Offset()
	}
}

// Error describes why rule could not be matched.
func (st *Stream) Error(rule string) *ParseError {
	expected := make([]string, 0, st.expected.Count())
	for _, e := range st.expected.OrderedElements(func(a, b interface{}) bool {
		return strings.Compare(a.(string), b.(string)) < 0
	}) {
		expected = append(expected, e.(string))
	}
	pe := &ParseError{
		rule:     rule,
		at:       st.furthest,
		expected: expected,
	}
	if st.rejected != nil && st.rejectedAt >= st.expectedAt {
		pe.rejected = st.rejected
	}
	return pe
}
