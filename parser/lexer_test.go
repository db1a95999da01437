package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexerLongestMatch(t *testing.T) {
	l := NewLexer()
	ident, err := l.Add(`[A-Za-z_][A-Za-z_0-9]*`)
	require.NoError(t, err)
	kw, err := l.Add(`regex`)
	require.NoError(t, err)
	shift, err := l.Add(`>>`)
	require.NoError(t, err)
	gt, err := l.Add(`>`)
	require.NoError(t, err)

	for _, test := range []struct {
		input  string
		ids    []TokenID
		length int
	}{
		{"regex(", []TokenID{ident, kw}, 5},
		{"regexp", []TokenID{ident}, 6},
		{">>x", []TokenID{shift}, 2},
		{">x", []TokenID{gt}, 1},
		{"%", nil, 0},
	} {
		test := test
		t.Run(test.input, func(t *testing.T) {
			ids, n := l.Match(test.input)
			assert.Equal(t, test.length, n)
			if test.ids == nil {
				assert.Empty(t, ids)
			} else {
				assert.Equal(t, test.ids, ids)
			}
		})
	}
}

func TestLexerTokenKeepsLeftmostFirst(t *testing.T) {
	l := NewLexer()
	alt, err := l.Add(`a|ab`)
	require.NoError(t, err)
	code, err := l.Add(`(?s:\{\{\{.*?\}\}\})`)
	require.NoError(t, err)

	ids, n := l.Match("abc")
	assert.Equal(t, []TokenID{alt}, ids)
	assert.Equal(t, 1, n)

	ids, n = l.Match("{{{x}}} {{{y}}}")
	assert.Equal(t, []TokenID{code}, ids)
	assert.Equal(t, 7, n)
}

func TestLexerSkip(t *testing.T) {
	l := NewLexer()
	ws, err := l.Add(`[ \n\r\t]+`)
	require.NoError(t, err)
	comment, err := l.Add(`(?s:/\*.*?\*/)|//[^\n]*`)
	require.NoError(t, err)
	l.AddSkipped(ws)
	l.AddSkipped(comment)

	assert.Equal(t, 0, l.Skip("x"))
	assert.Equal(t, 12, l.Skip("  /* a */ \n x"))
	assert.Equal(t, 8, l.Skip("// hi\n  x"))

	ids, n := l.Match("  ")
	assert.Empty(t, ids)
	assert.Equal(t, 0, n)
}

func TestSubLexerSharesIDs(t *testing.T) {
	l := NewLexer()
	a, err := l.Add(`a`)
	require.NoError(t, err)
	sub := l.Sub()
	b, err := sub.Add(`a`)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	ids, _ := sub.Match("a")
	assert.Equal(t, []TokenID{b}, ids)
}

func TestLexerBadPattern(t *testing.T) {
	_, err := NewLexer().Add(`[`)
	assert.Error(t, err)
}
