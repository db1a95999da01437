package parser

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() *Context {
	l := NewLexer()
	ctx := NewContext(l)
	ws := ctx.Token("ws", `[ ]+`)
	l.AddSkipped(ws.ID())
	return ctx
}

func TestContextTextAndToken(t *testing.T) {
	ctx := newTestContext()
	open := ctx.Text("(")
	ident := ctx.Token("identifier", `[a-z]+`)

	st := NewStream(NewScanner("  ( abc"))
	assert.True(t, open.Recognize(st))
	tok, ok := ident.Parse(st)
	require.True(t, ok)
	assert.Equal(t, "abc", tok.String())
	assert.Equal(t, 4, tok.Offset())
	assert.True(t, st.AtEnd(ctx.Tokenizer()))
}

func TestContextMapped(t *testing.T) {
	ctx := newTestContext()
	num := Mapped(ctx, "num", `[0-9]+`, func(s Scanner) (int, error) {
		return strconv.Atoi(s.String())
	})

	st := NewStream(NewScanner("42"))
	v, ok := num.Parse(st)
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestMappedRejectionRestores(t *testing.T) {
	ctx := newTestContext()
	bad := Mapped(ctx, "bad", `x`, func(s Scanner) (int, error) {
		return 0, errors.New("no x today")
	})

	st := NewStream(NewScanner("x"))
	_, ok := bad.Parse(st)
	assert.False(t, ok)
	assert.Equal(t, "x", st.Remaining().String())
	assert.Contains(t, st.Error("r").Error(), "no x today")
}

func TestStreamErrorReportsFurthest(t *testing.T) {
	ctx := newTestContext()
	a := ctx.Text("a")
	b := ctx.Text("b")
	c := ctx.Text("c")

	st := NewStream(NewScannerWithFilename("a a x", "t"))
	mark := st.Mark()
	require.True(t, a.Recognize(st))
	require.True(t, a.Recognize(st))
	assert.False(t, b.Recognize(st))
	assert.False(t, c.Recognize(st))
	st.Reset(mark)
	assert.False(t, b.Recognize(st))

	err := st.Error("test")
	assert.Equal(t, []string{`"b"`, `"c"`}, err.Expected())
	assert.Equal(t, 2, err.At().Offset())
	assert.Contains(t, err.Error(), `rule(test) - no match after "a" at t:1:3`)
}

func TestStreamBeginAndLastEnd(t *testing.T) {
	ctx := newTestContext()
	a := ctx.Text("ab")
	st := NewStream(NewScanner("   ab"))
	assert.Equal(t, 3, st.Begin(ctx.Tokenizer()))
	require.True(t, a.Recognize(st))
	assert.Equal(t, 5, st.LastEnd())
}

func TestParseErrorHighlightsSource(t *testing.T) {
	ctx := newTestContext()
	a := ctx.Text("a")

	st := NewStream(NewScannerWithFilename("a\nb", "t"))
	require.True(t, a.Recognize(st))
	assert.False(t, a.Recognize(st))

	msg := st.Error("test").Error()
	assert.Contains(t, msg, "source: ")
	assert.Contains(t, msg, "\033[1;31ma\033[0m")
}
