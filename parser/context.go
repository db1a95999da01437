package parser

import (
	"regexp"
	"strconv"
)

// Context registers tokens with a Tokenizer and hands back recognizers for them. Every
// independent lexical scope gets its own Context.
type Context struct {
	tokenizer Tokenizer
}

func NewContext(tokenizer Tokenizer) *Context {
	return &Context{tokenizer: tokenizer}
}

func (c *Context) Tokenizer() Tokenizer {
	return c.tokenizer
}

func (c *Context) add(pattern string) TokenID {
	id, err := c.tokenizer.Add(pattern)
	if err != nil {
		panic(err)
	}
	return id
}

// Token registers a regex token named name and returns a recognizer yielding its text.
func (c *Context) Token(name, pattern string) Token {
	return Token{id: c.add(pattern), name: name, tokenizer: c.tokenizer}
}

// Text registers literal text as a recognizer whose match carries no value.
func (c *Context) Text(text string) Recognizer {
	return Recognizer{Token{
		id:        c.add(regexp.QuoteMeta(text)),
		name:      strconv.Quote(text),
		tokenizer: c.tokenizer,
	}}
}

// Mapped registers a regex token whose text is turned into a value by fn.
func Mapped[T any](c *Context, name, pattern string, fn func(Scanner) (T, error)) Mapping[T] {
	return Mapping[T]{token: c.Token(name, pattern), fn: fn}
}

// Token recognizes one registered token.
type Token struct {
	id        TokenID
	name      string
	tokenizer Tokenizer
}

func (t Token) ID() TokenID    { return t.id }
func (t Token) String() string { return t.name }

// Parse consumes the token, returning its text.
func (t Token) Parse(st *Stream) (Scanner, bool) {
	return st.match(t.tokenizer, t.id, t.name)
}

// Recognizer matches fixed text.
type Recognizer struct {
	token Token
}

func (r Recognizer) String() string { return r.token.name }

func (r Recognizer) Recognize(st *Stream) bool {
	_, ok := r.token.Parse(st)
	return ok
}

// Mapping is a token whose text is converted to a value.
type Mapping[T any] struct {
	token Token
	fn    func(Scanner) (T, error)
}

func (m Mapping[T]) String() string { return m.token.name }

// Parse consumes the token and maps it. A mapping error leaves the stream where it was
// and is kept for the error report.
func (m Mapping[T]) Parse(st *Stream) (T, bool) {
	var zero T
	mark := st.Mark()
	tok, ok := m.token.Parse(st)
	if !ok {
		return zero, false
	}
	v, err := m.fn(tok)
	if err != nil {
		st.Reject(tok, err)
		st.Reset(mark)
		return zero, false
	}
	return v, true
}
