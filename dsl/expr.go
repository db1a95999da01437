package dsl

import (
	"github.com/arr-ai/combgen/ast"
	"github.com/arr-ai/combgen/charset"
	"github.com/arr-ai/combgen/parser"
)

func (c *Compiler) elementary(st *parser.Stream) (n ast.Node, ok bool) {
	defer c.enterf("elementary").exit(&ok)

	begin := st.Begin(c.main)
	mark := st.Mark()
	if c.lparen.Recognize(st) {
		if inner, ok := c.expr(st); ok && c.rparen.Recognize(st) {
			return inner, true
		}
		st.Reset(mark)
		return nil, false
	}
	if n, committed, ok := c.tryRegexCall(st); ok || committed {
		return n, ok
	}
	if tok, ok := c.identifier.Parse(st); ok {
		return ast.Identifier{Span: c.span(begin, st), Name: tok.String()}, true
	}
	if s, ok := c.rawString.Parse(st); ok {
		return ast.StringLiteral{Span: c.span(begin, st), Value: s}, true
	}
	if s, ok := c.escString.Parse(st); ok {
		return ast.StringLiteral{Span: c.span(begin, st), Value: s}, true
	}
	if n, ok := c.codeBlock(st); ok {
		return n, true
	}
	if c.dot.Recognize(st) {
		return ast.CharacterSet{Span: c.span(begin, st), Set: charset.All()}, true
	}
	if set, ok := c.charSet.Parse(st); ok {
		return ast.CharacterSet{Span: c.span(begin, st), Set: set}, true
	}
	return nil, false
}

func (c *Compiler) codeBlock(st *parser.Stream) (ast.CodeBlock, bool) {
	begin := st.Begin(c.main)
	if code, ok := c.mlCode.Parse(st); ok {
		return ast.CodeBlock{Span: c.span(begin, st), Code: code, Multiline: true}, true
	}
	if code, ok := c.slCode.Parse(st); ok {
		return ast.CodeBlock{Span: c.span(begin, st), Code: code}, true
	}
	return ast.CodeBlock{}, false
}

// regexCall parses regex(expr) or regex(expr, mapping).
func (c *Compiler) regexCall(st *parser.Stream) (n ast.Node, ok bool) {
	n, _, ok = c.tryRegexCall(st)
	return n, ok
}

// tryRegexCall parses a regex call. Once `regex (` has matched the call is committed: a
// failure after that point is final and the caller must not read `regex` as an identifier.
func (c *Compiler) tryRegexCall(st *parser.Stream) (n ast.Node, committed, ok bool) {
	defer c.enterf("regexCall").exit(&ok)

	begin := st.Begin(c.main)
	mark := st.Mark()
	if !c.kwRegex.Recognize(st) || !c.lparen.Recognize(st) {
		st.Reset(mark)
		return nil, false, false
	}
	re, ok := c.expr(st)
	if !ok {
		st.Reset(mark)
		return nil, true, false
	}
	var mapping ast.Node
	if c.comma.Recognize(st) {
		if mapping, ok = c.elementary(st); !ok {
			st.Reset(mark)
			return nil, true, false
		}
	}
	if !c.rparen.Recognize(st) {
		st.Reset(mark)
		return nil, true, false
	}
	return ast.RegexCall{Span: c.span(begin, st), Regex: re, Mapping: mapping}, true, true
}

// countRange parses the {m}, {m,} and {m,n} suffixes.
func (c *Compiler) countRange(st *parser.Stream) (lo, hi int, ok bool) {
	mark := st.Mark()
	fail := func() (int, int, bool) {
		st.Reset(mark)
		return 0, 0, false
	}
	if !c.lbrace.Recognize(st) {
		return fail()
	}
	if lo, ok = c.num.Parse(st); !ok {
		return fail()
	}
	hi = lo
	if c.comma.Recognize(st) {
		hi = ast.Unbounded
		if n, ok := c.num.Parse(st); ok {
			hi = n
		}
	}
	if !c.rbrace.Recognize(st) {
		return fail()
	}
	return lo, hi, true
}

func (c *Compiler) basic(st *parser.Stream) (n ast.Node, ok bool) {
	defer c.enterf("basic").exit(&ok)

	begin := st.Begin(c.main)
	inner, ok := c.elementary(st)
	if !ok {
		return nil, false
	}
	switch {
	case c.star.Recognize(st):
		return ast.Star{Span: c.span(begin, st), Inner: inner}, true
	case c.plus.Recognize(st):
		return ast.Plus{Span: c.span(begin, st), Inner: inner}, true
	case c.question.Recognize(st):
		return ast.Optional{Span: c.span(begin, st), Inner: inner}, true
	case c.bang.Recognize(st):
		return ast.NonGreedy{Span: c.span(begin, st), Inner: inner}, true
	}
	if lo, hi, ok := c.countRange(st); ok {
		return ast.CountRange{Span: c.span(begin, st), Inner: inner, Lo: lo, Hi: hi}, true
	}
	return inner, true
}

func (c *Compiler) extended(st *parser.Stream) (n ast.Node, ok bool) {
	defer c.enterf("extended").exit(&ok)

	begin := st.Begin(c.main)
	if n, ok = c.basic(st); !ok {
		return nil, false
	}
	for {
		mark := st.Mark()
		switch {
		case c.fold.Recognize(st):
			if operand, ok := c.elementary(st); ok {
				n = ast.Fold{Span: c.span(begin, st), Inner: n, Combinator: operand}
				continue
			}
		case c.annotate.Recognize(st):
			if operand, ok := c.elementary(st); ok {
				n = ast.Annotate{Span: c.span(begin, st), Inner: n, Marker: operand}
				continue
			}
		}
		st.Reset(mark)
		return n, true
	}
}

func (c *Compiler) concat(st *parser.Stream) (n ast.Node, ok bool) {
	defer c.enterf("concat").exit(&ok)

	begin := st.Begin(c.main)
	if n, ok = c.extended(st); !ok {
		return nil, false
	}
	for {
		right, ok := c.extended(st)
		if !ok {
			return n, true
		}
		n = ast.Concat{Span: c.span(begin, st), Left: n, Right: right}
	}
}

func (c *Compiler) union(st *parser.Stream) (n ast.Node, ok bool) {
	defer c.enterf("union").exit(&ok)

	begin := st.Begin(c.main)
	if n, ok = c.concat(st); !ok {
		return nil, false
	}
	for {
		mark := st.Mark()
		if !c.bar.Recognize(st) {
			return n, true
		}
		right, ok := c.concat(st)
		if !ok {
			st.Reset(mark)
			return n, true
		}
		n = ast.Union{Span: c.span(begin, st), Left: n, Right: right}
	}
}

func (c *Compiler) expr(st *parser.Stream) (ast.Node, bool) {
	return c.union(st)
}
