package dsl

import (
	"github.com/arr-ai/combgen/ast"
	"github.com/arr-ai/combgen/parser"
)

// namedBody parses `keyword name : expr`.
func (c *Compiler) namedBody(st *parser.Stream, keyword parser.Recognizer) (name string, body ast.Node, ok bool) {
	mark := st.Mark()
	if keyword.Recognize(st) {
		if tok, ok := c.identifier.Parse(st); ok && c.colon.Recognize(st) {
			if body, ok := c.expr(st); ok {
				return tok.String(), body, true
			}
		}
	}
	st.Reset(mark)
	return "", nil, false
}

func (c *Compiler) fragmentRule(st *parser.Stream) (n ast.Node, ok bool) {
	defer c.enterf("fragmentRule").exit(&ok)

	begin := st.Begin(c.main)
	name, body, ok := c.namedBody(st, c.kwFragment)
	if !ok {
		return nil, false
	}
	return ast.FragmentRule{Span: c.span(begin, st), Name: name, Body: body}, true
}

func (c *Compiler) regexRule(st *parser.Stream) (n ast.Node, ok bool) {
	defer c.enterf("regexRule").exit(&ok)

	begin := st.Begin(c.main)
	name, body, ok := c.namedBody(st, c.kwRegex)
	if !ok {
		return nil, false
	}
	return ast.RegexRule{Span: c.span(begin, st), Name: name, Body: body}, true
}

// typedHeader parses `name` or `name<type>`. The slot is left unassigned.
func (c *Compiler) typedHeader(st *parser.Stream) (h ast.TypedRuleHeader, ok bool) {
	defer c.enterf("typedHeader").exit(&ok)

	begin := st.Begin(c.main)
	tok, ok := c.identifier.Parse(st)
	if !ok {
		return h, false
	}
	h = ast.TypedRuleHeader{Name: tok.String(), Slot: ast.NoSlot}
	mark := st.Mark()
	if c.lt.Recognize(st) {
		if typ, ok := c.elementary(st); ok && c.gt.Recognize(st) {
			h.Type = typ
		} else {
			st.Reset(mark)
		}
	}
	h.Span = c.span(begin, st)
	return h, true
}

func (c *Compiler) parserRule(st *parser.Stream) (n ast.Node, ok bool) {
	defer c.enterf("parserRule").exit(&ok)

	begin := st.Begin(c.main)
	mark := st.Mark()
	if h, ok := c.typedHeader(st); ok && c.colon.Recognize(st) {
		if body, ok := c.expr(st); ok {
			return ast.ParserRule{Span: c.span(begin, st), Header: h, Body: body}, true
		}
	}
	st.Reset(mark)
	return nil, false
}

func (c *Compiler) rule(st *parser.Stream) (n ast.Node, ok bool) {
	defer c.enterf("rule").exit(&ok)

	for _, r := range []func(*parser.Stream) (ast.Node, bool){c.fragmentRule, c.regexRule, c.parserRule} {
		if n, ok := r(st); ok {
			return n, true
		}
	}
	return nil, false
}

// statement parses `rule ;` or a bare code block.
func (c *Compiler) statement(st *parser.Stream) (n ast.Node, ok bool) {
	defer c.enterf("statement").exit(&ok)

	mark := st.Mark()
	if n, ok := c.rule(st); ok {
		if c.semi.Recognize(st) {
			return n, true
		}
		st.Reset(mark)
		return nil, false
	}
	if code, ok := c.codeBlock(st); ok {
		return code, true
	}
	return nil, false
}

// grammar parses `grammar name { statement* }` and allocates a forward declaration slot for
// every typed parser rule, in declaration order.
func (c *Compiler) grammar(st *parser.Stream) (g ast.Grammar, ok bool) {
	defer c.enterf("grammar").exit(&ok)

	begin := st.Begin(c.main)
	mark := st.Mark()
	fail := func() (ast.Grammar, bool) {
		st.Reset(mark)
		return ast.Grammar{}, false
	}
	if !c.kwGrammar.Recognize(st) {
		return fail()
	}
	tok, ok := c.identifier.Parse(st)
	if !ok || !c.lbrace.Recognize(st) {
		return fail()
	}
	g.Name = tok.String()
	for {
		s, ok := c.statement(st)
		if !ok {
			break
		}
		if pr, typed := s.(ast.ParserRule); typed && pr.Header.IsTyped() {
			pr.Header.Slot = len(g.Slots)
			g.Slots = append(g.Slots, pr.Header)
			s = pr
		}
		g.Statements = append(g.Statements, s)
	}
	if !c.rbrace.Recognize(st) {
		return fail()
	}
	g.Span = c.span(begin, st)
	return g, true
}

func (c *Compiler) program(st *parser.Stream) (p ast.Program, ok bool) {
	defer c.enterf("program").exit(&ok)

	begin := st.Begin(c.main)
	if code, ok := c.codeBlock(st); ok {
		p.Header = code.Code
	}
	if p.Grammar, ok = c.grammar(st); !ok {
		return ast.Program{}, false
	}
	p.Span = c.span(begin, st)
	return p, true
}
