// Package dsl parses the grammar description language into an ast.Program.
package dsl

import (
	"github.com/arr-ai/combgen/ast"
	"github.com/arr-ai/combgen/charset"
	"github.com/arr-ai/combgen/parser"
)

// Compiler holds the lexical contexts of one compilation unit. A Compiler may parse any
// number of inputs, one at a time.
type Compiler struct {
	main     *parser.Lexer
	literals *literals
	depth    int

	identifier parser.Token
	num        parser.Mapping[int]
	rawString  parser.Mapping[string]
	escString  parser.Mapping[string]
	charSet    parser.Mapping[charset.Set]
	mlCode     parser.Mapping[string]
	slCode     parser.Mapping[string]

	lparen, rparen, comma, colon, semi   parser.Recognizer
	lbrace, rbrace, lt, gt               parser.Recognizer
	dot, star, plus, question, bang, bar parser.Recognizer
	fold, annotate                       parser.Recognizer
	kwFragment, kwRegex, kwGrammar       parser.Recognizer
}

func New() *Compiler {
	main := parser.NewLexer()
	ctx := parser.NewContext(main)
	c := &Compiler{main: main, literals: newLiterals(main)}

	ws := ctx.Token("whitespace", `[ \n\r\t]+`)
	comment := ctx.Token("comment", `(?s:/\*.*?\*/)|//[^\n]*`)
	main.AddSkipped(ws.ID())
	main.AddSkipped(comment.ID())

	c.identifier = ctx.Token("identifier", `[A-Za-z_][A-Za-z_0-9]*`)
	c.num = parser.Mapped(ctx, "number", `[0-9]{1,6}`, toInt)
	c.rawString = parser.Mapped(ctx, "'string'", `'(?:\\\\|\\'|[^'])*'`, unquoteRaw)
	c.escString = parser.Mapped(ctx, `"string"`, `"(?:\\(?s:.)|[^\\"])*"`, c.literals.unquoteEscaped)
	c.charSet = parser.Mapped(ctx, "[set]", `\[\^?(?:\\(?s:.)|[^\\\]])*\]`, c.literals.charSet)
	c.mlCode = parser.Mapped(ctx, "{{{code}}}", `(?s:\{\{\{.*?\}\}\})`, trimDelims(3))
	c.slCode = parser.Mapped(ctx, "`code`", "`[^`]*`", trimDelims(1))

	c.lparen = ctx.Text("(")
	c.rparen = ctx.Text(")")
	c.comma = ctx.Text(",")
	c.colon = ctx.Text(":")
	c.semi = ctx.Text(";")
	c.lbrace = ctx.Text("{")
	c.rbrace = ctx.Text("}")
	c.lt = ctx.Text("<")
	c.gt = ctx.Text(">")
	c.dot = ctx.Text(".")
	c.star = ctx.Text("*")
	c.plus = ctx.Text("+")
	c.question = ctx.Text("?")
	c.bang = ctx.Text("!")
	c.bar = ctx.Text("|")
	c.fold = ctx.Text(">>")
	c.annotate = ctx.Text("@")
	c.kwFragment = ctx.Text("fragment")
	c.kwRegex = ctx.Text("regex")
	c.kwGrammar = ctx.Text("grammar")

	return c
}

func toInt(s parser.Scanner) (int, error) {
	n := 0
	for _, ch := range s.String() {
		n = n*10 + int(ch-'0')
	}
	return n, nil
}

func trimDelims(n int) func(parser.Scanner) (string, error) {
	return func(s parser.Scanner) (string, error) {
		return s.String()[n : s.Len()-n], nil
	}
}

func (c *Compiler) span(begin int, st *parser.Stream) ast.Trace {
	return ast.Trace{Start: begin, End: st.LastEnd()}
}

// parseAll runs rule over the whole of src.
func parseAll[T any](c *Compiler, src *parser.Scanner, rule string, fn func(*parser.Stream) (T, bool)) (T, error) {
	st := parser.NewStream(src)
	v, ok := fn(st)
	if !ok || !st.AtEnd(c.main) {
		var zero T
		return zero, st.Error(rule)
	}
	return v, nil
}

// ParseProgram parses a whole compilation unit.
func (c *Compiler) ParseProgram(src *parser.Scanner) (ast.Program, error) {
	return parseAll(c, src, "program", c.program)
}

// ParseGrammar parses a grammar with no header code.
func (c *Compiler) ParseGrammar(src *parser.Scanner) (ast.Grammar, error) {
	return parseAll(c, src, "grammar", c.grammar)
}

// ParseExpr parses a single expression.
func (c *Compiler) ParseExpr(src *parser.Scanner) (ast.Node, error) {
	return parseAll(c, src, "expr", c.expr)
}

// ParseRegexCall parses a single regex(...) call.
func (c *Compiler) ParseRegexCall(src *parser.Scanner) (ast.Node, error) {
	return parseAll(c, src, "regex", c.regexCall)
}

// ParseProgram parses source with a fresh Compiler.
func ParseProgram(source, filename string) (ast.Program, error) {
	return New().ParseProgram(parser.NewScannerWithFilename(source, filename))
}

// ParseExpr parses a single expression with a fresh Compiler.
func ParseExpr(source string) (ast.Node, error) {
	return New().ParseExpr(parser.NewScanner(source))
}
