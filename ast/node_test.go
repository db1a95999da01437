package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arr-ai/combgen/charset"
)

func TestString(t *testing.T) {
	a := Identifier{Name: "a"}
	b := Identifier{Name: "b"}
	for _, test := range []struct {
		name     string
		node     Node
		expected string
	}{
		{"ident", a, `Identifier("a")`},
		{"concat", Concat{Left: Concat{Left: a, Right: b}, Right: a},
			`Concat(Concat(Identifier("a"), Identifier("b")), Identifier("a"))`},
		{"regex call", RegexCall{Regex: StringLiteral{Value: "a"}, Mapping: CodeBlock{Code: "f"}},
			`RegexCall(StringLiteral("a"), CodeBlock("f"))`},
		{"unmapped regex call", RegexCall{Regex: a}, `RegexCall(Identifier("a"))`},
		{"range", CountRange{Inner: a, Lo: 2, Hi: Unbounded}, `CountRange(Identifier("a"), 2, *)`},
		{"set", CharacterSet{Set: charset.Range('0', '9')}, `CharacterSet[0x30-0x39]`},
		{"typed", ParserRule{
			Header: TypedRuleHeader{Name: "sum", Type: CodeBlock{Code: "Int"}, Slot: 0},
			Body:   a,
		}, `ParserRule(TypedRuleHeader("sum", CodeBlock("Int")), Identifier("a"))`},
	} {
		test := test
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, String(test.node))
		})
	}
}

func TestTraceString(t *testing.T) {
	assert.Equal(t, "[3:9]", Trace{3, 9}.String())
	assert.Equal(t, Trace{1, 2}, Fold{Span: Trace{1, 2}}.Trace())
}

func TestTreeView(t *testing.T) {
	n := Program{
		Header: "import x",
		Grammar: Grammar{
			Name: "G",
			Statements: []Node{
				RegexRule{Name: "ws", Body: Plus{Inner: CharacterSet{Set: charset.Chars(' ')}}},
			},
		},
	}
	view := BuildTreeView(n)
	assert.Contains(t, view, "Program [0:0]")
	assert.Contains(t, view, `header "import x"`)
	assert.Contains(t, view, "└── RegexRule ws [0:0]")
	assert.Contains(t, view, "Plus [0:0]")
}

func TestKind(t *testing.T) {
	assert.Equal(t, "NonGreedy", Kind(NonGreedy{}))
	assert.Equal(t, "Grammar", Kind(Grammar{}))
}
