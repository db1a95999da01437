package ast

import (
	"fmt"

	"github.com/arr-ai/combgen/charset"
)

// Trace is the source span [Start, End) a node was built from. Diagnostics only.
type Trace struct {
	Start, End int
}

func (t Trace) String() string {
	return fmt.Sprintf("[%d:%d]", t.Start, t.End)
}

// Node is one of the variants declared in this file. The set is closed.
type Node interface {
	Trace() Trace
	isNode()
}

// Unbounded is the CountRange.Hi of `{m,}`.
const Unbounded = -1

// NoSlot is the TypedRuleHeader.Slot of an untyped rule.
const NoSlot = -1

type (
	Identifier struct {
		Span Trace
		Name string
	}

	StringLiteral struct {
		Span  Trace
		Value string
	}

	CodeBlock struct {
		Span      Trace
		Code      string
		Multiline bool
	}

	CharacterSet struct {
		Span Trace
		Set  charset.Set
	}

	// RegexCall switches its Regex operand into regex context. Mapping may be nil.
	RegexCall struct {
		Span    Trace
		Regex   Node
		Mapping Node
	}

	Star struct {
		Span  Trace
		Inner Node
	}

	Plus struct {
		Span  Trace
		Inner Node
	}

	Optional struct {
		Span  Trace
		Inner Node
	}

	NonGreedy struct {
		Span  Trace
		Inner Node
	}

	// CountRange repeats Inner between Lo and Hi times; Hi may be Unbounded.
	CountRange struct {
		Span   Trace
		Inner  Node
		Lo, Hi int
	}

	Fold struct {
		Span       Trace
		Inner      Node
		Combinator Node
	}

	Annotate struct {
		Span   Trace
		Inner  Node
		Marker Node
	}

	Concat struct {
		Span        Trace
		Left, Right Node
	}

	Union struct {
		Span        Trace
		Left, Right Node
	}

	FragmentRule struct {
		Span Trace
		Name string
		Body Node
	}

	RegexRule struct {
		Span Trace
		Name string
		Body Node
	}

	// TypedRuleHeader names a parser rule. A typed header (Type != nil) owns Slot in the
	// enclosing Grammar's forward declaration table.
	TypedRuleHeader struct {
		Span Trace
		Name string
		Type Node
		Slot int
	}

	ParserRule struct {
		Span   Trace
		Header TypedRuleHeader
		Body   Node
	}

	// Grammar keeps its statements in source order. Slots lists the typed rule headers in
	// the order they were declared.
	Grammar struct {
		Span       Trace
		Name       string
		Statements []Node
		Slots      []TypedRuleHeader
	}

	Program struct {
		Span    Trace
		Header  string
		Grammar Grammar
	}
)

func (n Identifier) Trace() Trace      { return n.Span }
func (n StringLiteral) Trace() Trace   { return n.Span }
func (n CodeBlock) Trace() Trace       { return n.Span }
func (n CharacterSet) Trace() Trace    { return n.Span }
func (n RegexCall) Trace() Trace       { return n.Span }
func (n Star) Trace() Trace            { return n.Span }
func (n Plus) Trace() Trace            { return n.Span }
func (n Optional) Trace() Trace        { return n.Span }
func (n NonGreedy) Trace() Trace       { return n.Span }
func (n CountRange) Trace() Trace      { return n.Span }
func (n Fold) Trace() Trace            { return n.Span }
func (n Annotate) Trace() Trace        { return n.Span }
func (n Concat) Trace() Trace          { return n.Span }
func (n Union) Trace() Trace           { return n.Span }
func (n FragmentRule) Trace() Trace    { return n.Span }
func (n RegexRule) Trace() Trace       { return n.Span }
func (n TypedRuleHeader) Trace() Trace { return n.Span }
func (n ParserRule) Trace() Trace      { return n.Span }
func (n Grammar) Trace() Trace         { return n.Span }
func (n Program) Trace() Trace         { return n.Span }

func (Identifier) isNode()      {}
func (StringLiteral) isNode()   {}
func (CodeBlock) isNode()       {}
func (CharacterSet) isNode()    {}
func (RegexCall) isNode()       {}
func (Star) isNode()            {}
func (Plus) isNode()            {}
func (Optional) isNode()        {}
func (NonGreedy) isNode()       {}
func (CountRange) isNode()      {}
func (Fold) isNode()            {}
func (Annotate) isNode()        {}
func (Concat) isNode()          {}
func (Union) isNode()           {}
func (FragmentRule) isNode()    {}
func (RegexRule) isNode()       {}
func (TypedRuleHeader) isNode() {}
func (ParserRule) isNode()      {}
func (Grammar) isNode()         {}
func (Program) isNode()         {}

// IsTyped reports whether the rule must be forward declared.
func (n TypedRuleHeader) IsTyped() bool {
	return n.Type != nil
}

// Children returns the direct sub-nodes of n in source order.
func Children(n Node) []Node {
	switch n := n.(type) {
	case RegexCall:
		if n.Mapping == nil {
			return []Node{n.Regex}
		}
		return []Node{n.Regex, n.Mapping}
	case Star:
		return []Node{n.Inner}
	case Plus:
		return []Node{n.Inner}
	case Optional:
		return []Node{n.Inner}
	case NonGreedy:
		return []Node{n.Inner}
	case CountRange:
		return []Node{n.Inner}
	case Fold:
		return []Node{n.Inner, n.Combinator}
	case Annotate:
		return []Node{n.Inner, n.Marker}
	case Concat:
		return []Node{n.Left, n.Right}
	case Union:
		return []Node{n.Left, n.Right}
	case FragmentRule:
		return []Node{n.Body}
	case RegexRule:
		return []Node{n.Body}
	case TypedRuleHeader:
		if n.Type == nil {
			return nil
		}
		return []Node{n.Type}
	case ParserRule:
		return []Node{n.Header, n.Body}
	case Grammar:
		return n.Statements
	case Program:
		return []Node{n.Grammar}
	}
	return nil
}
