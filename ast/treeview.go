package ast

import (
	"fmt"

	"github.com/arr-ai/combgen/gotree"
)

// BuildTreeView renders n and its descendants as an indented tree.
func BuildTreeView(n Node) string {
	return fromAst(n).Print()
}

func label(n Node) string {
	switch n := n.(type) {
	case Identifier:
		return fmt.Sprintf("Identifier %s %s", n.Name, n.Span)
	case StringLiteral:
		return fmt.Sprintf("StringLiteral %q %s", n.Value, n.Span)
	case CodeBlock:
		return fmt.Sprintf("CodeBlock %q %s", n.Code, n.Span)
	case CharacterSet:
		return fmt.Sprintf("CharacterSet %s %s", n.Set, n.Span)
	case CountRange:
		hi := fmt.Sprint(n.Hi)
		if n.Hi == Unbounded {
			hi = "∞"
		}
		return fmt.Sprintf("CountRange {%d,%s} %s", n.Lo, hi, n.Span)
	case FragmentRule:
		return fmt.Sprintf("FragmentRule %s %s", n.Name, n.Span)
	case RegexRule:
		return fmt.Sprintf("RegexRule %s %s", n.Name, n.Span)
	case TypedRuleHeader:
		if n.IsTyped() {
			return fmt.Sprintf("TypedRuleHeader %s slot=%d %s", n.Name, n.Slot, n.Span)
		}
		return fmt.Sprintf("TypedRuleHeader %s %s", n.Name, n.Span)
	case Grammar:
		return fmt.Sprintf("Grammar %s %s", n.Name, n.Span)
	case Program:
		return fmt.Sprintf("Program %s", n.Span)
	}
	return fmt.Sprintf("%s %s", Kind(n), n.Trace())
}

func fromAst(n Node) gotree.Tree {
	tree := gotree.New(label(n))
	if p, ok := n.(Program); ok && p.Header != "" {
		tree.Add(fmt.Sprintf("header %q", p.Header))
	}
	for _, c := range Children(n) {
		tree.AddTree(fromAst(c))
	}
	return tree
}
