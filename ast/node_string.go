package ast

import (
	"fmt"
	"strings"
)

// String renders n as a constructor expression, e.g. Concat(Identifier("a"), Identifier("b")).
// Traces are omitted.
func String(n Node) string {
	var sb strings.Builder
	write(&sb, n)
	return sb.String()
}

func write(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case nil:
		sb.WriteString("nil")
	case Identifier:
		fmt.Fprintf(sb, "Identifier(%q)", n.Name)
	case StringLiteral:
		fmt.Fprintf(sb, "StringLiteral(%q)", n.Value)
	case CodeBlock:
		fmt.Fprintf(sb, "CodeBlock(%q)", n.Code)
	case CharacterSet:
		fmt.Fprintf(sb, "CharacterSet%s", n.Set)
	case CountRange:
		sb.WriteString("CountRange(")
		write(sb, n.Inner)
		switch {
		case n.Hi == Unbounded:
			fmt.Fprintf(sb, ", %d, *)", n.Lo)
		default:
			fmt.Fprintf(sb, ", %d, %d)", n.Lo, n.Hi)
		}
	case FragmentRule:
		fmt.Fprintf(sb, "FragmentRule(%q, ", n.Name)
		write(sb, n.Body)
		sb.WriteString(")")
	case RegexRule:
		fmt.Fprintf(sb, "RegexRule(%q, ", n.Name)
		write(sb, n.Body)
		sb.WriteString(")")
	case TypedRuleHeader:
		fmt.Fprintf(sb, "TypedRuleHeader(%q", n.Name)
		if n.Type != nil {
			sb.WriteString(", ")
			write(sb, n.Type)
		}
		sb.WriteString(")")
	case Grammar:
		fmt.Fprintf(sb, "Grammar(%q", n.Name)
		for _, s := range n.Statements {
			sb.WriteString(", ")
			write(sb, s)
		}
		sb.WriteString(")")
	case Program:
		fmt.Fprintf(sb, "Program(%q, ", n.Header)
		write(sb, n.Grammar)
		sb.WriteString(")")
	default:
		sb.WriteString(Kind(n))
		sb.WriteString("(")
		for i, c := range Children(n) {
			if i > 0 {
				sb.WriteString(", ")
			}
			write(sb, c)
		}
		sb.WriteString(")")
	}
}

// Kind is the variant name of n.
func Kind(n Node) string {
	name := fmt.Sprintf("%T", n)
	return name[strings.LastIndex(name, ".")+1:]
}
