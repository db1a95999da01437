package codegen

import (
	"fmt"
	"strings"

	"github.com/arr-ai/frozen"

	"github.com/arr-ai/combgen/ast"
)

// Mode selects the operator subset a subtree is rendered with.
type Mode int

const (
	ParserMode Mode = iota
	RegexMode
)

func (m Mode) String() string {
	if m == RegexMode {
		return "regex"
	}
	return "parser"
}

// LegalityError reports a node used where its mode does not allow it.
type LegalityError struct {
	Msg  string
	Node ast.Node
}

func (e *LegalityError) Error() string {
	return fmt.Sprintf("%s at %s %s", e.Msg, ast.Kind(e.Node), e.Node.Trace())
}

func (e *LegalityError) Trace() ast.Trace {
	return e.Node.Trace()
}

func illegal(msg string, n ast.Node) (string, error) {
	return "", &LegalityError{Msg: msg, Node: n}
}

// renderer turns nodes into target source. fragments holds the names a regex may refer to.
type renderer struct {
	d         *Dialect
	fragments frozen.Set
}

// Render renders n in mode m. fragments names the fragment and regex rules an identifier
// inside a regex may refer to.
func Render(d *Dialect, m Mode, n ast.Node, fragments ...string) (string, error) {
	set := frozen.NewSet()
	for _, f := range fragments {
		set = set.With(f)
	}
	return renderer{d: d, fragments: set}.render(m, n)
}

func (r renderer) render(m Mode, n ast.Node) (string, error) {
	d := r.d
	switch n := n.(type) {
	case ast.Identifier:
		if m == RegexMode && !r.fragments.Has(n.Name) {
			return illegal(fmt.Sprintf("unknown regex fragment %q", n.Name), n)
		}
		return d.Ident(n.Name), nil
	case ast.StringLiteral:
		if m == RegexMode {
			return fmt.Sprintf(d.RegexText, d.Quote(n.Value)), nil
		}
		return fmt.Sprintf(d.ParserText, d.Quote(n.Value)), nil
	case ast.CodeBlock:
		return n.Code, nil
	case ast.CharacterSet:
		if m != RegexMode {
			return illegal("character sets are only allowed in regexes", n)
		}
		bounds := make([]string, 0, 2*len(n.Set.Intervals()))
		for _, iv := range n.Set.Intervals() {
			bounds = append(bounds, fmt.Sprint(iv.Lo), fmt.Sprint(iv.Hi))
		}
		return fmt.Sprintf(d.Interval, strings.Join(bounds, ", ")), nil
	case ast.Star:
		return r.wrap(m, n.Inner, d.RegexStar, d.ParserStar)
	case ast.Plus:
		return r.wrap(m, n.Inner, d.RegexPlus, d.ParserPlus)
	case ast.Optional:
		return r.wrap(m, n.Inner, d.RegexOpt, d.ParserOpt)
	case ast.NonGreedy:
		if m != RegexMode {
			return illegal("non-greedy-op only allowed in regex", n)
		}
		return r.wrap(m, n.Inner, d.NonGreedy, "")
	case ast.CountRange:
		return r.countRange(m, n)
	case ast.Fold:
		if m == RegexMode {
			return illegal("fold not allowed in regex", n)
		}
		return r.binary(m, d.Fold, n.Inner, n.Combinator)
	case ast.Annotate:
		if m == RegexMode {
			return illegal("annotations not allowed in regex", n)
		}
		return r.binary(m, d.Annotate, n.Inner, n.Marker)
	case ast.Concat:
		return r.binary(m, d.Then, n.Left, n.Right)
	case ast.Union:
		return r.binary(m, d.Or, n.Left, n.Right)
	case ast.RegexCall:
		if m == RegexMode {
			return illegal("already in a regex", n)
		}
		re, err := r.render(RegexMode, n.Regex)
		if err != nil {
			return "", err
		}
		if n.Mapping == nil {
			return fmt.Sprintf(d.Token, re), nil
		}
		fn, err := r.render(ParserMode, n.Mapping)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(d.MappedToken, re, fn), nil
	case ast.FragmentRule:
		body, err := r.render(RegexMode, n.Body)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(d.FragmentBinding, d.Ident(n.Name), body), nil
	case ast.RegexRule:
		body, err := r.render(RegexMode, n.Body)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(d.RegexBinding, d.Ident(n.Name), body), nil
	case ast.ParserRule:
		body, err := r.render(ParserMode, n.Body)
		if err != nil {
			return "", err
		}
		if n.Header.IsTyped() {
			return fmt.Sprintf(d.Wiring, d.Ident(n.Header.Name), body), nil
		}
		return fmt.Sprintf(d.ParserBinding, d.Ident(n.Header.Name), body), nil
	case ast.TypedRuleHeader:
		return r.forwardDecl(n)
	case ast.Grammar:
		return r.document(ast.Program{Span: n.Span, Grammar: n})
	case ast.Program:
		return r.document(n)
	}
	return "", fmt.Errorf("cannot render %s %s", ast.Kind(n), n.Trace())
}

func (r renderer) wrap(m Mode, inner ast.Node, regexFormat, parserFormat string) (string, error) {
	s, err := r.render(m, inner)
	if err != nil {
		return "", err
	}
	if m == RegexMode {
		return fmt.Sprintf(regexFormat, s), nil
	}
	return fmt.Sprintf(parserFormat, s), nil
}

func (r renderer) binary(m Mode, format string, a, b ast.Node) (string, error) {
	left, err := r.render(m, a)
	if err != nil {
		return "", err
	}
	right, err := r.render(m, b)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(format, left, right), nil
}

func (r renderer) countRange(m Mode, n ast.CountRange) (string, error) {
	if m != RegexMode {
		return illegal("range is only allowed in regexes", n)
	}
	if n.Hi != ast.Unbounded && n.Hi < n.Lo {
		return illegal(fmt.Sprintf("range {%d,%d} is empty", n.Lo, n.Hi), n)
	}
	inner, err := r.render(m, n.Inner)
	if err != nil {
		return "", err
	}
	switch {
	case n.Lo == n.Hi:
		return fmt.Sprintf(r.d.Count, inner, n.Lo), nil
	case n.Hi == ast.Unbounded:
		return fmt.Sprintf(r.d.Min, inner, n.Lo), nil
	default:
		return fmt.Sprintf(r.d.Range, inner, n.Lo, n.Hi), nil
	}
}

func (r renderer) forwardDecl(h ast.TypedRuleHeader) (string, error) {
	if !h.IsTyped() {
		return "", fmt.Errorf("rule %s has no type to declare", h.Name)
	}
	typ, err := r.render(ParserMode, h.Type)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(r.d.ForwardDecl, r.d.Ident(h.Name), typ, `"`+r.d.Quote(h.Name)+`"`), nil
}
