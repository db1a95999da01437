package dsl

import (
	"fmt"
	"strings"

	"github.com/arr-ai/frozen"

	"github.com/arr-ai/combgen/ast"
	"github.com/arr-ai/combgen/gotree"
)

type ValidationErrorKind int

const (
	NoError ValidationErrorKind = iota
	UnknownRule
	DuplicatedRule
	UsedBeforeDefinition
	LeftRecursion
)

type ValidationError struct {
	Kind ValidationErrorKind
	Name string
	At   ast.Trace
	Path []string
}

func (e ValidationError) Error() string {
	switch e.Kind {
	case UnknownRule:
		return fmt.Sprintf("identifier '%s' %s is not a defined rule", e.Name, e.At)
	case DuplicatedRule:
		return fmt.Sprintf("rule '%s' %s is already defined", e.Name, e.At)
	case UsedBeforeDefinition:
		return fmt.Sprintf("rule '%s' %s is used before its definition; give it a type to declare it up front", e.Name, e.At)
	case LeftRecursion:
		return fmt.Sprintf("rule '%s' %s is left recursive: %s", e.Name, e.At, strings.Join(e.Path, " > "))
	}
	return fmt.Sprintf("'%s' %s", e.Name, e.At)
}

// ValidationErrors lists every problem found in one grammar.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	tree := gotree.New("validation failed")
	for _, err := range v {
		tree.Add(err.Error())
	}
	return "\n" + tree.Print()
}

type definition struct {
	index int
	typed bool
}

// scope maps rule names to where they are defined.
type scope struct {
	m frozen.Map
}

func (s scope) with(name string, d definition) scope {
	s.m = s.m.With(name, d)
	return s
}

func (s scope) get(name string) (definition, bool) {
	if v, ok := s.m.Get(name); ok {
		return v.(definition), true
	}
	return definition{}, false
}

func ruleName(n ast.Node) (string, bool) {
	switch n := n.(type) {
	case ast.FragmentRule:
		return n.Name, false
	case ast.RegexRule:
		return n.Name, false
	case ast.ParserRule:
		return n.Header.Name, n.Header.IsTyped()
	}
	return "", false
}

// Validate checks the rule references of g: every identifier in parser position must
// name a rule, rule names are unique, untyped rules are defined before they are used and no
// rule is left recursive.
// Identifiers inside regexes, fold combinators and annotation markers are left to the
// code generator and the host.
func Validate(g ast.Grammar) error {
	var errs ValidationErrors
	var defs scope
	for i, s := range g.Statements {
		name, typed := ruleName(s)
		if name == "" {
			continue
		}
		if _, has := defs.get(name); has {
			errs = append(errs, ValidationError{Kind: DuplicatedRule, Name: name, At: s.Trace()})
			continue
		}
		defs = defs.with(name, definition{index: i, typed: typed})
	}

	for i, s := range g.Statements {
		pr, ok := s.(ast.ParserRule)
		if !ok {
			continue
		}
		walkReferences(pr.Body, func(id ast.Identifier) {
			switch def, has := defs.get(id.Name); {
			case !has:
				errs = append(errs, ValidationError{Kind: UnknownRule, Name: id.Name, At: id.Span})
			case def.index >= i && !def.typed:
				errs = append(errs, ValidationError{Kind: UsedBeforeDefinition, Name: id.Name, At: id.Span})
			}
		})
	}

	errs = append(errs, checkForLeftRecursion(g)...)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func walkReferences(n ast.Node, visit func(ast.Identifier)) {
	switch n := n.(type) {
	case ast.Identifier:
		visit(n)
	case ast.RegexCall:
	case ast.Fold:
		walkReferences(n.Inner, visit)
	case ast.Annotate:
		walkReferences(n.Inner, visit)
	default:
		for _, c := range ast.Children(n) {
			walkReferences(c, visit)
		}
	}
}
