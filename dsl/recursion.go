package dsl

import (
	"sort"

	"github.com/arr-ai/frozen"

	"github.com/arr-ai/combgen/ast"
)

/*
A parser rule is left recursive when it can reach itself through the leading positions of
rule bodies without consuming input. A recursive descent parser built from it never returns.
	a: a 'x' ;
	a: 'x'? a ;
	a: b ; b: a | 'y' ;
*/

// leading returns the rules that may be entered before n consumes input and whether n can
// match without consuming any.
func leading(n ast.Node) (frozen.Set, bool) {
	switch n := n.(type) {
	case ast.Identifier:
		return frozen.NewSet(n.Name), false
	case ast.CodeBlock:
		return frozen.NewSet(), true
	case ast.Star:
		s, _ := leading(n.Inner)
		return s, true
	case ast.Optional:
		s, _ := leading(n.Inner)
		return s, true
	case ast.Plus:
		return leading(n.Inner)
	case ast.NonGreedy:
		return leading(n.Inner)
	case ast.CountRange:
		s, empty := leading(n.Inner)
		return s, empty || n.Lo == 0
	case ast.Fold:
		return leading(n.Inner)
	case ast.Annotate:
		return leading(n.Inner)
	case ast.Concat:
		l, empty := leading(n.Left)
		if !empty {
			return l, false
		}
		r, empty := leading(n.Right)
		return l.Union(r), empty
	case ast.Union:
		l, lempty := leading(n.Left)
		r, rempty := leading(n.Right)
		return l.Union(r), lempty || rempty
	}
	return frozen.NewSet(), false
}

func sortedSet(s frozen.Set) []string {
	out := make([]string, 0, s.Count())
	for _, x := range s.Elements() {
		out = append(out, x.(string))
	}
	sort.Strings(out)
	return out
}

// findCycle returns a path from name back to start through leading edges, or nil.
func findCycle(start, name string, edges map[string]frozen.Set, seen frozen.Set, path []string) []string {
	path = append(path, name)
	for _, next := range sortedSet(edges[name]) {
		switch {
		case next == start:
			return append(path, next)
		case seen.Has(next):
		default:
			if p := findCycle(start, next, edges, seen.With(next), path); p != nil {
				return p
			}
		}
	}
	return nil
}

func checkForLeftRecursion(g ast.Grammar) ValidationErrors {
	edges := map[string]frozen.Set{}
	var rules []ast.ParserRule
	for _, s := range g.Statements {
		if pr, ok := s.(ast.ParserRule); ok {
			if _, has := edges[pr.Header.Name]; !has {
				edges[pr.Header.Name], _ = leading(pr.Body)
				rules = append(rules, pr)
			}
		}
	}

	var errs ValidationErrors
	reported := frozen.NewSet()
	for _, pr := range rules {
		name := pr.Header.Name
		if reported.Has(name) {
			continue
		}
		if cycle := findCycle(name, name, edges, frozen.NewSet(name), nil); cycle != nil {
			reported = reported.Union(frozen.NewSetFromStrings(cycle...))
			errs = append(errs, ValidationError{Kind: LeftRecursion, Name: name, At: pr.Span, Path: cycle})
		}
	}
	return errs
}
