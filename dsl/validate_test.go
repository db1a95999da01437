package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arr-ai/combgen/ast"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	for _, c := range []struct {
		name, grammar string
		kind          ValidationErrorKind
		at            ast.Trace
	}{
		{"valid", "a: 'a' ; b: a a* ;", NoError, ast.Trace{}},
		{"undefined rule", "a: b ;", UnknownRule, ast.Trace{Start: 15, End: 16}},
		{"redefined rule", "a: 'b' ; a: 'f' ;", DuplicatedRule, ast.Trace{Start: 21, End: 27}},
		{"redefined regex", "regex a: 'b' ; fragment a: 'f' ;", DuplicatedRule, ast.Trace{Start: 27, End: 42}},
		{"used before definition", "a: b ; b: 'b' ;", UsedBeforeDefinition, ast.Trace{Start: 15, End: 16}},
		{"untyped self reference", "a: 'x' a? ;", UsedBeforeDefinition, ast.Trace{Start: 19, End: 20}},
		{"typed self reference", "a<`A`>: 'x' a? ;", NoError, ast.Trace{}},
		{"typed forward reference", "a: b ; b<`B`>: 'b' ;", NoError, ast.Trace{}},
		{"regex references are left alone", "a: regex(x, y) ;", NoError, ast.Trace{}},
		{"fold operands are host code", "a: 'a' >> f @ m ;", NoError, ast.Trace{}},
		{"left recursion", "a<`A`>: a 'x' | 'y' ;", LeftRecursion, ast.Trace{Start: 12, End: 31}},
		{"left recursion after optional", "a<`A`>: 'x'? a ;", LeftRecursion, ast.Trace{Start: 12, End: 26}},
		{"right recursion", "a<`A`>: 'x' a? ;", NoError, ast.Trace{}},
		{"left recursion after code", "a<`A`>: `init` a 'x' ;", LeftRecursion, ast.Trace{Start: 12, End: 32}},
	} {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			p, err := ParseProgram("grammar G { "+c.grammar+" }", "")
			require.NoError(t, err)
			err = Validate(p.Grammar)
			if c.kind == NoError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			errs, ok := err.(ValidationErrors)
			require.True(t, ok)
			require.Len(t, errs, 1)
			assert.Equal(t, c.kind, errs[0].Kind)
			assert.Equal(t, c.at, errs[0].At)
			assert.NotPanics(t, func() { _ = err.Error() })
		})
	}
}

func TestValidateGrammarSource(t *testing.T) {
	t.Parallel()

	p, err := ParseProgram(GrammarSource(), "")
	require.NoError(t, err)
	assert.NoError(t, Validate(p.Grammar))
}

func TestValidateMutualLeftRecursion(t *testing.T) {
	t.Parallel()

	p, err := ParseProgram("grammar G { a<`A`>: b 'x' ; b<`B`>: a | 'y' ; }", "")
	require.NoError(t, err)
	err = Validate(p.Grammar)
	require.Error(t, err)
	errs := err.(ValidationErrors)
	require.Len(t, errs, 1)
	assert.Equal(t, LeftRecursion, errs[0].Kind)
	assert.Equal(t, []string{"a", "b", "a"}, errs[0].Path)
	assert.Contains(t, err.Error(), "is left recursive: a > b > a")
}
