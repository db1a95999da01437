package codegen

import (
	"bytes"
	goast "go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arr-ai/combgen/dsl"
)

const calcSrc = "{{{\n    package calc\n}}}\n" +
	"grammar Calc {\n" +
	"    fragment digit: [0-9] ;\n" +
	"    num: regex(digit+, `toInt`) ;\n" +
	"    sum<`Int`>: num (\"+\" sum >> `add`)? ;\n" +
	"}\n"

const calcKotlin = `// Code generated by combgen. DO NOT EDIT.

package calc

import at.searles.lexer.Lexer
import at.searles.lexer.SkipTokenizer
import at.searles.parsing.Mapping
import at.searles.parsing.Parser
import at.searles.parsing.Reducer
import at.searles.parsing.Ref
import at.searles.parsing.tools.generator.Context
import at.searles.regex.CharSet
import at.searles.regex.Regex

object Calc {
    private val tokenizer = SkipTokenizer(Lexer())
    private val context = Context(tokenizer)

    val sum = Ref<Int>("sum")

    // position [44:65]
    val digit: Regex = CharSet.interval(48, 57)

    // position [72:99]
    val num = context.parser(digit.plus(), toInt)

    // position [106:141]
    init {
        sum.set(num.then(Reducer.opt(context.text("+").then(sum.fold(add)))))
    }

}
`

func generate(t *testing.T, d *Dialect, src string) string {
	t.Helper()
	p, err := dsl.ParseProgram(src, "test.cg")
	require.NoError(t, err)
	out, err := Generate(d, p, "")
	require.NoError(t, err)
	return string(out)
}

func TestGenerateKotlin(t *testing.T) {
	t.Parallel()

	assert.Equal(t, calcKotlin, generate(t, Kotlin, calcSrc))
}

func TestGenerateGo(t *testing.T) {
	t.Parallel()

	out := generate(t, Go, calcSrc)
	_, err := parser.ParseFile(token.NewFileSet(), "calc.go", out, parser.ParseComments)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "// Code generated by combgen. DO NOT EDIT.\n\npackage calc\n"))
	for _, line := range []string{
		`var sum = parsing.NewRef[Int]("sum")`,
		`var digit regex.Regex = charset.Interval(48, 57)`,
		`var num = context.Parser(digit.Plus(), toInt)`,
		"func init() {\n\tsum.Set(num.Then(parsing.Opt(context.Text(\"+\").Then(sum.Fold(add)))))\n}",
		"// position [106:141]\n",
	} {
		assert.Contains(t, out, line)
	}
}

func TestGenerateGoDerivesPackage(t *testing.T) {
	t.Parallel()

	out := generate(t, Go, "grammar MyDSL { a: 'a' ; }")
	assert.Contains(t, out, "\npackage mydsl\n")
	assert.Contains(t, out, `var a = context.Text("a")`)
}

func TestGenerateGoRejectsForeignHeader(t *testing.T) {
	t.Parallel()

	p, err := dsl.ParseProgram("`import calc.*` grammar G { a: 'a' ; }", "")
	require.NoError(t, err)
	_, err = Generate(Go, p, "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "formatting go output")
}

func TestGenerateCommandLine(t *testing.T) {
	t.Parallel()

	p, err := dsl.ParseProgram("grammar G { }", "")
	require.NoError(t, err)
	out, err := Generate(Kotlin, p, "gen --input g.cg")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("// Code generated by combgen gen --input g.cg. DO NOT EDIT.\n")))
}

// Forward declarations precede every statement and each typed rule is wired exactly once,
// where it was written.
func TestGenerateForwardDeclarationOrder(t *testing.T) {
	t.Parallel()

	src := "grammar Sums {\n" +
		"    regex num: [0-9]+ ;\n" +
		"    term: num | \"(\" sum \")\" ;\n" +
		"    sum<`Int`>: term (\"+\" sum)? ;\n" +
		"    `var unused = 0`\n" +
		"    list<`List`>: sum* ;\n" +
		"}\n"
	for _, c := range []struct {
		d                       *Dialect
		sumDecl, listDecl, term string
		wiring                  string
	}{
		{Kotlin, `val sum = Ref<Int>("sum")`, `val list = Ref<List>("list")`, "val term = ", "sum.set("},
		{Go, `var sum = parsing.NewRef[Int]("sum")`, `var list = parsing.NewRef[List]("list")`, "var term = ", "sum.Set("},
	} {
		c := c
		t.Run(c.d.Name, func(t *testing.T) {
			t.Parallel()
			out := generate(t, c.d, src)
			firstStatement := strings.Index(out, "// position")
			require.Positive(t, firstStatement)

			sumDecl := strings.Index(out, c.sumDecl)
			listDecl := strings.Index(out, c.listDecl)
			assert.Positive(t, sumDecl)
			assert.Less(t, sumDecl, listDecl)
			assert.Less(t, listDecl, firstStatement)

			assert.Equal(t, 1, strings.Count(out, c.wiring))
			wiredAt := strings.Index(out, c.wiring)
			assert.Less(t, strings.Index(out, c.term), wiredAt)
			assert.Less(t, wiredAt, strings.Index(out, "var unused = 0"))
		})
	}
}

func TestGenerateSelfDescription(t *testing.T) {
	t.Parallel()

	p, err := dsl.ParseProgram(dsl.GrammarSource(), "combgen.cg")
	require.NoError(t, err)

	out, err := Generate(Kotlin, p, "")
	require.NoError(t, err)
	assert.Contains(t, string(out), "object Combgen {")
	assert.Contains(t, string(out), `    val elementary = Ref<Node>("elementary")`)
	assert.Contains(t, string(out), "    val hex: Regex = CharSet.interval(48, 57, 65, 70, 97, 102)")

	out, err = Generate(Go, p, "")
	require.NoError(t, err)
	_, err = parser.ParseFile(token.NewFileSet(), "combgen.go", out, 0)
	assert.NoError(t, err)
}

func TestGenerateRenamesReservedNames(t *testing.T) {
	t.Parallel()

	src := "grammar G { init: 'i' ; context: 'c' ; string: init context ; }"

	out := generate(t, Go, src)
	f, err := parser.ParseFile(token.NewFileSet(), "g.go", out, 0)
	require.NoError(t, err)
	var vars []string
	for _, decl := range f.Decls {
		if gd, ok := decl.(*goast.GenDecl); ok && gd.Tok == token.VAR {
			for _, spec := range gd.Specs {
				for _, name := range spec.(*goast.ValueSpec).Names {
					if name.Name != "_" {
						vars = append(vars, name.Name)
					}
				}
			}
		}
	}
	assert.Equal(t, []string{"context", "init_", "context_", "string_"}, vars)
	assert.Contains(t, out, "var string_ = init_.Then(context_)")

	kt := generate(t, Kotlin, src)
	assert.Contains(t, kt, `    val context_ = context.text("c")`)
	assert.Contains(t, kt, "    val string = init.then(context_)")
}

func TestGenerateLegalityErrorAbortsUnit(t *testing.T) {
	t.Parallel()

	p, err := dsl.ParseProgram("grammar G { a: 'a' ; regex b: a ; }", "")
	require.NoError(t, err)
	out, err := Generate(Kotlin, p, "")
	assert.Nil(t, out)
	var le *LegalityError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, `unknown regex fragment "a"`, le.Msg)
}
