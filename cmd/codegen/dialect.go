package codegen

import (
	"fmt"
	"go/format"
	"go/token"
	"sort"
	"strings"
	"text/template"
)

// Dialect is the vocabulary a target language uses for the combinator library. Expression
// entries are fmt formats over already rendered operands.
type Dialect struct {
	Name string

	Then, Or string

	RegexText, ParserText string
	Interval              string

	RegexStar, RegexPlus, RegexOpt    string
	ParserStar, ParserPlus, ParserOpt string

	NonGreedy         string
	Count, Min, Range string

	Fold, Annotate string

	Token, MappedToken string

	// Statements. ForwardDecl gets the binding name, the type and the quoted rule name.
	ForwardDecl     string
	Wiring          string
	ParserBinding   string
	RegexBinding    string
	FragmentBinding string
	TraceComment    string

	// Imports is the generic import header every program gets.
	Imports []string

	// Ident turns a rule name into a binding name.
	Ident func(string) string
	// Quote renders s as the body of a string literal.
	Quote func(s string) string

	skeleton *template.Template
	format   func([]byte) ([]byte, error)
}

var kotlinKeywords = map[string]bool{
	"as": true, "break": true, "class": true, "continue": true, "do": true, "else": true,
	"false": true, "for": true, "fun": true, "if": true, "in": true, "interface": true,
	"is": true, "null": true, "object": true, "package": true, "return": true, "super": true,
	"this": true, "throw": true, "true": true, "try": true, "typealias": true, "typeof": true,
	"val": true, "var": true, "when": true, "while": true,
}

// kotlinSkeletonNames are the members the Kotlin skeleton declares itself.
var kotlinSkeletonNames = map[string]bool{"context": true, "tokenizer": true}

// goReserved are names a package-level var cannot take: predeclared identifiers, init and
// the names the Go skeleton declares or imports.
var goReserved = map[string]bool{
	"any": true, "bool": true, "byte": true, "comparable": true, "complex64": true,
	"complex128": true, "error": true, "float32": true, "float64": true, "int": true,
	"int8": true, "int16": true, "int32": true, "int64": true, "rune": true, "string": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true, "uintptr": true,
	"true": true, "false": true, "iota": true, "nil": true,
	"append": true, "cap": true, "clear": true, "close": true, "complex": true, "copy": true,
	"delete": true, "imag": true, "len": true, "make": true, "max": true, "min": true,
	"new": true, "panic": true, "print": true, "println": true, "real": true, "recover": true,
	"init": true,
	"context": true, "parsing": true, "charset": true, "lexer": true, "regex": true,
}

// Kotlin targets the at.searles parsing library.
var Kotlin = &Dialect{
	Name: "kotlin",

	Then: "%s.then(%s)",
	Or:   "%s.or(%s)",

	RegexText:  `Regex.text("%s")`,
	ParserText: `context.text("%s")`,
	Interval:   "CharSet.interval(%s)",

	RegexStar:  "%s.rep()",
	RegexPlus:  "%s.plus()",
	RegexOpt:   "%s.opt()",
	ParserStar: "Reducer.rep(%s)",
	ParserPlus: "Reducer.plus(%s)",
	ParserOpt:  "Reducer.opt(%s)",

	NonGreedy: "%s.nonGreedy()",
	Count:     "%s.count(%d)",
	Min:       "%s.min(%d)",
	Range:     "%s.range(%d, %d)",

	Fold:     "%s.fold(%s)",
	Annotate: "%s.annotate(%s)",

	Token:       "context.parser(%s)",
	MappedToken: "context.parser(%s, %s)",

	ForwardDecl:     "    val %s = Ref<%s>(%s)",
	Wiring:          "    init {\n        %s.set(%s)\n    }",
	ParserBinding:   "    val %s = %s",
	RegexBinding:    "    val %s = context.parser(%s)",
	FragmentBinding: "    val %s: Regex = %s",
	TraceComment:    "    // position %s",

	Imports: []string{
		"at.searles.lexer.Lexer",
		"at.searles.lexer.SkipTokenizer",
		"at.searles.parsing.Mapping",
		"at.searles.parsing.Parser",
		"at.searles.parsing.Reducer",
		"at.searles.parsing.Ref",
		"at.searles.parsing.tools.generator.Context",
		"at.searles.regex.CharSet",
		"at.searles.regex.Regex",
	},

	Ident: func(name string) string {
		switch {
		case kotlinKeywords[name]:
			return "`" + name + "`"
		case kotlinSkeletonNames[name]:
			return name + "_"
		}
		return name
	},
	Quote: func(s string) string {
		return strings.ReplaceAll(quoteUTF16(s), "$", `\$`)
	},

	skeleton: template.Must(template.New("kotlin").Parse(kotlinSkeleton)),
}

// Go targets a Go port of the same library.
var Go = &Dialect{
	Name: "go",

	Then: "%s.Then(%s)",
	Or:   "%s.Or(%s)",

	RegexText:  `regex.Text("%s")`,
	ParserText: `context.Text("%s")`,
	Interval:   "charset.Interval(%s)",

	RegexStar:  "%s.Rep()",
	RegexPlus:  "%s.Plus()",
	RegexOpt:   "%s.Opt()",
	ParserStar: "parsing.Rep(%s)",
	ParserPlus: "parsing.Plus(%s)",
	ParserOpt:  "parsing.Opt(%s)",

	NonGreedy: "%s.NonGreedy()",
	Count:     "%s.Count(%d)",
	Min:       "%s.Min(%d)",
	Range:     "%s.Range(%d, %d)",

	Fold:     "%s.Fold(%s)",
	Annotate: "%s.Annotate(%s)",

	Token:       "context.Parser(%s)",
	MappedToken: "context.Parser(%s, %s)",

	ForwardDecl:     "var %s = parsing.NewRef[%s](%s)",
	Wiring:          "func init() {\n\t%s.Set(%s)\n}",
	ParserBinding:   "var %s = %s",
	RegexBinding:    "var %s = context.Parser(%s)",
	FragmentBinding: "var %s regex.Regex = %s",
	TraceComment:    "// position %s",

	Imports: []string{
		"github.com/searles/parsing",
		"github.com/searles/parsing/charset",
		"github.com/searles/parsing/lexer",
		"github.com/searles/parsing/regex",
	},

	Ident: func(name string) string {
		if token.IsKeyword(name) || goReserved[name] {
			return name + "_"
		}
		return name
	},
	Quote: quoteGo,

	skeleton: template.Must(template.New("go").Parse(goSkeleton)),
	format:   format.Source,
}

var dialects = map[string]*Dialect{
	Kotlin.Name: Kotlin,
	Go.Name:     Go,
}

// DialectNames lists the registered dialects.
func DialectNames() []string {
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func LookupDialect(name string) (*Dialect, error) {
	if d, has := dialects[name]; has {
		return d, nil
	}
	return nil, fmt.Errorf("unknown target %q (want one of %s)", name, strings.Join(DialectNames(), ", "))
}
