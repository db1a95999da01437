package codegen

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/arr-ai/frozen"

	"github.com/arr-ai/combgen/ast"
)

const kotlinSkeleton = `// Code generated by combgen{{if .CommandLine}} {{.CommandLine}}{{end}}. DO NOT EDIT.
{{if .Header}}
{{.Header}}
{{end}}
{{range .Imports}}import {{.}}
{{end}}
object {{.Name}} {
    private val tokenizer = SkipTokenizer(Lexer())
    private val context = Context(tokenizer)

{{range .Declarations}}{{.}}
{{end}}
{{range .Statements}}{{.Comment}}
{{.Code}}

{{end}}}
`

const goSkeleton = `// Code generated by combgen{{if .CommandLine}} {{.CommandLine}}{{end}}. DO NOT EDIT.

package {{.Package}}

import (
{{range .Imports}}	"{{.}}"
{{end}})
{{if .Header}}
{{.Header}}
{{end}}
var (
	_ = charset.Interval
	_ = regex.Text
)

var context = parsing.NewContext(parsing.NewSkipTokenizer(lexer.New()))

{{range .Declarations}}{{.}}
{{end}}
{{range .Statements}}{{.Comment}}
{{.Code}}

{{end}}`

type Statement struct {
	Comment string
	Code    string
}

// TemplateData fills a dialect's program skeleton.
type TemplateData struct {
	CommandLine  string
	Package      string
	Header       string
	Imports      []string
	Name         string
	Declarations []string
	Statements   []Statement
}

func Write(w io.Writer, d *Dialect, data TemplateData) error {
	return d.skeleton.Execute(w, data)
}

// Generate renders a whole program and formats it the way the dialect expects.
func Generate(d *Dialect, p ast.Program, commandLine string) ([]byte, error) {
	data, err := renderer{d: d, fragments: frozen.NewSet()}.templateData(p)
	if err != nil {
		return nil, err
	}
	data.CommandLine = commandLine

	var buf bytes.Buffer
	if err := Write(&buf, d, data); err != nil {
		return nil, err
	}
	if d.format == nil {
		return buf.Bytes(), nil
	}
	out, err := d.format(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting %s output: %w", d.Name, err)
	}
	return out, nil
}

func (r renderer) document(p ast.Program) (string, error) {
	data, err := r.templateData(p)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := Write(&sb, r.d, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (r renderer) templateData(p ast.Program) (TemplateData, error) {
	g := p.Grammar
	data := TemplateData{
		Header:  trimIndent(p.Header),
		Imports: r.d.Imports,
		Name:    g.Name,
	}
	if r.d == Go {
		data.Package, data.Header = splitPackageClause(data.Header)
		if data.Package == "" {
			data.Package = PackageName(g.Name)
		}
	}

	// Typed rules are declared before any statement so that rules may refer to them
	// regardless of order.
	for _, h := range g.Slots {
		decl, err := r.forwardDecl(h)
		if err != nil {
			return TemplateData{}, err
		}
		data.Declarations = append(data.Declarations, decl)
	}

	for _, s := range g.Statements {
		code, err := r.render(ParserMode, s)
		if err != nil {
			return TemplateData{}, err
		}
		switch s := s.(type) {
		case ast.FragmentRule:
			r.fragments = r.fragments.With(s.Name)
		case ast.RegexRule:
			r.fragments = r.fragments.With(s.Name)
		}
		data.Statements = append(data.Statements, Statement{
			Comment: fmt.Sprintf(r.d.TraceComment, s.Trace()),
			Code:    code,
		})
	}
	return data, nil
}

// trimIndent drops leading and trailing blank lines and the indentation common to all
// non-blank lines.
func trimIndent(s string) string {
	lines := strings.Split(s, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	indent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}
	for i, line := range lines {
		if len(line) >= indent && indent > 0 {
			lines[i] = line[indent:]
		} else {
			lines[i] = strings.TrimLeft(line, " \t")
		}
	}
	return strings.Join(lines, "\n")
}

// splitPackageClause separates a leading `package x` line from the rest of header.
func splitPackageClause(header string) (pkg, rest string) {
	first, rest, _ := strings.Cut(header, "\n")
	if fields := strings.Fields(first); len(fields) == 2 && fields[0] == "package" {
		return fields[1], strings.TrimLeft(rest, "\n")
	}
	return "", header
}
