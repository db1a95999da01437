package codegen

import (
	"go/token"
	"strings"

	"github.com/iancoleman/strcase"
)

// PackageName derives a Go package name from a grammar name, e.g. JSONGrammar -> jsongrammar.
func PackageName(grammar string) string {
	name := strings.ReplaceAll(strcase.ToSnake(DropCaps(grammar)), "_", "")
	if name == "" {
		return "grammar"
	}
	if token.IsKeyword(name) {
		return name + "_"
	}
	return name
}

// DropCaps lowers all but the first of a run of capitals, so that JSONGrammar reads as
// Jsongrammar to strcase.
func DropCaps(name string) string {
	isCaps := func(r uint8) bool { return r >= 'A' && r <= 'Z' }
	out := make([]string, 0, len(name))
	for i := 0; i < len(name); i++ {
		out = append(out, string(name[i]))
		if isCaps(name[i]) {
			for i+1 < len(name) && isCaps(name[i+1]) {
				i++
				out = append(out, strings.ToLower(string(name[i])))
			}
		}
	}
	return strings.Join(out, "")
}
