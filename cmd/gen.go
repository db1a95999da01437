package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/arr-ai/combgen/ast"
	"github.com/arr-ai/combgen/cmd/codegen"
	"github.com/arr-ai/combgen/dsl"
)

var inFile string
var outFile string
var target string

var inputFlag = cli.StringFlag{
	Name:        "input",
	Usage:       "grammar description file",
	Required:    true,
	TakesFile:   true,
	Destination: &inFile,
}

var targetFlag = cli.StringFlag{
	Name:        "target",
	Usage:       "target dialect (go or kotlin)",
	Value:       codegen.Kotlin.Name,
	EnvVar:      "COMBGEN_TARGET",
	Destination: &target,
}

var genCommand = cli.Command{
	Name:    "gen",
	Aliases: []string{"g"},
	Usage:   "Generate parser combinator code from a grammar description",
	Action:  gen,
	Flags: []cli.Flag{
		inputFlag,
		targetFlag,
		cli.StringFlag{
			Name:        "output",
			Usage:       "filename to write the output to",
			Required:    false,
			TakesFile:   true,
			Destination: &outFile,
		},
	},
}

func loadProgram(path string) (ast.Program, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return ast.Program{}, err
	}
	prog, err := dsl.ParseProgram(string(buf), path)
	if err != nil {
		return ast.Program{}, err
	}
	if err := dsl.Validate(prog.Grammar); err != nil {
		return ast.Program{}, fmt.Errorf("%s: %w", path, err)
	}
	logrus.WithFields(logrus.Fields{
		"file":       path,
		"grammar":    prog.Grammar.Name,
		"statements": len(prog.Grammar.Statements),
		"typed":      len(prog.Grammar.Slots),
	}).Debug("parsed grammar")
	return prog, nil
}

// generate compiles path for the selected target. The recorded command line only depends
// on the inputs so that check can reproduce it.
func generate(path string) ([]byte, error) {
	d, err := codegen.LookupDialect(target)
	if err != nil {
		return nil, err
	}
	prog, err := loadProgram(path)
	if err != nil {
		return nil, err
	}
	out, err := codegen.Generate(d, prog, fmt.Sprintf("gen --target %s --input %s", d.Name, path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

func gen(c *cli.Context) error {
	out, err := generate(inFile)
	if err != nil {
		return err
	}

	switch outFile {
	case "", "-":
		_, err = c.App.Writer.Write(out)
		return err
	default:
		logrus.WithField("output", outFile).Info("writing generated code")
		return os.WriteFile(outFile, out, 0644) //nolint:gosec
	}
}
