package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/arr-ai/combgen/ast"
)

var dumpCommand = cli.Command{
	Name:   "dump",
	Usage:  "Print the syntax tree of a grammar description",
	Action: dump,
	Flags:  []cli.Flag{inputFlag},
}

func dump(c *cli.Context) error {
	prog, err := loadProgram(inFile)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(c.App.Writer, ast.BuildTreeView(prog))
	return err
}
