package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/arr-ai/combgen/dsl"
)

var grammarCommand = cli.Command{
	Name:  "grammar",
	Usage: "Print the grammar of the description language, written in itself",
	Action: func(c *cli.Context) error {
		_, err := fmt.Fprint(c.App.Writer, dsl.GrammarSource())
		return err
	},
}
