package cmd

import (
	"fmt"
	"os"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var expectFile string

var checkCommand = cli.Command{
	Name:    "check",
	Aliases: []string{"c"},
	Usage:   "Check that generated code is up to date",
	Action:  check,
	Flags: []cli.Flag{
		inputFlag,
		targetFlag,
		cli.StringFlag{
			Name:        "expect",
			Usage:       "previously generated file",
			Required:    true,
			TakesFile:   true,
			Destination: &expectFile,
		},
	},
}

func check(c *cli.Context) error {
	out, err := generate(inFile)
	if err != nil {
		return err
	}
	expected, err := os.ReadFile(expectFile)
	if err != nil {
		return err
	}
	if string(expected) == string(out) {
		logrus.WithField("file", expectFile).Info("up to date")
		return nil
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(string(expected), string(out), false))
	if _, err := fmt.Fprint(c.App.Writer, dmp.PatchToText(dmp.PatchMake(string(expected), diffs))); err != nil {
		return err
	}
	return fmt.Errorf("%s is stale, regenerate it from %s", expectFile, inFile)
}
