package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

type VersionTags struct {
	Version   string
	GitCommit string
	BuildDate string
	BuildOS   string
}

var verboseMode bool

func Main(info VersionTags) {
	if err := NewApp(info).Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func NewApp(info VersionTags) *cli.App {
	app := cli.NewApp()

	app.EnableBashCompletion = true

	app.Name = "combgen"
	app.Usage = "compile grammar descriptions into parser combinator code"
	app.Version = info.Version

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:        "verbose",
			Usage:       "trace the grammar parse",
			EnvVar:      "COMBGEN_VERBOSE",
			Destination: &verboseMode,
		},
	}
	app.Before = func(c *cli.Context) error {
		if verboseMode {
			logrus.SetLevel(logrus.TraceLevel)
		}
		logrus.WithFields(logrus.Fields{
			"version": info.Version,
			"commit":  info.GitCommit,
		}).Debug("combgen")
		return nil
	}

	app.Commands = []cli.Command{genCommand, dumpCommand, checkCommand, grammarCommand}
	return app
}
