package main

import (
	"runtime"

	"github.com/arr-ai/combgen/cmd"
)

// Overridden at build time with -ldflags "-X main.Version=...".
//
//nolint:gochecknoglobals
var (
	Version   = "unspecified"
	GitCommit = "unspecified"
	BuildDate = "unspecified"
)

func main() {
	cmd.Main(cmd.VersionTags{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		BuildOS:   runtime.GOOS,
	})
}
