// Command runestone formats source files by driving them through the
// engine's fixed-point rewrite pipeline.
package main

import (
	"os"

	"github.com/donaldgifford/runestone/internal/cli"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	info := cli.BuildInfo{Version: version, Commit: commit, Date: date}
	root := cli.NewRootCommand(info)
	if err := root.Execute(); err != nil {
		os.Exit(2)
	}
}
