// Package cli provides the Cobra command structure for runestone.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/donaldgifford/runestone/internal/rlog"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Options mirrors the persistent flags shared by every subcommand.
type Options struct {
	Check      bool
	Diff       bool
	Color      bool
	Assert     bool
	Debug      bool
	ConfigPath string
	Quiet      bool
	Verbose    bool
}

// NewRootCommand creates the root runestone command with all subcommands.
// runestone is a formatter, so the root command itself formats — there is
// no separate "format" verb to type for the common case.
func NewRootCommand(info BuildInfo) *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "runestone [files...]",
		Short: "A fixed-point source formatter",
		Long: `runestone rewrites source files to a canonical form by repeatedly
applying formatting rules to a concrete syntax tree until no rule changes
anything. With no files given, it reads from stdin and writes to stdout.`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if opts.Debug {
				rlog.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return runFormat(args, opts)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&opts.Check, "check", false, "exit nonzero if any file is not formatted")
	rootCmd.PersistentFlags().BoolVar(&opts.Diff, "diff", false, "print a unified diff instead of writing")
	rootCmd.PersistentFlags().BoolVar(&opts.Color, "color", false, "colorize diff output")
	rootCmd.PersistentFlags().BoolVar(&opts.Assert, "assert", false, "enable engine invariant assertions")
	rootCmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "enable debug logging (implies --assert)")
	rootCmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&opts.Quiet, "quiet", "q", false, "suppress informational output")
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "print files as they are processed")

	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
