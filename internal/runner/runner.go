// Package runner orchestrates the parse -> format -> output pipeline.
package runner

import (
	"fmt"
	"io"
	"os"

	"github.com/donaldgifford/runestone/internal/config"
	"github.com/donaldgifford/runestone/internal/engine"
	"github.com/donaldgifford/runestone/internal/lang"
	"github.com/donaldgifford/runestone/internal/rlog"
	"github.com/donaldgifford/runestone/internal/runestone/rules"
	"github.com/donaldgifford/runestone/pkg/diff"
)

// Exit codes.
const (
	ExitOK         = 0
	ExitFormatDiff = 1
	ExitError      = 2
)

// Options configures the runner behavior.
type Options struct {
	Files      []string
	Check      bool
	Diff       bool
	Color      bool
	Assert     bool
	Debug      bool
	ConfigPath string
	Quiet      bool
	Verbose    bool
	Stdout     io.Writer
	Stderr     io.Writer
}

// Run executes the format pipeline and returns an exit code.
func Run(opts *Options) int {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	if opts.Quiet {
		rlog.SetLevel("error")
	} else if opts.Verbose || opts.Debug {
		rlog.SetLevel("debug")
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		writeErr(opts.Stderr, "runestone: %v\n", err)
		return ExitError
	}

	pipeline := rules.Pipeline(&cfg.Rules)
	flags := engine.Flags{
		Assert:  opts.Assert || cfg.Engine.Assert,
		Debug:   opts.Debug || cfg.Engine.Debug,
		Verbose: opts.Verbose,
		Diff:    opts.Diff,
		Check:   opts.Check,
		Quiet:   opts.Quiet,
	}

	if len(opts.Files) == 0 {
		return runStdin(opts, pipeline, flags)
	}

	exitCode := ExitOK
	for _, path := range opts.Files {
		code := runFile(opts, pipeline, flags, path)
		if code > exitCode {
			exitCode = code
		}
	}
	return exitCode
}

func runStdin(opts *Options, pipeline []engine.Rule, flags engine.Flags) int {
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		writeErr(opts.Stderr, "runestone: reading stdin: %v\n", err)
		return ExitError
	}

	input := string(src)
	output, err := formatInput(input, pipeline, flags)
	if err != nil {
		writeErr(opts.Stderr, "runestone: <stdin>: %v\n", err)
		return ExitError
	}

	return emit(opts, "<stdin>", input, output)
}

func runFile(opts *Options, pipeline []engine.Rule, flags engine.Flags, path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		writeErr(opts.Stderr, "runestone: %v\n", err)
		return ExitError
	}

	if opts.Verbose {
		writeErr(opts.Stderr, "%s\n", path)
	}

	input := string(src)
	output, err := formatInput(input, pipeline, flags)
	if err != nil {
		writeErr(opts.Stderr, "runestone: %s: %v\n", path, err)
		return ExitError
	}

	if !opts.Check && !opts.Diff {
		if input == output {
			return ExitOK
		}
		if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
			writeErr(opts.Stderr, "runestone: writing %s: %v\n", path, err)
			return ExitError
		}
		return ExitOK
	}

	return emit(opts, path, input, output)
}

// emit handles the shared check/diff/print behavior for both stdin and file
// inputs once formatting has produced output.
func emit(opts *Options, label, input, output string) int {
	if opts.Check {
		if input != output {
			if !opts.Quiet {
				writeErr(opts.Stderr, "%s\n", label)
			}
			return ExitFormatDiff
		}
		return ExitOK
	}

	if opts.Diff {
		d := diff.Unified(label, input, output)
		if d == "" {
			return ExitOK
		}
		if opts.Color {
			d = diff.Colorize(d)
		}
		writeOut(opts.Stdout, d)
		return ExitFormatDiff
	}

	writeOut(opts.Stdout, output)
	return ExitOK
}

// formatInput parses src, runs it through the fixed-point engine with
// pipeline as the rule set, and returns the formatted text.
func formatInput(src string, pipeline []engine.Rule, flags engine.Flags) (string, error) {
	tree := lang.Parse(src)
	ctx := engine.NewContext(src, tree, pipeline, flags)
	if err := engine.FormatTree(ctx); err != nil {
		return "", err
	}
	return string(ctx.Out().Bytes()), nil
}

// writeOut writes to stdout.
func writeOut(w io.Writer, s string) {
	fmt.Fprint(w, s)
}

// writeErr formats and writes to stderr.
func writeErr(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}
