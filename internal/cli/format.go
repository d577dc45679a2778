package cli

import (
	"os"

	"github.com/donaldgifford/runestone/internal/runner"
)

// runFormat adapts cli.Options to runner.Options and exits with the
// resulting code, mirroring the exit-code contract cobra itself doesn't
// enforce for us.
func runFormat(files []string, opts *Options) error {
	code := runner.Run(&runner.Options{
		Files:      files,
		Check:      opts.Check,
		Diff:       opts.Diff,
		Color:      opts.Color,
		Assert:     opts.Assert,
		Debug:      opts.Debug,
		ConfigPath: opts.ConfigPath,
		Quiet:      opts.Quiet,
		Verbose:    opts.Verbose,
	})
	if code != runner.ExitOK {
		os.Exit(code)
	}
	return nil
}
