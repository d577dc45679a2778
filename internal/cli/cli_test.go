package cli_test

import (
	"bytes"
	"testing"

	"github.com/donaldgifford/runestone/internal/cli"
)

func TestNewRootCommand(t *testing.T) {
	info := cli.BuildInfo{Version: "test-version", Commit: "test-commit", Date: "test-date"}

	cmd := cli.NewRootCommand(info)

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}
	if cmd.Use != "runestone [files...]" {
		t.Errorf("expected Use to be 'runestone [files...]', got %q", cmd.Use)
	}
	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}
	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasVersionSubcommand(t *testing.T) {
	info := cli.BuildInfo{Version: "test", Commit: "test", Date: "test"}
	cmd := cli.NewRootCommand(info)

	subCmd, _, err := cmd.Find([]string{"version"})
	if err != nil {
		t.Fatalf("expected version subcommand to exist, got error: %v", err)
	}
	if subCmd.Name() != "version" {
		t.Errorf("expected subcommand name %q, got %q", "version", subCmd.Name())
	}
}

func TestGlobalFlags(t *testing.T) {
	info := cli.BuildInfo{Version: "test", Commit: "test", Date: "test"}
	cmd := cli.NewRootCommand(info)

	expectedFlags := []string{"check", "diff", "color", "assert", "debug", "config", "quiet", "verbose"}
	for _, name := range expectedFlags {
		if flag := cmd.PersistentFlags().Lookup(name); flag == nil {
			t.Errorf("expected global flag %q to exist", name)
		}
	}
}

func TestRootCommandAcceptsArbitraryArgs(t *testing.T) {
	info := cli.BuildInfo{Version: "test", Commit: "test", Date: "test"}
	cmd := cli.NewRootCommand(info)

	if err := cmd.Args(cmd, []string{"a.rs", "b.rs", "dir/c.rs"}); err != nil {
		t.Errorf("root command should accept arbitrary file args, got error: %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	info := cli.BuildInfo{Version: "1.2.3", Commit: "abc123", Date: "2026-08-06"}
	cmd := cli.NewRootCommand(info)
	cmd.SetArgs([]string{"version"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}
	if !bytes.Contains(out.Bytes(), []byte("1.2.3")) {
		t.Errorf("expected version output to contain %q, got %q", "1.2.3", out.String())
	}
}
