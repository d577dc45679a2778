package diff

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestColorizeEmptyInput(t *testing.T) {
	if got := Colorize(""); got != "" {
		t.Errorf("Colorize(\"\") = %q, want empty string", got)
	}
}

func TestColorizePassesHeadersThroughUncolored(t *testing.T) {
	color.NoColor = false
	defer func() { color.NoColor = true }()

	d := Unified("x.rs", "a\n", "b\n")
	got := Colorize(d)

	lines := strings.Split(got, "\n")
	if !strings.HasPrefix(lines[0], "--- a/x.rs") {
		t.Errorf("--- header should be uncolored, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "+++ b/x.rs") {
		t.Errorf("+++ header should be uncolored, got %q", lines[1])
	}
}

func TestColorizeAddedAndRemovedLines(t *testing.T) {
	color.NoColor = false
	defer func() { color.NoColor = true }()

	d := Unified("x.rs", "old\n", "new\n")
	got := Colorize(d)

	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected ANSI escape codes in colorized output, got %q", got)
	}
}

func TestColorizeNoColorPassesThroughLiterally(t *testing.T) {
	color.NoColor = true

	d := Unified("x.rs", "old\n", "new\n")
	got := Colorize(d)

	if got != d {
		t.Errorf("with color.NoColor, Colorize should be a no-op: got %q, want %q", got, d)
	}
}
