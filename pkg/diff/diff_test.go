package diff

import (
	"strings"
	"testing"
)

func TestUnifiedIdentical(t *testing.T) {
	result := Unified("test.rs", "hello\n", "hello\n")
	if result != "" {
		t.Errorf("expected empty diff for identical inputs, got:\n%s", result)
	}
}

func TestUnifiedEmptyInputs(t *testing.T) {
	tests := []struct {
		name         string
		old, updated string
		wantDiff     bool
	}{
		{"both empty", "", "", false},
		{"old empty", "", "hello\n", true},
		{"new empty", "hello\n", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Unified("test.rs", tt.old, tt.updated)
			hasDiff := result != ""
			if hasDiff != tt.wantDiff {
				t.Errorf("wantDiff=%v, got diff=%q", tt.wantDiff, result)
			}
		})
	}
}

func TestUnifiedAddition(t *testing.T) {
	old := "x = 1\ny = 2\n"
	updated := "x = 1\ny = 2\nz = 3\n"

	result := Unified("test.rs", old, updated)

	if !strings.Contains(result, "--- a/test.rs") {
		t.Error("missing --- header")
	}
	if !strings.Contains(result, "+++ b/test.rs") {
		t.Error("missing +++ header")
	}
	if !strings.Contains(result, "+z = 3\n") {
		t.Errorf("missing addition line, got:\n%s", result)
	}
}

func TestUnifiedDeletion(t *testing.T) {
	old := "x = 1\ny = 2\nz = 3\n"
	updated := "x = 1\nz = 3\n"

	result := Unified("test.rs", old, updated)

	if !strings.Contains(result, "-y = 2\n") {
		t.Errorf("missing deletion line, got:\n%s", result)
	}
}

func TestUnifiedModification(t *testing.T) {
	old := "x=1\n"
	updated := "x = 1\n"

	result := Unified("test.rs", old, updated)

	if !strings.Contains(result, "-x=1\n") {
		t.Errorf("missing old line, got:\n%s", result)
	}
	if !strings.Contains(result, "+x = 1\n") {
		t.Errorf("missing new line, got:\n%s", result)
	}
}

func TestUnifiedHunkHeaders(t *testing.T) {
	old := "x = 1\ny = 2\nz = 3\n"
	updated := "x = 1\ny  =  2\nz = 3\n"

	result := Unified("test.rs", old, updated)

	if !strings.Contains(result, "@@") {
		t.Errorf("missing @@ hunk header, got:\n%s", result)
	}
}

// TestUnifiedNoTrailingNewlineOnOldSide covers the case FinalNewline exists
// to fix: input missing its trailing newline, formatted output that has one.
func TestUnifiedNoTrailingNewlineOnOldSide(t *testing.T) {
	old := "x = 1"
	updated := "x = 1\n"

	result := Unified("test.rs", old, updated)

	if !strings.Contains(result, "-x = 1\n"+noNewlineMarker) {
		t.Errorf("expected no-newline marker after the old line, got:\n%s", result)
	}
	if strings.Contains(result, "+x = 1\n"+noNewlineMarker) {
		t.Errorf("did not expect no-newline marker after the new line, got:\n%s", result)
	}
}

// TestUnifiedNoTrailingNewlineBothSides covers a changed final line that
// lacks a trailing newline in both old and new text.
func TestUnifiedNoTrailingNewlineBothSides(t *testing.T) {
	old := "x = 1\ny=2"
	updated := "x = 1\ny = 2"

	result := Unified("test.rs", old, updated)

	if !strings.Contains(result, "-y=2\n"+noNewlineMarker) {
		t.Errorf("expected no-newline marker after the old line, got:\n%s", result)
	}
	if !strings.Contains(result, "+y = 2\n"+noNewlineMarker) {
		t.Errorf("expected no-newline marker after the new line, got:\n%s", result)
	}
}

func TestUnifiedLargeFile(t *testing.T) {
	oldLines := make([]string, 0, 1000)
	newLines := make([]string, 0, 1000)
	for i := range 1000 {
		oldLines = append(oldLines, "v"+string(rune('a'+i%26))+" = 1\n")
		newLines = append(newLines, "v"+string(rune('a'+i%26))+" = 1\n")
	}
	// Change a few lines.
	newLines[500] = "changed500 = 1\n"
	newLines[999] = "changed999 = 1\n"

	old := strings.Join(oldLines, "")
	updated := strings.Join(newLines, "")

	result := Unified("large.rs", old, updated)

	if result == "" {
		t.Error("expected non-empty diff for modified large file")
	}
	if !strings.Contains(result, "+changed500 = 1\n") {
		t.Error("missing change at line 500")
	}
	if !strings.Contains(result, "+changed999 = 1\n") {
		t.Error("missing change at line 999")
	}
}

func TestUnifiedContextLines(t *testing.T) {
	// Build a file with enough lines to see context.
	lines := make([]string, 0, 20)
	for i := range 20 {
		lines = append(lines, "v"+string(rune('a'+i))+" = 0\n")
	}
	old := strings.Join(lines, "")

	// Change line 10 (0-indexed).
	newLines := make([]string, len(lines))
	copy(newLines, lines)
	newLines[10] = "changed = 1\n"
	updated := strings.Join(newLines, "")

	result := Unified("test.rs", old, updated)

	// Should have context lines before and after the change.
	if !strings.Contains(result, " v"+string(rune('a'+7))) {
		t.Errorf("expected context line 7 before change, got:\n%s", result)
	}
	if !strings.Contains(result, " v"+string(rune('a'+13))) {
		t.Errorf("expected context line 13 after change, got:\n%s", result)
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"one line with newline", "hello\n", 1},
		{"one line no newline", "hello", 1},
		{"two lines", "a\nb\n", 2},
		{"trailing blank", "a\n\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := splitLines(tt.input)
			if len(lines) != tt.want {
				t.Errorf("splitLines(%q) = %d lines, want %d: %q", tt.input, len(lines), tt.want, lines)
			}
		})
	}
}
