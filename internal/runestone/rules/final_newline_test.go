package rules_test

import (
	"testing"

	"github.com/donaldgifford/runestone/internal/runestone/rules"
)

func TestFinalNewline(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{"missing newline", "x = 1", "x = 1\n"},
		{"already present", "x = 1\n", "x = 1\n"},
		{"empty input", "", "\n"},
	}

	rule := &rules.FinalNewline{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatWith(t, rule, tt.src)
			if got != tt.expected {
				t.Errorf("want %q, got %q", tt.expected, got)
			}
		})
	}
}
