package rules_test

import (
	"testing"

	"github.com/donaldgifford/runestone/internal/runestone/rules"
)

func TestSpaceAfterComma(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{"already single space", "t = (1, 2, 3)\n", "t = (1, 2, 3)\n"},
		{"extra spaces after comma", "t = (1,   2,   3)\n", "t = (1, 2, 3)\n"},
		{"no space after comma untouched", "t = (1,2,3)\n", "t = (1,2,3)\n"},
	}

	rule := &rules.SpaceAfterComma{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatWith(t, rule, tt.src)
			if got != tt.expected {
				t.Errorf("want %q, got %q", tt.expected, got)
			}
		})
	}
}
