package rules_test

import (
	"testing"

	"github.com/donaldgifford/runestone/internal/runestone/rules"
)

func TestNoSpaceAroundColon(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{"already tight", "x = 1:3\n", "x = 1:3\n"},
		{"spaces both sides", "x = 1 : 3\n", "x = 1:3\n"},
		{"space before only", "x = 1 :3\n", "x = 1:3\n"},
		{"space after only", "x = 1: 3\n", "x = 1:3\n"},
		{"leaves plus alone", "x = 1 + 3\n", "x = 1 + 3\n"},
	}

	rule := &rules.NoSpaceAroundColon{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatWith(t, rule, tt.src)
			if got != tt.expected {
				t.Errorf("want %q, got %q", tt.expected, got)
			}
		})
	}
}
