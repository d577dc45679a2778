package rules_test

import (
	"testing"

	"github.com/donaldgifford/runestone/internal/runestone/rules"
)

func TestSpaceAroundInfixOp(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{"already single space", "x = 1 + 2\n", "x = 1 + 2\n"},
		{"extra spaces both sides", "x = 1   +   2\n", "x = 1 + 2\n"},
		{"comparison operator", "x = 1   ==   2\n", "x = 1 == 2\n"},
		{"leaves colon alone", "x = 1 : 3\n", "x = 1 : 3\n"},
	}

	rule := &rules.SpaceAroundInfixOp{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatWith(t, rule, tt.src)
			if got != tt.expected {
				t.Errorf("want %q, got %q", tt.expected, got)
			}
		})
	}
}
