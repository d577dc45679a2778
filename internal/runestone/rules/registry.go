// Package rules contains the canonical formatting rules and the pipeline
// that assembles them from configuration.
package rules

import (
	"github.com/donaldgifford/runestone/internal/config"
	"github.com/donaldgifford/runestone/internal/engine"
)

// Pipeline returns the enabled rules in the canonical execution order
// (spec.md §6). A rule disabled in cfg is omitted entirely rather than
// included and defanged, so it never appears in a run's rule list.
func Pipeline(cfg *config.RulesConfig) []engine.Rule {
	var out []engine.Rule

	if cfg.TrimTrailingWhitespace {
		out = append(out, &TrimTrailingWhitespace{})
	}
	if cfg.NormalizeNumericLiteral {
		out = append(out, &NormalizeNumericLiteral{})
	}
	if cfg.SpaceAroundInfixOp {
		out = append(out, &SpaceAroundInfixOp{})
	}
	if cfg.SpaceAroundAssignment {
		out = append(out, &SpaceAroundAssignment{})
	}
	if cfg.NoSpaceAroundColon {
		out = append(out, &NoSpaceAroundColon{})
	}
	if cfg.ForLoopUsesIn {
		out = append(out, &ForLoopUsesIn{})
	}
	if cfg.SpaceAfterComma {
		out = append(out, &SpaceAfterComma{})
	}
	if cfg.FinalNewline {
		out = append(out, &FinalNewline{})
	}

	return out
}
