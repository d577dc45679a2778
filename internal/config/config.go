// Package config defines the configuration types and defaults for runestone.
package config

// Config is the top-level configuration.
type Config struct {
	Engine EngineConfig `yaml:"engine"`
	Rules  RulesConfig  `yaml:"rules"`
}

// EngineConfig controls the fixed-point driver itself, independent of any
// individual rule.
type EngineConfig struct {
	Assert bool `yaml:"assert"`
	Debug  bool `yaml:"debug"`
}

// RulesConfig toggles each of the canonical rules on or off. All default to
// enabled; a disabled rule is dropped from the pipeline entirely rather than
// defanged, so it never appears in a run's rule list.
type RulesConfig struct {
	TrimTrailingWhitespace  bool `yaml:"trim_trailing_whitespace"`
	NormalizeNumericLiteral bool `yaml:"normalize_numeric_literal"`
	SpaceAroundInfixOp      bool `yaml:"space_around_infix_op"`
	SpaceAroundAssignment   bool `yaml:"space_around_assignment"`
	NoSpaceAroundColon      bool `yaml:"no_space_around_colon"`
	ForLoopUsesIn           bool `yaml:"for_loop_uses_in"`
	SpaceAfterComma         bool `yaml:"space_after_comma"`
	FinalNewline            bool `yaml:"final_newline"`
}

// DefaultConfig returns a Config with every rule enabled and assertions off.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			Assert: false,
			Debug:  false,
		},
		Rules: RulesConfig{
			TrimTrailingWhitespace:  true,
			NormalizeNumericLiteral: true,
			SpaceAroundInfixOp:      true,
			SpaceAroundAssignment:   true,
			NoSpaceAroundColon:      true,
			ForLoopUsesIn:           true,
			SpaceAfterComma:         true,
			FinalNewline:            true,
		},
	}
}
