package config

import (
	_ "embed"
)

//go:embed defaults/hangman.yaml
var defaultRulesYAML []byte

// DefaultRules returns the default gameplay rules.
func DefaultRules() Rules {
	return Rules{
		Round: RoundRules{
			Attempts: 6,
		},
		Scoring: ScoringRules{
			CorrectLetter:    10,
			WrongPenalty:     5,
			PerfectWordBonus: 50,
			WordBonus:        20,
			HintCompletion:   10,
		},
		Hints: HintRules{
			Normal: 3,
			Hard:   1,
			Custom: 2,
		},
	}
}
