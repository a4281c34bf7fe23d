// Package config provides YAML-based rules loading and difficulty
// management for the hangman game.
package config

// Rules contains all tunable gameplay parameters.
type Rules struct {
	Round   RoundRules   `yaml:"round"`
	Scoring ScoringRules `yaml:"scoring"`
	Hints   HintRules    `yaml:"hints"`
}

// RoundRules defines per-round parameters.
type RoundRules struct {
	Attempts int `yaml:"attempts"` // Incorrect guesses allowed before losing
}

// ScoringRules defines the score deltas applied during a round.
type ScoringRules struct {
	CorrectLetter    int `yaml:"correct_letter"`     // Awarded per correct letter guess
	WrongPenalty     int `yaml:"wrong_penalty"`      // Deducted per incorrect guess (floor 0)
	PerfectWordBonus int `yaml:"perfect_word_bonus"` // Whole word guessed with at most one prior reveal
	WordBonus        int `yaml:"word_bonus"`         // Whole word guessed later in the round
	HintCompletion   int `yaml:"hint_completion"`    // Flat award when a hint reveal finishes the word
}

// HintRules defines the starting hint balance per difficulty.
type HintRules struct {
	Normal int `yaml:"normal"`
	Hard   int `yaml:"hard"`
	Custom int `yaml:"custom"`
}

// Difficulty represents a named difficulty preset.
type Difficulty string

const (
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
	DifficultyCustom Difficulty = "custom"
)

// StartingHints returns the hint balance a new session begins with.
func (r Rules) StartingHints(d Difficulty) int {
	switch d {
	case DifficultyHard:
		return r.Hints.Hard
	case DifficultyCustom:
		return r.Hints.Custom
	default:
		return r.Hints.Normal
	}
}

// ParseDifficulty maps user input to a difficulty preset.
// Returns false if the input names no known preset.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch s {
	case "normal", "easy", "1":
		return DifficultyNormal, true
	case "hard", "2":
		return DifficultyHard, true
	case "custom", "3":
		return DifficultyCustom, true
	}
	return "", false
}
