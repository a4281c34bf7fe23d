package game

import "strings"

// ActionKind represents a semantic player action, abstracted from the raw
// text the player typed.
type ActionKind int

const (
	ActionGuessLetter ActionKind = iota
	ActionGuessWord
	ActionHint
	ActionStop
)

// String returns a human-readable name for the action kind.
func (k ActionKind) String() string {
	switch k {
	case ActionGuessLetter:
		return "guess-letter"
	case ActionGuessWord:
		return "guess-word"
	case ActionHint:
		return "hint"
	case ActionStop:
		return "stop"
	default:
		return "unknown"
	}
}

// Action is one player move: a letter guess, a whole-word guess, a hint
// request, or a stop request.
type Action struct {
	Kind   ActionKind
	Letter byte
	Word   string
}

// ParseAction interprets raw player input. "hint" and "stop" are reserved
// words ("stp" is kept as a legacy alias); a single letter is a letter
// guess; a longer alphabetic string is a word guess. Anything else is
// ErrInvalidGuess.
func ParseAction(input string) (Action, error) {
	text := strings.ToLower(strings.TrimSpace(input))

	switch text {
	case "hint":
		return Action{Kind: ActionHint}, nil
	case "stop", "stp":
		return Action{Kind: ActionStop}, nil
	}

	if len(text) == 1 && isAlpha(text) {
		return Action{Kind: ActionGuessLetter, Letter: text[0]}, nil
	}
	if len(text) > 1 && isAlpha(text) {
		return Action{Kind: ActionGuessWord, Word: text}, nil
	}

	return Action{}, ErrInvalidGuess
}
