// Package game implements the hangman round and level state machines.
// It contains pure logic with no terminal dependencies; the platform
// layer handles input mapping and rendering.
package game

import (
	"fmt"
	"math/rand"

	"github.com/vmerkulov/tui-hangman/internal/config"
)

// Outcome classifies the state of a round.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeWin
	OutcomeLose
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "continue"
	}
}

// maskByte marks an unrevealed position in the reveal mask.
const maskByte = '-'

// Round tracks a single word-guessing round: the secret word, the reveal
// mask, the attempt budget and the round score. Win is always checked
// before lose; attempts only shrink on incorrect guesses, so a guess that
// completes the word can never lose.
type Round struct {
	secret       string
	mask         []byte
	guessed      map[byte]bool
	attemptsLeft int
	wrongGuesses int
	score        int
	guessCount   int // Correct reveals (letter guesses and hints)
	perfectGuess bool
	rules        config.Rules
}

// NewRound starts a round for the given secret word.
// The secret must be non-empty lowercase ASCII letters.
func NewRound(secret string, rules config.Rules) (*Round, error) {
	if secret == "" {
		return nil, fmt.Errorf("game: empty secret word")
	}
	for i := 0; i < len(secret); i++ {
		if secret[i] < 'a' || secret[i] > 'z' {
			return nil, fmt.Errorf("game: secret %q must be lowercase letters", secret)
		}
	}

	mask := make([]byte, len(secret))
	for i := range mask {
		mask[i] = maskByte
	}

	return &Round{
		secret:       secret,
		mask:         mask,
		guessed:      make(map[byte]bool),
		attemptsLeft: rules.Round.Attempts,
		rules:        rules,
	}, nil
}

// GuessLetter processes a single-letter guess.
// A repeated letter returns ErrRepeatLetter with no state change and no
// penalty. A correct letter reveals every occurrence; an incorrect one
// consumes an attempt and deducts points down to a floor of zero.
func (r *Round) GuessLetter(letter byte) (Outcome, error) {
	if r.Status() != OutcomeContinue {
		return r.Status(), ErrRoundOver
	}
	if letter < 'a' || letter > 'z' {
		return OutcomeContinue, ErrInvalidGuess
	}
	if r.guessed[letter] {
		return OutcomeContinue, ErrRepeatLetter
	}

	r.guessed[letter] = true

	if r.contains(letter) {
		r.reveal(letter)
		r.score += r.rules.Scoring.CorrectLetter
		r.guessCount++
	} else {
		r.penalize()
	}

	return r.Status(), nil
}

// GuessWord processes a whole-word guess. A correct word reveals the full
// mask; guessed with at most one prior reveal it earns the perfect-word
// bonus, later the smaller word bonus. An incorrect word is penalized
// exactly like an incorrect letter.
func (r *Round) GuessWord(word string) (Outcome, error) {
	if r.Status() != OutcomeContinue {
		return r.Status(), ErrRoundOver
	}
	if len(word) < 2 || !isAlpha(word) {
		return OutcomeContinue, ErrInvalidGuess
	}

	if word == r.secret {
		copy(r.mask, r.secret)
		if r.guessCount <= 1 {
			r.perfectGuess = true
			r.score += r.rules.Scoring.PerfectWordBonus
		} else {
			r.score += r.rules.Scoring.WordBonus
		}
	} else {
		r.penalize()
	}

	return r.Status(), nil
}

// UseHint reveals one randomly chosen unrevealed letter in all its
// positions, consuming one hint from the bank. The revealed letter counts
// as guessed. If the reveal completes the word, a flat completion award is
// added once, no matter how many positions the hint exposed.
func (r *Round) UseHint(bank *HintBank, rng *rand.Rand) (byte, Outcome, error) {
	if r.Status() != OutcomeContinue {
		return 0, r.Status(), ErrRoundOver
	}
	if bank.Balance() <= 0 {
		return 0, OutcomeContinue, ErrNoHints
	}

	var hidden []int
	for i, b := range r.mask {
		if b == maskByte {
			hidden = append(hidden, i)
		}
	}
	if len(hidden) == 0 {
		return 0, OutcomeContinue, ErrNothingToHint
	}

	letter := r.secret[hidden[rng.Intn(len(hidden))]]
	r.reveal(letter)
	r.guessed[letter] = true
	r.guessCount++

	if err := bank.Consume(); err != nil {
		return 0, OutcomeContinue, err
	}

	if r.Status() == OutcomeWin {
		r.score += r.rules.Scoring.HintCompletion
	}

	return letter, r.Status(), nil
}

// Status classifies the round. Win is checked before lose: a fully
// revealed mask wins even if no attempts remain.
func (r *Round) Status() Outcome {
	if string(r.mask) == r.secret {
		return OutcomeWin
	}
	if r.attemptsLeft == 0 {
		return OutcomeLose
	}
	return OutcomeContinue
}

// Secret returns the target word.
func (r *Round) Secret() string { return r.secret }

// Mask returns the current reveal mask, unrevealed positions as '-'.
func (r *Round) Mask() string { return string(r.mask) }

// Score returns the round score accumulated so far.
func (r *Round) Score() int { return r.score }

// AttemptsLeft returns the remaining incorrect-guess budget.
func (r *Round) AttemptsLeft() int { return r.attemptsLeft }

// WrongGuesses returns the count of incorrect guesses, used to select the
// gallows display stage.
func (r *Round) WrongGuesses() int { return r.wrongGuesses }

// PerfectGuess reports whether the word was guessed whole with at most
// one prior reveal.
func (r *Round) PerfectGuess() bool { return r.perfectGuess }

// HasGuessed reports whether the letter was attempted before.
func (r *Round) HasGuessed(letter byte) bool { return r.guessed[letter] }

// GuessedLetters returns all attempted letters in alphabetical order.
func (r *Round) GuessedLetters() []byte {
	letters := make([]byte, 0, len(r.guessed))
	for b := 'a'; b <= 'z'; b++ {
		if r.guessed[byte(b)] {
			letters = append(letters, byte(b))
		}
	}
	return letters
}

func (r *Round) contains(letter byte) bool {
	for i := 0; i < len(r.secret); i++ {
		if r.secret[i] == letter {
			return true
		}
	}
	return false
}

// reveal uncovers every occurrence of letter in the mask.
func (r *Round) reveal(letter byte) {
	for i := 0; i < len(r.secret); i++ {
		if r.secret[i] == letter {
			r.mask[i] = letter
		}
	}
}

// penalize applies the incorrect-guess cost: one attempt, one wrong-guess
// stage, and a score deduction floored at zero.
func (r *Round) penalize() {
	r.wrongGuesses++
	r.attemptsLeft--
	r.score -= r.rules.Scoring.WrongPenalty
	if r.score < 0 {
		r.score = 0
	}
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return len(s) > 0
}
