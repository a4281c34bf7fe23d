package game

import "errors"

// Recoverable gameplay errors. All of these leave round and session state
// untouched; callers re-prompt the player instead of aborting.
var (
	// ErrInvalidGuess means the input was neither a single letter nor an
	// alphabetic word.
	ErrInvalidGuess = errors.New("game: guess must be a single letter or an alphabetic word")

	// ErrRepeatLetter means the letter was guessed before. No penalty.
	ErrRepeatLetter = errors.New("game: letter already guessed")

	// ErrNoHints means the hint balance is zero.
	ErrNoHints = errors.New("game: no hints left")

	// ErrNothingToHint means every letter is already revealed.
	ErrNothingToHint = errors.New("game: all letters already revealed")

	// ErrRoundOver means an action arrived after the round reached a
	// terminal outcome.
	ErrRoundOver = errors.New("game: round already finished")

	// ErrSessionOver means an action arrived after the session ended.
	ErrSessionOver = errors.New("game: session already finished")
)

// ErrNoWords means the word provider returned an empty list. Not
// recoverable: the session cannot start without words.
var ErrNoWords = errors.New("game: word list is empty")

// IsRecoverable reports whether err is a re-prompt error rather than a
// failure that should end the session.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrInvalidGuess) ||
		errors.Is(err, ErrRepeatLetter) ||
		errors.Is(err, ErrNoHints) ||
		errors.Is(err, ErrNothingToHint)
}
