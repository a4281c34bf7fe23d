package game

import (
	"strings"

	"github.com/vmerkulov/tui-hangman/internal/config"
)

// Mode identifies the session's difficulty choice. Category is only set
// for custom play and is carried into persisted score records.
type Mode struct {
	Difficulty config.Difficulty
	Category   string
}

// Label returns the mode string attached to score records, e.g.
// "Normal", "Hard" or "Custom:Animals".
func (m Mode) Label() string {
	switch m.Difficulty {
	case config.DifficultyHard:
		return "Hard"
	case config.DifficultyCustom:
		return "Custom:" + titleCase(m.Category)
	default:
		return "Normal"
	}
}

// WordCategory returns the word-list category this mode draws from.
func (m Mode) WordCategory() string {
	if m.Difficulty == config.DifficultyCustom {
		return m.Category
	}
	return string(m.Difficulty)
}

// HintBank is the depletable hint counter shared across rounds within a
// session. The balance never goes negative.
type HintBank struct {
	balance int
}

// NewHintBank creates a bank with the given starting balance.
func NewHintBank(n int) *HintBank {
	if n < 0 {
		n = 0
	}
	return &HintBank{balance: n}
}

// Grant adds n hints to the balance.
func (b *HintBank) Grant(n int) {
	if n > 0 {
		b.balance += n
	}
}

// Consume spends one hint. Fails with ErrNoHints when the balance is zero.
func (b *HintBank) Consume() error {
	if b.balance <= 0 {
		return ErrNoHints
	}
	b.balance--
	return nil
}

// Balance returns the current hint count.
func (b *HintBank) Balance() int { return b.balance }

// ScoreLedger accumulates completed round scores into a running session
// total.
type ScoreLedger struct {
	total int
}

// Add folds a completed round's score into the total.
func (l *ScoreLedger) Add(roundScore int) { l.total += roundScore }

// Reset zeroes the total. Called on loss and on a brand-new game.
func (l *ScoreLedger) Reset() { l.total = 0 }

// Total returns the running session total.
func (l *ScoreLedger) Total() int { return l.total }

// Session holds the cross-round state: running total, hint balance and
// level index. It is mutated only by the coordinator/round pair.
type Session struct {
	Mode   Mode
	Level  int // Increments on every win, resets to 0 on loss
	Hints  *HintBank
	Ledger *ScoreLedger
}

// NewSession creates a session for the given mode with the difficulty's
// starting hint balance.
func NewSession(mode Mode, rules config.Rules) *Session {
	return &Session{
		Mode:   mode,
		Hints:  NewHintBank(rules.StartingHints(mode.Difficulty)),
		Ledger: &ScoreLedger{},
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
