package game

import (
	"fmt"
	"math/rand"

	"github.com/vmerkulov/tui-hangman/internal/config"
)

// WordProvider supplies candidate words for a category. Implementations
// must return lowercase words and fall back to a default list rather than
// returning nothing for an unknown category.
type WordProvider interface {
	Words(category string) []string
}

// Record is one persisted leaderboard entry.
type Record struct {
	Name  string
	Score int
	Mode  string
}

// ScoreStore is the external append-only score collection.
type ScoreStore interface {
	Append(rec Record) error
	Records() ([]Record, error)
}

// ActionSource supplies player actions for RunSession. PlayerName is
// asked once when a score can be saved; returning false declines.
type ActionSource interface {
	NextAction() (Action, error)
	PlayerName() (string, bool)
}

// SessionEnd tells how a session finished.
type SessionEnd int

const (
	// SessionLost means the round loop reached a lose outcome. The ledger
	// and level index were reset.
	SessionLost SessionEnd = iota
	// SessionStopped means the player abandoned the session. The level
	// index is kept.
	SessionStopped
)

// Coordinator drives the level-progression loop: it picks words, runs one
// round at a time against the shared session state, and sequences
// consecutive rounds until a loss or an explicit stop.
type Coordinator struct {
	rules    config.Rules
	provider WordProvider
	store    ScoreStore
	notifier Notifier
	rng      *rand.Rand

	session      *Session
	words        []string
	round        *Round
	awaitingNext bool // Round won, next one not started yet
	ended        bool
	finalScore   int // Total captured when the session ended
}

// NewCoordinator wires the level loop to its collaborators. The store and
// notifier may be nil (no persistence, silent play). The rng must be
// non-nil; seed it for reproducible word picks and hints.
func NewCoordinator(rules config.Rules, provider WordProvider, store ScoreStore, notifier Notifier, rng *rand.Rand) *Coordinator {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Coordinator{
		rules:    rules,
		provider: provider,
		store:    store,
		notifier: notifier,
		rng:      rng,
	}
}

// StartSession resets all session state for the given mode and starts the
// first round. Safe to call again for a brand-new game; the previous
// session's hint balance is carried over when one exists, matching the
// accumulate-across-games hint rule.
func (c *Coordinator) StartSession(mode Mode) error {
	words := c.provider.Words(mode.WordCategory())
	if len(words) == 0 {
		return ErrNoWords
	}

	var carried *HintBank
	if c.session != nil {
		carried = c.session.Hints
	}

	c.session = NewSession(mode, c.rules)
	if carried != nil && carried.Balance() > c.session.Hints.Balance() {
		c.session.Hints = carried
	}

	c.words = words
	c.ended = false
	c.awaitingNext = false
	c.finalScore = 0
	return c.NextRound()
}

// Session returns the active session, or nil before StartSession.
func (c *Coordinator) Session() *Session { return c.session }

// Round returns the active round, or nil before StartSession.
func (c *Coordinator) Round() *Round { return c.round }

// NextRound picks a fresh word uniformly at random and starts a new
// round against the current session.
func (c *Coordinator) NextRound() error {
	if c.session == nil || c.ended {
		return ErrSessionOver
	}
	secret := c.words[c.rng.Intn(len(c.words))]
	round, err := NewRound(secret, c.rules)
	if err != nil {
		return fmt.Errorf("game: cannot start round: %w", err)
	}
	c.round = round
	c.awaitingNext = false
	return nil
}

// Apply processes one player action and returns the resulting event.
// Recoverable errors (repeat letter, invalid input, no hints) leave all
// state unchanged; the caller re-prompts.
func (c *Coordinator) Apply(a Action) (Event, error) {
	if c.session == nil || c.ended {
		return Event{}, ErrSessionOver
	}
	if c.awaitingNext {
		return Event{}, ErrRoundOver
	}

	switch a.Kind {
	case ActionStop:
		return c.finishStop(), nil

	case ActionHint:
		letter, outcome, err := c.round.UseHint(c.session.Hints, c.rng)
		if err != nil {
			return Event{}, err
		}
		if outcome == OutcomeWin {
			return c.finishWin(letter), nil
		}
		ev := c.event(EventHint, letter)
		c.notifier.Play(ev.Kind)
		return ev, nil

	case ActionGuessLetter:
		correct := c.round.contains(a.Letter)
		outcome, err := c.round.GuessLetter(a.Letter)
		if err != nil {
			return Event{}, err
		}
		return c.settle(outcome, correct, a.Letter), nil

	case ActionGuessWord:
		correct := a.Word == c.round.Secret()
		outcome, err := c.round.GuessWord(a.Word)
		if err != nil {
			return Event{}, err
		}
		return c.settle(outcome, correct, 0), nil
	}

	return Event{}, ErrInvalidGuess
}

// settle classifies a guess result into an event, handling the two
// terminal outcomes.
func (c *Coordinator) settle(outcome Outcome, correct bool, letter byte) Event {
	switch outcome {
	case OutcomeWin:
		return c.finishWin(letter)
	case OutcomeLose:
		return c.finishLose()
	}
	kind := EventMiss
	if correct {
		kind = EventReveal
	}
	ev := c.event(kind, letter)
	c.notifier.Play(ev.Kind)
	return ev
}

// finishWin folds the round score into the ledger, advances the level,
// grants the completion hint and leaves the coordinator waiting for
// NextRound.
func (c *Coordinator) finishWin(letter byte) Event {
	roundScore := c.round.Score()
	c.session.Ledger.Add(roundScore)
	c.session.Level++
	c.session.Hints.Grant(1)
	c.awaitingNext = true

	ev := c.event(EventWin, letter)
	ev.RoundScore = roundScore
	c.notifier.Play(ev.Kind)
	return ev
}

// finishLose captures the final total for persistence, then resets the
// ledger and level index. The session is over; disposition (restart,
// menu, quit) belongs to the caller.
func (c *Coordinator) finishLose() Event {
	c.finalScore = c.session.Ledger.Total()
	c.ended = true

	ev := c.event(EventLose, 0)
	ev.TotalScore = c.finalScore

	c.session.Ledger.Reset()
	c.session.Level = 0

	c.notifier.Play(ev.Kind)
	return ev
}

// finishStop abandons the session without resetting the level index.
func (c *Coordinator) finishStop() Event {
	c.finalScore = c.session.Ledger.Total()
	c.ended = true

	ev := c.event(EventStop, 0)
	ev.TotalScore = c.finalScore
	c.notifier.Play(ev.Kind)
	return ev
}

func (c *Coordinator) event(kind EventKind, letter byte) Event {
	return Event{
		Kind:       kind,
		Letter:     letter,
		Secret:     c.round.Secret(),
		RoundScore: c.round.Score(),
		TotalScore: c.session.Ledger.Total(),
		Level:      c.session.Level,
		HintsLeft:  c.session.Hints.Balance(),
		Perfect:    c.round.PerfectGuess(),
	}
}

// CanSaveScore reports whether the ended session left a positive score to
// persist.
func (c *Coordinator) CanSaveScore() bool {
	return c.ended && c.finalScore > 0 && c.store != nil
}

// FinalScore returns the total captured when the session ended.
func (c *Coordinator) FinalScore() int { return c.finalScore }

// SaveScore appends the ended session's score to the store. A store
// failure is reported to the caller; in-memory state stays intact.
func (c *Coordinator) SaveScore(name string) error {
	if !c.CanSaveScore() {
		return ErrSessionOver
	}
	rec := Record{Name: name, Score: c.finalScore, Mode: c.session.Mode.Label()}
	if err := c.store.Append(rec); err != nil {
		return fmt.Errorf("game: cannot save score: %w", err)
	}
	return nil
}

// RunSession drives the full round/level loop from an action source,
// starting rounds after wins and offering persistence when the session
// ends with a positive score. Recoverable action errors re-prompt.
func (c *Coordinator) RunSession(mode Mode, src ActionSource) (SessionEnd, error) {
	if err := c.StartSession(mode); err != nil {
		return SessionLost, err
	}

	for {
		action, err := src.NextAction()
		if err != nil {
			return SessionLost, fmt.Errorf("game: input failed: %w", err)
		}

		ev, err := c.Apply(action)
		if err != nil {
			if IsRecoverable(err) {
				continue
			}
			return SessionLost, err
		}

		switch ev.Kind {
		case EventWin:
			if err := c.NextRound(); err != nil {
				return SessionLost, err
			}
		case EventLose, EventStop:
			var saveErr error
			if c.CanSaveScore() {
				if name, ok := src.PlayerName(); ok {
					saveErr = c.SaveScore(name)
				}
			}
			if ev.Kind == EventStop {
				return SessionStopped, saveErr
			}
			return SessionLost, saveErr
		}
	}
}
