package game

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vmerkulov/tui-hangman/internal/config"
)

// stubProvider returns a fixed word list for every category.
type stubProvider struct {
	words []string
}

func (p stubProvider) Words(string) []string { return p.words }

// memStore collects appended records in memory.
type memStore struct {
	records []Record
	failErr error
}

func (s *memStore) Append(rec Record) error {
	if s.failErr != nil {
		return s.failErr
	}
	s.records = append(s.records, rec)
	return nil
}

func (s *memStore) Records() ([]Record, error) { return s.records, nil }

// scriptedSource replays a fixed action sequence.
type scriptedSource struct {
	inputs []string
	pos    int
	name   string
	saveOK bool
}

func (s *scriptedSource) NextAction() (Action, error) {
	if s.pos >= len(s.inputs) {
		return Action{}, errors.New("script exhausted")
	}
	input := s.inputs[s.pos]
	s.pos++
	action, err := ParseAction(input)
	if err != nil {
		return Action{Kind: ActionGuessLetter, Letter: '?'}, nil // Exercise invalid path
	}
	return action, nil
}

func (s *scriptedSource) PlayerName() (string, bool) { return s.name, s.saveOK }

// countingNotifier tallies events per kind.
type countingNotifier struct {
	counts map[EventKind]int
}

func (n *countingNotifier) Play(kind EventKind) {
	if n.counts == nil {
		n.counts = make(map[EventKind]int)
	}
	n.counts[kind]++
}

func newTestCoordinator(words []string, store ScoreStore) *Coordinator {
	return NewCoordinator(
		config.DefaultRules(),
		stubProvider{words: words},
		store,
		nil,
		rand.New(rand.NewSource(42)),
	)
}

func TestStartSessionEmptyWordList(t *testing.T) {
	c := newTestCoordinator(nil, nil)
	if err := c.StartSession(Mode{Difficulty: config.DifficultyNormal}); err != ErrNoWords {
		t.Errorf("Expected ErrNoWords, got %v", err)
	}
}

func TestWinAdvancesLevelAndHints(t *testing.T) {
	c := newTestCoordinator([]string{"cat"}, nil)
	if err := c.StartSession(Mode{Difficulty: config.DifficultyNormal}); err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}

	for _, input := range []string{"c", "a"} {
		action, _ := ParseAction(input)
		if _, err := c.Apply(action); err != nil {
			t.Fatalf("Apply(%s) failed: %v", input, err)
		}
	}
	action, _ := ParseAction("t")
	ev, err := c.Apply(action)
	if err != nil {
		t.Fatalf("Apply(t) failed: %v", err)
	}

	if ev.Kind != EventWin {
		t.Fatalf("Expected win event, got %v", ev.Kind)
	}
	if ev.RoundScore != 30 {
		t.Errorf("Expected round score 30, got %d", ev.RoundScore)
	}
	if ev.TotalScore != 30 {
		t.Errorf("Expected total 30, got %d", ev.TotalScore)
	}
	if ev.Level != 1 {
		t.Errorf("Win must increment level to 1, got %d", ev.Level)
	}
	if ev.HintsLeft != 4 {
		t.Errorf("Win must grant a hint (3+1), got %d", ev.HintsLeft)
	}

	// Round is done; guesses must wait for the next round.
	if _, err := c.Apply(Action{Kind: ActionGuessLetter, Letter: 'x'}); err != ErrRoundOver {
		t.Errorf("Expected ErrRoundOver before NextRound, got %v", err)
	}
	if err := c.NextRound(); err != nil {
		t.Fatalf("NextRound failed: %v", err)
	}
	if c.Snapshot().Mask != "---" {
		t.Errorf("Fresh round expected, got mask %q", c.Snapshot().Mask)
	}
}

func TestLoseResetsLedgerAndLevel(t *testing.T) {
	c := newTestCoordinator([]string{"cat"}, nil)
	if err := c.StartSession(Mode{Difficulty: config.DifficultyHard}); err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}

	// Bank a win first so the ledger has something to lose.
	for _, input := range []string{"c", "a", "t"} {
		action, _ := ParseAction(input)
		if _, err := c.Apply(action); err != nil {
			t.Fatal(err)
		}
	}
	if err := c.NextRound(); err != nil {
		t.Fatal(err)
	}

	var last Event
	for _, input := range []string{"x", "y", "z", "q", "j", "w"} {
		action, _ := ParseAction(input)
		ev, err := c.Apply(action)
		if err != nil {
			t.Fatalf("Apply(%s) failed: %v", input, err)
		}
		last = ev
	}

	if last.Kind != EventLose {
		t.Fatalf("Expected lose event, got %v", last.Kind)
	}
	if last.Secret != "cat" {
		t.Errorf("Lose event must carry the secret, got %q", last.Secret)
	}
	if last.TotalScore != 30 {
		t.Errorf("Lose event must carry the pre-reset total, got %d", last.TotalScore)
	}
	if c.Session().Ledger.Total() != 0 {
		t.Errorf("Ledger must reset on loss, got %d", c.Session().Ledger.Total())
	}
	if c.Session().Level != 0 {
		t.Errorf("Level must reset on loss, got %d", c.Session().Level)
	}
	if !c.CanSaveScore() {
		t.Error("Positive final score must be saveable")
	}
	if c.FinalScore() != 30 {
		t.Errorf("Expected final score 30, got %d", c.FinalScore())
	}

	if _, err := c.Apply(Action{Kind: ActionGuessLetter, Letter: 'a'}); err != ErrSessionOver {
		t.Errorf("Expected ErrSessionOver after loss, got %v", err)
	}
}

func TestStopKeepsLevel(t *testing.T) {
	c := newTestCoordinator([]string{"cat"}, nil)
	if err := c.StartSession(Mode{Difficulty: config.DifficultyNormal}); err != nil {
		t.Fatal(err)
	}

	for _, input := range []string{"c", "a", "t"} {
		action, _ := ParseAction(input)
		if _, err := c.Apply(action); err != nil {
			t.Fatal(err)
		}
	}
	if err := c.NextRound(); err != nil {
		t.Fatal(err)
	}

	ev, err := c.Apply(Action{Kind: ActionStop})
	if err != nil {
		t.Fatalf("Apply(stop) failed: %v", err)
	}
	if ev.Kind != EventStop {
		t.Fatalf("Expected stop event, got %v", ev.Kind)
	}
	if c.Session().Level != 1 {
		t.Errorf("Stop must keep the level index, got %d", c.Session().Level)
	}
	if c.Session().Ledger.Total() != 30 {
		t.Errorf("Stop must keep the ledger, got %d", c.Session().Ledger.Total())
	}
}

func TestSaveScoreRecordsModeLabel(t *testing.T) {
	store := &memStore{}
	c := newTestCoordinator([]string{"cat"}, store)
	if err := c.StartSession(Mode{Difficulty: config.DifficultyCustom, Category: "animals"}); err != nil {
		t.Fatal(err)
	}

	for _, input := range []string{"c", "a", "t"} {
		action, _ := ParseAction(input)
		if _, err := c.Apply(action); err != nil {
			t.Fatal(err)
		}
	}
	if err := c.NextRound(); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Apply(Action{Kind: ActionStop}); err != nil {
		t.Fatal(err)
	}

	if err := c.SaveScore("alice"); err != nil {
		t.Fatalf("SaveScore failed: %v", err)
	}
	if len(store.records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(store.records))
	}
	rec := store.records[0]
	if rec.Name != "alice" || rec.Score != 30 || rec.Mode != "Custom:Animals" {
		t.Errorf("Unexpected record: %+v", rec)
	}
}

func TestSaveScoreFailureReported(t *testing.T) {
	store := &memStore{failErr: errors.New("disk full")}
	c := newTestCoordinator([]string{"ox"}, store)
	if err := c.StartSession(Mode{Difficulty: config.DifficultyNormal}); err != nil {
		t.Fatal(err)
	}

	for _, input := range []string{"o", "x"} {
		action, _ := ParseAction(input)
		if _, err := c.Apply(action); err != nil {
			t.Fatal(err)
		}
	}
	if err := c.NextRound(); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Apply(Action{Kind: ActionStop}); err != nil {
		t.Fatal(err)
	}

	err := c.SaveScore("bob")
	if err == nil {
		t.Fatal("Expected persistence failure to surface")
	}
	// In-memory score stays intact for a retry.
	if c.FinalScore() != 30 {
		t.Errorf("Final score must survive a failed save, got %d", c.FinalScore())
	}
}

func TestHintCarriesAcrossSessions(t *testing.T) {
	c := newTestCoordinator([]string{"ox"}, nil)
	if err := c.StartSession(Mode{Difficulty: config.DifficultyNormal}); err != nil {
		t.Fatal(err)
	}

	// Win twice: 3 starting hints + 2 grants.
	for range 2 {
		for _, input := range []string{"o", "x"} {
			action, _ := ParseAction(input)
			if _, err := c.Apply(action); err != nil {
				t.Fatal(err)
			}
		}
		if err := c.NextRound(); err != nil {
			t.Fatal(err)
		}
	}
	if c.Session().Hints.Balance() != 5 {
		t.Fatalf("Expected 5 hints, got %d", c.Session().Hints.Balance())
	}

	// A new game keeps the accumulated balance when it beats the preset.
	if err := c.StartSession(Mode{Difficulty: config.DifficultyNormal}); err != nil {
		t.Fatal(err)
	}
	if c.Session().Hints.Balance() != 5 {
		t.Errorf("Accumulated hints must carry over, got %d", c.Session().Hints.Balance())
	}
}

func TestRunSessionScripted(t *testing.T) {
	store := &memStore{}
	notifier := &countingNotifier{}
	c := NewCoordinator(
		config.DefaultRules(),
		stubProvider{words: []string{"cat"}},
		store,
		notifier,
		rand.New(rand.NewSource(42)),
	)

	src := &scriptedSource{
		inputs: []string{
			"c", "c", // Second c is a repeat: recoverable, re-prompt
			"!!", // Invalid: recoverable
			"a", "t", // Win round 1
			"cat", // Perfect word guess, win round 2
			"stop",
		},
		name:   "carol",
		saveOK: true,
	}

	end, err := c.RunSession(Mode{Difficulty: config.DifficultyNormal}, src)
	if err != nil {
		t.Fatalf("RunSession failed: %v", err)
	}
	if end != SessionStopped {
		t.Errorf("Expected SessionStopped, got %v", end)
	}

	if len(store.records) != 1 {
		t.Fatalf("Expected 1 saved record, got %d", len(store.records))
	}
	// Round 1: 30 points. Round 2: perfect word, +50.
	if store.records[0].Score != 80 {
		t.Errorf("Expected saved score 80, got %d", store.records[0].Score)
	}
	if store.records[0].Name != "carol" {
		t.Errorf("Expected name carol, got %q", store.records[0].Name)
	}

	if notifier.counts[EventWin] != 2 {
		t.Errorf("Expected 2 win events, got %d", notifier.counts[EventWin])
	}
	if notifier.counts[EventStop] != 1 {
		t.Errorf("Expected 1 stop event, got %d", notifier.counts[EventStop])
	}
}

func TestRunSessionLossDeclinesSave(t *testing.T) {
	store := &memStore{}
	c := newTestCoordinator([]string{"cat"}, store)

	src := &scriptedSource{
		inputs: []string{"c", "a", "t", "x", "y", "z", "q", "j", "w"},
		saveOK: false,
	}

	end, err := c.RunSession(Mode{Difficulty: config.DifficultyNormal}, src)
	if err != nil {
		t.Fatalf("RunSession failed: %v", err)
	}
	if end != SessionLost {
		t.Errorf("Expected SessionLost, got %v", end)
	}
	if len(store.records) != 0 {
		t.Errorf("Declined save must append nothing, got %d records", len(store.records))
	}
}
