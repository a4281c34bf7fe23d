package game

// Snapshot captures the visible round and session state for rendering and
// for deterministic tests. It is a value copy; mutating it has no effect
// on the game.
type Snapshot struct {
	Mask         string
	Guessed      string // Attempted letters in alphabetical order
	AttemptsLeft int
	WrongGuesses int
	RoundScore   int
	TotalScore   int
	Level        int // 0-indexed; presentation shows Level+1
	Hints        int
	Mode         Mode
	Outcome      Outcome
}

// Snapshot returns the coordinator's current state snapshot.
func (c *Coordinator) Snapshot() Snapshot {
	snap := Snapshot{}
	if c.session != nil {
		snap.TotalScore = c.session.Ledger.Total()
		snap.Level = c.session.Level
		snap.Hints = c.session.Hints.Balance()
		snap.Mode = c.session.Mode
	}
	if c.round != nil {
		snap.Mask = c.round.Mask()
		snap.Guessed = string(c.round.GuessedLetters())
		snap.AttemptsLeft = c.round.AttemptsLeft()
		snap.WrongGuesses = c.round.WrongGuesses()
		snap.RoundScore = c.round.Score()
		snap.Outcome = c.round.Status()
	}
	return snap
}
