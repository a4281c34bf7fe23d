package game

// EventKind classifies a state transition emitted after each applied
// action.
type EventKind int

const (
	EventReveal EventKind = iota // Correct letter guess
	EventMiss                    // Incorrect letter or word guess
	EventHint                    // Hint reveal that did not finish the word
	EventWin                     // Round won (terminal for the round)
	EventLose                    // Round lost (terminal for the session)
	EventStop                    // Player abandoned the session
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventReveal:
		return "reveal"
	case EventMiss:
		return "miss"
	case EventHint:
		return "hint"
	case EventWin:
		return "win"
	case EventLose:
		return "lose"
	case EventStop:
		return "stop"
	default:
		return "unknown"
	}
}

// Event describes the transition an action caused, carrying everything
// the presentation layer needs without reaching back into game state.
type Event struct {
	Kind       EventKind
	Letter     byte // Guessed or hint-revealed letter, if any
	Secret     string
	RoundScore int
	TotalScore int
	Level      int
	HintsLeft  int
	Perfect    bool // Whole word guessed with at most one prior reveal
}

// Notifier is a fire-and-forget sink for game events (bell, sound, ...).
// Implementations must not fail in a way that affects game state.
type Notifier interface {
	Play(kind EventKind)
}

// NopNotifier discards all events.
type NopNotifier struct{}

// Play implements Notifier.
func (NopNotifier) Play(EventKind) {}
