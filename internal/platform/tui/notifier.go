package tui

import (
	"os"

	"github.com/vmerkulov/tui-hangman/internal/game"
)

// BellNotifier signals notable game events with the terminal bell.
// It is fire-and-forget: write errors are ignored and never reach the
// game state.
type BellNotifier struct{}

// Play implements game.Notifier.
func (BellNotifier) Play(kind game.EventKind) {
	switch kind {
	case game.EventMiss, game.EventWin, game.EventLose:
		os.Stdout.Write([]byte("\a")) //nolint:errcheck // Best-effort bell
	}
}

var _ game.Notifier = BellNotifier{}
