package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vmerkulov/tui-hangman/internal/config"
	"github.com/vmerkulov/tui-hangman/internal/game"
	"github.com/vmerkulov/tui-hangman/internal/platform/tui"
	"github.com/vmerkulov/tui-hangman/internal/storage"
	"github.com/vmerkulov/tui-hangman/internal/words"
)

var (
	flagDifficulty string
	flagCategory   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: `Start a game session directly, skipping the main menu.

Without flags an interactive difficulty picker is shown. With
--difficulty the picker is skipped; custom difficulty also needs
--category.

Controls:
  Type a letter      - Guess a letter
  Type the word      - Guess the whole word
  hint               - Reveal a random letter
  stop               - End the session, keeping your score
  Ctrl+C             - Quit

Examples:
  hangman play
  hangman play --difficulty normal
  hangman play --difficulty hard
  hangman play --difficulty custom --category animals`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: normal, hard, custom")
	playCmd.Flags().StringVar(&flagCategory, "category", "", "Word category for custom difficulty")
}

func runPlay(_ *cobra.Command, _ []string) {
	rules := loadRules()
	provider := loadWords()
	store := openStore()
	defer closeStore(store)

	width, height := terminalSize()

	mode, ok := pickMode(rules, provider, width, height)
	if !ok {
		return
	}

	if _, err := playLoop(rules, provider, store, mode, width, height); err != nil {
		logger.Error("game loop failed", "err", err)
		os.Exit(1)
	}
}

// pickMode resolves the session mode from flags, falling back to the
// interactive picker when no difficulty was given.
func pickMode(rules config.Rules, provider *words.Provider, width, height int) (game.Mode, bool) {
	if flagDifficulty == "" {
		mode, ok, err := tui.RunModePicker(rules, provider, width, height)
		if err != nil {
			logger.Error("mode picker failed", "err", err)
			return game.Mode{}, false
		}
		return mode, ok
	}

	difficulty, ok := config.ParseDifficulty(flagDifficulty)
	if !ok {
		logger.Error("unknown difficulty", "difficulty", flagDifficulty)
		return game.Mode{}, false
	}

	mode := game.Mode{Difficulty: difficulty, Category: flagCategory}
	if difficulty == config.DifficultyCustom && flagCategory == "" {
		logger.Error("custom difficulty needs --category")
		return game.Mode{}, false
	}
	return mode, true
}

// playLoop runs sessions until the player asks for anything but a
// restart. The coordinator persists across restarts so the hint
// balance carries over. Returns the final disposition so callers can
// tell a quit from a return to the menu.
func playLoop(rules config.Rules, provider *words.Provider, store *storage.Store, mode game.Mode, width, height int) (tui.SessionOutcome, error) {
	coord := newCoordinator(rules, provider, store)

	for {
		outcome, err := tui.RunGame(coord, mode, newRNG(), width, height)
		if err != nil {
			return outcome, err
		}
		if outcome != tui.OutcomeRestart {
			return outcome, nil
		}
	}
}

// newCoordinator wires the game core to storage and the terminal bell.
// A nil store is fine; the session just cannot save scores.
func newCoordinator(rules config.Rules, provider *words.Provider, store *storage.Store) *game.Coordinator {
	var scoreStore game.ScoreStore
	if store != nil {
		scoreStore = store
	}
	return game.NewCoordinator(rules, provider, scoreStore, tui.BellNotifier{}, newRNG())
}

func closeStore(store *storage.Store) {
	if store != nil {
		store.Close()
	}
}
