package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vmerkulov/tui-hangman/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the game with the interactive main menu",
	Long: `Start hangman in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select. After a session
ends you return to the menu.

Examples:
  hangman menu
  hangman menu --db ./scores.db
  hangman menu --words ./my-words.yaml`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	rules := loadRules()
	provider := loadWords()
	store := openStore()
	defer closeStore(store)

	width, height := terminalSize()

	// Menu loop
	for {
		choice, err := tui.RunMenu(width, height)
		if err != nil {
			logger.Error("menu failed", "err", err)
			os.Exit(1)
		}

		switch choice {
		case tui.MenuChoicePlay:
			mode, ok, pickErr := tui.RunModePicker(rules, provider, width, height)
			if pickErr != nil {
				logger.Error("mode picker failed", "err", pickErr)
				os.Exit(1)
			}
			if !ok {
				continue // Back to menu
			}
			outcome, playErr := playLoop(rules, provider, store, mode, width, height)
			if playErr != nil {
				logger.Error("game loop failed", "err", playErr)
			}
			if outcome == tui.OutcomeQuit {
				return
			}

		case tui.MenuChoiceLeaderboard:
			goBack, sbErr := tui.RunScoreboard(store, width, height)
			if sbErr != nil {
				logger.Error("leaderboard failed", "err", sbErr)
			}
			if !goBack {
				return // User quit from the leaderboard
			}

		case tui.MenuChoiceRules:
			if rulesErr := tui.RunRules(rules, width, height); rulesErr != nil {
				logger.Error("rules screen failed", "err", rulesErr)
			}

		case tui.MenuChoiceQuit:
			return
		}
	}
}
