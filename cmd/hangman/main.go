// hangman is a terminal word-guessing game with levels, hints and a
// persistent leaderboard.
//
// Usage:
//
//	hangman menu             - Interactive main menu
//	hangman play             - Start a game directly
//	hangman scores           - Show the leaderboard
//
// Global flags:
//
//	--db <path>      - Set database path (default: ~/.hangman/scores.db)
//	--seed <value>   - Set RNG seed for reproducible word picks
//	--words <path>   - Path to a custom word list YAML
//	--config <path>  - Path to a custom rules YAML
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vmerkulov/tui-hangman/internal/config"
	"github.com/vmerkulov/tui-hangman/internal/storage"
	"github.com/vmerkulov/tui-hangman/internal/words"
)

var (
	// Global flags
	flagDBPath string
	flagSeed   int64
	flagWords  string
	flagConfig string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "hangman",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hangman",
	Short: "Hangman - Guess words in your terminal",
	Long: `Hangman is a terminal word-guessing game. Solve words level after
level, earn hints, and climb the leaderboard.

Available commands:
  menu     - Interactive main menu
  play     - Start a game directly
  scores   - View the leaderboard

Examples:
  hangman menu
  hangman play --difficulty hard
  hangman play --difficulty custom --category animals
  hangman scores --mode Normal`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hangman/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagWords, "words", "", "Path to custom word list YAML")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadRules loads the game rules, falling back to defaults on failure.
func loadRules() config.Rules {
	rules, err := config.Load(flagConfig)
	if err != nil {
		logger.Warn("could not load rules config, using defaults", "err", err)
		return config.DefaultRules()
	}
	return rules
}

// loadWords loads the word lists. A broken word list is fatal since the
// game cannot run without words.
func loadWords() *words.Provider {
	provider, err := words.Load(flagWords)
	if err != nil {
		logger.Fatal("could not load word lists", "err", err)
	}
	return provider
}

// openStore opens the leaderboard database. The game still works
// without persistence, so a failure only logs a warning.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "err", err)
		return nil
	}
	return store
}

// terminalSize returns the terminal dimensions, with sane defaults when
// stdout is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// newRNG seeds the game RNG from the --seed flag, or the clock when the
// flag is zero.
func newRNG() *rand.Rand {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
