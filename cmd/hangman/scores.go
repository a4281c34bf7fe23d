package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmerkulov/tui-hangman/internal/storage"
)

var (
	flagScoresMode string
	flagScoresAll  bool
	flagClear      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top 10 leaderboard entries.

Use --mode to filter by game mode. "Custom:" matches every custom
category. Use --all to list every entry, and --clear to wipe the
leaderboard.

Examples:
  hangman scores
  hangman scores --mode Normal
  hangman scores --mode Custom:
  hangman scores --all
  hangman scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresMode, "mode", "", "Filter by mode (Normal, Hard, Custom:<category>)")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every entry, not just the top 10")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all leaderboard entries")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		clearScores(store)
		return
	}

	var scores []storage.ScoreEntry
	switch {
	case flagScoresMode != "":
		limit := 10
		if flagScoresAll {
			limit = 100
		}
		scores, err = store.ScoresByMode(flagScoresMode, limit)
	case flagScoresAll:
		scores, err = store.AllScores()
	default:
		scores, err = store.TopScores(10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	title := "Leaderboard"
	if flagScoresMode != "" {
		title = fmt.Sprintf("Leaderboard - %s", flagScoresMode)
	}
	fmt.Println(title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'hangman play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-16s  %-8s  %-18s  %s\n", "Rank", "Name", "Score", "Mode", "Date")
	fmt.Printf("  %-4s  %-16s  %-8s  %-18s  %s\n", "----", "----", "-----", "----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-8d  %-18s  %s\n", i+1, entry.Name, entry.Score, entry.Mode, dateStr)
	}

	// Per-mode aggregates, only for the unfiltered view
	if flagScoresMode == "" {
		stats, statsErr := store.AllModeStats()
		if statsErr == nil && len(stats) > 0 {
			fmt.Println()
			for _, st := range stats {
				fmt.Printf("  %-18s  %d games, best %d, avg %.0f\n", st.Mode, st.Players, st.Best, st.AvgScore)
			}
		}
	}
}

// clearScores wipes the leaderboard after a confirmation prompt.
func clearScores(store *storage.Store) {
	fmt.Print("Delete ALL leaderboard entries? This cannot be undone. [y/N] ")
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))

	if answer != "y" && answer != "yes" {
		fmt.Println("Aborted.")
		return
	}

	if err := store.ClearScores(); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Leaderboard cleared.")
}
