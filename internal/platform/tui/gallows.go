// Package tui provides the Bubble Tea presentation for the hangman game.
// It handles menus, the play screen, and the leaderboard; game state
// lives entirely in internal/game.
package tui

import "github.com/charmbracelet/lipgloss"

// gallowsStages holds the hangman figure, indexed by wrong-guess count.
var gallowsStages = [7]string{
	`
  +---+
  |   |
      |
      |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
      |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
  |   |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|   |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
 /    |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
 / \  |
      |
=========`,
}

// gallowsArt returns the figure for the given wrong-guess count.
func gallowsArt(wrongGuesses int) string {
	if wrongGuesses < 0 {
		wrongGuesses = 0
	}
	if wrongGuesses >= len(gallowsStages) {
		wrongGuesses = len(gallowsStages) - 1
	}
	return gallowsStages[wrongGuesses]
}

// dangerColors maps wrong-guess count to the figure color.
var dangerColors = [7]lipgloss.Color{
	lipgloss.Color("7"),  // white
	lipgloss.Color("2"),  // green
	lipgloss.Color("2"),  // green
	lipgloss.Color("3"),  // yellow
	lipgloss.Color("3"),  // yellow
	lipgloss.Color("1"),  // red
	lipgloss.Color("9"),  // bright red
}

// gallowsStyle returns the style for the figure at the given stage.
func gallowsStyle(wrongGuesses int) lipgloss.Style {
	if wrongGuesses < 0 {
		wrongGuesses = 0
	}
	if wrongGuesses >= len(dangerColors) {
		wrongGuesses = len(dangerColors) - 1
	}
	return lipgloss.NewStyle().Foreground(dangerColors[wrongGuesses])
}

// defeatQuotes are shown on the lose screen, picked at random.
var defeatQuotes = []string{
	"Even the best wordsmith faces defeat sometimes...",
	"The gallows claim another victim. Better luck next time!",
	"The man hangs, but your spirit lives to play another day.",
	"Words can be tricky beasts. This one got the better of you.",
	"The hangman claims victory this time...",
}

// Shared styles for the play screen and menus.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	maskStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	scoreStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	winStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	loseStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	cursorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 3)
	guessedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Strikethrough(true)
)
