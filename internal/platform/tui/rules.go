package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vmerkulov/tui-hangman/internal/config"
)

// RulesModel is the static how-to-play screen.
type RulesModel struct {
	rules  config.Rules
	width  int
	height int
	done   bool
}

// NewRulesModel creates the rules screen.
func NewRulesModel(rules config.Rules, width, height int) RulesModel {
	return RulesModel{rules: rules, width: width, height: height}
}

// Init initializes the rules model.
func (m RulesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the rules screen. Any key returns to the
// caller.
func (m RulesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.done = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the rules screen.
func (m RulesModel) View() string {
	if m.done {
		return ""
	}

	r := m.rules
	var lines []string
	lines = append(lines, titleStyle.Render("HOW TO PLAY"))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("Guess the hidden word one letter at a time. You have %d", r.Round.Attempts))
	lines = append(lines, "wrong guesses before the man hangs. Each solved word takes")
	lines = append(lines, "you to the next level with a fresh word and one extra hint.")
	lines = append(lines, "")
	lines = append(lines, headerStyle.Render("Scoring"))
	lines = append(lines, fmt.Sprintf("  +%-3d correct letter (all occurrences revealed)", r.Scoring.CorrectLetter))
	lines = append(lines, fmt.Sprintf("  -%-3d wrong letter or word (score never drops below 0)", r.Scoring.WrongPenalty))
	lines = append(lines, fmt.Sprintf("  +%-3d solving the whole word on your first try", r.Scoring.PerfectWordBonus))
	lines = append(lines, fmt.Sprintf("  +%-3d solving the whole word later in the round", r.Scoring.WordBonus))
	lines = append(lines, fmt.Sprintf("  +%-3d finishing a word with a hint", r.Scoring.HintCompletion))
	lines = append(lines, "")
	lines = append(lines, headerStyle.Render("Hints"))
	lines = append(lines, "  Type 'hint' to reveal a random hidden letter. Hints carry")
	lines = append(lines, "  over between levels and you earn one more for every win.")
	lines = append(lines, fmt.Sprintf("  Starting hints: Normal %d, Hard %d, Custom %d.",
		r.Hints.Normal, r.Hints.Hard, r.Hints.Custom))
	lines = append(lines, "")
	lines = append(lines, headerStyle.Render("Session"))
	lines = append(lines, "  Type 'stop' to end the session and keep your total score.")
	lines = append(lines, "  Losing a round ends the run; you can save your score either way.")
	lines = append(lines, "")
	lines = append(lines, subtleStyle.Render("Press any key to go back"))

	return centerBlock(boxStyle.Render(strings.Join(lines, "\n")), m.width)
}

// centerBlock indents every line of a multi-line block to center it.
func centerBlock(block string, width int) string {
	lines := strings.Split(block, "\n")
	widest := 0
	for _, line := range lines {
		if len(line) > widest {
			widest = len(line)
		}
	}
	if widest >= width {
		return block
	}
	pad := strings.Repeat(" ", (width-widest)/2)
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}

// RunRules shows the rules screen until a key is pressed.
func RunRules(rules config.Rules, width, height int) error {
	p := tea.NewProgram(NewRulesModel(rules, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
