package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vmerkulov/tui-hangman/internal/config"
	"github.com/vmerkulov/tui-hangman/internal/game"
	"github.com/vmerkulov/tui-hangman/internal/words"
)

// MenuChoice identifies a main menu entry.
type MenuChoice int

const (
	MenuChoicePlay MenuChoice = iota
	MenuChoiceLeaderboard
	MenuChoiceRules
	MenuChoiceQuit
)

var menuEntries = []struct {
	choice MenuChoice
	title  string
}{
	{MenuChoicePlay, "Play"},
	{MenuChoiceLeaderboard, "Leaderboard"},
	{MenuChoiceRules, "Rules"},
	{MenuChoiceQuit, "Quit"},
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	cursor   int
	width    int
	height   int
	quitting bool
	selected MenuChoice
	chosen   bool
}

// NewMenuModel creates a new main menu model.
func NewMenuModel(width, height int) MenuModel {
	return MenuModel{width: width, height: height}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(menuEntries)-1 {
				m.cursor++
			}
		case "enter", " ":
			m.selected = menuEntries[m.cursor].choice
			m.chosen = true
			if m.selected == MenuChoiceQuit {
				m.quitting = true
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting && !m.chosen {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("H A N G M A N"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(subtleStyle.Render("Guess the word before the man hangs"), m.width))
	b.WriteString("\n\n")

	for i, entry := range menuEntries {
		cursor := "  "
		line := entry.title
		if i == m.cursor {
			cursor = "> "
			line = cursorStyle.Render(line)
		}
		b.WriteString(centerText(cursor+line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(subtleStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// RunMenu runs the main menu and returns the player's choice.
func RunMenu(width, height int) (MenuChoice, error) {
	p := tea.NewProgram(NewMenuModel(width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuChoiceQuit, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || !m.chosen {
		return MenuChoiceQuit, nil
	}
	return m.selected, nil
}

// modePhase tracks which step of the mode picker is active.
type modePhase int

const (
	modePhaseDifficulty modePhase = iota
	modePhaseCategory
)

// difficultyEntry is one row of the difficulty picker.
type difficultyEntry struct {
	difficulty config.Difficulty
	title      string
	desc       string
}

// ModeModel is the Bubble Tea model for the difficulty and category
// pickers shown before a session starts.
type ModeModel struct {
	rules    config.Rules
	provider *words.Provider

	phase      modePhase
	entries    []difficultyEntry
	cursor     int
	categories []words.Stats
	catCursor  int

	width    int
	height   int
	quitting bool
	chosen   bool
	mode     game.Mode
}

// NewModeModel creates the mode picker.
func NewModeModel(rules config.Rules, provider *words.Provider, width, height int) ModeModel {
	entries := []difficultyEntry{
		{config.DifficultyNormal, "Normal",
			fmt.Sprintf("Everyday words, %d hints to start", rules.Hints.Normal)},
		{config.DifficultyHard, "Hard",
			fmt.Sprintf("Obscure words, %d hint to start", rules.Hints.Hard)},
		{config.DifficultyCustom, "Custom",
			fmt.Sprintf("Pick a category, %d hints to start", rules.Hints.Custom)},
	}
	return ModeModel{
		rules:    rules,
		provider: provider,
		entries:  entries,
		width:    width,
		height:   height,
	}
}

// Init initializes the mode picker.
func (m ModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the mode picker.
func (m ModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.phase {
		case modePhaseDifficulty:
			return m.updateDifficulty(msg)
		case modePhaseCategory:
			return m.updateCategory(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m ModeModel) updateDifficulty(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "enter", " ":
		picked := m.entries[m.cursor].difficulty
		if picked == config.DifficultyCustom {
			m.categories = nil
			for _, cat := range m.provider.Categories() {
				m.categories = append(m.categories, m.provider.CategoryStats(cat))
			}
			if len(m.categories) == 0 {
				// No custom categories available, stay on this screen.
				return m, nil
			}
			m.phase = modePhaseCategory
			m.catCursor = 0
			return m, nil
		}
		m.mode = game.Mode{Difficulty: picked}
		m.chosen = true
		return m, tea.Quit
	}
	return m, nil
}

func (m ModeModel) updateCategory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.phase = modePhaseDifficulty
		return m, nil
	case "up", "k":
		if m.catCursor > 0 {
			m.catCursor--
		}
	case "down", "j":
		if m.catCursor < len(m.categories)-1 {
			m.catCursor++
		}
	case "enter", " ":
		m.mode = game.Mode{
			Difficulty: config.DifficultyCustom,
			Category:   m.categories[m.catCursor].Category,
		}
		m.chosen = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the mode picker.
func (m ModeModel) View() string {
	if m.quitting {
		return ""
	}
	if m.phase == modePhaseCategory {
		return m.viewCategory()
	}
	return m.viewDifficulty()
}

func (m ModeModel) viewDifficulty() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(headerStyle.Render("SELECT DIFFICULTY"), m.width))
	b.WriteString("\n\n")

	for i, entry := range m.entries {
		cursor := "  "
		title := entry.title
		if i == m.cursor {
			cursor = "> "
			title = cursorStyle.Render(title)
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-8s %s", cursor, title, subtleStyle.Render(entry.desc)), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(subtleStyle.Render("Enter: Select  |  Esc: Back"), m.width))
	b.WriteString("\n")
	return b.String()
}

func (m ModeModel) viewCategory() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(headerStyle.Render("SELECT CATEGORY"), m.width))
	b.WriteString("\n\n")

	for i, st := range m.categories {
		cursor := "  "
		title := st.Category
		if i == m.catCursor {
			cursor = "> "
			title = cursorStyle.Render(title)
		}
		detail := subtleStyle.Render(fmt.Sprintf("%d words  %s", st.WordCount, stars(st.Rating)))
		b.WriteString(centerText(fmt.Sprintf("%s%-12s %s", cursor, title, detail), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(subtleStyle.Render("Difficulty rating is based on word length and pool size"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(subtleStyle.Render("Enter: Select  |  Esc: Back"), m.width))
	b.WriteString("\n")
	return b.String()
}

// stars renders a 1..5 difficulty rating.
func stars(rating int) string {
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("*", rating) + strings.Repeat(".", 5-rating)
}

// RunModePicker runs the difficulty/category picker. The second return
// value is false when the player backed out without choosing.
func RunModePicker(rules config.Rules, provider *words.Provider, width, height int) (game.Mode, bool, error) {
	p := tea.NewProgram(NewModeModel(rules, provider, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return game.Mode{}, false, err
	}

	m, ok := finalModel.(ModeModel)
	if !ok || !m.chosen {
		return game.Mode{}, false, nil
	}
	return m.mode, true, nil
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
