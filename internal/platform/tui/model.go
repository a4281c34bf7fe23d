package tui

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vmerkulov/tui-hangman/internal/game"
)

// SessionOutcome is the player's disposition after a session ends.
type SessionOutcome int

const (
	OutcomeMainMenu SessionOutcome = iota
	OutcomeRestart
	OutcomeQuit
)

// phase tracks which screen of the play flow is active.
type phase int

const (
	phasePlaying phase = iota
	phaseRoundWon
	phaseSaveScore
	phaseGameOver
)

// GameModel is the Bubble Tea model for a play session. It drives the
// game coordinator one action at a time and renders snapshots.
type GameModel struct {
	coord *game.Coordinator
	rng   *rand.Rand

	input     textinput.Model
	nameInput textinput.Model

	phase     phase
	lastWin   game.Event
	lastLose  game.Event
	message   string
	msgStyle  lipgloss.Style
	quote     string
	afterSave SessionOutcome // Where to go once the save screen finishes
	saveNote  string

	width   int
	height  int
	outcome SessionOutcome
	err     error
}

// NewGameModel creates the play model for an already-started session.
func NewGameModel(coord *game.Coordinator, rng *rand.Rand, width, height int) GameModel {
	input := textinput.New()
	input.Placeholder = "letter, word, 'hint' or 'stop'"
	input.CharLimit = 32
	input.Width = 36
	input.Focus()

	nameInput := textinput.New()
	nameInput.Placeholder = "your name"
	nameInput.CharLimit = 24
	nameInput.Width = 28

	return GameModel{
		coord:     coord,
		rng:       rng,
		input:     input,
		nameInput: nameInput,
		width:     width,
		height:    height,
	}
}

// Init implements tea.Model.
func (m GameModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.outcome = OutcomeQuit
			return m, tea.Quit
		}
		switch m.phase {
		case phasePlaying:
			return m.updatePlaying(msg)
		case phaseRoundWon:
			return m.updateRoundWon(msg)
		case phaseSaveScore:
			return m.updateSaveScore(msg)
		case phaseGameOver:
			return m.updateGameOver(msg)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// updatePlaying handles input while a round is in progress.
func (m GameModel) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() != "enter" {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	text := m.input.Value()
	m.input.SetValue("")

	action, err := game.ParseAction(text)
	if err != nil {
		m.setMessage(errorStyle, "Invalid input. Guess a single letter, the full word, or type 'hint'.")
		return m, nil
	}

	ev, err := m.coord.Apply(action)
	if err != nil {
		m.setMessage(errorStyle, recoverableMessage(err))
		return m, nil
	}

	switch ev.Kind {
	case game.EventReveal:
		m.setMessage(scoreStyle, fmt.Sprintf("Nice! '%c' is in the word.", ev.Letter))
	case game.EventMiss:
		m.setMessage(errorStyle, "Incorrect guess!")
	case game.EventHint:
		m.setMessage(hintStyle, fmt.Sprintf("Hint used! Letter '%c' revealed.", ev.Letter))
	case game.EventWin:
		m.lastWin = ev
		m.phase = phaseRoundWon
		m.message = ""
	case game.EventLose:
		m.lastLose = ev
		m.quote = defeatQuotes[m.rng.Intn(len(defeatQuotes))]
		m.message = ""
		if m.coord.CanSaveScore() {
			m.phase = phaseSaveScore
			m.afterSave = OutcomeMainMenu // Replaced by the game-over menu
			m.nameInput.Focus()
		} else {
			m.phase = phaseGameOver
		}
	case game.EventStop:
		if m.coord.CanSaveScore() {
			m.phase = phaseSaveScore
			m.afterSave = OutcomeMainMenu
			m.nameInput.Focus()
			return m, nil
		}
		m.outcome = OutcomeMainMenu
		return m, tea.Quit
	}

	return m, nil
}

// updateRoundWon waits for confirmation before starting the next level.
func (m GameModel) updateRoundWon(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() != "enter" && msg.String() != " " {
		return m, nil
	}
	if err := m.coord.NextRound(); err != nil {
		m.err = err
		m.outcome = OutcomeMainMenu
		return m, tea.Quit
	}
	m.phase = phasePlaying
	m.message = ""
	m.input.Focus()
	return m, nil
}

// updateSaveScore collects the player name and persists the score.
// Esc or an empty name declines.
func (m GameModel) updateSaveScore(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.leaveSaveScore()
	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			return m.leaveSaveScore()
		}
		if err := m.coord.SaveScore(name); err != nil {
			// Persistence failures are reported; the session state is
			// intact, so the player may retry with another enter.
			m.saveNote = "Could not save score: " + err.Error()
			return m, nil
		}
		m.saveNote = "Your score has been saved!"
		return m.leaveSaveScore()
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// leaveSaveScore routes to the game-over menu after a loss, or exits
// after a stop.
func (m GameModel) leaveSaveScore() (tea.Model, tea.Cmd) {
	if m.lastLose.Kind == game.EventLose {
		m.phase = phaseGameOver
		return m, nil
	}
	m.outcome = m.afterSave
	return m, tea.Quit
}

// updateGameOver handles the post-loss restart / menu / quit choice.
func (m GameModel) updateGameOver(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "1", "r":
		m.outcome = OutcomeRestart
		return m, tea.Quit
	case "2", "m", "enter", "esc":
		m.outcome = OutcomeMainMenu
		return m, tea.Quit
	case "3", "q":
		m.outcome = OutcomeQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m *GameModel) setMessage(style lipgloss.Style, text string) {
	m.msgStyle = style
	m.message = text
}

// View implements tea.Model.
func (m GameModel) View() string {
	switch m.phase {
	case phaseRoundWon:
		return m.viewRoundWon()
	case phaseSaveScore:
		return m.viewSaveScore()
	case phaseGameOver:
		return m.viewGameOver()
	default:
		return m.viewPlaying()
	}
}

// viewPlaying renders the main round screen: HUD, gallows, mask,
// alphabet, scores and the input prompt.
func (m GameModel) viewPlaying() string {
	snap := m.coord.Snapshot()

	var b strings.Builder
	b.WriteString(titleStyle.Render("HANGMAN"))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf(
		"LEVEL %d  |  %s  |  HINTS: %d", snap.Level+1, snap.Mode.Label(), snap.Hints)))
	b.WriteString("\n")

	b.WriteString(gallowsStyle(snap.WrongGuesses).Render(gallowsArt(snap.WrongGuesses)))
	b.WriteString("\n\n")

	b.WriteString(maskStyle.Render(spaced(snap.Mask)))
	b.WriteString("\n\n")

	b.WriteString(m.viewAlphabet(snap))
	b.WriteString("\n\n")

	b.WriteString(scoreStyle.Render(fmt.Sprintf("Level score: %d", snap.RoundScore)))
	b.WriteString("   ")
	b.WriteString(scoreStyle.Render(fmt.Sprintf("Total score: %d", snap.TotalScore)))
	b.WriteString("   ")
	b.WriteString(subtleStyle.Render(fmt.Sprintf("Attempts left: %d", snap.AttemptsLeft)))
	b.WriteString("\n\n")

	if m.message != "" {
		b.WriteString(m.msgStyle.Render(m.message))
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("Guess a letter, type the full word, or use 'hint'. 'stop' ends the session."))

	return b.String() + "\n"
}

// viewAlphabet shows a-z with attempted letters struck through.
func (m GameModel) viewAlphabet(snap game.Snapshot) string {
	var b strings.Builder
	for letter := byte('a'); letter <= 'z'; letter++ {
		if strings.IndexByte(snap.Guessed, letter) >= 0 {
			b.WriteString(guessedStyle.Render(string(letter)))
		} else {
			b.WriteString(string(letter))
		}
		if letter != 'z' {
			b.WriteString(" ")
		}
	}
	return b.String()
}

func (m GameModel) viewRoundWon() string {
	ev := m.lastWin

	var lines []string
	lines = append(lines, winStyle.Render("VICTORY!"))
	lines = append(lines, fmt.Sprintf("The word was: %s", maskStyle.Render(ev.Secret)))
	if ev.Perfect {
		lines = append(lines, noticeStyle.Render("PERFECT GUESS BONUS!"))
	}
	lines = append(lines, scoreStyle.Render(fmt.Sprintf("Level score: %d", ev.RoundScore)))
	lines = append(lines, scoreStyle.Render(fmt.Sprintf("Total score: %d", ev.TotalScore)))
	lines = append(lines, hintStyle.Render("+1 hint for the next level"))
	lines = append(lines, "")
	lines = append(lines, subtleStyle.Render("Press enter for the next level"))

	return boxStyle.Render(strings.Join(lines, "\n")) + "\n"
}

func (m GameModel) viewSaveScore() string {
	var lines []string
	lines = append(lines, headerStyle.Render(fmt.Sprintf("Final score: %d", m.coord.FinalScore())))
	lines = append(lines, "")
	lines = append(lines, "Enter your name to save your score:")
	lines = append(lines, m.nameInput.View())
	if m.saveNote != "" {
		lines = append(lines, "")
		lines = append(lines, noticeStyle.Render(m.saveNote))
	}
	lines = append(lines, "")
	lines = append(lines, subtleStyle.Render("enter: save   esc: skip"))

	return boxStyle.Render(strings.Join(lines, "\n")) + "\n"
}

func (m GameModel) viewGameOver() string {
	ev := m.lastLose

	var lines []string
	lines = append(lines, loseStyle.Render("GAME OVER"))
	lines = append(lines, gallowsStyle(6).Render(gallowsArt(6)))
	lines = append(lines, fmt.Sprintf("The word was: %s", maskStyle.Render(ev.Secret)))
	lines = append(lines, scoreStyle.Render(fmt.Sprintf("Final score: %d", ev.TotalScore)))
	if m.saveNote != "" {
		lines = append(lines, noticeStyle.Render(m.saveNote))
	}
	lines = append(lines, "")
	lines = append(lines, subtleStyle.Render(`"`+m.quote+`"`))
	lines = append(lines, "")
	lines = append(lines, "1. Start new game")
	lines = append(lines, "2. Main menu")
	lines = append(lines, "3. Exit")

	return boxStyle.Render(strings.Join(lines, "\n")) + "\n"
}

// spaced renders the reveal mask with spaces between positions.
func spaced(mask string) string {
	var b strings.Builder
	for i := 0; i < len(mask); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(mask[i])
	}
	return b.String()
}

// recoverableMessage maps a re-prompt error to its player-facing text.
func recoverableMessage(err error) string {
	switch {
	case err == game.ErrRepeatLetter:
		return "You already guessed that letter. Try again!"
	case err == game.ErrNoHints:
		return "No hints left!"
	case err == game.ErrNothingToHint:
		return "All letters are already revealed!"
	default:
		return "Invalid input. Guess a single letter, the full word, or type 'hint'."
	}
}

// RunGame starts a session in the given mode and runs the play screen
// until the player quits, returns to the menu, or asks for a restart.
func RunGame(coord *game.Coordinator, mode game.Mode, rng *rand.Rand, width, height int) (SessionOutcome, error) {
	if err := coord.StartSession(mode); err != nil {
		return OutcomeMainMenu, err
	}

	model := NewGameModel(coord, rng, width, height)
	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return OutcomeMainMenu, fmt.Errorf("tui: game loop failed: %w", err)
	}

	gm, ok := final.(GameModel)
	if !ok {
		return OutcomeMainMenu, fmt.Errorf("tui: unexpected final model %T", final)
	}
	if gm.err != nil {
		return gm.outcome, gm.err
	}
	return gm.outcome, nil
}
