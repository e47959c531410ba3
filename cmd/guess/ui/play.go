package ui

import (
	"errors"
	"fmt"
	"strings"

	"guessnerd/internal/game"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// ErrAborted is returned by Run when the player quits before winning.
var ErrAborted = errors.New("game aborted")

// PlayModel drives a game.Session from a text input.
type PlayModel struct {
	session *game.Session
	msgs    game.Messages
	styles  Styles
	input   textinput.Model
	history []game.Turn
	aborted bool
	log     *zap.Logger
}

// NewPlayModel creates a focused model for session.
func NewPlayModel(session *game.Session, msgs game.Messages, styles Styles, log *zap.Logger) PlayModel {
	if log == nil {
		log = zap.NewNop()
	}

	ti := textinput.New()
	ti.Placeholder = "a whole number"
	ti.CharLimit = 20
	ti.Width = 20
	ti.Focus()

	return PlayModel{
		session: session,
		msgs:    msgs.WithDefaults(),
		styles:  styles,
		input:   ti,
		log:     log,
	}
}

// Init starts the cursor blinking.
func (m PlayModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			m.log.Debug("tui aborted", zap.Int("turns", len(m.history)))
			return m, tea.Quit
		case tea.KeyEnter:
			turn := m.session.Submit(m.input.Value())
			m.history = append(m.history, turn)
			m.input.Reset()
			if m.session.Done() {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the banner, the turns so far and the prompt.
func (m PlayModel) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Header.Render(m.msgs.Banner))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Info.Render(fmt.Sprintf("Secret is between %s", m.session.Range())))
	sb.WriteString("\n\n")

	for _, turn := range m.history {
		sb.WriteString(m.renderTurn(turn))
		sb.WriteString("\n")
	}

	switch {
	case m.session.Done():
		sb.WriteString("\n")
		sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("Found in %d guesses.", m.session.Guesses())))
		sb.WriteString("\n")
	case m.aborted:
		sb.WriteString("\n")
		sb.WriteString(m.styles.Muted.Render("Bye."))
		sb.WriteString("\n")
	default:
		sb.WriteString(m.styles.Prompt.Render(m.msgs.Prompt))
		sb.WriteString("\n")
		sb.WriteString(m.input.View())
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Muted.Render("enter: guess • esc: quit"))
		sb.WriteString("\n")
	}

	return sb.String()
}

func (m PlayModel) renderTurn(turn game.Turn) string {
	lines := m.msgs.Lines(turn)
	if !turn.Accepted() {
		return m.styles.Error.Render(lines[0])
	}

	verdict := m.styles.Warning
	if turn.Won() {
		verdict = m.styles.Success
	}
	return m.styles.UserInput.Render(lines[0]) + "  " + verdict.Render(lines[1])
}

// Aborted reports whether the player quit before winning.
func (m PlayModel) Aborted() bool {
	return m.aborted
}

// History returns the turns submitted so far.
func (m PlayModel) History() []game.Turn {
	return m.history
}

// Run plays session in a bubbletea program and returns its summary.
func Run(session *game.Session, msgs game.Messages, styles Styles, log *zap.Logger, opts ...tea.ProgramOption) (game.Summary, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("session", session.ID()))
	log.Debug("tui started")

	final, err := tea.NewProgram(NewPlayModel(session, msgs, styles, log), opts...).Run()
	if err != nil {
		return session.Summary(), fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(PlayModel); ok && m.Aborted() {
		return session.Summary(), ErrAborted
	}
	return session.Summary(), nil
}
