package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/partybingo/internal/bingo"
	"github.com/lox/partybingo/internal/game"
)

// historyPerRow is how many icons the host history shows per line.
const historyPerRow = 10

// Model is the Bubble Tea model driving one game.Session.
type Model struct {
	session *game.Session
	title   string
	logger  *log.Logger
	help    help.Model

	cursor   int    // selected cell in player mode
	status   string // last error shown under the screen
	width    int
	height   int
	quitting bool
}

// NewModel creates a model on the session's current screen.
func NewModel(session *game.Session, title string, logger *log.Logger) *Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Model{
		session: session,
		title:   title,
		logger:  logger.WithPrefix("tui"),
		help:    help.New(),
		cursor:  bingo.Index(bingo.Size/2, bingo.Size/2),
	}
}

// Session returns the session the model drives.
func (m *Model) Session() *game.Session { return m.session }

// Cursor returns the selected cell index in player mode.
func (m *Model) Cursor() int { return m.cursor }

// Status returns the message shown under the current screen.
func (m *Model) Status() string { return m.status }

// Quitting reports whether the program is shutting down.
func (m *Model) Quitting() bool { return m.quitting }

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.title)
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		m.status = ""
		switch m.session.Mode() {
		case game.Landing:
			return m.updateLanding(msg)
		case game.Host:
			m.updateHost(msg)
		case game.Player:
			m.updatePlayer(msg)
		}
	}
	return m, nil
}

func (m *Model) updateLanding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.Host):
		m.fail(m.session.StartHost())
	case key.Matches(msg, keys.Play):
		if err := m.session.StartPlayer(); err != nil {
			m.fail(err)
			break
		}
		m.cursor = bingo.Index(bingo.Size/2, bingo.Size/2)
	}
	return m, nil
}

func (m *Model) updateHost(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, keys.Back):
		m.session.ExitToLanding()
	case key.Matches(msg, keys.Draw):
		_, ok, err := m.session.DrawNext()
		if err != nil {
			m.fail(err)
			return
		}
		if !ok {
			m.status = "All items have been drawn."
		}
	}
}

func (m *Model) updatePlayer(msg tea.KeyMsg) {
	p := m.session.Player()

	// The win banner blocks the card until it is acknowledged.
	if p.HasWon() {
		if key.Matches(msg, keys.Dismiss) {
			m.fail(m.session.DismissWin())
		}
		return
	}

	row, col := m.cursor/bingo.Size, m.cursor%bingo.Size
	switch {
	case key.Matches(msg, keys.Back):
		m.session.ExitToLanding()
	case key.Matches(msg, keys.Up):
		row = (row + bingo.Size - 1) % bingo.Size
	case key.Matches(msg, keys.Down):
		row = (row + 1) % bingo.Size
	case key.Matches(msg, keys.Left):
		col = (col + bingo.Size - 1) % bingo.Size
	case key.Matches(msg, keys.Right):
		col = (col + 1) % bingo.Size
	case key.Matches(msg, keys.Toggle):
		card := p.Card()
		m.fail(m.session.ToggleMark(card[m.cursor].ID))
	}
	m.cursor = bingo.Index(row, col)
}

func (m *Model) fail(err error) {
	if err == nil {
		return
	}
	m.logger.Error("Action failed", "err", err)
	var ipe *bingo.InsufficientPoolError
	if errors.As(err, &ipe) {
		m.status = fmt.Sprintf("This catalog has %d items; a card needs %d.", ipe.Have, ipe.Need)
		return
	}
	m.status = err.Error()
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	var bindings []key.Binding
	switch m.session.Mode() {
	case game.Host:
		body = m.renderHost()
		bindings = []key.Binding{keys.Draw, keys.Back}
	case game.Player:
		body = m.renderPlayer()
		if m.session.Player().HasWon() {
			bindings = []key.Binding{keys.Dismiss}
		} else {
			bindings = []key.Binding{keys.Up, keys.Down, keys.Left, keys.Right, keys.Toggle, keys.Back}
		}
	default:
		body = m.renderLanding()
		bindings = []key.Binding{keys.Host, keys.Play, keys.Quit}
	}

	parts := []string{body}
	if m.status != "" {
		parts = append(parts, ErrorStyle.Render(m.status))
	}
	parts = append(parts, m.help.ShortHelpView(bindings))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) renderLanding() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(ButtonStyle.Render("1  I'm the host 🕶️"))
	b.WriteString("  ")
	b.WriteString(InfoStyle.Render("control the draw"))
	b.WriteString("\n\n")
	b.WriteString(ButtonStyle.Render("2  I'm a guest 👶"))
	b.WriteString("  ")
	b.WriteString(InfoStyle.Render("play a card"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderHost() string {
	h := m.session.Host()

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Draw control"))
	b.WriteString("\n\n")

	if last, ok := h.LastDrawn(); ok {
		b.WriteString(DrawStyle.Render(last.Icon + "\n\n" + last.Label))
	} else {
		b.WriteString(DrawStyle.Render(InfoStyle.Render("Press space to start")))
	}
	b.WriteString("\n\n")

	switch {
	case h.Exhausted():
		b.WriteString(DisabledStyle.Render("All items drawn"))
	case h.Started():
		b.WriteString(ButtonStyle.Render("Draw next"))
	default:
		b.WriteString(ButtonStyle.Render("Start game"))
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "History (%d/%d)\n", h.Drawn(), h.Total())
	for i, d := range h.History() {
		if i > 0 && i%historyPerRow == 0 {
			b.WriteByte('\n')
		}
		b.WriteString(d.Item.Icon)
		b.WriteByte(' ')
	}
	b.WriteByte('\n')
	return b.String()
}

func (m *Model) renderPlayer() string {
	p := m.session.Player()
	card := p.Card()

	winning := make(map[int]bool)
	for _, l := range p.WinningLines() {
		for _, k := range l.Cells {
			winning[k] = true
		}
	}

	rows := make([]string, bingo.Size)
	for row := range bingo.Size {
		cells := make([]string, bingo.Size)
		for col := range bingo.Size {
			k := bingo.Index(row, col)
			it := card[k]
			style := CellStyle
			switch {
			case k == m.cursor:
				style = CursorCellStyle
			case winning[k]:
				style = WinningCellStyle
			case p.Marked(it.ID):
				style = MarkedCellStyle
			}
			label := it.Label
			if p.Marked(it.ID) {
				label = "✔ " + label
			}
			cells[col] = style.Render(it.Icon + "\n" + label)
		}
		rows[row] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)

	header := HeaderStyle.Render("My card")
	if !p.HasWon() {
		return lipgloss.JoinVertical(lipgloss.Left, header, "", grid)
	}
	banner := BingoStyle.Render("🎉 BINGO! 🎉\n\nShout it out!\n\nPress enter to keep playing")
	return lipgloss.JoinVertical(lipgloss.Left, header, "", grid, "", banner)
}
