// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ebalder/typt/internal/game"
	"github.com/ebalder/typt/internal/metrics"
)

// GameFactory builds a fresh game for each round.
type GameFactory func() *game.Game

// Model implements the Bubble Tea typing UI over one game at a time.
type Model struct {
	newGame GameFactory

	g   *game.Game
	eng *metrics.Engine

	width  int
	height int

	results *resultsView
}

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

// NewModel constructs a typing TUI model and starts the first round.
func NewModel(newGame GameFactory) *Model {
	m := &Model{newGame: newGame}
	m.resetRound()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.results != nil {
			m.results.resize(msg.Width, msg.Height)
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.results != nil {
			return m.updateResults(msg)
		}
		m.handleTypingKey(msg)
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) handleTypingKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete:
		m.g.HandleKey(game.KeyBackspace)
	case tea.KeySpace:
		m.g.HandleKey(" ")
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.g.HandleKey(string(r))
			if m.g.State().Get() == game.Ended {
				break
			}
		}
	}
	if m.g.State().Get() == game.Ended {
		m.results = newResultsView(m.g, m.eng, m.width, m.height)
	}
}

func (m *Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.resetRound()
		return m, nil
	case tea.KeyEsc:
		return m, tea.Quit
	}
	if msg.Type == tea.KeyRunes && string(msg.Runes) == "q" {
		return m, tea.Quit
	}
	m.results.update(msg)
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.results != nil {
		return m.results.render()
	}
	target := m.g.TextRunes()
	if len(target) == 0 {
		return ""
	}
	cursor := m.g.Cursor().Get()
	styledRunes := buildStyledRunes(target, m.g.CharStates(), cursor)
	if m.width == 0 || m.height == 0 {
		return renderStyledRunes(styledRunes)
	}
	contentWidth := int(float64(m.width) * 0.70)
	if contentWidth < 1 {
		contentWidth = 1
	}
	wrapped := wrapStyledRunes(styledRunes, contentWidth)
	content := lipgloss.NewStyle().Width(contentWidth).Render(wrapped)
	footer := m.renderFooter()
	if footer == "" || m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	bodyHeight := m.height - 1
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderFooter() string {
	total := m.g.Len()
	if total == 0 {
		return ""
	}
	progress := m.g.Cursor().Get() * 100 / total
	segments := []string{fmt.Sprintf("Progress %d%%", progress)}
	segments = append(segments, "Accuracy "+accuracyLabel(m.eng))
	segments = append(segments, fmt.Sprintf("Mistakes %d", m.eng.MistakeCount()))
	return footerStyle.Render(strings.Join(segments, "  "))
}

// accuracyLabel guards the no-keystrokes case, where accuracy is undefined.
func accuracyLabel(eng *metrics.Engine) string {
	acc, ok := eng.Accuracy()
	if !ok {
		return "—"
	}
	return fmt.Sprintf("%d%%", acc)
}

func (m *Model) resetRound() {
	m.g = m.newGame()
	m.eng = metrics.NewEngine(m.g)
	m.results = nil
}
