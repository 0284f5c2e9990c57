package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ebalder/typt/internal/game"
	"github.com/ebalder/typt/internal/metrics"
)

// resultsView is the end-of-round screen: net speed figures plus a
// per-character breakdown of the finished game. Everything is derived from
// the game's own state; nothing is persisted.
type resultsView struct {
	g     *game.Game
	eng   *metrics.Engine
	tbl   table.Model
	width int
}

func newResultsView(g *game.Game, eng *metrics.Engine, width, height int) *resultsView {
	v := &resultsView{g: g, eng: eng, width: width}
	v.tbl = newBreakdownTable(g, tableHeight(height))
	return v
}

func (v *resultsView) resize(width, height int) {
	v.width = width
	v.tbl.SetHeight(tableHeight(height))
}

func (v *resultsView) update(msg tea.KeyMsg) {
	v.tbl, _ = v.tbl.Update(msg)
}

func (v *resultsView) render() string {
	lines := []string{
		titleStyle.Render("Round complete"),
		"",
		fmt.Sprintf("Net WPM    %.1f", v.eng.WPM.Get()),
		fmt.Sprintf("Net CPS    %.1f", v.eng.CPS.Get()),
		fmt.Sprintf("Accuracy   %s", accuracyLabel(v.eng)),
		fmt.Sprintf("Mistakes   %d (%d corrected)", v.eng.MistakeCount(), v.g.CorrectedMistakes().Get()),
		fmt.Sprintf("Duration   %s", v.g.EndedAt().Get().Sub(v.g.StartedAt().Get()).Round(durationStep)),
		"",
		v.tbl.View(),
		"",
		footerStyle.Render("enter: next round  ·  q/esc: quit"),
	}
	content := strings.Join(lines, "\n")
	if v.width == 0 {
		return content
	}
	return lipgloss.Place(v.width, lipgloss.Height(content), lipgloss.Center, lipgloss.Top, content)
}

const durationStep = 100 * time.Millisecond

func tableHeight(total int) int {
	h := total - 14
	if h < 3 {
		h = 3
	}
	if h > 12 {
		h = 12
	}
	return h
}

func newBreakdownTable(g *game.Game, height int) table.Model {
	columns := []table.Column{
		{Title: "Char", Width: 8},
		{Title: "Count", Width: 6},
		{Title: "Missed", Width: 6},
		{Title: "Miss %", Width: 6},
	}
	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(charBreakdown(g)),
		table.WithHeight(height),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("#C89A3A"))
	tbl.SetStyles(styles)
	return tbl
}

// charBreakdown aggregates, per target character, how often it occurs in
// the text and how often a wrong key was pressed at one of its positions.
// Duplicate mistake positions count as separate misses.
func charBreakdown(g *game.Game) []table.Row {
	text := g.TextRunes()
	counts := map[rune]int{}
	misses := map[rune]int{}
	for _, r := range text {
		counts[r]++
	}
	for _, pos := range g.MistakePositions().Get() {
		if pos >= 0 && pos < len(text) {
			misses[text[pos]]++
		}
	}

	type entry struct {
		char   rune
		count  int
		missed int
	}
	entries := make([]entry, 0, len(counts))
	for r, n := range counts {
		entries = append(entries, entry{char: r, count: n, missed: misses[r]})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].missed != entries[j].missed {
			return entries[i].missed > entries[j].missed
		}
		return entries[i].char < entries[j].char
	})

	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		label := string(e.char)
		if e.char == ' ' {
			label = "<space>"
		}
		rate := float64(e.missed) / float64(e.count) * 100
		rows = append(rows, table.Row{
			label,
			fmt.Sprintf("%d", e.count),
			fmt.Sprintf("%d", e.missed),
			fmt.Sprintf("%.0f", rate),
		})
	}
	return rows
}
