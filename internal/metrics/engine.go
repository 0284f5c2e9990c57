package metrics

import (
	"github.com/ebalder/typt/internal/game"
	"github.com/ebalder/typt/internal/observable"
)

// Engine exposes the derived metrics of one game as observable values.
type Engine struct {
	g *game.Game

	// Mistakes is the lifetime mistake count, duplicates included.
	Mistakes observable.Readable[int]
	// WPM is the net words-per-minute figure, 0 until the game ends.
	WPM observable.Readable[float64]
	// CPS is the net characters-per-second figure, 0 until the game ends.
	CPS observable.Readable[float64]
}

// NewEngine wires derived metrics over the game's observables.
func NewEngine(g *game.Game) *Engine {
	e := &Engine{g: g}
	e.Mistakes = observable.Derive(e.MistakeCount, g.MistakePositions())
	e.WPM = observable.Derive(e.NetWPM, g.TypedChars(), g.State())
	e.CPS = observable.Derive(e.NetCPS, g.TypedChars(), g.State())
	return e
}

// MistakeCount is the length of the mistake-position sequence.
func (e *Engine) MistakeCount() int {
	return len(e.g.MistakePositions().Get())
}

// Accuracy recomputes the current accuracy; ok is false before any
// forward keystroke.
func (e *Engine) Accuracy() (int, bool) {
	return Accuracy(e.g.TypedChars().Get(), e.MistakeCount())
}

// NetWPM recomputes the net words-per-minute figure.
func (e *Engine) NetWPM() float64 {
	return NetWPM(
		e.g.TypedChars().Get(),
		e.uncorrected(),
		e.g.StartedAt().Get(),
		e.g.EndedAt().Get(),
	)
}

// NetCPS recomputes the net characters-per-second figure.
func (e *Engine) NetCPS() float64 {
	return NetCPS(
		e.g.TypedChars().Get(),
		e.uncorrected(),
		e.g.StartedAt().Get(),
		e.g.EndedAt().Get(),
	)
}

// CursorChar returns the character the cursor is waiting on; ok is false
// once the text is complete.
func (e *Engine) CursorChar() (rune, bool) {
	return CursorChar(e.g.TextRunes(), e.g.Cursor().Get())
}

func (e *Engine) uncorrected() int {
	return e.MistakeCount() - e.g.CorrectedMistakes().Get()
}
