// Package game implements the per-keystroke typing state machine.
package game

import (
	"time"

	"github.com/ebalder/typt/internal/observable"
)

// CharState classifies one position of the target text.
type CharState int

// Character classifications. Every position starts Unreached and is
// reclassified when the cursor visits it; backspacing over a position
// resets it to Unreached so it can be retyped.
const (
	CharUnreached CharState = iota
	CharCorrect
	CharIncorrect
)

// State is the lifecycle of a game. Transitions are monotonic:
// NotStarted -> Started -> Ended, never backwards.
type State int

const (
	// NotStarted means no forward keystroke has been accepted yet.
	NotStarted State = iota
	// Started means the first forward keystroke has been accepted.
	Started
	// Ended means the cursor reached the end of the text. Terminal.
	Ended
)

// String returns the human-readable name of the state.
func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Started:
		return "started"
	case Ended:
		return "ended"
	default:
		return "unknown"
	}
}

// KeyBackspace is the normalized identifier for the delete/backspace key.
// Every other accepted key is exactly one printable character.
const KeyBackspace = "Backspace"

// TextSource produces practice text when Config.Text is empty.
type TextSource func(approxLength int, uppercase, specialChars bool) string

// Config fixes the parameters of one game instance.
type Config struct {
	// Text is the literal practice text. When set, no text is generated.
	Text string
	// ApproxLength is the desired length of generated text.
	ApproxLength int
	// Uppercase enables capitalized and full-uppercase generated words.
	Uppercase bool
	// SpecialChars enables punctuation in generated text.
	SpecialChars bool
}

// Game owns all mutable state of a single typing session. A Game is not
// safe for concurrent use; hosts driving it from multiple event sources
// must serialize HandleKey calls.
type Game struct {
	text   []rune
	states []CharState

	cursor    *observable.Value[int]
	state     *observable.Value[State]
	typed     *observable.Value[int]
	mistakes  *observable.Value[[]int]
	corrected *observable.Value[int]
	startedAt *observable.Value[time.Time]
	endedAt   *observable.Value[time.Time]

	now func() time.Time
}

// New constructs a Game, generating text through src when cfg.Text is empty.
func New(cfg Config, src TextSource) *Game {
	return NewWithClock(cfg, src, time.Now)
}

// NewWithClock constructs a Game with an injected time source.
func NewWithClock(cfg Config, src TextSource, now func() time.Time) *Game {
	text := cfg.Text
	if text == "" && src != nil {
		text = src(cfg.ApproxLength, cfg.Uppercase, cfg.SpecialChars)
	}
	runes := []rune(text)
	return &Game{
		text:      runes,
		states:    make([]CharState, len(runes)),
		cursor:    observable.New(0),
		state:     observable.New(NotStarted),
		typed:     observable.New(0),
		mistakes:  observable.New([]int(nil)),
		corrected: observable.New(0),
		startedAt: observable.New(time.Time{}),
		endedAt:   observable.New(time.Time{}),
		now:       now,
	}
}

// HandleKey applies one normalized key to the game. Keys that are neither
// the backspace marker nor a single printable character are silently
// ignored. Once the game has ended every call is a no-op.
func (g *Game) HandleKey(key string) {
	if g.state.Get() == Ended {
		return
	}
	if key == KeyBackspace {
		g.backspace()
		return
	}
	runes := []rune(key)
	if len(runes) != 1 {
		return
	}
	g.forward(runes[0])
}

// backspace steps the cursor back and reopens that position. Counts,
// mistake positions, and timestamps are untouched.
func (g *Game) backspace() {
	pos := g.cursor.Get()
	if pos == 0 {
		return
	}
	pos--
	g.states[pos] = CharUnreached
	g.cursor.Set(pos)
}

func (g *Game) forward(r rune) {
	pos := g.cursor.Get()
	if pos >= len(g.text) {
		return
	}
	if g.state.Get() == NotStarted {
		g.startedAt.Set(g.now())
		g.state.Set(Started)
	}
	if r == g.text[pos] {
		if g.mistakeAt(pos) {
			g.corrected.Set(g.corrected.Get() + 1)
		}
		g.states[pos] = CharCorrect
	} else {
		g.states[pos] = CharIncorrect
		g.mistakes.Set(append(g.mistakes.Get(), pos))
	}
	g.typed.Set(g.typed.Get() + 1)
	pos++
	g.cursor.Set(pos)
	if pos == len(g.text) {
		g.endedAt.Set(g.now())
		g.state.Set(Ended)
	}
}

func (g *Game) mistakeAt(pos int) bool {
	for _, p := range g.mistakes.Get() {
		if p == pos {
			return true
		}
	}
	return false
}

// Text returns the target text.
func (g *Game) Text() string {
	return string(g.text)
}

// TextRunes returns a copy of the target text as runes.
func (g *Game) TextRunes() []rune {
	out := make([]rune, len(g.text))
	copy(out, g.text)
	return out
}

// Len returns the target text length in runes.
func (g *Game) Len() int {
	return len(g.text)
}

// CharStates returns a copy of the per-position classification. Its length
// always equals the text length.
func (g *Game) CharStates() []CharState {
	out := make([]CharState, len(g.states))
	copy(out, g.states)
	return out
}

// Cursor is the index of the next character to type, in [0, Len()].
func (g *Game) Cursor() observable.Readable[int] {
	return g.cursor
}

// State is the current lifecycle state.
func (g *Game) State() observable.Readable[State] {
	return g.state
}

// TypedChars counts forward keystrokes, correct or not. Backspaces are
// never counted.
func (g *Game) TypedChars() observable.Readable[int] {
	return g.typed
}

// MistakePositions lists every cursor index at which an incorrect
// character was typed, in order, duplicates included. Entries are never
// removed, even after a position is retyped correctly. Callers must treat
// the slice as read-only.
func (g *Game) MistakePositions() observable.Readable[[]int] {
	return g.mistakes
}

// CorrectedMistakes counts positions that were mistyped earlier and have
// since been typed correctly.
func (g *Game) CorrectedMistakes() observable.Readable[int] {
	return g.corrected
}

// StartedAt is the instant of the first forward keystroke; zero until then.
func (g *Game) StartedAt() observable.Readable[time.Time] {
	return g.startedAt
}

// EndedAt is the instant the cursor reached the end of the text; zero
// until then.
func (g *Game) EndedAt() observable.Readable[time.Time] {
	return g.endedAt
}
