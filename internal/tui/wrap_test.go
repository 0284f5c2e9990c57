package tui

import (
	"testing"

	"github.com/ebalder/typt/internal/game"
)

func statesFor(text string, set map[int]game.CharState) []game.CharState {
	states := make([]game.CharState, len([]rune(text)))
	for i, s := range set {
		states[i] = s
	}
	return states
}

func TestBuildStyledRunesCursor(t *testing.T) {
	target := []rune("ab")
	states := statesFor("ab", map[int]game.CharState{0: game.CharCorrect})

	runes := buildStyledRunes(target, states, 1)
	if len(runes) != 2 {
		t.Fatalf("expected 2 runes, got %d", len(runes))
	}
	if runes[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for first rune")
	}
	if runes[1].s != currentWordStyle.Underline(true).Render("b") {
		t.Fatalf("expected underlined cursor style for second rune")
	}
}

func TestBuildStyledRunesIncorrect(t *testing.T) {
	target := []rune("ab")
	states := statesFor("ab", map[int]game.CharState{0: game.CharCorrect, 1: game.CharIncorrect})

	runes := buildStyledRunes(target, states, 2)
	if runes[1].s != incorrectStyle.Render("b") {
		t.Fatalf("expected incorrect style to show the target rune")
	}
}

func TestBuildStyledRunesWordHighlighting(t *testing.T) {
	target := []rune("one two")
	states := statesFor("one two", map[int]game.CharState{0: game.CharCorrect})

	runes := buildStyledRunes(target, states, 1)
	if runes[0].s != correctStyle.Render("o") {
		t.Fatalf("expected correct style for typed rune")
	}
	if runes[2].s != currentWordStyle.Render("e") {
		t.Fatalf("expected current word style inside the cursor word")
	}
	if runes[4].s != pendingStyle.Render("t") {
		t.Fatalf("expected pending style for the next word")
	}
}

func TestBuildStyledRunesWrongSpaceDot(t *testing.T) {
	target := []rune("a b")
	states := statesFor("a b", map[int]game.CharState{0: game.CharCorrect, 1: game.CharIncorrect})

	runes := buildStyledRunes(target, states, 2)
	if len(runes) != 3 {
		t.Fatalf("expected 3 runes, got %d", len(runes))
	}
	if runes[1].s != incorrectStyle.Render("•") {
		t.Fatalf("expected red dot for wrong space")
	}
}

func TestWrapStyledRunesBreaksAtSpace(t *testing.T) {
	target := []rune("aaa bbb")
	states := make([]game.CharState, len(target))
	runes := buildStyledRunes(target, states, -1)

	wrapped := wrapStyledRunes(runes, 5)
	lines := 1
	for _, r := range wrapped {
		if r == '\n' {
			lines++
		}
	}
	if lines != 2 {
		t.Fatalf("expected 2 lines, got %d (%q)", lines, wrapped)
	}
}

func TestFindWords(t *testing.T) {
	words := findWords([]rune(" one  two "))
	if len(words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(words))
	}
	if words[0].start != 1 || words[0].end != 4 {
		t.Fatalf("unexpected first word range: %+v", words[0])
	}
	if words[1].start != 6 || words[1].end != 9 {
		t.Fatalf("unexpected second word range: %+v", words[1])
	}
}
