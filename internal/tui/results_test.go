package tui

import (
	"testing"
	"time"

	"github.com/ebalder/typt/internal/game"
)

func finishedGame(t *testing.T, text string, keys ...string) *game.Game {
	t.Helper()
	base := time.Unix(1700000000, 0)
	g := game.NewWithClock(game.Config{Text: text}, nil, func() time.Time { return base })
	for _, k := range keys {
		g.HandleKey(k)
	}
	if g.State().Get() != game.Ended {
		t.Fatalf("fixture game did not end")
	}
	return g
}

func TestCharBreakdownCountsMisses(t *testing.T) {
	g := finishedGame(t, "aba", "x", game.KeyBackspace, "a", "b", "a")

	rows := charBreakdown(g)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	// 'a' carries the miss, so it sorts first.
	if rows[0][0] != "a" || rows[0][1] != "2" || rows[0][2] != "1" {
		t.Fatalf("unexpected first row: %v", rows[0])
	}
	if rows[1][0] != "b" || rows[1][2] != "0" {
		t.Fatalf("unexpected second row: %v", rows[1])
	}
}

func TestCharBreakdownLabelsSpace(t *testing.T) {
	g := finishedGame(t, "a b", "a", "x", game.KeyBackspace, " ", "b")

	rows := charBreakdown(g)
	found := false
	for _, row := range rows {
		if row[0] == "<space>" {
			found = true
			if row[2] != "1" {
				t.Fatalf("expected 1 missed space, got %v", row)
			}
		}
	}
	if !found {
		t.Fatalf("expected a <space> row, got %v", rows)
	}
}
