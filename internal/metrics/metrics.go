// Package metrics derives typing performance figures from game state.
//
// All figures are pure functions of the game's observable values; the
// Engine holds no state of its own and every read recomputes from the
// current game.
package metrics

import (
	"math"
	"time"
)

// Accuracy is the integer-percent share of forward keystrokes that were
// not mistakes. ok is false while nothing has been typed, where the ratio
// is undefined; callers must render that as "no data" rather than 0%.
func Accuracy(typedChars, mistakes int) (pct int, ok bool) {
	if typedChars == 0 {
		return 0, false
	}
	v := float64(typedChars-mistakes) / float64(typedChars) * 100
	return int(math.Round(v)), true
}

// NetWPM computes net words per minute by the speed-typing-online
// convention: gross speed over five-character words minus the
// uncorrected-mistake rate, rounded to one decimal. It is 0 until the
// game has both started and ended.
func NetWPM(typedChars, uncorrected int, start, end time.Time) float64 {
	minutes := elapsed(start, end) / 60000.0
	if minutes <= 0 {
		return 0
	}
	gross := (float64(typedChars) / 5.0) / minutes
	return round1(gross - float64(uncorrected)/minutes)
}

// NetCPS is the same computation as NetWPM over elapsed seconds and raw
// character count.
func NetCPS(typedChars, uncorrected int, start, end time.Time) float64 {
	seconds := elapsed(start, end) / 1000.0
	if seconds <= 0 {
		return 0
	}
	gross := float64(typedChars) / seconds
	return round1(gross - float64(uncorrected)/seconds)
}

// CursorChar returns the character awaiting the cursor. ok is false once
// the cursor has passed the final character.
func CursorChar(text []rune, cursor int) (rune, bool) {
	if cursor < 0 || cursor >= len(text) {
		return 0, false
	}
	return text[cursor], true
}

// elapsed returns the span between the timestamps in milliseconds, or 0
// when either is still unset.
func elapsed(start, end time.Time) float64 {
	if start.IsZero() || end.IsZero() {
		return 0
	}
	return float64(end.Sub(start).Milliseconds())
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
