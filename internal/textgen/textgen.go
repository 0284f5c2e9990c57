// Package textgen builds randomized practice paragraphs from a word dictionary.
package textgen

import (
	"errors"
	"math/rand"
	"strings"
	"time"
	"unicode"
)

const (
	minSentenceWords = 10
	maxSentenceWords = 20
)

// Options control the shape of generated text.
type Options struct {
	// ApproxLength stops sentence generation once the joined text reaches
	// it. The result may overshoot by up to one sentence.
	ApproxLength int
	// Uppercase enables capitalized and full-uppercase words.
	Uppercase bool
	// SpecialChars enables commas, hyphen tokens, and terminal punctuation.
	SpecialChars bool
}

// Generator produces randomized practice paragraphs from a fixed dictionary.
type Generator struct {
	rnd   *rand.Rand
	words []string
}

// New returns a Generator drawing from words. The dictionary must be
// non-empty. A nil rnd gets a time-based seed.
func New(words []string, rnd *rand.Rand) (*Generator, error) {
	if len(words) == 0 {
		return nil, errors.New("textgen: empty word dictionary")
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rnd: rnd, words: words}, nil
}

// Paragraph joins freshly generated sentences with single spaces until the
// text reaches opts.ApproxLength. At least one sentence is always produced;
// the length check happens only at sentence boundaries.
func (g *Generator) Paragraph(opts Options) string {
	var b strings.Builder
	for {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(g.sentence(opts))
		if b.Len() >= opts.ApproxLength {
			return b.String()
		}
	}
}

func (g *Generator) sentence(opts Options) string {
	count := minSentenceWords + g.rnd.Intn(maxSentenceWords-minSentenceWords+1)

	comma, hyphen := false, false
	if opts.SpecialChars {
		if g.rnd.Intn(6) == 0 {
			comma = true
		} else if g.rnd.Intn(101) == 0 {
			hyphen = true
		}
	}
	// The comma/hyphen lands on a word in the middle half of the sentence.
	insertAt := count/4 + g.rnd.Intn(count/2)

	words := make([]string, 0, count+1)
	for i := 0; i < count; i++ {
		word := g.words[g.rnd.Intn(len(g.words))]
		if opts.Uppercase {
			word = g.applyCase(word, i == 0)
		}
		if i == insertAt && comma {
			word += ","
		}
		words = append(words, word)
		if i == insertAt && hyphen {
			words = append(words, "-")
		}
	}

	s := strings.Join(words, " ")
	if opts.SpecialChars {
		s += g.terminalPunct()
	}
	return s
}

func (g *Generator) applyCase(word string, first bool) string {
	if g.rnd.Intn(201) == 0 {
		return strings.ToUpper(word)
	}
	if first || g.rnd.Intn(51) == 0 {
		return capitalize(word)
	}
	return word
}

func capitalize(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// terminalPunct draws sentence-final punctuation weighted 6/11 period,
// 2/11 question mark, 3/11 exclamation mark.
func (g *Generator) terminalPunct() string {
	switch draw := g.rnd.Intn(11); {
	case draw <= 5:
		return "."
	case draw <= 7:
		return "?"
	default:
		return "!"
	}
}
