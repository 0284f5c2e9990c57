// Package wordlist loads word dictionaries from files.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Load reads one word per line from path, lowercases each entry, and drops
// entries rejected by the language filter. File order is preserved. An
// empty resulting dictionary is an error: the text generator requires at
// least one word.
func Load(path, lang string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	keep := FilterForLang(lang)
	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || !keep(word) {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list %s has no usable words", path)
	}
	return words, nil
}
