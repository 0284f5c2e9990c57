package wordlist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadNormalizesAndFilters(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "en.txt")
	content := "Hello\nworld\n\n  trim \nrésumé\nco-op\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	words, err := Load(path, "en")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []string{"hello", "world", "trim"}
	if len(words) != len(want) {
		t.Fatalf("expected %v, got %v", want, words)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, words)
		}
	}
}

func TestLoadRejectsEmptyResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "en.txt")
	if err := os.WriteFile(path, []byte("123\nrésumé\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path, "en"); err == nil {
		t.Fatalf("expected error for unusable word list")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt"), "en"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestFilterEnglishASCII(t *testing.T) {
	filter := FilterForLang("en")
	if !filter("hello") {
		t.Fatalf("expected hello to pass english filter")
	}
	for _, word := range []string{"résumé", "naïve", "don’t", "co-op", ""} {
		if filter(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}

func TestFilterDefaultRejectsWhitespace(t *testing.T) {
	filter := FilterForLang("xx")
	if !filter("wörd") {
		t.Fatalf("expected non-english word to pass default filter")
	}
	for _, word := range []string{"two words", "tab\tbed", ""} {
		if filter(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}
