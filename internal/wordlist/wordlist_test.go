package wordlist

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseSkipsMalformedLines(t *testing.T) {
	input := strings.Join([]string{
		"كَلْبٌ | kalb | dog",
		"",
		"only|two",
		"a|b|c|d",
		"   ",
		"كُرَةٌ|ku-rah|ball",
	}, "\n")
	words, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(words) != 2 {
		t.Fatalf("expected 2 words, got %d: %+v", len(words), words)
	}
	if words[0].Script != "كَلْبٌ" || words[0].Phonetic != "kalb" || words[0].Meaning != "dog" {
		t.Fatalf("expected trimmed fields, got %+v", words[0])
	}
	if words[1].Meaning != "ball" {
		t.Fatalf("unexpected second word: %+v", words[1])
	}
}

func TestParseSkipsOversizedLine(t *testing.T) {
	input := "كلب|kalb|dog\n" + strings.Repeat("x", 70000) + "\nقطة|qitta|cat\n"
	words, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(words) != 2 || words[0].Meaning != "dog" || words[1].Meaning != "cat" {
		t.Fatalf("expected the two valid words around the long line, got %+v", words)
	}
}

func TestParseLongValidLine(t *testing.T) {
	meaning := strings.Repeat("m", 80000)
	words, err := Parse(strings.NewReader("كلب|kalb|" + meaning))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(words) != 1 || words[0].Meaning != meaning {
		t.Fatalf("expected one word with the long meaning, got %d words", len(words))
	}
}

func TestParseRejectsEmptyImport(t *testing.T) {
	for _, input := range []string{"", "no pipes here\nstill none", "a|b\nc|d|e|f"} {
		words, err := Parse(strings.NewReader(input))
		if !errors.Is(err, ErrNoValidWords) {
			t.Fatalf("expected ErrNoValidWords for %q, got %v", input, err)
		}
		if words != nil {
			t.Fatalf("expected no words, got %+v", words)
		}
	}
}

func TestDefaultsAreIndependentCopies(t *testing.T) {
	a := Defaults()
	a[0].Meaning = "changed"
	b := Defaults()
	if b[0].Meaning != "hair" {
		t.Fatalf("defaults mutated through a returned copy: %+v", b[0])
	}
	if len(b) != 9 {
		t.Fatalf("expected 9 built-in words, got %d", len(b))
	}
}

func TestResolve(t *testing.T) {
	if got := Resolve(nil); len(got) != len(defaultWords) {
		t.Fatalf("expected defaults for nil custom list, got %d", len(got))
	}
	custom, err := Parse(strings.NewReader("بَيْتٌ|bayt|house"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	got := Resolve(custom)
	if len(got) != 1 || got[0].Meaning != "house" {
		t.Fatalf("expected custom list, got %+v", got)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(path, []byte("بَابٌ|baab|door\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	words, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if len(words) != 1 {
		t.Fatalf("expected 1 word, got %d", len(words))
	}

	csv := filepath.Join(dir, "words.csv")
	if err := os.WriteFile(csv, []byte("بَابٌ|baab|door\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFile(csv); !errors.Is(err, ErrUnsupportedFile) {
		t.Fatalf("expected ErrUnsupportedFile, got %v", err)
	}

	empty := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(empty, []byte("nothing useful\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFile(empty); !errors.Is(err, ErrNoValidWords) {
		t.Fatalf("expected ErrNoValidWords, got %v", err)
	}
}
