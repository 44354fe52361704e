// Package wordlist provides the spelling word reference data and its import format.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/LaduClassic/liyahs-learning-jour/internal/model"
)

var (
	// ErrNoValidWords is returned when an import contains no usable line.
	ErrNoValidWords = errors.New("no valid words found")
	// ErrUnsupportedFile is returned for files that are not .txt.
	ErrUnsupportedFile = errors.New("word lists must be .txt files")
)

const fieldSep = "|"

var defaultWords = []model.SpellingWord{
	{Script: "شَعْرٌ", Phonetic: "sha-r", Meaning: "hair"},
	{Script: "بُنِّيٌّ", Phonetic: "bun-nii-y", Meaning: "brown"},
	{Script: "قَصِيرٌ", Phonetic: "qa-sii-r", Meaning: "short"},
	{Script: "كَلْبٌ", Phonetic: "kalb", Meaning: "dog"},
	{Script: "مُرَقَّطٌ", Phonetic: "mu-raq-qat", Meaning: "spotted"},
	{Script: "تُمْسِكُ", Phonetic: "tum-si-ku", Meaning: "she holds"},
	{Script: "لُعْبَةٌ", Phonetic: "lu-bah", Meaning: "toy"},
	{Script: "كُرَةٌ", Phonetic: "ku-rah", Meaning: "ball"},
	{Script: "الْمِضْرَبُ", Phonetic: "al-mid-ra-bu", Meaning: "the racket"},
}

// Defaults returns a fresh copy of the built-in spelling words.
func Defaults() []model.SpellingWord {
	out := make([]model.SpellingWord, len(defaultWords))
	copy(out, defaultWords)
	return out
}

// Resolve returns custom when it holds words, otherwise the built-in list.
func Resolve(custom []model.SpellingWord) []model.SpellingWord {
	if len(custom) == 0 {
		return Defaults()
	}
	out := make([]model.SpellingWord, len(custom))
	copy(out, custom)
	return out
}

// Parse reads "script|phonetic|meaning" lines. Blank lines and lines that
// do not have exactly three fields are skipped, as are entries rejected by
// KeepWord. Lines of any length are read. It returns ErrNoValidWords when
// nothing survives.
func Parse(r io.Reader) ([]model.SpellingWord, error) {
	var words []model.SpellingWord
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if word, ok := parseLine(line); ok {
			words = append(words, word)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	if len(words) == 0 {
		return nil, ErrNoValidWords
	}
	return words, nil
}

func parseLine(line string) (model.SpellingWord, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return model.SpellingWord{}, false
	}
	parts := strings.Split(line, fieldSep)
	if len(parts) != 3 {
		return model.SpellingWord{}, false
	}
	word := model.SpellingWord{
		Script:   strings.TrimSpace(parts[0]),
		Phonetic: strings.TrimSpace(parts[1]),
		Meaning:  strings.TrimSpace(parts[2]),
	}
	return word, KeepWord(word)
}

// LoadFile parses the word list stored at path.
func LoadFile(path string) ([]model.SpellingWord, error) {
	if !strings.EqualFold(filepath.Ext(path), ".txt") {
		return nil, ErrUnsupportedFile
	}
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
	words, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return words, nil
}
