package store

import (
	"context"
	"io"

	"github.com/LaduClassic/liyahs-learning-jour/internal/model"
	"github.com/LaduClassic/liyahs-learning-jour/internal/wordlist"
)

// CustomWordsKey holds the uploaded spelling list, or JSON null for the built-in one.
const CustomWordsKey = "arabic-custom-words"

// LoadCustomWords returns the uploaded word list, or nil when the built-in
// list is in use.
func (s *Store) LoadCustomWords(ctx context.Context) ([]model.SpellingWord, error) {
	var words []model.SpellingWord
	if _, err := s.Get(ctx, CustomWordsKey, &words); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, nil
	}
	return words, nil
}

// SaveCustomWords replaces the uploaded word list.
func (s *Store) SaveCustomWords(ctx context.Context, words []model.SpellingWord) error {
	return s.Set(ctx, CustomWordsKey, words)
}

// ResetCustomWords switches back to the built-in word list.
func (s *Store) ResetCustomWords(ctx context.Context) error {
	return s.Set(ctx, CustomWordsKey, nil)
}

// CurrentWords resolves the word list a screen should use.
func (s *Store) CurrentWords(ctx context.Context) ([]model.SpellingWord, error) {
	custom, err := s.LoadCustomWords(ctx)
	if err != nil {
		return wordlist.Defaults(), err
	}
	return wordlist.Resolve(custom), nil
}

// ImportWords parses a pipe-delimited word list and stores it. When no line
// is valid the stored list is left unchanged and wordlist.ErrNoValidWords
// is returned.
func (s *Store) ImportWords(ctx context.Context, r io.Reader) ([]model.SpellingWord, error) {
	words, err := wordlist.Parse(r)
	if err != nil {
		return nil, err
	}
	if err := s.SaveCustomWords(ctx, words); err != nil {
		return nil, err
	}
	return words, nil
}
