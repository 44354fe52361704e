package wordlist

import (
	"strings"

	"github.com/LaduClassic/liyahs-learning-jour/internal/arabic"
	"github.com/LaduClassic/liyahs-learning-jour/internal/model"
)

// KeepWord reports whether an imported entry can be drilled: its script
// form must contain a base letter, and its letter clusters must rebuild the
// word, which fails when a mark precedes the first letter.
func KeepWord(w model.SpellingWord) bool {
	if arabic.BaseCount(w.Script) == 0 {
		return false
	}
	return strings.Join(arabic.Cluster(w.Script), "") == arabic.Strip(w.Script)
}
