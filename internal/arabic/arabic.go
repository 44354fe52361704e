// Package arabic normalizes and segments Arabic words for spelling drills.
package arabic

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

const (
	// Tatweel is the elongation character used for visual justification.
	Tatweel = 'ـ'

	harakatFirst = 'ً' // fathatan
	harakatLast  = 'ْ' // sukun

	alifMaqsura = 'ى'
	ya          = 'ي'
)

// IsMark reports whether r is a harakat combining mark (U+064B..U+0652).
func IsMark(r rune) bool {
	return r >= harakatFirst && r <= harakatLast
}

// IsTatweel reports whether r is the elongation character.
func IsTatweel(r rune) bool {
	return r == Tatweel
}

var (
	stripLayout = runes.Remove(runes.Predicate(func(r rune) bool {
		return r == Tatweel || unicode.IsSpace(r)
	}))
	stripMarks  = runes.Remove(runes.Predicate(IsMark))
	foldMaqsura = runes.Map(func(r rune) rune {
		if r == alifMaqsura {
			return ya
		}
		return r
	})
)

// Normalize returns the comparison form of s: tatweel and whitespace removed,
// harakat removed unless keepMarks, and alif maqsura folded to ya.
// Normalize is idempotent.
func Normalize(s string, keepMarks bool) string {
	var t transform.Transformer
	if keepMarks {
		t = transform.Chain(stripLayout, foldMaqsura)
	} else {
		t = transform.Chain(stripLayout, stripMarks, foldMaqsura)
	}
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Strip removes tatweel and whitespace only, keeping marks and letter variants.
func Strip(s string) string {
	out, _, err := transform.String(stripLayout, s)
	if err != nil {
		return s
	}
	return out
}

// Equal reports whether two spellings match once diacritics, tatweel and
// whitespace are ignored.
func Equal(a, b string) bool {
	return Normalize(a, false) == Normalize(b, false)
}

// Cluster splits s into letter clusters: one base rune followed by any
// harakat marks. Tatweel is dropped, whitespace ends the current cluster,
// and marks with no preceding base are discarded.
func Cluster(s string) []string {
	var (
		out     []string
		current strings.Builder
	)
	flush := func() {
		if current.Len() > 0 {
			out = append(out, current.String())
			current.Reset()
		}
	}
	for _, r := range s {
		switch {
		case IsTatweel(r):
			continue
		case IsMark(r):
			if current.Len() == 0 {
				continue
			}
			current.WriteRune(r)
		case unicode.IsSpace(r):
			flush()
		default:
			flush()
			current.WriteRune(r)
		}
	}
	flush()
	return out
}

// BaseCount returns the number of base (non-mark, non-tatweel, non-space) runes in s.
func BaseCount(s string) int {
	n := 0
	for _, r := range s {
		if IsMark(r) || IsTatweel(r) || unicode.IsSpace(r) {
			continue
		}
		n++
	}
	return n
}
