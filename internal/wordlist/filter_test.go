package wordlist

import (
	"testing"

	"github.com/LaduClassic/liyahs-learning-jour/internal/model"
)

func TestKeepWord(t *testing.T) {
	if !KeepWord(model.SpellingWord{Script: "كَلْبٌ", Phonetic: "kalb", Meaning: "dog"}) {
		t.Fatalf("expected word with letters to be kept")
	}
	if !KeepWord(model.SpellingWord{Script: "كَـلْـبٌ  أَحْمَرُ"}) {
		t.Fatalf("expected tatweel and spaces to be tolerated")
	}
	for _, script := range []string{"", "   ", "ـــ", "َُ", "َكلب"} {
		if KeepWord(model.SpellingWord{Script: script}) {
			t.Fatalf("expected %q to be rejected", script)
		}
	}
}
