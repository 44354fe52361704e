package letters

import (
	"strings"
	"testing"

	"github.com/LaduClassic/liyahs-learning-jour/internal/arabic"
	"github.com/LaduClassic/liyahs-learning-jour/internal/generator"
	"github.com/LaduClassic/liyahs-learning-jour/internal/quiz"
)

func TestAlphabetIsComplete(t *testing.T) {
	letters := Alphabet()
	if len(letters) != 28 {
		t.Fatalf("expected 28 letters, got %d", len(letters))
	}
	names := map[string]bool{}
	for _, l := range letters {
		key := strings.ToLower(l.Name)
		if names[key] {
			t.Fatalf("duplicate letter name %q", l.Name)
		}
		names[key] = true
		if arabic.BaseCount(l.Isolated) != 1 {
			t.Fatalf("%s: isolated form should be one letter, got %q", l.Name, l.Isolated)
		}
		for _, f := range Forms {
			if arabic.Strip(l.Form(f)) != l.Isolated {
				t.Fatalf("%s %s form %q should be the letter plus tatweel", l.Name, f, l.Form(f))
			}
		}
	}
	letters[0].Name = "changed"
	if Alphabet()[0].Name != "Alif" {
		t.Fatalf("Alphabet should return a copy")
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"form-to-name": FormToName, " Name ": FormToName, "form": NameToForm} {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Fatalf("%q: expected %s, got %s (%v)", in, want, got, err)
		}
	}
	if _, err := ParseMode("sound"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestFormToNameQuestions(t *testing.T) {
	qs := Questions(generator.NewWithSeed(1), FormToName, 28)
	if len(qs) != 28 {
		t.Fatalf("expected 28 questions, got %d", len(qs))
	}
	asked := map[string]bool{}
	for _, q := range qs {
		if asked[q.Answer] {
			t.Fatalf("letter %s asked twice before the alphabet ran out", q.Answer)
		}
		asked[q.Answer] = true
		if q.Kind != quiz.MultipleChoice || len(q.Options) != choiceCount {
			t.Fatalf("unexpected question shape: %+v", q)
		}
		if !q.Correct(q.Answer) || !q.Correct(strings.ToUpper(q.Answer)) {
			t.Fatalf("answer %s should be accepted", q.Answer)
		}
		index := -1
		for i, opt := range q.Options {
			if opt == q.Answer {
				index = i
			}
		}
		if index < 0 {
			t.Fatalf("answer %s missing from options %v", q.Answer, q.Options)
		}
		wrong := (index + 1) % len(q.Options)
		if q.Correct(q.Options[wrong]) {
			t.Fatalf("distractor %s accepted for %s", q.Options[wrong], q.Answer)
		}
	}
}

func TestNameToFormAcceptsIdenticalGlyphs(t *testing.T) {
	alif := alphabet[0]
	q := quiz.Question{
		Kind:    quiz.MultipleChoice,
		Options: []string{alif.Beginning, alif.Middle, alif.Final},
		Answer:  alif.Form(Final),
	}
	if !q.Correct("2") || !q.Correct("3") {
		t.Fatalf("middle and final alif look the same and should both count")
	}
	if q.Correct("1") {
		t.Fatalf("beginning form should not count")
	}

	for _, q := range Questions(generator.NewWithSeed(2), NameToForm, 40) {
		if len(q.Options) != len(Forms) {
			t.Fatalf("expected one option per form, got %v", q.Options)
		}
		if !q.Correct(q.Answer) {
			t.Fatalf("answer %q should be accepted", q.Answer)
		}
	}
}
