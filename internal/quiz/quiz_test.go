package quiz

import (
	"testing"

	"github.com/LaduClassic/liyahs-learning-jour/internal/generator"
)

func TestQuestionsAreComplete(t *testing.T) {
	qs := Questions()
	if len(qs) != 13 {
		t.Fatalf("expected 13 questions, got %d", len(qs))
	}
	kinds := map[Kind]int{}
	ids := map[string]struct{}{}
	for _, q := range qs {
		kinds[q.Kind]++
		if _, dup := ids[q.ID]; dup {
			t.Fatalf("duplicate id %s", q.ID)
		}
		ids[q.ID] = struct{}{}
		if q.Kind == MultipleChoice && !containsFold(q.Options, normalize(q.Answer)) {
			t.Fatalf("%s: answer %q not among options %v", q.ID, q.Answer, q.Options)
		}
	}
	if kinds[FillIn] != 5 || kinds[MultipleChoice] != 4 || kinds[TrueFalse] != 4 {
		t.Fatalf("unexpected kind counts: %v", kinds)
	}
	for i, pillar := range PillarsOrder {
		if qs[i].Answer != pillar {
			t.Fatalf("pillar %d: expected %s, got %s", i+1, pillar, qs[i].Answer)
		}
	}
}

func TestCheckIgnoresCaseAndSpace(t *testing.T) {
	if !Check("  shahadah ", "Shahadah") {
		t.Fatalf("expected case-insensitive trimmed match")
	}
	if Check("Salat", "Salah") {
		t.Fatalf("expected mismatch")
	}
}

func TestResolveShorthand(t *testing.T) {
	qs := Questions()
	prayers := qs[5]
	if !prayers.Correct("5") {
		t.Fatalf("literal option should still match")
	}
	if prayers.Correct("3") {
		t.Fatalf("literal option 3 should not be read as an index")
	}
	month := qs[6]
	if !month.Correct("2") || !month.Correct("ramadan") {
		t.Fatalf("expected option index and name to resolve to Ramadan")
	}
	if month.Correct("4") {
		t.Fatalf("out-of-range index should not match")
	}
	fasting := qs[9]
	if !fasting.Correct("f") || fasting.Correct("true") {
		t.Fatalf("unexpected true-false resolution")
	}
}

func TestScoreAndPassed(t *testing.T) {
	qs := Questions()
	answers := map[string]string{}
	for _, q := range qs[:10] {
		answers[q.ID] = q.Answer
	}
	answers[qs[10].ID] = "False"
	score := Score(qs, answers)
	if score != 10 {
		t.Fatalf("expected 10, got %d", score)
	}
	if !Passed(score, len(qs)) {
		t.Fatalf("10/13 should pass")
	}
	if Passed(9, 13) || Passed(0, 0) {
		t.Fatalf("9/13 and 0/0 should not pass")
	}
}

func TestShuffledKeepsAllQuestions(t *testing.T) {
	qs := Shuffled(generator.NewWithSeed(3))
	if len(qs) != 13 {
		t.Fatalf("expected 13 questions, got %d", len(qs))
	}
	seen := map[string]bool{}
	for _, q := range qs {
		seen[q.ID] = true
	}
	if len(seen) != 13 {
		t.Fatalf("shuffle lost questions: %v", seen)
	}
	if Questions()[0].ID != "q1" {
		t.Fatalf("shuffle reordered the built-in quiz")
	}
}

func TestChoicesIncludeAnswerOnce(t *testing.T) {
	g := generator.NewWithSeed(21)
	pool := []string{"Mercury", "Venus", "Earth", "Mars", "mars", "Jupiter"}
	for i := 0; i < 200; i++ {
		got := Choices(g, "Mars", pool, 4)
		if len(got) != 4 {
			t.Fatalf("expected 4 choices, got %v", got)
		}
		seen := map[string]bool{}
		for _, c := range got {
			key := normalize(c)
			if seen[key] {
				t.Fatalf("duplicate choice in %v", got)
			}
			seen[key] = true
		}
		if !seen["mars"] {
			t.Fatalf("answer missing from %v", got)
		}
	}
	if got := Choices(g, "Mars", []string{"Mars"}, 4); len(got) != 1 {
		t.Fatalf("expected only the answer from a tiny pool, got %v", got)
	}
}
