// Package quiz holds the Islamic studies quiz and the question checking
// shared by every line quiz.
package quiz

import (
	"strconv"
	"strings"

	"github.com/LaduClassic/liyahs-learning-jour/internal/generator"
)

// Kind is the answer format of a question.
type Kind string

// Question kinds.
const (
	FillIn         Kind = "fill-in"
	MultipleChoice Kind = "multiple-choice"
	TrueFalse      Kind = "true-false"
)

// PassRatio is the share of correct answers that counts as a pass.
const PassRatio = 0.7

// Question is one quiz item.
type Question struct {
	ID       string
	Kind     Kind
	Prompt   string
	Options  []string
	Answer   string
	Category string
}

var pillarsQuiz = []Question{
	{ID: "q1", Kind: FillIn, Prompt: "The first pillar is ___________.", Answer: "Shahadah", Category: "Five Pillars"},
	{ID: "q2", Kind: FillIn, Prompt: "The second pillar is ___________.", Answer: "Salah", Category: "Five Pillars"},
	{ID: "q3", Kind: FillIn, Prompt: "The third pillar is ___________.", Answer: "Zakah", Category: "Five Pillars"},
	{ID: "q4", Kind: FillIn, Prompt: "The fourth pillar is ___________.", Answer: "Sawm", Category: "Five Pillars"},
	{ID: "q5", Kind: FillIn, Prompt: "The fifth pillar is ___________.", Answer: "Hajj", Category: "Five Pillars"},
	{ID: "q6", Kind: MultipleChoice, Prompt: "How many times do Muslims pray each day?", Options: []string{"2", "3", "5"}, Answer: "5", Category: "Prayer"},
	{ID: "q7", Kind: MultipleChoice, Prompt: "What month do Muslims fast in?", Options: []string{"Muharram", "Ramadan", "Dhul Hijjah"}, Answer: "Ramadan", Category: "Fasting"},
	{ID: "q8", Kind: MultipleChoice, Prompt: "What do we give to help the poor?", Options: []string{"Toys", "Zakah", "Food"}, Answer: "Zakah", Category: "Charity"},
	{ID: "q9", Kind: MultipleChoice, Prompt: "Where do Muslims go for Hajj?", Options: []string{"Madinah", "Makkah", "Jerusalem"}, Answer: "Makkah", Category: "Hajj"},
	{ID: "q10", Kind: TrueFalse, Prompt: "Fasting means eating a lot in Ramadan.", Answer: "False", Category: "Fasting"},
	{ID: "q11", Kind: TrueFalse, Prompt: "Salah helps us remember Allah.", Answer: "True", Category: "Prayer"},
	{ID: "q12", Kind: TrueFalse, Prompt: "Shahadah means believing in one Allah.", Answer: "True", Category: "Faith"},
	{ID: "q13", Kind: TrueFalse, Prompt: "We should give Zakah to help others.", Answer: "True", Category: "Charity"},
}

// PillarsOrder lists the five pillars in order.
var PillarsOrder = []string{"Shahadah", "Salah", "Zakah", "Sawm", "Hajj"}

// Questions returns a copy of the built-in quiz in its authored order.
func Questions() []Question {
	out := make([]Question, len(pillarsQuiz))
	copy(out, pillarsQuiz)
	return out
}

// Shuffled returns the built-in quiz in a uniformly random order.
func Shuffled(g *generator.Generator) []Question {
	return generator.Shuffle(g, pillarsQuiz)
}

// Choices returns answer plus up to n-1 distinct distractors drawn at random
// from pool, in random order. Pool entries matching answer are skipped.
func Choices(g *generator.Generator, answer string, pool []string, n int) []string {
	out := []string{answer}
	for _, i := range g.Perm(len(pool)) {
		if len(out) >= n {
			break
		}
		if containsFold(out, normalize(pool[i])) {
			continue
		}
		out = append(out, pool[i])
	}
	return generator.Shuffle(g, out)
}

// Check reports whether answer matches correct, ignoring case and
// surrounding whitespace.
func Check(answer, correct string) bool {
	return normalize(answer) == normalize(correct)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Resolve maps shorthand input onto the question's answer vocabulary:
// an option number for multiple choice, t/f for true-false.
func (q Question) Resolve(input string) string {
	in := normalize(input)
	switch q.Kind {
	case MultipleChoice:
		if n, err := strconv.Atoi(in); err == nil && n >= 1 && n <= len(q.Options) {
			if !containsFold(q.Options, in) {
				return q.Options[n-1]
			}
		}
	case TrueFalse:
		switch in {
		case "t", "y", "yes":
			return "True"
		case "f", "n", "no":
			return "False"
		}
	}
	return strings.TrimSpace(input)
}

// Correct reports whether input answers q, after Resolve.
func (q Question) Correct(input string) bool {
	return Check(q.Resolve(input), q.Answer)
}

func containsFold(options []string, s string) bool {
	for _, o := range options {
		if normalize(o) == s {
			return true
		}
	}
	return false
}

// Score counts the questions whose recorded answer is correct.
// answers is keyed by question ID; missing answers count as wrong.
func Score(questions []Question, answers map[string]string) int {
	score := 0
	for _, q := range questions {
		if a, ok := answers[q.ID]; ok && q.Correct(a) {
			score++
		}
	}
	return score
}

// Passed reports whether score out of total reaches PassRatio.
func Passed(score, total int) bool {
	if total <= 0 {
		return false
	}
	return float64(score) >= float64(total)*PassRatio
}
