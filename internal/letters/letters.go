// Package letters holds the Arabic alphabet with its positional forms and
// builds the letter-recognition quiz.
package letters

import (
	"fmt"
	"strings"

	"github.com/LaduClassic/liyahs-learning-jour/internal/generator"
	"github.com/LaduClassic/liyahs-learning-jour/internal/quiz"
)

// Form is the position a letter takes inside a word.
type Form string

// Positional forms asked about in the quiz.
const (
	Beginning Form = "beginning"
	Middle    Form = "middle"
	Final     Form = "final"
)

// Forms lists the quizzed forms in the order they are offered.
var Forms = []Form{Beginning, Middle, Final}

// Mode selects which side of a letter the quiz shows.
type Mode string

// Quiz modes.
const (
	FormToName Mode = "form-to-name"
	NameToForm Mode = "name-to-form"
)

// ParseMode accepts a mode name or its short form (name, form).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(FormToName), "name":
		return FormToName, nil
	case string(NameToForm), "form":
		return NameToForm, nil
	}
	return "", fmt.Errorf("unknown letters mode %q (want %s or %s)", s, FormToName, NameToForm)
}

// Letter is one alphabet entry.
type Letter struct {
	Name         string
	Romanization string
	Isolated     string
	Beginning    string
	Middle       string
	Final        string
}

// Form returns the letter written in position f.
func (l Letter) Form(f Form) string {
	switch f {
	case Beginning:
		return l.Beginning
	case Middle:
		return l.Middle
	case Final:
		return l.Final
	default:
		return l.Isolated
	}
}

// Names must stay unique: the form-to-name quiz offers them as choices.
var alphabet = []Letter{
	{Name: "Alif", Romanization: "aa", Isolated: "ا", Beginning: "اـ", Middle: "ـا", Final: "ـا"},
	{Name: "Baa", Romanization: "b", Isolated: "ب", Beginning: "بـ", Middle: "ـبـ", Final: "ـب"},
	{Name: "Taa", Romanization: "t", Isolated: "ت", Beginning: "تـ", Middle: "ـتـ", Final: "ـت"},
	{Name: "Thaa", Romanization: "th", Isolated: "ث", Beginning: "ثـ", Middle: "ـثـ", Final: "ـث"},
	{Name: "Jeem", Romanization: "j", Isolated: "ج", Beginning: "جـ", Middle: "ـجـ", Final: "ـج"},
	{Name: "Haa", Romanization: "h", Isolated: "ح", Beginning: "حـ", Middle: "ـحـ", Final: "ـح"},
	{Name: "Khaa", Romanization: "kh", Isolated: "خ", Beginning: "خـ", Middle: "ـخـ", Final: "ـخ"},
	{Name: "Daal", Romanization: "d", Isolated: "د", Beginning: "دـ", Middle: "ـد", Final: "ـد"},
	{Name: "Dhaal", Romanization: "dh", Isolated: "ذ", Beginning: "ذـ", Middle: "ـذ", Final: "ـذ"},
	{Name: "Raa", Romanization: "r", Isolated: "ر", Beginning: "رـ", Middle: "ـر", Final: "ـر"},
	{Name: "Zay", Romanization: "z", Isolated: "ز", Beginning: "زـ", Middle: "ـز", Final: "ـز"},
	{Name: "Seen", Romanization: "s", Isolated: "س", Beginning: "سـ", Middle: "ـسـ", Final: "ـس"},
	{Name: "Sheen", Romanization: "sh", Isolated: "ش", Beginning: "شـ", Middle: "ـشـ", Final: "ـش"},
	{Name: "Saad", Romanization: "s", Isolated: "ص", Beginning: "صـ", Middle: "ـصـ", Final: "ـص"},
	{Name: "Daad", Romanization: "d", Isolated: "ض", Beginning: "ضـ", Middle: "ـضـ", Final: "ـض"},
	{Name: "Tah", Romanization: "t", Isolated: "ط", Beginning: "طـ", Middle: "ـطـ", Final: "ـط"},
	{Name: "Zaa", Romanization: "z", Isolated: "ظ", Beginning: "ظـ", Middle: "ـظـ", Final: "ـظ"},
	{Name: "Ayn", Romanization: "'", Isolated: "ع", Beginning: "عـ", Middle: "ـعـ", Final: "ـع"},
	{Name: "Ghayn", Romanization: "gh", Isolated: "غ", Beginning: "غـ", Middle: "ـغـ", Final: "ـغ"},
	{Name: "Faa", Romanization: "f", Isolated: "ف", Beginning: "فـ", Middle: "ـفـ", Final: "ـف"},
	{Name: "Qaaf", Romanization: "q", Isolated: "ق", Beginning: "قـ", Middle: "ـقـ", Final: "ـق"},
	{Name: "Kaaf", Romanization: "k", Isolated: "ك", Beginning: "كـ", Middle: "ـكـ", Final: "ـك"},
	{Name: "Laam", Romanization: "l", Isolated: "ل", Beginning: "لـ", Middle: "ـلـ", Final: "ـل"},
	{Name: "Meem", Romanization: "m", Isolated: "م", Beginning: "مـ", Middle: "ـمـ", Final: "ـم"},
	{Name: "Noon", Romanization: "n", Isolated: "ن", Beginning: "نـ", Middle: "ـنـ", Final: "ـن"},
	{Name: "Ha", Romanization: "h", Isolated: "ه", Beginning: "هـ", Middle: "ـهـ", Final: "ـه"},
	{Name: "Waaw", Romanization: "w", Isolated: "و", Beginning: "وـ", Middle: "ـو", Final: "ـو"},
	{Name: "Yaa", Romanization: "y", Isolated: "ي", Beginning: "يـ", Middle: "ـيـ", Final: "ـي"},
}

const choiceCount = 4

// Alphabet returns a copy of the 28 letters in alphabetical order.
func Alphabet() []Letter {
	out := make([]Letter, len(alphabet))
	copy(out, alphabet)
	return out
}

// Questions builds n letter questions. Letters do not repeat until the
// whole alphabet has been asked; each question quizzes a random form.
func Questions(g *generator.Generator, mode Mode, n int) []quiz.Question {
	names := make([]string, len(alphabet))
	for i, l := range alphabet {
		names[i] = l.Name
	}

	out := make([]quiz.Question, 0, n)
	var order []int
	for i := 0; i < n; i++ {
		if len(order) == 0 {
			order = g.Perm(len(alphabet))
		}
		letter := alphabet[order[0]]
		order = order[1:]
		form := Forms[g.Rand().Intn(len(Forms))]
		q := quiz.Question{
			ID:       fmt.Sprintf("letter-%d", i+1),
			Kind:     quiz.MultipleChoice,
			Category: "Letters",
		}
		if mode == NameToForm {
			q.Prompt = fmt.Sprintf("Pick the %s form of %s.", form, letter.Name)
			q.Options = []string{letter.Beginning, letter.Middle, letter.Final}
			q.Answer = letter.Form(form)
		} else {
			q.Prompt = fmt.Sprintf("Which letter is this %s form?   %s", form, letter.Form(form))
			q.Options = quiz.Choices(g, letter.Name, names, choiceCount)
			q.Answer = letter.Name
		}
		out = append(out, q)
	}
	return out
}
