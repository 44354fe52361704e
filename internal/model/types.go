// Package model defines shared data structures.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Config defines practice and spelling settings.
type Config struct {
	Operator   Operator   `validate:"oneof=addition subtraction multiplication division"`
	Difficulty Difficulty `validate:"oneof=easy medium hard"`
	Questions  int        `validate:"gt=0,lte=100"`
	FocusWeak  bool
	SpellWords int    `validate:"gte=0"`
	SpellMode  string `validate:"oneof=order write"`
	LogLevel   string `validate:"oneof=debug info warn error"`
}

// Subject identifies the learning area a session belongs to.
type Subject string

// Subjects offered on the home screen.
const (
	SubjectMath    Subject = "math"
	SubjectScience Subject = "science"
	SubjectArabic  Subject = "arabic"
	SubjectCoding  Subject = "coding"
	SubjectIslamic Subject = "islamic"
)

// Operator is one of the four arithmetic operations.
type Operator string

// Supported operators.
const (
	OpAdd      Operator = "addition"
	OpSubtract Operator = "subtraction"
	OpMultiply Operator = "multiplication"
	OpDivide   Operator = "division"
)

// Operators lists every operator in display order.
var Operators = []Operator{OpAdd, OpSubtract, OpMultiply, OpDivide}

// Symbol returns the printed operator sign.
func (o Operator) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "−"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return "?"
	}
}

// Title returns the capitalized operator name.
func (o Operator) Title() string {
	s := string(o)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Valid reports whether o is a known operator.
func (o Operator) Valid() bool {
	switch o {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return true
	}
	return false
}

// ParseOperator accepts the full name or a short alias (add, sub, mul, div, + - x /).
func ParseOperator(s string) (Operator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "addition", "add", "+":
		return OpAdd, nil
	case "subtraction", "sub", "-":
		return OpSubtract, nil
	case "multiplication", "mul", "x", "*":
		return OpMultiply, nil
	case "division", "div", "/":
		return OpDivide, nil
	}
	return "", fmt.Errorf("unknown operator %q", s)
}

// Difficulty is the operand range tier.
type Difficulty string

// Difficulty tiers.
const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// ParseDifficulty maps s to a tier; anything unrecognized is Easy.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case Medium:
		return Medium
	case Hard:
		return Hard
	default:
		return Easy
	}
}

// Problem is a single arithmetic question.
type Problem struct {
	ID       string   `json:"id"`
	Operator Operator `json:"operation"`
	A        int      `json:"num1"`
	B        int      `json:"num2"`
	Answer   int      `json:"answer"`
}

// String renders the problem as "a op b".
func (p Problem) String() string {
	return fmt.Sprintf("%d %s %d", p.A, p.Operator.Symbol(), p.B)
}

// Check reports whether answer is the expected result.
func (p Problem) Check(answer int) bool {
	return answer == p.Answer
}

// SessionResult captures one completed play-through.
type SessionResult struct {
	ID        string    `json:"id"`
	Subject   Subject   `json:"subject"`
	Operator  Operator  `json:"operation,omitempty"`
	Score     int       `json:"score"`
	Total     int       `json:"totalQuestions"`
	Accuracy  float64   `json:"accuracy"`
	StartedAt time.Time `json:"startTime"`
	EndedAt   time.Time `json:"endTime"`
}

// OperatorProgress is the per-operator breakdown.
type OperatorProgress struct {
	Attempted     int       `json:"attempted"`
	Correct       int       `json:"correct"`
	Accuracy      float64   `json:"accuracy"`
	LastPracticed time.Time `json:"lastPracticed"`
}

// SubjectProgress counts non-math activity.
type SubjectProgress struct {
	Completed   int   `json:"completed"`
	TotalTimeMs int64 `json:"totalTime"`
}

// ProgressRecord is the cumulative persisted summary of a learner.
type ProgressRecord struct {
	TotalSessions   int                           `json:"totalSessions"`
	TotalProblems   int                           `json:"totalProblems"`
	TotalCorrect    int                           `json:"totalCorrect"`
	OverallAccuracy float64                       `json:"overallAccuracy"`
	Math            map[Operator]OperatorProgress `json:"mathProgress"`
	Science         SubjectProgress               `json:"scienceProgress"`
	Arabic          SubjectProgress               `json:"arabicProgress"`
	Islamic         SubjectProgress               `json:"islamicProgress"`
	RecentSessions  []SessionResult               `json:"recentSessions"`
	LastActive      time.Time                     `json:"lastActive"`
}

// SpellingWord is an immutable reference entry for spelling drills.
type SpellingWord struct {
	Script   string `json:"arabic"`
	Phonetic string `json:"phonetic"`
	Meaning  string `json:"definition"`
}
