// Package stats folds finished sessions into progress and renders reports.
package stats

import (
	"math"
	"strings"

	"github.com/LaduClassic/liyahs-learning-jour/internal/model"
)

// RecentSessionLimit caps the recent-sessions history.
const RecentSessionLimit = 10

const sparkChars = " .:-=+*#%@"

// NewRecord returns the zeroed progress record used for a fresh learner.
func NewRecord() model.ProgressRecord {
	rec := model.ProgressRecord{
		Math:           make(map[model.Operator]model.OperatorProgress, len(model.Operators)),
		RecentSessions: []model.SessionResult{},
	}
	for _, op := range model.Operators {
		rec.Math[op] = model.OperatorProgress{}
	}
	return rec
}

// Accuracy returns correct/total as a percentage in [0, 100], or 0 when total is 0.
func Accuracy(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	acc := float64(correct) / float64(total) * 100
	if acc < 0 {
		return 0
	}
	if acc > 100 {
		return 100
	}
	return acc
}

// ApplySession folds one finished session into rec and returns the new record.
// rec is not modified.
func ApplySession(rec model.ProgressRecord, s model.SessionResult) model.ProgressRecord {
	next := rec
	next.Math = make(map[model.Operator]model.OperatorProgress, len(model.Operators))
	for _, op := range model.Operators {
		next.Math[op] = model.OperatorProgress{}
	}
	for op, p := range rec.Math {
		next.Math[op] = p
	}

	next.TotalSessions++
	next.TotalProblems += s.Total
	next.TotalCorrect += s.Score
	next.OverallAccuracy = Accuracy(next.TotalCorrect, next.TotalProblems)

	if s.Operator != "" {
		bucket := next.Math[s.Operator]
		bucket.Attempted += s.Total
		bucket.Correct += s.Score
		bucket.Accuracy = Accuracy(bucket.Correct, bucket.Attempted)
		bucket.LastPracticed = s.EndedAt
		next.Math[s.Operator] = bucket
	}

	elapsed := s.EndedAt.Sub(s.StartedAt).Milliseconds()
	if elapsed < 0 {
		elapsed = 0
	}
	switch s.Subject {
	case model.SubjectScience:
		next.Science = bumpSubject(next.Science, elapsed)
	case model.SubjectArabic:
		next.Arabic = bumpSubject(next.Arabic, elapsed)
	case model.SubjectIslamic:
		next.Islamic = bumpSubject(next.Islamic, elapsed)
	}

	recent := make([]model.SessionResult, 0, RecentSessionLimit)
	recent = append(recent, s)
	recent = append(recent, rec.RecentSessions...)
	if len(recent) > RecentSessionLimit {
		recent = recent[:RecentSessionLimit]
	}
	next.RecentSessions = recent

	if s.EndedAt.After(next.LastActive) {
		next.LastActive = s.EndedAt
	}
	return next
}

func bumpSubject(p model.SubjectProgress, elapsedMs int64) model.SubjectProgress {
	p.Completed++
	p.TotalTimeMs += elapsedMs
	return p
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}
