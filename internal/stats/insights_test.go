package stats

import (
	"testing"

	"github.com/LaduClassic/liyahs-learning-jour/internal/model"
)

func TestWeakestOperator(t *testing.T) {
	rec := NewRecord()
	if _, ok := WeakestOperator(rec); ok {
		t.Fatalf("expected no weakest operator for a fresh record")
	}
	rec.Math[model.OpAdd] = model.OperatorProgress{Attempted: 10, Correct: 9, Accuracy: 90}
	rec.Math[model.OpDivide] = model.OperatorProgress{Attempted: 10, Correct: 4, Accuracy: 40}
	rec.Math[model.OpMultiply] = model.OperatorProgress{Attempted: 5, Correct: 2, Accuracy: 40}
	op, ok := WeakestOperator(rec)
	if !ok || op != model.OpMultiply {
		t.Fatalf("expected multiplication (first of the tie), got %s %v", op, ok)
	}
}

func TestOperatorsByAttempts(t *testing.T) {
	rec := NewRecord()
	rec.Math[model.OpDivide] = model.OperatorProgress{Attempted: 30}
	rec.Math[model.OpSubtract] = model.OperatorProgress{Attempted: 10}
	got := OperatorsByAttempts(rec)
	want := []model.Operator{model.OpDivide, model.OpSubtract, model.OpAdd, model.OpMultiply}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestBandFor(t *testing.T) {
	cases := map[float64]Band{0: BandLow, 69.9: BandLow, 70: BandOK, 89.99: BandOK, 90: BandGood, 100: BandGood}
	for acc, want := range cases {
		if got := BandFor(acc); got != want {
			t.Fatalf("accuracy %v: expected band %d, got %d", acc, want, got)
		}
	}
}

func TestFeedback(t *testing.T) {
	cases := []struct {
		score, total int
		want         string
	}{
		{8, 10, "Amazing work!"},
		{10, 10, "Amazing work!"},
		{6, 10, "Good job!"},
		{5, 10, "Keep trying!"},
		{0, 0, "Keep trying!"},
	}
	for _, tc := range cases {
		if got := Feedback(tc.score, tc.total); got != tc.want {
			t.Fatalf("%d/%d: expected %q, got %q", tc.score, tc.total, tc.want, got)
		}
	}
}
