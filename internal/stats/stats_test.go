package stats

import (
	"math"
	"testing"
	"time"

	"github.com/LaduClassic/liyahs-learning-jour/internal/model"
)

func mathSession(id string, op model.Operator, score, total int, end time.Time) model.SessionResult {
	return model.SessionResult{
		ID:        id,
		Subject:   model.SubjectMath,
		Operator:  op,
		Score:     score,
		Total:     total,
		Accuracy:  Accuracy(score, total),
		StartedAt: end.Add(-time.Minute),
		EndedAt:   end,
	}
}

func TestAccuracyZeroGuard(t *testing.T) {
	if got := Accuracy(0, 0); got != 0 {
		t.Fatalf("expected 0 for empty total, got %v", got)
	}
	if got := Accuracy(5, -1); got != 0 {
		t.Fatalf("expected 0 for negative total, got %v", got)
	}
	if got := Accuracy(3, 4); got != 75 {
		t.Fatalf("expected 75, got %v", got)
	}
	if got := Accuracy(5, 4); got != 100 {
		t.Fatalf("expected clamp to 100, got %v", got)
	}
}

func TestNewRecordHasAllOperators(t *testing.T) {
	rec := NewRecord()
	for _, op := range model.Operators {
		if _, ok := rec.Math[op]; !ok {
			t.Fatalf("missing bucket for %s", op)
		}
	}
	if rec.RecentSessions == nil || len(rec.RecentSessions) != 0 {
		t.Fatalf("expected empty recent sessions, got %v", rec.RecentSessions)
	}
}

func TestApplySessionZeroTotal(t *testing.T) {
	end := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	rec := ApplySession(NewRecord(), mathSession("empty", model.OpAdd, 0, 0, end))

	if rec.TotalSessions != 1 || rec.TotalProblems != 0 || rec.TotalCorrect != 0 {
		t.Fatalf("unexpected totals: %+v", rec)
	}
	if math.IsNaN(rec.OverallAccuracy) || rec.OverallAccuracy != 0 {
		t.Fatalf("expected 0 overall accuracy, got %v", rec.OverallAccuracy)
	}
	bucket := rec.Math[model.OpAdd]
	if math.IsNaN(bucket.Accuracy) || bucket.Accuracy != 0 {
		t.Fatalf("expected 0 bucket accuracy, got %v", bucket.Accuracy)
	}
	if bucket.Attempted != 0 || !bucket.LastPracticed.Equal(end) {
		t.Fatalf("unexpected bucket: %+v", bucket)
	}
	if len(rec.RecentSessions) != 1 {
		t.Fatalf("expected the empty session in history, got %d", len(rec.RecentSessions))
	}
}

func TestApplySessionAccumulates(t *testing.T) {
	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	rec := ApplySession(NewRecord(), mathSession("a", model.OpAdd, 8, 10, base))
	rec = ApplySession(rec, mathSession("b", model.OpAdd, 5, 10, base.Add(time.Hour)))

	if rec.TotalSessions != 2 || rec.TotalProblems != 20 || rec.TotalCorrect != 13 {
		t.Fatalf("unexpected totals: %+v", rec)
	}
	if math.Abs(rec.OverallAccuracy-65) > 1e-9 {
		t.Fatalf("expected 65%% overall, got %v", rec.OverallAccuracy)
	}
	add := rec.Math[model.OpAdd]
	if add.Attempted != 20 || add.Correct != 13 || math.Abs(add.Accuracy-65) > 1e-9 {
		t.Fatalf("unexpected addition bucket: %+v", add)
	}
	if !add.LastPracticed.Equal(base.Add(time.Hour)) {
		t.Fatalf("unexpected last practiced: %v", add.LastPracticed)
	}
	if rec.Math[model.OpDivide].Attempted != 0 {
		t.Fatalf("division bucket should be untouched")
	}
	if rec.RecentSessions[0].ID != "b" {
		t.Fatalf("expected newest session first, got %+v", rec.RecentSessions)
	}
	if !rec.LastActive.Equal(base.Add(time.Hour)) {
		t.Fatalf("unexpected last active: %v", rec.LastActive)
	}
}

func TestApplySessionCapsRecent(t *testing.T) {
	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	rec := NewRecord()
	for i := 0; i < 12; i++ {
		id := string(rune('a' + i))
		rec = ApplySession(rec, mathSession(id, model.OpMultiply, 1, 2, base.Add(time.Duration(i)*time.Minute)))
	}
	if len(rec.RecentSessions) != RecentSessionLimit {
		t.Fatalf("expected %d recent sessions, got %d", RecentSessionLimit, len(rec.RecentSessions))
	}
	if rec.RecentSessions[0].ID != "l" || rec.RecentSessions[9].ID != "c" {
		t.Fatalf("expected sessions l..c, got first=%s last=%s", rec.RecentSessions[0].ID, rec.RecentSessions[9].ID)
	}
	if rec.TotalSessions != 12 {
		t.Fatalf("expected 12 sessions counted, got %d", rec.TotalSessions)
	}
}

func TestApplySessionDoesNotMutateInput(t *testing.T) {
	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	rec := ApplySession(NewRecord(), mathSession("a", model.OpSubtract, 2, 4, base))
	before := rec.Math[model.OpSubtract]
	_ = ApplySession(rec, mathSession("b", model.OpSubtract, 4, 4, base.Add(time.Minute)))

	if rec.Math[model.OpSubtract] != before {
		t.Fatalf("input bucket mutated: %+v", rec.Math[model.OpSubtract])
	}
	if len(rec.RecentSessions) != 1 || rec.TotalSessions != 1 {
		t.Fatalf("input record mutated: %+v", rec)
	}
}

func TestApplySessionSubjects(t *testing.T) {
	start := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	rec := ApplySession(NewRecord(), model.SessionResult{
		ID: "q", Subject: model.SubjectIslamic, Score: 10, Total: 13,
		StartedAt: start, EndedAt: start.Add(90 * time.Second),
	})
	rec = ApplySession(rec, model.SessionResult{
		ID: "s", Subject: model.SubjectArabic, Score: 4, Total: 5,
		StartedAt: start.Add(time.Minute), EndedAt: start,
	})
	if rec.Islamic.Completed != 1 || rec.Islamic.TotalTimeMs != 90000 {
		t.Fatalf("unexpected islamic progress: %+v", rec.Islamic)
	}
	if rec.Arabic.Completed != 1 || rec.Arabic.TotalTimeMs != 0 {
		t.Fatalf("expected clamped arabic time, got %+v", rec.Arabic)
	}
	for op, p := range rec.Math {
		if p.Attempted != 0 {
			t.Fatalf("non-math session touched %s: %+v", op, p)
		}
	}
	if rec.TotalProblems != 18 {
		t.Fatalf("expected 18 problems, got %d", rec.TotalProblems)
	}
}

func TestApplySessionKeepsLatestActivity(t *testing.T) {
	late := time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC)
	rec := ApplySession(NewRecord(), mathSession("a", model.OpAdd, 1, 1, late))
	rec = ApplySession(rec, mathSession("b", model.OpAdd, 1, 1, late.Add(-time.Hour)))
	if !rec.LastActive.Equal(late) {
		t.Fatalf("expected last active to stay at %v, got %v", late, rec.LastActive)
	}
}

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{2, 4, 6, 8}, 2)
	want := []float64{2, 3, 5, 7}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("index %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil); got != "" {
		t.Fatalf("expected empty sparkline, got %q", got)
	}
	got := Sparkline([]float64{0, 50, 100})
	if len(got) != 3 || got[0] != ' ' || got[2] != '@' {
		t.Fatalf("unexpected sparkline %q", got)
	}
	flat := Sparkline([]float64{7, 7})
	if flat != "++" {
		t.Fatalf("unexpected flat sparkline %q", flat)
	}
}
