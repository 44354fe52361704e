package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/LaduClassic/liyahs-learning-jour/internal/arabic"
	"github.com/LaduClassic/liyahs-learning-jour/internal/generator"
	"github.com/LaduClassic/liyahs-learning-jour/internal/model"
	"github.com/LaduClassic/liyahs-learning-jour/internal/stats"
)

var testWords = []model.SpellingWord{
	{Script: "بَيْتٌ", Phonetic: "bayt", Meaning: "house"},
	{Script: "كَلْبٌ", Phonetic: "kalb", Meaning: "dog"},
}

func solveByOrder(t *testing.T, m *SpellModel) {
	t.Helper()
	for _, want := range m.target {
		found := false
		for i, tile := range m.tiles {
			if !m.used[i] && tile == want {
				m.pick(i)
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("no tile left for cluster %q", want)
		}
	}
}

func TestSpellOrderModeScoresAndRecords(t *testing.T) {
	st := openStore(t)
	m := NewSpellModel(testWords, 0, SpellOrder, st, generator.NewWithSeed(4))
	if len(m.words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(m.words))
	}

	solveByOrder(t, m)
	if !m.answered || !m.correct {
		t.Fatalf("expected first word correct")
	}
	m.advance()

	for i := len(m.tiles) - 1; i >= 0; i-- {
		m.pick(i)
	}
	if !m.answered {
		t.Fatalf("expected second word checked once all tiles are placed")
	}
	wantCorrect := arabic.Strip(m.words[1].Script) == joinReversed(m.tiles)
	if m.correct != wantCorrect {
		t.Fatalf("unexpected check result %v", m.correct)
	}
	m.advance()
	if !m.done {
		t.Fatalf("expected round finished")
	}

	rec, err := st.LoadProgress(context.Background(), stats.NewRecord())
	if err != nil {
		t.Fatalf("load progress: %v", err)
	}
	if rec.Arabic.Completed != 1 || rec.TotalProblems != 2 {
		t.Fatalf("unexpected progress: %+v", rec)
	}
	if rec.RecentSessions[0].Subject != model.SubjectArabic || rec.RecentSessions[0].Operator != "" {
		t.Fatalf("unexpected session: %+v", rec.RecentSessions[0])
	}
}

func joinReversed(tiles []string) string {
	out := ""
	for i := len(tiles) - 1; i >= 0; i-- {
		out += tiles[i]
	}
	return out
}

func TestSpellUnpickRestoresTile(t *testing.T) {
	m := NewSpellModel(testWords[:1], 0, SpellOrder, nil, generator.NewWithSeed(5))
	m.pick(0)
	m.pick(0)
	if len(m.picked) != 1 {
		t.Fatalf("picking a used tile should be ignored, got %v", m.picked)
	}
	m.unpick()
	if len(m.picked) != 0 || m.used[0] {
		t.Fatalf("expected tile restored, picked=%v used=%v", m.picked, m.used)
	}
	if m.cursor != 0 {
		t.Fatalf("expected cursor back on restored tile, got %d", m.cursor)
	}
	m.pick(42)
	if len(m.picked) != 0 {
		t.Fatalf("out of range pick should be ignored")
	}
}

func TestSpellWriteModeIgnoresDiacritics(t *testing.T) {
	m := NewSpellModel(testWords[:1], 0, SpellWrite, nil, generator.NewWithSeed(6))
	m.checkWritten("بيت")
	if !m.answered || !m.correct {
		t.Fatalf("expected bare spelling accepted")
	}
	m.advance()
	if !m.done || m.score != 1 {
		t.Fatalf("expected finished round with score 1, got done=%v score=%d", m.done, m.score)
	}
}

func TestSpellRoundSize(t *testing.T) {
	m := NewSpellModel(testWords, 1, SpellWrite, nil, generator.NewWithSeed(7))
	if len(m.words) != 1 {
		t.Fatalf("expected round of 1, got %d", len(m.words))
	}
	empty := NewSpellModel(nil, 3, SpellOrder, nil, generator.NewWithSeed(8))
	if !empty.done {
		t.Fatalf("empty word list should finish immediately")
	}
}

func TestSpellSaveFailureShownInView(t *testing.T) {
	st := openStore(t)
	m := NewSpellModel(testWords[:1], 0, SpellWrite, st, generator.NewWithSeed(9))
	if err := st.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}
	m.checkWritten("بيت")
	m.advance()
	if !m.done {
		t.Fatalf("expected round finished")
	}
	if !strings.Contains(m.View(), "progress not saved") {
		t.Fatalf("expected save error in view:\n%s", m.View())
	}
}
