package stats

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/LaduClassic/liyahs-learning-jour/internal/model"
)

const (
	terminalWidthBackup = 80
	reportRecentLimit   = 5
	minReportWidth      = 20
)

// RenderReport writes the human-readable progress report for rec.
// Lines never exceed width display columns.
func RenderReport(w io.Writer, rec model.ProgressRecord, width int) error {
	if width < minReportWidth {
		width = minReportWidth
	}
	var lines []string
	lines = append(lines, "Progress")
	lines = append(lines, fmt.Sprintf("Sessions: %d  Problems: %d  Correct: %d  Accuracy: %s",
		rec.TotalSessions, rec.TotalProblems, rec.TotalCorrect, formatPct(rec.OverallAccuracy)))
	if !rec.LastActive.IsZero() {
		lines = append(lines, "Last active: "+rec.LastActive.Local().Format("2006-01-02 15:04"))
	}

	lines = append(lines, "", "Math")
	table := newTextTable("Operator", "Attempted", "Correct", "Accuracy", "Last").alignRight(1, 2, 3)
	for _, op := range OperatorsByAttempts(rec) {
		p := rec.Math[op]
		last := "-"
		if !p.LastPracticed.IsZero() {
			last = p.LastPracticed.Local().Format("2006-01-02")
		}
		acc := "-"
		if p.Attempted > 0 {
			acc = formatPct(p.Accuracy)
		}
		table.add(op.Symbol()+" "+op.Title(), fmt.Sprint(p.Attempted), fmt.Sprint(p.Correct), acc, last)
	}
	lines = append(lines, table.lines()...)
	if op, ok := WeakestOperator(rec); ok {
		lines = append(lines, "Needs practice: "+op.Title())
	}

	lines = append(lines, "",
		subjectLine("Science", rec.Science),
		subjectLine("Arabic", rec.Arabic),
		subjectLine("Islamic", rec.Islamic),
	)

	if len(rec.RecentSessions) > 0 {
		lines = append(lines, "", "Recent sessions")
		recent := newTextTable("When", "Subject", "Score", "Accuracy").alignRight(2, 3)
		for i, s := range rec.RecentSessions {
			if i >= reportRecentLimit {
				break
			}
			subject := string(s.Subject)
			if s.Operator != "" {
				subject += " " + s.Operator.Symbol()
			}
			recent.add(s.EndedAt.Local().Format("01-02 15:04"), subject,
				fmt.Sprintf("%d/%d", s.Score, s.Total), formatPct(s.Accuracy))
		}
		lines = append(lines, recent.lines()...)

		values := make([]float64, 0, len(rec.RecentSessions))
		for i := len(rec.RecentSessions) - 1; i >= 0; i-- {
			values = append(values, rec.RecentSessions[i].Accuracy)
		}
		lines = append(lines, "Trend: "+Sparkline(MovingAverage(values, 2)))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, runewidth.Truncate(line, width, "")); err != nil {
			return err
		}
	}
	return nil
}

// TerminalWidth returns the stdout width, or 80 when it is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func subjectLine(name string, p model.SubjectProgress) string {
	minutes := float64(p.TotalTimeMs) / 60000
	return fmt.Sprintf("%-8s %d completed, %.1f min", name+":", p.Completed, minutes)
}

func formatPct(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}
