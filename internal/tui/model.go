// Package tui provides the Bubble Tea practice screens.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LaduClassic/liyahs-learning-jour/internal/generator"
	"github.com/LaduClassic/liyahs-learning-jour/internal/model"
	statsPkg "github.com/LaduClassic/liyahs-learning-jour/internal/stats"
	"github.com/LaduClassic/liyahs-learning-jour/internal/store"
)

// Model implements the math flashcard UI.
type Model struct {
	config model.Config
	store  *store.Store
	gen    *generator.Generator

	width  int
	height int

	operator  model.Operator
	problems  []model.Problem
	index     int
	score     int
	startedAt time.Time

	input    textinput.Model
	answered bool
	correct  bool
	message  string
	errMsg   string
	done     bool

	progress model.ProgressRecord
	hasLast  bool
	last     model.SessionResult
}

var (
	correctStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true)
	incorrectStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	pendingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	problemStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	headingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	footerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	answerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Underline(true)
	tileStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Padding(0, 1)
	usedTileStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A")).Padding(0, 1)
	cursorTileStyle = tileStyle.Foreground(lipgloss.Color("#C89A3A")).Underline(true)

	bandStyles = map[statsPkg.Band]lipgloss.Style{
		statsPkg.BandGood: correctStyle,
		statsPkg.BandOK:   headingStyle,
		statsPkg.BandLow:  incorrectStyle,
	}
)

// NewModel constructs a math practice model. With FocusWeak set, the weakest
// practiced operator replaces the configured one.
func NewModel(cfg model.Config, st *store.Store, gen *generator.Generator) *Model {
	m := &Model{
		config:   cfg,
		store:    st,
		gen:      gen,
		operator: cfg.Operator,
		input:    newAnswerInput(),
	}
	m.loadProgress()
	if cfg.FocusWeak {
		if op, ok := statsPkg.WeakestOperator(m.progress); ok {
			m.operator = op
		} else {
			slog.Info("no math progress yet; keeping configured operator", "operator", string(cfg.Operator))
		}
	}
	m.resetSession()
	return m
}

func newAnswerInput() textinput.Model {
	input := textinput.New()
	input.Prompt = "= "
	input.Placeholder = "?"
	input.CharLimit = 6
	input.Width = 8
	input.Validate = func(s string) error {
		if s == "" || s == "-" {
			return nil
		}
		_, err := strconv.Atoi(s)
		return err
	}
	input.Focus()
	return input
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.handleEnter()
		}
		if m.done {
			if msg.String() == "q" {
				return m, tea.Quit
			}
			return m, nil
		}
		if m.answered {
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleEnter() (tea.Model, tea.Cmd) {
	switch {
	case m.done:
		m.resetSession()
		return m, nil
	case m.answered:
		m.advance()
		return m, nil
	}
	m.submit(m.input.Value())
	return m, nil
}

// submit checks the typed answer against the current problem.
func (m *Model) submit(raw string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}
	answer, err := strconv.Atoi(raw)
	if err != nil {
		m.message = "Type a number"
		return
	}
	if !m.started() {
		m.startedAt = time.Now()
	}
	m.answered = true
	m.correct = m.problems[m.index].Check(answer)
	if m.correct {
		m.score++
	}
	m.message = model.Encouragement(m.gen.Rand(), m.correct)
}

func (m *Model) started() bool {
	return !m.startedAt.IsZero()
}

func (m *Model) advance() {
	m.answered = false
	m.message = ""
	m.input.Reset()
	m.index++
	if m.index >= len(m.problems) {
		m.finishSession()
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	if m.done {
		content = m.renderSummary()
	} else {
		content = m.renderQuestion()
	}
	footer := footerWithError(m.renderFooter(), m.errMsg)
	if m.width == 0 || m.height == 0 {
		return content + "\n" + footer
	}
	if footer == "" || m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderQuestion() string {
	if len(m.problems) == 0 {
		return ""
	}
	p := m.problems[m.index]
	lines := []string{
		headingStyle.Render(m.operator.Title() + " · " + string(m.config.Difficulty)),
		"",
		problemStyle.Render(p.String()),
		m.input.View(),
		"",
	}
	switch {
	case m.answered && m.correct:
		lines = append(lines, correctStyle.Render(m.message), pendingStyle.Render("enter: next"))
	case m.answered:
		lines = append(lines,
			incorrectStyle.Render(m.message),
			pendingStyle.Render(fmt.Sprintf("%s = %d", p.String(), p.Answer)),
			pendingStyle.Render("enter: next"))
	case m.message != "":
		lines = append(lines, incorrectStyle.Render(m.message))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *Model) renderSummary() string {
	total := len(m.problems)
	acc := statsPkg.Accuracy(m.score, total)
	style := bandStyles[statsPkg.BandFor(acc)]
	lines := []string{
		headingStyle.Render(statsPkg.Feedback(m.score, total)),
		"",
		style.Render(fmt.Sprintf("%d / %d  (%.0f%%)", m.score, total, acc)),
		"",
		pendingStyle.Render("enter: play again  q: quit"),
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *Model) renderFooter() string {
	total := len(m.problems)
	if total == 0 {
		return ""
	}
	question := m.index + 1
	if question > total {
		question = total
	}
	segments := []string{
		fmt.Sprintf("Question %d/%d", question, total),
		fmt.Sprintf("Score %d", m.score),
	}
	if m.hasLast {
		segments = append(segments, fmt.Sprintf("Last %d/%d", m.last.Score, m.last.Total))
	}
	if p := m.progress.Math[m.operator]; p.Attempted > 0 {
		segments = append(segments, fmt.Sprintf("%s %.1f%%", m.operator.Title(), p.Accuracy))
	}
	if m.progress.TotalProblems > 0 {
		segments = append(segments, fmt.Sprintf("All-time %.1f%%", m.progress.OverallAccuracy))
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}

// footerWithError appends a storage error to the footer. Errors stay on
// screen because stderr is hidden behind the alternate screen.
func footerWithError(footer, errMsg string) string {
	if errMsg == "" {
		return footer
	}
	msg := incorrectStyle.Render(errMsg)
	if footer == "" {
		return msg
	}
	return footer + "  " + msg
}

func (m *Model) loadProgress() {
	if m.store == nil {
		m.progress = statsPkg.NewRecord()
		return
	}
	rec, err := m.store.LoadProgress(context.Background(), statsPkg.NewRecord())
	if err != nil {
		m.errMsg = "progress not loaded: " + err.Error()
	}
	m.progress = rec
}

func (m *Model) resetSession() {
	m.problems = m.gen.Problems(m.operator, m.config.Difficulty, m.config.Questions)
	m.index = 0
	m.score = 0
	m.startedAt = time.Time{}
	m.answered = false
	m.correct = false
	m.message = ""
	m.done = false
	m.input.Reset()
}

func (m *Model) finishSession() {
	m.done = true
	endedAt := time.Now()
	startedAt := m.startedAt
	if startedAt.IsZero() {
		startedAt = endedAt
	}
	total := len(m.problems)
	session := model.SessionResult{
		ID:        m.gen.NewID(),
		Subject:   model.SubjectMath,
		Operator:  m.operator,
		Score:     m.score,
		Total:     total,
		Accuracy:  statsPkg.Accuracy(m.score, total),
		StartedAt: startedAt,
		EndedAt:   endedAt,
	}
	m.last = session
	m.hasLast = true
	m.record(session)
}

func (m *Model) record(session model.SessionResult) {
	if m.store == nil {
		m.progress = statsPkg.ApplySession(m.progress, session)
		return
	}
	rec, err := statsPkg.RecordSession(context.Background(), m.store, session)
	if err != nil {
		m.errMsg = "progress not saved: " + err.Error()
		m.progress = statsPkg.ApplySession(m.progress, session)
		return
	}
	m.errMsg = ""
	m.progress = rec
}
