package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LaduClassic/liyahs-learning-jour/internal/arabic"
	"github.com/LaduClassic/liyahs-learning-jour/internal/generator"
	"github.com/LaduClassic/liyahs-learning-jour/internal/model"
	statsPkg "github.com/LaduClassic/liyahs-learning-jour/internal/stats"
	"github.com/LaduClassic/liyahs-learning-jour/internal/store"
)

// Spelling modes.
const (
	SpellOrder = "order"
	SpellWrite = "write"
)

// SpellModel implements the Arabic spelling puzzle. In order mode the word's
// letter clusters are shown shuffled and picked back into place; in write
// mode the word is typed and compared ignoring diacritics.
type SpellModel struct {
	store *store.Store
	gen   *generator.Generator
	mode  string

	width  int
	height int

	words     []model.SpellingWord
	index     int
	score     int
	startedAt time.Time

	target []string
	tiles  []string
	used   []bool
	picked []int
	cursor int

	input    textinput.Model
	answered bool
	correct  bool
	message  string
	errMsg   string
	done     bool
}

// NewSpellModel builds a round from words. count limits the round size; zero
// or a count above len(words) uses every word.
func NewSpellModel(words []model.SpellingWord, count int, mode string, st *store.Store, gen *generator.Generator) *SpellModel {
	if mode != SpellWrite {
		mode = SpellOrder
	}
	round := generator.Shuffle(gen, words)
	if count > 0 && count < len(round) {
		round = round[:count]
	}
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "اكتب هنا"
	input.Width = 24
	input.Focus()

	m := &SpellModel{
		store: st,
		gen:   gen,
		mode:  mode,
		words: round,
		input: input,
	}
	m.loadWord()
	return m
}

// Init implements tea.Model.
func (m *SpellModel) Init() tea.Cmd {
	if m.mode == SpellWrite {
		return textinput.Blink
	}
	return nil
}

// Update implements tea.Model.
func (m *SpellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			m.handleEnter()
			return m, nil
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
		if m.mode == SpellWrite {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		m.handleTileKey(msg)
		return m, nil
	}
	if m.mode == SpellWrite {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *SpellModel) handleEnter() {
	switch {
	case m.done:
		m.restart()
	case m.answered:
		m.advance()
	case m.mode == SpellWrite:
		m.checkWritten(m.input.Value())
	default:
		m.pick(m.cursor)
	}
}

func (m *SpellModel) handleTileKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete:
		m.unpick()
		return
	case tea.KeyLeft:
		m.moveCursor(-1)
		return
	case tea.KeyRight:
		m.moveCursor(1)
		return
	case tea.KeySpace:
		m.pick(m.cursor)
		return
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r >= '1' && r <= '9' {
				m.pick(int(r - '1'))
			}
		}
	}
}

func (m *SpellModel) moveCursor(delta int) {
	n := len(m.tiles)
	if n == 0 {
		return
	}
	m.cursor = (m.cursor + delta + n) % n
}

// pick moves tile i into the answer. Used or out-of-range tiles are ignored.
func (m *SpellModel) pick(i int) {
	if i < 0 || i >= len(m.tiles) || m.used[i] {
		return
	}
	m.markStarted()
	m.used[i] = true
	m.picked = append(m.picked, i)
	for j := range m.tiles {
		next := (i + j) % len(m.tiles)
		if !m.used[next] {
			m.cursor = next
			break
		}
	}
	if len(m.picked) == len(m.tiles) {
		m.checkOrder()
	}
}

func (m *SpellModel) unpick() {
	if len(m.picked) == 0 {
		return
	}
	last := m.picked[len(m.picked)-1]
	m.picked = m.picked[:len(m.picked)-1]
	m.used[last] = false
	m.cursor = last
}

func (m *SpellModel) pickedClusters() []string {
	out := make([]string, 0, len(m.picked))
	for _, i := range m.picked {
		out = append(out, m.tiles[i])
	}
	return out
}

func (m *SpellModel) checkOrder() {
	m.answer(strings.Join(m.pickedClusters(), "") == arabic.Strip(m.words[m.index].Script))
}

func (m *SpellModel) checkWritten(raw string) {
	if strings.TrimSpace(raw) == "" {
		return
	}
	m.markStarted()
	m.answer(arabic.Equal(raw, m.words[m.index].Script))
}

func (m *SpellModel) answer(correct bool) {
	m.answered = true
	m.correct = correct
	if correct {
		m.score++
	}
	m.message = model.Encouragement(m.gen.Rand(), correct)
}

func (m *SpellModel) markStarted() {
	if m.startedAt.IsZero() {
		m.startedAt = time.Now()
	}
}

func (m *SpellModel) advance() {
	m.answered = false
	m.message = ""
	m.index++
	if m.index >= len(m.words) {
		m.finishSession()
		return
	}
	m.loadWord()
}

func (m *SpellModel) loadWord() {
	m.input.Reset()
	m.picked = nil
	m.cursor = 0
	if len(m.words) == 0 {
		m.done = true
		return
	}
	m.target = arabic.Cluster(m.words[m.index].Script)
	m.tiles = generator.Shuffle(m.gen, m.target)
	m.used = make([]bool, len(m.tiles))
}

func (m *SpellModel) restart() {
	m.words = generator.Shuffle(m.gen, m.words)
	m.index = 0
	m.score = 0
	m.startedAt = time.Time{}
	m.done = false
	m.answered = false
	m.message = ""
	m.loadWord()
}

func (m *SpellModel) finishSession() {
	m.done = true
	endedAt := time.Now()
	startedAt := m.startedAt
	if startedAt.IsZero() {
		startedAt = endedAt
	}
	total := len(m.words)
	session := model.SessionResult{
		ID:        m.gen.NewID(),
		Subject:   model.SubjectArabic,
		Score:     m.score,
		Total:     total,
		Accuracy:  statsPkg.Accuracy(m.score, total),
		StartedAt: startedAt,
		EndedAt:   endedAt,
	}
	if m.store == nil {
		return
	}
	if _, err := statsPkg.RecordSession(context.Background(), m.store, session); err != nil {
		m.errMsg = "progress not saved: " + err.Error()
		return
	}
	m.errMsg = ""
}

// View implements tea.Model.
func (m *SpellModel) View() string {
	var content string
	switch {
	case len(m.words) == 0:
		content = pendingStyle.Render("No spelling words available.")
	case m.done:
		content = m.renderSummary()
	default:
		content = m.renderWord()
	}
	footer := footerWithError(footerStyle.Render(m.renderFooter()), m.errMsg)
	if m.width == 0 || m.height == 0 {
		return content + "\n" + footer
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	return body + "\n" + lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
}

func (m *SpellModel) contentWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := int(float64(m.width) * 0.70)
	if w < 1 {
		w = 1
	}
	return w
}

func (m *SpellModel) renderWord() string {
	w := m.words[m.index]
	lines := []string{
		headingStyle.Render(fmt.Sprintf("%s  (%s)", w.Meaning, w.Phonetic)),
		"",
	}
	if m.mode == SpellWrite {
		lines = append(lines, m.input.View())
	} else {
		lines = append(lines,
			wrapTiles(buildAnswer(m.pickedClusters(), len(m.tiles)-len(m.picked)), m.contentWidth()),
			"",
			wrapTiles(buildTiles(m.tiles, m.used, m.cursor), m.contentWidth()),
		)
	}
	lines = append(lines, "")
	switch {
	case m.answered && m.correct:
		lines = append(lines, correctStyle.Render(m.message), pendingStyle.Render("enter: next"))
	case m.answered:
		lines = append(lines,
			incorrectStyle.Render(m.message),
			problemStyle.Render(w.Script),
			pendingStyle.Render("enter: next"))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *SpellModel) renderSummary() string {
	total := len(m.words)
	acc := statsPkg.Accuracy(m.score, total)
	return lipgloss.JoinVertical(lipgloss.Center,
		headingStyle.Render(statsPkg.Feedback(m.score, total)),
		"",
		bandStyles[statsPkg.BandFor(acc)].Render(fmt.Sprintf("%d / %d words", m.score, total)),
		"",
		pendingStyle.Render("enter: play again  q: quit"),
	)
}

func (m *SpellModel) renderFooter() string {
	if len(m.words) == 0 {
		return "esc: quit"
	}
	word := m.index + 1
	if word > len(m.words) {
		word = len(m.words)
	}
	help := "1-9/enter: pick  left/right: move  backspace: undo"
	if m.mode == SpellWrite {
		help = "enter: check"
	}
	return fmt.Sprintf("Word %d/%d  Score %d  %s", word, len(m.words), m.score, help)
}
