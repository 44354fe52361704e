// Package statsui provides the Bubble Tea progress dashboard.
package statsui

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/LaduClassic/liyahs-learning-jour/internal/arabic"
	"github.com/LaduClassic/liyahs-learning-jour/internal/model"
	"github.com/LaduClassic/liyahs-learning-jour/internal/stats"
	"github.com/LaduClassic/liyahs-learning-jour/internal/store"
	"github.com/LaduClassic/liyahs-learning-jour/internal/wordlist"
)

const syncInterval = time.Second

const (
	tabOverview = iota
	tabMath
	tabRecent
	tabWords
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
	bandColors      = map[stats.Band]lipgloss.Color{
		stats.BandGood: lipgloss.Color("#52C41A"),
		stats.BandOK:   lipgloss.Color("#C89A3A"),
		stats.BandLow:  lipgloss.Color("#FF4D4F"),
	}
)

// storeUpdateMsg carries a value written to a watched store key.
type storeUpdateMsg struct {
	key string
	raw []byte
	ok  bool
}

// syncedMsg reports the outcome of a store Sync.
type syncedMsg struct {
	err error
}

// Model implements the Bubble Tea progress dashboard. It follows writes to
// the progress and custom-word keys, polling the store so that a session
// finished by another liyah process shows up without a restart.
type Model struct {
	store *store.Store

	rec    model.ProgressRecord
	words  []model.SpellingWord
	custom bool
	errMsg string

	tabs      []string
	activeTab int
	viewports []viewport.Model
	opTable   table.Model

	width  int
	height int

	watches map[string]<-chan []byte
	cancels []func()
}

// NewModel constructs a dashboard over st.
func NewModel(st *store.Store) *Model {
	m := &Model{
		store:   st,
		tabs:    []string{"Overview", "Math", "Recent", "Words"},
		watches: map[string]<-chan []byte{},
	}
	m.initViewports()
	m.opTable = buildOpTable(stats.NewRecord(), 0, 1)
	m.load()
	for _, key := range []string{store.ProgressKey, store.CustomWordsKey} {
		ch, cancel := st.Subscribe(key)
		m.watches[key] = ch
		m.cancels = append(m.cancels, cancel)
	}
	return m
}

// Close stops following store updates.
func (m *Model) Close() {
	for _, cancel := range m.cancels {
		cancel()
	}
	m.cancels = nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.watches)+1)
	for key, ch := range m.watches {
		cmds = append(cmds, waitForUpdate(key, ch))
	}
	cmds = append(cmds, pollStore(m.store))
	return tea.Batch(cmds...)
}

func pollStore(st *store.Store) tea.Cmd {
	return tea.Tick(syncInterval, func(time.Time) tea.Msg {
		return syncStore(st)
	})
}

func syncStore(st *store.Store) tea.Msg {
	return syncedMsg{err: st.Sync(context.Background())}
}

func waitForUpdate(key string, ch <-chan []byte) tea.Cmd {
	return func() tea.Msg {
		raw, ok := <-ch
		return storeUpdateMsg{key: key, raw: raw, ok: ok}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderTabContents()
		return m, nil
	case syncedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("sync: %v", msg.err)
		}
		if m.cancels == nil {
			return m, nil
		}
		return m, pollStore(m.store)
	case storeUpdateMsg:
		if !msg.ok {
			return m, nil
		}
		m.applyUpdate(msg.key, msg.raw)
		return m, waitForUpdate(msg.key, m.watches[msg.key])
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			m.Close()
			return m, tea.Quit
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l", "tab":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "g", "home":
			if m.activeTab == tabMath {
				m.opTable.GotoTop()
			} else {
				m.viewports[m.activeTab].GotoTop()
			}
			return m, nil
		case "G", "end":
			if m.activeTab == tabMath {
				m.opTable.GotoBottom()
			} else {
				m.viewports[m.activeTab].GotoBottom()
			}
			return m, nil
		default:
			if m.activeTab == tabMath {
				var cmd tea.Cmd
				m.opTable, cmd = m.opTable.Update(msg)
				return m, cmd
			}
			vp := m.viewports[m.activeTab]
			var cmd tea.Cmd
			vp, cmd = vp.Update(msg)
			m.viewports[m.activeTab] = vp
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(bodyHeight), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) load() {
	ctx := context.Background()
	rec, err := m.store.LoadProgress(ctx, stats.NewRecord())
	if err != nil {
		m.errMsg = err.Error()
	}
	m.rec = rec
	custom, err := m.store.LoadCustomWords(ctx)
	if err != nil {
		m.errMsg = err.Error()
	}
	m.setWords(custom)
	m.refresh()
}

func (m *Model) setWords(custom []model.SpellingWord) {
	m.custom = len(custom) > 0
	m.words = wordlist.Resolve(custom)
}

// applyUpdate decodes a store notification. A nil payload means the key was
// deleted.
func (m *Model) applyUpdate(key string, raw []byte) {
	m.errMsg = ""
	switch key {
	case store.ProgressKey:
		rec := stats.NewRecord()
		if raw != nil {
			if err := json.Unmarshal(raw, &rec); err != nil {
				m.errMsg = fmt.Sprintf("decode progress: %v", err)
				return
			}
			if rec.Math == nil {
				rec.Math = stats.NewRecord().Math
			}
		}
		m.rec = rec
	case store.CustomWordsKey:
		var custom []model.SpellingWord
		if raw != nil {
			if err := json.Unmarshal(raw, &custom); err != nil {
				m.errMsg = fmt.Sprintf("decode words: %v", err)
				return
			}
		}
		m.setWords(custom)
	}
	m.refresh()
}

func (m *Model) refresh() {
	width := m.width
	if width <= 0 {
		width = 80
	}
	_, bodyHeight, _ := m.layoutHeights()
	m.opTable = buildOpTable(m.rec, width, bodyHeight)
	m.opTable.SetStyles(opTableStyles())
	if m.activeTab == tabMath {
		m.opTable.Focus()
	}
	m.renderTabContents()
}

func (m *Model) initViewports() {
	m.viewports = make([]viewport.Model, len(m.tabs))
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := lipgloss.Height(activeNavStyle.Render("X"))
	if tabsHeight < 1 {
		tabsHeight = 1
	}
	headerHeight = tabsHeight + 1
	footerHeight = 1
	if m.errMsg != "" {
		footerHeight++
	}
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, vpHeight, _ := m.layoutHeights()
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = vpHeight
	}
	m.opTable.SetWidth(m.width)
	m.opTable.SetHeight(maxInt(1, vpHeight-1))
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	if count == 0 {
		return
	}
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	if m.activeTab == tabMath {
		m.opTable.Focus()
	} else {
		m.opTable.Blur()
	}
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHeader() string {
	tabs := padLines(m.renderTabs(), m.width)
	return tabs + "\n" + padLines(m.renderSummaryLine(), m.width)
}

func (m *Model) renderSummaryLine() string {
	last := "never"
	if !m.rec.LastActive.IsZero() {
		last = m.rec.LastActive.Local().Format("2006-01-02 15:04")
	}
	summary := fmt.Sprintf("Sessions %d  Accuracy %.1f%%  Last active %s", m.rec.TotalSessions, m.rec.OverallAccuracy, last)
	return headerStyle.Render(truncateLine(summary, m.width))
}

func (m *Model) renderFooter() string {
	help := headerStyle.Render("Nav: left/right  Scroll: up/down/pgup/pgdn  Quit: q")
	if m.errMsg != "" {
		return help + "\n" + errorStyle.Render(m.errMsg)
	}
	return help
}

func (m *Model) renderBody(height int) string {
	if m.activeTab == tabMath {
		if m.rec.TotalProblems == 0 {
			return fitLines("No math sessions yet.", m.width, height)
		}
		view := tableMutedStyle.Render(m.opTable.View())
		return fitLines(view, m.width, height)
	}
	return fitLines(m.viewports[m.activeTab].View(), m.width, height)
}

func (m *Model) renderTabContents() {
	if len(m.viewports) == 0 {
		return
	}
	width := m.width
	if width <= 0 {
		width = 80
	}
	m.viewports[tabOverview].SetContent(renderOverview(m.rec, width))
	m.viewports[tabRecent].SetContent(renderRecent(m.rec, width))
	m.viewports[tabWords].SetContent(renderWords(m.words, m.custom, width))
}

func renderOverview(rec model.ProgressRecord, width int) string {
	if rec.TotalSessions == 0 {
		return "No sessions yet. Finish a round to see progress here."
	}
	lines := []string{renderSummaryCards(rec, width), ""}
	if op, ok := stats.WeakestOperator(rec); ok {
		lines = append(lines, "Needs practice: "+op.Title())
	}
	lines = append(lines,
		subjectLine("Science", rec.Science),
		subjectLine("Arabic", rec.Arabic),
		subjectLine("Islamic", rec.Islamic),
	)
	return strings.Join(lines, "\n")
}

func renderSummaryCards(rec model.ProgressRecord, width int) string {
	accStyle := cardValueStyle.Foreground(bandColors[stats.BandFor(rec.OverallAccuracy)])
	cards := []string{
		metricCard("Sessions", fmt.Sprintf("%d", rec.TotalSessions), cardValueStyle),
		metricCard("Problems", fmt.Sprintf("%d", rec.TotalProblems), cardValueStyle),
		metricCard("Correct", fmt.Sprintf("%d", rec.TotalCorrect), cardValueStyle),
		metricCard("Accuracy", fmt.Sprintf("%.1f%%", rec.OverallAccuracy), accStyle),
	}
	if width < 60 {
		return strings.Join(cards, "\n")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func metricCard(label, value string, valueStyle lipgloss.Style) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), valueStyle.Render(value))
	return cardStyle.Render(content)
}

func subjectLine(name string, p model.SubjectProgress) string {
	return fmt.Sprintf("%-8s %d completed, %.1f min", name+":", p.Completed, float64(p.TotalTimeMs)/60000)
}

func renderRecent(rec model.ProgressRecord, width int) string {
	if len(rec.RecentSessions) == 0 {
		return "No sessions yet."
	}
	lines := make([]string, 0, len(rec.RecentSessions)+2)
	values := make([]float64, 0, len(rec.RecentSessions))
	for i := len(rec.RecentSessions) - 1; i >= 0; i-- {
		values = append(values, rec.RecentSessions[i].Accuracy)
	}
	lines = append(lines, "Trend: "+stats.Sparkline(values), "")
	for _, s := range rec.RecentSessions {
		subject := string(s.Subject)
		if s.Operator != "" {
			subject += " " + s.Operator.Symbol()
		}
		color := bandColors[stats.BandFor(s.Accuracy)]
		line := fmt.Sprintf("%s  %-10s %3d/%-3d ", s.EndedAt.Local().Format("01-02 15:04"), subject, s.Score, s.Total)
		lines = append(lines, truncateLine(line, width-8)+lipgloss.NewStyle().Foreground(color).Render(fmt.Sprintf("%.0f%%", s.Accuracy)))
	}
	return strings.Join(lines, "\n")
}

func renderWords(words []model.SpellingWord, custom bool, width int) string {
	source := "built-in words"
	if custom {
		source = "imported words"
	}
	lines := []string{headerStyle.Render(fmt.Sprintf("%d %s", len(words), source)), ""}
	scriptWidth := 0
	for _, w := range words {
		scriptWidth = maxInt(scriptWidth, runewidth.StringWidth(w.Script))
	}
	for _, w := range words {
		pad := strings.Repeat(" ", scriptWidth-runewidth.StringWidth(w.Script))
		line := fmt.Sprintf("%s%s  %-10s %s (%d letters)", w.Script, pad, w.Phonetic, w.Meaning, len(arabic.Cluster(w.Script)))
		lines = append(lines, truncateLine(line, width))
	}
	return strings.Join(lines, "\n")
}

func buildOpTable(rec model.ProgressRecord, width, height int) table.Model {
	columns := []table.Column{
		{Title: "Operator", Width: 16},
		{Title: "Attempted", Width: 9},
		{Title: "Correct", Width: 7},
		{Title: "Accuracy", Width: 9},
		{Title: "Last practiced", Width: 16},
	}
	rows := make([]table.Row, 0, len(model.Operators))
	for _, op := range stats.OperatorsByAttempts(rec) {
		p := rec.Math[op]
		acc := "-"
		last := "-"
		if p.Attempted > 0 {
			acc = fmt.Sprintf("%.2f%%", p.Accuracy)
		}
		if !p.LastPracticed.IsZero() {
			last = p.LastPracticed.Local().Format("2006-01-02 15:04")
		}
		rows = append(rows, table.Row{
			op.Symbol() + " " + op.Title(),
			fmt.Sprintf("%d", p.Attempted),
			fmt.Sprintf("%d", p.Correct),
			acc,
			last,
		})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(maxInt(1, height-1)),
	)
	if width > 0 {
		t.SetWidth(width)
	}
	return t
}

func opTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func padLines(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}
