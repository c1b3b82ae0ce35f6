package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"loom/internal/driver"
)

// сколько строк файлов рисуем, остальное сворачиваем в счётчик
const defaultRows = 12

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
	stateColors = map[string]lipgloss.Color{
		"done":  "2",
		"error": "1",
	}
)

type progressModel struct {
	title      string
	events     <-chan driver.Event
	spin       spinner.Model
	bar        progress.Model
	items      []fileItem
	byPath     map[string]int
	stageLabel string
	width      int
	rows       int
	started    time.Time
	done       bool
}

type fileItem struct {
	path    string
	status  string
	stage   driver.Stage
	elapsed time.Duration
}

func (it fileItem) finished() bool {
	return it.status == "done" || it.status == "error"
}

type eventMsg driver.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that renders the progress of
// a directory run. The model quits when events is closed.
func NewProgressModel(title string, files []string, events <-chan driver.Event) tea.Model {
	spin := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	m := &progressModel{
		title:   title,
		events:  events,
		spin:    spin,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(76)),
		items:   make([]fileItem, len(files)),
		byPath:  make(map[string]int, len(files)),
		width:   80,
		rows:    defaultRows,
		started: time.Now(),
	}
	for i, file := range files {
		m.items[i] = fileItem{path: file, status: "queued"}
		m.byPath[key(file)] = i
	}
	return m
}

// пути из FileSet нормализованы, пути из листинга каталога нет
func key(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.applyEvent(driver.Event(msg)), m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		// разбор не прерываем, только перестаём рисовать
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if !m.done {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) resize(width, height int) {
	if width > 0 {
		m.width = width
		m.bar.Width = width - 4
	}
	// заголовок, пустые строки, хвост и полоса
	if height > 0 {
		m.rows = max(height-6, 3)
	}
}

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render(m.header()))
	b.WriteString("\n\n")

	visible, hidden := m.visibleItems()
	nameWidth := max(m.width-24, 20)
	for _, it := range visible {
		state := lipgloss.NewStyle().Foreground(stateColor(it.status)).Render(fmt.Sprintf("%10s", it.status))
		fmt.Fprintf(&b, "  %s %s", state, truncate(it.path, nameWidth))
		if it.elapsed > 0 {
			b.WriteString(faintStyle.Render(" " + it.elapsed.Round(time.Microsecond).String()))
		}
		b.WriteByte('\n')
	}
	if hidden > 0 {
		b.WriteString(faintStyle.Render(fmt.Sprintf("  ... %d more", hidden)))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	if m.done {
		b.WriteString(m.bar.ViewAs(1))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteByte('\n')
	return b.String()
}

func (m *progressModel) header() string {
	finished, failed := 0, 0
	for _, it := range m.items {
		if it.finished() {
			finished++
		}
		if it.status == "error" {
			failed++
		}
	}
	title := m.title
	if m.stageLabel != "" {
		title += " (" + m.stageLabel + ")"
	}
	counts := fmt.Sprintf("%d/%d files", finished, len(m.items))
	if failed > 0 {
		counts += fmt.Sprintf(", %d failed", failed)
	}
	if m.done {
		return fmt.Sprintf("done: %s in %s, %s", title, time.Since(m.started).Round(time.Millisecond), counts)
	}
	return fmt.Sprintf("%s %s, %s", m.spin.View(), title, counts)
}

// visibleItems: сначала файлы в работе и с ошибками, потом остальные в
// исходном порядке. После завершения успешные файлы не показываем.
func (m *progressModel) visibleItems() (visible []fileItem, hidden int) {
	var active, rest []fileItem
	for _, it := range m.items {
		switch {
		case it.status == "error" || (!it.finished() && it.status != "queued"):
			active = append(active, it)
		case m.done && it.status == "done":
			hidden++
		default:
			rest = append(rest, it)
		}
	}
	all := append(active, rest...)
	if len(all) > m.rows {
		hidden += len(all) - m.rows
		all = all[:m.rows]
	}
	return all, hidden
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		if ev, ok := <-m.events; ok {
			return eventMsg(ev)
		}
		return doneMsg{}
	}
}

func (m *progressModel) applyEvent(ev driver.Event) tea.Cmd {
	label := statusLabel(ev.Stage, ev.Status)
	if ev.File == "" {
		if label != "" {
			m.stageLabel = label
		}
		return nil
	}
	i, ok := m.byPath[key(ev.File)]
	if !ok {
		return nil
	}
	it := &m.items[i]
	if label != "" {
		it.status, it.stage = label, ev.Stage
	}
	if it.finished() {
		it.elapsed = ev.Elapsed
	}
	return m.bar.SetPercent(m.percent())
}

func (m *progressModel) percent() float64 {
	if len(m.items) == 0 {
		return 0
	}
	var sum float64
	for _, it := range m.items {
		if it.finished() {
			sum++
			continue
		}
		sum += stageWeight[it.stage]
	}
	return sum / float64(len(m.items))
}

// доля работы над файлом, выполненная к началу стадии
var stageWeight = map[driver.Stage]float64{
	driver.StageLex:   0.1,
	driver.StageCache: 0.1,
	driver.StageParse: 0.3,
	driver.StageCheck: 0.8,
}

var stageNames = map[driver.Stage]string{
	driver.StageLex:   "lexing",
	driver.StageCache: "loading",
	driver.StageParse: "parsing",
	driver.StageCheck: "checking",
}

func statusLabel(stage driver.Stage, status driver.Status) string {
	switch status {
	case driver.StatusQueued:
		return "queued"
	case driver.StatusDone:
		return "done"
	case driver.StatusError:
		return "error"
	case driver.StatusWorking:
		return stageNames[stage]
	}
	return ""
}

func stateColor(status string) lipgloss.Color {
	if c, ok := stateColors[status]; ok {
		return c
	}
	if status == "queued" {
		return "7"
	}
	return "6"
}

func truncate(value string, width int) string {
	switch {
	case width <= 0 || runewidth.StringWidth(value) <= width:
		return value
	case width <= 3:
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
