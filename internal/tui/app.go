// Package tui provides the interactive watch dashboard for live log
// monitoring.
package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/minjae-dev/logsift/internal/buffer"
	"github.com/minjae-dev/logsift/internal/monitor"
	"github.com/minjae-dev/logsift/internal/record"
)

// --- Styles ---

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2F6F4F")).
			PaddingLeft(1).
			PaddingRight(1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#353533"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4444")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFAA00"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#44AAFF"))

	debugStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	healthyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#44DD88")).
			Bold(true)

	criticalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4444")).
			Bold(true)

	highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6600")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

// --- Messages ---

// RecordMsg delivers a parsed record to the dashboard.
type RecordMsg record.Record

// AlertMsg notifies the dashboard that an alert rule was triggered.
type AlertMsg struct {
	Rules  []string
	Record record.Record
}

// SpikeMsg notifies the dashboard that a rate spike was detected.
type SpikeMsg struct {
	Rate float64
}

// TickMsg triggers periodic UI updates.
type TickMsg time.Time

// DoneMsg signals the source has finished.
type DoneMsg struct{}

// --- Model ---

// Model is the bubbletea model for the watch dashboard.
type Model struct {
	// Display state.
	lines      []string
	maxLines   int
	width      int
	height     int
	scrollPos  int // 0 = bottom (auto-scroll), >0 = scrolled up
	paused     bool
	pauseQueue []string

	// Search state.
	searching   bool
	searchQuery string

	// Monitoring.
	Stats   *monitor.Stats
	Rate    *monitor.RateDetector
	Alerts  *monitor.AlertEngine
	RingBuf *buffer.Ring
	Source  string

	// Alert display.
	lastAlert  string
	alertFlash int // countdown for alert flash

	done bool
}

// NewModel creates a new dashboard model.
func NewModel(stats *monitor.Stats, rate *monitor.RateDetector, alerts *monitor.AlertEngine, ringBuf *buffer.Ring, sourceName string) Model {
	return Model{
		maxLines: 1000,
		Stats:    stats,
		Rate:     rate,
		Alerts:   alerts,
		RingBuf:  ringBuf,
		Source:   sourceName,
	}
}

// Init starts the tick timer.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), tea.WindowSize())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case RecordMsg:
		return m.handleRecord(msg)

	case AlertMsg:
		m.lastAlert = fmt.Sprintf("⚠ ALERT [%s]: %s", strings.Join(msg.Rules, ","), truncate(msg.Record.Message, 60))
		m.alertFlash = 10
		return m, nil

	case SpikeMsg:
		m.lastAlert = fmt.Sprintf("📈 SPIKE: %.0f records/s", msg.Rate)
		m.alertFlash = 8
		return m, nil

	case TickMsg:
		if m.alertFlash > 0 {
			m.alertFlash--
		}
		return m, tickCmd()

	case DoneMsg:
		m.done = true
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.searchQuery = ""
			return m, nil
		case "enter":
			m.searching = false
			m.scrollToMatch()
			return m, nil
		case "backspace":
			if len(m.searchQuery) > 0 {
				m.searchQuery = m.searchQuery[:len(m.searchQuery)-1]
			}
			return m, nil
		default:
			if len(msg.String()) == 1 {
				m.searchQuery += msg.String()
			}
			return m, nil
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "p":
		m.paused = !m.paused
		if !m.paused {
			m.lines = append(m.lines, m.pauseQueue...)
			m.pauseQueue = nil
			m.trimLines()
		}
		return m, nil
	case "/":
		m.searching = true
		m.searchQuery = ""
		return m, nil
	case "up", "k":
		if m.scrollPos < len(m.lines)-1 {
			m.scrollPos++
		}
		return m, nil
	case "down", "j":
		if m.scrollPos > 0 {
			m.scrollPos--
		}
		return m, nil
	case "g":
		m.scrollPos = 0 // jump to bottom (latest)
		return m, nil
	case "G":
		m.scrollPos = len(m.lines) - 1 // jump to top (oldest)
		return m, nil
	}

	return m, nil
}

func (m Model) handleRecord(msg RecordMsg) (tea.Model, tea.Cmd) {
	rec := record.Record(msg)
	line := m.formatRecordLine(&rec)

	if m.paused {
		m.pauseQueue = append(m.pauseQueue, line)
		return m, nil
	}

	m.lines = append(m.lines, line)
	m.trimLines()

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var sb strings.Builder

	// Title bar.
	title := titleStyle.Render(fmt.Sprintf(" logsift watch — %s ", m.Source))
	status := "▶ RUNNING"
	if m.paused {
		status = "⏸ PAUSED"
	}
	if m.done {
		status = "✔ DONE"
	}
	statusText := statusBarStyle.Render(fmt.Sprintf(" %s  %d records ", status, m.Stats.Total()))
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(statusText)
	if gap < 0 {
		gap = 0
	}
	sb.WriteString(title + statusBarStyle.Render(strings.Repeat(" ", gap)) + statusText)
	sb.WriteString("\n")

	// Alert bar (if active).
	if m.alertFlash > 0 && m.lastAlert != "" {
		sb.WriteString(highlightStyle.Render(m.lastAlert))
		sb.WriteString("\n")
	}

	// Search bar (if searching).
	if m.searching {
		sb.WriteString(fmt.Sprintf(" 🔍 Search: %s█", m.searchQuery))
		sb.WriteString("\n")
	}

	headerLines := 1
	if m.alertFlash > 0 {
		headerLines++
	}
	if m.searching {
		headerLines++
	}
	footerLines := 2 // stats bar + help bar
	viewportHeight := m.height - headerLines - footerLines
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	visible := m.visibleLines(viewportHeight)
	for _, line := range visible {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	for i := len(visible); i < viewportHeight; i++ {
		sb.WriteString("\n")
	}

	// Stats bar.
	rate := m.Rate.CurrentRate()
	statsLine := fmt.Sprintf(" %s │ Rate: %s %.0f/s │ ERR: %d (%.2f%%) │ WARN: %d │ Total: %d",
		m.renderHealth(), m.renderRateBar(rate, 10), rate,
		m.Stats.Errors(), m.Stats.ErrorRate(), m.Stats.Warns(), m.Stats.Total())
	if m.Alerts != nil && m.Alerts.TotalAlerts() > 0 {
		statsLine += fmt.Sprintf(" │ Alerts: %d", m.Alerts.TotalAlerts())
	}
	if m.scrollPos > 0 {
		statsLine += fmt.Sprintf(" │ ↑ %d", m.scrollPos)
	}
	sb.WriteString(statusBarStyle.Render(padRight(statsLine, m.width)))
	sb.WriteString("\n")

	// Help bar.
	helpText := " [/]Search  [p]Pause  [↑↓]Scroll  [g]Bottom  [q]Quit"
	if m.paused {
		helpText += fmt.Sprintf("  (queued: %d)", len(m.pauseQueue))
	}
	sb.WriteString(helpStyle.Render(helpText))

	return sb.String()
}

// --- Helpers ---

func (m *Model) renderHealth() string {
	health := m.Stats.Health()
	switch health {
	case "CRITICAL", "WARNING":
		return criticalStyle.Render(health)
	case "ATTENTION":
		return warnStyle.Render(health)
	default:
		return healthyStyle.Render(health)
	}
}

func (m *Model) formatRecordLine(r *record.Record) string {
	ts := r.Timestamp
	if ts == "" {
		ts = time.Now().Format("15:04:05")
	}
	level := r.CanonicalLevel()

	style := debugStyle
	switch record.Ordinal(level) {
	case record.OrdinalError, record.OrdinalFatal:
		style = errorStyle
	case record.OrdinalWarn:
		style = warnStyle
	case record.OrdinalInfo:
		style = infoStyle
	}

	msg := truncate(r.Message, m.width-25)
	return style.Render(fmt.Sprintf("%s %s %s", ts, level, msg))
}

func (m *Model) visibleLines(height int) []string {
	if len(m.lines) == 0 {
		return nil
	}

	end := len(m.lines) - m.scrollPos
	if end < 0 {
		end = 0
	}
	start := end - height
	if start < 0 {
		start = 0
	}

	out := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		line := m.lines[i]
		if m.searchQuery != "" && strings.Contains(line, m.searchQuery) {
			line = strings.ReplaceAll(line, m.searchQuery, highlightStyle.Render(m.searchQuery))
		}
		out = append(out, line)
	}
	return out
}

// scrollToMatch jumps the viewport to the most recent line containing the
// search query.
func (m *Model) scrollToMatch() {
	if m.searchQuery == "" {
		return
	}
	for i := len(m.lines) - 1; i >= 0; i-- {
		if strings.Contains(m.lines[i], m.searchQuery) {
			m.scrollPos = len(m.lines) - i - 1
			return
		}
	}
}

func (m *Model) trimLines() {
	if len(m.lines) > m.maxLines {
		m.lines = m.lines[len(m.lines)-m.maxLines:]
	}
}

func (m *Model) renderRateBar(rate float64, width int) string {
	maxRate := 200.0 // scale: 200 records/s = full bar
	filled := int(rate / maxRate * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen-1]) + "…"
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
