// Package monthgrid renders the month view: a Monday-start grid where each
// cell lists the day's activities with a "+N" overflow affordance.
package monthgrid

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/nongtrai/farmcal/pkg/activity"
	"github.com/nongtrai/farmcal/pkg/dateutil"
	"github.com/nongtrai/farmcal/pkg/schedule"
	"github.com/nongtrai/farmcal/pkg/tui/events"
	"github.com/nongtrai/farmcal/pkg/tui/theme"
)

const (
	columns       = 7
	minCellWidth  = 10
	visibleEvents = 2
)

// Model is the month-grid Bubble Tea component.
type Model struct {
	strategy  schedule.Strategy
	policy    theme.Policy
	theme     theme.Theme
	locale    schedule.Locale
	isOverdue activity.Predicate

	anchor  time.Time
	now     time.Time
	buckets []schedule.DayBucket
	cursor  int

	width   int
	height  int
	focused bool
	id      events.ComponentID
}

// NewModel builds the month grid. The soil-preparation color override is
// enabled here and only here.
func NewModel(t theme.Theme, loc schedule.Locale) *Model {
	return &Model{
		strategy: schedule.StrategyFor(schedule.GranularityMonth),
		policy:   theme.NewPolicy(t).WithTypeOverride(),
		theme:    t,
		locale:   loc,
		now:      time.Now(),
		id:       events.ComponentID("monthgrid"),
	}
}

// ID returns the component identifier used in emitted messages.
func (m *Model) ID() events.ComponentID { return m.id }

// Strategy exposes the navigation contract for the toolbar.
func (m *Model) Strategy() schedule.Strategy { return m.strategy }

// SetNow overrides the reference time. Tests use this for determinism.
func (m *Model) SetNow(now time.Time) { m.now = now }

// SetSize updates the rendering area.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetContent recomputes the day buckets for an anchor and event collection.
func (m *Model) SetContent(anchor time.Time, evs []schedule.Event, isOverdue activity.Predicate) {
	if isOverdue == nil {
		isOverdue = activity.Never
	}
	m.anchor = anchor
	m.isOverdue = isOverdue
	days := m.strategy.Range(anchor, m.now)
	m.buckets = schedule.BuildBuckets(days, evs, isOverdue)
	if m.cursor >= len(m.buckets) {
		m.cursor = 0
	}
	// Start the cursor on the anchor day when it is in view.
	for i, b := range m.buckets {
		if dateutil.SameDay(b.Day, anchor) {
			m.cursor = i
			break
		}
	}
}

// Focus marks the component as active.
func (m *Model) Focus() tea.Cmd {
	if m.focused {
		return nil
	}
	m.focused = true
	return events.FocusCmd(m.id)
}

// Blur marks the component as inactive.
func (m *Model) Blur() tea.Cmd {
	if !m.focused {
		return nil
	}
	m.focused = false
	return events.BlurCmd(m.id)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles cursor movement and day activation.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused || len(m.buckets) == 0 {
		return m, nil
	}
	switch key.String() {
	case "left", "h":
		m.moveCursor(-1)
	case "right", "l":
		m.moveCursor(1)
	case "up", "k":
		m.moveCursor(-columns)
	case "down", "j":
		m.moveCursor(columns)
	case "enter", "o":
		return m, events.DayOpenCmd(m.id, m.buckets[m.cursor].Day)
	case "a":
		return m, events.CreateRequestCmd(m.id, m.buckets[m.cursor].Day)
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= len(m.buckets) {
		return
	}
	m.cursor = next
}

// SelectedDay returns the day currently under the cursor.
func (m *Model) SelectedDay() time.Time {
	if m.cursor < 0 || m.cursor >= len(m.buckets) {
		return dateutil.StartOfDay(m.now)
	}
	return m.buckets[m.cursor].Day
}

// View renders the weekday header and the month rows.
func (m *Model) View() string {
	if len(m.buckets) == 0 {
		return ""
	}
	cellWidth := m.cellWidth()

	var lines []string
	lines = append(lines, m.headerRow(cellWidth))

	rows := len(m.buckets) / columns
	for row := 0; row < rows; row++ {
		var cells []string
		for col := 0; col < columns; col++ {
			idx := row*columns + col
			cells = append(cells, m.renderCell(idx, cellWidth))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) cellWidth() int {
	w := m.width / columns
	if w < minCellWidth {
		w = minCellWidth
	}
	return w
}

func (m *Model) headerRow(cellWidth int) string {
	cells := make([]string, 0, columns)
	// Monday-start ordering, same as WeekRange.
	for i := 0; i < columns; i++ {
		day := time.Weekday((int(time.Monday) + i) % 7)
		label := m.locale.WeekdayShort(day)
		cells = append(cells, m.theme.Header.Width(cellWidth).Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m *Model) renderCell(idx, cellWidth int) string {
	bucket := m.buckets[idx]
	inMonth := bucket.Day.Month() == m.anchor.Month()

	dayStyle := m.theme.Faint
	if inMonth {
		dayStyle = lipgloss.NewStyle()
	}
	if dateutil.SameDay(bucket.Day, m.now) {
		dayStyle = m.theme.Today
	}
	if idx == m.cursor && m.focused {
		dayStyle = m.theme.Selected
	}

	var lines []string
	lines = append(lines, dayStyle.Render(fmt.Sprintf("%2d", bucket.Day.Day())))

	shown := bucket.Events
	overflow := 0
	if len(shown) > visibleEvents {
		overflow = len(shown) - visibleEvents
		shown = shown[:visibleEvents]
	}
	for _, e := range shown {
		overdue := m.isOverdue != nil && m.isOverdue(e.Activity)
		decision := m.policy.ResolveActivity(e.Activity, overdue)
		lines = append(lines, decision.Style.Render(truncate(e.Title, cellWidth-1)))
	}
	if overflow > 0 {
		lines = append(lines, m.theme.Faint.Render(fmt.Sprintf("+%d", overflow)))
	}

	return lipgloss.NewStyle().Width(cellWidth).Height(visibleEvents + 2).
		Render(strings.Join(lines, "\n"))
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return string(runes[:1])
	}
	return string(runes[:max-1]) + "…"
}
