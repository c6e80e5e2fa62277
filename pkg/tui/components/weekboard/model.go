// Package weekboard renders the bespoke week view: seven fixed-height day
// columns of sorted activity cards.
package weekboard

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"github.com/nongtrai/farmcal/pkg/activity"
	"github.com/nongtrai/farmcal/pkg/dateutil"
	"github.com/nongtrai/farmcal/pkg/schedule"
	"github.com/nongtrai/farmcal/pkg/tui/events"
	"github.com/nongtrai/farmcal/pkg/tui/theme"
)

const (
	columns      = 7
	minColWidth  = 12
	gutterWidth  = 1
	headerHeight = 2
)

// Model is the week-board Bubble Tea component.
type Model struct {
	strategy  schedule.Strategy
	policy    theme.Policy
	theme     theme.Theme
	locale    schedule.Locale
	isOverdue activity.Predicate

	anchor  time.Time
	now     time.Time
	buckets []schedule.DayBucket

	dayCursor  int
	cardCursor int

	width   int
	height  int
	focused bool
	id      events.ComponentID
}

// NewModel builds the week board.
func NewModel(t theme.Theme, loc schedule.Locale) *Model {
	return &Model{
		strategy: schedule.StrategyFor(schedule.GranularityWeek),
		policy:   theme.NewPolicy(t),
		theme:    t,
		locale:   loc,
		now:      time.Now(),
		id:       events.ComponentID("weekboard"),
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

// SetContent recomputes the per-day buckets for an anchor week.
func (m *Model) SetContent(anchor time.Time, evs []schedule.Event, isOverdue activity.Predicate) {
	if isOverdue == nil {
		isOverdue = activity.Never
	}
	m.anchor = anchor
	m.isOverdue = isOverdue
	days := m.strategy.Range(anchor, m.now)
	m.buckets = schedule.BuildBuckets(days, evs, isOverdue)
	if m.dayCursor >= len(m.buckets) {
		m.dayCursor = 0
	}
	m.clampCardCursor()
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

// Update handles day/card movement and selection.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused || len(m.buckets) == 0 {
		return m, nil
	}
	switch key.String() {
	case "left", "h":
		if m.dayCursor > 0 {
			m.dayCursor--
			m.clampCardCursor()
		}
	case "right", "l":
		if m.dayCursor < len(m.buckets)-1 {
			m.dayCursor++
			m.clampCardCursor()
		}
	case "up", "k":
		if m.cardCursor > 0 {
			m.cardCursor--
		}
	case "down", "j":
		if m.cardCursor < len(m.currentBucket().Events)-1 {
			m.cardCursor++
		}
	case "enter":
		bucket := m.currentBucket()
		if m.cardCursor >= 0 && m.cardCursor < len(bucket.Events) {
			ref := events.RefFromEvent(bucket.Events[m.cardCursor])
			return m, events.EventSelectCmd(m.id, ref)
		}
	case "o":
		return m, events.DayOpenCmd(m.id, m.currentBucket().Day)
	case "a":
		return m, events.CreateRequestCmd(m.id, m.currentBucket().Day)
	}
	return m, nil
}

func (m *Model) currentBucket() schedule.DayBucket {
	if m.dayCursor < 0 || m.dayCursor >= len(m.buckets) {
		return schedule.DayBucket{Day: dateutil.StartOfDay(m.now)}
	}
	return m.buckets[m.dayCursor]
}

func (m *Model) clampCardCursor() {
	max := len(m.currentBucket().Events) - 1
	if m.cardCursor > max {
		m.cardCursor = max
	}
	if m.cardCursor < 0 {
		m.cardCursor = 0
	}
}

// SelectedDay returns the day under the cursor.
func (m *Model) SelectedDay() time.Time {
	return m.currentBucket().Day
}

// View renders the seven day columns side by side.
func (m *Model) View() string {
	if len(m.buckets) == 0 {
		return ""
	}
	colWidth := m.columnWidth()
	colHeight := m.height
	if colHeight <= headerHeight {
		colHeight = headerHeight + 6
	}

	cols := make([]string, 0, len(m.buckets)*2-1)
	gutter := lipgloss.NewStyle().Width(gutterWidth).Render(" ")
	for i, bucket := range m.buckets {
		if i > 0 {
			cols = append(cols, gutter)
		}
		cols = append(cols, m.renderColumn(i, bucket, colWidth, colHeight))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m *Model) columnWidth() int {
	w := (m.width - (columns-1)*gutterWidth) / columns
	if w < minColWidth {
		w = minColWidth
	}
	return w
}

func (m *Model) renderColumn(idx int, bucket schedule.DayBucket, width, height int) string {
	header := m.renderHeader(idx, bucket, width)

	var cards []string
	for ci, e := range bucket.Events {
		selected := m.focused && idx == m.dayCursor && ci == m.cardCursor
		cards = append(cards, m.renderCard(e, width, selected))
	}
	if len(cards) == 0 {
		cards = append(cards, m.theme.Faint.Render("—"))
	}

	body := strings.Join(cards, "\n")
	return lipgloss.NewStyle().Width(width).Height(height).
		Render(header + "\n" + body)
}

func (m *Model) renderHeader(idx int, bucket schedule.DayBucket, width int) string {
	label := fmt.Sprintf("%s %02d/%02d",
		m.locale.WeekdayShort(bucket.Day.Weekday()),
		bucket.Day.Day(), int(bucket.Day.Month()))

	style := m.theme.Header
	if dateutil.SameDay(bucket.Day, m.now) {
		style = m.theme.Today
	}
	if m.focused && idx == m.dayCursor {
		style = m.theme.Selected
	}
	rule := m.theme.Faint.Render(strings.Repeat("─", width))
	return style.Render(label) + "\n" + rule
}

func (m *Model) renderCard(e schedule.Event, width int, selected bool) string {
	overdue := m.isOverdue != nil && m.isOverdue(e.Activity)
	decision := m.policy.ResolveActivity(e.Activity, overdue)

	title := wordwrap.String(e.Title, width-2)
	badge := decision.Style.Render("● " + decision.Label)

	border := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(theme.Muted(decision.Color)).
		PaddingLeft(1).
		Width(width)
	if selected {
		border = border.BorderForeground(decision.Color).Bold(true)
	}
	return border.Render(title + "\n" + badge)
}
