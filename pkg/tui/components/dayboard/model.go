// Package dayboard renders the bespoke day view: a vertical list of the
// day's sorted activity cards with an empty-state create affordance.
package dayboard

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

// Model is the day-board Bubble Tea component.
type Model struct {
	strategy  schedule.Strategy
	policy    theme.Policy
	theme     theme.Theme
	locale    schedule.Locale
	isOverdue activity.Predicate

	day    time.Time
	now    time.Time
	bucket schedule.DayBucket
	cursor int

	width   int
	height  int
	focused bool
	id      events.ComponentID
}

// NewModel builds the day board.
func NewModel(t theme.Theme, loc schedule.Locale) *Model {
	return &Model{
		strategy: schedule.StrategyFor(schedule.GranularityDay),
		policy:   theme.NewPolicy(t),
		theme:    t,
		locale:   loc,
		now:      time.Now(),
		id:       events.ComponentID("dayboard"),
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

// SetContent recomputes the single-day bucket.
func (m *Model) SetContent(anchor time.Time, evs []schedule.Event, isOverdue activity.Predicate) {
	if isOverdue == nil {
		isOverdue = activity.Never
	}
	m.isOverdue = isOverdue
	days := m.strategy.Range(anchor, m.now)
	m.day = days[0]
	buckets := schedule.BuildBuckets(days, evs, isOverdue)
	m.bucket = buckets[0]
	if m.cursor >= len(m.bucket.Events) {
		m.cursor = 0
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

// Update handles card movement, selection, and the create affordance.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.bucket.Events)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor >= 0 && m.cursor < len(m.bucket.Events) {
			ref := events.RefFromEvent(m.bucket.Events[m.cursor])
			return m, events.EventSelectCmd(m.id, ref)
		}
	case "a":
		return m, events.CreateRequestCmd(m.id, m.day)
	}
	return m, nil
}

// SelectedDay returns the rendered day.
func (m *Model) SelectedDay() time.Time { return m.day }

// View renders the day header and card list, or the empty state.
func (m *Model) View() string {
	width := m.width
	if width <= 0 {
		width = 40
	}

	header := m.theme.Header.Render(fmt.Sprintf("%s, %02d/%02d/%d",
		m.locale.WeekdayName(m.day.Weekday()),
		m.day.Day(), int(m.day.Month()), m.day.Year()))
	if dateutil.SameDay(m.day, m.now) {
		header = m.theme.Today.Render("● ") + header
	}

	if len(m.bucket.Events) == 0 {
		empty := m.theme.Faint.Render("Chưa có hoạt động nào trong ngày này.") +
			"\n" + m.theme.Faint.Render("Nhấn 'a' để thêm hoạt động mới.")
		return header + "\n\n" + empty
	}

	var cards []string
	for i, e := range m.bucket.Events {
		cards = append(cards, m.renderCard(e, width, m.focused && i == m.cursor))
	}
	return header + "\n\n" + strings.Join(cards, "\n")
}

func (m *Model) renderCard(e schedule.Event, width int, selected bool) string {
	overdue := m.isOverdue != nil && m.isOverdue(e.Activity)
	decision := m.policy.ResolveActivity(e.Activity, overdue)

	title := wordwrap.String(e.Title, width-4)
	rangeLine := m.theme.Faint.Render(fmt.Sprintf("%02d/%02d - %02d/%02d",
		e.Start.Day(), int(e.Start.Month()), e.End.Day(), int(e.End.Month())))
	badge := decision.Style.Render("● " + decision.Label)

	border := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(theme.Muted(decision.Color)).
		PaddingLeft(1).
		Width(width)
	if selected {
		border = border.BorderForeground(decision.Color).Bold(true)
	}
	return border.Render(title + "\n" + rangeLine + "  " + badge)
}
