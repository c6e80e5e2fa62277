// Package toolbar is the navigation controller: it owns the anchor date and
// granularity, drives prev/next/today through the active view strategy, and
// renders the shared header line.
package toolbar

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/nongtrai/farmcal/pkg/dateutil"
	"github.com/nongtrai/farmcal/pkg/schedule"
	"github.com/nongtrai/farmcal/pkg/tui/events"
	"github.com/nongtrai/farmcal/pkg/tui/theme"
)

// Model holds the calendar view state: one anchor and one granularity. There
// is no history; back beyond this pair is unsupported.
type Model struct {
	theme  theme.Theme
	locale schedule.Locale

	granularity schedule.Granularity
	anchor      time.Time
	now         time.Time

	width int
	id    events.ComponentID
}

// NewModel builds the toolbar anchored on today in month view.
func NewModel(t theme.Theme, loc schedule.Locale) *Model {
	now := time.Now()
	return &Model{
		theme:       t,
		locale:      loc,
		granularity: schedule.GranularityMonth,
		anchor:      dateutil.StartOfDay(now),
		now:         now,
		id:          events.ComponentID("toolbar"),
	}
}

// ID returns the component identifier used in emitted messages.
func (m *Model) ID() events.ComponentID { return m.id }

// SetNow overrides the reference time. Tests use this for determinism.
func (m *Model) SetNow(now time.Time) {
	m.now = now
	if m.anchor.IsZero() {
		m.anchor = dateutil.StartOfDay(now)
	}
}

// SetSize updates the rendering width.
func (m *Model) SetSize(width, _ int) { m.width = width }

// Anchor returns the current anchor date.
func (m *Model) Anchor() time.Time { return m.anchor }

// Granularity returns the active zoom level.
func (m *Model) Granularity() schedule.Granularity { return m.granularity }

// JumpTo moves the anchor to an explicit date (day-cell click, "show more")
// and optionally switches granularity. Selection flows do not change the
// granularity; day-open flows switch to the day view.
func (m *Model) JumpTo(day time.Time, g schedule.Granularity) tea.Cmd {
	if !day.IsZero() {
		m.anchor = dateutil.StartOfDay(day)
	}
	var cmds []tea.Cmd
	cmds = append(cmds, events.NavigateCmd(m.id, schedule.ActionToday, m.anchor))
	if g != "" && g != m.granularity {
		m.granularity = g
		cmds = append(cmds, events.ViewChangeCmd(m.id, g))
	}
	return tea.Batch(cmds...)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles navigation and view-switch keys.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "p", "[":
		return m, m.navigate(schedule.ActionPrev)
	case "n", "]":
		return m, m.navigate(schedule.ActionNext)
	case "t":
		return m, m.navigate(schedule.ActionToday)
	case "1", "m":
		return m, m.switchView(schedule.GranularityMonth)
	case "2", "w":
		return m, m.switchView(schedule.GranularityWeek)
	case "3", "d":
		return m, m.switchView(schedule.GranularityDay)
	case "4", "g":
		return m, m.switchView(schedule.GranularityAgenda)
	}
	return m, nil
}

func (m *Model) navigate(action schedule.Action) tea.Cmd {
	strategy := schedule.StrategyFor(m.granularity)
	m.anchor = strategy.Navigate(m.anchor, action, m.now)
	return events.NavigateCmd(m.id, action, m.anchor)
}

func (m *Model) switchView(g schedule.Granularity) tea.Cmd {
	if g == m.granularity {
		return nil
	}
	m.granularity = g
	return events.ViewChangeCmd(m.id, g)
}

// Title re-derives the header label from (anchor, granularity) on every call
// so it can never desynchronize from the view state.
func (m *Model) Title() string {
	return schedule.StrategyFor(m.granularity).Title(m.anchor, m.now, m.locale)
}

// View renders the toolbar line: navigation hints, title, and view tabs.
func (m *Model) View() string {
	nav := m.theme.Faint.Render("‹p") + " " +
		m.theme.Header.Render("t") + " " +
		m.theme.Faint.Render("n›")
	title := m.theme.Header.Render(m.Title())

	var tabs []string
	for _, g := range schedule.AllGranularities() {
		label := tabLabel(g)
		if g == m.granularity {
			tabs = append(tabs, m.theme.Selected.Render(label))
		} else {
			tabs = append(tabs, m.theme.Faint.Render(label))
		}
	}
	right := strings.Join(tabs, " ")

	line := nav + "  " + title
	if m.width > 0 {
		pad := m.width - lipgloss.Width(line) - lipgloss.Width(right)
		if pad > 1 {
			line += strings.Repeat(" ", pad)
		} else {
			line += "  "
		}
	} else {
		line += "  "
	}
	return line + right
}

func tabLabel(g schedule.Granularity) string {
	switch g {
	case schedule.GranularityMonth:
		return "Tháng"
	case schedule.GranularityWeek:
		return "Tuần"
	case schedule.GranularityDay:
		return "Ngày"
	case schedule.GranularityAgenda:
		return "Lịch biểu"
	default:
		return string(g)
	}
}
