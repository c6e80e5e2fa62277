// Package detail renders the side panel for the selected activity.
package detail

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"github.com/nongtrai/farmcal/pkg/activity"
	"github.com/nongtrai/farmcal/pkg/dateutil"
	"github.com/nongtrai/farmcal/pkg/tui/events"
	"github.com/nongtrai/farmcal/pkg/tui/theme"
)

// Model shows the metadata of one activity, or nothing when none selected.
type Model struct {
	theme  theme.Theme
	policy theme.Policy

	selected  *activity.Activity
	isOverdue activity.Predicate
	now       time.Time

	width  int
	height int
	id     events.ComponentID
}

// NewModel builds an empty detail panel.
func NewModel(t theme.Theme) *Model {
	return &Model{
		theme:  t,
		policy: theme.NewPolicy(t),
		now:    time.Now(),
		id:     events.ComponentID("detail"),
	}
}

// ID returns the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// SetNow overrides the reference time. Tests use this for determinism.
func (m *Model) SetNow(now time.Time) { m.now = now }

// SetSize updates the panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Show selects an activity for display.
func (m *Model) Show(a activity.Activity, isOverdue activity.Predicate) {
	m.selected = &a
	m.isOverdue = isOverdue
}

// Clear removes the selection.
func (m *Model) Clear() { m.selected = nil }

// Showing reports whether an activity is displayed.
func (m *Model) Showing() bool { return m.selected != nil }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update is a no-op; the panel is display-only.
func (m *Model) Update(tea.Msg) (tea.Model, tea.Cmd) { return m, nil }

// View renders the selected activity's metadata.
func (m *Model) View() string {
	if m.selected == nil {
		return ""
	}
	a := *m.selected
	width := m.width
	if width <= 0 {
		width = 32
	}

	overdue := m.isOverdue != nil && m.isOverdue(a)
	decision := m.policy.ResolveActivity(a, overdue)

	var lines []string
	lines = append(lines, m.theme.Header.Render(wordwrap.String(activity.TypeLabel(a.ActivityType), width-2)))
	lines = append(lines, "")
	lines = append(lines, m.theme.Faint.Render("Thời gian")+"  "+formatRange(a))
	lines = append(lines, m.theme.Faint.Render("Trạng thái")+"  "+decision.Style.Render(decision.Label))
	if overdue {
		lines = append(lines, m.theme.Faint.Render("Cảnh báo")+"   "+
			lipgloss.NewStyle().Foreground(m.theme.Palette.Overdue).Render("Quá hạn"))
	}
	if a.Note != "" {
		lines = append(lines, "")
		lines = append(lines, wordwrap.String(a.Note, width-2))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Muted(decision.Color)).
		Padding(0, 1).
		Width(width)
	return box.Render(strings.Join(lines, "\n"))
}

func formatRange(a activity.Activity) string {
	start, okStart := dateutil.Parse(a.StartDate)
	end, okEnd := dateutil.Parse(a.EndDate)
	if !okStart || !okEnd {
		return "—"
	}
	if dateutil.SameDay(start, end) {
		return fmt.Sprintf("%02d/%02d/%d", start.Day(), int(start.Month()), start.Year())
	}
	return fmt.Sprintf("%02d/%02d - %02d/%02d/%d",
		start.Day(), int(start.Month()), end.Day(), int(end.Month()), end.Year())
}
