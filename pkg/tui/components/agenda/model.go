// Package agenda renders the agenda view: the anchor month's activities as a
// flat, filterable list.
package agenda

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/v2/list"
	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/nongtrai/farmcal/pkg/activity"
	"github.com/nongtrai/farmcal/pkg/schedule"
	"github.com/nongtrai/farmcal/pkg/tui/events"
	"github.com/nongtrai/farmcal/pkg/tui/theme"
)

// Model wraps a bubbles list over the month's day buckets.
type Model struct {
	strategy  schedule.Strategy
	policy    theme.Policy
	locale    schedule.Locale
	isOverdue activity.Predicate

	now  time.Time
	list list.Model

	focused bool
	id      events.ComponentID
}

// NewModel builds the agenda list.
func NewModel(t theme.Theme, loc schedule.Locale) *Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New(nil, delegate, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	return &Model{
		strategy: schedule.StrategyFor(schedule.GranularityAgenda),
		policy:   theme.NewPolicy(t),
		locale:   loc,
		now:      time.Now(),
		list:     l,
		id:       events.ComponentID("agenda"),
	}
}

// ID returns the component identifier used in emitted messages.
func (m *Model) ID() events.ComponentID { return m.id }

// Strategy exposes the navigation contract for the toolbar.
func (m *Model) Strategy() schedule.Strategy { return m.strategy }

// SetNow overrides the reference time. Tests use this for determinism.
func (m *Model) SetNow(now time.Time) { m.now = now }

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// SetContent rebuilds the list items for the anchor month. Days without
// activities are skipped; each event appears once, on its start day within
// the window.
func (m *Model) SetContent(anchor time.Time, evs []schedule.Event, isOverdue activity.Predicate) {
	if isOverdue == nil {
		isOverdue = activity.Never
	}
	m.isOverdue = isOverdue
	days := m.strategy.Range(anchor, m.now)
	buckets := schedule.BuildBuckets(days, evs, isOverdue)

	seen := make(map[int64]bool)
	var items []list.Item
	for _, bucket := range buckets {
		for _, e := range bucket.Events {
			if seen[e.Activity.ID] {
				continue
			}
			seen[e.Activity.ID] = true
			overdue := isOverdue(e.Activity)
			decision := m.policy.ResolveActivity(e.Activity, overdue)
			items = append(items, agendaItem{
				event:  e,
				day:    bucket.Day,
				status: decision.Label,
			})
		}
	}
	m.list.SetItems(items)
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

// Update forwards messages to the list and handles selection.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if !m.focused {
			return m, nil
		}
		if key.String() == "enter" {
			if item, ok := m.list.SelectedItem().(agendaItem); ok {
				return m, events.EventSelectCmd(m.id, events.RefFromEvent(item.event))
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// SelectedDay returns the day of the highlighted item.
func (m *Model) SelectedDay() time.Time {
	if item, ok := m.list.SelectedItem().(agendaItem); ok {
		return item.day
	}
	return m.now
}

// View renders the list.
func (m *Model) View() string {
	return m.list.View()
}

type agendaItem struct {
	event  schedule.Event
	day    time.Time
	status string
}

func (i agendaItem) Title() string {
	return fmt.Sprintf("%02d/%02d  %s", i.event.Start.Day(), int(i.event.Start.Month()), i.event.Title)
}

func (i agendaItem) Description() string {
	return fmt.Sprintf("%s · %02d/%02d - %02d/%02d",
		i.status,
		i.event.Start.Day(), int(i.event.Start.Month()),
		i.event.End.Day(), int(i.event.End.Month()))
}

func (i agendaItem) FilterValue() string { return i.event.Title }
