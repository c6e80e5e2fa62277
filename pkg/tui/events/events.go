// Package events defines the cross-component Bubble Tea messages the
// calendar views emit toward the host application.
package events

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/nongtrai/farmcal/pkg/schedule"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// EventRef captures the metadata required to identify a calendar event in
// cross-component messages.
type EventRef struct {
	ActivityID int64
	Title      string
	Status     string
	Start      time.Time
	End        time.Time
}

// RefFromEvent converts a schedule.Event into a message reference.
func RefFromEvent(e schedule.Event) EventRef {
	return EventRef{
		ActivityID: e.Activity.ID,
		Title:      e.Title,
		Status:     e.Activity.Status,
		Start:      e.Start,
		End:        e.End,
	}
}

// EventSelectMsg fires when the user activates an activity card.
type EventSelectMsg struct {
	Component ComponentID
	Event     EventRef
}

// Describe renders the selection in a human-friendly format for logs.
func (m EventSelectMsg) Describe() string {
	return fmt.Sprintf(`title:%q activity:%d`, m.Event.Title, m.Event.ActivityID)
}

// EventSelectCmd wraps EventSelectMsg in a tea.Cmd.
func EventSelectCmd(component ComponentID, ref EventRef) tea.Cmd {
	return func() tea.Msg {
		return EventSelectMsg{Component: component, Event: ref}
	}
}

// DayOpenMsg fires when the user opens a day, either from a day header or a
// month-grid "+N more" affordance.
type DayOpenMsg struct {
	Component ComponentID
	Day       time.Time
}

// Describe renders the day open request for logs.
func (m DayOpenMsg) Describe() string {
	return fmt.Sprintf(`day:%q`, m.Day.Format("2006-01-02"))
}

// DayOpenCmd wraps DayOpenMsg in a tea.Cmd.
func DayOpenCmd(component ComponentID, day time.Time) tea.Cmd {
	return func() tea.Msg {
		return DayOpenMsg{Component: component, Day: day}
	}
}

// CreateRequestMsg asks the host to start creating an activity on a day.
type CreateRequestMsg struct {
	Component ComponentID
	Day       time.Time
}

// Describe renders the create request for logs.
func (m CreateRequestMsg) Describe() string {
	return fmt.Sprintf(`day:%q`, m.Day.Format("2006-01-02"))
}

// CreateRequestCmd wraps CreateRequestMsg in a tea.Cmd.
func CreateRequestCmd(component ComponentID, day time.Time) tea.Cmd {
	return func() tea.Msg {
		return CreateRequestMsg{Component: component, Day: day}
	}
}

// NavigateMsg announces that the anchor date moved.
type NavigateMsg struct {
	Component ComponentID
	Action    schedule.Action
	Anchor    time.Time
}

// Describe renders the navigation for logs.
func (m NavigateMsg) Describe() string {
	return fmt.Sprintf(`action:%q anchor:%q`, m.Action, m.Anchor.Format("2006-01-02"))
}

// NavigateCmd wraps NavigateMsg in a tea.Cmd.
func NavigateCmd(component ComponentID, action schedule.Action, anchor time.Time) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Component: component, Action: action, Anchor: anchor}
	}
}

// ViewChangeMsg announces a granularity switch.
type ViewChangeMsg struct {
	Component   ComponentID
	Granularity schedule.Granularity
}

// Describe renders the view change for logs.
func (m ViewChangeMsg) Describe() string {
	return fmt.Sprintf(`granularity:%q`, m.Granularity)
}

// ViewChangeCmd wraps ViewChangeMsg in a tea.Cmd.
func ViewChangeCmd(component ComponentID, g schedule.Granularity) tea.Cmd {
	return func() tea.Msg {
		return ViewChangeMsg{Component: component, Granularity: g}
	}
}

// FocusMsg indicates a component just gained focus.
type FocusMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m FocusMsg) Describe() string {
	return fmt.Sprintf(`component:%q state:"focus"`, m.Component)
}

// BlurMsg indicates a component just lost focus.
type BlurMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m BlurMsg) Describe() string {
	return fmt.Sprintf(`component:%q state:"blur"`, m.Component)
}

// FocusCmd wraps a FocusMsg in a tea.Cmd helper.
func FocusCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return FocusMsg{Component: component}
	}
}

// BlurCmd wraps a BlurMsg in a tea.Cmd helper.
func BlurCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return BlurMsg{Component: component}
	}
}
