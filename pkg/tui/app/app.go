// Package app composes the calendar TUI: toolbar, the active view, the
// detail panel, and the quick-add prompt.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/nongtrai/farmcal/pkg/activity"
	"github.com/nongtrai/farmcal/pkg/schedule"
	"github.com/nongtrai/farmcal/pkg/tui/components/agenda"
	"github.com/nongtrai/farmcal/pkg/tui/components/dayboard"
	"github.com/nongtrai/farmcal/pkg/tui/components/detail"
	"github.com/nongtrai/farmcal/pkg/tui/components/monthgrid"
	"github.com/nongtrai/farmcal/pkg/tui/components/toolbar"
	"github.com/nongtrai/farmcal/pkg/tui/components/weekboard"
	"github.com/nongtrai/farmcal/pkg/tui/events"
	"github.com/nongtrai/farmcal/pkg/tui/theme"
)

// Source provides the activity collection and accepts new records. The
// calendar never mutates activities it was given.
type Source interface {
	List(ctx context.Context) ([]activity.Activity, error)
	Store(a activity.Activity) (activity.Activity, error)
}

// view is the common surface of the four calendar components.
type view interface {
	Strategy() schedule.Strategy
	SetNow(time.Time)
	SetSize(width, height int)
	SetContent(anchor time.Time, evs []schedule.Event, isOverdue activity.Predicate)
	Focus() tea.Cmd
	Blur() tea.Cmd
	Update(tea.Msg) (tea.Model, tea.Cmd)
	View() string
	SelectedDay() time.Time
}

const (
	detailWidth  = 34
	chromeHeight = 4 // toolbar + rule + status line + padding
)

// Model is the root Bubble Tea model.
type Model struct {
	ctx    context.Context
	source Source
	theme  theme.Theme
	locale schedule.Locale

	toolbar *toolbar.Model
	views   map[schedule.Granularity]view
	detail  *detail.Model

	input     textinput.Model
	inputOpen bool
	inputDay  time.Time

	activities []activity.Activity
	events     []schedule.Event
	isOverdue  activity.Predicate
	now        time.Time

	width  int
	height int
	status string
}

type activitiesMsg struct {
	activities []activity.Activity
	err        error
}

// New builds the root model over an activity source.
func New(ctx context.Context, source Source) *Model {
	t := theme.Default()
	loc := schedule.Vietnamese()
	now := time.Now()

	views := map[schedule.Granularity]view{
		schedule.GranularityMonth:  monthgrid.NewModel(t, loc),
		schedule.GranularityWeek:   weekboard.NewModel(t, loc),
		schedule.GranularityDay:    dayboard.NewModel(t, loc),
		schedule.GranularityAgenda: agenda.NewModel(t, loc),
	}
	for _, v := range views {
		v.SetNow(now)
	}

	ti := textinput.New()
	ti.Placeholder = "Loại hoạt động (vd: TUOI_TIEU)"
	ti.CharLimit = 64
	ti.Prompt = "+ "

	tb := toolbar.NewModel(t, loc)
	tb.SetNow(now)

	m := &Model{
		ctx:       ctx,
		source:    source,
		theme:     t,
		locale:    loc,
		toolbar:   tb,
		views:     views,
		detail:    detail.NewModel(t),
		input:     ti,
		now:       now,
		isOverdue: activity.OverduePredicate(now),
		status:    "p/n/t điều hướng · 1-4 đổi kiểu xem · enter chọn · a thêm · q thoát",
	}
	return m
}

// SetNow fixes the reference time for deterministic tests.
func (m *Model) SetNow(now time.Time) {
	m.now = now
	m.isOverdue = activity.OverduePredicate(now)
	m.toolbar.SetNow(now)
	for _, v := range m.views {
		v.SetNow(now)
	}
}

// Init loads the activity collection.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadActivities(), m.activeView().Focus())
}

func (m *Model) loadActivities() tea.Cmd {
	return func() tea.Msg {
		if m.source == nil {
			return activitiesMsg{}
		}
		acts, err := m.source.List(m.ctx)
		return activitiesMsg{activities: acts, err: err}
	}
}

func (m *Model) activeView() view {
	return m.views[m.toolbar.Granularity()]
}

// refresh recomputes the active view's buckets from the memoized events.
func (m *Model) refresh() {
	m.activeView().SetContent(m.toolbar.Anchor(), m.events, m.isOverdue)
}

// Update routes messages between the toolbar, the active view, and overlays.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case activitiesMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("lỗi tải hoạt động: %v", msg.err)
			return m, nil
		}
		m.activities = msg.activities
		// Mapped once per collection change; view switches reuse the slice.
		m.events = schedule.MapActivities(m.activities, activity.TypeLabel)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case events.NavigateMsg, events.ViewChangeMsg:
		if _, ok := msg.(events.ViewChangeMsg); ok {
			for g, v := range m.views {
				if g == m.toolbar.Granularity() {
					cmds = append(cmds, v.Focus())
				} else {
					cmds = append(cmds, v.Blur())
				}
			}
			m.setSize(m.width, m.height)
		}
		m.refresh()
		return m, tea.Batch(cmds...)

	case events.EventSelectMsg:
		if a, ok := m.findActivity(msg.Event.ActivityID); ok {
			m.detail.Show(a, m.isOverdue)
			m.setSize(m.width, m.height)
		}
		return m, nil

	case events.DayOpenMsg:
		// "Show more" and day-header clicks land here: jump the anchor and
		// zoom to the day view.
		cmd := m.toolbar.JumpTo(msg.Day, schedule.GranularityDay)
		return m, cmd

	case events.CreateRequestMsg:
		m.inputOpen = true
		m.inputDay = msg.Day
		m.input.SetValue("")
		return m, m.input.Focus()
	}

	_, cmd := m.activeView().Update(msg)
	return m, cmd
}

func (m *Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.inputOpen {
		switch key.String() {
		case "esc":
			m.inputOpen = false
			m.input.Blur()
			return m, nil
		case "enter":
			return m, m.submitCreate()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(key)
		return m, cmd
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.detail.Showing() {
			m.detail.Clear()
			m.setSize(m.width, m.height)
			return m, nil
		}
		return m, nil
	}

	// Toolbar owns navigation and view-switch keys; everything else goes to
	// the active view.
	if _, cmd := m.toolbar.Update(key); cmd != nil {
		return m, cmd
	}
	_, cmd := m.activeView().Update(key)
	return m, cmd
}

func (m *Model) submitCreate() tea.Cmd {
	m.inputOpen = false
	m.input.Blur()
	typeCode := strings.TrimSpace(m.input.Value())
	if typeCode == "" || m.source == nil {
		return nil
	}
	day := m.inputDay.Format("2006-01-02")
	a := activity.Activity{
		ActivityType: typeCode,
		StartDate:    day,
		EndDate:      day,
		Status:       string(activity.StatusActive),
	}
	if _, err := m.source.Store(a); err != nil {
		m.status = fmt.Sprintf("lỗi lưu hoạt động: %v", err)
		return nil
	}
	m.status = fmt.Sprintf("đã thêm %s vào %s", activity.TypeLabel(typeCode), day)
	return m.loadActivities()
}

func (m *Model) findActivity(id int64) (activity.Activity, bool) {
	for _, a := range m.activities {
		if a.ID == id {
			return a, true
		}
	}
	return activity.Activity{}, false
}

func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height
	viewWidth := width
	if m.detail.Showing() {
		viewWidth = width - detailWidth - 1
		if viewWidth < 20 {
			viewWidth = 20
		}
	}
	viewHeight := height - chromeHeight
	if viewHeight < 4 {
		viewHeight = 4
	}
	m.toolbar.SetSize(width, 1)
	for _, v := range m.views {
		v.SetSize(viewWidth, viewHeight)
	}
	m.detail.SetSize(detailWidth, viewHeight)
	m.refresh()
}

// View renders toolbar, active view (plus detail panel), and the status bar.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.toolbar.View())
	b.WriteString("\n")
	b.WriteString(m.theme.Faint.Render(strings.Repeat("─", max(m.width, 10))))
	b.WriteString("\n")

	body := m.activeView().View()
	if m.detail.Showing() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", m.detail.View())
	}
	b.WriteString(body)
	b.WriteString("\n")

	if m.inputOpen {
		b.WriteString(m.theme.Header.Render("Thêm hoạt động "+m.inputDay.Format("02/01")) + " " + m.input.View())
	} else {
		b.WriteString(m.theme.Faint.Render(m.status))
	}
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
