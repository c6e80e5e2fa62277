package monthgrid

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/nongtrai/farmcal/pkg/activity"
	"github.com/nongtrai/farmcal/pkg/schedule"
	"github.com/nongtrai/farmcal/pkg/tui/events"
	"github.com/nongtrai/farmcal/pkg/tui/theme"
)

var gridNow = time.Date(2024, time.January, 17, 9, 0, 0, 0, time.Local)

func newTestGrid(acts []activity.Activity) *Model {
	m := NewModel(theme.Default(), schedule.Vietnamese())
	m.SetNow(gridNow)
	m.SetSize(80, 24)
	evs := schedule.MapActivities(acts, nil)
	m.SetContent(time.Date(2024, time.January, 17, 0, 0, 0, 0, time.Local),
		evs, activity.OverduePredicate(gridNow))
	return m
}

func press(m *Model, key string) tea.Msg {
	_, cmd := m.Update(tea.KeyPressMsg{Text: key, Code: rune(key[0])})
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestViewShowsMondayFirstHeader(t *testing.T) {
	m := newTestGrid(nil)
	view := m.View()
	lines := strings.Split(view, "\n")
	header := lines[0]
	if !strings.Contains(header, "T2") {
		t.Fatalf("header missing Monday label:\n%s", header)
	}
	if strings.Index(header, "T2") > strings.Index(header, "CN") {
		t.Fatalf("Sunday should come last in the header:\n%s", header)
	}
}

func TestViewShowsOverflowMarker(t *testing.T) {
	day := "1/16/2024"
	acts := []activity.Activity{
		{ID: 1, ActivityType: "TUOI_TIEU", StartDate: day, EndDate: day, Status: "ACTIVE"},
		{ID: 2, ActivityType: "BON_PHAN", StartDate: day, EndDate: day, Status: "ACTIVE"},
		{ID: 3, ActivityType: "LAM_DAT", StartDate: day, EndDate: day, Status: "ACTIVE"},
		{ID: 4, ActivityType: "THU_HOACH", StartDate: day, EndDate: day, Status: "ACTIVE"},
	}
	m := newTestGrid(acts)
	if view := m.View(); !strings.Contains(view, "+2") {
		t.Fatalf("expected +2 overflow marker in view:\n%s", view)
	}
}

func TestCursorStartsOnAnchorDay(t *testing.T) {
	m := newTestGrid(nil)
	if got := m.SelectedDay(); got.Day() != 17 {
		t.Fatalf("cursor day = %v, want anchor Jan 17", got)
	}
}

func TestCursorMovement(t *testing.T) {
	m := newTestGrid(nil)
	m.Focus()

	press(m, "l")
	if got := m.SelectedDay(); got.Day() != 18 {
		t.Fatalf("right should move one day, got %v", got)
	}
	press(m, "j")
	if got := m.SelectedDay(); got.Day() != 25 {
		t.Fatalf("down should move one week, got %v", got)
	}
	press(m, "k")
	press(m, "h")
	if got := m.SelectedDay(); got.Day() != 17 {
		t.Fatalf("cursor should return to Jan 17, got %v", got)
	}
}

func TestEnterOpensDay(t *testing.T) {
	m := newTestGrid(nil)
	m.Focus()
	msg := press(m, "o")
	open, ok := msg.(events.DayOpenMsg)
	if !ok {
		t.Fatalf("expected DayOpenMsg, got %T", msg)
	}
	if open.Day.Day() != 17 {
		t.Fatalf("opened day = %v, want Jan 17", open.Day)
	}
}

func TestCreateKeyEmitsRequest(t *testing.T) {
	m := newTestGrid(nil)
	m.Focus()
	msg := press(m, "a")
	req, ok := msg.(events.CreateRequestMsg)
	if !ok {
		t.Fatalf("expected CreateRequestMsg, got %T", msg)
	}
	if req.Day.Day() != 17 {
		t.Fatalf("create day = %v, want Jan 17", req.Day)
	}
}

func TestUnfocusedGridIgnoresKeys(t *testing.T) {
	m := newTestGrid(nil)
	if msg := press(m, "l"); msg != nil {
		t.Fatalf("unfocused grid should ignore keys, got %T", msg)
	}
	if got := m.SelectedDay(); got.Day() != 17 {
		t.Fatalf("cursor moved while unfocused: %v", got)
	}
}

func TestCellStylingUsesInjectedOverduePredicate(t *testing.T) {
	day := "1/10/2024" // ends before gridNow, so the default policy would flag it
	acts := []activity.Activity{
		{ID: 1, ActivityType: "TUOI_TIEU", StartDate: day, EndDate: day, Status: "ACTIVE"},
	}
	m := NewModel(theme.Default(), schedule.Vietnamese())
	m.SetNow(gridNow)
	m.SetSize(80, 24)

	calls := 0
	pred := func(activity.Activity) bool {
		calls++
		return false
	}
	m.SetContent(time.Date(2024, time.January, 17, 0, 0, 0, 0, time.Local),
		schedule.MapActivities(acts, nil), pred)

	calls = 0
	_ = m.View()
	if calls == 0 {
		t.Fatalf("cell styling should consult the predicate given to SetContent")
	}
}

func TestTruncateKeepsShortTitles(t *testing.T) {
	if got := truncate("ngắn", 10); got != "ngắn" {
		t.Fatalf("short title changed: %q", got)
	}
	if got := truncate("một tiêu đề rất dài", 8); !strings.HasSuffix(got, "…") {
		t.Fatalf("long title should end with ellipsis: %q", got)
	}
	if got := truncate("abc", 0); got != "" {
		t.Fatalf("zero width should drop the title: %q", got)
	}
}
