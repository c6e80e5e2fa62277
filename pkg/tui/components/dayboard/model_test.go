package dayboard

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

var dayNow = time.Date(2024, time.January, 17, 9, 0, 0, 0, time.Local)

func newTestBoard(anchor time.Time, acts []activity.Activity) *Model {
	m := NewModel(theme.Default(), schedule.Vietnamese())
	m.SetNow(dayNow)
	m.SetSize(60, 20)
	evs := schedule.MapActivities(acts, nil)
	m.SetContent(anchor, evs, activity.OverduePredicate(dayNow))
	return m
}

func press(m *Model, key string) tea.Msg {
	msg := tea.KeyPressMsg{Text: key, Code: rune(key[0])}
	if key == "enter" {
		msg = tea.KeyPressMsg{Code: tea.KeyEnter}
	}
	_, cmd := m.Update(msg)
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestViewRendersLocalizedHeader(t *testing.T) {
	m := newTestBoard(time.Date(2024, time.January, 17, 0, 0, 0, 0, time.Local), nil)
	view := m.View()
	if !strings.Contains(view, "Thứ tư, 17/01/2024") {
		t.Fatalf("view missing localized header:\n%s", view)
	}
	// Jan 17 is "now", so the today marker renders.
	if !strings.Contains(view, "●") {
		t.Fatalf("view missing today marker:\n%s", view)
	}
}

func TestEmptyStateOffersCreate(t *testing.T) {
	m := newTestBoard(time.Date(2024, time.January, 18, 0, 0, 0, 0, time.Local), nil)
	view := m.View()
	if !strings.Contains(view, "Chưa có hoạt động nào trong ngày này.") {
		t.Fatalf("view missing empty state:\n%s", view)
	}
	if !strings.Contains(view, "Nhấn 'a' để thêm hoạt động mới.") {
		t.Fatalf("view missing create hint:\n%s", view)
	}
}

func TestCardsShowRangeAndBadge(t *testing.T) {
	anchor := time.Date(2024, time.January, 17, 0, 0, 0, 0, time.Local)
	m := newTestBoard(anchor, []activity.Activity{
		{ID: 1, ActivityType: "GIEO_TRONG", StartDate: "1/15/2024", EndDate: "1/18/2024", Status: "IN_PROGRESS"},
	})
	view := m.View()
	if !strings.Contains(view, "Gieo trồng") {
		t.Fatalf("view missing card title:\n%s", view)
	}
	if !strings.Contains(view, "15/01 - 18/01") {
		t.Fatalf("view missing date range:\n%s", view)
	}
	if !strings.Contains(view, "Đang thực hiện") {
		t.Fatalf("view missing status badge:\n%s", view)
	}
}

func TestEnterSelectsCard(t *testing.T) {
	anchor := time.Date(2024, time.January, 17, 0, 0, 0, 0, time.Local)
	m := newTestBoard(anchor, []activity.Activity{
		{ID: 4, ActivityType: "PHUN_THUOC", StartDate: "1/17/2024", EndDate: "1/17/2024", Status: "ACTIVE"},
		{ID: 5, ActivityType: "BON_PHAN", StartDate: "1/17/2024", EndDate: "1/17/2024", Status: "COMPLETED"},
	})
	m.Focus()
	press(m, "j")
	msg := press(m, "enter")
	sel, ok := msg.(events.EventSelectMsg)
	if !ok {
		t.Fatalf("expected EventSelectMsg, got %T", msg)
	}
	if sel.Event.ActivityID != 5 {
		t.Fatalf("selected activity = %d, want the second card", sel.Event.ActivityID)
	}
}

func TestCreateKeyUsesRenderedDay(t *testing.T) {
	anchor := time.Date(2024, time.January, 20, 0, 0, 0, 0, time.Local)
	m := newTestBoard(anchor, nil)
	m.Focus()
	msg := press(m, "a")
	req, ok := msg.(events.CreateRequestMsg)
	if !ok {
		t.Fatalf("expected CreateRequestMsg, got %T", msg)
	}
	if req.Day.Day() != 20 {
		t.Fatalf("create day = %v, want Jan 20", req.Day)
	}
}

func TestZeroAnchorFallsBackToNow(t *testing.T) {
	m := newTestBoard(time.Time{}, nil)
	if got := m.SelectedDay(); got.Day() != 17 {
		t.Fatalf("zero anchor should render today, got %v", got)
	}
}
