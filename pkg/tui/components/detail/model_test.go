package detail

import (
	"strings"
	"testing"
	"time"

	"github.com/nongtrai/farmcal/pkg/activity"
	"github.com/nongtrai/farmcal/pkg/tui/theme"
)

func TestEmptyPanelRendersNothing(t *testing.T) {
	m := NewModel(theme.Default())
	if m.Showing() {
		t.Fatalf("new panel should show nothing")
	}
	if view := m.View(); view != "" {
		t.Fatalf("empty panel view = %q", view)
	}
}

func TestShowRendersActivityMetadata(t *testing.T) {
	m := NewModel(theme.Default())
	m.SetNow(time.Date(2024, time.January, 17, 9, 0, 0, 0, time.Local))
	m.SetSize(34, 20)
	m.Show(activity.Activity{
		ID:           1,
		ActivityType: "BON_PHAN",
		StartDate:    "1/15/2024",
		EndDate:      "1/18/2024",
		Status:       "IN_PROGRESS",
		Note:         "bón thúc đợt hai",
	}, activity.Never)

	view := m.View()
	for _, want := range []string{"Bón phân", "Thời gian", "15/01 - 18/01/2024",
		"Trạng thái", "Đang thực hiện", "bón thúc đợt hai"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Quá hạn") {
		t.Fatalf("non-overdue activity should not warn:\n%s", view)
	}
}

func TestShowWarnsWhenOverdue(t *testing.T) {
	now := time.Date(2024, time.January, 17, 9, 0, 0, 0, time.Local)
	m := NewModel(theme.Default())
	m.SetNow(now)
	m.Show(activity.Activity{
		ID:           2,
		ActivityType: "TUOI_TIEU",
		StartDate:    "1/05/2024",
		EndDate:      "1/10/2024",
		Status:       "ACTIVE",
	}, activity.OverduePredicate(now))

	if view := m.View(); !strings.Contains(view, "Quá hạn") {
		t.Fatalf("overdue activity should warn:\n%s", view)
	}
}

func TestSingleDayRangeCollapses(t *testing.T) {
	a := activity.Activity{StartDate: "1/15/2024", EndDate: "1/15/2024"}
	if got := formatRange(a); got != "15/01/2024" {
		t.Fatalf("single-day range = %q", got)
	}
	if got := formatRange(activity.Activity{StartDate: "bogus", EndDate: "1/15/2024"}); got != "—" {
		t.Fatalf("unparseable range = %q", got)
	}
}

func TestClear(t *testing.T) {
	m := NewModel(theme.Default())
	m.Show(activity.Activity{ActivityType: "LAM_DAT", StartDate: "1/15/2024", EndDate: "1/15/2024"}, nil)
	if !m.Showing() {
		t.Fatalf("Show should mark the panel as showing")
	}
	m.Clear()
	if m.Showing() || m.View() != "" {
		t.Fatalf("Clear should empty the panel")
	}
}
