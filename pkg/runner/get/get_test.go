package get

import (
	"testing"

	"github.com/nongtrai/farmcal/pkg/activity"
)

func TestFilteredByStatus(t *testing.T) {
	g := &Get{Status: "in_progress"}
	all := []activity.Activity{
		{ID: 1, Status: "ACTIVE"},
		{ID: 2, Status: "IN_PROGRESS"},
		{ID: 3, Status: "in_progress"},
	}
	out := g.filtered(all)
	if len(out) != 2 {
		t.Fatalf("got %d rows, want 2", len(out))
	}
	for _, a := range out {
		if a.NormalizedStatus() != activity.StatusInProgress {
			t.Fatalf("unexpected row %d with status %q", a.ID, a.Status)
		}
	}
}

func TestFilteredByMonthOverlap(t *testing.T) {
	g := &Get{Month: "2024-01"}
	all := []activity.Activity{
		{ID: 1, StartDate: "1/15/2024", EndDate: "1/16/2024"},
		{ID: 2, StartDate: "12/28/2023", EndDate: "1/2/2024"},
		{ID: 3, StartDate: "2/1/2024", EndDate: "2/3/2024"},
		{ID: 4, StartDate: "mystery", EndDate: "1/16/2024"},
	}
	out := g.filtered(all)
	if len(out) != 2 {
		t.Fatalf("got %d rows, want the two overlapping January", len(out))
	}
	if out[0].ID != 1 || out[1].ID != 2 {
		t.Fatalf("got rows %d, %d", out[0].ID, out[1].ID)
	}
}

func TestFilteredIgnoresBadMonth(t *testing.T) {
	g := &Get{Month: "tháng một"}
	all := []activity.Activity{
		{ID: 1, StartDate: "1/15/2024", EndDate: "1/16/2024"},
	}
	if out := g.filtered(all); len(out) != 1 {
		t.Fatalf("unparseable month should not filter, got %d rows", len(out))
	}
}

func TestTitle(t *testing.T) {
	if got := (&Get{}).title(); got != "Hoạt động" {
		t.Fatalf("title = %q", got)
	}
	if got := (&Get{Month: "2024-01"}).title(); got != "Hoạt động 2024-01" {
		t.Fatalf("month title = %q", got)
	}
}
