package export

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nongtrai/farmcal/pkg/activity"
)

type fakePersistence struct {
	activities []activity.Activity
}

func (f *fakePersistence) List(context.Context) ([]activity.Activity, error) {
	return f.activities, nil
}

func (f *fakePersistence) Get(context.Context, int64) (activity.Activity, error) {
	return activity.Activity{}, nil
}

func (f *fakePersistence) Store(a activity.Activity) (activity.Activity, error) {
	return a, nil
}

func (f *fakePersistence) Delete(int64) error { return nil }

func (f *fakePersistence) ImportJSON(io.Reader) (int, error) { return 0, nil }

func TestDoWritesAllDayEvents(t *testing.T) {
	out := filepath.Join(t.TempDir(), "farmcal.ics")
	e := Export{
		Out: out,
		Persistence: &fakePersistence{activities: []activity.Activity{
			{ID: 1, ActivityType: "THU_HOACH", StartDate: "1/15/2024", EndDate: "1/17/2024", Status: "COMPLETED", Note: "lúa vụ đông"},
			{ID: 2, ActivityType: "TUOI_TIEU", StartDate: "bogus", EndDate: "1/16/2024", Status: "ACTIVE"},
		}},
	}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("Do failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	ics := string(data)

	if !strings.Contains(ics, "BEGIN:VCALENDAR") {
		t.Fatalf("output is not an iCalendar file:\n%s", ics)
	}
	if !strings.Contains(ics, "UID:activity-1@farmcal") {
		t.Fatalf("missing event UID:\n%s", ics)
	}
	if strings.Contains(ics, "activity-2@farmcal") {
		t.Fatalf("activity with unparseable start should be skipped:\n%s", ics)
	}
	if !strings.Contains(ics, "DTSTART;VALUE=DATE:20240115") {
		t.Fatalf("missing all-day start:\n%s", ics)
	}
	// All-day DTEND is exclusive: the day after the last day.
	if !strings.Contains(ics, "DTEND;VALUE=DATE:20240118") {
		t.Fatalf("missing exclusive all-day end:\n%s", ics)
	}
	if !strings.Contains(ics, "STATUS:CONFIRMED") {
		t.Fatalf("completed activity should export as confirmed:\n%s", ics)
	}
}

func TestDoRequiresPersistence(t *testing.T) {
	e := Export{Out: "x.ics"}
	if err := e.Do(context.Background()); err == nil {
		t.Fatalf("expected error without persistence")
	}
}

func TestDoRequiresOutputPath(t *testing.T) {
	e := Export{Persistence: &fakePersistence{}}
	if err := e.Do(context.Background()); err == nil {
		t.Fatalf("expected error without output path")
	}
}
