package export

import (
	"context"
	"errors"
	"fmt"
	"os"

	ics "github.com/arran4/golang-ical"

	"github.com/nongtrai/farmcal/pkg/activity"
	"github.com/nongtrai/farmcal/pkg/dateutil"
	"github.com/nongtrai/farmcal/pkg/store"
)

// Export writes the stored activities as an iCalendar file so the farm
// schedule can be loaded into external calendar clients.
type Export struct {
	Out         string
	Persistence store.Persistence
}

// Do serializes one all-day VEVENT per activity with parseable dates.
func (n *Export) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not export, no persistence")
	}
	if n.Out == "" {
		return errors.New("export: output path required")
	}
	all, err := n.Persistence.List(ctx)
	if err != nil {
		return err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//nongtrai//farmcal//VI")

	exported := 0
	for _, a := range all {
		start, ok := dateutil.Parse(a.StartDate)
		if !ok {
			continue
		}
		end, ok := dateutil.Parse(a.EndDate)
		if !ok || end.Before(start) {
			end = start
		}

		ev := cal.AddEvent(fmt.Sprintf("activity-%d@farmcal", a.ID))
		ev.SetSummary(activity.TypeLabel(a.ActivityType))
		ev.SetAllDayStartAt(dateutil.StartOfDay(start))
		// iCalendar all-day DTEND is exclusive.
		ev.SetAllDayEndAt(dateutil.StartOfDay(end).AddDate(0, 0, 1))
		ev.SetStatus(icsStatus(a.NormalizedStatus()))
		if a.Note != "" {
			ev.SetDescription(a.Note)
		}
		exported++
	}

	if err := os.WriteFile(n.Out, []byte(cal.Serialize()), 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", n.Out, err)
	}
	fmt.Printf("exported %d activities to %s\n", exported, n.Out)
	return nil
}

func icsStatus(s activity.Status) ics.ObjectStatus {
	switch s {
	case activity.StatusCompleted:
		return ics.ObjectStatusConfirmed
	case activity.StatusDeactivated:
		return ics.ObjectStatusCancelled
	default:
		return ics.ObjectStatusTentative
	}
}
