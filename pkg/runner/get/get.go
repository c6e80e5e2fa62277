package get

import (
	"context"
	"errors"
	"time"

	"github.com/nongtrai/farmcal/pkg/activity"
	"github.com/nongtrai/farmcal/pkg/dateutil"
	"github.com/nongtrai/farmcal/pkg/printers"
	"github.com/nongtrai/farmcal/pkg/store"
)

// Get lists stored activities, optionally filtered by status or month.
type Get struct {
	ShowID  bool
	Status  string
	Month   string // "2006-01", empty for all
	Summary bool

	Persistence store.Persistence
}

// Do prints the activity table.
func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}
	all, err := n.Persistence.List(ctx)
	if err != nil {
		return err
	}
	all = n.filtered(all)

	pp := printers.NewPrettyPrint()
	pp.ShowID = n.ShowID
	pp.NewLine()
	pp.Title(n.title())
	if n.Summary {
		pp.StatusSummary(all)
		return nil
	}
	pp.Activities(time.Now(), all...)
	return nil
}

func (n *Get) title() string {
	if n.Month != "" {
		return "Hoạt động " + n.Month
	}
	return "Hoạt động"
}

func (n *Get) filtered(all []activity.Activity) []activity.Activity {
	want := activity.NormalizeStatus(n.Status)
	var month time.Time
	if n.Month != "" {
		if t, err := time.ParseInLocation("2006-01", n.Month, time.Local); err == nil {
			month = t
		}
	}

	out := make([]activity.Activity, 0, len(all))
	for _, a := range all {
		if n.Status != "" && a.NormalizedStatus() != want {
			continue
		}
		if !month.IsZero() && !inMonth(a, month) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func inMonth(a activity.Activity, month time.Time) bool {
	start, ok := dateutil.Parse(a.StartDate)
	if !ok {
		return false
	}
	end, ok := dateutil.Parse(a.EndDate)
	if !ok {
		end = start
	}
	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.Local)
	monthEnd := dateutil.EndOfDay(monthStart.AddDate(0, 1, -1))
	return !start.After(monthEnd) && !end.Before(monthStart)
}
