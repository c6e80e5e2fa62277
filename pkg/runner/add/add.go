package add

import (
	"context"
	"errors"
	"time"

	"github.com/nongtrai/farmcal/pkg/activity"
	"github.com/nongtrai/farmcal/pkg/printers"
	"github.com/nongtrai/farmcal/pkg/store"
)

// Add stores a new activity from the command line.
type Add struct {
	ActivityType string
	StartDate    string
	EndDate      string
	Status       string
	Note         string

	Persistence store.Persistence
}

const layoutISO = "2006-01-02"

// Do validates defaults, stores the activity, and prints the result.
func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}
	if n.StartDate == "" {
		n.StartDate = time.Now().Format(layoutISO)
	}
	if n.EndDate == "" {
		n.EndDate = n.StartDate
	}
	status, err := activity.ParseStatus(n.Status)
	if err != nil {
		return err
	}

	a := activity.Activity{
		ActivityType: n.ActivityType,
		StartDate:    n.StartDate,
		EndDate:      n.EndDate,
		Status:       string(status),
		Note:         n.Note,
	}
	stored, err := n.Persistence.Store(a)
	if err != nil {
		return err
	}

	pp := printers.NewPrettyPrint()
	pp.NewLine()
	pp.Title(activity.TypeLabel(stored.ActivityType))
	pp.Activities(time.Now(), stored)
	return nil
}
