package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/nongtrai/farmcal/pkg/activity"
)

// Decision is the resolved presentation for one activity.
type Decision struct {
	Color color.Color
	Style lipgloss.Style
	Label string
}

// Policy maps (status, overdue, activityType) to a display decision through
// an ordered rule list. The soil-preparation override is a leading rule that
// only the month grid enables, so the boards and badges stay status-driven.
type Policy struct {
	theme Theme

	// TypeOverride renders the soil-preparation type in a fixed brown
	// regardless of status when true.
	TypeOverride bool
}

// NewPolicy builds the shared style policy over a theme.
func NewPolicy(t Theme) Policy {
	return Policy{theme: t}
}

// WithTypeOverride returns a copy of the policy with the month-grid
// soil-preparation rule enabled.
func (p Policy) WithTypeOverride() Policy {
	p.TypeOverride = true
	return p
}

// Resolve applies the rules in order:
//  1. soil-preparation type (when enabled),
//  2. IN_PROGRESS keeps its own color even when overdue,
//  3. overdue,
//  4. status color, unknown statuses styled as ACTIVE.
//
// The label is always the status label; the type rule changes color only.
func (p Policy) Resolve(status activity.Status, overdue bool, activityType string) Decision {
	c := p.colorFor(status, overdue, activityType)
	return Decision{
		Color: c,
		Style: lipgloss.NewStyle().Foreground(c),
		Label: status.Label(),
	}
}

// ResolveActivity is Resolve over a raw activity record.
func (p Policy) ResolveActivity(a activity.Activity, overdue bool) Decision {
	return p.Resolve(a.NormalizedStatus(), overdue, a.ActivityType)
}

func (p Policy) colorFor(status activity.Status, overdue bool, activityType string) color.Color {
	if p.TypeOverride && activityType == activity.TypeSoilPreparation {
		return p.theme.Palette.SoilPrep
	}
	if status == activity.StatusInProgress {
		return p.theme.Palette.InProgress
	}
	if overdue {
		return p.theme.Palette.Overdue
	}
	switch status {
	case activity.StatusCompleted:
		return p.theme.Palette.Completed
	case activity.StatusDeactivated:
		return p.theme.Palette.Deactivated
	default:
		// ACTIVE plus anything unrecognized.
		return p.theme.Palette.Active
	}
}
