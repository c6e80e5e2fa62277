// Package activity defines the farm-activity record and its status metadata.
package activity

import (
	"fmt"
	"strings"
)

// Activity is a farm task as delivered by the backend. Dates stay textual
// because the backend mixes "M/D/YYYY" and ISO-8601 strings; parsing happens
// in dateutil at the point of use.
type Activity struct {
	ID           int64  `json:"id"`
	ActivityType string `json:"activityType"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Status       string `json:"status"`
	Note         string `json:"note,omitempty"`
}

// Status is the normalized lifecycle state of an activity.
type Status string

const (
	// StatusActive is a planned activity that has not started.
	StatusActive Status = "ACTIVE"
	// StatusInProgress is an activity currently being worked.
	StatusInProgress Status = "IN_PROGRESS"
	// StatusCompleted is a finished activity.
	StatusCompleted Status = "COMPLETED"
	// StatusDeactivated is a paused or cancelled activity.
	StatusDeactivated Status = "DEACTIVATED"
)

// AllStatuses returns the supported statuses in display order.
func AllStatuses() []Status {
	return []Status{
		StatusActive,
		StatusInProgress,
		StatusCompleted,
		StatusDeactivated,
	}
}

// ParseStatus normalizes a raw status string. Unknown values return the
// normalized input and an error; callers that only style the activity treat
// unknown statuses as StatusActive.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	if s == "" {
		return StatusActive, nil
	}
	for _, candidate := range AllStatuses() {
		if candidate == s {
			return candidate, nil
		}
	}
	return s, fmt.Errorf("activity: unknown status %q", raw)
}

// NormalizeStatus is ParseStatus without the error, for styling paths where
// unknown statuses silently keep their normalized text.
func NormalizeStatus(raw string) Status {
	s, _ := ParseStatus(raw)
	return s
}

const unknownStatusPriority = 99

// Priority returns the sort rank of a status. Lower sorts first.
func (s Status) Priority() int {
	switch s {
	case StatusInProgress:
		return 0
	case StatusActive:
		return 1
	case StatusCompleted:
		return 2
	case StatusDeactivated:
		return 3
	default:
		return unknownStatusPriority
	}
}

// Label returns the Vietnamese display string for the status. Unrecognized
// statuses echo their normalized text.
func (s Status) Label() string {
	switch s {
	case StatusActive:
		return "Hoạt động"
	case StatusInProgress:
		return "Đang thực hiện"
	case StatusCompleted:
		return "Hoàn thành"
	case StatusDeactivated:
		return "Tạm dừng"
	default:
		return string(s)
	}
}

// NormalizedStatus returns the activity's status in canonical form.
func (a Activity) NormalizedStatus() Status {
	return NormalizeStatus(a.Status)
}
