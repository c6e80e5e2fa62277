// Package printers renders activities for terminal output.
package printers

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	isatty "github.com/mattn/go-isatty"

	"github.com/nongtrai/farmcal/pkg/activity"
)

// PrettyPrint writes activity listings and summaries to stdout.
type PrettyPrint struct {
	ShowID bool
}

// NewPrettyPrint disables color automatically when stdout is not a terminal,
// so piped output stays clean.
func NewPrettyPrint() *PrettyPrint {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
	return &PrettyPrint{}
}

// NewLine prints an empty line.
func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

// Title prints a bold underlined section header.
func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Activities prints a table of activities with status badges and an overdue
// marker column.
func (pp *PrettyPrint) Activities(now time.Time, acts ...activity.Activity) {
	if len(acts) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}
	overdue := activity.OverduePredicate(now)

	tbl := uitable.New()
	tbl.MaxColWidth = 40
	if pp.ShowID {
		tbl.AddRow("ID", "HOẠT ĐỘNG", "BẮT ĐẦU", "KẾT THÚC", "TRẠNG THÁI", "")
	} else {
		tbl.AddRow("HOẠT ĐỘNG", "BẮT ĐẦU", "KẾT THÚC", "TRẠNG THÁI", "")
	}
	for _, a := range acts {
		status := statusPrinter(a.NormalizedStatus()).Sprint(a.NormalizedStatus().Label())
		mark := ""
		if overdue(a) {
			mark = color.New(color.FgHiRed, color.Bold).Sprint("⚠ quá hạn")
		}
		if pp.ShowID {
			tbl.AddRow(a.ID, activity.TypeLabel(a.ActivityType), a.StartDate, a.EndDate, status, mark)
		} else {
			tbl.AddRow(activity.TypeLabel(a.ActivityType), a.StartDate, a.EndDate, status, mark)
		}
	}
	fmt.Println(tbl)
	fmt.Println("")
}

// StatusSummary prints per-status counts for a collection of activities.
func (pp *PrettyPrint) StatusSummary(acts []activity.Activity) {
	counts := make(map[activity.Status]int)
	for _, a := range acts {
		counts[a.NormalizedStatus()]++
	}
	tbl := uitable.New()
	for _, s := range activity.AllStatuses() {
		tbl.AddRow(statusPrinter(s).Sprint(s.Label()), counts[s])
	}
	fmt.Println(tbl)
}

func statusPrinter(s activity.Status) *color.Color {
	switch s {
	case activity.StatusInProgress:
		return color.New(color.FgHiBlue)
	case activity.StatusCompleted:
		return color.New(color.Faint)
	case activity.StatusDeactivated:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}
