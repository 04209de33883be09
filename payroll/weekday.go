package payroll

import (
	"fmt"
	"strings"
	"time"

	"github.com/warp/payroll-engine/generic"
)

// =============================================================================
// WEEKDAY LABELS
// =============================================================================

// WeekdayLabel is the human label of a weekday as stored and sent over the wire.
type WeekdayLabel string

const (
	Sunday    WeekdayLabel = "Sunday"
	Monday    WeekdayLabel = "Monday"
	Tuesday   WeekdayLabel = "Tuesday"
	Wednesday WeekdayLabel = "Wednesday"
	Thursday  WeekdayLabel = "Thursday"
	Friday    WeekdayLabel = "Friday"
	Saturday  WeekdayLabel = "Saturday"
)

// weekdayLabels is indexed by time.Weekday (0 = Sunday).
var weekdayLabels = [7]WeekdayLabel{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// Index returns the calendar weekday of the label.
// ok is false for anything that is not one of the seven labels.
func (l WeekdayLabel) Index() (time.Weekday, bool) {
	for i, known := range weekdayLabels {
		if known == l {
			return time.Weekday(i), true
		}
	}
	return 0, false
}

// LabelFor returns the label of a calendar weekday.
func LabelFor(d time.Weekday) WeekdayLabel { return weekdayLabels[d] }

// =============================================================================
// WEEKDAY SET - O(1) membership for the accrual loop
// =============================================================================

// WeekdaySet marks which of the seven weekdays are included.
type WeekdaySet [7]bool

func (s WeekdaySet) Has(d time.Weekday) bool { return s[d] }

// Len counts the included weekdays.
func (s WeekdaySet) Len() int {
	n := 0
	for _, in := range s {
		if in {
			n++
		}
	}
	return n
}

// Indices lists the included weekdays in ascending order.
func (s WeekdaySet) Indices() []int {
	var out []int
	for i, in := range s {
		if in {
			out = append(out, i)
		}
	}
	return out
}

// =============================================================================
// WORKING DAYS - Ordered label list
// =============================================================================

// WorkingDays is an employee's schedule as supplied, order preserved.
type WorkingDays []WeekdayLabel

// Indices converts the labels to a weekday set. Unknown labels are dropped.
func (w WorkingDays) Indices() WeekdaySet {
	var set WeekdaySet
	for _, label := range w {
		if d, ok := label.Index(); ok {
			set[d] = true
		}
	}
	return set
}

// Unknown returns the labels that are not recognized weekdays.
func (w WorkingDays) Unknown() []WeekdayLabel {
	var out []WeekdayLabel
	for _, label := range w {
		if _, ok := label.Index(); !ok {
			out = append(out, label)
		}
	}
	return out
}

// String joins the labels with commas, the persisted representation.
func (w WorkingDays) String() string {
	parts := make([]string, len(w))
	for i, label := range w {
		parts[i] = string(label)
	}
	return strings.Join(parts, ",")
}

// ParseWorkingDays splits a persisted value on commas, trimming whitespace
// and dropping empty tokens. Labels are not checked here.
func ParseWorkingDays(s string) WorkingDays {
	if s == "" {
		return WorkingDays{}
	}
	var out WorkingDays
	for _, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		out = append(out, WeekdayLabel(token))
	}
	if out == nil {
		return WorkingDays{}
	}
	return out
}

// WorkingDaysFromIndices converts calendar weekday numbers (0 = Sunday) to
// labels, keeping the given order and skipping repeats.
func WorkingDaysFromIndices(indices []int) (WorkingDays, error) {
	var seen WeekdaySet
	out := make(WorkingDays, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i > 6 {
			return nil, &generic.ValidationError{
				Field:   "workingDayNumbers",
				Message: fmt.Sprintf("weekday number %d out of range 0-6", i),
			}
		}
		if seen[i] {
			continue
		}
		seen[i] = true
		out = append(out, weekdayLabels[i])
	}
	return out, nil
}
