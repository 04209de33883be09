package generic

import (
	"fmt"
	"strings"
	"time"
)

// =============================================================================
// TIME POINT - Calendar date (this IS a calendar-day payroll system)
// =============================================================================

// DateLayout is the wire and storage format of every date.
const DateLayout = "2006-01-02"

// TimePoint is a calendar date. The clock part is always midnight UTC so
// that day arithmetic never crosses a daylight-saving boundary.
type TimePoint struct {
	Time time.Time
}

// Constructors
func NewTimePoint(year int, month time.Month, day int) TimePoint {
	return TimePoint{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func Today() TimePoint {
	now := time.Now()
	return NewTimePoint(now.Year(), now.Month(), now.Day())
}

// ParseDate parses "YYYY-MM-DD". A full RFC 3339 timestamp is also accepted
// and truncated to the calendar date it names.
func ParseDate(s string) (TimePoint, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return NewTimePoint(t.Year(), t.Month(), t.Day()), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return NewTimePoint(t.Year(), t.Month(), t.Day()), nil
	}
	return TimePoint{}, &DateError{Input: s}
}

// Comparison
func (tp TimePoint) Before(other TimePoint) bool        { return tp.Time.Before(other.Time) }
func (tp TimePoint) Equal(other TimePoint) bool         { return tp.Time.Equal(other.Time) }
func (tp TimePoint) After(other TimePoint) bool         { return tp.Time.After(other.Time) }
func (tp TimePoint) BeforeOrEqual(other TimePoint) bool { return !tp.After(other) }
func (tp TimePoint) AfterOrEqual(other TimePoint) bool  { return !tp.Before(other) }

// Arithmetic
func (tp TimePoint) AddDays(n int) TimePoint  { return TimePoint{Time: tp.Time.AddDate(0, 0, n)} }
func (tp TimePoint) AddYears(n int) TimePoint { return TimePoint{Time: tp.Time.AddDate(n, 0, 0)} }

// Properties
func (tp TimePoint) Year() int             { return tp.Time.Year() }
func (tp TimePoint) Month() time.Month     { return tp.Time.Month() }
func (tp TimePoint) Day() int              { return tp.Time.Day() }
func (tp TimePoint) Weekday() time.Weekday { return tp.Time.Weekday() }
func (tp TimePoint) IsZero() bool          { return tp.Time.IsZero() }

// SameMonthDay reports whether both dates fall on the same month and day,
// ignoring the year.
func (tp TimePoint) SameMonthDay(other TimePoint) bool {
	return tp.Month() == other.Month() && tp.Day() == other.Day()
}

func (tp TimePoint) String() string { return tp.Time.Format(DateLayout) }

// =============================================================================
// TIME UTILITIES
// =============================================================================

// DaysBetween counts calendar days from one date to another (to - from).
func DaysBetween(from, to TimePoint) int { return int(to.Time.Sub(from.Time).Hours() / 24) }

// DateError reports an unparsable date. It unwraps to ErrInvalidDate.
type DateError struct {
	Field string
	Input string
}

func (e *DateError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s %q (use YYYY-MM-DD)", e.Field, e.Input)
	}
	return fmt.Sprintf("invalid date %q (use YYYY-MM-DD)", e.Input)
}

func (e *DateError) Unwrap() error { return ErrInvalidDate }

// ParseDateField is ParseDate with the offending field named in the error.
func ParseDateField(field, s string) (TimePoint, error) {
	tp, err := ParseDate(s)
	if err != nil {
		return TimePoint{}, &DateError{Field: field, Input: s}
	}
	return tp, nil
}
