package generic

// =============================================================================
// PERIOD - Inclusive date range
// =============================================================================

// Period is an inclusive calendar range [Start, End].
// Pay is ALWAYS computed for a period, never for an open-ended range.
//
// Examples:
//   - A single day: Start == End
//   - A semi-monthly cutoff: Mar 1 - Mar 15
//   - A calendar year: Jan 1 - Dec 31
type Period struct {
	Start TimePoint
	End   TimePoint
}

// NewPeriod builds a period, rejecting an end before the start.
func NewPeriod(start, end TimePoint) (Period, error) {
	if end.Before(start) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{Start: start, End: end}, nil
}

// ParsePeriod parses both bounds and validates their order.
func ParsePeriod(startDate, endDate string) (Period, error) {
	start, err := ParseDateField("startDate", startDate)
	if err != nil {
		return Period{}, err
	}
	end, err := ParseDateField("endDate", endDate)
	if err != nil {
		return Period{}, err
	}
	return NewPeriod(start, end)
}

// Contains returns true if the date is within the period [Start, End]
func (p Period) Contains(t TimePoint) bool {
	return t.AfterOrEqual(p.Start) && t.BeforeOrEqual(p.End)
}

// Len returns the number of days in the period, counting both ends.
func (p Period) Len() int {
	return DaysBetween(p.Start, p.End) + 1
}

// Each calls fn for every day in the period in ascending order.
func (p Period) Each(fn func(day TimePoint)) {
	for current := p.Start; current.BeforeOrEqual(p.End); current = current.AddDays(1) {
		fn(current)
	}
}

// Days returns all days in the period as a slice of TimePoints.
func (p Period) Days() []TimePoint {
	days := make([]TimePoint, 0, p.Len())
	p.Each(func(day TimePoint) { days = append(days, day) })
	return days
}

// SplitAt divides the period into [Start, mid] and [mid+1, End].
// ok is false when mid is outside the period or equal to End.
func (p Period) SplitAt(mid TimePoint) (first, second Period, ok bool) {
	if !p.Contains(mid) || mid.Equal(p.End) {
		return Period{}, Period{}, false
	}
	return Period{Start: p.Start, End: mid}, Period{Start: mid.AddDays(1), End: p.End}, true
}

// String returns a string representation of the period.
func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}
