package payroll

import (
	"github.com/warp/payroll-engine/generic"
)

// =============================================================================
// TAKE-HOME PAY
// =============================================================================

const (
	workingDayMultiplier = 2 // a scheduled working day pays double the daily rate
	birthdayMultiplier   = 1 // the birthday bonus is one daily rate
)

// ComputeTakeHomePay parses the range and returns the total pay for it.
func ComputeTakeHomePay(emp Employee, startDate, endDate string) (generic.Amount, error) {
	period, err := generic.ParsePeriod(startDate, endDate)
	if err != nil {
		return generic.Amount{}, err
	}
	breakdown, err := Compute(emp, period)
	if err != nil {
		return generic.Amount{}, err
	}
	return breakdown.TakeHomePay, nil
}

// Compute accrues pay for every day of the period.
//
// The weekday set and the birthday are resolved once; the loop only does
// two O(1) checks per day.
func Compute(emp Employee, period generic.Period) (PayBreakdown, error) {
	if period.End.Before(period.Start) {
		return PayBreakdown{}, generic.ErrInvalidPeriod
	}
	if emp.DateOfBirth.IsZero() {
		return PayBreakdown{}, &generic.DateError{Field: "dateOfBirth", Input: emp.DateOfBirth.String()}
	}

	schedule := emp.WorkingDays.Indices()
	birthday := emp.DateOfBirth

	var workingDays, birthdayDays int
	period.Each(func(day generic.TimePoint) {
		if schedule.Has(day.Weekday()) {
			workingDays++
		}
		if day.SameMonthDay(birthday) {
			birthdayDays++
		}
	})

	workingPay := emp.DailyRate.MulInt(int64(workingDays * workingDayMultiplier))
	birthdayPay := emp.DailyRate.MulInt(int64(birthdayDays * birthdayMultiplier))

	return PayBreakdown{
		Period:       period,
		WorkingDays:  workingDays,
		BirthdayDays: birthdayDays,
		WorkingPay:   workingPay,
		BirthdayPay:  birthdayPay,
		TakeHomePay:  workingPay.Add(birthdayPay),
	}, nil
}
