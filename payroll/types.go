/*
Package payroll holds the employee record model and the take-home pay rules.

PURPOSE:
  Everything with real logic lives here: the employee-number format, the
  working-day schedule and the day-by-day pay accrual. Persistence and HTTP
  are collaborators that talk to this package through Store and Service.

KEY CONCEPTS:
  - Employee:        The stored record
  - EmployeeInput:   Fields a caller supplies on create/update
  - WorkingDays:     Ordered weekday labels, persisted comma-joined
  - NumberGenerator: Builds LAS-00042-15MAR1990 style employee numbers
  - Compute:         Accrues pay over an inclusive Period

PAY RULES:
  For every day in [start, end]:
    working day  -> +2 x daily rate
    birthday     -> +1 x daily rate (month/day match, year ignored)
  Both can apply to the same day.

SEE ALSO:
  - calculator.go: The accrual loop
  - service.go: Create/update/delete/compute orchestration
  - store/sqlite: Persistent Store
*/
package payroll

import (
	"strings"

	"github.com/warp/payroll-engine/generic"
)

// =============================================================================
// EMPLOYEE
// =============================================================================

// Employee is a stored employee record.
type Employee struct {
	ID             generic.EntityID
	EmployeeNumber string
	FirstName      string
	LastName       string
	MiddleName     string // empty when absent
	DateOfBirth    generic.TimePoint
	DailyRate      generic.Amount
	WorkingDays    WorkingDays
}

// FullName returns "Last, First Middle".
func (e Employee) FullName() string {
	name := e.LastName + ", " + e.FirstName
	if e.MiddleName != "" {
		name += " " + e.MiddleName
	}
	return name
}

// EmployeeInput carries the caller-supplied fields of a create or update.
// Dates stay strings so that parsing failures surface as InvalidInput here
// rather than in the transport layer.
type EmployeeInput struct {
	FirstName   string          `validate:"required"`
	LastName    string          `validate:"required"`
	MiddleName  string
	DateOfBirth string          `validate:"required"`
	DailyRate   *generic.Amount `validate:"required"`
	WorkingDays WorkingDays     `validate:"required,min=1"`
}

// normalize trims free-text fields.
func (in EmployeeInput) normalize() EmployeeInput {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.MiddleName = strings.TrimSpace(in.MiddleName)
	in.DateOfBirth = strings.TrimSpace(in.DateOfBirth)
	return in
}

// PayBreakdown is the result of a pay computation.
type PayBreakdown struct {
	Period       generic.Period
	WorkingDays  int            // days in range that were scheduled working days
	BirthdayDays int            // days in range matching the birthday (0 or more)
	WorkingPay   generic.Amount // WorkingDays x 2 x rate
	BirthdayPay  generic.Amount // BirthdayDays x rate
	TakeHomePay  generic.Amount // WorkingPay + BirthdayPay
}
