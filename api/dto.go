/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the payroll model from the external contract. Field names follow the
  existing React frontend (camelCase).

COMPATIBILITY:
  Two frontend generations exist. Responses carry both shapes and requests
  accept either:
  - dob + workingDays (weekday labels)
  - dateOfBirth + workingDayNumbers (0 = Sunday ... 6 = Saturday)

VALIDATION:
  Presence checks are struct tags run by go-playground/validator in the
  handlers. Domain checks (date format, negative rate, unknown weekdays)
  stay in the payroll service.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"github.com/warp/payroll-engine/generic"
	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// EMPLOYEES
// =============================================================================

// EmployeeDTO represents an employee in API responses.
type EmployeeDTO struct {
	ID                int64          `json:"id"`
	EmployeeNumber    string         `json:"employeeNumber"`
	FirstName         string         `json:"firstName"`
	LastName          string         `json:"lastName"`
	MiddleName        *string        `json:"middleName"`
	DOB               string         `json:"dob"`
	DateOfBirth       string         `json:"dateOfBirth"`
	DailyRate         generic.Amount `json:"dailyRate"`
	WorkingDays       []string       `json:"workingDays"`
	WorkingDayNumbers []int          `json:"workingDayNumbers"`
}

// EmployeeRequest is the body of create and update.
type EmployeeRequest struct {
	FirstName         string          `json:"firstName" validate:"required"`
	LastName          string          `json:"lastName" validate:"required"`
	MiddleName        *string         `json:"middleName"`
	DOB               string          `json:"dob" validate:"required_without=DateOfBirth"`
	DateOfBirth       string          `json:"dateOfBirth" validate:"required_without=DOB"`
	DailyRate         *generic.Amount `json:"dailyRate" validate:"required"`
	WorkingDays       []string        `json:"workingDays" validate:"required_without=WorkingDayNumbers"`
	WorkingDayNumbers []int           `json:"workingDayNumbers" validate:"required_without=WorkingDays"`
}

// ComputePayRequest is the body of compute-pay.
type ComputePayRequest struct {
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
}

// ComputePayResponse carries the total and how it was made up.
type ComputePayResponse struct {
	TakeHomePay  generic.Amount `json:"takeHomePay"`
	StartDate    string         `json:"startDate"`
	EndDate      string         `json:"endDate"`
	Days         int            `json:"days"`
	WorkingDays  int            `json:"workingDays"`
	BirthdayDays int            `json:"birthdayDays"`
	WorkingPay   generic.Amount `json:"workingPay"`
	BirthdayPay  generic.Amount `json:"birthdayPay"`
}

// ErrorDTO is the body of every error response.
type ErrorDTO struct {
	Error string `json:"error"`
}

// ScenarioDTO describes a demo scenario.
type ScenarioDTO struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// LoadScenarioRequest is the body of scenario load.
type LoadScenarioRequest struct {
	ScenarioID string `json:"scenario_id" validate:"required"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func toEmployeeDTO(e payroll.Employee) EmployeeDTO {
	var middle *string
	if e.MiddleName != "" {
		m := e.MiddleName
		middle = &m
	}
	labels := make([]string, len(e.WorkingDays))
	for i, l := range e.WorkingDays {
		labels[i] = string(l)
	}
	numbers := e.WorkingDays.Indices().Indices()
	if numbers == nil {
		numbers = []int{}
	}
	return EmployeeDTO{
		ID:                int64(e.ID),
		EmployeeNumber:    e.EmployeeNumber,
		FirstName:         e.FirstName,
		LastName:          e.LastName,
		MiddleName:        middle,
		DOB:               e.DateOfBirth.String(),
		DateOfBirth:       e.DateOfBirth.String(),
		DailyRate:         e.DailyRate,
		WorkingDays:       labels,
		WorkingDayNumbers: numbers,
	}
}

// toInput converts a request into service input. A non-empty label list
// wins over numbers when both are sent.
func (req EmployeeRequest) toInput() (payroll.EmployeeInput, error) {
	in := payroll.EmployeeInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DOB,
		DailyRate:   req.DailyRate,
	}
	if req.MiddleName != nil {
		in.MiddleName = *req.MiddleName
	}
	if in.DateOfBirth == "" {
		in.DateOfBirth = req.DateOfBirth
	}

	if len(req.WorkingDays) > 0 {
		in.WorkingDays = make(payroll.WorkingDays, len(req.WorkingDays))
		for i, l := range req.WorkingDays {
			in.WorkingDays[i] = payroll.WeekdayLabel(l)
		}
		return in, nil
	}

	days, err := payroll.WorkingDaysFromIndices(req.WorkingDayNumbers)
	if err != nil {
		return payroll.EmployeeInput{}, err
	}
	in.WorkingDays = days
	return in, nil
}

func toComputePayResponse(b payroll.PayBreakdown) ComputePayResponse {
	return ComputePayResponse{
		TakeHomePay:  b.TakeHomePay,
		StartDate:    b.Period.Start.String(),
		EndDate:      b.Period.End.String(),
		Days:         b.Period.Len(),
		WorkingDays:  b.WorkingDays,
		BirthdayDays: b.BirthdayDays,
		WorkingPay:   b.WorkingPay,
		BirthdayPay:  b.BirthdayPay,
	}
}
