package payroll

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/warp/payroll-engine/generic"
)

// =============================================================================
// SERVICE
// =============================================================================

// Options tunes the service.
type Options struct {
	// MaxNumberAttempts bounds how many employee numbers are drawn before a
	// create or update gives up on collisions.
	MaxNumberAttempts int

	// RegenerateNumberOnUpdate draws a fresh employee number on every update,
	// derived from the possibly changed last name and date of birth. When
	// false the existing number is kept.
	RegenerateNumberOnUpdate bool
}

func DefaultOptions() Options {
	return Options{MaxNumberAttempts: 5, RegenerateNumberOnUpdate: true}
}

// Service is the entry point used by transports.
type Service struct {
	store    Store
	numbers  *NumberGenerator
	validate *validator.Validate
	logger   *zap.Logger
	opts     Options

	// mu serializes the exists-check and write of a new employee number.
	mu sync.Mutex

	// inflight collapses identical concurrent pay computations.
	inflight singleflight.Group
}

// NewService wires a service. A nil generator uses the process random
// source; a nil logger discards logs.
func NewService(store Store, numbers *NumberGenerator, logger *zap.Logger, opts Options) *Service {
	if numbers == nil {
		numbers = NewNumberGenerator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.MaxNumberAttempts < 1 {
		opts.MaxNumberAttempts = 1
	}
	return &Service{
		store:    store,
		numbers:  numbers,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger.Named("payroll.service"),
		opts:     opts,
	}
}

// CreateEmployee validates the input, assigns an employee number and stores
// the record.
func (s *Service) CreateEmployee(ctx context.Context, in EmployeeInput) (Employee, error) {
	emp, err := s.buildEmployee(in)
	if err != nil {
		return Employee{}, err
	}

	created, err := s.withNewNumber(ctx, in, "", func(number string) (Employee, error) {
		emp.EmployeeNumber = number
		return s.store.CreateEmployee(ctx, emp)
	})
	if err != nil {
		return Employee{}, err
	}

	s.logger.Info("employee created",
		zap.Int64("id", int64(created.ID)),
		zap.String("employee_number", created.EmployeeNumber),
	)
	return created, nil
}

// UpdateEmployee replaces every field of an existing employee.
func (s *Service) UpdateEmployee(ctx context.Context, id generic.EntityID, in EmployeeInput) (Employee, error) {
	emp, err := s.buildEmployee(in)
	if err != nil {
		return Employee{}, err
	}
	emp.ID = id

	existing, err := s.store.GetEmployee(ctx, id)
	if err != nil {
		return Employee{}, err
	}

	if !s.opts.RegenerateNumberOnUpdate {
		emp.EmployeeNumber = existing.EmployeeNumber
		updated, err := s.store.UpdateEmployee(ctx, emp)
		if err != nil {
			return Employee{}, err
		}
		s.logger.Info("employee updated", zap.Int64("id", int64(id)))
		return updated, nil
	}

	updated, err := s.withNewNumber(ctx, in, existing.EmployeeNumber, func(number string) (Employee, error) {
		emp.EmployeeNumber = number
		return s.store.UpdateEmployee(ctx, emp)
	})
	if err != nil {
		return Employee{}, err
	}

	if updated.EmployeeNumber != existing.EmployeeNumber {
		s.logger.Info("employee number regenerated on update",
			zap.Int64("id", int64(id)),
			zap.String("previous", existing.EmployeeNumber),
			zap.String("current", updated.EmployeeNumber),
		)
	}
	return updated, nil
}

// GetEmployee returns a single employee.
func (s *Service) GetEmployee(ctx context.Context, id generic.EntityID) (Employee, error) {
	return s.store.GetEmployee(ctx, id)
}

// ListEmployees returns all employees ordered by name.
func (s *Service) ListEmployees(ctx context.Context) ([]Employee, error) {
	return s.store.ListEmployees(ctx)
}

// DeleteEmployee hard-deletes an employee.
func (s *Service) DeleteEmployee(ctx context.Context, id generic.EntityID) error {
	if err := s.store.DeleteEmployee(ctx, id); err != nil {
		return err
	}
	s.logger.Info("employee deleted", zap.Int64("id", int64(id)))
	return nil
}

// ComputePay resolves the employee and computes pay over [startDate, endDate].
// Identical requests that arrive while one is running share its result.
//
// The shared work is detached from any one caller's cancellation; each caller
// stops waiting when its own ctx is done.
func (s *Service) ComputePay(ctx context.Context, id generic.EntityID, startDate, endDate string) (PayBreakdown, error) {
	if strings.TrimSpace(startDate) == "" || strings.TrimSpace(endDate) == "" {
		return PayBreakdown{}, &generic.ValidationError{Message: "startDate and endDate are required"}
	}

	key := fmt.Sprintf("%d|%s|%s", id, startDate, endDate)
	ch := s.inflight.DoChan(key, func() (any, error) {
		return s.computePay(context.WithoutCancel(ctx), id, startDate, endDate)
	})

	select {
	case <-ctx.Done():
		return PayBreakdown{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return PayBreakdown{}, res.Err
		}
		if res.Shared {
			s.logger.Debug("pay computation shared", zap.String("key", key))
		}
		return res.Val.(PayBreakdown), nil
	}
}

func (s *Service) computePay(ctx context.Context, id generic.EntityID, startDate, endDate string) (PayBreakdown, error) {
	emp, err := s.store.GetEmployee(ctx, id)
	if err != nil {
		return PayBreakdown{}, err
	}

	period, err := generic.ParsePeriod(startDate, endDate)
	if err != nil {
		return PayBreakdown{}, err
	}

	result, err := Compute(emp, period)
	if err != nil {
		return PayBreakdown{}, err
	}

	s.logger.Debug("take-home pay computed",
		zap.Int64("id", int64(id)),
		zap.Stringer("period", period),
		zap.Int("working_days", result.WorkingDays),
		zap.Int("birthday_days", result.BirthdayDays),
		zap.String("take_home_pay", result.TakeHomePay.StringFixed()),
	)
	return result, nil
}

// =============================================================================
// HELPERS
// =============================================================================

// buildEmployee validates the input and converts it to an Employee without
// ID or number.
func (s *Service) buildEmployee(in EmployeeInput) (Employee, error) {
	in = in.normalize()
	if err := s.validate.Struct(in); err != nil {
		return Employee{}, translateValidation(err)
	}

	dob, err := generic.ParseDateField("dateOfBirth", in.DateOfBirth)
	if err != nil {
		return Employee{}, err
	}
	// 0001-01-01 is the zero TimePoint, which Compute treats as unset.
	if dob.IsZero() {
		return Employee{}, &generic.DateError{Field: "dateOfBirth", Input: in.DateOfBirth}
	}
	if in.DailyRate.IsNegative() {
		return Employee{}, &generic.ValidationError{Field: "dailyRate", Message: "must not be negative"}
	}
	if in.WorkingDays.Indices().Len() == 0 {
		return Employee{}, &generic.ValidationError{Field: "workingDays", Message: "no recognized weekday"}
	}
	if unknown := in.WorkingDays.Unknown(); len(unknown) > 0 {
		s.logger.Warn("unrecognized working day labels will be ignored in pay computation",
			zap.Any("labels", unknown))
	}

	return Employee{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		MiddleName:  in.MiddleName,
		DateOfBirth: dob,
		DailyRate:   *in.DailyRate,
		WorkingDays: in.WorkingDays,
	}, nil
}

// withNewNumber draws employee numbers until write succeeds without a
// collision. current is the number the record already holds, if any; drawing
// it again is not a collision.
func (s *Service) withNewNumber(ctx context.Context, in EmployeeInput, current string, write func(number string) (Employee, error)) (Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for attempt := 1; attempt <= s.opts.MaxNumberAttempts; attempt++ {
		number, err := s.numbers.Generate(in.LastName, in.DateOfBirth)
		if err != nil {
			return Employee{}, err
		}

		if number != current {
			taken, err := s.store.EmployeeNumberExists(ctx, number)
			if err != nil {
				return Employee{}, err
			}
			if taken {
				s.logger.Warn("employee number collision, retrying",
					zap.String("employee_number", number), zap.Int("attempt", attempt))
				continue
			}
		}

		emp, err := write(number)
		if errors.Is(err, generic.ErrDuplicateEmployeeNumber) {
			s.logger.Warn("employee number rejected by store, retrying",
				zap.String("employee_number", number), zap.Int("attempt", attempt))
			continue
		}
		return emp, err
	}
	return Employee{}, fmt.Errorf("%w: no free number after %d attempts",
		generic.ErrDuplicateEmployeeNumber, s.opts.MaxNumberAttempts)
}

// inputFieldNames maps struct fields to their JSON names for messages.
var inputFieldNames = map[string]string{
	"FirstName":   "firstName",
	"LastName":    "lastName",
	"DateOfBirth": "dateOfBirth",
	"DailyRate":   "dailyRate",
	"WorkingDays": "workingDays",
}

func translateValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &generic.ValidationError{Message: err.Error()}
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name, ok := inputFieldNames[fe.StructField()]
		if !ok {
			name = fe.Field()
		}
		fields = append(fields, name)
	}
	return &generic.ValidationError{
		Field:   strings.Join(fields, ","),
		Message: "missing required fields",
	}
}
