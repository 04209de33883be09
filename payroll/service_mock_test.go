package payroll_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/warp/payroll-engine/generic"
	"github.com/warp/payroll-engine/payroll"
	mock_payroll "github.com/warp/payroll-engine/payroll/mock"
)

func setupMockService(t *testing.T, opts payroll.Options) (*mock_payroll.MockStore, *payroll.Service) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mock_payroll.NewMockStore(ctrl)
	return store, payroll.NewService(store, payroll.NewSeededNumberGenerator(21), nil, opts)
}

func TestService_CreateEmployee_RetriesOnStoreDuplicate(t *testing.T) {
	ctx := context.Background()
	store, svc := setupMockService(t, payroll.DefaultOptions())

	// The exists-check passes but a concurrent writer took the number first;
	// the unique constraint reports it and the service draws again.
	store.EXPECT().EmployeeNumberExists(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
	var numbers []string
	gomock.InOrder(
		store.EXPECT().CreateEmployee(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, emp payroll.Employee) (payroll.Employee, error) {
				numbers = append(numbers, emp.EmployeeNumber)
				return payroll.Employee{}, generic.ErrDuplicateEmployeeNumber
			}),
		store.EXPECT().CreateEmployee(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, emp payroll.Employee) (payroll.Employee, error) {
				numbers = append(numbers, emp.EmployeeNumber)
				emp.ID = 7
				return emp, nil
			}),
	)

	emp, err := svc.CreateEmployee(ctx, validInput())
	require.NoError(t, err)
	assert.Equal(t, generic.EntityID(7), emp.ID)
	require.Len(t, numbers, 2)
	assert.Equal(t, numbers[1], emp.EmployeeNumber)
}

func TestService_CreateEmployee_ExistsCheckFailure(t *testing.T) {
	store, svc := setupMockService(t, payroll.DefaultOptions())

	store.EXPECT().EmployeeNumberExists(gomock.Any(), gomock.Any()).
		Return(false, generic.NewStorageError("check employee number", errors.New("database is locked")))

	_, err := svc.CreateEmployee(context.Background(), validInput())
	assert.ErrorIs(t, err, generic.ErrStorageFailure)
}

func TestService_CreateEmployee_InvalidInputNeverTouchesStore(t *testing.T) {
	// No expectations: any store call fails the test.
	_, svc := setupMockService(t, payroll.DefaultOptions())

	in := validInput()
	in.FirstName = ""
	_, err := svc.CreateEmployee(context.Background(), in)

	var verr *generic.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "firstName", verr.Field)
	assert.Equal(t, "missing required fields", verr.Message)
}

func TestService_UpdateEmployee_RedrawingOwnNumberSkipsExistsCheck(t *testing.T) {
	store, svc := setupMockService(t, payroll.DefaultOptions())
	ctx := context.Background()

	// Ask the generator what it will draw, then pretend the record already holds it.
	current, err := payroll.NewSeededNumberGenerator(21).Generate("Dela Cruz", "1990-03-15")
	require.NoError(t, err)

	store.EXPECT().GetEmployee(gomock.Any(), generic.EntityID(3)).
		Return(payroll.Employee{ID: 3, EmployeeNumber: current}, nil)
	store.EXPECT().UpdateEmployee(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, emp payroll.Employee) (payroll.Employee, error) {
			return emp, nil
		})

	updated, err := svc.UpdateEmployee(ctx, 3, validInput())
	require.NoError(t, err)
	assert.Equal(t, current, updated.EmployeeNumber)
}

func TestService_ComputePay_UsesStoredEmployee(t *testing.T) {
	store, svc := setupMockService(t, payroll.DefaultOptions())

	store.EXPECT().GetEmployee(gomock.Any(), generic.EntityID(1)).Return(mwfEmployee(), nil)

	result, err := svc.ComputePay(context.Background(), 1, "2024-03-11", "2024-03-17")
	require.NoError(t, err)
	assert.Equal(t, "7000.00", result.TakeHomePay.StringFixed())
}

func TestService_ComputePay_BlankDatesNeverTouchStore(t *testing.T) {
	_, svc := setupMockService(t, payroll.DefaultOptions())

	_, err := svc.ComputePay(context.Background(), 1, "  ", "2024-03-17")
	assert.ErrorIs(t, err, generic.ErrInvalidInput)
}

func TestService_ComputePay_CancelledCallerDoesNotFailSharedCall(t *testing.T) {
	store, svc := setupMockService(t, payroll.DefaultOptions())

	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	// GIVEN: a lookup that holds until released and fails if its ctx was cancelled
	store.EXPECT().GetEmployee(gomock.Any(), generic.EntityID(1)).
		DoAndReturn(func(ctx context.Context, _ generic.EntityID) (payroll.Employee, error) {
			once.Do(func() { close(started) })
			<-release
			if err := ctx.Err(); err != nil {
				return payroll.Employee{}, generic.NewStorageError("get employee", err)
			}
			return mwfEmployee(), nil
		}).
		MinTimes(1)

	// WHEN: the first caller starts the computation and then goes away
	aCtx, cancel := context.WithCancel(context.Background())
	aErr := make(chan error, 1)
	go func() {
		_, err := svc.ComputePay(aCtx, 1, "2024-03-11", "2024-03-17")
		aErr <- err
	}()
	<-started
	cancel()
	assert.ErrorIs(t, <-aErr, context.Canceled)

	// AND: a second caller asks for the same computation
	type outcome struct {
		result payroll.PayBreakdown
		err    error
	}
	bDone := make(chan outcome, 1)
	go func() {
		r, err := svc.ComputePay(context.Background(), 1, "2024-03-11", "2024-03-17")
		bDone <- outcome{r, err}
	}()
	time.Sleep(20 * time.Millisecond)
	close(release)

	// THEN: the second caller gets the pay, not the first caller's cancellation
	b := <-bDone
	require.NoError(t, b.err)
	assert.Equal(t, "7000.00", b.result.TakeHomePay.StringFixed())
}
