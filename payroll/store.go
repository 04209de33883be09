/*
store.go - Persistence interface for employee records

PURPOSE:
  Defines the boundary between the payroll rules and the database.
  Implementations are injected by the composition root; nothing in this
  package holds a process-wide table.

CONTRACT:
  - Create assigns the ID and returns the stored record.
  - Employee numbers are unique. A write that would duplicate one fails
    with generic.ErrDuplicateEmployeeNumber.
  - Get/Update/Delete of an unknown ID fail with generic.ErrEntityNotFound.
  - Driver failures surface as generic.ErrStorageFailure.
  - Delete is a hard delete.

IMPLEMENTATIONS:
  - store/sqlite: SQLite with migrations
  - store/memory: In-memory for testing

SEE ALSO:
  - service.go: The only caller
*/
package payroll

import (
	"context"

	"github.com/warp/payroll-engine/generic"
)

//go:generate mockgen -source=store.go -destination=mock/store_mock.go -package=mock_payroll

// Store handles persistence of employee records.
type Store interface {
	// CreateEmployee inserts emp (ID ignored) and returns it with its new ID.
	CreateEmployee(ctx context.Context, emp Employee) (Employee, error)

	// GetEmployee returns a single employee.
	GetEmployee(ctx context.Context, id generic.EntityID) (Employee, error)

	// ListEmployees returns all employees ordered by last name, then first name.
	ListEmployees(ctx context.Context) ([]Employee, error)

	// UpdateEmployee replaces every field of the employee with emp.ID.
	UpdateEmployee(ctx context.Context, emp Employee) (Employee, error)

	// DeleteEmployee removes the employee.
	DeleteEmployee(ctx context.Context, id generic.EntityID) error

	// EmployeeNumberExists checks if the number is taken by any employee.
	EmployeeNumberExists(ctx context.Context, number string) (bool, error)
}

// ResettableStore is implemented by stores that can be wiped, used by the
// demo scenarios.
type ResettableStore interface {
	Store
	Reset(ctx context.Context) error
}
