/*
Package sqlite provides a SQLite-backed implementation of payroll.Store.

PURPOSE:
  Persists employee records in a single SQLite file (or ":memory:").
  In production the same patterns apply to PostgreSQL with only minor
  SQL dialect differences.

KEY TABLES:
  employees: One row per employee. working_days is the comma-joined label
             list, daily_rate the exact decimal string, dob YYYY-MM-DD.

INDEXES:
  - idx_employees_employee_number: UNIQUE, enforces the number invariant
  - idx_employees_name: List order (last name, first name)

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. The unique index is the final
  guard on employee numbers; a violation is reported as
  generic.ErrDuplicateEmployeeNumber so the service can retry.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging):
  - Multiple readers don't block
  - Single writer at a time

MIGRATION:
  Versioned SQL files under migrations/ are embedded in the binary and
  applied with golang-migrate on New().

USAGE:
  store, err := sqlite.New("./data/payroll.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - payroll/store.go: Interface definition
  - store/memory: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/warp/payroll-engine/generic"
	"github.com/warp/payroll-engine/payroll"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Store implements payroll.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if dbPath == ":memory:" {
		// Every new connection to :memory: is a fresh, empty database.
		db.SetMaxOpenConns(1)
	}

	store := NewWithDB(db)
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// NewWithDB wraps an already opened database whose schema is managed by
// the caller. No migrations are run.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate applies the embedded migrations up to the latest version.
// The migrate instance is not closed: its sqlite driver would close s.db.
func (s *Store) migrate() error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	defer src.Close()

	driver, err := migratesqlite.WithInstance(s.db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("migration instance: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// SchemaVersion returns the applied migration version.
func (s *Store) SchemaVersion(ctx context.Context) (uint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var version uint
	err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_migrations LIMIT 1").Scan(&version)
	if err != nil {
		return 0, generic.NewStorageError("read schema version", err)
	}
	return version, nil
}

// =============================================================================
// EMPLOYEE STORE (payroll.Store interface)
// =============================================================================

const employeeColumns = "id, employee_number, first_name, last_name, middle_name, dob, daily_rate, working_days"

// CreateEmployee inserts an employee and returns it with its assigned ID.
func (s *Store) CreateEmployee(ctx context.Context, emp payroll.Employee) (payroll.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO employees (employee_number, first_name, last_name, middle_name, dob, daily_rate, working_days, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.ExecContext(ctx, query,
		emp.EmployeeNumber, emp.FirstName, emp.LastName, nullString(emp.MiddleName),
		emp.DateOfBirth.String(), emp.DailyRate.String(), emp.WorkingDays.String(),
		now, now,
	)
	if isUniqueConstraintError(err) {
		return payroll.Employee{}, generic.ErrDuplicateEmployeeNumber
	}
	if err != nil {
		return payroll.Employee{}, generic.NewStorageError("insert employee", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return payroll.Employee{}, generic.NewStorageError("read employee id", err)
	}
	emp.ID = generic.EntityID(id)
	return emp, nil
}

// GetEmployee retrieves an employee by ID.
func (s *Store) GetEmployee(ctx context.Context, id generic.EntityID) (payroll.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		"SELECT "+employeeColumns+" FROM employees WHERE id = ?",
		int64(id),
	)
	emp, err := scanEmployee(row)
	if errors.Is(err, sql.ErrNoRows) {
		return payroll.Employee{}, generic.ErrEntityNotFound
	}
	if err != nil {
		return payroll.Employee{}, generic.NewStorageError("get employee", err)
	}
	return emp, nil
}

// ListEmployees returns all employees.
func (s *Store) ListEmployees(ctx context.Context) ([]payroll.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+employeeColumns+" FROM employees ORDER BY last_name, first_name, id",
	)
	if err != nil {
		return nil, generic.NewStorageError("list employees", err)
	}
	defer rows.Close()

	employees := []payroll.Employee{}
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, generic.NewStorageError("scan employee", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, generic.NewStorageError("list employees", err)
	}
	return employees, nil
}

// UpdateEmployee replaces all fields of an employee.
func (s *Store) UpdateEmployee(ctx context.Context, emp payroll.Employee) (payroll.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		UPDATE employees
		SET employee_number = ?, first_name = ?, last_name = ?, middle_name = ?,
			dob = ?, daily_rate = ?, working_days = ?, updated_at = ?
		WHERE id = ?
	`

	res, err := s.db.ExecContext(ctx, query,
		emp.EmployeeNumber, emp.FirstName, emp.LastName, nullString(emp.MiddleName),
		emp.DateOfBirth.String(), emp.DailyRate.String(), emp.WorkingDays.String(),
		time.Now().UTC().Format(time.RFC3339),
		int64(emp.ID),
	)
	if isUniqueConstraintError(err) {
		return payroll.Employee{}, generic.ErrDuplicateEmployeeNumber
	}
	if err != nil {
		return payroll.Employee{}, generic.NewStorageError("update employee", err)
	}
	if err := requireAffected(res); err != nil {
		return payroll.Employee{}, err
	}
	return emp, nil
}

// DeleteEmployee removes an employee.
func (s *Store) DeleteEmployee(ctx context.Context, id generic.EntityID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM employees WHERE id = ?", int64(id))
	if err != nil {
		return generic.NewStorageError("delete employee", err)
	}
	return requireAffected(res)
}

// EmployeeNumberExists checks if an employee number is taken.
func (s *Store) EmployeeNumberExists(ctx context.Context, number string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM employees WHERE employee_number = ?", number,
	).Scan(&count)
	if err != nil {
		return false, generic.NewStorageError("check employee number", err)
	}
	return count > 0, nil
}

// Reset deletes all employees and restarts ID assignment (demo only).
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, stmt := range []string{
		"DELETE FROM employees",
		"DELETE FROM sqlite_sequence WHERE name = 'employees'",
	} {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return generic.NewStorageError("reset", err)
		}
	}
	return nil
}

// Helper functions

type scanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row scanner) (payroll.Employee, error) {
	var (
		emp         payroll.Employee
		id          int64
		middleName  sql.NullString
		dob         string
		dailyRate   string
		workingDays string
	)
	if err := row.Scan(&id, &emp.EmployeeNumber, &emp.FirstName, &emp.LastName,
		&middleName, &dob, &dailyRate, &workingDays); err != nil {
		return payroll.Employee{}, err
	}

	var err error
	emp.ID = generic.EntityID(id)
	emp.MiddleName = middleName.String
	if emp.DateOfBirth, err = generic.ParseDate(dob); err != nil {
		return payroll.Employee{}, fmt.Errorf("employee %d: %w", id, err)
	}
	if emp.DailyRate, err = generic.ParseAmount(dailyRate); err != nil {
		return payroll.Employee{}, fmt.Errorf("employee %d: %w", id, err)
	}
	emp.WorkingDays = payroll.ParseWorkingDays(workingDays)
	return emp, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return generic.NewStorageError("rows affected", err)
	}
	if n == 0 {
		return generic.ErrEntityNotFound
	}
	return nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func isUniqueConstraintError(err error) bool {
	var se sqlite3.Error
	return errors.As(err, &se) && se.ExtendedCode == sqlite3.ErrConstraintUnique
}
