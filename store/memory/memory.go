// Package memory provides an in-memory payroll.Store.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/warp/payroll-engine/generic"
	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu        sync.RWMutex
	nextID    generic.EntityID
	employees map[generic.EntityID]payroll.Employee
	numbers   map[string]generic.EntityID
}

func New() *Memory {
	return &Memory{
		nextID:    1,
		employees: make(map[generic.EntityID]payroll.Employee),
		numbers:   make(map[string]generic.EntityID),
	}
}

func (m *Memory) CreateEmployee(_ context.Context, emp payroll.Employee) (payroll.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.numbers[emp.EmployeeNumber]; taken {
		return payroll.Employee{}, generic.ErrDuplicateEmployeeNumber
	}

	emp.ID = m.nextID
	m.nextID++
	m.putLocked(emp)
	return cloneEmployee(emp), nil
}

func (m *Memory) GetEmployee(_ context.Context, id generic.EntityID) (payroll.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	emp, ok := m.employees[id]
	if !ok {
		return payroll.Employee{}, generic.ErrEntityNotFound
	}
	return cloneEmployee(emp), nil
}

func (m *Memory) ListEmployees(_ context.Context) ([]payroll.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]payroll.Employee, 0, len(m.employees))
	for _, emp := range m.employees {
		result = append(result, cloneEmployee(emp))
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].LastName != result[j].LastName {
			return result[i].LastName < result[j].LastName
		}
		if result[i].FirstName != result[j].FirstName {
			return result[i].FirstName < result[j].FirstName
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (m *Memory) UpdateEmployee(_ context.Context, emp payroll.Employee) (payroll.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.employees[emp.ID]
	if !ok {
		return payroll.Employee{}, generic.ErrEntityNotFound
	}
	if owner, taken := m.numbers[emp.EmployeeNumber]; taken && owner != emp.ID {
		return payroll.Employee{}, generic.ErrDuplicateEmployeeNumber
	}

	delete(m.numbers, existing.EmployeeNumber)
	m.putLocked(emp)
	return cloneEmployee(emp), nil
}

func (m *Memory) DeleteEmployee(_ context.Context, id generic.EntityID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.employees[id]
	if !ok {
		return generic.ErrEntityNotFound
	}
	delete(m.numbers, existing.EmployeeNumber)
	delete(m.employees, id)
	return nil
}

func (m *Memory) EmployeeNumberExists(_ context.Context, number string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, taken := m.numbers[number]
	return taken, nil
}

// Reset drops every employee and restarts ID assignment.
func (m *Memory) Reset(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID = 1
	m.employees = make(map[generic.EntityID]payroll.Employee)
	m.numbers = make(map[string]generic.EntityID)
	return nil
}

func (m *Memory) putLocked(emp payroll.Employee) {
	emp = cloneEmployee(emp)
	m.employees[emp.ID] = emp
	m.numbers[emp.EmployeeNumber] = emp.ID
}

// cloneEmployee copies the working-day slice so callers can't mutate stored state.
func cloneEmployee(emp payroll.Employee) payroll.Employee {
	emp.WorkingDays = append(payroll.WorkingDays{}, emp.WorkingDays...)
	return emp
}
