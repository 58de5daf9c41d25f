package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
)

// EmployeeRepository is a roster held in memory.
type EmployeeRepository struct {
	mu        sync.RWMutex
	employees map[string]employee.Employee
}

var _ employee.EmployeeRepository = (*EmployeeRepository)(nil)

func NewEmployeeRepository(employees ...employee.Employee) *EmployeeRepository {
	r := &EmployeeRepository{employees: make(map[string]employee.Employee, len(employees))}
	for _, e := range employees {
		r.employees[e.ID] = e
	}
	return r
}

// Put adds or replaces a roster entry.
func (r *EmployeeRepository) Put(e employee.Employee) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.employees[e.ID] = e
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *EmployeeRepository) GetByEmployeeCode(ctx context.Context, employeeCode string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.employees {
		if e.EmployeeCode == employeeCode {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *EmployeeRepository) ListByRole(ctx context.Context, role user.Role) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := []employee.Employee{}
	for _, e := range r.employees {
		if e.Role == role {
			list = append(list, e)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].EmployeeCode < list[j].EmployeeCode })
	return list, nil
}

func (r *EmployeeRepository) CountByRole(ctx context.Context, role user.Role) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total int64
	for _, e := range r.employees {
		if e.Role == role {
			total++
		}
	}
	return total, nil
}
