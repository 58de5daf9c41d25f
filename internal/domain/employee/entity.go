package employee

import (
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
)

// NoDepartment is the bucket for employees without a department.
const NoDepartment = "No Department"

// Employee is a roster entry. The roster is owned by the identity service;
// attendance only reads it.
type Employee struct {
	ID           string
	EmployeeCode string
	Name         string
	Email        string
	Department   *string
	Role         user.Role
}

// DepartmentName returns the employee's department or NoDepartment.
func (e Employee) DepartmentName() string {
	if e.Department == nil || *e.Department == "" {
		return NoDepartment
	}
	return *e.Department
}

// DepartmentIndex maps employee ID to department name.
func DepartmentIndex(employees []Employee) map[string]string {
	index := make(map[string]string, len(employees))
	for _, e := range employees {
		index[e.ID] = e.DepartmentName()
	}
	return index
}
