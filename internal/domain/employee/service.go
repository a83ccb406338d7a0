package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// CreateEmployee validates and persists a new employee
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetEmployee retrieves a single employee by its surrogate id
	GetEmployee(ctx context.Context, id int64) (EmployeeResponse, error)

	// ListEmployees returns one page of employees in ascending id order
	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]EmployeeResponse, error)

	// DeleteEmployee deletes an employee together with its attendance records
	DeleteEmployee(ctx context.Context, id int64) error
}
