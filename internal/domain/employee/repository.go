package employee

import "context"

// EmployeeRepository is the only path to persisted employees.
//
// Failure variants are reported as errors: ErrEmployeeExists when employee_id or
// email is already taken, ErrEmployeeNotFound when the id does not exist. Any other
// error is a storage failure.
type EmployeeRepository interface {
	// Create inserts a new employee and returns it with its assigned id and created_at.
	Create(ctx context.Context, newEmployee Employee) (Employee, error)

	GetByID(ctx context.Context, id int64) (Employee, error)

	// List returns at most limit employees after skipping skip, ordered by id ascending.
	List(ctx context.Context, skip, limit int) ([]Employee, error)

	// Delete removes the employee and all of its attendance records atomically.
	// It returns the number of attendance records removed with it.
	Delete(ctx context.Context, id int64) (int64, error)
}
