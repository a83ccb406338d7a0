package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeExists   = errors.New("employee with this ID or email already exists")
	ErrInvalidEmployee  = errors.New("employee record rejected by storage constraints")
)
