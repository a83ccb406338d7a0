package employee

import (
	"time"
)

type Employee struct {
	ID         int64
	EmployeeID string
	Name       string
	Email      string
	Department string
	CreatedAt  time.Time
}

// Column limits of the employees table.
const (
	MaxEmployeeIDLength = 20
	MaxNameLength       = 50
	MaxEmailLength      = 100
	MaxDepartmentLength = 50
)
