package employee

import (
	"strings"

	"github.com/cmlabs-hris/hrms-lite-go/internal/pkg/validator"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// Normalize trims surrounding whitespace from every field.
func (r *CreateEmployeeRequest) Normalize() {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Department = strings.TrimSpace(r.Department)
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	} else if validator.ExceedsLength(r.EmployeeID, MaxEmployeeIDLength) {
		errs.Add("employee_id", "employee_id must not exceed 20 characters")
	}

	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	} else if validator.ExceedsLength(r.Name, MaxNameLength) {
		errs.Add("name", "name must not exceed 50 characters")
	}

	if validator.IsEmpty(r.Email) {
		errs.Add("email", "email is required")
	} else if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "invalid email format")
	} else if validator.ExceedsLength(r.Email, MaxEmailLength) {
		errs.Add("email", "email must not exceed 100 characters")
	}

	if validator.IsEmpty(r.Department) {
		errs.Add("department", "department is required")
	} else if validator.ExceedsLength(r.Department, MaxDepartmentLength) {
		errs.Add("department", "department must not exceed 50 characters")
	}

	return errs.Err()
}

type EmployeeResponse struct {
	ID         int64  `json:"id"`
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	CreatedAt  string `json:"created_at"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		Name:       e.Name,
		Email:      e.Email,
		Department: e.Department,
		CreatedAt:  e.CreatedAt.Format(validator.DateLayout),
	}
}

// EmployeeFilter is the skip/limit page of ListEmployees.
type EmployeeFilter struct {
	Skip  int
	Limit int
}

func (f *EmployeeFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Skip < 0 {
		errs.Add("skip", "skip must be greater than or equal to 0")
	}
	if f.Limit < 0 {
		errs.Add("limit", "limit must be greater than or equal to 0")
	} else if f.Limit > MaxListLimit {
		errs.Add("limit", "limit must not exceed 1000")
	}

	return errs.Err()
}
