package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hrms-lite-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeExists):
		Conflict(w, "Employee with this ID or email already exists")
	case errors.Is(err, employee.ErrInvalidEmployee):
		BadRequest(w, "Employee data rejected", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceAlreadyMarked):
		Conflict(w, "Attendance already marked for this employee and date")
	case errors.Is(err, attendance.ErrInvalidEmployeeReference):
		NotFound(w, "Employee does not exist")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Status must be Present or Absent", nil)

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
