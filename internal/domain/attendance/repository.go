package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts one attendance record. It returns ErrAttendanceAlreadyMarked when a
	// record for the same employee and date exists, whether caught by the pre-check or by
	// the unique constraint, and ErrInvalidEmployeeReference when the employee is missing.
	// Employee existence is the caller's responsibility.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByEmployeeAndDate returns nil, nil when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*Attendance, error)

	// ListByEmployee returns the employee's records, most recent date first,
	// optionally restricted to a single date.
	ListByEmployee(ctx context.Context, employeeID int64, date *time.Time) ([]Attendance, error)

	CountByEmployee(ctx context.Context, employeeID int64) (int64, error)
}
