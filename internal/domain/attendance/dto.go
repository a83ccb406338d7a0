package attendance

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hrms-lite-go/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"`
	Status     Status `json:"status"`

	date time.Time
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs.Add("employee_id", "employee_id must be a positive integer")
	}

	r.Date = strings.TrimSpace(r.Date)
	if r.Date == "" {
		errs.Add("date", "date is required")
	} else if d, ok := validator.IsValidDate(r.Date); !ok {
		errs.Add("date", "date must be in YYYY-MM-DD format")
	} else {
		r.date = d
	}

	if r.Status == "" {
		errs.Add("status", "status is required")
	} else if !r.Status.IsValid() {
		errs.Add("status", "status must be one of: Present, Absent")
	}

	return errs.Err()
}

// ParsedDate is the request date at UTC midnight. Valid only after Validate succeeds.
func (r *MarkAttendanceRequest) ParsedDate() time.Time {
	return r.date
}

type MarkAttendanceResponse struct {
	RecordID int64 `json:"record_id"`
}

type AttendanceResponse struct {
	ID         int64  `json:"id"`
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"`
	Status     Status `json:"status"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date.Format(validator.DateLayout),
		Status:     a.Status,
	}
}

// AttendanceFilter selects one employee's records, optionally for a single date.
type AttendanceFilter struct {
	EmployeeID int64
	Date       *string

	date *time.Time
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.EmployeeID <= 0 {
		errs.Add("employee_id", "employee_id must be a positive integer")
	}

	if f.Date != nil && strings.TrimSpace(*f.Date) != "" {
		d, ok := validator.IsValidDate(strings.TrimSpace(*f.Date))
		if !ok {
			errs.Add("attendance_date", "attendance_date must be in YYYY-MM-DD format")
		} else {
			f.date = &d
		}
	}

	return errs.Err()
}

// ParsedDate is the optional date filter. Valid only after Validate succeeds.
func (f *AttendanceFilter) ParsedDate() *time.Time {
	return f.date
}
