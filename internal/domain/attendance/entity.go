package attendance

import (
	"time"
)

type Attendance struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	Status     Status
}

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPresent, StatusAbsent:
		return true
	}
	return false
}

// DateOf truncates t to its calendar date at UTC midnight, the form dates are stored in.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
