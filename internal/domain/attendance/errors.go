package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceAlreadyMarked  = errors.New("attendance already marked for this employee and date")
	ErrInvalidEmployeeReference = errors.New("attendance references an employee that does not exist")
	ErrInvalidStatus            = errors.New("attendance status must be Present or Absent")
)
