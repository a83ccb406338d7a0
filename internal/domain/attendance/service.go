package attendance

import "context"

type AttendanceService interface {
	// MarkAttendance records one day's status after confirming the employee exists.
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (MarkAttendanceResponse, error)

	// GetEmployeeAttendance lists an existing employee's records, most recent first.
	GetEmployeeAttendance(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, error)
}
