package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hrms-lite-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite-go/internal/domain/employee"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// MarkAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.MarkAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MarkAttendanceResponse{}, err
	}

	// The repository leaves employee existence to its caller.
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.MarkAttendanceResponse{}, err
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       req.ParsedDate(),
		Status:     req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, attendance.ErrAttendanceAlreadyMarked):
			slog.InfoContext(ctx, "duplicate attendance rejected", "employee_id", req.EmployeeID, "date", req.Date)
			return attendance.MarkAttendanceResponse{}, err
		case errors.Is(err, attendance.ErrInvalidEmployeeReference):
			// employee deleted between the existence check and the insert
			slog.WarnContext(ctx, "attendance referenced a vanished employee", "employee_id", req.EmployeeID)
			return attendance.MarkAttendanceResponse{}, err
		case errors.Is(err, attendance.ErrInvalidStatus):
			return attendance.MarkAttendanceResponse{}, err
		}
		slog.ErrorContext(ctx, "failed to mark attendance", "employee_id", req.EmployeeID, "error", err)
		return attendance.MarkAttendanceResponse{}, fmt.Errorf("mark attendance: %w", err)
	}

	slog.InfoContext(ctx, "attendance marked", "record_id", created.ID, "employee_id", created.EmployeeID, "status", created.Status)
	return attendance.MarkAttendanceResponse{RecordID: created.ID}, nil
}

// GetEmployeeAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetEmployeeAttendance(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	if filter.EmployeeID <= 0 {
		return nil, employee.ErrEmployeeNotFound
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, filter.EmployeeID); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByEmployee(ctx, filter.EmployeeID, filter.ParsedDate())
	if err != nil {
		return nil, fmt.Errorf("get employee attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.NewAttendanceResponse(rec))
	}
	return responses, nil
}
