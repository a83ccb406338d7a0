package attendance

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cmlabs-hris/hrms-lite-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAttendanceRepo struct {
	createFn func(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error)
	listFn   func(ctx context.Context, employeeID int64, date *time.Time) ([]attendance.Attendance, error)
}

func (s stubAttendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	return s.createFn(ctx, a)
}

func (s stubAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*attendance.Attendance, error) {
	return nil, nil
}

func (s stubAttendanceRepo) ListByEmployee(ctx context.Context, employeeID int64, date *time.Time) ([]attendance.Attendance, error) {
	return s.listFn(ctx, employeeID, date)
}

func (s stubAttendanceRepo) CountByEmployee(ctx context.Context, employeeID int64) (int64, error) {
	return 0, nil
}

// stubEmployeeRepo knows exactly one employee.
type stubEmployeeRepo struct {
	employee.EmployeeRepository
	existingID int64
}

func (s stubEmployeeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	if id != s.existingID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{ID: id, EmployeeID: "E1"}, nil
}

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestAttendanceService_MarkAttendance_Success(t *testing.T) {
	repo := stubAttendanceRepo{
		createFn: func(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
			assert.Equal(t, int64(1), a.EmployeeID)
			assert.Equal(t, day("2024-01-05"), a.Date)
			assert.Equal(t, attendance.StatusPresent, a.Status)
			a.ID = 42
			return a, nil
		},
	}
	svc := NewAttendanceService(repo, stubEmployeeRepo{existingID: 1})

	resp, err := svc.MarkAttendance(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: 1, Date: "2024-01-05", Status: attendance.StatusPresent,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.RecordID)
}

func TestAttendanceService_MarkAttendance_EmployeeMissing(t *testing.T) {
	repo := stubAttendanceRepo{
		createFn: func(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
			t.Fatal("attendance must not be written for a missing employee")
			return attendance.Attendance{}, nil
		},
	}
	svc := NewAttendanceService(repo, stubEmployeeRepo{existingID: 1})

	_, err := svc.MarkAttendance(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: 2, Date: "2024-01-05", Status: attendance.StatusAbsent,
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAttendanceService_MarkAttendance_Duplicate(t *testing.T) {
	repo := stubAttendanceRepo{
		createFn: func(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
			return attendance.Attendance{}, attendance.ErrAttendanceAlreadyMarked
		},
	}
	svc := NewAttendanceService(repo, stubEmployeeRepo{existingID: 1})

	_, err := svc.MarkAttendance(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: 1, Date: "2024-01-05", Status: attendance.StatusAbsent,
	})

	assert.ErrorIs(t, err, attendance.ErrAttendanceAlreadyMarked)
}

func TestAttendanceService_MarkAttendance_InvalidReference(t *testing.T) {
	repo := stubAttendanceRepo{
		createFn: func(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
			return attendance.Attendance{}, fmt.Errorf("employee 1: %w", attendance.ErrInvalidEmployeeReference)
		},
	}
	svc := NewAttendanceService(repo, stubEmployeeRepo{existingID: 1})

	_, err := svc.MarkAttendance(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: 1, Date: "2024-01-05", Status: attendance.StatusPresent,
	})

	assert.ErrorIs(t, err, attendance.ErrInvalidEmployeeReference)
	assert.NotErrorIs(t, err, attendance.ErrAttendanceAlreadyMarked)
}

func TestAttendanceService_MarkAttendance_StorageFailure(t *testing.T) {
	storageErr := errors.New("connection reset")
	repo := stubAttendanceRepo{
		createFn: func(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
			return attendance.Attendance{}, storageErr
		},
	}
	svc := NewAttendanceService(repo, stubEmployeeRepo{existingID: 1})

	_, err := svc.MarkAttendance(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: 1, Date: "2024-01-05", Status: attendance.StatusPresent,
	})

	assert.ErrorIs(t, err, storageErr)
}

func TestAttendanceService_MarkAttendance_Validation(t *testing.T) {
	svc := NewAttendanceService(stubAttendanceRepo{}, stubEmployeeRepo{existingID: 1})

	_, err := svc.MarkAttendance(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: 1, Date: "yesterday", Status: "Late",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
}

func TestAttendanceService_GetEmployeeAttendance(t *testing.T) {
	repo := stubAttendanceRepo{
		listFn: func(ctx context.Context, employeeID int64, date *time.Time) ([]attendance.Attendance, error) {
			assert.Nil(t, date)
			return []attendance.Attendance{
				{ID: 2, EmployeeID: employeeID, Date: day("2024-01-06"), Status: attendance.StatusAbsent},
				{ID: 1, EmployeeID: employeeID, Date: day("2024-01-05"), Status: attendance.StatusPresent},
			}, nil
		},
	}
	svc := NewAttendanceService(repo, stubEmployeeRepo{existingID: 1})

	resp, err := svc.GetEmployeeAttendance(context.Background(), attendance.AttendanceFilter{EmployeeID: 1})

	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "2024-01-06", resp[0].Date)
	assert.Equal(t, "2024-01-05", resp[1].Date)
}

func TestAttendanceService_GetEmployeeAttendance_DateFilter(t *testing.T) {
	repo := stubAttendanceRepo{
		listFn: func(ctx context.Context, employeeID int64, date *time.Time) ([]attendance.Attendance, error) {
			require.NotNil(t, date)
			assert.Equal(t, day("2024-01-05"), *date)
			return []attendance.Attendance{}, nil
		},
	}
	svc := NewAttendanceService(repo, stubEmployeeRepo{existingID: 1})

	date := "2024-01-05"
	resp, err := svc.GetEmployeeAttendance(context.Background(), attendance.AttendanceFilter{EmployeeID: 1, Date: &date})

	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Empty(t, resp)
}

func TestAttendanceService_GetEmployeeAttendance_EmployeeMissing(t *testing.T) {
	svc := NewAttendanceService(stubAttendanceRepo{}, stubEmployeeRepo{existingID: 1})

	_, err := svc.GetEmployeeAttendance(context.Background(), attendance.AttendanceFilter{EmployeeID: 5})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = svc.GetEmployeeAttendance(context.Background(), attendance.AttendanceFilter{EmployeeID: 0})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
