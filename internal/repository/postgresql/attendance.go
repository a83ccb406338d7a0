package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hrms-lite-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const (
	constraintAttendanceEmployeeDate = "uq_attendance_employee_date"
	constraintAttendanceEmployee     = "fk_attendance_employee"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	date := attendance.DateOf(newAttendance.Date)

	// Fast path. The check and the insert below are separate statements, so a
	// concurrent caller can still slip in between; uq_attendance_employee_date decides then.
	existing, err := a.GetByEmployeeAndDate(ctx, newAttendance.EmployeeID, date)
	if err != nil {
		return attendance.Attendance{}, err
	}
	if existing != nil {
		return attendance.Attendance{}, attendance.ErrAttendanceAlreadyMarked
	}

	query := `
		INSERT INTO attendance (employee_id, date, status)
		VALUES ($1, $2, $3)
		RETURNING id, employee_id, date, status
	`

	var created attendance.Attendance
	err = WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, a.db)
		return q.QueryRow(txCtx, query, newAttendance.EmployeeID, date, string(newAttendance.Status)).
			Scan(&created.ID, &created.EmployeeID, &created.Date, &created.Status)
	})
	if err != nil {
		switch {
		case database.IsUniqueViolation(err, constraintAttendanceEmployeeDate):
			return attendance.Attendance{}, attendance.ErrAttendanceAlreadyMarked
		case database.IsForeignKeyViolation(err, constraintAttendanceEmployee):
			return attendance.Attendance{}, fmt.Errorf("employee %d: %w", newAttendance.EmployeeID, attendance.ErrInvalidEmployeeReference)
		case database.IsCheckViolation(err):
			return attendance.Attendance{}, fmt.Errorf("status %q: %w", newAttendance.Status, attendance.ErrInvalidStatus)
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return created, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, date, status
		FROM attendance
		WHERE employee_id = $1
		  AND date = $2
		LIMIT 1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, attendance.DateOf(date)).
		Scan(&att.ID, &att.EmployeeID, &att.Date, &att.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No existing attendance found
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployee(ctx context.Context, employeeID int64, date *time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, date, status
		FROM attendance
		WHERE employee_id = $1
	`
	args := []interface{}{employeeID}

	if date != nil {
		query += ` AND date = $2`
		args = append(args, attendance.DateOf(*date))
	}
	query += ` ORDER BY date DESC, id DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(&att.ID, &att.EmployeeID, &att.Date, &att.Status); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// CountByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) CountByEmployee(ctx context.Context, employeeID int64) (int64, error) {
	q := GetQuerier(ctx, a.db)

	var total int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendance WHERE employee_id = $1`, employeeID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance: %w", err)
	}
	return total, nil
}
