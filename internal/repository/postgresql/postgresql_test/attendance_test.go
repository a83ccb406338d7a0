package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hrms-lite-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestAttendanceRepository_Scenario(t *testing.T) {
	setup := freshDatabase(t)
	employeeRepo := postgresql.NewEmployeeRepository(setup.DB)
	attendanceRepo := postgresql.NewAttendanceRepository(setup.DB)
	ctx := context.Background()

	ann, err := employeeRepo.Create(ctx, employee.Employee{
		EmployeeID: "E1",
		Name:       "Ann",
		Email:      "ann@x.com",
		Department: "Eng",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), ann.ID)

	_, err = attendanceRepo.Create(ctx, attendance.Attendance{EmployeeID: ann.ID, Date: date("2024-01-05"), Status: attendance.StatusPresent})
	require.NoError(t, err)

	_, err = attendanceRepo.Create(ctx, attendance.Attendance{EmployeeID: ann.ID, Date: date("2024-01-05"), Status: attendance.StatusAbsent})
	assert.ErrorIs(t, err, attendance.ErrAttendanceAlreadyMarked)

	records, err := attendanceRepo.ListByEmployee(ctx, ann.ID, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, date("2024-01-05").Equal(records[0].Date))
	assert.Equal(t, attendance.StatusPresent, records[0].Status)

	cascaded, err := employeeRepo.Delete(ctx, ann.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cascaded)

	records, err = attendanceRepo.ListByEmployee(ctx, ann.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAttendanceRepository_Create_UnknownEmployee(t *testing.T) {
	setup := freshDatabase(t)
	attendanceRepo := postgresql.NewAttendanceRepository(setup.DB)

	_, err := attendanceRepo.Create(context.Background(), attendance.Attendance{
		EmployeeID: 9999,
		Date:       date("2024-01-05"),
		Status:     attendance.StatusPresent,
	})
	assert.ErrorIs(t, err, attendance.ErrInvalidEmployeeReference)
}

func TestAttendanceRepository_Create_InvalidStatus(t *testing.T) {
	setup := freshDatabase(t)
	employeeRepo := postgresql.NewEmployeeRepository(setup.DB)
	attendanceRepo := postgresql.NewAttendanceRepository(setup.DB)
	ctx := context.Background()

	emp, err := employeeRepo.Create(ctx, newEmployee("ann"))
	require.NoError(t, err)

	_, err = attendanceRepo.Create(ctx, attendance.Attendance{EmployeeID: emp.ID, Date: date("2024-01-05"), Status: "Late"})
	assert.ErrorIs(t, err, attendance.ErrInvalidStatus)
}

func TestAttendanceRepository_Create_TruncatesToDate(t *testing.T) {
	setup := freshDatabase(t)
	employeeRepo := postgresql.NewEmployeeRepository(setup.DB)
	attendanceRepo := postgresql.NewAttendanceRepository(setup.DB)
	ctx := context.Background()

	emp, err := employeeRepo.Create(ctx, newEmployee("ann"))
	require.NoError(t, err)

	morning := time.Date(2024, 3, 2, 9, 15, 0, 0, time.UTC)
	_, err = attendanceRepo.Create(ctx, attendance.Attendance{EmployeeID: emp.ID, Date: morning, Status: attendance.StatusPresent})
	require.NoError(t, err)

	evening := time.Date(2024, 3, 2, 18, 40, 0, 0, time.UTC)
	_, err = attendanceRepo.Create(ctx, attendance.Attendance{EmployeeID: emp.ID, Date: evening, Status: attendance.StatusAbsent})
	assert.ErrorIs(t, err, attendance.ErrAttendanceAlreadyMarked)
}

func TestAttendanceRepository_ListByEmployee(t *testing.T) {
	setup := freshDatabase(t)
	employeeRepo := postgresql.NewEmployeeRepository(setup.DB)
	attendanceRepo := postgresql.NewAttendanceRepository(setup.DB)
	ctx := context.Background()

	ann, err := employeeRepo.Create(ctx, newEmployee("ann"))
	require.NoError(t, err)
	bob, err := employeeRepo.Create(ctx, newEmployee("bob"))
	require.NoError(t, err)

	for _, d := range []string{"2024-01-03", "2024-01-05", "2024-01-04"} {
		_, err := attendanceRepo.Create(ctx, attendance.Attendance{EmployeeID: ann.ID, Date: date(d), Status: attendance.StatusPresent})
		require.NoError(t, err)
	}
	_, err = attendanceRepo.Create(ctx, attendance.Attendance{EmployeeID: bob.ID, Date: date("2024-01-05"), Status: attendance.StatusAbsent})
	require.NoError(t, err)

	records, err := attendanceRepo.ListByEmployee(ctx, ann.ID, nil)
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i, want := range []string{"2024-01-05", "2024-01-04", "2024-01-03"} {
		assert.True(t, date(want).Equal(records[i].Date), "record %d: got %s", i, records[i].Date)
		assert.Equal(t, ann.ID, records[i].EmployeeID)
	}

	filter := date("2024-01-04")
	records, err = attendanceRepo.ListByEmployee(ctx, ann.ID, &filter)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, filter.Equal(records[0].Date))

	missing := date("2023-12-31")
	records, err = attendanceRepo.ListByEmployee(ctx, ann.ID, &missing)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)

	existing, err := attendanceRepo.GetByEmployeeAndDate(ctx, bob.ID, date("2024-01-05"))
	require.NoError(t, err)
	require.NotNil(t, existing)
	assert.Equal(t, attendance.StatusAbsent, existing.Status)

	absent, err := attendanceRepo.GetByEmployeeAndDate(ctx, bob.ID, date("2024-01-06"))
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestAttendanceRepository_Create_ConcurrentDuplicates(t *testing.T) {
	setup := freshDatabase(t)
	employeeRepo := postgresql.NewEmployeeRepository(setup.DB)
	attendanceRepo := postgresql.NewAttendanceRepository(setup.DB)
	ctx := context.Background()

	emp, err := employeeRepo.Create(ctx, newEmployee("ann"))
	require.NoError(t, err)

	const writers = 8
	results := make([]error, writers)

	var g errgroup.Group
	for i := 0; i < writers; i++ {
		i := i
		g.Go(func() error {
			_, err := attendanceRepo.Create(ctx, attendance.Attendance{
				EmployeeID: emp.ID,
				Date:       date("2024-02-01"),
				Status:     attendance.StatusPresent,
			})
			results[i] = err
			return nil
		})
	}
	require.NoError(t, g.Wait())

	var succeeded, duplicates int
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, attendance.ErrAttendanceAlreadyMarked):
			duplicates++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, writers-1, duplicates)

	count, err := attendanceRepo.CountByEmployee(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAttendanceRepository_Create_UniqueConstraintDecidesRace(t *testing.T) {
	setup := freshDatabase(t)
	employeeRepo := postgresql.NewEmployeeRepository(setup.DB)
	attendanceRepo := postgresql.NewAttendanceRepository(setup.DB)
	ctx := context.Background()

	emp, err := employeeRepo.Create(ctx, newEmployee("ann"))
	require.NoError(t, err)

	// A competing writer holds the same (employee, date) row uncommitted, so the
	// pre-check sees nothing and the insert waits on the unique index.
	tx, err := setup.DB.BeginTx(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `INSERT INTO attendance (employee_id, date, status) VALUES ($1, $2, $3)`,
		emp.ID, date("2024-02-01"), string(attendance.StatusAbsent))
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := attendanceRepo.Create(ctx, attendance.Attendance{
			EmployeeID: emp.ID,
			Date:       date("2024-02-01"),
			Status:     attendance.StatusPresent,
		})
		done <- err
	}()

	select {
	case err := <-done:
		t.Fatalf("create returned before the competing transaction finished: %v", err)
	case <-time.After(300 * time.Millisecond):
	}

	require.NoError(t, tx.Commit(ctx))

	select {
	case err := <-done:
		assert.ErrorIs(t, err, attendance.ErrAttendanceAlreadyMarked)
	case <-time.After(5 * time.Second):
		t.Fatal("create did not return after the competing transaction committed")
	}

	records, err := attendanceRepo.ListByEmployee(ctx, emp.ID, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, attendance.StatusAbsent, records[0].Status)
}
