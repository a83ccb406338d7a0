package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hrms-lite-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const (
	constraintEmployeeCode  = "uq_employees_employee_id"
	constraintEmployeeEmail = "uq_employees_email"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	query := `
		INSERT INTO employees (employee_id, name, email, department)
		VALUES ($1, $2, $3, $4)
		RETURNING id, employee_id, name, email, department, created_at
	`

	var created employee.Employee
	err := WithTransaction(ctx, e.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, e.db)
		return q.QueryRow(txCtx, query,
			newEmployee.EmployeeID, newEmployee.Name, newEmployee.Email, newEmployee.Department,
		).Scan(
			&created.ID, &created.EmployeeID, &created.Name, &created.Email, &created.Department, &created.CreatedAt,
		)
	})
	if err != nil {
		switch {
		case database.IsUniqueViolation(err, constraintEmployeeCode):
			return employee.Employee{}, fmt.Errorf("employee_id %q: %w", newEmployee.EmployeeID, employee.ErrEmployeeExists)
		case database.IsUniqueViolation(err, constraintEmployeeEmail):
			return employee.Employee{}, fmt.Errorf("email %q: %w", newEmployee.Email, employee.ErrEmployeeExists)
		case database.IsUniqueViolation(err):
			return employee.Employee{}, fmt.Errorf("%s: %w", database.ConstraintName(err), employee.ErrEmployeeExists)
		case database.IsConstraintViolation(err):
			return employee.Employee{}, fmt.Errorf("%s: %w", database.ConstraintName(err), employee.ErrInvalidEmployee)
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, employee_id, name, email, department, created_at
		FROM employees
		WHERE id = $1
	`

	var found employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID, &found.EmployeeID, &found.Name, &found.Email, &found.Department, &found.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee with id %d: %w", id, err)
	}

	return found, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, skip, limit int) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	// id order keeps pages disjoint and stable across calls.
	query := `
		SELECT id, employee_id, name, email, department, created_at
		FROM employees
		ORDER BY id ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := q.Query(ctx, query, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.EmployeeID, &emp.Name, &emp.Email, &emp.Department, &emp.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id int64) (int64, error) {
	var cascaded int64
	err := WithTransaction(ctx, e.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, e.db)

		// The row lock makes concurrent attendance inserts for this employee wait
		// until the delete has committed or rolled back, so the count below is exact.
		var lockedID int64
		err := q.QueryRow(txCtx, `SELECT id FROM employees WHERE id = $1 FOR UPDATE`, id).Scan(&lockedID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return employee.ErrEmployeeNotFound
			}
			return fmt.Errorf("failed to lock employee with id %d: %w", id, err)
		}

		err = q.QueryRow(txCtx, `SELECT COUNT(*) FROM attendance WHERE employee_id = $1`, id).Scan(&cascaded)
		if err != nil {
			return fmt.Errorf("failed to count attendance for employee with id %d: %w", id, err)
		}

		// attendance rows are removed by fk_attendance_employee ON DELETE CASCADE
		tag, err := q.Exec(txCtx, `DELETE FROM employees WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete employee with id %d: %w", id, err)
		}
		if tag.RowsAffected() != 1 {
			return fmt.Errorf("delete employee with id %d: expected 1 row affected, got %d", id, tag.RowsAffected())
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return cascaded, nil
}
