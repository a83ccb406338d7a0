package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hrms-lite-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		EmployeeID: req.EmployeeID,
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
	})
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeExists) {
			slog.InfoContext(ctx, "employee create rejected", "reason", err.Error())
			return employee.EmployeeResponse{}, err
		}
		slog.ErrorContext(ctx, "failed to create employee", "employee_id", req.EmployeeID, "error", err)
		return employee.EmployeeResponse{}, fmt.Errorf("create employee: %w", err)
	}

	slog.InfoContext(ctx, "employee created", "id", created.ID, "employee_id", created.EmployeeID)
	return employee.NewEmployeeResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	if id <= 0 {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}

	found, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.NewEmployeeResponse(found), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.List(ctx, filter.Skip, filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.NewEmployeeResponse(emp))
	}
	return responses, nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id int64) error {
	if id <= 0 {
		return employee.ErrEmployeeNotFound
	}

	records, err := s.employeeRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return err
		}
		slog.ErrorContext(ctx, "failed to delete employee", "id", id, "error", err)
		return fmt.Errorf("delete employee: %w", err)
	}

	slog.InfoContext(ctx, "employee deleted", "id", id, "attendance_records", records)
	return nil
}
