package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bs23/ems_backend/internal/apperrors"
	"github.com/bs23/ems_backend/internal/core/domain"
	portsrepo "github.com/bs23/ems_backend/internal/core/ports/repositories"
	portssvc "github.com/bs23/ems_backend/internal/core/ports/services"
	"github.com/bs23/ems_backend/internal/dto"
	"github.com/bs23/ems_backend/internal/middleware"
	"github.com/bs23/ems_backend/internal/utils"
)

// employeeService manages the employee directory.
type employeeService struct {
	employeeRepo   portsrepo.EmployeeRepositoryFacade
	departmentRepo portsrepo.DepartmentRepositoryFacade
}

// NewEmployeeService creates a new employee service.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryFacade, departmentRepo portsrepo.DepartmentRepositoryFacade) portssvc.EmployeeSvcFacade {
	return &employeeService{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
	}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

// CreateEmployee persists a new directory entry. A missing role defaults to
// EMPLOYEE so that the account can authenticate with the expected authority.
func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	if existing, err := s.employeeRepo.FindEmployeeByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: employee email %s already in use", apperrors.ErrDuplicate, req.Email)
	}

	employee := domain.Employee{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     req.Email,
		Position:  req.Position,
		Salary:    req.Salary,
		Role:      req.Role,
	}
	if employee.Role == "" {
		employee.Role = domain.DefaultEmployeeRole
	}

	if req.DepartmentID != nil {
		department, err := s.departmentRepo.FindDepartmentByID(ctx, *req.DepartmentID)
		if err != nil {
			return nil, fmt.Errorf("department %d: %w", *req.DepartmentID, err)
		}
		employee.DepartmentID = &department.DepartmentID
		employee.Department = department
	}

	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		employee.PasswordHash = &hash
	}

	created, err := s.employeeRepo.SaveEmployee(ctx, employee)
	if err != nil {
		return nil, err
	}
	created.Department = employee.Department

	middleware.GetLoggerFromCtx(ctx).Info("Employee created",
		slog.Int64("employee_id", created.EmployeeID),
		slog.String("email", created.Email))
	return created, nil
}

// GetEmployeeByID retrieves one employee with its department loaded.
func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	return s.employeeRepo.FindEmployeeByID(ctx, employeeID)
}

// ListEmployees retrieves all employees.
func (s *employeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.employeeRepo.FindEmployees(ctx)
}

// ListEmployeesByDepartment retrieves the employees of one department.
func (s *employeeService) ListEmployeesByDepartment(ctx context.Context, departmentID int64) ([]domain.Employee, error) {
	if _, err := s.departmentRepo.FindDepartmentByID(ctx, departmentID); err != nil {
		return nil, err
	}
	return s.employeeRepo.FindEmployeesByDepartment(ctx, departmentID)
}

// UpdateEmployee applies the provided fields to an existing employee.
func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID int64, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		employee.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		employee.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Email != nil && *req.Email != employee.Email {
		if existing, err := s.employeeRepo.FindEmployeeByEmail(ctx, *req.Email); err == nil && existing != nil {
			return nil, fmt.Errorf("%w: employee email %s already in use", apperrors.ErrDuplicate, *req.Email)
		}
		employee.Email = *req.Email
	}
	if req.Position != nil {
		employee.Position = *req.Position
	}
	if req.Salary != nil {
		employee.Salary = req.Salary
	}
	if req.Role != nil {
		employee.Role = *req.Role
		if employee.Role == "" {
			employee.Role = domain.DefaultEmployeeRole
		}
	}
	if req.DepartmentID != nil {
		department, err := s.departmentRepo.FindDepartmentByID(ctx, *req.DepartmentID)
		if err != nil {
			return nil, fmt.Errorf("department %d: %w", *req.DepartmentID, err)
		}
		employee.DepartmentID = &department.DepartmentID
		employee.Department = department
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		employee.PasswordHash = &hash
	}

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// DeleteEmployee removes the employee and its owned records.
func (s *employeeService) DeleteEmployee(ctx context.Context, employeeID int64) error {
	if err := s.employeeRepo.DeleteEmployee(ctx, employeeID); err != nil {
		return err
	}
	middleware.GetLoggerFromCtx(ctx).Info("Employee deleted", slog.Int64("employee_id", employeeID))
	return nil
}
