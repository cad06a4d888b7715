package services

import (
	"context"

	"github.com/bs23/ems_backend/internal/core/domain"
	"github.com/bs23/ems_backend/internal/dto"
)

// EmployeeSvcFacade manages the employee directory.
type EmployeeSvcFacade interface {
	// CreateEmployee validates the department, hashes the password when one
	// is given, defaults a blank role to EMPLOYEE, and persists the entry.
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error)

	// GetEmployeeByID retrieves one employee with its department.
	GetEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error)

	// ListEmployees retrieves all employees with departments loaded.
	ListEmployees(ctx context.Context) ([]domain.Employee, error)

	// ListEmployeesByDepartment retrieves the employees of one department.
	ListEmployeesByDepartment(ctx context.Context, departmentID int64) ([]domain.Employee, error)

	// UpdateEmployee applies the provided fields; a new password is hashed
	// through the central secret-hashing capability.
	UpdateEmployee(ctx context.Context, employeeID int64, req dto.UpdateEmployeeRequest) (*domain.Employee, error)

	// DeleteEmployee removes the employee and cascades to its attendance,
	// leave, and notification records.
	DeleteEmployee(ctx context.Context, employeeID int64) error
}
