package repositories

import (
	"context"

	"github.com/bs23/ems_backend/internal/core/domain"
)

// EmployeeReader defines read operations for the employee directory.
type EmployeeReader interface {
	// FindEmployeeByID retrieves an employee by ID, department included.
	FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error)

	// FindEmployeeByEmail retrieves an employee by exact email match.
	FindEmployeeByEmail(ctx context.Context, email string) (*domain.Employee, error)

	// FindEmployeeByName retrieves an employee by case-insensitive
	// first/last name match, used for the firstname.lastname login alias.
	FindEmployeeByName(ctx context.Context, firstName, lastName string) (*domain.Employee, error)

	// FindEmployees retrieves all employees with departments loaded in one query.
	FindEmployees(ctx context.Context) ([]domain.Employee, error)

	// FindEmployeesByDepartment retrieves all employees of one department.
	FindEmployeesByDepartment(ctx context.Context, departmentID int64) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for the employee directory.
type EmployeeWriter interface {
	// SaveEmployee persists a new employee and returns it with its assigned ID.
	SaveEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error)

	// UpdateEmployee updates an existing employee.
	UpdateEmployee(ctx context.Context, employee domain.Employee) error

	// DeleteEmployee removes an employee together with its owned attendance
	// records, leave requests, and notification logs keyed by the employee's
	// email, all within one transaction.
	DeleteEmployee(ctx context.Context, employeeID int64) error
}

// EmployeeRepositoryFacade combines all employee repository interfaces.
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}
