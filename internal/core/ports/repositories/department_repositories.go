package repositories

import (
	"context"

	"github.com/bs23/ems_backend/internal/core/domain"
)

// DepartmentRepositoryFacade defines operations for departments.
type DepartmentRepositoryFacade interface {
	// FindDepartmentByID retrieves a department by ID.
	FindDepartmentByID(ctx context.Context, departmentID int64) (*domain.Department, error)

	// FindDepartments retrieves all departments.
	FindDepartments(ctx context.Context) ([]domain.Department, error)

	// ExistsDepartmentByName reports whether a department with the given name
	// exists, optionally excluding one id (for rename checks).
	ExistsDepartmentByName(ctx context.Context, name string, excludeID int64) (bool, error)

	// CountEmployees returns the number of employees assigned to a department.
	CountEmployees(ctx context.Context, departmentID int64) (int64, error)

	// SaveDepartment persists a new department and returns it with its assigned ID.
	SaveDepartment(ctx context.Context, department domain.Department) (*domain.Department, error)

	// UpdateDepartment updates an existing department.
	UpdateDepartment(ctx context.Context, department domain.Department) error

	// DeleteDepartment removes a department.
	DeleteDepartment(ctx context.Context, departmentID int64) error
}
