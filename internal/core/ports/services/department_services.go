package services

import (
	"context"

	"github.com/bs23/ems_backend/internal/core/domain"
	"github.com/bs23/ems_backend/internal/dto"
)

// DepartmentSvcFacade manages departments.
type DepartmentSvcFacade interface {
	// CreateDepartment persists a department, rejecting duplicate names.
	CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest) (*domain.Department, error)

	// GetDepartmentByID retrieves one department.
	GetDepartmentByID(ctx context.Context, departmentID int64) (*domain.Department, error)

	// ListDepartments retrieves all departments.
	ListDepartments(ctx context.Context) ([]domain.Department, error)

	// UpdateDepartment applies the provided fields, keeping names unique.
	UpdateDepartment(ctx context.Context, departmentID int64, req dto.UpdateDepartmentRequest) (*domain.Department, error)

	// DeleteDepartment removes an empty department; departments that still
	// have employees assigned cannot be deleted.
	DeleteDepartment(ctx context.Context, departmentID int64) error
}
