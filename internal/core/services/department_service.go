package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/bs23/ems_backend/internal/apperrors"
	"github.com/bs23/ems_backend/internal/core/domain"
	portsrepo "github.com/bs23/ems_backend/internal/core/ports/repositories"
	portssvc "github.com/bs23/ems_backend/internal/core/ports/services"
	"github.com/bs23/ems_backend/internal/dto"
)

// departmentService manages departments. Names are unique across the table.
type departmentService struct {
	departmentRepo portsrepo.DepartmentRepositoryFacade
}

// NewDepartmentService creates a new department service.
func NewDepartmentService(departmentRepo portsrepo.DepartmentRepositoryFacade) portssvc.DepartmentSvcFacade {
	return &departmentService{departmentRepo: departmentRepo}
}

var _ portssvc.DepartmentSvcFacade = (*departmentService)(nil)

// CreateDepartment persists a department, rejecting duplicate names.
func (s *departmentService) CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest) (*domain.Department, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: department name is required", apperrors.ErrValidation)
	}

	exists, err := s.departmentRepo.ExistsDepartmentByName(ctx, name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: department %s already exists", apperrors.ErrDuplicate, name)
	}

	return s.departmentRepo.SaveDepartment(ctx, domain.Department{
		Name:        name,
		Description: req.Description,
	})
}

// GetDepartmentByID retrieves one department.
func (s *departmentService) GetDepartmentByID(ctx context.Context, departmentID int64) (*domain.Department, error) {
	return s.departmentRepo.FindDepartmentByID(ctx, departmentID)
}

// ListDepartments retrieves all departments.
func (s *departmentService) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	return s.departmentRepo.FindDepartments(ctx)
}

// UpdateDepartment applies the provided fields, keeping names unique.
func (s *departmentService) UpdateDepartment(ctx context.Context, departmentID int64, req dto.UpdateDepartmentRequest) (*domain.Department, error) {
	department, err := s.departmentRepo.FindDepartmentByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: department name is required", apperrors.ErrValidation)
		}
		exists, err := s.departmentRepo.ExistsDepartmentByName(ctx, name, departmentID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("%w: department %s already exists", apperrors.ErrDuplicate, name)
		}
		department.Name = name
	}
	if req.Description != nil {
		department.Description = *req.Description
	}

	if err := s.departmentRepo.UpdateDepartment(ctx, *department); err != nil {
		return nil, err
	}
	return department, nil
}

// DeleteDepartment removes an empty department. Departments that still have
// employees assigned cannot be deleted.
func (s *departmentService) DeleteDepartment(ctx context.Context, departmentID int64) error {
	if _, err := s.departmentRepo.FindDepartmentByID(ctx, departmentID); err != nil {
		return err
	}

	count, err := s.departmentRepo.CountEmployees(ctx, departmentID)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: department has %d employees assigned", apperrors.ErrValidation, count)
	}

	return s.departmentRepo.DeleteDepartment(ctx, departmentID)
}
