package repositories

import (
	"context"

	"github.com/bs23/ems_backend/internal/core/domain"
)

// LeaveReader defines read operations for leave requests.
type LeaveReader interface {
	// FindLeaveByID retrieves a single leave request with the owning
	// employee loaded.
	FindLeaveByID(ctx context.Context, leaveID int64) (*domain.LeaveRequest, error)

	// FindLeavesByEmployee retrieves all requests for one employee.
	FindLeavesByEmployee(ctx context.Context, employeeID int64) ([]domain.LeaveRequest, error)

	// FindLeavesByStatus retrieves all requests in the given status.
	FindLeavesByStatus(ctx context.Context, status domain.LeaveStatus) ([]domain.LeaveRequest, error)

	// FindAllLeaves retrieves every leave request.
	FindAllLeaves(ctx context.Context) ([]domain.LeaveRequest, error)
}

// LeaveWriter defines write operations for leave requests.
type LeaveWriter interface {
	// CreateLeaveRequest persists a new PENDING request after re-checking,
	// inside one transaction with the employee's PENDING/APPROVED rows
	// locked, that no existing request overlaps the inclusive range. Fails
	// with apperrors.ErrOverlappingLeave on a conflict.
	CreateLeaveRequest(ctx context.Context, leave domain.LeaveRequest) (*domain.LeaveRequest, error)

	// UpdateLeaveStatusIfPending moves a request out of PENDING. It fails
	// with apperrors.ErrNotFound for an unknown id and with
	// apperrors.ErrInvalidTransition when the request already reached a
	// terminal status.
	UpdateLeaveStatusIfPending(ctx context.Context, leaveID int64, status domain.LeaveStatus) error
}

// LeaveRepositoryFacade combines all leave repository interfaces.
type LeaveRepositoryFacade interface {
	LeaveReader
	LeaveWriter
}
