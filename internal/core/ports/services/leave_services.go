package services

import (
	"context"

	"github.com/bs23/ems_backend/internal/core/domain"
	"github.com/bs23/ems_backend/internal/dto"
)

// LeaveReaderSvc defines the pure-read leave listings.
type LeaveReaderSvc interface {
	// ListByEmployee retrieves all requests for one employee.
	ListByEmployee(ctx context.Context, employeeID int64) ([]domain.LeaveRequest, error)

	// ListByIdentifier resolves the employee from a login identifier, then
	// lists their requests.
	ListByIdentifier(ctx context.Context, identifier string) ([]domain.LeaveRequest, error)

	// ListPending retrieves all PENDING requests.
	ListPending(ctx context.Context) ([]domain.LeaveRequest, error)

	// ListAll retrieves every leave request.
	ListAll(ctx context.Context) ([]domain.LeaveRequest, error)
}

// LeaveWorkflowSvc drives the PENDING -> APPROVED/REJECTED transition.
type LeaveWorkflowSvc interface {
	// Request creates a PENDING request for the employee resolved from the
	// identifier, enforcing the inclusive-range overlap guard against the
	// employee's PENDING and APPROVED requests, then notifies the admin
	// address.
	Request(ctx context.Context, identifier string, req dto.CreateLeaveRequest) (*domain.LeaveRequest, error)

	// RequestForEmployee behaves like Request for an already-known employee id.
	RequestForEmployee(ctx context.Context, employeeID int64, req dto.CreateLeaveRequest) (*domain.LeaveRequest, error)

	// Approve moves a PENDING request to APPROVED and notifies the employee.
	// The transition is terminal and one-way.
	Approve(ctx context.Context, leaveID int64) (*domain.LeaveRequest, error)

	// Reject moves a PENDING request to REJECTED and notifies the employee
	// with the stored reason.
	Reject(ctx context.Context, leaveID int64) (*domain.LeaveRequest, error)
}

// LeaveSvcFacade combines all leave service interfaces.
type LeaveSvcFacade interface {
	LeaveReaderSvc
	LeaveWorkflowSvc
}
