package services

import (
	"context"
	"fmt"
	"time"

	"github.com/bs23/ems_backend/internal/apperrors"
	"github.com/bs23/ems_backend/internal/core/domain"
	portsrepo "github.com/bs23/ems_backend/internal/core/ports/repositories"
	portssvc "github.com/bs23/ems_backend/internal/core/ports/services"
	"github.com/bs23/ems_backend/internal/dto"
)

// leaveService validates incoming requests and drives the PENDING ->
// APPROVED/REJECTED workflow, emitting a notification on every transition.
type leaveService struct {
	leaveRepo        portsrepo.LeaveRepositoryFacade
	employeeRepo     portsrepo.EmployeeReader
	identity         portssvc.IdentityResolverSvc
	notifications    portssvc.NotificationSvcFacade
	adminNotifyEmail string
}

// NewLeaveService creates a new leave service.
func NewLeaveService(leaveRepo portsrepo.LeaveRepositoryFacade, employeeRepo portsrepo.EmployeeReader, identity portssvc.IdentityResolverSvc, notifications portssvc.NotificationSvcFacade, adminNotifyEmail string) portssvc.LeaveSvcFacade {
	return &leaveService{
		leaveRepo:        leaveRepo,
		employeeRepo:     employeeRepo,
		identity:         identity,
		notifications:    notifications,
		adminNotifyEmail: adminNotifyEmail,
	}
}

var _ portssvc.LeaveSvcFacade = (*leaveService)(nil)

// Request creates a PENDING request for the employee resolved from the
// caller's identifier.
func (s *leaveService) Request(ctx context.Context, identifier string, req dto.CreateLeaveRequest) (*domain.LeaveRequest, error) {
	employee, err := s.identity.ResolveEmployee(ctx, identifier)
	if err != nil {
		return nil, err
	}
	return s.create(ctx, employee, req)
}

// RequestForEmployee creates a PENDING request for an already-known employee.
func (s *leaveService) RequestForEmployee(ctx context.Context, employeeID int64, req dto.CreateLeaveRequest) (*domain.LeaveRequest, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return s.create(ctx, employee, req)
}

func (s *leaveService) create(ctx context.Context, employee *domain.Employee, req dto.CreateLeaveRequest) (*domain.LeaveRequest, error) {
	start := req.StartDate.Time
	end := req.EndDate.Time
	if start.IsZero() || end.IsZero() {
		return nil, fmt.Errorf("%w: start and end dates are required", apperrors.ErrValidation)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date precedes start date", apperrors.ErrValidation)
	}
	leaveType := domain.LeaveType(req.Type)
	if !domain.ValidLeaveType(leaveType) {
		return nil, fmt.Errorf("%w: unknown leave type %q", apperrors.ErrValidation, req.Type)
	}

	leave := domain.LeaveRequest{
		EmployeeID: employee.EmployeeID,
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
		Type:       leaveType,
		Status:     domain.LeavePending,
	}

	// The repository re-checks the overlap inside the insert transaction;
	// racing requests cannot both pass the guard.
	created, err := s.leaveRepo.CreateLeaveRequest(ctx, leave)
	if err != nil {
		return nil, err
	}
	created.Employee = employee

	s.notifications.Notify(ctx, s.adminNotifyEmail,
		"New Leave Request",
		fmt.Sprintf("%s has requested %s leave from %s to %s.\nReason: %s",
			employee.FullName(), created.Type,
			created.StartDate.Format(time.DateOnly), created.EndDate.Format(time.DateOnly),
			created.Reason))
	return created, nil
}

// Approve moves a PENDING request to APPROVED and notifies the employee.
func (s *leaveService) Approve(ctx context.Context, leaveID int64) (*domain.LeaveRequest, error) {
	return s.transition(ctx, leaveID, domain.LeaveApproved)
}

// Reject moves a PENDING request to REJECTED and notifies the employee with
// the stored reason.
func (s *leaveService) Reject(ctx context.Context, leaveID int64) (*domain.LeaveRequest, error) {
	return s.transition(ctx, leaveID, domain.LeaveRejected)
}

func (s *leaveService) transition(ctx context.Context, leaveID int64, status domain.LeaveStatus) (*domain.LeaveRequest, error) {
	if err := s.leaveRepo.UpdateLeaveStatusIfPending(ctx, leaveID, status); err != nil {
		return nil, err
	}

	leave, err := s.leaveRepo.FindLeaveByID(ctx, leaveID)
	if err != nil {
		return nil, err
	}

	if leave.Employee != nil {
		switch status {
		case domain.LeaveApproved:
			s.notifications.Notify(ctx, leave.Employee.Email,
				"Leave Request Approved",
				fmt.Sprintf("Your %s leave from %s to %s has been approved.",
					leave.Type,
					leave.StartDate.Format(time.DateOnly), leave.EndDate.Format(time.DateOnly)))
		case domain.LeaveRejected:
			s.notifications.Notify(ctx, leave.Employee.Email,
				"Leave Request Rejected",
				fmt.Sprintf("Your %s leave from %s to %s has been rejected.\nReason: %s",
					leave.Type,
					leave.StartDate.Format(time.DateOnly), leave.EndDate.Format(time.DateOnly),
					leave.Reason))
		}
	}
	return leave, nil
}

// ListByEmployee retrieves all requests for one employee.
func (s *leaveService) ListByEmployee(ctx context.Context, employeeID int64) ([]domain.LeaveRequest, error) {
	if _, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.leaveRepo.FindLeavesByEmployee(ctx, employeeID)
}

// ListByIdentifier resolves the caller and lists their requests.
func (s *leaveService) ListByIdentifier(ctx context.Context, identifier string) ([]domain.LeaveRequest, error) {
	employee, err := s.identity.ResolveEmployee(ctx, identifier)
	if err != nil {
		return nil, err
	}
	return s.leaveRepo.FindLeavesByEmployee(ctx, employee.EmployeeID)
}

// ListPending retrieves all PENDING requests.
func (s *leaveService) ListPending(ctx context.Context) ([]domain.LeaveRequest, error) {
	return s.leaveRepo.FindLeavesByStatus(ctx, domain.LeavePending)
}

// ListAll retrieves every leave request.
func (s *leaveService) ListAll(ctx context.Context) ([]domain.LeaveRequest, error) {
	return s.leaveRepo.FindAllLeaves(ctx)
}
