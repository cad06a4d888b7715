package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/bs23/ems_backend/internal/apperrors"
	"github.com/bs23/ems_backend/internal/core/domain"
	portssvc "github.com/bs23/ems_backend/internal/core/ports/services"
	"github.com/bs23/ems_backend/internal/core/services"
	"github.com/bs23/ems_backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testAdminEmail = "admin@example.com"

type LeaveServiceTestSuite struct {
	suite.Suite
	mockLeaveRepo    *MockLeaveRepository
	mockEmployeeRepo *MockEmployeeRepository
	mockNotifier     *MockNotificationSvc
	service          portssvc.LeaveSvcFacade
}

func (s *LeaveServiceTestSuite) SetupTest() {
	s.mockLeaveRepo = new(MockLeaveRepository)
	s.mockEmployeeRepo = new(MockEmployeeRepository)
	s.mockNotifier = new(MockNotificationSvc)
	identity := services.NewIdentityService(new(MockUserRepository), s.mockEmployeeRepo)
	s.service = services.NewLeaveService(s.mockLeaveRepo, s.mockEmployeeRepo, identity, s.mockNotifier, testAdminEmail)
}

func TestLeaveServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeaveServiceTestSuite))
}

func date(y int, m time.Month, d int) dto.Date {
	return dto.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (s *LeaveServiceTestSuite) validRequest() dto.CreateLeaveRequest {
	return dto.CreateLeaveRequest{
		StartDate: date(2026, 9, 7),
		EndDate:   date(2026, 9, 9),
		Reason:    "family event",
		Type:      "CASUAL",
	}
}

func (s *LeaveServiceTestSuite) TestRequestCreatesPendingAndNotifiesAdmin() {
	ctx := context.Background()
	employee := &domain.Employee{EmployeeID: 4, FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}
	s.mockEmployeeRepo.On("FindEmployeeByEmail", ctx, "jane@example.com").Return(employee, nil).Once()

	s.mockLeaveRepo.On("CreateLeaveRequest", ctx, mock.MatchedBy(func(l domain.LeaveRequest) bool {
		return l.EmployeeID == 4 && l.Status == domain.LeavePending && l.Type == domain.LeaveCasual
	})).Return(&domain.LeaveRequest{
		LeaveID:    21,
		EmployeeID: 4,
		StartDate:  time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC),
		Reason:     "family event",
		Type:       domain.LeaveCasual,
		Status:     domain.LeavePending,
	}, nil).Once()

	s.mockNotifier.On("Notify", ctx, testAdminEmail, "New Leave Request", mock.AnythingOfType("string")).Once()

	leave, err := s.service.Request(ctx, "jane@example.com", s.validRequest())

	s.Require().NoError(err)
	s.Equal(int64(21), leave.LeaveID)
	s.Equal(domain.LeavePending, leave.Status)
	s.mockNotifier.AssertExpectations(s.T())
}

func (s *LeaveServiceTestSuite) TestRequestRejectsInvertedRange() {
	ctx := context.Background()
	employee := &domain.Employee{EmployeeID: 4, Email: "jane@example.com"}
	s.mockEmployeeRepo.On("FindEmployeeByEmail", ctx, "jane@example.com").Return(employee, nil).Once()

	req := s.validRequest()
	req.StartDate, req.EndDate = req.EndDate, req.StartDate

	_, err := s.service.Request(ctx, "jane@example.com", req)

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.mockLeaveRepo.AssertNotCalled(s.T(), "CreateLeaveRequest")
}

func (s *LeaveServiceTestSuite) TestRequestRejectsUnknownType() {
	ctx := context.Background()
	employee := &domain.Employee{EmployeeID: 4, Email: "jane@example.com"}
	s.mockEmployeeRepo.On("FindEmployeeByEmail", ctx, "jane@example.com").Return(employee, nil).Once()

	req := s.validRequest()
	req.Type = "SABBATICAL"

	_, err := s.service.Request(ctx, "jane@example.com", req)

	s.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (s *LeaveServiceTestSuite) TestRequestPropagatesOverlap() {
	ctx := context.Background()
	employee := &domain.Employee{EmployeeID: 4, Email: "jane@example.com"}
	s.mockEmployeeRepo.On("FindEmployeeByEmail", ctx, "jane@example.com").Return(employee, nil).Once()

	s.mockLeaveRepo.On("CreateLeaveRequest", ctx, mock.AnythingOfType("domain.LeaveRequest")).
		Return(nil, apperrors.ErrOverlappingLeave).Once()

	_, err := s.service.Request(ctx, "jane@example.com", s.validRequest())

	s.Require().ErrorIs(err, apperrors.ErrOverlappingLeave)
	s.mockNotifier.AssertNotCalled(s.T(), "Notify")
}

func (s *LeaveServiceTestSuite) TestApproveNotifiesEmployee() {
	ctx := context.Background()
	s.mockLeaveRepo.On("UpdateLeaveStatusIfPending", ctx, int64(21), domain.LeaveApproved).Return(nil).Once()
	s.mockLeaveRepo.On("FindLeaveByID", ctx, int64(21)).Return(&domain.LeaveRequest{
		LeaveID:    21,
		EmployeeID: 4,
		Employee:   &domain.Employee{EmployeeID: 4, Email: "jane@example.com"},
		StartDate:  time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC),
		Type:       domain.LeaveCasual,
		Status:     domain.LeaveApproved,
	}, nil).Once()
	s.mockNotifier.On("Notify", ctx, "jane@example.com", "Leave Request Approved", mock.AnythingOfType("string")).Once()

	leave, err := s.service.Approve(ctx, 21)

	s.Require().NoError(err)
	s.Equal(domain.LeaveApproved, leave.Status)
	s.mockNotifier.AssertExpectations(s.T())
}

func (s *LeaveServiceTestSuite) TestRejectIncludesReasonInNotification() {
	ctx := context.Background()
	s.mockLeaveRepo.On("UpdateLeaveStatusIfPending", ctx, int64(22), domain.LeaveRejected).Return(nil).Once()
	s.mockLeaveRepo.On("FindLeaveByID", ctx, int64(22)).Return(&domain.LeaveRequest{
		LeaveID:    22,
		EmployeeID: 4,
		Employee:   &domain.Employee{EmployeeID: 4, Email: "jane@example.com"},
		StartDate:  time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC),
		Reason:     "family event",
		Type:       domain.LeaveCasual,
		Status:     domain.LeaveRejected,
	}, nil).Once()
	s.mockNotifier.On("Notify", ctx, "jane@example.com", "Leave Request Rejected", mock.MatchedBy(func(body string) bool {
		return len(body) > 0 && containsAll(body, "rejected", "family event")
	})).Once()

	_, err := s.service.Reject(ctx, 22)

	s.Require().NoError(err)
	s.mockNotifier.AssertExpectations(s.T())
}

func (s *LeaveServiceTestSuite) TestSecondTransitionFails() {
	ctx := context.Background()
	s.mockLeaveRepo.On("UpdateLeaveStatusIfPending", ctx, int64(21), domain.LeaveRejected).
		Return(apperrors.ErrInvalidTransition).Once()

	_, err := s.service.Reject(ctx, 21)

	s.Require().ErrorIs(err, apperrors.ErrInvalidTransition)
	s.mockNotifier.AssertNotCalled(s.T(), "Notify")
}

func (s *LeaveServiceTestSuite) TestTransitionUnknownLeave() {
	ctx := context.Background()
	s.mockLeaveRepo.On("UpdateLeaveStatusIfPending", ctx, int64(404), domain.LeaveApproved).
		Return(apperrors.ErrNotFound).Once()

	_, err := s.service.Approve(ctx, 404)

	s.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func containsAll(s string, subs ...string) bool {
	lower := strings.ToLower(s)
	for _, sub := range subs {
		if !strings.Contains(lower, strings.ToLower(sub)) {
			return false
		}
	}
	return true
}
