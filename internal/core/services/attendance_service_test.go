package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bs23/ems_backend/internal/apperrors"
	"github.com/bs23/ems_backend/internal/core/domain"
	portssvc "github.com/bs23/ems_backend/internal/core/ports/services"
	"github.com/bs23/ems_backend/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AttendanceServiceTestSuite struct {
	suite.Suite
	mockAttendanceRepo *MockAttendanceRepository
	mockEmployeeRepo   *MockEmployeeRepository
	identity           portssvc.IdentitySvcFacade
	service            portssvc.AttendanceSvcFacade
}

func (s *AttendanceServiceTestSuite) SetupTest() {
	s.mockAttendanceRepo = new(MockAttendanceRepository)
	s.mockEmployeeRepo = new(MockEmployeeRepository)
	mockUserRepo := new(MockUserRepository)
	s.identity = services.NewIdentityService(mockUserRepo, s.mockEmployeeRepo)
	s.service = services.NewAttendanceService(s.mockAttendanceRepo, s.mockEmployeeRepo, s.identity)
}

func TestAttendanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AttendanceServiceTestSuite))
}

func (s *AttendanceServiceTestSuite) TestCheckInCreatesOpenRecord() {
	ctx := context.Background()
	employee := &domain.Employee{EmployeeID: 5, Email: "a@example.com"}
	s.mockEmployeeRepo.On("FindEmployeeByID", ctx, int64(5)).Return(employee, nil).Once()

	s.mockAttendanceRepo.On("SaveAttendance", ctx, mock.MatchedBy(func(a domain.Attendance) bool {
		return a.EmployeeID == 5 && a.CheckIn != nil && a.CheckOut == nil
	})).Return(&domain.Attendance{AttendanceID: 11, EmployeeID: 5}, nil).Once()

	record, err := s.service.CheckIn(ctx, 5)

	s.Require().NoError(err)
	s.Equal(int64(11), record.AttendanceID)
	s.mockAttendanceRepo.AssertExpectations(s.T())
}

func (s *AttendanceServiceTestSuite) TestCheckInUnknownEmployee() {
	ctx := context.Background()
	s.mockEmployeeRepo.On("FindEmployeeByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.CheckIn(ctx, 99)

	s.Require().ErrorIs(err, apperrors.ErrNotFound)
	s.mockAttendanceRepo.AssertNotCalled(s.T(), "SaveAttendance")
}

func (s *AttendanceServiceTestSuite) TestMarkRejectsUnknownType() {
	ctx := context.Background()
	employee := &domain.Employee{EmployeeID: 5, Email: "a@example.com"}
	s.mockEmployeeRepo.On("FindEmployeeByEmail", ctx, "a@example.com").Return(employee, nil).Once()

	_, err := s.service.Mark(ctx, "LUNCH_BREAK", "a@example.com")

	s.Require().ErrorIs(err, apperrors.ErrInvalidAttendanceType)
}

func (s *AttendanceServiceTestSuite) TestMarkCheckOutUsesLocalDayWindow() {
	ctx := context.Background()
	employee := &domain.Employee{EmployeeID: 5, Email: "a@example.com"}
	s.mockEmployeeRepo.On("FindEmployeeByEmail", ctx, "a@example.com").Return(employee, nil).Once()

	closed := &domain.Attendance{AttendanceID: 12, EmployeeID: 5}
	s.mockAttendanceRepo.On("CompleteLatestForWindow", ctx, int64(5),
		mock.MatchedBy(func(start time.Time) bool {
			h, m, sec := start.Clock()
			return h == 0 && m == 0 && sec == 0 && start.Nanosecond() == 0
		}),
		mock.MatchedBy(func(end time.Time) bool {
			h, m, sec := end.Clock()
			return h == 23 && m == 59 && sec == 59 && end.Nanosecond() == 999999999
		}),
		mock.AnythingOfType("time.Time"),
	).Return(closed, nil).Once()

	record, err := s.service.Mark(ctx, "CHECK_OUT", "a@example.com")

	s.Require().NoError(err)
	s.Equal(int64(12), record.AttendanceID)
	s.mockAttendanceRepo.AssertExpectations(s.T())
}

func (s *AttendanceServiceTestSuite) TestMarkCheckOutErrorsPropagate() {
	ctx := context.Background()
	employee := &domain.Employee{EmployeeID: 5, Email: "a@example.com"}
	s.mockEmployeeRepo.On("FindEmployeeByEmail", ctx, "a@example.com").Return(employee, nil).Twice()

	s.mockAttendanceRepo.On("CompleteLatestForWindow", ctx, int64(5),
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"),
	).Return(nil, apperrors.ErrNoCheckInToday).Once()
	_, err := s.service.Mark(ctx, "CHECK_OUT", "a@example.com")
	s.Require().ErrorIs(err, apperrors.ErrNoCheckInToday)

	s.mockAttendanceRepo.On("CompleteLatestForWindow", ctx, int64(5),
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"),
	).Return(nil, apperrors.ErrAlreadyCheckedOut).Once()
	_, err = s.service.Mark(ctx, "CHECK_OUT", "a@example.com")
	s.Require().ErrorIs(err, apperrors.ErrAlreadyCheckedOut)
}

func (s *AttendanceServiceTestSuite) TestReportTruncatesHoursPerRecord() {
	ctx := context.Background()
	employee := &domain.Employee{EmployeeID: 5, FirstName: "Jane", LastName: "Doe"}
	s.mockEmployeeRepo.On("FindEmployeeByID", ctx, int64(5)).Return(employee, nil).Once()

	day := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)
	at := func(t time.Time) *time.Time { return &t }
	records := []domain.Attendance{
		// 8h30m -> 8 whole hours
		{AttendanceID: 1, EmployeeID: 5, CheckIn: at(day), CheckOut: at(day.Add(8*time.Hour + 30*time.Minute))},
		// 7h45m -> 7 whole hours
		{AttendanceID: 2, EmployeeID: 5, CheckIn: at(day.AddDate(0, 0, 1)), CheckOut: at(day.AddDate(0, 0, 1).Add(7*time.Hour + 45*time.Minute))},
		// open record counts as absent
		{AttendanceID: 3, EmployeeID: 5, CheckIn: at(day.AddDate(0, 0, 2))},
	}
	s.mockAttendanceRepo.On("FindAttendanceByEmployee", ctx, int64(5)).Return(records, nil).Once()

	report, err := s.service.Report(ctx, 5)

	s.Require().NoError(err)
	s.Equal(3, report.TotalDays)
	s.Equal(2, report.PresentDays)
	s.Equal(1, report.AbsentDays)
	s.Equal("Jane Doe", report.EmployeeName)
	// 8 + 7, not 16.25 summed then truncated
	s.InDelta(15.0, report.TotalHoursWorked, 0.0001)
}
