package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bs23/ems_backend/internal/apperrors"
	"github.com/bs23/ems_backend/internal/core/domain"
	portsrepo "github.com/bs23/ems_backend/internal/core/ports/repositories"
	portssvc "github.com/bs23/ems_backend/internal/core/ports/services"
	"github.com/bs23/ems_backend/internal/middleware"
)

// attendanceService enforces the check-in/check-out state machine per
// employee per day and derives the attendance report.
type attendanceService struct {
	attendanceRepo portsrepo.AttendanceRepositoryFacade
	employeeRepo   portsrepo.EmployeeReader
	identity       portssvc.IdentityResolverSvc
	now            func() time.Time
}

// NewAttendanceService creates a new attendance service.
func NewAttendanceService(attendanceRepo portsrepo.AttendanceRepositoryFacade, employeeRepo portsrepo.EmployeeReader, identity portssvc.IdentityResolverSvc) portssvc.AttendanceSvcFacade {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		identity:       identity,
		now:            time.Now,
	}
}

var _ portssvc.AttendanceSvcFacade = (*attendanceService)(nil)

// CheckIn creates a new open record stamped with the current time. There is
// deliberately no guard against other open records for the same employee on
// the same day; check-in alone permits multiple opens.
func (s *attendanceService) CheckIn(ctx context.Context, employeeID int64) (*domain.Attendance, error) {
	if _, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID); err != nil {
		return nil, err
	}

	now := s.now()
	record := domain.Attendance{
		EmployeeID: employeeID,
		CheckIn:    &now,
	}
	return s.attendanceRepo.SaveAttendance(ctx, record)
}

// CheckOut sets the checkout timestamp on the referenced record. It does not
// verify the record is still open, so a prior checkout can be overwritten
// through this administrative path.
func (s *attendanceService) CheckOut(ctx context.Context, attendanceID int64) (*domain.Attendance, error) {
	record, err := s.attendanceRepo.FindAttendanceByID(ctx, attendanceID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	record.CheckOut = &now
	if err := s.attendanceRepo.UpdateAttendance(ctx, *record); err != nil {
		return nil, err
	}
	return record, nil
}

// Mark acts on the authenticated caller's own identity.
func (s *attendanceService) Mark(ctx context.Context, markType, identifier string) (*domain.Attendance, error) {
	employee, err := s.identity.ResolveEmployee(ctx, identifier)
	if err != nil {
		return nil, err
	}

	switch domain.AttendanceMarkType(markType) {
	case domain.MarkCheckIn:
		now := s.now()
		record := domain.Attendance{
			EmployeeID: employee.EmployeeID,
			CheckIn:    &now,
		}
		return s.attendanceRepo.SaveAttendance(ctx, record)

	case domain.MarkCheckOut:
		now := s.now()
		start, end := localDayWindow(now)
		record, err := s.attendanceRepo.CompleteLatestForWindow(ctx, employee.EmployeeID, start, end, now)
		if err != nil {
			middleware.GetLoggerFromCtx(ctx).Warn("Checkout rejected",
				slog.Int64("employee_id", employee.EmployeeID),
				slog.String("error", err.Error()))
			return nil, err
		}
		return record, nil

	default:
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidAttendanceType, markType)
	}
}

// ListByEmployeeID retrieves all records for one employee.
func (s *attendanceService) ListByEmployeeID(ctx context.Context, employeeID int64) ([]domain.Attendance, error) {
	if _, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.attendanceRepo.FindAttendanceByEmployee(ctx, employeeID)
}

// ListByIdentifier resolves the caller's identifier and lists their records.
func (s *attendanceService) ListByIdentifier(ctx context.Context, identifier string) ([]domain.Attendance, error) {
	employee, err := s.identity.ResolveEmployee(ctx, identifier)
	if err != nil {
		return nil, err
	}
	return s.attendanceRepo.FindAttendanceByEmployee(ctx, employee.EmployeeID)
}

// ListAll retrieves every attendance record.
func (s *attendanceService) ListAll(ctx context.Context) ([]domain.Attendance, error) {
	return s.attendanceRepo.FindAllAttendance(ctx)
}

// Report recomputes the per-employee aggregation from stored records on
// every call. Hours are truncated per record before summing.
func (s *attendanceService) Report(ctx context.Context, employeeID int64) (*domain.AttendanceReport, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.FindAttendanceByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	report := &domain.AttendanceReport{
		EmployeeID:   employee.EmployeeID,
		EmployeeName: employee.FullName(),
		TotalDays:    len(records),
	}
	for _, r := range records {
		if !r.IsPresent() {
			continue
		}
		report.PresentDays++
		report.TotalHoursWorked += float64(int64(r.CheckOut.Sub(*r.CheckIn).Hours()))
	}
	report.AbsentDays = report.TotalDays - report.PresentDays
	return report, nil
}

// localDayWindow returns the caller's local calendar day as the inclusive
// window [00:00:00, 23:59:59.999999999].
func localDayWindow(t time.Time) (time.Time, time.Time) {
	year, month, day := t.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	end := time.Date(year, month, day, 23, 59, 59, 999999999, t.Location())
	return start, end
}
