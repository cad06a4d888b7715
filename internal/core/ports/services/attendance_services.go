package services

import (
	"context"

	"github.com/bs23/ems_backend/internal/core/domain"
)

// AttendanceReaderSvc defines read-side attendance operations.
type AttendanceReaderSvc interface {
	// ListByEmployeeID retrieves all records for one employee.
	ListByEmployeeID(ctx context.Context, employeeID int64) ([]domain.Attendance, error)

	// ListByIdentifier resolves the employee via email or the
	// firstname.lastname alias, then lists their records.
	ListByIdentifier(ctx context.Context, identifier string) ([]domain.Attendance, error)

	// ListAll retrieves every attendance record.
	ListAll(ctx context.Context) ([]domain.Attendance, error)

	// Report recomputes the per-employee aggregation on every call.
	Report(ctx context.Context, employeeID int64) (*domain.AttendanceReport, error)
}

// AttendanceWriterSvc defines the attendance state transitions.
type AttendanceWriterSvc interface {
	// CheckIn creates a new open record stamped with the current time. No
	// uniqueness check is applied against other open records for the same
	// employee.
	CheckIn(ctx context.Context, employeeID int64) (*domain.Attendance, error)

	// CheckOut sets the checkout timestamp on the referenced record. It does
	// not verify the record is still open.
	CheckOut(ctx context.Context, attendanceID int64) (*domain.Attendance, error)

	// Mark acts on the authenticated caller's identity: CHECK_IN creates a
	// new open record, CHECK_OUT completes the latest record whose check-in
	// falls within the caller's local calendar day.
	Mark(ctx context.Context, markType, identifier string) (*domain.Attendance, error)
}

// AttendanceSvcFacade combines all attendance service interfaces.
type AttendanceSvcFacade interface {
	AttendanceReaderSvc
	AttendanceWriterSvc
}
