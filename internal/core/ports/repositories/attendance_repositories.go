package repositories

import (
	"context"
	"time"

	"github.com/bs23/ems_backend/internal/core/domain"
)

// AttendanceReader defines read operations for attendance records.
type AttendanceReader interface {
	// FindAttendanceByID retrieves a single attendance record.
	FindAttendanceByID(ctx context.Context, attendanceID int64) (*domain.Attendance, error)

	// FindAttendanceByEmployee retrieves all records for one employee,
	// oldest first.
	FindAttendanceByEmployee(ctx context.Context, employeeID int64) ([]domain.Attendance, error)

	// FindAllAttendance retrieves every attendance record.
	FindAllAttendance(ctx context.Context) ([]domain.Attendance, error)
}

// AttendanceWriter defines write operations for attendance records.
type AttendanceWriter interface {
	// SaveAttendance persists a new record and returns it with its assigned ID.
	SaveAttendance(ctx context.Context, attendance domain.Attendance) (*domain.Attendance, error)

	// UpdateAttendance updates an existing record. No open-record guard is
	// applied here: checkout-by-id may overwrite a prior checkout.
	UpdateAttendance(ctx context.Context, attendance domain.Attendance) error

	// CompleteLatestForWindow sets the checkout timestamp on the most
	// recently created record whose check-in falls within [start, end],
	// inside one transaction with the record row locked. It fails with
	// apperrors.ErrNoCheckInToday when no record matches the window and with
	// apperrors.ErrAlreadyCheckedOut when the latest match is already closed.
	CompleteLatestForWindow(ctx context.Context, employeeID int64, start, end, checkOut time.Time) (*domain.Attendance, error)
}

// AttendanceRepositoryFacade combines all attendance repository interfaces.
type AttendanceRepositoryFacade interface {
	AttendanceReader
	AttendanceWriter
}
