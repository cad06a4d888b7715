package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bs23/ems_backend/internal/apperrors"
	"github.com/bs23/ems_backend/internal/core/domain"
	portsrepo "github.com/bs23/ems_backend/internal/core/ports/repositories"
	"github.com/bs23/ems_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAttendanceRepository struct {
	BaseRepository
}

func newPgxAttendanceRepository(db *pgxpool.Pool) portsrepo.AttendanceRepositoryFacade {
	return &PgxAttendanceRepository{BaseRepository{Pool: db}}
}

// Ensure PgxAttendanceRepository implements portsrepo.AttendanceRepositoryFacade
var _ portsrepo.AttendanceRepositoryFacade = (*PgxAttendanceRepository)(nil)

func toDomainAttendance(m models.Attendance) domain.Attendance {
	return domain.Attendance{
		AttendanceID: m.AttendanceID,
		EmployeeID:   m.EmployeeID,
		CheckIn:      m.CheckIn,
		CheckOut:     m.CheckOut,
	}
}

const attendanceColumns = `attendance_id, employee_id, check_in, check_out`

func scanAttendance(row pgx.Row) (*models.Attendance, error) {
	var m models.Attendance
	if err := row.Scan(&m.AttendanceID, &m.EmployeeID, &m.CheckIn, &m.CheckOut); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxAttendanceRepository) SaveAttendance(ctx context.Context, attendance domain.Attendance) (*domain.Attendance, error) {
	err := r.Pool.QueryRow(ctx,
		`INSERT INTO attendance (employee_id, check_in, check_out) VALUES ($1, $2, $3) RETURNING attendance_id;`,
		attendance.EmployeeID, attendance.CheckIn, attendance.CheckOut,
	).Scan(&attendance.AttendanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to save attendance: %w", err)
	}
	return &attendance, nil
}

func (r *PgxAttendanceRepository) FindAttendanceByID(ctx context.Context, attendanceID int64) (*domain.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE attendance_id = $1;`
	m, err := scanAttendance(r.Pool.QueryRow(ctx, query, attendanceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find attendance by ID %d: %w", attendanceID, err)
	}
	d := toDomainAttendance(*m)
	return &d, nil
}

func (r *PgxAttendanceRepository) FindAttendanceByEmployee(ctx context.Context, employeeID int64) ([]domain.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE employee_id = $1 ORDER BY attendance_id;`
	return r.queryAttendance(ctx, query, employeeID)
}

func (r *PgxAttendanceRepository) FindAllAttendance(ctx context.Context) ([]domain.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance ORDER BY attendance_id;`
	return r.queryAttendance(ctx, query)
}

func (r *PgxAttendanceRepository) queryAttendance(ctx context.Context, query string, args ...any) ([]domain.Attendance, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance: %w", err)
	}
	defer rows.Close()

	var records []domain.Attendance
	for rows.Next() {
		m, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, toDomainAttendance(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance rows: %w", err)
	}
	return records, nil
}

func (r *PgxAttendanceRepository) UpdateAttendance(ctx context.Context, attendance domain.Attendance) error {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE attendance SET check_in = $2, check_out = $3 WHERE attendance_id = $1;`,
		attendance.AttendanceID, attendance.CheckIn, attendance.CheckOut,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance %d: %w", attendance.AttendanceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CompleteLatestForWindow closes the most recently created record whose
// check-in falls within [start, end]. The row is locked inside the
// transaction so that two concurrent checkouts cannot both observe it open.
func (r *PgxAttendanceRepository) CompleteLatestForWindow(ctx context.Context, employeeID int64, start, end, checkOut time.Time) (*domain.Attendance, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance
		WHERE employee_id = $1 AND check_in BETWEEN $2 AND $3
		ORDER BY attendance_id DESC
		LIMIT 1
		FOR UPDATE;
	`
	m, err := scanAttendance(tx.QueryRow(ctx, query, employeeID, start, end))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoCheckInToday
		}
		return nil, fmt.Errorf("failed to find open attendance for employee %d: %w", employeeID, err)
	}
	if m.CheckOut != nil {
		return nil, apperrors.ErrAlreadyCheckedOut
	}

	if _, err := tx.Exec(ctx,
		`UPDATE attendance SET check_out = $2 WHERE attendance_id = $1;`,
		m.AttendanceID, checkOut,
	); err != nil {
		return nil, fmt.Errorf("failed to close attendance %d: %w", m.AttendanceID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	m.CheckOut = &checkOut
	d := toDomainAttendance(*m)
	return &d, nil
}
