package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/bs23/ems_backend/internal/apperrors"
	"github.com/bs23/ems_backend/internal/core/domain"
	portsrepo "github.com/bs23/ems_backend/internal/core/ports/repositories"
	"github.com/bs23/ems_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLeaveRepository struct {
	BaseRepository
}

func newPgxLeaveRepository(db *pgxpool.Pool) portsrepo.LeaveRepositoryFacade {
	return &PgxLeaveRepository{BaseRepository{Pool: db}}
}

// Ensure PgxLeaveRepository implements portsrepo.LeaveRepositoryFacade
var _ portsrepo.LeaveRepositoryFacade = (*PgxLeaveRepository)(nil)

func toDomainLeave(m models.LeaveRequest) domain.LeaveRequest {
	return domain.LeaveRequest{
		LeaveID:    m.LeaveID,
		EmployeeID: m.EmployeeID,
		StartDate:  m.StartDate,
		EndDate:    m.EndDate,
		Reason:     m.Reason,
		Type:       domain.LeaveType(m.Type),
		Status:     domain.LeaveStatus(m.Status),
	}
}

// leaveSelect joins the owning employee so workflow transitions can address
// the notification without a second query.
const leaveSelect = `
	SELECT l.leave_id, l.employee_id, l.start_date, l.end_date, l.reason, l.leave_type, l.status,
	       e.first_name, e.last_name, e.email
	FROM leave_requests l
	JOIN employees e ON e.employee_id = l.employee_id
`

func scanLeave(row pgx.Row) (*domain.LeaveRequest, error) {
	var m models.LeaveRequest
	var firstName, lastName, email string
	err := row.Scan(
		&m.LeaveID,
		&m.EmployeeID,
		&m.StartDate,
		&m.EndDate,
		&m.Reason,
		&m.Type,
		&m.Status,
		&firstName,
		&lastName,
		&email,
	)
	if err != nil {
		return nil, err
	}
	d := toDomainLeave(m)
	d.Employee = &domain.Employee{
		EmployeeID: m.EmployeeID,
		FirstName:  firstName,
		LastName:   lastName,
		Email:      email,
	}
	return &d, nil
}

// CreateLeaveRequest inserts a PENDING request after re-checking the overlap
// guard inside the transaction, with the employee's PENDING and APPROVED rows
// locked. Racing requests for overlapping ranges cannot both pass.
func (r *PgxLeaveRepository) CreateLeaveRequest(ctx context.Context, leave domain.LeaveRequest) (*domain.LeaveRequest, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	var conflicts int64
	err = tx.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM (
			SELECT leave_id FROM leave_requests
			WHERE employee_id = $1
			  AND status IN ('PENDING', 'APPROVED')
			  AND start_date <= $3 AND end_date >= $2
			FOR UPDATE
		) conflicting;
	`, leave.EmployeeID, leave.StartDate, leave.EndDate).Scan(&conflicts)
	if err != nil {
		return nil, fmt.Errorf("failed to check leave overlap for employee %d: %w", leave.EmployeeID, err)
	}
	if conflicts > 0 {
		return nil, apperrors.ErrOverlappingLeave
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO leave_requests (employee_id, start_date, end_date, reason, leave_type, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING leave_id;
	`, leave.EmployeeID, leave.StartDate, leave.EndDate, leave.Reason, string(leave.Type), string(leave.Status)).Scan(&leave.LeaveID)
	if err != nil {
		return nil, fmt.Errorf("failed to save leave request: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &leave, nil
}

func (r *PgxLeaveRepository) FindLeaveByID(ctx context.Context, leaveID int64) (*domain.LeaveRequest, error) {
	query := leaveSelect + ` WHERE l.leave_id = $1;`
	d, err := scanLeave(r.Pool.QueryRow(ctx, query, leaveID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find leave request by ID %d: %w", leaveID, err)
	}
	return d, nil
}

func (r *PgxLeaveRepository) FindLeavesByEmployee(ctx context.Context, employeeID int64) ([]domain.LeaveRequest, error) {
	return r.queryLeaves(ctx, leaveSelect+` WHERE l.employee_id = $1 ORDER BY l.leave_id;`, employeeID)
}

func (r *PgxLeaveRepository) FindLeavesByStatus(ctx context.Context, status domain.LeaveStatus) ([]domain.LeaveRequest, error) {
	return r.queryLeaves(ctx, leaveSelect+` WHERE l.status = $1 ORDER BY l.leave_id;`, string(status))
}

func (r *PgxLeaveRepository) FindAllLeaves(ctx context.Context) ([]domain.LeaveRequest, error) {
	return r.queryLeaves(ctx, leaveSelect+` ORDER BY l.leave_id;`)
}

func (r *PgxLeaveRepository) queryLeaves(ctx context.Context, query string, args ...any) ([]domain.LeaveRequest, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var leaves []domain.LeaveRequest
	for rows.Next() {
		d, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave row: %w", err)
		}
		leaves = append(leaves, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leave rows: %w", err)
	}
	return leaves, nil
}

// UpdateLeaveStatusIfPending moves a request out of PENDING. The status
// predicate in the UPDATE makes the transition one-way: a request already in
// a terminal status is left untouched and reported as an invalid transition.
func (r *PgxLeaveRepository) UpdateLeaveStatusIfPending(ctx context.Context, leaveID int64, status domain.LeaveStatus) error {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE leave_requests SET status = $2 WHERE leave_id = $1 AND status = 'PENDING';`,
		leaveID, string(status),
	)
	if err != nil {
		return fmt.Errorf("failed to update leave request %d: %w", leaveID, err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := r.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM leave_requests WHERE leave_id = $1);`,
		leaveID,
	).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check leave request %d: %w", leaveID, err)
	}
	if !exists {
		return apperrors.ErrNotFound
	}
	return apperrors.ErrInvalidTransition
}
