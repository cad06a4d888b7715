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

type PgxDepartmentRepository struct {
	BaseRepository
}

func newPgxDepartmentRepository(db *pgxpool.Pool) portsrepo.DepartmentRepositoryFacade {
	return &PgxDepartmentRepository{BaseRepository{Pool: db}}
}

// Ensure PgxDepartmentRepository implements portsrepo.DepartmentRepositoryFacade
var _ portsrepo.DepartmentRepositoryFacade = (*PgxDepartmentRepository)(nil)

func toDomainDepartment(m models.Department) domain.Department {
	d := domain.Department{
		DepartmentID: m.DepartmentID,
		Name:         m.Name,
	}
	if m.Description != nil {
		d.Description = *m.Description
	}
	return d
}

func (r *PgxDepartmentRepository) SaveDepartment(ctx context.Context, department domain.Department) (*domain.Department, error) {
	var description *string
	if department.Description != "" {
		description = &department.Description
	}
	err := r.Pool.QueryRow(ctx,
		`INSERT INTO departments (name, description) VALUES ($1, $2) RETURNING department_id;`,
		department.Name, description,
	).Scan(&department.DepartmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to save department: %w", err)
	}
	return &department, nil
}

func (r *PgxDepartmentRepository) FindDepartmentByID(ctx context.Context, departmentID int64) (*domain.Department, error) {
	var m models.Department
	err := r.Pool.QueryRow(ctx,
		`SELECT department_id, name, description FROM departments WHERE department_id = $1;`,
		departmentID,
	).Scan(&m.DepartmentID, &m.Name, &m.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find department by ID %d: %w", departmentID, err)
	}
	d := toDomainDepartment(m)
	return &d, nil
}

func (r *PgxDepartmentRepository) FindDepartments(ctx context.Context) ([]domain.Department, error) {
	rows, err := r.Pool.Query(ctx, `SELECT department_id, name, description FROM departments ORDER BY department_id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	var departments []domain.Department
	for rows.Next() {
		var m models.Department
		if err := rows.Scan(&m.DepartmentID, &m.Name, &m.Description); err != nil {
			return nil, fmt.Errorf("failed to scan department row: %w", err)
		}
		departments = append(departments, toDomainDepartment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating department rows: %w", err)
	}
	return departments, nil
}

func (r *PgxDepartmentRepository) ExistsDepartmentByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM departments WHERE LOWER(name) = LOWER($1) AND department_id <> $2);`,
		name, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check department name: %w", err)
	}
	return exists, nil
}

func (r *PgxDepartmentRepository) CountEmployees(ctx context.Context, departmentID int64) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM employees WHERE department_id = $1;`,
		departmentID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees in department %d: %w", departmentID, err)
	}
	return count, nil
}

func (r *PgxDepartmentRepository) UpdateDepartment(ctx context.Context, department domain.Department) error {
	var description *string
	if department.Description != "" {
		description = &department.Description
	}
	tag, err := r.Pool.Exec(ctx,
		`UPDATE departments SET name = $2, description = $3 WHERE department_id = $1;`,
		department.DepartmentID, department.Name, description,
	)
	if err != nil {
		return fmt.Errorf("failed to update department %d: %w", department.DepartmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDepartmentRepository) DeleteDepartment(ctx context.Context, departmentID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM departments WHERE department_id = $1;`, departmentID)
	if err != nil {
		return fmt.Errorf("failed to delete department %d: %w", departmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
