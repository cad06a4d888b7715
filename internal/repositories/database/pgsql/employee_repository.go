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

type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(db *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository{Pool: db}}
}

// Ensure PgxEmployeeRepository implements portsrepo.EmployeeRepositoryFacade
var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

func toModelEmployee(d domain.Employee) models.Employee {
	m := models.Employee{
		EmployeeID:   d.EmployeeID,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Email:        d.Email,
		DepartmentID: d.DepartmentID,
		Salary:       d.Salary,
		PasswordHash: d.PasswordHash,
	}
	if d.Position != "" {
		m.Position = &d.Position
	}
	if d.Role != "" {
		m.Role = &d.Role
	}
	return m
}

func toDomainEmployee(m models.Employee) domain.Employee {
	d := domain.Employee{
		EmployeeID:   m.EmployeeID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		DepartmentID: m.DepartmentID,
		Salary:       m.Salary,
		PasswordHash: m.PasswordHash,
	}
	if m.Position != nil {
		d.Position = *m.Position
	}
	if m.Role != nil {
		d.Role = *m.Role
	}
	return d
}

// employeeSelect joins the department so single-query reads return the
// employee with its department loaded.
const employeeSelect = `
	SELECT e.employee_id, e.first_name, e.last_name, e.email, e.department_id,
	       e.position, e.salary, e.password_hash, e.role,
	       d.department_id, d.name, d.description
	FROM employees e
	LEFT JOIN departments d ON d.department_id = e.department_id
`

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var m models.Employee
	var deptID *int64
	var deptName, deptDescription *string
	err := row.Scan(
		&m.EmployeeID,
		&m.FirstName,
		&m.LastName,
		&m.Email,
		&m.DepartmentID,
		&m.Position,
		&m.Salary,
		&m.PasswordHash,
		&m.Role,
		&deptID,
		&deptName,
		&deptDescription,
	)
	if err != nil {
		return nil, err
	}

	d := toDomainEmployee(m)
	if deptID != nil {
		dept := domain.Department{DepartmentID: *deptID, Name: *deptName}
		if deptDescription != nil {
			dept.Description = *deptDescription
		}
		d.Department = &dept
	}
	return &d, nil
}

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	m := toModelEmployee(employee)
	query := `
		INSERT INTO employees (first_name, last_name, email, department_id, position, salary, password_hash, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING employee_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.FirstName,
		m.LastName,
		m.Email,
		m.DepartmentID,
		m.Position,
		m.Salary,
		m.PasswordHash,
		m.Role,
	).Scan(&m.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to save employee: %w", err)
	}
	d := toDomainEmployee(m)
	return &d, nil
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	query := employeeSelect + ` WHERE e.employee_id = $1;`
	d, err := scanEmployee(r.Pool.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by ID %d: %w", employeeID, err)
	}
	return d, nil
}

func (r *PgxEmployeeRepository) FindEmployeeByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	query := employeeSelect + ` WHERE LOWER(e.email) = LOWER($1);`
	d, err := scanEmployee(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by email: %w", err)
	}
	return d, nil
}

func (r *PgxEmployeeRepository) FindEmployeeByName(ctx context.Context, firstName, lastName string) (*domain.Employee, error) {
	query := employeeSelect + ` WHERE LOWER(e.first_name) = LOWER($1) AND LOWER(e.last_name) = LOWER($2) LIMIT 1;`
	d, err := scanEmployee(r.Pool.QueryRow(ctx, query, firstName, lastName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by name: %w", err)
	}
	return d, nil
}

func (r *PgxEmployeeRepository) FindEmployees(ctx context.Context) ([]domain.Employee, error) {
	return r.queryEmployees(ctx, employeeSelect+` ORDER BY e.employee_id;`)
}

func (r *PgxEmployeeRepository) FindEmployeesByDepartment(ctx context.Context, departmentID int64) ([]domain.Employee, error) {
	return r.queryEmployees(ctx, employeeSelect+` WHERE e.department_id = $1 ORDER BY e.employee_id;`, departmentID)
}

func (r *PgxEmployeeRepository) queryEmployees(ctx context.Context, query string, args ...any) ([]domain.Employee, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		d, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", err)
	}
	return employees, nil
}

func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	m := toModelEmployee(employee)
	query := `
		UPDATE employees
		SET first_name = $2, last_name = $3, email = $4, department_id = $5,
		    position = $6, salary = $7, password_hash = $8, role = $9
		WHERE employee_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.EmployeeID,
		m.FirstName,
		m.LastName,
		m.Email,
		m.DepartmentID,
		m.Position,
		m.Salary,
		m.PasswordHash,
		m.Role,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee %d: %w", employee.EmployeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEmployee removes the employee together with its attendance records,
// leave requests, and notification logs keyed by the employee's email, in
// one transaction.
func (r *PgxEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var email string
	err = tx.QueryRow(ctx, `SELECT email FROM employees WHERE employee_id = $1 FOR UPDATE;`, employeeID).Scan(&email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock employee %d: %w", employeeID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM attendance WHERE employee_id = $1;`, employeeID); err != nil {
		return fmt.Errorf("failed to delete attendance for employee %d: %w", employeeID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM leave_requests WHERE employee_id = $1;`, employeeID); err != nil {
		return fmt.Errorf("failed to delete leave requests for employee %d: %w", employeeID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM notifications WHERE recipient_email = $1;`, email); err != nil {
		return fmt.Errorf("failed to delete notifications for employee %d: %w", employeeID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1;`, employeeID); err != nil {
		return fmt.Errorf("failed to delete employee %d: %w", employeeID, err)
	}

	return r.Commit(ctx, tx)
}
