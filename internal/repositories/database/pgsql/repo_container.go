package pgsql

import (
	portsrepo "github.com/bs23/ems_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		EmployeeRepo:     newPgxEmployeeRepository(dbPool),
		DepartmentRepo:   newPgxDepartmentRepository(dbPool),
		AttendanceRepo:   newPgxAttendanceRepository(dbPool),
		LeaveRepo:        newPgxLeaveRepository(dbPool),
		NotificationRepo: newPgxNotificationRepository(dbPool),
	}
}
