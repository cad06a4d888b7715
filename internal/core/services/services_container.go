package services

import (
	portsrepo "github.com/bs23/ems_backend/internal/core/ports/repositories"
	portssvc "github.com/bs23/ems_backend/internal/core/ports/services"
	"github.com/bs23/ems_backend/internal/platform/config"
	"github.com/bs23/ems_backend/internal/platform/mail"
)

// NewServiceContainer wires all services with their dependencies.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider, sender mail.Sender) *portssvc.ServiceContainer {
	identity := NewIdentityService(repos.UserRepo, repos.EmployeeRepo)
	token := NewTokenService(cfg)
	notification := NewNotificationService(repos.NotificationRepo, sender)

	return &portssvc.ServiceContainer{
		Identity:     identity,
		Token:        token,
		GoogleAuth:   NewGoogleAuthService(cfg, identity),
		Employee:     NewEmployeeService(repos.EmployeeRepo, repos.DepartmentRepo),
		Department:   NewDepartmentService(repos.DepartmentRepo),
		User:         NewUserService(repos.UserRepo),
		Attendance:   NewAttendanceService(repos.AttendanceRepo, repos.EmployeeRepo, identity),
		Leave:        NewLeaveService(repos.LeaveRepo, repos.EmployeeRepo, identity, notification, cfg.AdminNotifyEmail),
		Notification: notification,
		Analytics:    NewAnalyticsService(repos.EmployeeRepo, repos.DepartmentRepo, repos.AttendanceRepo),
	}
}
