package services_test

import (
	"context"
	"time"

	"github.com/bs23/ems_backend/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock repositories over the port interfaces ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	var saved *domain.User
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.User)
	}
	return saved, args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	var employee *domain.Employee
	if args.Get(0) != nil {
		employee = args.Get(0).(*domain.Employee)
	}
	return employee, args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeeByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	args := m.Called(ctx, email)
	var employee *domain.Employee
	if args.Get(0) != nil {
		employee = args.Get(0).(*domain.Employee)
	}
	return employee, args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeeByName(ctx context.Context, firstName, lastName string) (*domain.Employee, error) {
	args := m.Called(ctx, firstName, lastName)
	var employee *domain.Employee
	if args.Get(0) != nil {
		employee = args.Get(0).(*domain.Employee)
	}
	return employee, args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	var employees []domain.Employee
	if args.Get(0) != nil {
		employees = args.Get(0).([]domain.Employee)
	}
	return employees, args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeesByDepartment(ctx context.Context, departmentID int64) ([]domain.Employee, error) {
	args := m.Called(ctx, departmentID)
	var employees []domain.Employee
	if args.Get(0) != nil {
		employees = args.Get(0).([]domain.Employee)
	}
	return employees, args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	args := m.Called(ctx, employee)
	var saved *domain.Employee
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.Employee)
	}
	return saved, args.Error(1)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID int64) error {
	args := m.Called(ctx, employeeID)
	return args.Error(0)
}

type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) FindDepartmentByID(ctx context.Context, departmentID int64) (*domain.Department, error) {
	args := m.Called(ctx, departmentID)
	var department *domain.Department
	if args.Get(0) != nil {
		department = args.Get(0).(*domain.Department)
	}
	return department, args.Error(1)
}

func (m *MockDepartmentRepository) FindDepartments(ctx context.Context) ([]domain.Department, error) {
	args := m.Called(ctx)
	var departments []domain.Department
	if args.Get(0) != nil {
		departments = args.Get(0).([]domain.Department)
	}
	return departments, args.Error(1)
}

func (m *MockDepartmentRepository) ExistsDepartmentByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockDepartmentRepository) CountEmployees(ctx context.Context, departmentID int64) (int64, error) {
	args := m.Called(ctx, departmentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDepartmentRepository) SaveDepartment(ctx context.Context, department domain.Department) (*domain.Department, error) {
	args := m.Called(ctx, department)
	var saved *domain.Department
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.Department)
	}
	return saved, args.Error(1)
}

func (m *MockDepartmentRepository) UpdateDepartment(ctx context.Context, department domain.Department) error {
	args := m.Called(ctx, department)
	return args.Error(0)
}

func (m *MockDepartmentRepository) DeleteDepartment(ctx context.Context, departmentID int64) error {
	args := m.Called(ctx, departmentID)
	return args.Error(0)
}

type MockAttendanceRepository struct {
	mock.Mock
}

func (m *MockAttendanceRepository) FindAttendanceByID(ctx context.Context, attendanceID int64) (*domain.Attendance, error) {
	args := m.Called(ctx, attendanceID)
	var record *domain.Attendance
	if args.Get(0) != nil {
		record = args.Get(0).(*domain.Attendance)
	}
	return record, args.Error(1)
}

func (m *MockAttendanceRepository) FindAttendanceByEmployee(ctx context.Context, employeeID int64) ([]domain.Attendance, error) {
	args := m.Called(ctx, employeeID)
	var records []domain.Attendance
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.Attendance)
	}
	return records, args.Error(1)
}

func (m *MockAttendanceRepository) FindAllAttendance(ctx context.Context) ([]domain.Attendance, error) {
	args := m.Called(ctx)
	var records []domain.Attendance
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.Attendance)
	}
	return records, args.Error(1)
}

func (m *MockAttendanceRepository) SaveAttendance(ctx context.Context, attendance domain.Attendance) (*domain.Attendance, error) {
	args := m.Called(ctx, attendance)
	var saved *domain.Attendance
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.Attendance)
	}
	return saved, args.Error(1)
}

func (m *MockAttendanceRepository) UpdateAttendance(ctx context.Context, attendance domain.Attendance) error {
	args := m.Called(ctx, attendance)
	return args.Error(0)
}

func (m *MockAttendanceRepository) CompleteLatestForWindow(ctx context.Context, employeeID int64, start, end, checkOut time.Time) (*domain.Attendance, error) {
	args := m.Called(ctx, employeeID, start, end, checkOut)
	var record *domain.Attendance
	if args.Get(0) != nil {
		record = args.Get(0).(*domain.Attendance)
	}
	return record, args.Error(1)
}

type MockLeaveRepository struct {
	mock.Mock
}

func (m *MockLeaveRepository) FindLeaveByID(ctx context.Context, leaveID int64) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, leaveID)
	var leave *domain.LeaveRequest
	if args.Get(0) != nil {
		leave = args.Get(0).(*domain.LeaveRequest)
	}
	return leave, args.Error(1)
}

func (m *MockLeaveRepository) FindLeavesByEmployee(ctx context.Context, employeeID int64) ([]domain.LeaveRequest, error) {
	args := m.Called(ctx, employeeID)
	var leaves []domain.LeaveRequest
	if args.Get(0) != nil {
		leaves = args.Get(0).([]domain.LeaveRequest)
	}
	return leaves, args.Error(1)
}

func (m *MockLeaveRepository) FindLeavesByStatus(ctx context.Context, status domain.LeaveStatus) ([]domain.LeaveRequest, error) {
	args := m.Called(ctx, status)
	var leaves []domain.LeaveRequest
	if args.Get(0) != nil {
		leaves = args.Get(0).([]domain.LeaveRequest)
	}
	return leaves, args.Error(1)
}

func (m *MockLeaveRepository) FindAllLeaves(ctx context.Context) ([]domain.LeaveRequest, error) {
	args := m.Called(ctx)
	var leaves []domain.LeaveRequest
	if args.Get(0) != nil {
		leaves = args.Get(0).([]domain.LeaveRequest)
	}
	return leaves, args.Error(1)
}

func (m *MockLeaveRepository) CreateLeaveRequest(ctx context.Context, leave domain.LeaveRequest) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, leave)
	var created *domain.LeaveRequest
	if args.Get(0) != nil {
		created = args.Get(0).(*domain.LeaveRequest)
	}
	return created, args.Error(1)
}

func (m *MockLeaveRepository) UpdateLeaveStatusIfPending(ctx context.Context, leaveID int64, status domain.LeaveStatus) error {
	args := m.Called(ctx, leaveID, status)
	return args.Error(0)
}

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) (*domain.Notification, error) {
	args := m.Called(ctx, notification)
	var saved *domain.Notification
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.Notification)
	}
	return saved, args.Error(1)
}

func (m *MockNotificationRepository) FindNotificationByID(ctx context.Context, notificationID int64) (*domain.Notification, error) {
	args := m.Called(ctx, notificationID)
	var notification *domain.Notification
	if args.Get(0) != nil {
		notification = args.Get(0).(*domain.Notification)
	}
	return notification, args.Error(1)
}

func (m *MockNotificationRepository) FindNotifications(ctx context.Context) ([]domain.Notification, error) {
	args := m.Called(ctx)
	var notifications []domain.Notification
	if args.Get(0) != nil {
		notifications = args.Get(0).([]domain.Notification)
	}
	return notifications, args.Error(1)
}

func (m *MockNotificationRepository) DeleteNotification(ctx context.Context, notificationID int64) error {
	args := m.Called(ctx, notificationID)
	return args.Error(0)
}

// MockNotificationSvc records dispatched notifications without touching mail.
type MockNotificationSvc struct {
	mock.Mock
}

func (m *MockNotificationSvc) Notify(ctx context.Context, to, subject, body string) {
	m.Called(ctx, to, subject, body)
}

func (m *MockNotificationSvc) SendAndLog(ctx context.Context, to, subject, body string) *domain.Notification {
	args := m.Called(ctx, to, subject, body)
	var notification *domain.Notification
	if args.Get(0) != nil {
		notification = args.Get(0).(*domain.Notification)
	}
	return notification
}

func (m *MockNotificationSvc) ListNotifications(ctx context.Context) ([]domain.Notification, error) {
	args := m.Called(ctx)
	var notifications []domain.Notification
	if args.Get(0) != nil {
		notifications = args.Get(0).([]domain.Notification)
	}
	return notifications, args.Error(1)
}

func (m *MockNotificationSvc) GetNotificationByID(ctx context.Context, notificationID int64) (*domain.Notification, error) {
	args := m.Called(ctx, notificationID)
	var notification *domain.Notification
	if args.Get(0) != nil {
		notification = args.Get(0).(*domain.Notification)
	}
	return notification, args.Error(1)
}

func (m *MockNotificationSvc) DeleteNotification(ctx context.Context, notificationID int64) error {
	args := m.Called(ctx, notificationID)
	return args.Error(0)
}
