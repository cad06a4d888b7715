package dto

import "github.com/shopspring/decimal"

// DepartmentEmployeeCount is the employee headcount for one department.
type DepartmentEmployeeCount struct {
	Department    string `json:"department"`
	EmployeeCount int64  `json:"employeeCount"`
}

// AttendanceTrend is the number of check-ins recorded on one calendar day.
type AttendanceTrend struct {
	Date          string `json:"date"`
	TotalCheckIns int64  `json:"totalCheckIns"`
}

// PayrollSummary aggregates salaries per department.
type PayrollSummary struct {
	Department    string          `json:"department"`
	TotalSalary   decimal.Decimal `json:"totalSalary"`
	AverageSalary decimal.Decimal `json:"averageSalary"`
}

// AttendanceStats buckets all attendance records for the dashboard.
type AttendanceStats struct {
	Present int64 `json:"present"`
	Absent  int64 `json:"absent"`
	Open    int64 `json:"leave"`
}

// DashboardResponse is the admin dashboard aggregate.
type DashboardResponse struct {
	EmployeeCount    int64                `json:"employeeCount"`
	DepartmentCount  int64                `json:"departmentCount"`
	RecentEmployees  []EmployeeResponse   `json:"recentEmployees"`
	AttendanceStats  AttendanceStats      `json:"attendanceStats"`
	RecentAttendance []AttendanceResponse `json:"recentAttendance"`
}
