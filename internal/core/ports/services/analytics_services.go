package services

import (
	"context"

	"github.com/bs23/ems_backend/internal/dto"
)

// AnalyticsSvcFacade computes the read-only dashboard aggregations.
type AnalyticsSvcFacade interface {
	// DepartmentCounts returns the employee headcount per department.
	DepartmentCounts(ctx context.Context) ([]dto.DepartmentEmployeeCount, error)

	// AttendanceTrends returns check-in counts per calendar day, ascending.
	AttendanceTrends(ctx context.Context) ([]dto.AttendanceTrend, error)

	// PayrollSummary returns total and average salary per department.
	PayrollSummary(ctx context.Context) ([]dto.PayrollSummary, error)

	// Dashboard returns the combined admin dashboard aggregate.
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
}
