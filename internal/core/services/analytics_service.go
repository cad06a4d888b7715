package services

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bs23/ems_backend/internal/core/domain"
	portsrepo "github.com/bs23/ems_backend/internal/core/ports/repositories"
	portssvc "github.com/bs23/ems_backend/internal/core/ports/services"
	"github.com/bs23/ems_backend/internal/dto"
)

const unassignedDepartment = "Unassigned"

// analyticsService computes the read-only dashboard aggregations. Everything
// is derived on demand from the primary tables; nothing is materialized.
type analyticsService struct {
	employeeRepo   portsrepo.EmployeeReader
	departmentRepo portsrepo.DepartmentRepositoryFacade
	attendanceRepo portsrepo.AttendanceReader
	now            func() time.Time
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(employeeRepo portsrepo.EmployeeReader, departmentRepo portsrepo.DepartmentRepositoryFacade, attendanceRepo portsrepo.AttendanceReader) portssvc.AnalyticsSvcFacade {
	return &analyticsService{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

var _ portssvc.AnalyticsSvcFacade = (*analyticsService)(nil)

// DepartmentCounts returns the employee headcount per department, including
// empty departments. Employees without a department fall into an Unassigned
// bucket.
func (s *analyticsService) DepartmentCounts(ctx context.Context) ([]dto.DepartmentEmployeeCount, error) {
	departments, err := s.departmentRepo.FindDepartments(ctx)
	if err != nil {
		return nil, err
	}
	employees, err := s.employeeRepo.FindEmployees(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(departments)+1)
	for _, d := range departments {
		counts[d.Name] = 0
	}
	var unassigned int64
	for _, e := range employees {
		if e.Department == nil {
			unassigned++
			continue
		}
		counts[e.Department.Name]++
	}

	out := make([]dto.DepartmentEmployeeCount, 0, len(counts)+1)
	for _, d := range departments {
		out = append(out, dto.DepartmentEmployeeCount{Department: d.Name, EmployeeCount: counts[d.Name]})
	}
	if unassigned > 0 {
		out = append(out, dto.DepartmentEmployeeCount{Department: unassignedDepartment, EmployeeCount: unassigned})
	}
	return out, nil
}

// AttendanceTrends returns check-in counts per calendar day, ascending.
func (s *analyticsService) AttendanceTrends(ctx context.Context) ([]dto.AttendanceTrend, error) {
	records, err := s.attendanceRepo.FindAllAttendance(ctx)
	if err != nil {
		return nil, err
	}

	perDay := make(map[string]int64)
	for _, r := range records {
		if r.CheckIn == nil {
			continue
		}
		perDay[r.CheckIn.Format(time.DateOnly)]++
	}

	days := make([]string, 0, len(perDay))
	for day := range perDay {
		days = append(days, day)
	}
	sort.Strings(days)

	out := make([]dto.AttendanceTrend, len(days))
	for i, day := range days {
		out[i] = dto.AttendanceTrend{Date: day, TotalCheckIns: perDay[day]}
	}
	return out, nil
}

// PayrollSummary returns total and average salary per department. Employees
// without a recorded salary are excluded from the averages.
func (s *analyticsService) PayrollSummary(ctx context.Context) ([]dto.PayrollSummary, error) {
	employees, err := s.employeeRepo.FindEmployees(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal)
	headcounts := make(map[string]int64)
	order := make([]string, 0)
	for _, e := range employees {
		if e.Salary == nil {
			continue
		}
		name := unassignedDepartment
		if e.Department != nil {
			name = e.Department.Name
		}
		if _, seen := totals[name]; !seen {
			order = append(order, name)
		}
		totals[name] = totals[name].Add(*e.Salary)
		headcounts[name]++
	}
	sort.Strings(order)

	out := make([]dto.PayrollSummary, len(order))
	for i, name := range order {
		out[i] = dto.PayrollSummary{
			Department:    name,
			TotalSalary:   totals[name],
			AverageSalary: totals[name].Div(decimal.NewFromInt(headcounts[name])).Round(2),
		}
	}
	return out, nil
}

// Dashboard returns the combined admin dashboard aggregate. Attendance stats
// cover the current local calendar day only.
func (s *analyticsService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	employees, err := s.employeeRepo.FindEmployees(ctx)
	if err != nil {
		return nil, err
	}
	departments, err := s.departmentRepo.FindDepartments(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.attendanceRepo.FindAllAttendance(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		EmployeeCount:   int64(len(employees)),
		DepartmentCount: int64(len(departments)),
	}

	start, end := localDayWindow(s.now())
	today := make([]domain.Attendance, 0)
	seen := make(map[int64]struct{})
	for _, r := range records {
		if r.CheckIn == nil || r.CheckIn.Before(start) || r.CheckIn.After(end) {
			continue
		}
		today = append(today, r)
		if _, ok := seen[r.EmployeeID]; ok {
			continue
		}
		seen[r.EmployeeID] = struct{}{}
		if r.IsPresent() {
			resp.AttendanceStats.Present++
		} else {
			resp.AttendanceStats.Open++
		}
	}
	resp.AttendanceStats.Absent = resp.EmployeeCount - int64(len(seen))

	resp.RecentEmployees = dto.ToEmployeeListResponse(lastN(employees, 5))
	resp.RecentAttendance = dto.ToAttendanceListResponse(lastN(today, 5))
	return resp, nil
}

// lastN returns the trailing n elements of s, newest last.
func lastN[T any](s []T, n int) []T {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
