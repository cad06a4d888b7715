package domain

import "time"

// LeaveStatus is the workflow state of a leave request. PENDING is the only
// non-terminal state; APPROVED and REJECTED are one-way.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "PENDING"
	LeaveApproved LeaveStatus = "APPROVED"
	LeaveRejected LeaveStatus = "REJECTED"
)

// LeaveType tags the category of a leave request.
type LeaveType string

const (
	LeaveSick   LeaveType = "SICK"
	LeaveCasual LeaveType = "CASUAL"
	LeaveAnnual LeaveType = "ANNUAL"
)

// ValidLeaveType reports whether t is one of the known leave categories.
func ValidLeaveType(t LeaveType) bool {
	switch t {
	case LeaveSick, LeaveCasual, LeaveAnnual:
		return true
	}
	return false
}

// LeaveRequest is an inclusive date range requested by one employee.
type LeaveRequest struct {
	LeaveID    int64       `json:"id"`
	EmployeeID int64       `json:"employeeId"`
	Employee   *Employee   `json:"employee,omitempty"`
	StartDate  time.Time   `json:"startDate"`
	EndDate    time.Time   `json:"endDate"`
	Reason     string      `json:"reason"`
	Type       LeaveType   `json:"type"`
	Status     LeaveStatus `json:"status"`
}

// Overlaps reports whether the inclusive ranges [l.StartDate, l.EndDate] and
// [start, end] share at least one day.
func (l LeaveRequest) Overlaps(start, end time.Time) bool {
	return !l.StartDate.After(end) && !l.EndDate.Before(start)
}
