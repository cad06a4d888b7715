package dto

import (
	"github.com/bs23/ems_backend/internal/core/domain"
)

// CreateLeaveRequest is the payload for requesting leave. The employee is
// taken from the authenticated caller, never from the body.
type CreateLeaveRequest struct {
	StartDate Date   `json:"startDate" binding:"required"`
	EndDate   Date   `json:"endDate" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
	Type      string `json:"type" binding:"required"`
}

// LeaveResponse is the outward representation of a leave request.
type LeaveResponse struct {
	ID           int64  `json:"id"`
	EmployeeID   int64  `json:"employeeId"`
	EmployeeName string `json:"employeeName,omitempty"`
	StartDate    Date   `json:"startDate"`
	EndDate      Date   `json:"endDate"`
	Reason       string `json:"reason"`
	Type         string `json:"type"`
	Status       string `json:"status"`
}

// ToLeaveResponse converts a domain.LeaveRequest to its response DTO.
func ToLeaveResponse(l *domain.LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:         l.LeaveID,
		EmployeeID: l.EmployeeID,
		StartDate:  Date{Time: l.StartDate},
		EndDate:    Date{Time: l.EndDate},
		Reason:     l.Reason,
		Type:       string(l.Type),
		Status:     string(l.Status),
	}
	if l.Employee != nil {
		resp.EmployeeName = l.Employee.FullName()
	}
	return resp
}

// ToLeaveListResponse converts a slice of domain leave requests.
func ToLeaveListResponse(leaves []domain.LeaveRequest) []LeaveResponse {
	out := make([]LeaveResponse, len(leaves))
	for i := range leaves {
		out[i] = ToLeaveResponse(&leaves[i])
	}
	return out
}
