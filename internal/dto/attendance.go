package dto

import (
	"time"

	"github.com/bs23/ems_backend/internal/core/domain"
)

// MarkAttendanceRequest is the self-service attendance payload; the employee
// is resolved from the authenticated caller's identifier.
type MarkAttendanceRequest struct {
	Type string `json:"type" binding:"required"`
}

// AttendanceResponse is the outward representation of an attendance record.
type AttendanceResponse struct {
	ID         int64      `json:"id"`
	EmployeeID int64      `json:"employeeId"`
	CheckIn    *time.Time `json:"checkIn,omitempty"`
	CheckOut   *time.Time `json:"checkOut,omitempty"`
}

// ToAttendanceResponse converts a domain.Attendance to its response DTO.
func ToAttendanceResponse(a *domain.Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:         a.AttendanceID,
		EmployeeID: a.EmployeeID,
		CheckIn:    a.CheckIn,
		CheckOut:   a.CheckOut,
	}
}

// ToAttendanceListResponse converts a slice of domain attendance records.
func ToAttendanceListResponse(records []domain.Attendance) []AttendanceResponse {
	out := make([]AttendanceResponse, len(records))
	for i := range records {
		out[i] = ToAttendanceResponse(&records[i])
	}
	return out
}
