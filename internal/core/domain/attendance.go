package domain

import "time"

// AttendanceMarkType is the self-service attendance action submitted by an
// authenticated employee.
type AttendanceMarkType string

const (
	MarkCheckIn  AttendanceMarkType = "CHECK_IN"
	MarkCheckOut AttendanceMarkType = "CHECK_OUT"
)

// Attendance is a single attendance record for one employee. A record with a
// check-in and no check-out is an open day. Check-out, once set, is never
// legitimately mutated again through the self-service path.
type Attendance struct {
	AttendanceID int64      `json:"id"`
	EmployeeID   int64      `json:"employeeId"`
	CheckIn      *time.Time `json:"checkIn,omitempty"`
	CheckOut     *time.Time `json:"checkOut,omitempty"`
}

// IsPresent reports whether the record counts as a present day, i.e. both
// timestamps are set.
func (a Attendance) IsPresent() bool {
	return a.CheckIn != nil && a.CheckOut != nil
}

// AttendanceReport is the per-employee aggregation recomputed on every call.
type AttendanceReport struct {
	EmployeeID       int64   `json:"employeeId"`
	EmployeeName     string  `json:"employeeName"`
	TotalDays        int     `json:"totalDays"`
	PresentDays      int     `json:"presentDays"`
	AbsentDays       int     `json:"absentDays"`
	TotalHoursWorked float64 `json:"totalHoursWorked"`
}
