package models

import "time"

// Attendance mirrors the attendance table.
type Attendance struct {
	AttendanceID int64      `db:"attendance_id"`
	EmployeeID   int64      `db:"employee_id"`
	CheckIn      *time.Time `db:"check_in"`
	CheckOut     *time.Time `db:"check_out"`
}
