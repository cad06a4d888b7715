package models

import "time"

// LeaveRequest mirrors the leave_requests table.
type LeaveRequest struct {
	LeaveID    int64     `db:"leave_id"`
	EmployeeID int64     `db:"employee_id"`
	StartDate  time.Time `db:"start_date"`
	EndDate    time.Time `db:"end_date"`
	Reason     string    `db:"reason"`
	Type       string    `db:"leave_type"`
	Status     string    `db:"status"`
}
