package models

// Department mirrors the departments table.
type Department struct {
	DepartmentID int64   `db:"department_id"`
	Name         string  `db:"name"`
	Description  *string `db:"description"`
}
