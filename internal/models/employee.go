package models

import "github.com/shopspring/decimal"

// Employee mirrors the employees table.
type Employee struct {
	EmployeeID   int64            `db:"employee_id"`
	FirstName    string           `db:"first_name"`
	LastName     string           `db:"last_name"`
	Email        string           `db:"email"`
	DepartmentID *int64           `db:"department_id"`
	Position     *string          `db:"position"`
	Salary       *decimal.Decimal `db:"salary"`
	PasswordHash *string          `db:"password_hash"`
	Role         *string          `db:"role"`
}
