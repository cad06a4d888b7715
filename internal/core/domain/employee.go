package domain

import "github.com/shopspring/decimal"

// DefaultEmployeeRole is assigned to employee accounts whose role tag is
// absent or blank.
const DefaultEmployeeRole = "EMPLOYEE"

// Employee represents a member of the employee directory. The email doubles
// as the employee's login identifier; a firstname.lastname alias derived from
// the name fields also resolves to the same account.
type Employee struct {
	EmployeeID   int64            `json:"id"`
	FirstName    string           `json:"firstName"`
	LastName     string           `json:"lastName"`
	Email        string           `json:"email"`
	DepartmentID *int64           `json:"departmentId,omitempty"`
	Department   *Department      `json:"department,omitempty"`
	Position     string           `json:"position,omitempty"`
	Salary       *decimal.Decimal `json:"salary,omitempty"`
	PasswordHash *string          `json:"-"`
	Role         string           `json:"role,omitempty"`
}

// FullName returns the display name used in notifications.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
