package dto

import (
	"github.com/bs23/ems_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest defines the data for creating a directory entry.
// Password and role are optional: employees without a password cannot log in,
// and a blank role defaults to EMPLOYEE.
type CreateEmployeeRequest struct {
	FirstName    string           `json:"firstName" binding:"required"`
	LastName     string           `json:"lastName" binding:"required"`
	Email        string           `json:"email" binding:"required,email"`
	DepartmentID *int64           `json:"departmentId"`
	Position     string           `json:"position"`
	Salary       *decimal.Decimal `json:"salary"`
	Password     string           `json:"password"`
	Role         string           `json:"role"`
}

// UpdateEmployeeRequest defines the data allowed for updating an employee.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateEmployeeRequest struct {
	FirstName    *string          `json:"firstName"`
	LastName     *string          `json:"lastName"`
	Email        *string          `json:"email" binding:"omitempty,email"`
	DepartmentID *int64           `json:"departmentId"`
	Position     *string          `json:"position"`
	Salary       *decimal.Decimal `json:"salary"`
	Password     *string          `json:"password"`
	Role         *string          `json:"role"`
}

// EmployeeResponse is the outward representation of an employee.
type EmployeeResponse struct {
	ID         int64               `json:"id"`
	FirstName  string              `json:"firstName"`
	LastName   string              `json:"lastName"`
	Email      string              `json:"email"`
	Department *DepartmentResponse `json:"department,omitempty"`
	Position   string              `json:"position,omitempty"`
	Salary     *decimal.Decimal    `json:"salary,omitempty"`
	Role       string              `json:"role,omitempty"`
}

// ToEmployeeResponse converts a domain.Employee to its response DTO.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:        e.EmployeeID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
		Position:  e.Position,
		Salary:    e.Salary,
		Role:      e.Role,
	}
	if e.Department != nil {
		dept := ToDepartmentResponse(e.Department)
		resp.Department = &dept
	}
	return resp
}

// ToEmployeeListResponse converts a slice of domain employees.
func ToEmployeeListResponse(employees []domain.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, len(employees))
	for i := range employees {
		out[i] = ToEmployeeResponse(&employees[i])
	}
	return out
}
