package dto

import "github.com/bs23/ems_backend/internal/core/domain"

// CreateDepartmentRequest defines the data for creating a department.
type CreateDepartmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateDepartmentRequest defines the data allowed for updating a department.
type UpdateDepartmentRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// DepartmentResponse is the outward representation of a department.
type DepartmentResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ToDepartmentResponse converts a domain.Department to its response DTO.
func ToDepartmentResponse(d *domain.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:          d.DepartmentID,
		Name:        d.Name,
		Description: d.Description,
	}
}

// ToDepartmentListResponse converts a slice of domain departments.
func ToDepartmentListResponse(departments []domain.Department) []DepartmentResponse {
	out := make([]DepartmentResponse, len(departments))
	for i := range departments {
		out[i] = ToDepartmentResponse(&departments[i])
	}
	return out
}
