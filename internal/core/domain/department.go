package domain

// Department groups employees in the directory.
type Department struct {
	DepartmentID int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
}
