package department

// Department is referenced by employees and positions.
type Department struct {
	DepartmentID int64  `json:"departmentId"`
	Name         string `json:"name"`
	Description  string `json:"description"`
}

// Form is the write-side draft.
type Form struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
