package position

// Position is a job title within a department. Level is a free-text label.
type Position struct {
	PositionID     int64  `json:"positionId"`
	Title          string `json:"title"`
	Level          string `json:"level"`
	Description    string `json:"description"`
	DepartmentName string `json:"departmentName"`
}

// Form is the write-side draft; the department travels as an id.
type Form struct {
	Title        string `json:"title"`
	Level        string `json:"level"`
	Description  string `json:"description"`
	DepartmentID int64  `json:"departmentId"`
}
