package employee

// Employee is the read-side record the remote API returns. DepartmentName
// and PositionName are denormalized joins; the write side carries ids.
type Employee struct {
	EmployeeID          int64   `json:"employeeId"`
	EmployeeCode        string  `json:"employeeCode"`
	FirstName           string  `json:"firstName"`
	LastName            string  `json:"lastName"`
	Gender              string  `json:"gender"`
	BirthDate           string  `json:"birthDate"`
	HireDate            string  `json:"hireDate"`
	Email               string  `json:"email"`
	PhoneNumber         string  `json:"phoneNumber"`
	DepartmentName      string  `json:"departmentName"`
	PositionName        string  `json:"positionName"`
	Salary              float64 `json:"salary"`
	Status              string  `json:"status"`
	ProfilePictureURL   string  `json:"profilePictureUrl"`
	PresignedRequestURL string  `json:"presignedRequestUrl"`
}

// Upload is an optional binary image attached to a create or update.
type Upload struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Form is the write-side draft: foreign keys instead of names, plus an
// optional profile picture that travels as a separate multipart part.
type Form struct {
	EmployeeCode        string  `json:"employeeCode"`
	FirstName           string  `json:"firstName"`
	LastName            string  `json:"lastName"`
	Gender              string  `json:"gender"`
	BirthDate           string  `json:"birthDate"`
	HireDate            string  `json:"hireDate"`
	Email               string  `json:"email"`
	PhoneNumber         string  `json:"phoneNumber"`
	DepartmentID        int64   `json:"departmentId"`
	PositionID          int64   `json:"positionId"`
	Salary              float64 `json:"salary"`
	Status              string  `json:"status"`
	PresignedRequestURL *string `json:"presignedRequestUrl,omitempty"`
	ProfilePictureURL   *string `json:"profilePictureUrl,omitempty"`

	ProfilePicture *Upload `json:"-"`
}

const (
	GenderMale   = "M"
	GenderFemale = "F"

	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)
