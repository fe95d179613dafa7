package account

// Account is the denormalized employee+credential view the remote API
// returns. UserID is nil until a credential is created for the employee;
// once present it is the immutable identity for update and delete.
type Account struct {
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
	UserID              *int64  `json:"userId"`
	Username            string  `json:"username"`
	Role                string  `json:"role"`
	ProfilePictureURL   string  `json:"profilePictureUrl"`
	PresignedRequestURL string  `json:"presignedRequestUrl"`
}

// HasCredentials reports whether a login exists for the employee.
func (a Account) HasCredentials() bool {
	return a.UserID != nil
}

// Form is the credential draft. ConfirmPassword never leaves the console.
type Form struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
	EmployeeID      int64  `json:"employeeId"`
}

const (
	RoleAdmin    = "ADMIN"
	RoleHR       = "HR"
	RoleEmployee = "EMPLOYEE"
)
