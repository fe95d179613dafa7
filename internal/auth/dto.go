package auth

// LoginRequest carries the credentials entered on the login form.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest carries the self-registration form.
type RegisterRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	EmployeeID int64  `json:"employeeId"`
}

// RedirectResponse tells the shell where to navigate after a flow.
type RedirectResponse struct {
	Redirect string `json:"redirect"`
}

// MeResponse is the decoded identity of the current session.
type MeResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
