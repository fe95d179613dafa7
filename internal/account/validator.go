package account

import (
	accountmodel "github.com/pattarapon/hr-console/internal/core/datamodel/account"
	"github.com/pattarapon/hr-console/internal/validation"
)

const minPasswordLength = 8

// RequiredFields is the fixed list a failed submit marks as touched.
var RequiredFields = []string{"username", "password", "confirmPassword", "role", "employeeId"}

func ValidateForm(form accountmodel.Form) validation.Result {
	v := validation.New()

	v.RequireString("username", form.Username)
	v.RequireString("password", form.Password).
		MinLength("password", form.Password, minPasswordLength)
	v.RequireString("confirmPassword", form.ConfirmPassword).
		Equal("confirmPassword", form.ConfirmPassword, form.Password)
	v.RequireString("role", form.Role).
		OneOf("role", form.Role, accountmodel.RoleAdmin, accountmodel.RoleHR, accountmodel.RoleEmployee)
	v.RequireID("employeeId", form.EmployeeID)

	return v.Result()
}
