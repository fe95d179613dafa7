package employee

import (
	"regexp"
	"time"

	employeemodel "github.com/pattarapon/hr-console/internal/core/datamodel/employee"
	"github.com/pattarapon/hr-console/internal/validation"
)

var (
	emailRe = regexp.MustCompile(`^[\w-.]+@([\w-]+\.)+[\w-]{2,4}$`)
	phoneRe = regexp.MustCompile(`^\d{9,10}$`)
)

// RequiredFields is the fixed list a failed submit marks as touched.
var RequiredFields = []string{
	"employeeCode", "firstName", "lastName", "email", "phoneNumber",
	"birthDate", "hireDate", "departmentId", "positionId", "gender", "status",
}

// ValidateForm checks an employee draft before it may reach the network.
func ValidateForm(form employeemodel.Form) validation.Result {
	v := validation.New()

	v.RequireString("employeeCode", form.EmployeeCode)
	v.RequireString("firstName", form.FirstName)
	v.RequireString("lastName", form.LastName)
	v.RequireString("email", form.Email).
		Matches("email", form.Email, emailRe)
	v.RequireString("phoneNumber", form.PhoneNumber).
		Matches("phoneNumber", form.PhoneNumber, phoneRe)
	v.RequireString("birthDate", form.BirthDate)
	v.RequireString("hireDate", form.HireDate)
	v.RequireID("departmentId", form.DepartmentID)
	v.RequireID("positionId", form.PositionID)
	v.RequireString("gender", form.Gender).
		OneOf("gender", form.Gender, employeemodel.GenderMale, employeemodel.GenderFemale)
	v.RequireString("status", form.Status).
		OneOf("status", form.Status, employeemodel.StatusActive, employeemodel.StatusInactive)
	v.Positive("salary", form.Salary)
	v.Check("hireDate", validDateRange(form.BirthDate, form.HireDate), validation.KindInvalidRange)

	return v.Result()
}

// validDateRange enforces birth strictly before hire when both parse.
func validDateRange(birth, hire string) bool {
	if birth == "" || hire == "" {
		return true
	}
	b, err := time.Parse("2006-01-02", birth)
	if err != nil {
		return true
	}
	h, err := time.Parse("2006-01-02", hire)
	if err != nil {
		return true
	}
	return b.Before(h)
}
