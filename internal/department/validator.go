package department

import (
	departmentmodel "github.com/pattarapon/hr-console/internal/core/datamodel/department"
	"github.com/pattarapon/hr-console/internal/validation"
)

// RequiredFields is the fixed list a failed submit marks as touched.
var RequiredFields = []string{"name", "description"}

func ValidateForm(form departmentmodel.Form) validation.Result {
	v := validation.New()
	v.RequireString("name", form.Name)
	v.RequireString("description", form.Description)
	return v.Result()
}
