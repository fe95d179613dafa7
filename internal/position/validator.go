package position

import (
	positionmodel "github.com/pattarapon/hr-console/internal/core/datamodel/position"
	"github.com/pattarapon/hr-console/internal/validation"
)

// RequiredFields is the fixed list a failed submit marks as touched.
var RequiredFields = []string{"title", "level", "description", "departmentId"}

func ValidateForm(form positionmodel.Form) validation.Result {
	v := validation.New()
	v.RequireString("title", form.Title)
	v.RequireString("level", form.Level)
	v.RequireString("description", form.Description)
	v.RequireID("departmentId", form.DepartmentID)
	return v.Result()
}
