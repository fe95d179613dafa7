package department

import (
	"context"
	"log/slog"

	departmentmodel "github.com/pattarapon/hr-console/internal/core/datamodel/department"
	"github.com/pattarapon/hr-console/internal/listctrl"
)

type DepartmentAPI interface {
	List(ctx context.Context) ([]departmentmodel.Department, error)
	Create(ctx context.Context, form departmentmodel.Form) error
	Update(ctx context.Context, id int64, form departmentmodel.Form) error
	Remove(ctx context.Context, id int64) error
}

// Screen is the department management screen.
type Screen struct {
	Controller *listctrl.Controller[departmentmodel.Department, departmentmodel.Form]
}

func NewScreen(departments DepartmentAPI, logger *slog.Logger) *Screen {
	s := &Screen{}

	s.Controller = listctrl.New(listctrl.Config[departmentmodel.Department, departmentmodel.Form]{
		Name:   "departments",
		ItemID: func(d departmentmodel.Department) int64 { return d.DepartmentID },
		SearchFields: []func(departmentmodel.Department) string{
			func(d departmentmodel.Department) string { return d.Name },
			func(d departmentmodel.Department) string { return d.Description },
		},
		SortKeys: map[string]func(departmentmodel.Department) listctrl.SortKey{
			"name":        func(d departmentmodel.Department) listctrl.SortKey { return listctrl.StringKey(d.Name) },
			"description": func(d departmentmodel.Department) listctrl.SortKey { return listctrl.StringKey(d.Description) },
		},
		RequiredFields: RequiredFields,
		DefaultDraft: func() departmentmodel.Form {
			return departmentmodel.Form{}
		},
		ResolveDraft: func(ctx context.Context, d departmentmodel.Department) (departmentmodel.Form, error) {
			return departmentmodel.Form{Name: d.Name, Description: d.Description}, nil
		},
		Validate: ValidateForm,
		Bindings: listctrl.Bindings[departmentmodel.Department, departmentmodel.Form]{
			List:   departments.List,
			Create: departments.Create,
			Update: departments.Update,
			Remove: departments.Remove,
		},
		Messages: listctrl.Messages{
			Created:      "Department created",
			Updated:      "Department updated",
			Deleted:      "Department deleted",
			LoadFailed:   "Failed to load departments",
			SaveFailed:   "Failed to save department",
			DeleteFailed: "Failed to delete department",
		},
		Logger: logger,
	})

	return s
}
