package employee

import (
	"context"
	"log/slog"
	"sync"

	departmentmodel "github.com/pattarapon/hr-console/internal/core/datamodel/department"
	employeemodel "github.com/pattarapon/hr-console/internal/core/datamodel/employee"
	positionmodel "github.com/pattarapon/hr-console/internal/core/datamodel/position"
	"github.com/pattarapon/hr-console/internal/listctrl"
)

type EmployeeAPI interface {
	List(ctx context.Context) ([]employeemodel.Employee, error)
	Create(ctx context.Context, form employeemodel.Form) error
	Update(ctx context.Context, id int64, form employeemodel.Form) error
	Remove(ctx context.Context, id int64) error
}

type DepartmentAPI interface {
	List(ctx context.Context) ([]departmentmodel.Department, error)
}

type PositionAPI interface {
	ListByDepartment(ctx context.Context, departmentID int64) ([]positionmodel.Position, error)
}

// fallbackRefID stands in when a denormalized name no longer resolves to
// a reference row, matching what the edit flow always did.
const fallbackRefID = int64(1)

// Screen is the employee management screen: the generic controller plus
// the department/position reference lists its form depends on.
type Screen struct {
	Controller *listctrl.Controller[employeemodel.Employee, employeemodel.Form]

	employees   EmployeeAPI
	departments DepartmentAPI
	positions   PositionAPI
	logger      *slog.Logger

	mu             sync.RWMutex
	departmentRefs []departmentmodel.Department
}

func NewScreen(employees EmployeeAPI, departments DepartmentAPI, positions PositionAPI, logger *slog.Logger) *Screen {
	s := &Screen{
		employees:   employees,
		departments: departments,
		positions:   positions,
		logger:      logger,
	}

	s.Controller = listctrl.New(listctrl.Config[employeemodel.Employee, employeemodel.Form]{
		Name:   "employees",
		ItemID: func(e employeemodel.Employee) int64 { return e.EmployeeID },
		SearchFields: []func(employeemodel.Employee) string{
			func(e employeemodel.Employee) string { return e.FirstName },
			func(e employeemodel.Employee) string { return e.LastName },
			func(e employeemodel.Employee) string { return e.DepartmentName },
			func(e employeemodel.Employee) string { return e.PositionName },
		},
		SortKeys: map[string]func(employeemodel.Employee) listctrl.SortKey{
			"employeeCode":   func(e employeemodel.Employee) listctrl.SortKey { return listctrl.StringKey(e.EmployeeCode) },
			"firstName":      func(e employeemodel.Employee) listctrl.SortKey { return listctrl.StringKey(e.FirstName) },
			"lastName":       func(e employeemodel.Employee) listctrl.SortKey { return listctrl.StringKey(e.LastName) },
			"email":          func(e employeemodel.Employee) listctrl.SortKey { return listctrl.StringKey(e.Email) },
			"departmentName": func(e employeemodel.Employee) listctrl.SortKey { return listctrl.StringKey(e.DepartmentName) },
			"positionName":   func(e employeemodel.Employee) listctrl.SortKey { return listctrl.StringKey(e.PositionName) },
			"status":         func(e employeemodel.Employee) listctrl.SortKey { return listctrl.StringKey(e.Status) },
			"salary":         func(e employeemodel.Employee) listctrl.SortKey { return listctrl.NumberKey(e.Salary) },
			"birthDate":      func(e employeemodel.Employee) listctrl.SortKey { return listctrl.DateKey(e.BirthDate) },
			"hireDate":       func(e employeemodel.Employee) listctrl.SortKey { return listctrl.DateKey(e.HireDate) },
		},
		RequiredFields: RequiredFields,
		DefaultDraft: func() employeemodel.Form {
			return employeemodel.Form{}
		},
		ResolveDraft: s.resolveDraft,
		Validate:     ValidateForm,
		Bindings: listctrl.Bindings[employeemodel.Employee, employeemodel.Form]{
			List:     employees.List,
			LoadRefs: s.loadRefs,
			Create:   employees.Create,
			Update:   employees.Update,
			Remove:   employees.Remove,
		},
		Messages: listctrl.Messages{
			Created:      "Employee created",
			Updated:      "Employee updated",
			Deleted:      "Employee deleted",
			LoadFailed:   "Failed to load employees",
			SaveFailed:   "Failed to save employee",
			DeleteFailed: "Failed to delete employee",
		},
		Logger: logger,
	})

	return s
}

func (s *Screen) loadRefs(ctx context.Context) error {
	refs, err := s.departments.List(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.departmentRefs = refs
	s.mu.Unlock()
	return nil
}

// DepartmentOptions exposes the cached reference list for the form.
func (s *Screen) DepartmentOptions() []departmentmodel.Department {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]departmentmodel.Department, len(s.departmentRefs))
	copy(out, s.departmentRefs)
	return out
}

// PositionOptions narrows the position choices to one department, the
// dependent fetch the form runs when its department selection changes.
func (s *Screen) PositionOptions(ctx context.Context, departmentID int64) ([]positionmodel.Position, error) {
	return s.positions.ListByDepartment(ctx, departmentID)
}

// resolveDraft maps a listed employee back into an editable draft. The
// list view carries denormalized names, the form needs ids, so each name
// is looked up in the cached reference lists; the position lookup first
// refetches positions for the resolved department so the two stay
// consistent.
func (s *Screen) resolveDraft(ctx context.Context, emp employeemodel.Employee) (employeemodel.Form, error) {
	departmentID := s.departmentIDByName(emp.DepartmentName)

	positionID := fallbackRefID
	positions, err := s.positions.ListByDepartment(ctx, departmentID)
	if err != nil {
		return employeemodel.Form{}, err
	}
	for _, p := range positions {
		if p.Title == emp.PositionName {
			positionID = p.PositionID
			break
		}
	}

	form := employeemodel.Form{
		EmployeeCode: emp.EmployeeCode,
		FirstName:    emp.FirstName,
		LastName:     emp.LastName,
		Gender:       emp.Gender,
		BirthDate:    emp.BirthDate,
		HireDate:     emp.HireDate,
		Email:        emp.Email,
		PhoneNumber:  emp.PhoneNumber,
		DepartmentID: departmentID,
		PositionID:   positionID,
		Salary:       emp.Salary,
		Status:       emp.Status,
	}
	if emp.Gender == "" {
		form.Gender = employeemodel.GenderMale
	}
	if emp.Status == "" {
		form.Status = employeemodel.StatusActive
	}
	if emp.PresignedRequestURL != "" {
		form.PresignedRequestURL = &emp.PresignedRequestURL
	}
	if emp.ProfilePictureURL != "" {
		form.ProfilePictureURL = &emp.ProfilePictureURL
	}
	return form, nil
}

func (s *Screen) departmentIDByName(name string) int64 {
	if name == "" {
		return fallbackRefID
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.departmentRefs {
		if d.Name == name {
			return d.DepartmentID
		}
	}
	return fallbackRefID
}
