package position

import (
	"context"
	"log/slog"
	"sync"

	departmentmodel "github.com/pattarapon/hr-console/internal/core/datamodel/department"
	positionmodel "github.com/pattarapon/hr-console/internal/core/datamodel/position"
	"github.com/pattarapon/hr-console/internal/listctrl"
)

type PositionAPI interface {
	List(ctx context.Context) ([]positionmodel.Position, error)
	Create(ctx context.Context, form positionmodel.Form) error
	Update(ctx context.Context, id int64, form positionmodel.Form) error
	Remove(ctx context.Context, id int64) error
}

type DepartmentAPI interface {
	List(ctx context.Context) ([]departmentmodel.Department, error)
}

const fallbackRefID = int64(1)

// Screen is the position management screen plus the department reference
// list its form selects from.
type Screen struct {
	Controller *listctrl.Controller[positionmodel.Position, positionmodel.Form]

	departments DepartmentAPI
	logger      *slog.Logger

	mu             sync.RWMutex
	departmentRefs []departmentmodel.Department
}

func NewScreen(positions PositionAPI, departments DepartmentAPI, logger *slog.Logger) *Screen {
	s := &Screen{
		departments: departments,
		logger:      logger,
	}

	s.Controller = listctrl.New(listctrl.Config[positionmodel.Position, positionmodel.Form]{
		Name:   "positions",
		ItemID: func(p positionmodel.Position) int64 { return p.PositionID },
		SearchFields: []func(positionmodel.Position) string{
			func(p positionmodel.Position) string { return p.Title },
			func(p positionmodel.Position) string { return p.Level },
			func(p positionmodel.Position) string { return p.Description },
			func(p positionmodel.Position) string { return p.DepartmentName },
		},
		SortKeys: map[string]func(positionmodel.Position) listctrl.SortKey{
			"title":          func(p positionmodel.Position) listctrl.SortKey { return listctrl.StringKey(p.Title) },
			"level":          func(p positionmodel.Position) listctrl.SortKey { return listctrl.StringKey(p.Level) },
			"description":    func(p positionmodel.Position) listctrl.SortKey { return listctrl.StringKey(p.Description) },
			"departmentName": func(p positionmodel.Position) listctrl.SortKey { return listctrl.StringKey(p.DepartmentName) },
		},
		RequiredFields: RequiredFields,
		DefaultDraft:   s.defaultDraft,
		ResolveDraft:   s.resolveDraft,
		Validate:       ValidateForm,
		Bindings: listctrl.Bindings[positionmodel.Position, positionmodel.Form]{
			List:     positions.List,
			LoadRefs: s.loadRefs,
			Create:   positions.Create,
			Update:   positions.Update,
			Remove:   positions.Remove,
		},
		Messages: listctrl.Messages{
			Created:      "Position created",
			Updated:      "Position updated",
			Deleted:      "Position deleted",
			LoadFailed:   "Failed to load positions",
			SaveFailed:   "Failed to save position",
			DeleteFailed: "Failed to delete position",
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

// defaultDraft preselects the first known department so a fresh form is
// submittable without touching the selector.
func (s *Screen) defaultDraft() positionmodel.Form {
	s.mu.RLock()
	defer s.mu.RUnlock()
	departmentID := fallbackRefID
	if len(s.departmentRefs) > 0 {
		departmentID = s.departmentRefs[0].DepartmentID
	}
	return positionmodel.Form{DepartmentID: departmentID}
}

func (s *Screen) resolveDraft(ctx context.Context, p positionmodel.Position) (positionmodel.Form, error) {
	return positionmodel.Form{
		Title:        p.Title,
		Level:        p.Level,
		Description:  p.Description,
		DepartmentID: s.departmentIDByName(p.DepartmentName),
	}, nil
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
