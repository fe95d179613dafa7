package position_test

import (
	"context"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	departmentmodel "github.com/pattarapon/hr-console/internal/core/datamodel/department"
	positionmodel "github.com/pattarapon/hr-console/internal/core/datamodel/position"
	"github.com/pattarapon/hr-console/internal/position"
)

type mockPositionAPI struct {
	items []positionmodel.Position
}

func (m *mockPositionAPI) List(ctx context.Context) ([]positionmodel.Position, error) {
	return m.items, nil
}

func (m *mockPositionAPI) Create(ctx context.Context, form positionmodel.Form) error {
	return nil
}

func (m *mockPositionAPI) Update(ctx context.Context, id int64, form positionmodel.Form) error {
	return nil
}

func (m *mockPositionAPI) Remove(ctx context.Context, id int64) error {
	return nil
}

type mockDepartmentAPI struct {
	items []departmentmodel.Department
}

func (m *mockDepartmentAPI) List(ctx context.Context) ([]departmentmodel.Department, error) {
	return m.items, nil
}

var _ = Describe("Screen", func() {
	var (
		screen *position.Screen
		ctx    context.Context
	)

	newScreen := func(departments []departmentmodel.Department) *position.Screen {
		logger := slog.New(slog.NewTextHandler(GinkgoWriter, nil))
		return position.NewScreen(
			&mockPositionAPI{items: []positionmodel.Position{
				{PositionID: 7, Title: "Backend Developer", DepartmentName: "Engineering"},
			}},
			&mockDepartmentAPI{items: departments},
			logger,
		)
	}

	BeforeEach(func() {
		ctx = context.Background()
		screen = newScreen([]departmentmodel.Department{
			{DepartmentID: 3, Name: "Engineering"},
			{DepartmentID: 5, Name: "Operations"},
		})
		Expect(screen.Controller.Load(ctx)).To(Succeed())
	})

	It("should preselect the first known department on a fresh form", func() {
		screen.Controller.StartCreate()
		draft, open := screen.Controller.Draft()
		Expect(open).To(BeTrue())
		Expect(draft.DepartmentID).To(Equal(int64(3)))
	})

	It("should fall back to id one before any departments are cached", func() {
		fresh := newScreen(nil)
		fresh.Controller.StartCreate()
		draft, _ := fresh.Controller.Draft()
		Expect(draft.DepartmentID).To(Equal(int64(1)))
	})

	It("should resolve the department name back to its id when editing", func() {
		Expect(screen.Controller.StartEdit(ctx, 7)).To(Succeed())
		draft, _ := screen.Controller.Draft()
		Expect(draft.DepartmentID).To(Equal(int64(3)))
	})
})
