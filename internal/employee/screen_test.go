package employee_test

import (
	"context"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	departmentmodel "github.com/pattarapon/hr-console/internal/core/datamodel/department"
	employeemodel "github.com/pattarapon/hr-console/internal/core/datamodel/employee"
	positionmodel "github.com/pattarapon/hr-console/internal/core/datamodel/position"
	"github.com/pattarapon/hr-console/internal/employee"
)

type mockEmployeeAPI struct {
	items       []employeemodel.Employee
	lastUpdated int64
	lastForm    employeemodel.Form
}

func (m *mockEmployeeAPI) List(ctx context.Context) ([]employeemodel.Employee, error) {
	return m.items, nil
}

func (m *mockEmployeeAPI) Create(ctx context.Context, form employeemodel.Form) error {
	m.lastForm = form
	return nil
}

func (m *mockEmployeeAPI) Update(ctx context.Context, id int64, form employeemodel.Form) error {
	m.lastUpdated = id
	m.lastForm = form
	return nil
}

func (m *mockEmployeeAPI) Remove(ctx context.Context, id int64) error {
	return nil
}

type mockDepartmentAPI struct {
	items []departmentmodel.Department
	calls int
}

func (m *mockDepartmentAPI) List(ctx context.Context) ([]departmentmodel.Department, error) {
	m.calls++
	return m.items, nil
}

type mockPositionAPI struct {
	byDepartment map[int64][]positionmodel.Position
	lastQueried  int64
}

func (m *mockPositionAPI) ListByDepartment(ctx context.Context, departmentID int64) ([]positionmodel.Position, error) {
	m.lastQueried = departmentID
	return m.byDepartment[departmentID], nil
}

var _ = Describe("Screen", func() {
	var (
		employees   *mockEmployeeAPI
		departments *mockDepartmentAPI
		positions   *mockPositionAPI
		screen      *employee.Screen
		ctx         context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		employees = &mockEmployeeAPI{items: []employeemodel.Employee{
			{
				EmployeeID:     10,
				EmployeeCode:   "EMP-010",
				FirstName:      "Somsak",
				LastName:       "Jaidee",
				Gender:         "M",
				BirthDate:      "1990-04-12",
				HireDate:       "2020-01-06",
				Email:          "somsak@example.com",
				PhoneNumber:    "0812345678",
				DepartmentName: "Engineering",
				PositionName:   "Backend Developer",
				Salary:         42000,
				Status:         "ACTIVE",
			},
			{
				EmployeeID:     11,
				FirstName:      "Benja",
				DepartmentName: "Ghost Division",
				PositionName:   "Phantom",
			},
		}}
		departments = &mockDepartmentAPI{items: []departmentmodel.Department{
			{DepartmentID: 1, Name: "Operations"},
			{DepartmentID: 3, Name: "Engineering"},
		}}
		positions = &mockPositionAPI{byDepartment: map[int64][]positionmodel.Position{
			3: {
				{PositionID: 7, Title: "Backend Developer"},
				{PositionID: 8, Title: "Frontend Developer"},
			},
			1: {
				{PositionID: 2, Title: "Coordinator"},
			},
		}}

		logger := slog.New(slog.NewTextHandler(GinkgoWriter, nil))
		screen = employee.NewScreen(employees, departments, positions, logger)
		Expect(screen.Controller.Load(ctx)).To(Succeed())
	})

	It("should cache departments while loading the collection", func() {
		Expect(departments.calls).To(Equal(1))
		Expect(screen.DepartmentOptions()).To(HaveLen(2))
	})

	It("should resolve denormalized names back to ids when editing", func() {
		Expect(screen.Controller.StartEdit(ctx, 10)).To(Succeed())

		draft, open := screen.Controller.Draft()
		Expect(open).To(BeTrue())
		Expect(draft.DepartmentID).To(Equal(int64(3)))
		Expect(draft.PositionID).To(Equal(int64(7)))
		Expect(positions.lastQueried).To(Equal(int64(3)))
	})

	It("should fall back to id one when a name no longer resolves", func() {
		Expect(screen.Controller.StartEdit(ctx, 11)).To(Succeed())

		draft, open := screen.Controller.Draft()
		Expect(open).To(BeTrue())
		Expect(draft.DepartmentID).To(Equal(int64(1)))
		Expect(draft.PositionID).To(Equal(int64(1)))
	})

	It("should default gender and status for legacy rows", func() {
		Expect(screen.Controller.StartEdit(ctx, 11)).To(Succeed())

		draft, _ := screen.Controller.Draft()
		Expect(draft.Gender).To(Equal(employeemodel.GenderMale))
		Expect(draft.Status).To(Equal(employeemodel.StatusActive))
	})

	It("should submit an edited draft through the update binding", func() {
		Expect(screen.Controller.StartEdit(ctx, 10)).To(Succeed())

		draft, _ := screen.Controller.Draft()
		draft.Salary = 45000
		_, err := screen.Controller.Submit(ctx, draft)
		Expect(err).NotTo(HaveOccurred())
		Expect(employees.lastUpdated).To(Equal(int64(10)))
		Expect(employees.lastForm.Salary).To(Equal(45000.0))
		Expect(employees.lastForm.DepartmentID).To(Equal(int64(3)))
	})

	It("should narrow position options by department", func() {
		options, err := screen.PositionOptions(ctx, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(options).To(HaveLen(1))
		Expect(options[0].Title).To(Equal("Coordinator"))
	})
})
