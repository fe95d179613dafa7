package account_test

import (
	"context"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pattarapon/hr-console/internal/account"
	accountmodel "github.com/pattarapon/hr-console/internal/core/datamodel/account"
)

type mockAccountAPI struct {
	items     []accountmodel.Account
	lastForm  accountmodel.Form
	createHit int
}

func (m *mockAccountAPI) List(ctx context.Context) ([]accountmodel.Account, error) {
	return m.items, nil
}

func (m *mockAccountAPI) Create(ctx context.Context, form accountmodel.Form) error {
	m.createHit++
	m.lastForm = form
	return nil
}

func (m *mockAccountAPI) Update(ctx context.Context, id int64, form accountmodel.Form) error {
	return nil
}

func (m *mockAccountAPI) Remove(ctx context.Context, id int64) error {
	return nil
}

var _ = Describe("Screen", func() {
	var (
		backend *mockAccountAPI
		screen  *account.Screen
		ctx     context.Context
	)

	userID := int64(42)

	BeforeEach(func() {
		ctx = context.Background()
		backend = &mockAccountAPI{items: []accountmodel.Account{
			{EmployeeID: 7, FirstName: "Somsak", UserID: &userID, Username: "somsak", Role: "HR"},
			{EmployeeID: 8, FirstName: "Benja"},
		}}
		logger := slog.New(slog.NewTextHandler(GinkgoWriter, nil))
		screen = account.NewScreen(backend, logger)
		Expect(screen.Controller.Load(ctx)).To(Succeed())
	})

	Describe("GrantCredentials", func() {
		It("should open the create form seeded from the employee row", func() {
			screen.GrantCredentials(backend.items[1])

			view := screen.Controller.View()
			Expect(view.FormMode).To(Equal("CREATE"))

			draft, open := screen.Controller.Draft()
			Expect(open).To(BeTrue())
			Expect(draft.EmployeeID).To(Equal(int64(8)))
			Expect(draft.Role).To(Equal(accountmodel.RoleEmployee))
		})

		It("should keep the row's role when it has one", func() {
			screen.GrantCredentials(backend.items[0])

			draft, _ := screen.Controller.Draft()
			Expect(draft.Role).To(Equal("HR"))
			Expect(draft.EmployeeID).To(Equal(int64(7)))
		})

		It("should create the credential on submit", func() {
			screen.GrantCredentials(backend.items[1])

			draft, _ := screen.Controller.Draft()
			draft.Username = "benja"
			draft.Password = "secret123"
			draft.ConfirmPassword = "secret123"
			_, err := screen.Controller.Submit(ctx, draft)
			Expect(err).NotTo(HaveOccurred())
			Expect(backend.createHit).To(Equal(1))
			Expect(backend.lastForm.EmployeeID).To(Equal(int64(8)))
		})
	})

	It("should identify rows without credentials by id zero", func() {
		// the editable surface keys on the user id; rows with no login
		// only support the grant action
		Expect(screen.Controller.StartEdit(ctx, 42)).To(Succeed())
		Expect(screen.Controller.StartEdit(ctx, 8)).NotTo(Succeed())
	})
})
