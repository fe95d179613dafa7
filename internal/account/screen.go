package account

import (
	"context"
	"log/slog"

	accountmodel "github.com/pattarapon/hr-console/internal/core/datamodel/account"
	"github.com/pattarapon/hr-console/internal/listctrl"
)

type AccountAPI interface {
	List(ctx context.Context) ([]accountmodel.Account, error)
	Create(ctx context.Context, form accountmodel.Form) error
	Update(ctx context.Context, id int64, form accountmodel.Form) error
	Remove(ctx context.Context, id int64) error
}

// Screen is the user-account management screen. Rows without credentials
// carry id 0; the only action they support is granting a login.
type Screen struct {
	Controller *listctrl.Controller[accountmodel.Account, accountmodel.Form]
}

func NewScreen(accounts AccountAPI, logger *slog.Logger) *Screen {
	s := &Screen{}

	s.Controller = listctrl.New(listctrl.Config[accountmodel.Account, accountmodel.Form]{
		Name: "accounts",
		ItemID: func(a accountmodel.Account) int64 {
			if a.UserID == nil {
				return 0
			}
			return *a.UserID
		},
		SearchFields: []func(accountmodel.Account) string{
			func(a accountmodel.Account) string { return a.FirstName },
			func(a accountmodel.Account) string { return a.LastName },
			func(a accountmodel.Account) string { return a.DepartmentName },
			func(a accountmodel.Account) string { return a.PositionName },
			func(a accountmodel.Account) string { return a.Username },
			func(a accountmodel.Account) string { return a.Role },
		},
		SortKeys: map[string]func(accountmodel.Account) listctrl.SortKey{
			"employeeCode":   func(a accountmodel.Account) listctrl.SortKey { return listctrl.StringKey(a.EmployeeCode) },
			"firstName":      func(a accountmodel.Account) listctrl.SortKey { return listctrl.StringKey(a.FirstName) },
			"lastName":       func(a accountmodel.Account) listctrl.SortKey { return listctrl.StringKey(a.LastName) },
			"departmentName": func(a accountmodel.Account) listctrl.SortKey { return listctrl.StringKey(a.DepartmentName) },
			"positionName":   func(a accountmodel.Account) listctrl.SortKey { return listctrl.StringKey(a.PositionName) },
			"username":       func(a accountmodel.Account) listctrl.SortKey { return listctrl.StringKey(a.Username) },
			"role":           func(a accountmodel.Account) listctrl.SortKey { return listctrl.StringKey(a.Role) },
		},
		RequiredFields: RequiredFields,
		DefaultDraft: func() accountmodel.Form {
			return accountmodel.Form{Role: accountmodel.RoleEmployee}
		},
		ResolveDraft: func(ctx context.Context, a accountmodel.Account) (accountmodel.Form, error) {
			return accountmodel.Form{
				Username:   a.Username,
				Role:       a.Role,
				EmployeeID: a.EmployeeID,
			}, nil
		},
		Validate: ValidateForm,
		Bindings: listctrl.Bindings[accountmodel.Account, accountmodel.Form]{
			List:   accounts.List,
			Create: accounts.Create,
			Update: accounts.Update,
			Remove: accounts.Remove,
		},
		Messages: listctrl.Messages{
			Created:      "Account created",
			Updated:      "Account updated",
			Deleted:      "Account deleted",
			LoadFailed:   "Failed to load accounts",
			SaveFailed:   "Failed to save account",
			DeleteFailed: "Failed to delete account",
		},
		Logger: logger,
	})

	return s
}

// GrantCredentials opens the create form preseeded from an employee row
// that has no login yet. An empty role falls back to EMPLOYEE.
func (s *Screen) GrantCredentials(row accountmodel.Account) {
	role := row.Role
	if role == "" {
		role = accountmodel.RoleEmployee
	}
	s.Controller.StartCreateFrom(accountmodel.Form{
		Role:       role,
		EmployeeID: row.EmployeeID,
	})
}
