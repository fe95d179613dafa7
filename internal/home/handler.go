package home

import (
	"context"
	"net/http"
	"sync"

	accountmodel "github.com/pattarapon/hr-console/internal/core/datamodel/account"
	departmentmodel "github.com/pattarapon/hr-console/internal/core/datamodel/department"
	employeemodel "github.com/pattarapon/hr-console/internal/core/datamodel/employee"
	positionmodel "github.com/pattarapon/hr-console/internal/core/datamodel/position"
	"github.com/pattarapon/hr-console/internal/transport"
)

type EmployeeAPI interface {
	List(ctx context.Context) ([]employeemodel.Employee, error)
}

type DepartmentAPI interface {
	List(ctx context.Context) ([]departmentmodel.Department, error)
}

type PositionAPI interface {
	List(ctx context.Context) ([]positionmodel.Position, error)
}

type AccountAPI interface {
	List(ctx context.Context) ([]accountmodel.Account, error)
}

// Summary is the landing screen payload: one count per resource. A count
// whose fetch failed reads -1 so the shell can show a dash instead of a
// misleading zero.
type Summary struct {
	Employees   int `json:"employees"`
	Departments int `json:"departments"`
	Positions   int `json:"positions"`
	Accounts    int `json:"accounts"`
}

type Handler struct {
	*transport.BaseHandler
	employees   EmployeeAPI
	departments DepartmentAPI
	positions   PositionAPI
	accounts    AccountAPI
}

func NewHandler(base *transport.BaseHandler, employees EmployeeAPI, departments DepartmentAPI, positions PositionAPI, accounts AccountAPI) *Handler {
	return &Handler{
		BaseHandler: base,
		employees:   employees,
		departments: departments,
		positions:   positions,
		accounts:    accounts,
	}
}

// Summary fans out the four list calls concurrently; the landing screen
// renders whatever came back rather than failing wholesale.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	summary := Summary{}

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		summary.Employees = h.count(func() (int, error) {
			items, err := h.employees.List(ctx)
			return len(items), err
		}, "employees")
	}()
	go func() {
		defer wg.Done()
		summary.Departments = h.count(func() (int, error) {
			items, err := h.departments.List(ctx)
			return len(items), err
		}, "departments")
	}()
	go func() {
		defer wg.Done()
		summary.Positions = h.count(func() (int, error) {
			items, err := h.positions.List(ctx)
			return len(items), err
		}, "positions")
	}()
	go func() {
		defer wg.Done()
		summary.Accounts = h.count(func() (int, error) {
			items, err := h.accounts.List(ctx)
			return len(items), err
		}, "accounts")
	}()

	wg.Wait()
	h.WriteJSON(w, http.StatusOK, summary)
}

func (h *Handler) count(fetch func() (int, error), resource string) int {
	n, err := fetch()
	if err != nil {
		h.Logger.Warn("summary count failed", "resource", resource, "error", err)
		return -1
	}
	return n
}
