package api

import (
	"context"
	"fmt"
	"net/http"

	departmentmodel "github.com/pattarapon/hr-console/internal/core/datamodel/department"
)

type DepartmentClient struct {
	*Client
}

func NewDepartmentClient(client *Client) *DepartmentClient {
	return &DepartmentClient{Client: client}
}

func (c *DepartmentClient) List(ctx context.Context) ([]departmentmodel.Department, error) {
	var out []departmentmodel.Department
	if err := c.getJSON(ctx, "/api/departments/getAllDepartments", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *DepartmentClient) GetByID(ctx context.Context, id int64) (*departmentmodel.Department, error) {
	var out departmentmodel.Department
	if err := c.getJSON(ctx, fmt.Sprintf("/api/departments/getDepartmentById/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *DepartmentClient) Create(ctx context.Context, form departmentmodel.Form) error {
	return c.sendJSON(ctx, http.MethodPost, "/api/departments/createDepartment", form, nil)
}

func (c *DepartmentClient) Update(ctx context.Context, id int64, form departmentmodel.Form) error {
	return c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/api/departments/updateDepartment/%d", id), form, nil)
}

func (c *DepartmentClient) Remove(ctx context.Context, id int64) error {
	return c.deleteJSON(ctx, fmt.Sprintf("/api/departments/deleteDepartment/%d", id))
}
