package api

import (
	"context"
	"fmt"
	"net/http"

	employeemodel "github.com/pattarapon/hr-console/internal/core/datamodel/employee"
)

// EmployeeClient wraps the employee endpoints. Create and update are
// multipart: a JSON request part plus an optional profile image part.
type EmployeeClient struct {
	*Client
}

func NewEmployeeClient(client *Client) *EmployeeClient {
	return &EmployeeClient{Client: client}
}

func (c *EmployeeClient) List(ctx context.Context) ([]employeemodel.Employee, error) {
	var out []employeemodel.Employee
	if err := c.getJSON(ctx, "/api/employees/getAllEmployees", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *EmployeeClient) GetByID(ctx context.Context, id int64) (*employeemodel.Employee, error) {
	var out employeemodel.Employee
	if err := c.getJSON(ctx, fmt.Sprintf("/api/employees/getEmployeeById/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *EmployeeClient) Create(ctx context.Context, form employeemodel.Form) error {
	return c.sendMultipart(ctx, http.MethodPost, "/api/employees/createEmployee",
		form, uploadFrom(form.ProfilePicture), nil)
}

func (c *EmployeeClient) Update(ctx context.Context, id int64, form employeemodel.Form) error {
	return c.sendMultipart(ctx, http.MethodPut, fmt.Sprintf("/api/employees/updateEmployee/%d", id),
		form, uploadFrom(form.ProfilePicture), nil)
}

func (c *EmployeeClient) Remove(ctx context.Context, id int64) error {
	return c.deleteJSON(ctx, fmt.Sprintf("/api/employees/deleteEmployee/%d", id))
}

func uploadFrom(picture *employeemodel.Upload) *upload {
	if picture == nil {
		return nil
	}
	return &upload{
		filename:    picture.Filename,
		contentType: picture.ContentType,
		content:     picture.Content,
	}
}
