package api

import (
	"context"
	"fmt"
	"net/http"

	positionmodel "github.com/pattarapon/hr-console/internal/core/datamodel/position"
)

type PositionClient struct {
	*Client
}

func NewPositionClient(client *Client) *PositionClient {
	return &PositionClient{Client: client}
}

func (c *PositionClient) List(ctx context.Context) ([]positionmodel.Position, error) {
	var out []positionmodel.Position
	if err := c.getJSON(ctx, "/api/positions/getAll", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByDepartment narrows positions to one department, used when the
// employee form binds position options to the chosen department.
func (c *PositionClient) ListByDepartment(ctx context.Context, departmentID int64) ([]positionmodel.Position, error) {
	var out []positionmodel.Position
	if err := c.getJSON(ctx, fmt.Sprintf("/api/positions/getByDepartmentId/%d", departmentID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *PositionClient) GetByID(ctx context.Context, id int64) (*positionmodel.Position, error) {
	var out positionmodel.Position
	if err := c.getJSON(ctx, fmt.Sprintf("/api/positions/getPositionById/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *PositionClient) Create(ctx context.Context, form positionmodel.Form) error {
	return c.sendJSON(ctx, http.MethodPost, "/api/positions/create", form, nil)
}

func (c *PositionClient) Update(ctx context.Context, id int64, form positionmodel.Form) error {
	return c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/api/positions/update/%d", id), form, nil)
}

func (c *PositionClient) Remove(ctx context.Context, id int64) error {
	return c.deleteJSON(ctx, fmt.Sprintf("/api/positions/delete/%d", id))
}
