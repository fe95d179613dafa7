package api

import (
	"context"
	"fmt"
	"net/http"

	accountmodel "github.com/pattarapon/hr-console/internal/core/datamodel/account"
)

// AccountClient wraps the user-account endpoints. The list is the remote
// API's denormalized employee+credential view.
type AccountClient struct {
	*Client
}

func NewAccountClient(client *Client) *AccountClient {
	return &AccountClient{Client: client}
}

func (c *AccountClient) List(ctx context.Context) ([]accountmodel.Account, error) {
	var out []accountmodel.Account
	if err := c.getJSON(ctx, "/api/accounts/getAllEmployees", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *AccountClient) Create(ctx context.Context, form accountmodel.Form) error {
	return c.sendJSON(ctx, http.MethodPost, "/api/accounts/createUser", payloadFrom(form), nil)
}

func (c *AccountClient) Update(ctx context.Context, userID int64, form accountmodel.Form) error {
	return c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/api/accounts/updateUser/%d", userID), payloadFrom(form), nil)
}

func (c *AccountClient) Remove(ctx context.Context, userID int64) error {
	return c.deleteJSON(ctx, fmt.Sprintf("/api/accounts/deleteUser/%d", userID))
}

type accountPayload struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	EmployeeID int64  `json:"employeeId"`
}

// payloadFrom strips the confirm-password field; it is a console-side
// check only and never reaches the network.
func payloadFrom(form accountmodel.Form) accountPayload {
	return accountPayload{
		Username:   form.Username,
		Password:   form.Password,
		Role:       form.Role,
		EmployeeID: form.EmployeeID,
	}
}
