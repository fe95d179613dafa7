package api

import (
	"context"
	"net/http"

	"github.com/pattarapon/hr-console/internal"
)

// AuthClient talks to the remote authentication endpoints.
type AuthClient struct {
	*Client
}

func NewAuthClient(client *Client) *AuthClient {
	return &AuthClient{Client: client}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token. A response without a
// token field is its own failure, distinct from a rejected login.
func (c *AuthClient) Login(ctx context.Context, username, password string) (string, error) {
	var resp loginResponse
	err := c.sendJSON(ctx, http.MethodPost, "/api/auth/login", loginRequest{
		Username: username,
		Password: password,
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", internal.ErrTokenMissing
	}
	return resp.Token, nil
}

type SignupRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	EmployeeID int64  `json:"employeeId"`
}

// Signup registers a credential. The response body carries no signal the
// console acts on, so only the transport outcome is returned.
func (c *AuthClient) Signup(ctx context.Context, req SignupRequest) error {
	return c.sendJSON(ctx, http.MethodPost, "/api/auth/signup", req, nil)
}
