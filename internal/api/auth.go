package api

import (
	"context"
	"net/http"
)

// LoginRequest is the credentials payload for the login endpoint.
type LoginRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the identity the backend returns on success.
type LoginResponse struct {
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
}

// Login authenticates against the backend. The caller decides what to
// store; the client performs no session handling of its own.
func (c *Client) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "api/auth/login", req, &resp); err != nil {
		return LoginResponse{}, err
	}
	return resp, nil
}
