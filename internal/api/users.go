package api

import (
	"context"
	"net/http"

	"feedboard/internal/domain"
)

// ListUsers fetches every user record for the administration view.
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.do(ctx, http.MethodGet, "api/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser provisions a new user. The endpoint lives outside the api/
// prefix; that is the backend's contract, preserved as-is.
func (c *Client) CreateUser(ctx context.Context, input domain.CreateUser) (domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodPost, "new-user", input, &user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}
