package domain

import "time"

const (
	RoleEmployee = "Employee"
	RoleAdmin    = "Admin"
)

// User is a user record as returned by the administration endpoints.
type User struct {
	UserID    int64     `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	StartDate time.Time `json:"startDate"`
}

// CreateUser carries the fields submitted when provisioning a new user.
type CreateUser struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	StartDate string `json:"startDate"`
}

// Session identifies the currently logged-in user as mirrored from the
// session store. It is client-held convenience state, not an
// authorization credential; the backend authorizes every call on its own.
type Session struct {
	UserID int64
	Name   string
}
