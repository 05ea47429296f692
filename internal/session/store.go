package session

import (
	"context"
	"errors"
)

// Keys persisted by the session store. They survive process restarts
// when backed by the sqlite store, mirroring what a browser would keep
// across page loads.
const (
	KeyUserID     = "userId"
	KeyUserName   = "userName"
	KeyIsLoggedIn = "isLoggedIn"
)

// ErrNotFound is returned by Get when the key has no stored value.
var ErrNotFound = errors.New("session key not found")

// Store defines persistence operations for string-valued session keys.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
