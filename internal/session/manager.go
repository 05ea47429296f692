package session

import (
	"context"
	"errors"
	"strconv"

	"feedboard/internal/domain"
)

// Manager is the typed facade over the raw key-value store. It holds the
// three session keys and nothing else; there is no expiry check and no
// server-side revalidation. The login flag is only considered set when
// its stored value is exactly "true".
type Manager struct {
	store Store
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// StoreUserData populates the session after a successful login.
func (m *Manager) StoreUserData(ctx context.Context, userID int64, name string) error {
	if err := m.store.Set(ctx, KeyUserID, strconv.FormatInt(userID, 10)); err != nil {
		return err
	}
	if err := m.store.Set(ctx, KeyUserName, name); err != nil {
		return err
	}
	return m.store.Set(ctx, KeyIsLoggedIn, "true")
}

// UserID returns the stored user id, or 0 when absent or unparseable.
func (m *Manager) UserID(ctx context.Context) int64 {
	raw, err := m.store.Get(ctx, KeyUserID)
	if err != nil {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// UserName returns the stored display name, or "" when absent.
func (m *Manager) UserName(ctx context.Context) string {
	name, err := m.store.Get(ctx, KeyUserName)
	if err != nil {
		return ""
	}
	return name
}

// CurrentUser returns the session identity when both the id and the name
// are present, and nil otherwise.
func (m *Manager) CurrentUser(ctx context.Context) *domain.Session {
	id := m.UserID(ctx)
	name := m.UserName(ctx)
	if id == 0 || name == "" {
		return nil
	}
	return &domain.Session{UserID: id, Name: name}
}

// IsLoggedIn reports whether the login flag is set.
func (m *Manager) IsLoggedIn(ctx context.Context) bool {
	flag, err := m.store.Get(ctx, KeyIsLoggedIn)
	if err != nil {
		return false
	}
	return flag == "true"
}

// HasStoredUserData reports whether all three session keys are present.
func (m *Manager) HasStoredUserData(ctx context.Context) bool {
	return m.UserID(ctx) != 0 && m.UserName(ctx) != "" && m.IsLoggedIn(ctx)
}

// Logout removes the three session keys.
func (m *Manager) Logout(ctx context.Context) error {
	var errs []error
	for _, key := range []string{KeyUserID, KeyUserName, KeyIsLoggedIn} {
		if err := m.store.Delete(ctx, key); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
