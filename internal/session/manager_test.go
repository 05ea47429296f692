package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManagerStoreUserData(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := NewManager(store)

	assert.False(t, m.IsLoggedIn(ctx))
	assert.Nil(t, m.CurrentUser(ctx))

	assert.NoError(t, m.StoreUserData(ctx, 42, "Alice"))

	assert.True(t, m.IsLoggedIn(ctx))
	assert.True(t, m.HasStoredUserData(ctx))
	assert.Equal(t, int64(42), m.UserID(ctx))
	assert.Equal(t, "Alice", m.UserName(ctx))

	current := m.CurrentUser(ctx)
	if assert.NotNil(t, current) {
		assert.Equal(t, int64(42), current.UserID)
		assert.Equal(t, "Alice", current.Name)
	}
}

func TestManagerLogout(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore())

	assert.NoError(t, m.StoreUserData(ctx, 7, "Bob"))
	assert.NoError(t, m.Logout(ctx))

	assert.False(t, m.IsLoggedIn(ctx))
	assert.False(t, m.HasStoredUserData(ctx))
	assert.Nil(t, m.CurrentUser(ctx))
	assert.Equal(t, int64(0), m.UserID(ctx))
}

func TestManagerLoginFlagMustBeExactlyTrue(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := NewManager(store)

	assert.NoError(t, store.Set(ctx, KeyIsLoggedIn, "TRUE"))
	assert.False(t, m.IsLoggedIn(ctx))

	assert.NoError(t, store.Set(ctx, KeyIsLoggedIn, "true"))
	assert.True(t, m.IsLoggedIn(ctx))
}

func TestManagerPartialSession(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := NewManager(store)

	// id without name is not a usable identity
	assert.NoError(t, store.Set(ctx, KeyUserID, "5"))
	assert.Nil(t, m.CurrentUser(ctx))
	assert.False(t, m.HasStoredUserData(ctx))

	// garbage id reads as zero
	assert.NoError(t, store.Set(ctx, KeyUserID, "not-a-number"))
	assert.Equal(t, int64(0), m.UserID(ctx))
}
