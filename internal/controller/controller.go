// Package controller holds the per-screen view state. Controllers are
// plain structs driven by whatever UI hosts them (the local web
// gateway or the CLI); they call the remote backend, re-derive their
// displayed lists through the listing helpers, and keep transient
// flags and banner messages. None of them owns authoritative domain
// state and none of their gates is a security boundary; the backend
// authorizes every call independently.
package controller

import (
	"context"
	"sync"
	"time"

	"feedboard/internal/api"
	"feedboard/internal/domain"
)

// Client-side routes. Unmatched routes fall back to the login screen.
const (
	RouteLogin = "/"
	RouteFeed  = "/feed"
	RouteAdmin = "/admin"
)

// Navigator abstracts screen navigation so controllers stay independent
// of the hosting UI. The gateway implements it with redirects, the CLI
// with a recorder.
type Navigator interface {
	Navigate(route string)
}

// NavigateFunc adapts a function to the Navigator interface.
type NavigateFunc func(route string)

func (f NavigateFunc) Navigate(route string) { f(route) }

// AuthAPI is the slice of the backend client the login screen needs.
type AuthAPI interface {
	Login(ctx context.Context, req api.LoginRequest) (api.LoginResponse, error)
}

// FeedAPI is the slice of the backend client the feed screen needs.
type FeedAPI interface {
	ListPosts(ctx context.Context) ([]domain.Post, error)
	CreatePost(ctx context.Context, userID int64, input domain.PostInput) (domain.Post, error)
	UpdatePost(ctx context.Context, postID int64, input domain.PostInput) error
	DeletePost(ctx context.Context, postID int64) error
	AddComment(ctx context.Context, postID, userID int64, content string) error
	UpdateComment(ctx context.Context, commentID int64, content string) error
	DeleteComment(ctx context.Context, commentID int64) error
	React(ctx context.Context, postID, userID int64, isLike bool) error
}

// AdminAPI is the slice of the backend client the user management
// screen needs.
type AdminAPI interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, input domain.CreateUser) (domain.User, error)
}

// messages holds a screen's banner state. Banners self-clear after the
// configured delay; setting a new banner replaces the pending clear.
// The lock only exists because the clear fires from a timer goroutine.
type messages struct {
	mu      sync.Mutex
	ttl     time.Duration
	success string
	failure string
	timer   *time.Timer
}

func (m *messages) setError(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failure = msg
	m.success = ""
	m.scheduleClearLocked()
}

func (m *messages) setSuccess(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.success = msg
	m.failure = ""
	m.scheduleClearLocked()
}

func (m *messages) scheduleClearLocked() {
	if m.ttl <= 0 {
		return
	}
	if m.timer != nil {
		m.timer.Stop()
	}
	m.timer = time.AfterFunc(m.ttl, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.success = ""
		m.failure = ""
	})
}

func (m *messages) Error() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.failure
}

func (m *messages) Success() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.success
}
