package controller

import (
	"context"

	"github.com/stretchr/testify/mock"

	"feedboard/internal/api"
	"feedboard/internal/domain"
)

type MockAuthAPI struct {
	mock.Mock
}

func (m *MockAuthAPI) Login(ctx context.Context, req api.LoginRequest) (api.LoginResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(api.LoginResponse), args.Error(1)
}

var _ AuthAPI = (*MockAuthAPI)(nil)

type MockFeedAPI struct {
	mock.Mock
}

func (m *MockFeedAPI) ListPosts(ctx context.Context) ([]domain.Post, error) {
	args := m.Called(ctx)
	posts, _ := args.Get(0).([]domain.Post)
	return posts, args.Error(1)
}

func (m *MockFeedAPI) CreatePost(ctx context.Context, userID int64, input domain.PostInput) (domain.Post, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(domain.Post), args.Error(1)
}

func (m *MockFeedAPI) UpdatePost(ctx context.Context, postID int64, input domain.PostInput) error {
	args := m.Called(ctx, postID, input)
	return args.Error(0)
}

func (m *MockFeedAPI) DeletePost(ctx context.Context, postID int64) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *MockFeedAPI) AddComment(ctx context.Context, postID, userID int64, content string) error {
	args := m.Called(ctx, postID, userID, content)
	return args.Error(0)
}

func (m *MockFeedAPI) UpdateComment(ctx context.Context, commentID int64, content string) error {
	args := m.Called(ctx, commentID, content)
	return args.Error(0)
}

func (m *MockFeedAPI) DeleteComment(ctx context.Context, commentID int64) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

func (m *MockFeedAPI) React(ctx context.Context, postID, userID int64, isLike bool) error {
	args := m.Called(ctx, postID, userID, isLike)
	return args.Error(0)
}

var _ FeedAPI = (*MockFeedAPI)(nil)

type MockAdminAPI struct {
	mock.Mock
}

func (m *MockAdminAPI) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]domain.User)
	return users, args.Error(1)
}

func (m *MockAdminAPI) CreateUser(ctx context.Context, input domain.CreateUser) (domain.User, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.Error(1)
}

var _ AdminAPI = (*MockAdminAPI)(nil)

// recordingNavigator captures navigations for assertions.
type recordingNavigator struct {
	routes []string
}

func (n *recordingNavigator) Navigate(route string) {
	n.routes = append(n.routes, route)
}

func (n *recordingNavigator) last() string {
	if len(n.routes) == 0 {
		return ""
	}
	return n.routes[len(n.routes)-1]
}
