package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedboard/internal/domain"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   map[string]any
}

// newTestClient spins a fake backend that records the last request and
// replies with the given status and payload.
func newTestClient(t *testing.T, status int, payload any) (*Client, *recordedRequest) {
	t.Helper()

	last := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		last.Method = r.Method
		last.Path = r.URL.Path
		last.Query = r.URL.RawQuery
		last.Body = nil
		if r.Body != nil {
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
				last.Body = body
			}
		}
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if payload != nil {
			json.NewEncoder(w).Encode(payload)
		}
	}))
	t.Cleanup(srv.Close)

	return NewClient(srv.URL, srv.Client(), nil), last
}

func TestLogin(t *testing.T) {
	client, last := newTestClient(t, http.StatusOK, map[string]any{"userId": 42, "name": "Alice"})

	resp, err := client.Login(context.Background(), LoginRequest{Email: "a@b.co", Password: "Pass1234"})
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.UserID)
	assert.Equal(t, "Alice", resp.Name)
	assert.Equal(t, http.MethodPost, last.Method)
	assert.Equal(t, "/api/auth/login", last.Path)
	assert.Equal(t, "a@b.co", last.Body["email"])
	assert.Equal(t, "Pass1234", last.Body["password"])
}

func TestLoginFailureStatus(t *testing.T) {
	client, _ := newTestClient(t, http.StatusUnauthorized, map[string]any{"error": "bad credentials"})

	_, err := client.Login(context.Background(), LoginRequest{Email: "a@b.co", Password: "nope"})
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.Code)
}

func TestListPosts(t *testing.T) {
	client, last := newTestClient(t, http.StatusOK, []map[string]any{
		{"postId": 1, "title": "hello", "author": map[string]any{"userId": 9, "name": "Alice"}, "likeCount": 3},
		{"postId": 2, "title": "no likes field"},
	})

	posts, err := client.ListPosts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, last.Method)
	assert.Equal(t, "/api/post", last.Path)
	require.Len(t, posts, 2)
	assert.Equal(t, "Alice", posts[0].Author.Name)
	assert.Equal(t, 3, posts[0].LikeCount)
	// absent likeCount decodes to zero
	assert.Equal(t, 0, posts[1].LikeCount)
}

func TestCreatePost(t *testing.T) {
	client, last := newTestClient(t, http.StatusCreated, map[string]any{"postId": 10, "title": "t"})

	post, err := client.CreatePost(context.Background(), 7, domain.PostInput{Title: "t", Content: "c"})
	require.NoError(t, err)

	assert.Equal(t, int64(10), post.PostID)
	assert.Equal(t, http.MethodPost, last.Method)
	assert.Equal(t, "/api/post", last.Path)
	assert.Equal(t, "userId=7", last.Query)
	assert.Equal(t, "t", last.Body["title"])
	assert.Equal(t, "c", last.Body["content"])
}

func TestUpdateAndDeletePost(t *testing.T) {
	client, last := newTestClient(t, http.StatusOK, nil)

	require.NoError(t, client.UpdatePost(context.Background(), 5, domain.PostInput{Title: "t", Content: "c"}))
	assert.Equal(t, http.MethodPut, last.Method)
	assert.Equal(t, "/api/post/5", last.Path)

	require.NoError(t, client.DeletePost(context.Background(), 5))
	assert.Equal(t, http.MethodDelete, last.Method)
	assert.Equal(t, "/api/post/5", last.Path)
}

func TestComments(t *testing.T) {
	client, last := newTestClient(t, http.StatusOK, nil)
	ctx := context.Background()

	require.NoError(t, client.AddComment(ctx, 5, 7, "nice"))
	assert.Equal(t, http.MethodPost, last.Method)
	assert.Equal(t, "/api/comments/5", last.Path)
	assert.Equal(t, "userId=7", last.Query)
	assert.Equal(t, "nice", last.Body["content"])

	require.NoError(t, client.UpdateComment(ctx, 9, "edited"))
	assert.Equal(t, http.MethodPut, last.Method)
	assert.Equal(t, "/api/comments/9", last.Path)
	assert.Equal(t, "edited", last.Body["content"])

	require.NoError(t, client.DeleteComment(ctx, 9))
	assert.Equal(t, http.MethodDelete, last.Method)
	assert.Equal(t, "/api/comments/9", last.Path)
}

func TestReactions(t *testing.T) {
	client, last := newTestClient(t, http.StatusOK, nil)
	ctx := context.Background()

	require.NoError(t, client.LikePost(ctx, 3, 7))
	assert.Equal(t, "/api/interactions/3", last.Path)
	assert.Equal(t, "userId=7", last.Query)
	assert.Equal(t, true, last.Body["isLike"])

	require.NoError(t, client.DislikePost(ctx, 3, 7))
	assert.Equal(t, false, last.Body["isLike"])
}

func TestUsersEndpoints(t *testing.T) {
	client, last := newTestClient(t, http.StatusOK, []map[string]any{
		{"userId": 1, "name": "Alice", "email": "a@x.co", "role": "Admin"},
	})

	users, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/api/users", last.Path)
	require.Len(t, users, 1)
	assert.Equal(t, "Admin", users[0].Role)
}

func TestCreateUserPathHasNoAPIPrefix(t *testing.T) {
	client, last := newTestClient(t, http.StatusCreated, map[string]any{"userId": 2, "name": "Bob"})

	user, err := client.CreateUser(context.Background(), domain.CreateUser{
		Name: "Bob", Email: "b@x.co", Password: "Pass12", Role: "Employee", StartDate: "2026-08-31",
	})
	require.NoError(t, err)

	assert.Equal(t, "/new-user", last.Path)
	assert.Equal(t, "Bob", user.Name)
	assert.Equal(t, "Employee", last.Body["role"])
}

func TestBaseURLNormalization(t *testing.T) {
	client := NewClient("http://example.com", nil, nil)
	assert.Equal(t, "http://example.com/", client.baseURL)

	client = NewClient("http://example.com/", nil, nil)
	assert.Equal(t, "http://example.com/", client.baseURL)
}
