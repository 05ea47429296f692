package api

import (
	"context"
	"fmt"
	"net/http"

	"feedboard/internal/domain"
)

// ListPosts fetches the full feed. Callers refetch after every mutation
// instead of patching the previous result.
func (c *Client) ListPosts(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	if err := c.do(ctx, http.MethodGet, "api/post", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// CreatePost creates a post on behalf of the given user.
func (c *Client) CreatePost(ctx context.Context, userID int64, input domain.PostInput) (domain.Post, error) {
	var post domain.Post
	path := fmt.Sprintf("api/post?userId=%d", userID)
	if err := c.do(ctx, http.MethodPost, path, input, &post); err != nil {
		return domain.Post{}, err
	}
	return post, nil
}

// UpdatePost replaces the title and content of an existing post.
func (c *Client) UpdatePost(ctx context.Context, postID int64, input domain.PostInput) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("api/post/%d", postID), input, nil)
}

// DeletePost removes a post.
func (c *Client) DeletePost(ctx context.Context, postID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("api/post/%d", postID), nil, nil)
}

type commentPayload struct {
	Content string `json:"content"`
}

// AddComment attaches a comment to a post on behalf of the given user.
func (c *Client) AddComment(ctx context.Context, postID, userID int64, content string) error {
	path := fmt.Sprintf("api/comments/%d?userId=%d", postID, userID)
	return c.do(ctx, http.MethodPost, path, commentPayload{Content: content}, nil)
}

// UpdateComment replaces the content of an existing comment.
func (c *Client) UpdateComment(ctx context.Context, commentID int64, content string) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("api/comments/%d", commentID), commentPayload{Content: content}, nil)
}

// DeleteComment removes a comment.
func (c *Client) DeleteComment(ctx context.Context, commentID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("api/comments/%d", commentID), nil, nil)
}

type reactionPayload struct {
	IsLike bool `json:"isLike"`
}

// React records a like or dislike for a post. The client tracks no
// toggle state; repeated reactions are only idempotent if the backend
// makes them so.
func (c *Client) React(ctx context.Context, postID, userID int64, isLike bool) error {
	path := fmt.Sprintf("api/interactions/%d?userId=%d", postID, userID)
	return c.do(ctx, http.MethodPost, path, reactionPayload{IsLike: isLike}, nil)
}

// LikePost records a like for a post.
func (c *Client) LikePost(ctx context.Context, postID, userID int64) error {
	return c.React(ctx, postID, userID, true)
}

// DislikePost records a dislike for a post.
func (c *Client) DislikePost(ctx context.Context, postID, userID int64) error {
	return c.React(ctx, postID, userID, false)
}
