package controller

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"feedboard/internal/domain"
	"feedboard/internal/listing"
	"feedboard/internal/session"
)

// Fixed per-operation feed messages. Backend error detail stays in the
// logs and is never surfaced to the user.
const (
	msgLoadPostsFailed     = "Failed to load posts. Please try again."
	msgCreatePostFailed    = "Failed to create post. Please try again."
	msgUpdatePostFailed    = "Failed to update post. Please try again."
	msgDeletePostFailed    = "Failed to delete post. Please try again."
	msgAddCommentFailed    = "Failed to add comment. Please try again."
	msgUpdateCommentFailed = "Failed to update comment. Please try again."
	msgDeleteCommentFailed = "Failed to delete comment. Please try again."
	msgReactionFailed      = "Failed to react to post. Please try again."
)

// Feed drives the post feed screen. The visible list is always a
// recompute over the last fetched posts and the current filter/sort
// controls, and every successful mutation triggers an unconditional
// full reload. Nothing is patched in place.
type Feed struct {
	api     FeedAPI
	session *session.Manager
	nav     Navigator
	logger  *logrus.Logger
	msgs    messages

	mu           sync.Mutex
	loading      bool
	posts        []domain.Post
	visible      []domain.Post
	authorFilter string
	sortKey      listing.SortKey
	editing      map[int64]bool
}

func NewFeed(feedAPI FeedAPI, sessions *session.Manager, nav Navigator, logger *logrus.Logger, messageTTL time.Duration) *Feed {
	if logger == nil {
		logger = logrus.New()
	}
	f := &Feed{
		api:     feedAPI,
		session: sessions,
		nav:     nav,
		logger:  logger,
		sortKey: listing.SortNewest,
		editing: make(map[int64]bool),
	}
	f.msgs.ttl = messageTTL
	return f
}

// Enter gates the screen on an active session and loads the feed. The
// gate is a UI affordance only; a user without a session is sent back
// to the login route.
func (f *Feed) Enter(ctx context.Context) bool {
	if !f.session.IsLoggedIn(ctx) {
		f.logger.Info("no active session, redirecting to login")
		f.nav.Navigate(RouteLogin)
		return false
	}
	f.Load(ctx)
	return true
}

// Load refetches the full post list and re-derives the visible view.
func (f *Feed) Load(ctx context.Context) {
	f.mu.Lock()
	f.loading = true
	f.mu.Unlock()

	posts, err := f.api.ListPosts(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.loading = false
	if err != nil {
		f.logger.WithError(err).Warn("load posts")
		f.msgs.setError(msgLoadPostsFailed)
		return
	}
	f.posts = posts
	f.applyFiltersLocked()
}

func (f *Feed) applyFiltersLocked() {
	f.visible = listing.FilterAndSortPosts(f.posts, f.authorFilter, f.sortKey)
}

// SetAuthorFilter updates the author substring filter and recomputes
// the visible list.
func (f *Feed) SetAuthorFilter(filter string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.authorFilter = filter
	f.applyFiltersLocked()
}

// SetSortKey updates the sort control and recomputes the visible list.
func (f *Feed) SetSortKey(key listing.SortKey) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sortKey = key
	f.applyFiltersLocked()
}

// VisiblePosts returns the derived view of the last fetched posts.
func (f *Feed) VisiblePosts() []domain.Post {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Post, len(f.visible))
	copy(out, f.visible)
	return out
}

// Loading reports whether a fetch is in flight.
func (f *Feed) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// CreatePost submits a new post. An empty title or content blocks the
// call client-side; success triggers a full reload.
func (f *Feed) CreatePost(ctx context.Context, title, content string) bool {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return false
	}

	userID := f.session.UserID(ctx)
	if _, err := f.api.CreatePost(ctx, userID, domain.PostInput{Title: title, Content: content}); err != nil {
		f.logger.WithError(err).Warn("create post")
		f.msgs.setError(msgCreatePostFailed)
		return false
	}

	f.Load(ctx)
	return true
}

// StartEdit flags a post as being edited.
func (f *Feed) StartEdit(postID int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.editing[postID] = true
}

// IsEditing reports whether a post is in edit mode.
func (f *Feed) IsEditing(postID int64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.editing[postID]
}

// UpdatePost saves an edited post, drops its edit flag and reloads.
func (f *Feed) UpdatePost(ctx context.Context, postID int64, title, content string) bool {
	if err := f.api.UpdatePost(ctx, postID, domain.PostInput{Title: title, Content: content}); err != nil {
		f.logger.WithError(err).Warn("update post")
		f.msgs.setError(msgUpdatePostFailed)
		return false
	}

	f.mu.Lock()
	delete(f.editing, postID)
	f.mu.Unlock()

	f.Load(ctx)
	return true
}

// DeletePost removes a post and reloads.
func (f *Feed) DeletePost(ctx context.Context, postID int64) bool {
	if err := f.api.DeletePost(ctx, postID); err != nil {
		f.logger.WithError(err).Warn("delete post")
		f.msgs.setError(msgDeletePostFailed)
		return false
	}
	f.Load(ctx)
	return true
}

// AddComment attaches a comment to a post. Empty content blocks the
// call; success reloads the feed.
func (f *Feed) AddComment(ctx context.Context, postID int64, content string) bool {
	if strings.TrimSpace(content) == "" {
		return false
	}

	userID := f.session.UserID(ctx)
	if err := f.api.AddComment(ctx, postID, userID, content); err != nil {
		f.logger.WithError(err).Warn("add comment")
		f.msgs.setError(msgAddCommentFailed)
		return false
	}
	f.Load(ctx)
	return true
}

// UpdateComment saves an edited comment and reloads.
func (f *Feed) UpdateComment(ctx context.Context, commentID int64, content string) bool {
	if err := f.api.UpdateComment(ctx, commentID, content); err != nil {
		f.logger.WithError(err).Warn("update comment")
		f.msgs.setError(msgUpdateCommentFailed)
		return false
	}
	f.Load(ctx)
	return true
}

// DeleteComment removes a comment and reloads.
func (f *Feed) DeleteComment(ctx context.Context, commentID int64) bool {
	if err := f.api.DeleteComment(ctx, commentID); err != nil {
		f.logger.WithError(err).Warn("delete comment")
		f.msgs.setError(msgDeleteCommentFailed)
		return false
	}
	f.Load(ctx)
	return true
}

// Like records a like for a post and reloads.
func (f *Feed) Like(ctx context.Context, postID int64) bool {
	return f.react(ctx, postID, true)
}

// Dislike records a dislike for a post and reloads.
func (f *Feed) Dislike(ctx context.Context, postID int64) bool {
	return f.react(ctx, postID, false)
}

func (f *Feed) react(ctx context.Context, postID int64, isLike bool) bool {
	userID := f.session.UserID(ctx)
	if err := f.api.React(ctx, postID, userID, isLike); err != nil {
		f.logger.WithError(err).Warn("react to post")
		f.msgs.setError(msgReactionFailed)
		return false
	}
	f.Load(ctx)
	return true
}

// CanEditPost reports whether the session user authored the post. This
// is advisory, for hiding edit affordances; the backend is the real
// authorization boundary.
func (f *Feed) CanEditPost(ctx context.Context, post domain.Post) bool {
	id := f.session.UserID(ctx)
	return id != 0 && id == post.Author.UserID
}

// CanEditComment reports whether the session user authored the comment.
// Advisory only, like CanEditPost.
func (f *Feed) CanEditComment(ctx context.Context, comment domain.Comment) bool {
	id := f.session.UserID(ctx)
	return id != 0 && id == comment.Author.UserID
}

func (f *Feed) ErrorMessage() string { return f.msgs.Error() }
