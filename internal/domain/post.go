package domain

import "time"

// Author is the post or comment author as embedded by the backend.
type Author struct {
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
}

// Post is a feed entry owned by the backend. The client never caches it
// authoritatively; every mutation is followed by a full refetch.
type Post struct {
	PostID    int64     `json:"postId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    Author    `json:"author"`
	LikeCount int       `json:"likeCount"`
	CreatedAt time.Time `json:"createdAt"`
	Comments  []Comment `json:"comments"`
}

// Comment is nested under a Post and follows the same reload-on-mutation
// policy as its parent.
type Comment struct {
	CommentID int64  `json:"commentId"`
	Content   string `json:"content"`
	Author    Author `json:"author"`
}

// PostInput carries the editable fields for creating or updating a post.
type PostInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
