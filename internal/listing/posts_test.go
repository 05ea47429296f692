package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"feedboard/internal/domain"
)

func post(id int64, author string, likes int, created time.Time) domain.Post {
	return domain.Post{
		PostID:    id,
		Author:    domain.Author{UserID: id, Name: author},
		LikeCount: likes,
		CreatedAt: created,
	}
}

func TestFilterAndSortPostsMostLiked(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	posts := []domain.Post{
		post(1, "alice", 2, base),
		post(2, "bob", 9, base.Add(time.Hour)),
		post(3, "carol", 0, base.Add(2*time.Hour)),
		post(4, "dave", 9, base.Add(3*time.Hour)),
	}

	got := FilterAndSortPosts(posts, "", SortMostLiked)

	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].LikeCount, got[i].LikeCount)
	}
	// equal like counts keep their fetched order
	assert.Equal(t, int64(2), got[0].PostID)
	assert.Equal(t, int64(4), got[1].PostID)
}

func TestFilterAndSortPostsNewest(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	posts := []domain.Post{
		post(1, "alice", 0, base),
		post(2, "bob", 0, base.Add(2*time.Hour)),
		post(3, "carol", 0, base.Add(time.Hour)),
	}

	got := FilterAndSortPosts(posts, "", SortNewest)

	assert.Equal(t, []int64{2, 3, 1}, []int64{got[0].PostID, got[1].PostID, got[2].PostID})
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].CreatedAt.After(got[i-1].CreatedAt))
	}
}

func TestFilterAndSortPostsAuthorFilter(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	posts := []domain.Post{
		post(1, "Alice Smith", 0, base),
		post(2, "Bob Jones", 0, base),
		post(3, "alicia keys", 0, base),
	}

	got := FilterAndSortPosts(posts, "  ALIC  ", SortNewest)
	assert.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].PostID)
	assert.Equal(t, int64(3), got[1].PostID)
}

func TestFilterAndSortPostsBlankFilterKeepsAll(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	posts := []domain.Post{
		post(1, "alice", 0, base),
		post(2, "bob", 0, base),
	}

	assert.Len(t, FilterAndSortPosts(posts, "", SortNewest), 2)
	assert.Len(t, FilterAndSortPosts(posts, "   ", SortNewest), 2)
}

func TestFilterAndSortPostsDoesNotMutateInput(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	posts := []domain.Post{
		post(1, "alice", 1, base),
		post(2, "bob", 5, base.Add(time.Hour)),
	}

	_ = FilterAndSortPosts(posts, "", SortMostLiked)

	assert.Equal(t, int64(1), posts[0].PostID)
	assert.Equal(t, int64(2), posts[1].PostID)
}

func TestIsTrendingPost(t *testing.T) {
	for likes := 0; likes <= 5; likes++ {
		assert.False(t, IsTrendingPost(domain.Post{LikeCount: likes}), "likes=%d", likes)
	}
	assert.True(t, IsTrendingPost(domain.Post{LikeCount: 6}))
	// a post the backend sent without a like count decodes to zero
	assert.False(t, IsTrendingPost(domain.Post{}))
}
