package listing

import (
	"sort"
	"strings"

	"feedboard/internal/domain"
)

// SortKey selects the ordering applied to the visible feed.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortMostLiked SortKey = "most-liked"
)

// trendingThreshold is the like count a post must exceed to be trending.
const trendingThreshold = 5

// FilterAndSortPosts derives the visible post list from the raw fetched
// list. The author filter is a trimmed, case-insensitive substring match
// against the author name; an empty filter keeps every post. Sorting is
// stable, so posts with equal keys keep their fetched order. The input
// slice is never mutated.
func FilterAndSortPosts(posts []domain.Post, authorFilter string, key SortKey) []domain.Post {
	needle := strings.ToLower(strings.TrimSpace(authorFilter))

	out := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		if needle == "" || strings.Contains(strings.ToLower(p.Author.Name), needle) {
			out = append(out, p)
		}
	}

	switch key {
	case SortMostLiked:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].LikeCount > out[j].LikeCount
		})
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}

	return out
}

// IsTrendingPost reports whether a post's like count exceeds the fixed
// trending threshold. A post the backend returned without a like count
// decodes to zero and is never trending.
func IsTrendingPost(post domain.Post) bool {
	return post.LikeCount > trendingThreshold
}
