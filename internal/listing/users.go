package listing

import (
	"sort"
	"strings"
	"time"

	"feedboard/internal/domain"
)

// UserSortField selects the column a user listing is ordered by.
type UserSortField string

const (
	UserSortName      UserSortField = "name"
	UserSortEmail     UserSortField = "email"
	UserSortRole      UserSortField = "role"
	UserSortStartDate UserSortField = "startDate"
)

// SortOrder is the direction of a user listing sort.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// RoleFilterAll bypasses role filtering.
const RoleFilterAll = "all"

// recentWindow is how far back a start date may lie for a user to count
// as recently added.
const recentWindow = 30 * 24 * time.Hour

// SearchUsers keeps users whose name or email contains the search term,
// case-insensitively. A blank term returns the input unchanged.
func SearchUsers(users []domain.User, term string) []domain.User {
	if strings.TrimSpace(term) == "" {
		return users
	}

	needle := strings.ToLower(term)
	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), needle) ||
			strings.Contains(strings.ToLower(u.Email), needle) {
			out = append(out, u)
		}
	}
	return out
}

// FilterUsersByRole keeps users whose role matches exactly, ignoring
// case. The literal role "all" disables filtering.
func FilterUsersByRole(users []domain.User, role string) []domain.User {
	if strings.EqualFold(role, RoleFilterAll) {
		return users
	}

	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		if strings.EqualFold(u.Role, role) {
			out = append(out, u)
		}
	}
	return out
}

// SortUsers orders a user listing by the given field and direction.
// Name, email and role compare case-insensitively; start dates compare
// chronologically. The sort is stable and the input is never mutated.
func SortUsers(users []domain.User, by UserSortField, order SortOrder) []domain.User {
	out := make([]domain.User, len(users))
	copy(out, users)

	less := func(a, b domain.User) bool {
		switch by {
		case UserSortEmail:
			return strings.ToLower(a.Email) < strings.ToLower(b.Email)
		case UserSortRole:
			return strings.ToLower(a.Role) < strings.ToLower(b.Role)
		case UserSortStartDate:
			return a.StartDate.Before(b.StartDate)
		default:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if order == OrderDesc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})

	return out
}

// Stats aggregates a user listing for the admin dashboard.
type Stats struct {
	TotalUsers     int `json:"totalUsers"`
	TotalEmployees int `json:"totalEmployees"`
	TotalAdmins    int `json:"totalAdmins"`
	RecentUsers    int `json:"recentUsers"`
}

// UserStats computes dashboard statistics over a user listing. Role
// counts match the canonical role strings exactly, unlike the
// case-insensitive role filter; a lowercase "employee" record passes the
// filter but is not counted here. Recent users are those whose start
// date falls within the 30 days before now, boundary included.
func UserStats(users []domain.User, now time.Time) Stats {
	cutoff := now.Add(-recentWindow)

	s := Stats{TotalUsers: len(users)}
	for _, u := range users {
		switch u.Role {
		case domain.RoleEmployee:
			s.TotalEmployees++
		case domain.RoleAdmin:
			s.TotalAdmins++
		}
		if !u.StartDate.Before(cutoff) {
			s.RecentUsers++
		}
	}
	return s
}
