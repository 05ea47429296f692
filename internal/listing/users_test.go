package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"feedboard/internal/domain"
)

func user(name, email, role string, start time.Time) domain.User {
	return domain.User{Name: name, Email: email, Role: role, StartDate: start}
}

func TestSearchUsers(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	users := []domain.User{
		user("Alice Smith", "alice@example.com", domain.RoleEmployee, start),
		user("Bob Jones", "bob@example.com", domain.RoleAdmin, start),
		user("Carol", "carol@SMITHCO.com", domain.RoleEmployee, start),
	}

	got := SearchUsers(users, "smith")
	assert.Len(t, got, 2) // name match and email match

	assert.Equal(t, users, SearchUsers(users, ""))
	assert.Equal(t, users, SearchUsers(users, "   "))
}

func TestFilterUsersByRole(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	users := []domain.User{
		user("a", "a@x.co", "Employee", start),
		user("b", "b@x.co", "Admin", start),
		user("c", "c@x.co", "employee", start),
	}

	assert.Len(t, FilterUsersByRole(users, "employee"), 2)
	assert.Len(t, FilterUsersByRole(users, "ADMIN"), 1)
	assert.Len(t, FilterUsersByRole(users, "all"), 3)
	assert.Len(t, FilterUsersByRole(users, "All"), 3)
}

func TestSortUsers(t *testing.T) {
	users := []domain.User{
		user("bob", "zeta@x.co", "Admin", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)),
		user("Alice", "alpha@x.co", "employee", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
		user("carol", "Mid@x.co", "Employee", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)),
	}

	byName := SortUsers(users, UserSortName, OrderAsc)
	assert.Equal(t, []string{"Alice", "bob", "carol"}, []string{byName[0].Name, byName[1].Name, byName[2].Name})

	byNameDesc := SortUsers(users, UserSortName, OrderDesc)
	assert.Equal(t, "carol", byNameDesc[0].Name)

	byEmail := SortUsers(users, UserSortEmail, OrderAsc)
	assert.Equal(t, "alpha@x.co", byEmail[0].Email)
	assert.Equal(t, "Mid@x.co", byEmail[1].Email)

	byDate := SortUsers(users, UserSortStartDate, OrderDesc)
	assert.Equal(t, "bob", byDate[0].Name)

	// input order preserved
	assert.Equal(t, "bob", users[0].Name)
}

func TestSortUsersRoleCaseInsensitive(t *testing.T) {
	users := []domain.User{
		user("a", "a@x.co", "employee", time.Time{}),
		user("b", "b@x.co", "Admin", time.Time{}),
	}
	byRole := SortUsers(users, UserSortRole, OrderAsc)
	assert.Equal(t, "Admin", byRole[0].Role)
}

func TestUserStatsExactCaseRoles(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	old := now.Add(-90 * 24 * time.Hour)
	users := []domain.User{
		user("a", "a@x.co", "Employee", old),
		user("b", "b@x.co", "Employee", old),
		user("c", "c@x.co", "Admin", old),
	}

	stats := UserStats(users, now)
	assert.Equal(t, 3, stats.TotalUsers)
	assert.Equal(t, 2, stats.TotalEmployees)
	assert.Equal(t, 1, stats.TotalAdmins)

	// a lowercase role passes the filter but is not counted here
	stats = UserStats([]domain.User{user("d", "d@x.co", "employee", old)}, now)
	assert.Equal(t, 1, stats.TotalUsers)
	assert.Equal(t, 0, stats.TotalEmployees)
}

func TestUserStatsRecentWindow(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	users := []domain.User{
		user("boundary", "a@x.co", "Employee", now.Add(-30*24*time.Hour)), // exactly 30 days: counts
		user("older", "b@x.co", "Employee", now.Add(-30*24*time.Hour-time.Second)),
		user("fresh", "c@x.co", "Employee", now.Add(-24*time.Hour)),
	}

	stats := UserStats(users, now)
	assert.Equal(t, 2, stats.RecentUsers)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Sep 1, 2026", FormatDate(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Dec 25, 2025", FormatDate(time.Date(2025, 12, 25, 10, 30, 0, 0, time.UTC)))
}

func TestFormatRole(t *testing.T) {
	assert.Equal(t, "Employee", FormatRole("EMPLOYEE"))
	assert.Equal(t, "Admin", FormatRole("admin"))
	assert.Equal(t, "Admin", FormatRole("aDmIn"))
	assert.Equal(t, "", FormatRole(""))
}
