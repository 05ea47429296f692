package controller

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"feedboard/internal/domain"
	"feedboard/internal/listing"
)

// User management screen messages.
const (
	msgLoadUsersFailed  = "Failed to load users. Please try again."
	msgCreateUserFailed = "Failed to create user. Please try again."
	msgNameRequired     = "Name is required."
	msgEmailRequired    = "Email is required."
	msgPasswordRequired = "Password is required."
	msgEmailTaken       = "Email already exists. Please use a different email."
)

// UserManagement drives the admin user listing and the add-user form.
// The filtered view is recomputed from the last fetched listing on
// every control change; stats are recomputed on every load.
type UserManagement struct {
	api    AdminAPI
	logger *logrus.Logger
	msgs   messages
	now    func() time.Time

	mu          sync.Mutex
	loading     bool
	users       []domain.User
	filtered    []domain.User
	searchTerm  string
	roleFilter  string
	sortBy      listing.UserSortField
	sortOrder   listing.SortOrder
	showAddForm bool
	newUser     domain.CreateUser
	stats       listing.Stats
}

func NewUserManagement(adminAPI AdminAPI, logger *logrus.Logger, messageTTL time.Duration) *UserManagement {
	if logger == nil {
		logger = logrus.New()
	}
	u := &UserManagement{
		api:        adminAPI,
		logger:     logger,
		now:        time.Now,
		roleFilter: listing.RoleFilterAll,
		sortBy:     listing.UserSortName,
		sortOrder:  listing.OrderAsc,
	}
	u.msgs.ttl = messageTTL
	u.resetNewUserFormLocked()
	return u
}

// LoadUsers refetches the full user listing, then recomputes the
// filtered view and the dashboard stats.
func (u *UserManagement) LoadUsers(ctx context.Context) bool {
	u.mu.Lock()
	u.loading = true
	u.mu.Unlock()

	users, err := u.api.ListUsers(ctx)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.loading = false
	if err != nil {
		u.logger.WithError(err).Warn("load users")
		u.msgs.setError(msgLoadUsersFailed)
		return false
	}
	u.users = users
	u.applyFiltersLocked()
	u.stats = listing.UserStats(u.users, u.now())
	return true
}

// applyFiltersLocked runs the search, role filter and sort pipeline
// over the raw listing.
func (u *UserManagement) applyFiltersLocked() {
	filtered := listing.SearchUsers(u.users, u.searchTerm)
	filtered = listing.FilterUsersByRole(filtered, u.roleFilter)
	u.filtered = listing.SortUsers(filtered, u.sortBy, u.sortOrder)
}

// SetSearchTerm updates the search box and recomputes the view.
func (u *UserManagement) SetSearchTerm(term string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.searchTerm = term
	u.applyFiltersLocked()
}

// SetRoleFilter updates the role filter control and recomputes the view.
func (u *UserManagement) SetRoleFilter(role string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.roleFilter = role
	u.applyFiltersLocked()
}

// SetSort updates the sort column and recomputes the view.
func (u *UserManagement) SetSort(by listing.UserSortField) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.sortBy = by
	u.applyFiltersLocked()
}

// ToggleSortOrder flips the sort direction and recomputes the view.
func (u *UserManagement) ToggleSortOrder() {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.sortOrder == listing.OrderAsc {
		u.sortOrder = listing.OrderDesc
	} else {
		u.sortOrder = listing.OrderAsc
	}
	u.applyFiltersLocked()
}

// ClearFilters resets every control to its default and recomputes.
func (u *UserManagement) ClearFilters() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.searchTerm = ""
	u.roleFilter = listing.RoleFilterAll
	u.sortBy = listing.UserSortName
	u.sortOrder = listing.OrderAsc
	u.applyFiltersLocked()
}

// FilteredUsers returns the derived view of the last fetched listing.
func (u *UserManagement) FilteredUsers() []domain.User {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]domain.User, len(u.filtered))
	copy(out, u.filtered)
	return out
}

// Stats returns the dashboard statistics from the last load.
func (u *UserManagement) Stats() listing.Stats {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.stats
}

// Loading reports whether a backend call is in flight.
func (u *UserManagement) Loading() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.loading
}

// OpenAddUserForm shows the add-user form with a fresh default draft.
func (u *UserManagement) OpenAddUserForm() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.showAddForm = true
	u.resetNewUserFormLocked()
}

// CloseAddUserForm hides the form and discards the draft.
func (u *UserManagement) CloseAddUserForm() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.showAddForm = false
	u.resetNewUserFormLocked()
}

// ShowAddUserForm reports whether the add-user form is open.
func (u *UserManagement) ShowAddUserForm() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.showAddForm
}

// SetNewUser replaces the add-user draft, typically as the form fields
// change.
func (u *UserManagement) SetNewUser(draft domain.CreateUser) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.newUser = draft
}

// NewUser returns the current add-user draft.
func (u *UserManagement) NewUser() domain.CreateUser {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.newUser
}

func (u *UserManagement) resetNewUserFormLocked() {
	u.newUser = domain.CreateUser{
		Role:      domain.RoleEmployee,
		StartDate: u.nowDate(),
	}
}

func (u *UserManagement) nowDate() string {
	if u.now == nil {
		return time.Now().Format("2006-01-02")
	}
	return u.now().Format("2006-01-02")
}

// AddUser validates the draft and submits it. Checks run in a fixed
// order and the first failure blocks the backend call with its message:
// required name, email and password, email syntax, duplicate email
// against the last fetched listing, then the password policy. On
// success the form closes, the listing reloads in full, and a
// time-limited success banner is shown.
func (u *UserManagement) AddUser(ctx context.Context) bool {
	u.mu.Lock()
	draft := u.newUser
	if draft.Role == "" {
		draft.Role = domain.RoleEmployee
	}
	if draft.StartDate == "" {
		draft.StartDate = u.nowDate()
	}
	existing := u.users
	u.mu.Unlock()

	if msg, ok := u.validateDraft(draft, existing); !ok {
		u.msgs.setError(msg)
		return false
	}

	u.mu.Lock()
	u.loading = true
	u.mu.Unlock()

	created, err := u.api.CreateUser(ctx, draft)

	u.mu.Lock()
	u.loading = false
	u.mu.Unlock()

	if err != nil {
		u.logger.WithError(err).Warn("create user")
		u.msgs.setError(msgCreateUserFailed)
		return false
	}

	u.logger.WithField("user", created.Name).Info("user created")
	u.msgs.setSuccess(fmt.Sprintf("User %s created successfully!", created.Name))
	u.CloseAddUserForm()
	u.LoadUsers(ctx)
	return true
}

func (u *UserManagement) validateDraft(draft domain.CreateUser, existing []domain.User) (string, bool) {
	if strings.TrimSpace(draft.Name) == "" {
		return msgNameRequired, false
	}
	if strings.TrimSpace(draft.Email) == "" {
		return msgEmailRequired, false
	}
	if strings.TrimSpace(draft.Password) == "" {
		return msgPasswordRequired, false
	}
	if !listing.IsValidEmail(draft.Email) {
		return msgEmailInvalid, false
	}
	if listing.EmailExists(existing, draft.Email) {
		return msgEmailTaken, false
	}
	if err := listing.ValidatePassword(draft.Password); err != nil {
		return err.Error(), false
	}
	return "", true
}

func (u *UserManagement) ErrorMessage() string   { return u.msgs.Error() }
func (u *UserManagement) SuccessMessage() string { return u.msgs.Success() }
