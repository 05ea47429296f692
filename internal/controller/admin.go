package controller

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"feedboard/internal/domain"
	"feedboard/internal/session"
)

// defaultAdminRole is displayed until the backend supplies a real role.
const defaultAdminRole = "Administrator"

// Admin drives the admin dashboard shell: the session gate, sidebar
// navigation and logout. The user listing itself lives in
// UserManagement.
type Admin struct {
	session *session.Manager
	nav     Navigator
	logger  *logrus.Logger

	mu               sync.Mutex
	currentUser      *domain.Session
	activeSection    string
	sidebarCollapsed bool
}

func NewAdmin(sessions *session.Manager, nav Navigator, logger *logrus.Logger) *Admin {
	if logger == nil {
		logger = logrus.New()
	}
	return &Admin{
		session:       sessions,
		nav:           nav,
		logger:        logger,
		activeSection: "users",
	}
}

// Enter gates the dashboard on an active session. The gate only steers
// navigation; it performs no role check and is not an authorization
// boundary.
func (a *Admin) Enter(ctx context.Context) bool {
	current := a.session.CurrentUser(ctx)
	if current == nil {
		a.logger.Info("user not logged in, redirecting to login")
		a.nav.Navigate(RouteLogin)
		return false
	}

	a.mu.Lock()
	a.currentUser = current
	a.mu.Unlock()
	a.logger.WithField("user", current.Name).Debug("admin dashboard loaded")
	return true
}

// AdminName returns the display name of the signed-in user.
func (a *Admin) AdminName() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.currentUser == nil {
		return ""
	}
	return a.currentUser.Name
}

// AdminRole returns the displayed role label.
func (a *Admin) AdminRole() string { return defaultAdminRole }

// SetActiveSection switches the sidebar section.
func (a *Admin) SetActiveSection(section string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.activeSection = section
}

// ActiveSection returns the selected sidebar section.
func (a *Admin) ActiveSection() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.activeSection
}

// ToggleSidebar flips the sidebar collapsed state.
func (a *Admin) ToggleSidebar() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sidebarCollapsed = !a.sidebarCollapsed
}

// SidebarCollapsed reports the sidebar collapsed state.
func (a *Admin) SidebarCollapsed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sidebarCollapsed
}

// Logout clears the stored session and navigates back to login.
func (a *Admin) Logout(ctx context.Context) {
	if err := a.session.Logout(ctx); err != nil {
		a.logger.WithError(err).Warn("clear session")
	}
	a.mu.Lock()
	a.currentUser = nil
	a.mu.Unlock()
	a.nav.Navigate(RouteLogin)
}
