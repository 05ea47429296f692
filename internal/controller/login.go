package controller

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"feedboard/internal/api"
	"feedboard/internal/listing"
	"feedboard/internal/session"
)

// Login screen messages. Backend failures all collapse into the one
// generic message; the cause is not distinguished for the user.
const (
	msgInvalidLogin  = "Invalid login. Please try again."
	msgLoginSuccess  = "Login successful!"
	msgEmailInvalid  = "Please enter a valid email address."
	msgPasswordShort = "Password must be at least 4 characters long."
)

const loginMinPasswordLen = 4

// Login drives the login form: local validation, one backend call, and
// session population on success.
type Login struct {
	api     AuthAPI
	session *session.Manager
	nav     Navigator
	logger  *logrus.Logger
	msgs    messages

	mu            sync.Mutex
	submitted     bool
	emailError    string
	passwordError string
}

func NewLogin(authAPI AuthAPI, sessions *session.Manager, nav Navigator, logger *logrus.Logger) *Login {
	if logger == nil {
		logger = logrus.New()
	}
	return &Login{
		api:     authAPI,
		session: sessions,
		nav:     nav,
		logger:  logger,
	}
}

// Submit validates the credentials locally and, when they pass, calls
// the backend once. Invalid input blocks the call entirely. A response
// carrying both a user id and a name populates the session store before
// navigation to the feed; any backend failure surfaces the generic
// message and leaves the session untouched. Returns true when the user
// was navigated to the feed.
func (l *Login) Submit(ctx context.Context, email, password string) bool {
	l.mu.Lock()
	l.submitted = true
	l.emailError = ""
	l.passwordError = ""
	if !listing.IsValidEmail(email) {
		l.emailError = msgEmailInvalid
	}
	if len(password) < loginMinPasswordLen {
		l.passwordError = msgPasswordShort
	}
	blocked := l.emailError != "" || l.passwordError != ""
	l.mu.Unlock()
	if blocked {
		return false
	}

	resp, err := l.api.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		l.logger.WithError(err).Warn("login failed")
		l.msgs.setError(msgInvalidLogin)
		return false
	}

	if resp.UserID != 0 && resp.Name != "" {
		if err := l.session.StoreUserData(ctx, resp.UserID, resp.Name); err != nil {
			l.logger.WithError(err).Error("store session")
		}
	}

	l.msgs.setSuccess(msgLoginSuccess)
	l.nav.Navigate(RouteFeed)
	return true
}

// Submitted reports whether the form has been submitted at least once.
func (l *Login) Submitted() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.submitted
}

// EmailError returns the email field validation message, if any.
func (l *Login) EmailError() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.emailError
}

// PasswordError returns the password field validation message, if any.
func (l *Login) PasswordError() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.passwordError
}

func (l *Login) ErrorMessage() string   { return l.msgs.Error() }
func (l *Login) SuccessMessage() string { return l.msgs.Success() }
