package listing

import (
	"regexp"
	"strings"
	"unicode"

	"feedboard/internal/domain"
)

// emailPattern is a permissive syntactic check, not full RFC validation:
// something, an @, something, a dot, something, with no whitespace or
// second @ anywhere.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether the address passes the syntactic check.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePassword checks the password policy. Checks run in a fixed
// order and the first failure is returned, so callers surface exactly
// one message per attempt. A nil error means the password is accepted.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return &PasswordError{Message: "Password must be at least 6 characters long"}
	}
	if !containsFunc(password, unicode.IsLower) {
		return &PasswordError{Message: "Password must contain at least one lowercase letter"}
	}
	if !containsFunc(password, unicode.IsUpper) {
		return &PasswordError{Message: "Password must contain at least one uppercase letter"}
	}
	if !containsFunc(password, unicode.IsDigit) {
		return &PasswordError{Message: "Password must contain at least one number"}
	}
	return nil
}

// PasswordError carries the user-facing policy message.
type PasswordError struct {
	Message string
}

func (e *PasswordError) Error() string {
	return e.Message
}

func containsFunc(s string, f func(rune) bool) bool {
	for _, r := range s {
		if f(r) {
			return true
		}
	}
	return false
}

// EmailExists reports whether the email already belongs to a user in the
// listing, compared case-insensitively.
func EmailExists(users []domain.User, email string) bool {
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}
