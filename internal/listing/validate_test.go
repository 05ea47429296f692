package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"feedboard/internal/domain"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "first.last@sub.example.com", "x+tag@y.io"}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{"a@b", "ab.co", "a @b.co", "a@@b.co", "", "@b.co", "a@.b", "a@b."}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestValidatePasswordOrderOfFailures(t *testing.T) {
	cases := []struct {
		password string
		message  string
	}{
		{"abc", "Password must be at least 6 characters long"},
		{"ABCDEF1", "Password must contain at least one lowercase letter"},
		{"abcdef", "Password must contain at least one uppercase letter"},
		{"Abcdef", "Password must contain at least one number"},
	}
	for _, tc := range cases {
		err := ValidatePassword(tc.password)
		if assert.Error(t, err, tc.password) {
			assert.Equal(t, tc.message, err.Error())
		}
	}

	assert.NoError(t, ValidatePassword("Abcdef1"))
}

func TestEmailExistsCaseInsensitive(t *testing.T) {
	users := []domain.User{{Email: "A@B.com"}}

	assert.True(t, EmailExists(users, "a@b.com"))
	assert.True(t, EmailExists(users, "A@B.COM"))
	assert.False(t, EmailExists(users, "other@b.com"))
	assert.False(t, EmailExists(nil, "a@b.com"))
}
