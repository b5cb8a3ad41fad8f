package identity

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const strongPassword = "violet-Harbor-lantern-93"

func TestNewAccount(t *testing.T) {
	t.Run("valid account", func(t *testing.T) {
		id := uuid.New()
		acc, err := NewAccount(AccountConfig{ID: id, Username: "maze_builder", PlainPassword: strongPassword})
		require.NoError(t, err)

		assert.Equal(t, id, acc.ID)
		assert.Equal(t, "maze_builder", acc.Username)
		assert.NotEqual(t, strongPassword, acc.PasswordHash)
		assert.False(t, acc.CreatedAt.IsZero())
		assert.True(t, acc.VerifyPassword(strongPassword))
		assert.False(t, acc.VerifyPassword("violet-Harbor-lantern-94"))
	})

	t.Run("invalid usernames", func(t *testing.T) {
		cases := map[string]error{
			"ab":                    ErrUsernameTooShort,
			strings.Repeat("a", 21): ErrUsernameTooLong,
			"has space":             ErrUsernameFormat,
			"dash-name":             ErrUsernameFormat,
		}
		for username, want := range cases {
			_, err := NewAccount(AccountConfig{ID: uuid.New(), Username: username, PlainPassword: strongPassword})
			assert.ErrorIs(t, err, want, username)
		}
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := NewAccount(AccountConfig{ID: uuid.New(), Username: "maze_builder", PlainPassword: "password"})
		assert.ErrorIs(t, err, ErrWeakPassword)
	})
}
