package user_test

import (
	"testing"
	"time"

	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/user"
	"waypoint/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	id := kernel.NewUUID()
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("X", 3600))

	t.Run("should create user and normalize email", func(t *testing.T) {
		u, err := user.NewUser(id, " Ann@Example.com ", "ann", "hash", user.Regular, created)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Equal(t, "ann@example.com", u.Email())
		assert.Equal(t, "ann", u.Username())
		assert.Equal(t, "hash", u.PasswordHash())
		assert.Equal(t, user.Regular, u.Role())
		assert.Equal(t, time.UTC, u.CreatedAt().Location())
		assert.True(t, created.Equal(u.CreatedAt()))
	})

	t.Run("should fail on missing fields", func(t *testing.T) {
		u, err := user.NewUser(id, "", "", "", "", created)

		assert.Nil(t, u)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		for _, field := range []string{"email", "username", "passwordHash", "role"} {
			assert.Contains(t, err.Error(), field)
		}
	})

	t.Run("should reject malformed email", func(t *testing.T) {
		_, err := user.NewUser(id, "nobody", "n", "hash", user.Admin, created)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestUser_ChangeProfile(t *testing.T) {
	u, err := user.NewUser(kernel.NewUUID(), "a@b.c", "a", "hash", user.Admin, time.Now())
	require.NoError(t, err)

	require.NoError(t, u.ChangeProfile("new@b.c", "renamed"))
	assert.Equal(t, "new@b.c", u.Email())
	assert.Equal(t, "renamed", u.Username())
	assert.Equal(t, user.Admin, u.Role())

	err = u.ChangeProfile("", "other")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Equal(t, "renamed", u.Username(), "failed change must not apply partially")
}

func TestParseRole(t *testing.T) {
	r, err := user.ParseRole(" admin ")
	require.NoError(t, err)
	assert.Equal(t, user.Admin, r)

	_, err = user.ParseRole("ROOT")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = user.ParseRole("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
