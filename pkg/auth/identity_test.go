package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryIdentity(t *testing.T) {
	id := NewQueryIdentity("default_user")

	user, err := id.UserID(httptest.NewRequest("GET", "/api/favorites?userId=alice", nil))
	require.NoError(t, err)
	assert.Equal(t, "alice", user)

	user, err = id.UserID(httptest.NewRequest("GET", "/api/favorites", nil))
	require.NoError(t, err)
	assert.Equal(t, "default_user", user)
}

func TestJWTIdentity(t *testing.T) {
	id := NewJWTIdentity("secret", NewQueryIdentity("default_user"))
	token, err := id.GenerateToken("bob", time.Hour)
	require.NoError(t, err)

	t.Run("bearer token", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/favorites?userId=alice", nil)
		r.Header.Set("Authorization", "Bearer "+token)

		user, err := id.UserID(r)
		require.NoError(t, err)
		assert.Equal(t, "bob", user)
	})

	t.Run("no header falls back", func(t *testing.T) {
		user, err := id.UserID(httptest.NewRequest("GET", "/api/favorites?userId=alice", nil))
		require.NoError(t, err)
		assert.Equal(t, "alice", user)
	})

	t.Run("malformed header", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/favorites", nil)
		r.Header.Set("Authorization", token)

		_, err := id.UserID(r)
		assert.ErrorIs(t, err, ErrInvalidAuthHeader)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewJWTIdentity("other", nil).GenerateToken("bob", time.Hour)
		require.NoError(t, err)
		r := httptest.NewRequest("GET", "/api/favorites", nil)
		r.Header.Set("Authorization", "Bearer "+other)

		_, err = id.UserID(r)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		expired, err := id.GenerateToken("bob", -time.Minute)
		require.NoError(t, err)

		_, err = id.ValidateToken(expired)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
