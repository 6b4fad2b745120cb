package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	t.Run("uses token email", func(t *testing.T) {
		u, _, err := h.users.Register(ctx, principal("alice", "Alice@Example.com"), "", " Alice ")
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", u.EmailLower)
		require.Equal(t, "Alice", u.DisplayName)
	})

	t.Run("re-register keeps created time", func(t *testing.T) {
		before, err := h.users.GetMe(ctx, principal("alice", ""))
		require.NoError(t, err)

		h.advance(time.Hour)
		u, _, err := h.users.Register(ctx, principal("alice", "alice@example.com"), "alice@example.com", "Al")
		require.NoError(t, err)
		require.True(t, before.CreatedAt.Equal(u.CreatedAt))
		require.Equal(t, "Al", u.DisplayName)
	})

	t.Run("email must match token", func(t *testing.T) {
		_, _, err := h.users.Register(ctx, principal("mallory", "mallory@example.com"), "alice@example.com", "")
		require.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("token without email", func(t *testing.T) {
		_, _, err := h.users.Register(ctx, principal("nomail", ""), "", "")
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("email taken by another user", func(t *testing.T) {
		_, _, err := h.users.Register(ctx, principal("alice2", "alice@example.com"), "", "")
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unregistered caller", func(t *testing.T) {
		_, err := h.users.GetMe(ctx, principal("ghost", ""))
		require.ErrorIs(t, err, ErrNotFound)
	})
}
