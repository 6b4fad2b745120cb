package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/notecards/internal/sharing/domain"
	"github.com/aussiebroadwan/notecards/internal/sharing/events"
	"github.com/stretchr/testify/require"
)

func TestAddCollaborator(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	alice := h.register(t, "alice", "alice@example.com")
	bob := h.register(t, "bob", "bob@example.com")
	deck := h.deck(t, alice)

	t.Run("grants role by case-insensitive email", func(t *testing.T) {
		m, err := h.members.AddCollaborator(ctx, alice, deck.ID, "  Bob@Example.COM ", domain.RoleEditor)
		require.NoError(t, err)
		require.Equal(t, bob.UserID, m.UserID)
		require.Equal(t, domain.RoleEditor, m.Role)
		require.Equal(t, map[string]domain.Role{"bob": domain.RoleEditor}, h.roles(t, deck.ID))
	})

	t.Run("re-adding overwrites the role", func(t *testing.T) {
		first, err := h.store.Members().GetMember(ctx, deck.ID, bob.UserID)
		require.NoError(t, err)

		h.advance(1)
		m, err := h.members.AddCollaborator(ctx, alice, deck.ID, "bob@example.com", domain.RoleViewer)
		require.NoError(t, err)
		require.Equal(t, domain.RoleViewer, m.Role)
		require.True(t, first.CreatedAt.Equal(m.CreatedAt))
		require.Equal(t, map[string]domain.Role{"bob": domain.RoleViewer}, h.roles(t, deck.ID))
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := h.members.AddCollaborator(ctx, alice, deck.ID, "carol@example.com", domain.RoleViewer)
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("owner cannot be a collaborator", func(t *testing.T) {
		_, err := h.members.AddCollaborator(ctx, alice, deck.ID, "alice@example.com", domain.RoleEditor)
		require.ErrorIs(t, err, ErrValidation)
		require.NotContains(t, h.roles(t, deck.ID), alice.UserID)
	})

	t.Run("unregistered owner is rejected before lookup", func(t *testing.T) {
		dave := principal("dave", "dave@example.com")
		own := h.deck(t, dave)

		_, err := h.members.AddCollaborator(ctx, dave, own.ID, "DAVE@example.com", domain.RoleEditor)
		require.ErrorIs(t, err, ErrValidation)
		require.NotErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("only assignable roles", func(t *testing.T) {
		_, err := h.members.AddCollaborator(ctx, alice, deck.ID, "bob@example.com", domain.RoleOwner)
		require.ErrorIs(t, err, ErrValidation)
		_, err = h.members.AddCollaborator(ctx, alice, deck.ID, "bob@example.com", domain.Role("admin"))
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("malformed email", func(t *testing.T) {
		_, err := h.members.AddCollaborator(ctx, alice, deck.ID, "Bob <bob@example.com>", domain.RoleViewer)
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("non-owner is denied", func(t *testing.T) {
		_, err := h.members.AddCollaborator(ctx, bob, deck.ID, "alice@example.com", domain.RoleViewer)
		require.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("missing deck", func(t *testing.T) {
		_, err := h.members.AddCollaborator(ctx, alice, "nope", "bob@example.com", domain.RoleViewer)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAddCollaboratorClearsPendingInvite(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	alice := h.register(t, "alice", "alice@example.com")
	deck := h.deck(t, alice)

	_, err := h.invitations.CreateInvite(ctx, alice, deck.ID, "dave@example.com", domain.RoleViewer)
	require.NoError(t, err)

	// Register directly in the store so no claim runs and the invite survives.
	now := h.now
	require.NoError(t, h.store.Users().UpsertUser(ctx, domain.User{
		ID: "dave", EmailLower: "dave@example.com", CreatedAt: now, UpdatedAt: now,
	}))

	_, err = h.members.AddCollaborator(ctx, alice, deck.ID, "dave@example.com", domain.RoleEditor)
	require.NoError(t, err)

	pending, err := h.invitations.ListPendingInvites(ctx, alice, deck.ID)
	require.NoError(t, err)
	require.Empty(t, pending)
	require.Equal(t, domain.RoleEditor, h.roles(t, deck.ID)["dave"])
}

func TestRemoveCollaborator(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	alice := h.register(t, "alice", "alice@example.com")
	bob := h.register(t, "bob", "bob@example.com")
	deck := h.deck(t, alice)

	_, err := h.members.AddCollaborator(ctx, alice, deck.ID, "bob@example.com", domain.RoleEditor)
	require.NoError(t, err)

	t.Run("editor cannot remove", func(t *testing.T) {
		err := h.members.RemoveCollaborator(ctx, bob, deck.ID, bob.UserID)
		require.ErrorIs(t, err, ErrPermissionDenied)
		require.Contains(t, h.roles(t, deck.ID), bob.UserID)
	})

	t.Run("owner cannot be removed", func(t *testing.T) {
		err := h.members.RemoveCollaborator(ctx, alice, deck.ID, alice.UserID)
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("owner removes collaborator", func(t *testing.T) {
		require.NoError(t, h.members.RemoveCollaborator(ctx, alice, deck.ID, bob.UserID))
		require.Empty(t, h.roles(t, deck.ID))

		_, _, err := h.decks.GetDeck(ctx, bob, deck.ID)
		require.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("non-member", func(t *testing.T) {
		err := h.members.RemoveCollaborator(ctx, alice, deck.ID, bob.UserID)
		require.ErrorIs(t, err, ErrNotFound)
	})

	require.Equal(t, []string{events.MemberAdded, events.MemberRemoved}, h.events.types())
}

func TestChangeRole(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	alice := h.register(t, "alice", "alice@example.com")
	bob := h.register(t, "bob", "bob@example.com")
	h.register(t, "carol", "carol@example.com")
	deck := h.deck(t, alice)

	_, err := h.members.AddCollaborator(ctx, alice, deck.ID, "bob@example.com", domain.RoleEditor)
	require.NoError(t, err)
	_, err = h.members.AddCollaborator(ctx, alice, deck.ID, "carol@example.com", domain.RoleViewer)
	require.NoError(t, err)

	t.Run("editor changing a role is rejected", func(t *testing.T) {
		_, err := h.members.ChangeRole(ctx, bob, deck.ID, "carol", domain.RoleEditor)
		require.ErrorIs(t, err, ErrPermissionDenied)
		require.Equal(t, map[string]domain.Role{
			"bob":   domain.RoleEditor,
			"carol": domain.RoleViewer,
		}, h.roles(t, deck.ID))
	})

	t.Run("owner promotes viewer", func(t *testing.T) {
		m, err := h.members.ChangeRole(ctx, alice, deck.ID, "carol", domain.RoleEditor)
		require.NoError(t, err)
		require.Equal(t, domain.RoleEditor, m.Role)
		require.Equal(t, domain.RoleEditor, h.roles(t, deck.ID)["carol"])
	})

	t.Run("non-member", func(t *testing.T) {
		_, err := h.members.ChangeRole(ctx, alice, deck.ID, "zed", domain.RoleEditor)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("owner role is fixed", func(t *testing.T) {
		_, err := h.members.ChangeRole(ctx, alice, deck.ID, alice.UserID, domain.RoleViewer)
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := h.members.ChangeRole(ctx, alice, deck.ID, "carol", domain.RoleOwner)
		require.ErrorIs(t, err, ErrValidation)
	})
}
