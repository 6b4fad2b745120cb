package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/notecards/internal/sharing/domain"
	"github.com/aussiebroadwan/notecards/internal/sharing/events"
	"github.com/aussiebroadwan/notecards/internal/sharing/store"
	"github.com/stretchr/testify/require"
)

func TestCreateInvite(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	alice := h.register(t, "alice", "alice@example.com")
	bob := h.register(t, "bob", "bob@example.com")
	deck := h.deck(t, alice)

	_, err := h.members.AddCollaborator(ctx, alice, deck.ID, "bob@example.com", domain.RoleEditor)
	require.NoError(t, err)

	t.Run("normalizes email and sets expiry", func(t *testing.T) {
		inv, err := h.invitations.CreateInvite(ctx, alice, deck.ID, "New@Example.com", domain.RoleViewer)
		require.NoError(t, err)
		require.Equal(t, "new@example.com", inv.EmailLower)
		require.Equal(t, alice.UserID, inv.InvitedByUserID)
		require.NotNil(t, inv.ExpiresAt)
		require.True(t, inv.ExpiresAt.Equal(h.now.Add(7*24*time.Hour)))
	})

	t.Run("second call keeps identity", func(t *testing.T) {
		first, err := h.invitations.CreateInvite(ctx, alice, deck.ID, "twice@example.com", domain.RoleViewer)
		require.NoError(t, err)

		h.advance(time.Minute)
		second, err := h.invitations.CreateInvite(ctx, alice, deck.ID, "TWICE@example.com", domain.RoleEditor)
		require.NoError(t, err)

		require.Equal(t, first.ID, second.ID)
		require.True(t, first.CreatedAt.Equal(second.CreatedAt))
		require.Equal(t, domain.RoleEditor, second.RoleRequested)
		require.True(t, second.UpdatedAt.After(first.UpdatedAt))
	})

	t.Run("registered email must use membership", func(t *testing.T) {
		_, err := h.invitations.CreateInvite(ctx, alice, deck.ID, "bob@example.com", domain.RoleViewer)
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("editor cannot invite", func(t *testing.T) {
		_, err := h.invitations.CreateInvite(ctx, bob, deck.ID, "x@example.com", domain.RoleViewer)
		require.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("missing deck", func(t *testing.T) {
		_, err := h.invitations.CreateInvite(ctx, alice, "missing", "x@example.com", domain.RoleViewer)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestListPendingInvites(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	alice := h.register(t, "alice", "alice@example.com")
	bob := h.register(t, "bob", "bob@example.com")
	stranger := h.register(t, "eve", "eve@example.com")
	deck := h.deck(t, alice)

	_, err := h.members.AddCollaborator(ctx, alice, deck.ID, "bob@example.com", domain.RoleViewer)
	require.NoError(t, err)

	a, err := h.invitations.CreateInvite(ctx, alice, deck.ID, "a@example.com", domain.RoleViewer)
	require.NoError(t, err)
	h.advance(time.Hour)
	b, err := h.invitations.CreateInvite(ctx, alice, deck.ID, "b@example.com", domain.RoleEditor)
	require.NoError(t, err)

	t.Run("any reader sees invites oldest first", func(t *testing.T) {
		got, err := h.invitations.ListPendingInvites(ctx, bob, deck.ID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, a.ID, got[0].ID)
		require.Equal(t, b.ID, got[1].ID)
	})

	t.Run("non-reader denied", func(t *testing.T) {
		_, err := h.invitations.ListPendingInvites(ctx, stranger, deck.ID)
		require.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("expired invites are excluded", func(t *testing.T) {
		// a expires one hour before b
		h.advance(7*24*time.Hour - 30*time.Minute)
		got, err := h.invitations.ListPendingInvites(ctx, alice, deck.ID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, b.ID, got[0].ID)
	})
}

func TestRevokeInvite(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	alice := h.register(t, "alice", "alice@example.com")
	bob := h.register(t, "bob", "bob@example.com")
	deck := h.deck(t, alice)

	inv, err := h.invitations.CreateInvite(ctx, alice, deck.ID, "x@example.com", domain.RoleViewer)
	require.NoError(t, err)

	require.ErrorIs(t, h.invitations.RevokeInvite(ctx, bob, inv.ID), ErrPermissionDenied)
	require.NoError(t, h.invitations.RevokeInvite(ctx, alice, inv.ID))
	require.ErrorIs(t, h.invitations.RevokeInvite(ctx, alice, inv.ID), ErrNotFound)

	_, err = h.store.Invites().GetInvite(ctx, inv.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.Equal(t, []string{events.InviteCreated, events.InviteRevoked}, h.events.types())
}

func TestRegisterClaimsInvites(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	alice := h.register(t, "alice", "alice@example.com")
	deckA := h.deck(t, alice)
	deckB := h.deck(t, alice)

	_, err := h.invitations.CreateInvite(ctx, alice, deckA.ID, "new@example.com", domain.RoleEditor)
	require.NoError(t, err)
	_, err = h.invitations.CreateInvite(ctx, alice, deckB.ID, "new@example.com", domain.RoleViewer)
	require.NoError(t, err)

	newbie := principal("newbie", "New@Example.com")
	user, claimed, err := h.users.Register(ctx, newbie, "", "Newbie")
	require.NoError(t, err)
	require.Equal(t, "new@example.com", user.EmailLower)
	require.Len(t, claimed, 2)

	require.Equal(t, domain.RoleEditor, h.roles(t, deckA.ID)["newbie"])
	require.Equal(t, domain.RoleViewer, h.roles(t, deckB.ID)["newbie"])

	for _, d := range []domain.Deck{deckA, deckB} {
		pending, err := h.invitations.ListPendingInvites(ctx, alice, d.ID)
		require.NoError(t, err)
		require.Empty(t, pending, "a user is never both invited and a member")
	}

	visible, err := h.decks.ListVisibleDecks(ctx, newbie)
	require.NoError(t, err)
	require.Len(t, visible, 2)

	require.Contains(t, h.events.types(), events.InviteClaimed)
}

func TestClaimInvitesSkipsExpiredAndOwned(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	alice := h.register(t, "alice", "alice@example.com")
	deck := h.deck(t, alice)

	_, err := h.invitations.CreateInvite(ctx, alice, deck.ID, "late@example.com", domain.RoleViewer)
	require.NoError(t, err)

	h.advance(8 * 24 * time.Hour)
	_, claimed, err := h.users.Register(ctx, principal("late", "late@example.com"), "", "")
	require.NoError(t, err)
	require.Empty(t, claimed)
	require.Empty(t, h.roles(t, deck.ID))

	t.Run("invite on own deck is dropped", func(t *testing.T) {
		// Alice changes her email to one her own deck has an invite for.
		_, err := h.invitations.CreateInvite(ctx, alice, deck.ID, "alias@example.com", domain.RoleEditor)
		require.NoError(t, err)

		_, claimed, err := h.users.Register(ctx, principal("alice", "alias@example.com"), "", "")
		require.NoError(t, err)
		require.Empty(t, claimed)
		require.Empty(t, h.roles(t, deck.ID))

		pending, err := h.invitations.ListPendingInvites(ctx, alice, deck.ID)
		require.NoError(t, err)
		require.Empty(t, pending)
	})
}

func TestClaimMine(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	_, err := h.invitations.ClaimMine(ctx, principal("ghost", "ghost@example.com"))
	require.ErrorIs(t, err, ErrUserNotFound)

	bob := h.register(t, "bob", "bob@example.com")
	claimed, err := h.invitations.ClaimMine(ctx, bob)
	require.NoError(t, err)
	require.Empty(t, claimed)
}
