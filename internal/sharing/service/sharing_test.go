package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aussiebroadwan/notecards/internal/sharing/domain"
	"github.com/aussiebroadwan/notecards/internal/sharing/store"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorKind
	}{
		{nil, ""},
		{ErrUserNotFound, KindUserNotFound},
		{denied("nope"), KindPermissionDenied},
		{notFound("deck %s", "x"), KindNotFound},
		{invalid("bad"), KindValidation},
		{fmt.Errorf("wrapped: %w", ErrValidation), KindValidation},
		{errors.New("disk on fire"), KindInternal},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, KindOf(tt.err), "%v", tt.err)
	}
}

func TestShareWithUser(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	alice := h.register(t, "alice", "alice@example.com")
	bob := h.register(t, "bob", "bob@example.com")
	deck := h.deck(t, alice)

	t.Run("unregistered email falls back to invite", func(t *testing.T) {
		res := h.sharing.ShareWithUser(ctx, alice, deck.ID, "a@x.com", domain.RoleViewer)
		require.True(t, res.Success(), res.Error)
		require.Equal(t, OutcomeInvited, res.Outcome)
		require.NotNil(t, res.Invite)
		require.Nil(t, res.Member)

		pending, err := h.invitations.ListPendingInvites(ctx, alice, deck.ID)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		require.Equal(t, "a@x.com", pending[0].EmailLower)
		require.Equal(t, domain.RoleViewer, pending[0].RoleRequested)
	})

	t.Run("sharing twice keeps one invite", func(t *testing.T) {
		res := h.sharing.ShareWithUser(ctx, alice, deck.ID, "A@X.com", domain.RoleEditor)
		require.True(t, res.Success())

		pending, err := h.invitations.ListPendingInvites(ctx, alice, deck.ID)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		require.Equal(t, domain.RoleEditor, pending[0].RoleRequested)
	})

	t.Run("registered user is granted", func(t *testing.T) {
		res := h.sharing.ShareWithUser(ctx, alice, deck.ID, "bob@example.com", domain.RoleEditor)
		require.True(t, res.Success())
		require.Equal(t, OutcomeGranted, res.Outcome)
		require.Equal(t, bob.UserID, res.Member.UserID)

		d, _, err := h.decks.GetDeck(ctx, alice, deck.ID)
		require.NoError(t, err)
		require.Equal(t, domain.RoleEditor, d.Roles[bob.UserID])
		require.Contains(t, d.CollaboratorIDs(), bob.UserID)
	})

	t.Run("permission failures are not retried as invites", func(t *testing.T) {
		res := h.sharing.ShareWithUser(ctx, bob, deck.ID, "someone@x.com", domain.RoleViewer)
		require.False(t, res.Success())
		require.Equal(t, KindPermissionDenied, res.Kind)
		require.NotEmpty(t, res.Error)

		pending, err := h.invitations.ListPendingInvites(ctx, alice, deck.ID)
		require.NoError(t, err)
		require.Len(t, pending, 1)
	})

	t.Run("validation errors surface their message", func(t *testing.T) {
		res := h.sharing.ShareWithUser(ctx, alice, deck.ID, "not-an-email", domain.RoleViewer)
		require.Equal(t, KindValidation, res.Kind)
		require.Contains(t, res.Error, "not-an-email")
	})

	t.Run("missing deck", func(t *testing.T) {
		res := h.sharing.ShareWithUser(ctx, alice, "gone", "bob@example.com", domain.RoleViewer)
		require.Equal(t, KindNotFound, res.Kind)
	})

	t.Run("unregistered owner cannot invite themselves", func(t *testing.T) {
		carol := principal("carol", "carol@example.com")
		own := h.deck(t, carol)

		res := h.sharing.ShareWithUser(ctx, carol, own.ID, "Carol@Example.com", domain.RoleEditor)
		require.False(t, res.Success())
		require.Equal(t, KindValidation, res.Kind)
		require.Nil(t, res.Invite)

		_, err := h.invitations.CreateInvite(ctx, carol, own.ID, "carol@example.com", domain.RoleViewer)
		require.ErrorIs(t, err, ErrValidation)

		pending, err := h.invitations.ListPendingInvites(ctx, carol, own.ID)
		require.NoError(t, err)
		require.Empty(t, pending)
	})
}

func TestSharingLifecycle(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	alice := h.register(t, "alice", "alice@example.com")
	deck := h.deck(t, alice)

	// NONE -> PENDING_INVITE
	res := h.sharing.ShareWithUser(ctx, alice, deck.ID, "carol@example.com", domain.RoleViewer)
	require.Equal(t, OutcomeInvited, res.Outcome)
	assertExclusive(t, h, deck.ID, "carol@example.com")

	// PENDING_INVITE -> ACTIVE_ROLE
	carol := h.register(t, "carol", "carol@example.com")
	require.Equal(t, domain.RoleViewer, h.roles(t, deck.ID)[carol.UserID])
	assertExclusive(t, h, deck.ID, "carol@example.com")

	// ACTIVE_ROLE -> ACTIVE_ROLE
	res = h.sharing.UpdateUserRole(ctx, alice, deck.ID, carol.UserID, domain.RoleEditor)
	require.True(t, res.Success(), res.Error)
	require.Equal(t, OutcomeRoleChanged, res.Outcome)
	require.Equal(t, domain.RoleEditor, res.Member.Role)

	// Editors cannot change roles
	res = h.sharing.UpdateUserRole(ctx, carol, deck.ID, carol.UserID, domain.RoleViewer)
	require.Equal(t, KindPermissionDenied, res.Kind)
	require.Equal(t, domain.RoleEditor, h.roles(t, deck.ID)[carol.UserID])

	// ACTIVE_ROLE -> NONE
	res = h.sharing.RemoveUserAccess(ctx, alice, deck.ID, carol.UserID)
	require.True(t, res.Success())
	require.Equal(t, OutcomeRemoved, res.Outcome)
	require.NotContains(t, h.roles(t, deck.ID), carol.UserID)

	res = h.sharing.RemoveUserAccess(ctx, alice, deck.ID, carol.UserID)
	require.Equal(t, KindNotFound, res.Kind)

	// NONE -> PENDING_INVITE -> NONE by revoke
	res = h.sharing.ShareWithUser(ctx, alice, deck.ID, "dan@example.com", domain.RoleEditor)
	require.Equal(t, OutcomeInvited, res.Outcome)
	require.NoError(t, h.invitations.RevokeInvite(ctx, alice, res.Invite.ID))

	pending, err := h.invitations.ListPendingInvites(ctx, alice, deck.ID)
	require.NoError(t, err)
	require.Empty(t, pending)
	require.Empty(t, h.roles(t, deck.ID))
}

func TestResultHidesInternalErrors(t *testing.T) {
	h := newHarness(t)
	alice := h.register(t, "alice", "alice@example.com")
	deck := h.deck(t, alice)
	require.NoError(t, h.store.Close())

	res := h.sharing.ShareWithUser(context.Background(), alice, deck.ID, "x@example.com", domain.RoleViewer)
	require.False(t, res.Success())
	require.Equal(t, KindInternal, res.Kind)
	require.Equal(t, internalMessage, res.Error)
}

// assertExclusive checks that email is either a member or invited on deckID,
// never both.
func assertExclusive(t *testing.T, h *harness, deckID, email string) {
	t.Helper()
	ctx := context.Background()

	invited := false
	pending, err := h.store.Invites().ListPendingInvites(ctx, deckID, h.now)
	require.NoError(t, err)
	for _, inv := range pending {
		if inv.EmailLower == email {
			invited = true
		}
	}

	member := false
	u, err := h.store.Users().GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		_, err = h.store.Members().GetMember(ctx, deckID, u.ID)
		member = err == nil
	case !errors.Is(err, store.ErrNotFound):
		require.NoError(t, err)
	}

	require.False(t, invited && member, "%s is both invited and a member", email)
	require.True(t, invited || member, "%s has no access path", email)
}
