package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/notecards/internal/sharing/domain"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestCardsByRole(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	alice := h.register(t, "alice", "alice@example.com")
	bob := h.register(t, "bob", "bob@example.com")
	carol := h.register(t, "carol", "carol@example.com")
	deck := h.deck(t, alice)

	_, err := h.members.AddCollaborator(ctx, alice, deck.ID, "bob@example.com", domain.RoleEditor)
	require.NoError(t, err)
	_, err = h.members.AddCollaborator(ctx, alice, deck.ID, "carol@example.com", domain.RoleViewer)
	require.NoError(t, err)

	first, err := h.cards.CreateCard(ctx, alice, deck.ID, "uno", "one")
	require.NoError(t, err)
	second, err := h.cards.CreateCard(ctx, bob, deck.ID, "dos", "two")
	require.NoError(t, err)
	require.Equal(t, first.Position+1, second.Position)

	t.Run("viewer reads but cannot write", func(t *testing.T) {
		cards, err := h.cards.ListCards(ctx, carol, deck.ID)
		require.NoError(t, err)
		require.Len(t, cards, 2)

		_, err = h.cards.CreateCard(ctx, carol, deck.ID, "tres", "three")
		require.ErrorIs(t, err, ErrPermissionDenied)
		_, err = h.cards.UpdateCard(ctx, carol, deck.ID, first.ID, CardPatch{Back: ptr("1")})
		require.ErrorIs(t, err, ErrPermissionDenied)
		require.ErrorIs(t, h.cards.DeleteCard(ctx, carol, deck.ID, first.ID), ErrPermissionDenied)
	})

	t.Run("editor updates one side", func(t *testing.T) {
		got, err := h.cards.UpdateCard(ctx, bob, deck.ID, first.ID, CardPatch{Back: ptr(" ONE ")})
		require.NoError(t, err)
		require.Equal(t, "uno", got.Front)
		require.Equal(t, "ONE", got.Back)

		_, err = h.cards.UpdateCard(ctx, bob, deck.ID, first.ID, CardPatch{Front: ptr("")})
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("missing card and deck", func(t *testing.T) {
		_, err := h.cards.UpdateCard(ctx, bob, deck.ID, "nope", CardPatch{})
		require.ErrorIs(t, err, ErrNotFound)
		require.ErrorIs(t, h.cards.DeleteCard(ctx, bob, deck.ID, "nope"), ErrNotFound)

		_, err = h.cards.ListCards(ctx, bob, "gone")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("front is required", func(t *testing.T) {
		_, err := h.cards.CreateCard(ctx, alice, deck.ID, "  ", "x")
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, h.cards.DeleteCard(ctx, bob, deck.ID, second.ID))
		cards, err := h.cards.ListCards(ctx, alice, deck.ID)
		require.NoError(t, err)
		require.Len(t, cards, 1)
	})
}

func TestReorderCards(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	alice := h.register(t, "alice", "alice@example.com")
	carol := h.register(t, "carol", "carol@example.com")
	deck := h.deck(t, alice)

	_, err := h.members.AddCollaborator(ctx, alice, deck.ID, "carol@example.com", domain.RoleViewer)
	require.NoError(t, err)

	var ids []string
	for _, front := range []string{"a", "b", "c"} {
		c, err := h.cards.CreateCard(ctx, alice, deck.ID, front, "")
		require.NoError(t, err)
		ids = append(ids, c.ID)
	}

	t.Run("rejects non-permutations", func(t *testing.T) {
		bad := [][]string{
			{ids[0], ids[1]},
			{ids[0], ids[1], ids[1]},
			{ids[0], ids[1], "other"},
		}
		for _, order := range bad {
			_, err := h.cards.ReorderCards(ctx, alice, deck.ID, order)
			require.ErrorIs(t, err, ErrValidation)
		}
	})

	t.Run("viewer denied", func(t *testing.T) {
		_, err := h.cards.ReorderCards(ctx, carol, deck.ID, ids)
		require.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("writes positions and snapshot", func(t *testing.T) {
		order := []string{ids[2], ids[0], ids[1]}
		snap, err := h.cards.ReorderCards(ctx, alice, deck.ID, order)
		require.NoError(t, err)
		require.Equal(t, order, snap.CardIDs)

		cards, err := h.cards.ListCards(ctx, carol, deck.ID)
		require.NoError(t, err)
		got := make([]string, 0, len(cards))
		for _, c := range cards {
			got = append(got, c.ID)
		}
		require.Equal(t, order, got)

		h.advance(time.Second)
		_, err = h.cards.ReorderCards(ctx, alice, deck.ID, ids)
		require.NoError(t, err)

		snaps, err := h.cards.ListOrderSnapshots(ctx, carol, deck.ID, 0)
		require.NoError(t, err)
		require.Len(t, snaps, 2)
		require.Equal(t, ids, snaps[0].CardIDs)
		require.Equal(t, order, snaps[1].CardIDs)
	})
}
