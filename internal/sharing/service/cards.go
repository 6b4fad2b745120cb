package service

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/aussiebroadwan/notecards/internal/sharing/domain"
	"github.com/aussiebroadwan/notecards/internal/sharing/policy"
	"github.com/aussiebroadwan/notecards/internal/sharing/store"
	"github.com/aussiebroadwan/notecards/pkg/idx"
	"github.com/aussiebroadwan/notecards/pkg/slogx"
)

// MaxCardSideLength bounds the front and back of a card, in characters.
const MaxCardSideLength = 10_000

// DefaultSnapshotLimit is used when ListOrderSnapshots gets no limit.
const DefaultSnapshotLimit = 20

type CardService struct {
	Deps
}

func NewCardService(deps Deps) *CardService {
	return &CardService{Deps: deps}
}

// CardPatch holds the fields UpdateCard changes. Nil fields are left alone.
type CardPatch struct {
	Front *string
	Back  *string
}

func validateSide(name, v string, required bool) (string, error) {
	v = strings.TrimSpace(v)
	if required && v == "" {
		return "", invalid("%s is required", name)
	}
	if utf8.RuneCountInString(v) > MaxCardSideLength {
		return "", invalid("%s must be at most %d characters", name, MaxCardSideLength)
	}
	return v, nil
}

// ListCards returns the deck's cards by position.
func (s *CardService) ListCards(ctx context.Context, p domain.Principal, deckID string) ([]domain.Card, error) {
	_, role, err := loadDeck(ctx, s.Store.Decks(), deckID, p.UserID)
	if err != nil {
		return nil, err
	}
	if !policy.CanReadDeck(role) {
		return nil, denied("no access to deck %s", deckID)
	}
	return s.Store.Cards().ListCards(ctx, deckID)
}

// CreateCard appends a card to the end of the deck.
func (s *CardService) CreateCard(ctx context.Context, p domain.Principal, deckID, front, back string) (domain.Card, error) {
	log := slogx.FromContext(ctx).With(slog.String("deck_id", deckID))

	front, err := validateSide("front", front, true)
	if err != nil {
		return domain.Card{}, err
	}
	back, err = validateSide("back", back, false)
	if err != nil {
		return domain.Card{}, err
	}

	now := s.now()
	card := domain.Card{
		ID:        idx.NewAt(now).String(),
		DeckID:    deckID,
		Front:     front,
		Back:      back,
		CreatedBy: p.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		_, role, err := loadDeck(ctx, tx.Decks(), deckID, p.UserID)
		if err != nil {
			return err
		}
		if !policy.CanWriteCards(role) {
			return denied("%s cannot add cards", role)
		}

		card.Position, err = tx.Cards().NextPosition(ctx, deckID)
		if err != nil {
			return err
		}
		if err := tx.Cards().CreateCard(ctx, card); err != nil {
			return err
		}
		return tx.Decks().TouchDeck(ctx, deckID, now)
	})
	if err != nil {
		logFailure(log, "create card failed", err)
		return domain.Card{}, err
	}

	log.Debug("card created", slog.String("card_id", card.ID))
	return card, nil
}

// UpdateCard applies patch to one card.
func (s *CardService) UpdateCard(ctx context.Context, p domain.Principal, deckID, cardID string, patch CardPatch) (domain.Card, error) {
	log := slogx.FromContext(ctx).With(slog.String("deck_id", deckID), slog.String("card_id", cardID))

	var card domain.Card
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		_, role, err := loadDeck(ctx, tx.Decks(), deckID, p.UserID)
		if err != nil {
			return err
		}
		if !policy.CanWriteCards(role) {
			return denied("%s cannot edit cards", role)
		}

		card, err = tx.Cards().GetCard(ctx, deckID, cardID)
		if err != nil {
			if isStoreNotFound(err) {
				return notFound("card %s", cardID)
			}
			return err
		}

		if patch.Front != nil {
			if card.Front, err = validateSide("front", *patch.Front, true); err != nil {
				return err
			}
		}
		if patch.Back != nil {
			if card.Back, err = validateSide("back", *patch.Back, false); err != nil {
				return err
			}
		}
		card.UpdatedAt = s.now()

		if err := tx.Cards().UpdateCardContent(ctx, card); err != nil {
			return err
		}
		return tx.Decks().TouchDeck(ctx, deckID, card.UpdatedAt)
	})
	if err != nil {
		logFailure(log, "update card failed", err)
		return domain.Card{}, err
	}
	return card, nil
}

func (s *CardService) DeleteCard(ctx context.Context, p domain.Principal, deckID, cardID string) error {
	log := slogx.FromContext(ctx).With(slog.String("deck_id", deckID), slog.String("card_id", cardID))

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		_, role, err := loadDeck(ctx, tx.Decks(), deckID, p.UserID)
		if err != nil {
			return err
		}
		if !policy.CanWriteCards(role) {
			return denied("%s cannot delete cards", role)
		}

		if err := tx.Cards().DeleteCard(ctx, deckID, cardID); err != nil {
			if isStoreNotFound(err) {
				return notFound("card %s", cardID)
			}
			return err
		}
		return tx.Decks().TouchDeck(ctx, deckID, s.now())
	})
	if err != nil {
		logFailure(log, "delete card failed", err)
	}
	return err
}

// ReorderCards sets card positions to the order of cardIDs, which must name
// every card in the deck exactly once, and records the order as a snapshot.
func (s *CardService) ReorderCards(ctx context.Context, p domain.Principal, deckID string, cardIDs []string) (domain.OrderSnapshot, error) {
	log := slogx.FromContext(ctx).With(slog.String("deck_id", deckID))

	now := s.now()
	snap := domain.OrderSnapshot{
		ID:        idx.NewAt(now).String(),
		DeckID:    deckID,
		CardIDs:   append([]string(nil), cardIDs...),
		CreatedBy: p.UserID,
		CreatedAt: now,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. Parent deck and role
		_, role, err := loadDeck(ctx, tx.Decks(), deckID, p.UserID)
		if err != nil {
			return err
		}
		if !policy.CanWriteCards(role) {
			return denied("%s cannot reorder cards", role)
		}

		// 2. The new order must be a permutation of the current cards
		cards, err := tx.Cards().ListCards(ctx, deckID)
		if err != nil {
			return err
		}
		if err := checkPermutation(cards, cardIDs); err != nil {
			return err
		}

		// 3. Write positions and the snapshot together
		for pos, id := range cardIDs {
			if err := tx.Cards().SetCardPosition(ctx, deckID, id, pos, now); err != nil {
				return err
			}
		}
		if err := tx.OrderSnapshots().CreateOrderSnapshot(ctx, snap); err != nil {
			return err
		}
		return tx.Decks().TouchDeck(ctx, deckID, now)
	})
	if err != nil {
		logFailure(log, "reorder cards failed", err)
		return domain.OrderSnapshot{}, err
	}

	log.Info("cards reordered", slog.Int("count", len(cardIDs)))
	return snap, nil
}

func checkPermutation(cards []domain.Card, ids []string) error {
	if len(ids) != len(cards) {
		return invalid("order must list all %d cards, got %d", len(cards), len(ids))
	}
	want := make(map[string]bool, len(cards))
	for _, c := range cards {
		want[c.ID] = true
	}
	for _, id := range ids {
		if !want[id] {
			return invalid("card %s is unknown or listed twice", id)
		}
		delete(want, id)
	}
	return nil
}

// ListOrderSnapshots returns up to limit snapshots, newest first.
func (s *CardService) ListOrderSnapshots(ctx context.Context, p domain.Principal, deckID string, limit int) ([]domain.OrderSnapshot, error) {
	_, role, err := loadDeck(ctx, s.Store.Decks(), deckID, p.UserID)
	if err != nil {
		return nil, err
	}
	if !policy.CanReadDeck(role) {
		return nil, denied("no access to deck %s", deckID)
	}
	if limit <= 0 || limit > 100 {
		limit = DefaultSnapshotLimit
	}
	return s.Store.OrderSnapshots().ListOrderSnapshots(ctx, deckID, limit)
}
