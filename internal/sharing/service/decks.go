package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/aussiebroadwan/notecards/internal/sharing/domain"
	"github.com/aussiebroadwan/notecards/internal/sharing/events"
	"github.com/aussiebroadwan/notecards/internal/sharing/policy"
	"github.com/aussiebroadwan/notecards/internal/sharing/store"
	"github.com/aussiebroadwan/notecards/pkg/idx"
	"github.com/aussiebroadwan/notecards/pkg/slogx"
)

type DeckService struct {
	Deps
}

func NewDeckService(deps Deps) *DeckService {
	return &DeckService{Deps: deps}
}

// Sharing is the collaborator view of a deck.
type Sharing struct {
	Deck    domain.Deck
	Members []domain.Member
	Invites []domain.Invite
}

// CreateDeck creates a deck owned by the caller with no collaborators.
func (s *DeckService) CreateDeck(ctx context.Context, p domain.Principal, title string) (domain.Deck, error) {
	log := slogx.FromContext(ctx)

	now := s.now()
	deck := domain.Deck{
		ID:        idx.NewAt(now).String(),
		OwnerID:   p.UserID,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := policy.ValidateDeckCreate(p, deck); err != nil {
		return domain.Deck{}, fromPolicy(err)
	}
	deck.Title, _ = policy.ValidateTitle(title)

	if err := s.Store.Decks().CreateDeck(ctx, deck); err != nil {
		log.Error("failed to create deck", slog.Any("error", err))
		return domain.Deck{}, err
	}
	deck.Roles = map[string]domain.Role{}

	log.Info("deck created", slog.String("deck_id", deck.ID))
	return deck, nil
}

// GetDeck returns the deck and the caller's role on it.
func (s *DeckService) GetDeck(ctx context.Context, p domain.Principal, deckID string) (domain.Deck, domain.Role, error) {
	deck, role, err := loadDeck(ctx, s.Store.Decks(), deckID, p.UserID)
	if err != nil {
		return domain.Deck{}, domain.RoleNone, err
	}
	if !policy.CanReadDeck(role) {
		return domain.Deck{}, domain.RoleNone, denied("no access to deck %s", deckID)
	}
	return deck, role, nil
}

// ListVisibleDecks returns decks the caller owns or collaborates on, most
// recently updated first.
func (s *DeckService) ListVisibleDecks(ctx context.Context, p domain.Principal) ([]domain.Deck, error) {
	if p.UserID == "" {
		return nil, denied("unauthenticated")
	}
	return s.Store.Decks().ListDecksForUser(ctx, p.UserID)
}

// RenameDeck changes the title. Owners and editors may rename.
func (s *DeckService) RenameDeck(ctx context.Context, p domain.Principal, deckID, title string) (domain.Deck, error) {
	log := slogx.FromContext(ctx).With(slog.String("deck_id", deckID))

	var next domain.Deck
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		prior, role, err := loadDeck(ctx, tx.Decks(), deckID, p.UserID)
		if err != nil {
			return err
		}
		if !policy.CanReadDeck(role) {
			return denied("no access to deck %s", deckID)
		}

		next = prior
		next.Title = title
		if err := policy.ValidateDeckUpdate(prior, next, role); err != nil {
			return fromPolicy(err)
		}
		next.Title, _ = policy.ValidateTitle(title)
		next.UpdatedAt = s.now()

		return tx.Decks().UpdateDeckTitle(ctx, next.ID, next.Title, next.UpdatedAt)
	})
	if err != nil {
		logFailure(log, "rename deck failed", err)
		return domain.Deck{}, err
	}

	log.Info("deck renamed")
	return next, nil
}

// DeleteDeck removes the deck with its members, invites, cards and
// snapshots. Owner only.
func (s *DeckService) DeleteDeck(ctx context.Context, p domain.Principal, deckID string) error {
	log := slogx.FromContext(ctx).With(slog.String("deck_id", deckID))

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		_, role, err := loadDeck(ctx, tx.Decks(), deckID, p.UserID)
		if err != nil {
			return err
		}
		if !policy.CanDeleteDeck(role) {
			return denied("only the owner can delete a deck")
		}
		return tx.Decks().DeleteDeck(ctx, deckID)
	})
	if err != nil {
		logFailure(log, "delete deck failed", err)
		return err
	}

	log.Info("deck deleted")
	s.publish(ctx, events.Event{
		Type:    events.DeckDeleted,
		DeckID:  deckID,
		ActorID: p.UserID,
	})
	return nil
}

// GetSharing returns the members and pending invites of a deck. The two
// lists are read independently and are each a point-in-time view.
func (s *DeckService) GetSharing(ctx context.Context, p domain.Principal, deckID string) (Sharing, error) {
	deck, role, err := loadDeck(ctx, s.Store.Decks(), deckID, p.UserID)
	if err != nil {
		return Sharing{}, err
	}
	if !policy.CanReadDeck(role) {
		return Sharing{}, denied("no access to deck %s", deckID)
	}

	out := Sharing{Deck: deck}
	now := s.now()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		out.Members, err = s.Store.Members().ListMembers(gctx, deckID)
		return err
	})
	g.Go(func() error {
		var err error
		out.Invites, err = s.Store.Invites().ListPendingInvites(gctx, deckID, now)
		return err
	})
	if err := g.Wait(); err != nil {
		slogx.FromContext(ctx).Error("failed to load sharing",
			slog.String("deck_id", deckID),
			slog.Any("error", err),
		)
		return Sharing{}, err
	}
	return out, nil
}
