package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/notecards/internal/sharing/domain"
	"github.com/aussiebroadwan/notecards/internal/sharing/events"
	"github.com/aussiebroadwan/notecards/internal/sharing/policy"
	"github.com/aussiebroadwan/notecards/internal/sharing/store"
	"github.com/aussiebroadwan/notecards/pkg/idx"
	"github.com/aussiebroadwan/notecards/pkg/slogx"
)

// Deps are shared by every service. Now and Events may be left nil.
type Deps struct {
	Store  store.Store
	Events events.Publisher
	Now    func() time.Time
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now().UTC()
	}
	return time.Now().UTC()
}

// publish sends e after the change it describes has committed. Failures are
// logged; the change itself stands.
func (d Deps) publish(ctx context.Context, e events.Event) {
	if d.Events == nil {
		return
	}
	if e.ID == "" {
		e.ID = idx.New().String()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = d.now()
	}
	if err := d.Events.Publish(ctx, e); err != nil {
		slogx.FromContext(ctx).Warn("failed to publish share event",
			slog.String("type", e.Type),
			slog.String("deck_id", e.DeckID),
			slog.Any("error", err),
		)
	}
}

// loadDeck fetches the parent deck once and resolves the caller's role.
// A missing deck is ErrNotFound before any role is considered.
func loadDeck(ctx context.Context, decks store.Decks, deckID, userID string) (domain.Deck, domain.Role, error) {
	if deckID == "" {
		return domain.Deck{}, domain.RoleNone, invalid("deck id is required")
	}

	deck, err := decks.GetDeck(ctx, deckID)
	if err != nil {
		if isStoreNotFound(err) {
			return domain.Deck{}, domain.RoleNone, notFound("deck %s", deckID)
		}
		return domain.Deck{}, domain.RoleNone, err
	}
	return deck, policy.EffectiveRole(deck, userID), nil
}

// logFailure logs unexpected errors at error level and expected ones at debug.
func logFailure(log *slog.Logger, msg string, err error, attrs ...any) {
	if isKnown(err) {
		log.Debug(msg, append(attrs, slog.Any("error", err))...)
		return
	}
	log.Error(msg, append(attrs, slog.Any("error", err))...)
}

// isCallerEmail reports whether emailLower is the caller's own token email.
// Owners need not be registered, so this is the only way to spot self-shares.
func isCallerEmail(p domain.Principal, emailLower string) bool {
	own, err := policy.NormalizeEmail(p.Email)
	return err == nil && own == emailLower
}
