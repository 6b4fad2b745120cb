package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/notecards/internal/sharing/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrOwnerMember is returned when a member row would name the deck owner.
	ErrOwnerMember = errors.New("store: deck owner cannot be a member")
)

// Store is the root data access interface. Sub-repositories keep concerns
// tidy, and a Tx exposes the same repositories so multi-step operations
// (membership changes, invite claims, reorders) commit or fail as one.
type Store interface {
	Users() Users
	Decks() Decks
	Members() Members
	Invites() Invites
	Cards() Cards
	OrderSnapshots() OrderSnapshots

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise. Inside fn only use the repositories of tx.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail looks up a normalized (lowercase) email.
	GetUserByEmail(ctx context.Context, emailLower string) (domain.User, error)

	// UpsertUser inserts the user or updates email and display name.
	// Returns ErrAlreadyExists when the email belongs to another user.
	UpsertUser(ctx context.Context, u domain.User) error
}

type Decks interface {
	CreateDeck(ctx context.Context, d domain.Deck) error

	// GetDeck returns the deck with Roles populated from its members.
	GetDeck(ctx context.Context, id string) (domain.Deck, error)

	// ListDecksForUser returns decks owned by or shared with userID,
	// most recently updated first.
	ListDecksForUser(ctx context.Context, userID string) ([]domain.Deck, error)

	UpdateDeckTitle(ctx context.Context, id, title string, updatedAt time.Time) error

	// TouchDeck bumps updated_at after a change to a subcollection.
	TouchDeck(ctx context.Context, id string, updatedAt time.Time) error

	// DeleteDeck cascades to members, invites, cards and snapshots.
	DeleteDeck(ctx context.Context, id string) error
}

type Members interface {
	// UpsertMember inserts the member or overwrites its role.
	UpsertMember(ctx context.Context, m domain.Member) error

	GetMember(ctx context.Context, deckID, userID string) (domain.Member, error)

	// DeleteMember returns ErrNotFound when userID holds no role.
	DeleteMember(ctx context.Context, deckID, userID string) error

	// ListMembers is ordered by user id.
	ListMembers(ctx context.Context, deckID string) ([]domain.Member, error)
}

type Invites interface {
	// UpsertInvite creates the invite or, when (deck, email) already has one,
	// keeps its id and createdAt and updates role, updatedAt and expiresAt.
	// The stored row is returned.
	UpsertInvite(ctx context.Context, inv domain.Invite) (domain.Invite, error)

	GetInvite(ctx context.Context, id string) (domain.Invite, error)

	// ListPendingInvites returns invites not expired at now, oldest first.
	ListPendingInvites(ctx context.Context, deckID string, now time.Time) ([]domain.Invite, error)

	// ListPendingInvitesByEmail is used when a user claims their invites.
	ListPendingInvitesByEmail(ctx context.Context, emailLower string, now time.Time) ([]domain.Invite, error)

	// DeleteInvite returns ErrNotFound when no such invite exists.
	DeleteInvite(ctx context.Context, id string) error

	// DeleteInviteForEmail reports whether a pending invite was removed.
	DeleteInviteForEmail(ctx context.Context, deckID, emailLower string) (bool, error)

	// DeleteExpiredInvites is housekeeping; it returns the number removed.
	DeleteExpiredInvites(ctx context.Context, now time.Time) (int64, error)
}

type Cards interface {
	CreateCard(ctx context.Context, c domain.Card) error
	GetCard(ctx context.Context, deckID, cardID string) (domain.Card, error)

	// ListCards is ordered by position.
	ListCards(ctx context.Context, deckID string) ([]domain.Card, error)

	// UpdateCardContent changes front and back.
	UpdateCardContent(ctx context.Context, c domain.Card) error

	SetCardPosition(ctx context.Context, deckID, cardID string, position int, updatedAt time.Time) error

	DeleteCard(ctx context.Context, deckID, cardID string) error

	// NextPosition returns one past the highest position in the deck.
	NextPosition(ctx context.Context, deckID string) (int, error)
}

type OrderSnapshots interface {
	CreateOrderSnapshot(ctx context.Context, s domain.OrderSnapshot) error

	// ListOrderSnapshots returns up to limit snapshots, newest first.
	ListOrderSnapshots(ctx context.Context, deckID string, limit int) ([]domain.OrderSnapshot, error)
}
