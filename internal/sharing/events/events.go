// Package events publishes deck sharing changes so other services (mail,
// notifications, search) can react to them.
package events

import (
	"context"
	"log/slog"
	"time"
)

// Event types.
const (
	MemberAdded       = "member.added"
	MemberRemoved     = "member.removed"
	MemberRoleChanged = "member.role_changed"
	InviteCreated     = "invite.created"
	InviteRevoked     = "invite.revoked"
	InviteClaimed     = "invite.claimed"
	DeckDeleted       = "deck.deleted"
)

// Event is the JSON message body put on the wire.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	DeckID     string    `json:"deck_id"`
	ActorID    string    `json:"actor_id"`
	UserID     string    `json:"user_id,omitempty"`
	Email      string    `json:"email,omitempty"`
	Role       string    `json:"role,omitempty"`
	InviteID   string    `json:"invite_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher delivers events. Publishing happens after the change has been
// committed, so a failure is logged by the caller and never undoes the change.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }

// LogPublisher writes events to a logger. Used when no broker is configured.
type LogPublisher struct {
	Logger *slog.Logger
}

func (p LogPublisher) Publish(ctx context.Context, e Event) error {
	log := p.Logger
	if log == nil {
		log = slog.Default()
	}
	log.InfoContext(ctx, "share event",
		"event_id", e.ID,
		"type", e.Type,
		"deck_id", e.DeckID,
		"actor_id", e.ActorID,
		"user_id", e.UserID,
		"role", e.Role,
		"invite_id", e.InviteID,
	)
	return nil
}

func (LogPublisher) Close() error { return nil }
