package domain

import "time"

// Invite is a pending share for an email that has no registered user yet.
// Deleting the row revokes or consumes it.
type Invite struct {
	ID              string
	DeckID          string
	InvitedByUserID string
	EmailLower      string
	RoleRequested   Role
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ExpiresAt       *time.Time // nil never expires
}

// IsExpired reports whether the invite can no longer be claimed at now.
func (i Invite) IsExpired(now time.Time) bool {
	return i.ExpiresAt != nil && !now.Before(*i.ExpiresAt)
}
