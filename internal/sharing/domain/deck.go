package domain

import (
	"slices"
	"time"
)

// Deck is the shareable unit. Roles is the single source of truth for
// collaborator access; the owner is never a key in it.
type Deck struct {
	ID        string
	OwnerID   string
	Title     string
	Roles     map[string]Role // userID -> editor|viewer
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CollaboratorIDs returns the sorted user ids holding any non-owner role.
func (d Deck) CollaboratorIDs() []string {
	ids := make([]string, 0, len(d.Roles))
	for id := range d.Roles {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Member is one row of a deck's collaborator list.
type Member struct {
	DeckID    string
	UserID    string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}
