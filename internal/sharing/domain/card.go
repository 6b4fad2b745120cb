package domain

import "time"

type Card struct {
	ID        string
	DeckID    string
	Front     string
	Back      string
	Position  int
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderSnapshot records the card order a deck was given by a reorder.
type OrderSnapshot struct {
	ID        string
	DeckID    string
	CardIDs   []string
	CreatedBy string
	CreatedAt time.Time
}
