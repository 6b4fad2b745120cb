package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/notecards/internal/sharing/domain"
)

type decksRepo struct {
	q querier
}

const deckColumns = `d.id, d.owner_id, d.title, d.created_at, d.updated_at`

// visibleTo matches decks owned by or shared with the bound user id (twice).
const visibleTo = `(d.owner_id = ? OR EXISTS (
	SELECT 1 FROM deck_members vm WHERE vm.deck_id = d.id AND vm.user_id = ?))`

func scanDeck(row rowScanner) (domain.Deck, error) {
	var (
		d                    domain.Deck
		createdAt, updatedAt int64
	)
	if err := row.Scan(&d.ID, &d.OwnerID, &d.Title, &createdAt, &updatedAt); err != nil {
		return domain.Deck{}, mapNotFound(err)
	}
	d.CreatedAt = fromMillis(createdAt)
	d.UpdatedAt = fromMillis(updatedAt)
	d.Roles = map[string]domain.Role{}
	return d, nil
}

// CreateDeck stores the deck row. Collaborators are added through Members.
func (r *decksRepo) CreateDeck(ctx context.Context, d domain.Deck) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO decks (id, owner_id, title, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		d.ID, d.OwnerID, d.Title, toMillis(d.CreatedAt), toMillis(d.UpdatedAt),
	)
	return mapWriteErr(err)
}

func (r *decksRepo) GetDeck(ctx context.Context, id string) (domain.Deck, error) {
	d, err := scanDeck(r.q.QueryRowContext(ctx,
		`SELECT `+deckColumns+` FROM decks d WHERE d.id = ?`, id))
	if err != nil {
		return domain.Deck{}, err
	}

	rows, err := r.q.QueryContext(ctx,
		`SELECT user_id, role FROM deck_members WHERE deck_id = ?`, id)
	if err != nil {
		return domain.Deck{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var uid, role string
		if err := rows.Scan(&uid, &role); err != nil {
			return domain.Deck{}, err
		}
		d.Roles[uid] = domain.Role(role)
	}
	return d, rows.Err()
}

func (r *decksRepo) ListDecksForUser(ctx context.Context, userID string) ([]domain.Deck, error) {
	decks, err := r.listDecks(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(decks) == 0 {
		return decks, nil
	}

	// Second pass fills in roles once the deck cursor is closed.
	byID := make(map[string]*domain.Deck, len(decks))
	for i := range decks {
		byID[decks[i].ID] = &decks[i]
	}

	rows, err := r.q.QueryContext(ctx, `
		SELECT m.deck_id, m.user_id, m.role
		FROM deck_members m
		JOIN decks d ON d.id = m.deck_id
		WHERE `+visibleTo, userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var deckID, uid, role string
		if err := rows.Scan(&deckID, &uid, &role); err != nil {
			return nil, err
		}
		if d, ok := byID[deckID]; ok {
			d.Roles[uid] = domain.Role(role)
		}
	}
	return decks, rows.Err()
}

func (r *decksRepo) listDecks(ctx context.Context, userID string) ([]domain.Deck, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+deckColumns+`
		FROM decks d
		WHERE `+visibleTo+`
		ORDER BY d.updated_at DESC, d.id DESC`, userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	decks := []domain.Deck{}
	for rows.Next() {
		d, err := scanDeck(rows)
		if err != nil {
			return nil, err
		}
		decks = append(decks, d)
	}
	return decks, rows.Err()
}

func (r *decksRepo) UpdateDeckTitle(ctx context.Context, id, title string, updatedAt time.Time) error {
	return requireAffected(r.q.ExecContext(ctx,
		`UPDATE decks SET title = ?, updated_at = ? WHERE id = ?`,
		title, toMillis(updatedAt), id))
}

func (r *decksRepo) TouchDeck(ctx context.Context, id string, updatedAt time.Time) error {
	return requireAffected(r.q.ExecContext(ctx,
		`UPDATE decks SET updated_at = ? WHERE id = ?`, toMillis(updatedAt), id))
}

func (r *decksRepo) DeleteDeck(ctx context.Context, id string) error {
	return requireAffected(r.q.ExecContext(ctx, `DELETE FROM decks WHERE id = ?`, id))
}
