package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/notecards/internal/sharing/domain"
)

type cardsRepo struct {
	q querier
}

const cardColumns = `id, deck_id, front, back, position, created_by, created_at, updated_at`

func scanCard(row rowScanner) (domain.Card, error) {
	var (
		c                    domain.Card
		createdAt, updatedAt int64
	)
	err := row.Scan(&c.ID, &c.DeckID, &c.Front, &c.Back, &c.Position, &c.CreatedBy, &createdAt, &updatedAt)
	if err != nil {
		return domain.Card{}, mapNotFound(err)
	}
	c.CreatedAt = fromMillis(createdAt)
	c.UpdatedAt = fromMillis(updatedAt)
	return c, nil
}

func (r *cardsRepo) CreateCard(ctx context.Context, c domain.Card) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO cards (`+cardColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.DeckID, c.Front, c.Back, c.Position, c.CreatedBy,
		toMillis(c.CreatedAt), toMillis(c.UpdatedAt),
	)
	return mapWriteErr(err)
}

func (r *cardsRepo) GetCard(ctx context.Context, deckID, cardID string) (domain.Card, error) {
	return scanCard(r.q.QueryRowContext(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE deck_id = ? AND id = ?`, deckID, cardID))
}

func (r *cardsRepo) ListCards(ctx context.Context, deckID string) ([]domain.Card, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE deck_id = ? ORDER BY position ASC, id ASC`, deckID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards := []domain.Card{}
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

func (r *cardsRepo) UpdateCardContent(ctx context.Context, c domain.Card) error {
	return requireAffected(r.q.ExecContext(ctx,
		`UPDATE cards SET front = ?, back = ?, updated_at = ? WHERE deck_id = ? AND id = ?`,
		c.Front, c.Back, toMillis(c.UpdatedAt), c.DeckID, c.ID))
}

func (r *cardsRepo) SetCardPosition(ctx context.Context, deckID, cardID string, position int, updatedAt time.Time) error {
	return requireAffected(r.q.ExecContext(ctx,
		`UPDATE cards SET position = ?, updated_at = ? WHERE deck_id = ? AND id = ?`,
		position, toMillis(updatedAt), deckID, cardID))
}

func (r *cardsRepo) DeleteCard(ctx context.Context, deckID, cardID string) error {
	return requireAffected(r.q.ExecContext(ctx,
		`DELETE FROM cards WHERE deck_id = ? AND id = ?`, deckID, cardID))
}

func (r *cardsRepo) NextPosition(ctx context.Context, deckID string) (int, error) {
	var next int
	err := r.q.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(position) + 1, 0) FROM cards WHERE deck_id = ?`, deckID).Scan(&next)
	return next, err
}
