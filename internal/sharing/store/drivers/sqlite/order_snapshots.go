package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aussiebroadwan/notecards/internal/sharing/domain"
)

type orderSnapshotsRepo struct {
	q querier
}

func (r *orderSnapshotsRepo) CreateOrderSnapshot(ctx context.Context, s domain.OrderSnapshot) error {
	ids, err := json.Marshal(s.CardIDs)
	if err != nil {
		return fmt.Errorf("sqlite: encode card ids: %w", err)
	}

	_, err = r.q.ExecContext(ctx, `
		INSERT INTO order_snapshots (id, deck_id, card_ids, created_by, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		s.ID, s.DeckID, string(ids), s.CreatedBy, toMillis(s.CreatedAt),
	)
	return mapWriteErr(err)
}

func (r *orderSnapshotsRepo) ListOrderSnapshots(ctx context.Context, deckID string, limit int) ([]domain.OrderSnapshot, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, deck_id, card_ids, created_by, created_at
		FROM order_snapshots
		WHERE deck_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, deckID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snaps := []domain.OrderSnapshot{}
	for rows.Next() {
		var (
			s         domain.OrderSnapshot
			ids       string
			createdAt int64
		)
		if err := rows.Scan(&s.ID, &s.DeckID, &ids, &s.CreatedBy, &createdAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(ids), &s.CardIDs); err != nil {
			return nil, fmt.Errorf("sqlite: decode card ids for snapshot %s: %w", s.ID, err)
		}
		s.CreatedAt = fromMillis(createdAt)
		snaps = append(snaps, s)
	}
	return snaps, rows.Err()
}
