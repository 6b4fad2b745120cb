package sqlite

import (
	"context"

	"github.com/aussiebroadwan/notecards/internal/sharing/domain"
)

type membersRepo struct {
	q querier
}

const memberColumns = `deck_id, user_id, role, created_at, updated_at`

func scanMember(row rowScanner) (domain.Member, error) {
	var (
		m                    domain.Member
		role                 string
		createdAt, updatedAt int64
	)
	if err := row.Scan(&m.DeckID, &m.UserID, &role, &createdAt, &updatedAt); err != nil {
		return domain.Member{}, mapNotFound(err)
	}
	m.Role = domain.Role(role)
	m.CreatedAt = fromMillis(createdAt)
	m.UpdatedAt = fromMillis(updatedAt)
	return m, nil
}

func (r *membersRepo) UpsertMember(ctx context.Context, m domain.Member) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO deck_members (deck_id, user_id, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (deck_id, user_id) DO UPDATE SET
			role       = excluded.role,
			updated_at = excluded.updated_at`,
		m.DeckID, m.UserID, string(m.Role), toMillis(m.CreatedAt), toMillis(m.UpdatedAt),
	)
	return mapWriteErr(err)
}

func (r *membersRepo) GetMember(ctx context.Context, deckID, userID string) (domain.Member, error) {
	return scanMember(r.q.QueryRowContext(ctx,
		`SELECT `+memberColumns+` FROM deck_members WHERE deck_id = ? AND user_id = ?`,
		deckID, userID))
}

func (r *membersRepo) DeleteMember(ctx context.Context, deckID, userID string) error {
	return requireAffected(r.q.ExecContext(ctx,
		`DELETE FROM deck_members WHERE deck_id = ? AND user_id = ?`, deckID, userID))
}

func (r *membersRepo) ListMembers(ctx context.Context, deckID string) ([]domain.Member, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+memberColumns+` FROM deck_members WHERE deck_id = ? ORDER BY user_id`, deckID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []domain.Member{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}
