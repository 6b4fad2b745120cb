package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/notecards/internal/sharing/domain"
)

type invitesRepo struct {
	q querier
}

const inviteColumns = `id, deck_id, invited_by_user_id, email_lower, role_requested,
	created_at, updated_at, expires_at`

func scanInvite(row rowScanner) (domain.Invite, error) {
	var (
		inv                  domain.Invite
		role                 string
		createdAt, updatedAt int64
		expiresAt            sql.NullInt64
	)
	err := row.Scan(&inv.ID, &inv.DeckID, &inv.InvitedByUserID, &inv.EmailLower, &role,
		&createdAt, &updatedAt, &expiresAt)
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	inv.RoleRequested = domain.Role(role)
	inv.CreatedAt = fromMillis(createdAt)
	inv.UpdatedAt = fromMillis(updatedAt)
	inv.ExpiresAt = mapNullTimePtr(expiresAt)
	return inv, nil
}

func (r *invitesRepo) UpsertInvite(ctx context.Context, inv domain.Invite) (domain.Invite, error) {
	out, err := scanInvite(r.q.QueryRowContext(ctx, `
		INSERT INTO invites (`+inviteColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (deck_id, email_lower) DO UPDATE SET
			role_requested = excluded.role_requested,
			updated_at     = excluded.updated_at,
			expires_at     = excluded.expires_at
		RETURNING `+inviteColumns,
		inv.ID, inv.DeckID, inv.InvitedByUserID, inv.EmailLower, string(inv.RoleRequested),
		toMillis(inv.CreatedAt), toMillis(inv.UpdatedAt), mapOptionalTime(inv.ExpiresAt),
	))
	if err != nil {
		return domain.Invite{}, mapWriteErr(err)
	}
	return out, nil
}

func (r *invitesRepo) GetInvite(ctx context.Context, id string) (domain.Invite, error) {
	return scanInvite(r.q.QueryRowContext(ctx,
		`SELECT `+inviteColumns+` FROM invites WHERE id = ?`, id))
}

func (r *invitesRepo) ListPendingInvites(ctx context.Context, deckID string, now time.Time) ([]domain.Invite, error) {
	return r.list(ctx, `
		SELECT `+inviteColumns+` FROM invites
		WHERE deck_id = ? AND (expires_at IS NULL OR expires_at > ?)
		ORDER BY created_at ASC, id ASC`, deckID, toMillis(now))
}

func (r *invitesRepo) ListPendingInvitesByEmail(ctx context.Context, emailLower string, now time.Time) ([]domain.Invite, error) {
	return r.list(ctx, `
		SELECT `+inviteColumns+` FROM invites
		WHERE email_lower = ? AND (expires_at IS NULL OR expires_at > ?)
		ORDER BY created_at ASC, id ASC`, emailLower, toMillis(now))
}

func (r *invitesRepo) list(ctx context.Context, query string, args ...any) ([]domain.Invite, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invites := []domain.Invite{}
	for rows.Next() {
		inv, err := scanInvite(rows)
		if err != nil {
			return nil, err
		}
		invites = append(invites, inv)
	}
	return invites, rows.Err()
}

func (r *invitesRepo) DeleteInvite(ctx context.Context, id string) error {
	return requireAffected(r.q.ExecContext(ctx, `DELETE FROM invites WHERE id = ?`, id))
}

func (r *invitesRepo) DeleteInviteForEmail(ctx context.Context, deckID, emailLower string) (bool, error) {
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM invites WHERE deck_id = ? AND email_lower = ?`, deckID, emailLower)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *invitesRepo) DeleteExpiredInvites(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM invites WHERE expires_at IS NOT NULL AND expires_at <= ?`, toMillis(now))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
