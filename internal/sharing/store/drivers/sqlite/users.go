package sqlite

import (
	"context"

	"github.com/aussiebroadwan/notecards/internal/sharing/domain"
)

type usersRepo struct {
	q querier
}

const userColumns = `id, email_lower, display_name, created_at, updated_at`

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u                    domain.User
		createdAt, updatedAt int64
	)
	if err := row.Scan(&u.ID, &u.EmailLower, &u.DisplayName, &createdAt, &updatedAt); err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.CreatedAt = fromMillis(createdAt)
	u.UpdatedAt = fromMillis(updatedAt)
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return scanUser(r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, emailLower string) (domain.User, error) {
	return scanUser(r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email_lower = ?`, emailLower))
}

func (r *usersRepo) UpsertUser(ctx context.Context, u domain.User) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO users (id, email_lower, display_name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			email_lower  = excluded.email_lower,
			display_name = excluded.display_name,
			updated_at   = excluded.updated_at`,
		u.ID, u.EmailLower, u.DisplayName, toMillis(u.CreatedAt), toMillis(u.UpdatedAt),
	)
	return mapWriteErr(err)
}
