package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/notecards/internal/sharing/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

// Close is a no-op; the outer DB stays open after commit/rollback.
func (t *txStore) Close() error { return nil }

func (t *txStore) Ping(ctx context.Context) error { return nil }

// Nested transactions are not supported.
func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users                   { return &usersRepo{q: t.tx} }
func (t *txStore) Decks() store.Decks                   { return &decksRepo{q: t.tx} }
func (t *txStore) Members() store.Members               { return &membersRepo{q: t.tx} }
func (t *txStore) Invites() store.Invites               { return &invitesRepo{q: t.tx} }
func (t *txStore) Cards() store.Cards                   { return &cardsRepo{q: t.tx} }
func (t *txStore) OrderSnapshots() store.OrderSnapshots { return &orderSnapshotsRepo{q: t.tx} }

// ApplyMigrations is a no-op; migrations run before any transaction.
func (t *txStore) ApplyMigrations() error { return nil }
