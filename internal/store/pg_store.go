package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	perrors "github.com/maramosh/parcial-practico-miguel/internal/errors"
	"github.com/maramosh/parcial-practico-miguel/internal/store/db"
)

const (
	foreignKeyViolation = "23503"

	productFKConstraint = "product_stores_product_id_fkey"
	storeFKConstraint   = "product_stores_store_id_fkey"
)

// pgBase holds the pool and query set shared by the Postgres stores.
type pgBase struct {
	db *pgxpool.Pool
	q  *db.Queries
}

func newPgBase(dbp *pgxpool.Pool) pgBase {
	return pgBase{
		db: dbp,
		q:  db.New(dbp),
	}
}

// withTransaction runs fn inside a transaction, rolling back if fn fails.
func (p *pgBase) withTransaction(ctx context.Context, fn func(qtx *db.Queries) error) error {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", perrors.ErrTransactionBegin, err)
	}
	qtx := p.q.WithTx(tx)

	err = fn(qtx)
	if err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return fmt.Errorf("%w: %w (after: %w)", perrors.ErrTransactionRollback, rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: %w", perrors.ErrTransactionCommit, err)
	}

	return nil
}

// mapLinkViolation translates a join table foreign key violation into the missing side's error.
// It returns nil when err is not a foreign key violation.
func mapLinkViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != foreignKeyViolation {
		return nil
	}
	switch pgErr.ConstraintName {
	case storeFKConstraint:
		return perrors.ErrStoreNotFound
	case productFKConstraint:
		return perrors.ErrProductNotFound
	default:
		return nil
	}
}
