package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	perrors "github.com/maramosh/parcial-practico-miguel/internal/errors"
	"github.com/maramosh/parcial-practico-miguel/internal/store/db"
)

// PgLinkStore implements LinkStore on the product_stores join table.
type PgLinkStore struct {
	pgBase
}

// NewPgLinkStore creates a new instance of LinkStore using a PostgreSQL connection pool.
func NewPgLinkStore(dbp *pgxpool.Pool) *PgLinkStore {
	return &PgLinkStore{pgBase: newPgBase(dbp)}
}

// Add inserts the (product, store) pair. An existing pair is left untouched.
func (p *PgLinkStore) Add(ctx context.Context, productID, storeID uuid.UUID) error {
	_, err := p.q.AddProductStore(ctx, db.AddProductStoreParams{ProductID: productID, StoreID: storeID})
	if err != nil {
		if mapped := mapLinkViolation(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("failed to link store to product: %w", err)
	}
	return nil
}

// Remove deletes the (product, store) pair.
// Returns ErrStoreNotAssociated if the pair does not exist.
func (p *PgLinkStore) Remove(ctx context.Context, productID, storeID uuid.UUID) error {
	count, err := p.q.DeleteProductStore(ctx, db.DeleteProductStoreParams{ProductID: productID, StoreID: storeID})
	if err != nil {
		return fmt.Errorf("failed to unlink store from product: %w", err)
	}
	if count == 0 {
		return perrors.ErrStoreNotAssociated
	}
	return nil
}

// Replace locks the product row, drops all of its links and inserts storeIDs in order.
// Concurrent replaces of the same product are serialized by the row lock.
func (p *PgLinkStore) Replace(ctx context.Context, productID uuid.UUID, storeIDs []uuid.UUID) error {
	return p.withTransaction(ctx, func(qtx *db.Queries) error {
		if _, err := qtx.LockProduct(ctx, productID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return perrors.ErrProductNotFound
			}
			return fmt.Errorf("failed to lock product: %w", err)
		}
		if err := qtx.DeleteProductStores(ctx, productID); err != nil {
			return fmt.Errorf("failed to clear stores of product: %w", err)
		}
		for _, storeID := range storeIDs {
			_, err := qtx.AddProductStore(ctx, db.AddProductStoreParams{ProductID: productID, StoreID: storeID})
			if err != nil {
				if mapped := mapLinkViolation(err); mapped != nil {
					return mapped
				}
				return fmt.Errorf("failed to link store to product: %w", err)
			}
		}
		return nil
	})
}
