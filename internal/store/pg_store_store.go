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

// PgStoreStore implements StoreStore using PostgreSQL as the data store.
type PgStoreStore struct {
	pgBase
}

// NewPgStoreStore creates a new instance of StoreStore using a PostgreSQL connection pool.
func NewPgStoreStore(dbp *pgxpool.Pool) *PgStoreStore {
	return &PgStoreStore{pgBase: newPgBase(dbp)}
}

// FindByID retrieves a store by its unique identifier.
// Returns ErrStoreNotFound if no store exists with the given ID.
func (p *PgStoreStore) FindByID(ctx context.Context, id uuid.UUID) (*db.Store, error) {
	store, err := p.q.FindStoreByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perrors.ErrStoreNotFound
		}
		return nil, fmt.Errorf("failed to find store by ID: %w", err)
	}
	return &store, nil
}

func (p *PgStoreStore) FindAll(ctx context.Context) ([]db.Store, error) {
	stores, err := p.q.FindAllStores(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find all stores: %w", err)
	}
	if stores == nil {
		stores = []db.Store{}
	}
	return stores, nil
}

func (p *PgStoreStore) Create(ctx context.Context, params db.CreateStoreParams) (*db.Store, error) {
	store, err := p.q.CreateStore(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}
	return &store, nil
}

// Update modifies an existing store's details.
// Returns ErrStoreNotFound if no store exists with the given ID.
func (p *PgStoreStore) Update(ctx context.Context, params db.UpdateStoreParams) (*db.Store, error) {
	store, err := p.q.UpdateStore(ctx, params)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perrors.ErrStoreNotFound
		}
		return nil, fmt.Errorf("failed to update store: %w", err)
	}
	return &store, nil
}

// DeleteByID removes a store by its unique identifier. Its product links are dropped by the cascade.
// Returns ErrStoreNotFound if no store exists with the given ID.
func (p *PgStoreStore) DeleteByID(ctx context.Context, id uuid.UUID) error {
	count, err := p.q.DeleteStore(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete store by ID: %w", err)
	}
	if count == 0 {
		return perrors.ErrStoreNotFound
	}
	return nil
}

func (p *PgStoreStore) FindProducts(ctx context.Context, storeID uuid.UUID) ([]db.Product, error) {
	products, err := p.q.FindProductsByStoreID(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find products of store: %w", err)
	}
	if products == nil {
		products = []db.Product{}
	}
	return products, nil
}

func (p *PgStoreStore) FindProductsByStoreIDs(ctx context.Context, storeIDs []uuid.UUID) (map[uuid.UUID][]db.Product, error) {
	rows, err := p.q.FindProductsByStoreIDs(ctx, storeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to find products of stores: %w", err)
	}
	byStore := make(map[uuid.UUID][]db.Product, len(storeIDs))
	for _, row := range rows {
		byStore[row.StoreID] = append(byStore[row.StoreID], db.Product{
			ID:        row.ID,
			Name:      row.Name,
			Price:     row.Price,
			Type:      row.Type,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}
	return byStore, nil
}
