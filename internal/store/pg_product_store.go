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

// PgProductStore implements ProductStore using PostgreSQL as the data store.
type PgProductStore struct {
	pgBase
}

// NewPgProductStore creates a new instance of ProductStore using a PostgreSQL connection pool.
func NewPgProductStore(dbp *pgxpool.Pool) *PgProductStore {
	return &PgProductStore{pgBase: newPgBase(dbp)}
}

// FindByID retrieves a product by its unique identifier.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgProductStore) FindByID(ctx context.Context, id uuid.UUID) (*db.Product, error) {
	product, err := p.q.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	return &product, nil
}

// FindAll retrieves all products.
// It returns a slice of products, which may be empty if no products exist.
func (p *PgProductStore) FindAll(ctx context.Context) ([]db.Product, error) {
	products, err := p.q.FindAllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find all products: %w", err)
	}
	if products == nil {
		products = []db.Product{}
	}
	return products, nil
}

// Create adds a new product to the system.
func (p *PgProductStore) Create(ctx context.Context, params db.CreateProductParams) (*db.Product, error) {
	product, err := p.q.CreateProduct(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

// Update modifies an existing product's details.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgProductStore) Update(ctx context.Context, params db.UpdateProductParams) (*db.Product, error) {
	product, err := p.q.UpdateProduct(ctx, params)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return &product, nil
}

// DeleteByID removes a product by its unique identifier.
// Returns ErrProductNotFound if no product exists with the given ID.
func (p *PgProductStore) DeleteByID(ctx context.Context, id uuid.UUID) error {
	count, err := p.q.DeleteProduct(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete product by ID: %w", err)
	}
	if count == 0 {
		return perrors.ErrProductNotFound
	}
	return nil
}

// FindStores retrieves the stores linked to a product.
func (p *PgProductStore) FindStores(ctx context.Context, productID uuid.UUID) ([]db.Store, error) {
	stores, err := p.q.FindStoresByProductID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to find stores of product: %w", err)
	}
	if stores == nil {
		stores = []db.Store{}
	}
	return stores, nil
}

// FindStoresByProductIDs retrieves the linked stores of many products with a single query.
func (p *PgProductStore) FindStoresByProductIDs(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID][]db.Store, error) {
	rows, err := p.q.FindStoresByProductIDs(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to find stores of products: %w", err)
	}
	byProduct := make(map[uuid.UUID][]db.Store, len(productIDs))
	for _, row := range rows {
		byProduct[row.ProductID] = append(byProduct[row.ProductID], db.Store{
			ID:        row.ID,
			Name:      row.Name,
			City:      row.City,
			Address:   row.Address,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}
	return byProduct, nil
}
