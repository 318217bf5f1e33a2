// Package store provides the interfaces for product, store and association storage operations.
package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/maramosh/parcial-practico-miguel/internal/store/db"
)

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
type ProductStore interface {
	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*db.Product, error)

	// FindAll returns all products in creation order.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]db.Product, error)

	// Create adds a new product and returns it with its generated ID.
	Create(ctx context.Context, params db.CreateProductParams) (*db.Product, error)

	// Update overwrites the name, price and type of an existing product.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, params db.UpdateProductParams) (*db.Product, error)

	// DeleteByID removes a product and all of its store associations.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// FindStores returns the stores associated to the product, in association order.
	FindStores(ctx context.Context, productID uuid.UUID) ([]db.Store, error)

	// FindStoresByProductIDs returns the associated stores of several products keyed by product ID.
	FindStoresByProductIDs(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID][]db.Store, error)
}

// StoreStore is an interface for retail store storage operations.
type StoreStore interface {
	// FindByID retrieves a single store by its unique identifier.
	// Returns ErrStoreNotFound if no store exists with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*db.Store, error)

	// FindAll returns all stores in creation order.
	FindAll(ctx context.Context) ([]db.Store, error)

	// Create adds a new store and returns it with its generated ID.
	Create(ctx context.Context, params db.CreateStoreParams) (*db.Store, error)

	// Update overwrites the name, city and address of an existing store.
	// Returns ErrStoreNotFound if no store exists with the given ID.
	Update(ctx context.Context, params db.UpdateStoreParams) (*db.Store, error)

	// DeleteByID removes a store and detaches it from every product.
	// Returns ErrStoreNotFound if no store exists with the given ID.
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// FindProducts returns the products associated to the store.
	FindProducts(ctx context.Context, storeID uuid.UUID) ([]db.Product, error)

	// FindProductsByStoreIDs returns the associated products of several stores keyed by store ID.
	FindProductsByStoreIDs(ctx context.Context, storeIDs []uuid.UUID) (map[uuid.UUID][]db.Product, error)
}

// LinkStore persists the product-store association. Every method is atomic on its own.
type LinkStore interface {
	// Add links the store to the product. Linking an already linked store is a no-op.
	// Returns ErrProductNotFound or ErrStoreNotFound if either side vanished.
	Add(ctx context.Context, productID, storeID uuid.UUID) error

	// Remove unlinks the store from the product.
	// Returns ErrStoreNotAssociated if the pair was not linked.
	Remove(ctx context.Context, productID, storeID uuid.UUID) error

	// Replace sets the product's store links to exactly storeIDs in one transaction.
	Replace(ctx context.Context, productID uuid.UUID, storeIDs []uuid.UUID) error
}
