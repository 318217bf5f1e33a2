// Package service implements the catalog business rules on top of the stores.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	catalogerrors "github.com/maramosh/parcial-practico-miguel/internal/errors"
	"github.com/maramosh/parcial-practico-miguel/internal/store"
	"github.com/maramosh/parcial-practico-miguel/internal/store/db"
)

// ProductService defines the methods for managing products.
type ProductService interface {
	// FindAll returns all products with their stores.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]ProductDto, error)

	// FindByID returns a product with its stores.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*ProductDto, error)

	// Create validates the product type and persists a new product.
	// Returns ErrInvalidProductType if the type is not one of the known types.
	Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error)

	// Update overwrites name, price and type of an existing product.
	// Returns ErrProductNotFound or ErrInvalidProductType, in that order of precedence.
	Update(ctx context.Context, id uuid.UUID, product ProductCreateDto) (*ProductDto, error)

	// DeleteByID removes a product and its store associations.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// Products implements ProductService.
type Products struct {
	products store.ProductStore
}

func NewProducts(products store.ProductStore) *Products {
	return &Products{products: products}
}

func (s *Products) FindAll(ctx context.Context) ([]ProductDto, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	ids := make([]uuid.UUID, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	storesByProduct, err := s.products.FindStoresByProductIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stores of products: %w", err)
	}

	productDTOs := make([]ProductDto, len(products))
	for i := range products {
		productDTOs[i] = *toProductDto(&products[i], storesByProduct[products[i].ID])
	}
	return productDTOs, nil
}

func (s *Products) FindByID(ctx context.Context, id uuid.UUID) (*ProductDto, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %s: %w", id, err)
	}
	stores, err := s.products.FindStores(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stores of product %s: %w", id, err)
	}
	return toProductDto(product, stores), nil
}

func (s *Products) Create(ctx context.Context, product ProductCreateDto) (*ProductDto, error) {
	if err := validateProductType(product.Type); err != nil {
		return nil, err
	}
	created, err := s.products.Create(ctx, db.CreateProductParams{
		Name:  product.Name,
		Price: *product.Price,
		Type:  product.Type,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return toProductDto(created, nil), nil
}

func (s *Products) Update(ctx context.Context, id uuid.UUID, product ProductCreateDto) (*ProductDto, error) {
	if _, err := s.products.FindByID(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %s: %w", id, err)
	}
	if err := validateProductType(product.Type); err != nil {
		return nil, err
	}
	updated, err := s.products.Update(ctx, db.UpdateProductParams{
		ID:    id,
		Name:  product.Name,
		Price: *product.Price,
		Type:  product.Type,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update product with ID %s: %w", id, err)
	}
	stores, err := s.products.FindStores(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stores of product %s: %w", id, err)
	}
	return toProductDto(updated, stores), nil
}

func (s *Products) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if err := s.products.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product with ID %s: %w", id, err)
	}
	return nil
}

func validateProductType(productType string) error {
	switch productType {
	case ProductTypePerishable, ProductTypeNonPerishable:
		return nil
	default:
		return fmt.Errorf("%w: got %q", catalogerrors.ErrInvalidProductType, productType)
	}
}
