package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
	catalogerrors "github.com/maramosh/parcial-practico-miguel/internal/errors"
	"github.com/maramosh/parcial-practico-miguel/internal/store"
	"github.com/maramosh/parcial-practico-miguel/internal/store/db"
)

// StoreService defines the methods for managing retail stores.
type StoreService interface {
	// FindAll returns all stores with their products.
	FindAll(ctx context.Context) ([]StoreDto, error)

	// FindByID returns a store with its products.
	// Returns ErrStoreNotFound if no store exists with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*StoreDto, error)

	// Create validates the city code and persists a new store.
	// Returns ErrInvalidCityCode unless the city has exactly three characters.
	Create(ctx context.Context, s StoreCreateDto) (*StoreDto, error)

	// Update overwrites name, city and address of an existing store.
	// Returns ErrStoreNotFound or ErrInvalidCityCode, in that order of precedence.
	Update(ctx context.Context, id uuid.UUID, s StoreCreateDto) (*StoreDto, error)

	// DeleteByID removes a store and detaches it from every product.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// Stores implements StoreService.
type Stores struct {
	stores store.StoreStore
}

func NewStores(stores store.StoreStore) *Stores {
	return &Stores{stores: stores}
}

func (s *Stores) FindAll(ctx context.Context) ([]StoreDto, error) {
	stores, err := s.stores.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stores: %w", err)
	}
	ids := make([]uuid.UUID, len(stores))
	for i, st := range stores {
		ids[i] = st.ID
	}
	productsByStore, err := s.stores.FindProductsByStoreIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products of stores: %w", err)
	}

	storeDTOs := make([]StoreDto, len(stores))
	for i := range stores {
		storeDTOs[i] = *toStoreDto(&stores[i], productsByStore[stores[i].ID])
	}
	return storeDTOs, nil
}

func (s *Stores) FindByID(ctx context.Context, id uuid.UUID) (*StoreDto, error) {
	found, err := s.stores.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch store by ID %s: %w", id, err)
	}
	products, err := s.stores.FindProducts(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products of store %s: %w", id, err)
	}
	return toStoreDto(found, products), nil
}

func (s *Stores) Create(ctx context.Context, st StoreCreateDto) (*StoreDto, error) {
	if err := validateCityCode(st.City); err != nil {
		return nil, err
	}
	created, err := s.stores.Create(ctx, db.CreateStoreParams{
		Name:    st.Name,
		City:    st.City,
		Address: st.Address,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}
	return toStoreDto(created, nil), nil
}

func (s *Stores) Update(ctx context.Context, id uuid.UUID, st StoreCreateDto) (*StoreDto, error) {
	if _, err := s.stores.FindByID(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to fetch store by ID %s: %w", id, err)
	}
	if err := validateCityCode(st.City); err != nil {
		return nil, err
	}
	updated, err := s.stores.Update(ctx, db.UpdateStoreParams{
		ID:      id,
		Name:    st.Name,
		City:    st.City,
		Address: st.Address,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update store with ID %s: %w", id, err)
	}
	products, err := s.stores.FindProducts(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products of store %s: %w", id, err)
	}
	return toStoreDto(updated, products), nil
}

func (s *Stores) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if err := s.stores.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete store with ID %s: %w", id, err)
	}
	return nil
}

// validateCityCode counts runes, so "BOG" and "ÑUÑ" are both valid.
func validateCityCode(city string) error {
	if utf8.RuneCountInString(city) != CityCodeLength {
		return fmt.Errorf("%w: got %q", catalogerrors.ErrInvalidCityCode, city)
	}
	return nil
}
