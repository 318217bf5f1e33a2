package rest

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/maramosh/parcial-practico-miguel/internal/service"
)

// mockProductService is a mock implementation of the ProductService interface
type mockProductService struct {
	product  *service.ProductDto
	products []service.ProductDto
	error    error
	gotDto   service.ProductCreateDto
}

func (m *mockProductService) FindAll(_ context.Context) ([]service.ProductDto, error) {
	return m.products, m.error
}

func (m *mockProductService) FindByID(_ context.Context, _ uuid.UUID) (*service.ProductDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockProductService) Create(_ context.Context, dto service.ProductCreateDto) (*service.ProductDto, error) {
	m.gotDto = dto
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockProductService) Update(_ context.Context, _ uuid.UUID, dto service.ProductCreateDto) (*service.ProductDto, error) {
	m.gotDto = dto
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockProductService) DeleteByID(_ context.Context, _ uuid.UUID) error {
	return m.error
}

// mockStoreService is a mock implementation of the StoreService interface
type mockStoreService struct {
	store  *service.StoreDto
	stores []service.StoreDto
	error  error
}

func (m *mockStoreService) FindAll(_ context.Context) ([]service.StoreDto, error) {
	return m.stores, m.error
}

func (m *mockStoreService) FindByID(_ context.Context, _ uuid.UUID) (*service.StoreDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.store, nil
}

func (m *mockStoreService) Create(_ context.Context, _ service.StoreCreateDto) (*service.StoreDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.store, nil
}

func (m *mockStoreService) Update(_ context.Context, _ uuid.UUID, _ service.StoreCreateDto) (*service.StoreDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.store, nil
}

func (m *mockStoreService) DeleteByID(_ context.Context, _ uuid.UUID) error {
	return m.error
}

// mockProductStoreService is a mock implementation of the ProductStoreService interface
type mockProductStoreService struct {
	product      *service.ProductDto
	store        *service.StoreSummaryDto
	stores       []service.StoreSummaryDto
	error        error
	gotProductID uuid.UUID
	gotStoreID   uuid.UUID
	gotRefs      []service.StoreRefDto
}

func (m *mockProductStoreService) AddStoreToProduct(_ context.Context, productID, storeID uuid.UUID) (*service.ProductDto, error) {
	m.gotProductID, m.gotStoreID = productID, storeID
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockProductStoreService) FindStoreByProductIDStoreID(_ context.Context, productID, storeID uuid.UUID) (*service.StoreSummaryDto, error) {
	m.gotProductID, m.gotStoreID = productID, storeID
	if m.error != nil {
		return nil, m.error
	}
	return m.store, nil
}

func (m *mockProductStoreService) FindStoresByProductID(_ context.Context, productID uuid.UUID) ([]service.StoreSummaryDto, error) {
	m.gotProductID = productID
	if m.error != nil {
		return nil, m.error
	}
	return m.stores, nil
}

func (m *mockProductStoreService) UpdateStoresProduct(_ context.Context, productID uuid.UUID, refs []service.StoreRefDto) (*service.ProductDto, error) {
	m.gotProductID, m.gotRefs = productID, refs
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockProductStoreService) DeleteStoreFromProduct(_ context.Context, productID, storeID uuid.UUID) error {
	m.gotProductID, m.gotStoreID = productID, storeID
	return m.error
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ValidationErrorResponse struct {
	ValidationErrors map[string]string `json:"validation_errors"`
}

// toJSON is a helper function to convert a struct to JSON string
func toJSON(t *testing.T, v any) string {
	t.Helper()
	bytes, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal to JSON: %v", err)
	}
	return string(bytes)
}
