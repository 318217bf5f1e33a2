package service

import (
	"github.com/google/uuid"
	"github.com/maramosh/parcial-practico-miguel/internal/store/db"
)

// Product types accepted by the catalog.
const (
	ProductTypePerishable    = "Perishable"
	ProductTypeNonPerishable = "Non-perishable"
)

// CityCodeLength is the exact number of characters of a store city code.
const CityCodeLength = 3

// ProductCreateDto is the request body used to create or overwrite a product.
type ProductCreateDto struct {
	Name string `json:"name"  validate:"required,max=100"`
	// Price is a pointer so that a missing price fails validation while 0 is accepted.
	Price *int64 `json:"price" validate:"required,min=0"`
	Type  string `json:"type"  validate:"required"`
}

// ProductDto is a product together with its associated stores.
type ProductDto struct {
	ID     uuid.UUID         `json:"id"`
	Name   string            `json:"name"`
	Price  int64             `json:"price"`
	Type   string            `json:"type"`
	Stores []StoreSummaryDto `json:"stores"`
}

// ProductSummaryDto is a product without its associations.
type ProductSummaryDto struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price int64     `json:"price"`
	Type  string    `json:"type"`
}

// StoreCreateDto is the request body used to create or overwrite a store.
type StoreCreateDto struct {
	Name    string `json:"name"    validate:"required,max=100"`
	City    string `json:"city"    validate:"required"`
	Address string `json:"address" validate:"required,max=200"`
}

// StoreDto is a store together with the products it is associated to.
type StoreDto struct {
	ID       uuid.UUID           `json:"id"`
	Name     string              `json:"name"`
	City     string              `json:"city"`
	Address  string              `json:"address"`
	Products []ProductSummaryDto `json:"products"`
}

// StoreSummaryDto is a store without its associations.
type StoreSummaryDto struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	City    string    `json:"city"`
	Address string    `json:"address"`
}

// StoreRefDto references an existing store in a replace request.
type StoreRefDto struct {
	ID uuid.UUID `json:"id" validate:"required"`
}

func toProductDto(product *db.Product, stores []db.Store) *ProductDto {
	return &ProductDto{
		ID:     product.ID,
		Name:   product.Name,
		Price:  product.Price,
		Type:   product.Type,
		Stores: toStoreSummaries(stores),
	}
}

func toProductSummary(product *db.Product) ProductSummaryDto {
	return ProductSummaryDto{
		ID:    product.ID,
		Name:  product.Name,
		Price: product.Price,
		Type:  product.Type,
	}
}

func toProductSummaries(products []db.Product) []ProductSummaryDto {
	summaries := make([]ProductSummaryDto, len(products))
	for i := range products {
		summaries[i] = toProductSummary(&products[i])
	}
	return summaries
}

func toStoreDto(s *db.Store, products []db.Product) *StoreDto {
	return &StoreDto{
		ID:       s.ID,
		Name:     s.Name,
		City:     s.City,
		Address:  s.Address,
		Products: toProductSummaries(products),
	}
}

func toStoreSummary(s *db.Store) StoreSummaryDto {
	return StoreSummaryDto{
		ID:      s.ID,
		Name:    s.Name,
		City:    s.City,
		Address: s.Address,
	}
}

// toStoreSummaries never returns nil so that an empty association encodes as [].
func toStoreSummaries(stores []db.Store) []StoreSummaryDto {
	summaries := make([]StoreSummaryDto, len(stores))
	for i := range stores {
		summaries[i] = toStoreSummary(&stores[i])
	}
	return summaries
}
