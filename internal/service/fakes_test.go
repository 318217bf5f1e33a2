package service

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	catalogerrors "github.com/maramosh/parcial-practico-miguel/internal/errors"
	"github.com/maramosh/parcial-practico-miguel/internal/store/db"
	"github.com/maramosh/parcial-practico-miguel/pkg/messaging"
)

// memCatalog is an in-memory stand-in for the Postgres stores.
// fakeProducts, fakeStores and fakeLinks expose its three store interfaces.
type memCatalog struct {
	products     map[uuid.UUID]db.Product
	productOrder []uuid.UUID
	stores       map[uuid.UUID]db.Store
	storeOrder   []uuid.UUID
	links        map[uuid.UUID][]uuid.UUID
	writes       int
	err          error
}

func newMemCatalog() *memCatalog {
	return &memCatalog{
		products: make(map[uuid.UUID]db.Product),
		stores:   make(map[uuid.UUID]db.Store),
		links:    make(map[uuid.UUID][]uuid.UUID),
	}
}

func (m *memCatalog) addProduct(name, productType string) db.Product {
	p := db.Product{ID: uuid.New(), Name: name, Price: 100, Type: productType, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	m.products[p.ID] = p
	m.productOrder = append(m.productOrder, p.ID)
	return p
}

func (m *memCatalog) addStore(name, city string) db.Store {
	s := db.Store{ID: uuid.New(), Name: name, City: city, Address: name + " street", CreatedAt: time.Now(), UpdatedAt: time.Now()}
	m.stores[s.ID] = s
	m.storeOrder = append(m.storeOrder, s.ID)
	return s
}

func (m *memCatalog) link(productID uuid.UUID, storeIDs ...uuid.UUID) {
	m.links[productID] = append(m.links[productID], storeIDs...)
}

func (m *memCatalog) storesOf(productID uuid.UUID) []db.Store {
	var stores []db.Store
	for _, id := range m.links[productID] {
		stores = append(stores, m.stores[id])
	}
	return stores
}

func (m *memCatalog) productsOf(storeID uuid.UUID) []db.Product {
	var products []db.Product
	for _, pid := range m.productOrder {
		if slices.Contains(m.links[pid], storeID) {
			products = append(products, m.products[pid])
		}
	}
	return products
}

type fakeProducts struct{ *memCatalog }

func (f fakeProducts) FindByID(_ context.Context, id uuid.UUID) (*db.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.products[id]
	if !ok {
		return nil, catalogerrors.ErrProductNotFound
	}
	return &p, nil
}

func (f fakeProducts) FindAll(_ context.Context) ([]db.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	products := make([]db.Product, 0, len(f.productOrder))
	for _, id := range f.productOrder {
		products = append(products, f.products[id])
	}
	return products, nil
}

func (f fakeProducts) Create(_ context.Context, params db.CreateProductParams) (*db.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.writes++
	p := db.Product{ID: uuid.New(), Name: params.Name, Price: params.Price, Type: params.Type}
	f.products[p.ID] = p
	f.productOrder = append(f.productOrder, p.ID)
	return &p, nil
}

func (f fakeProducts) Update(_ context.Context, params db.UpdateProductParams) (*db.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.products[params.ID]
	if !ok {
		return nil, catalogerrors.ErrProductNotFound
	}
	f.writes++
	p.Name, p.Price, p.Type = params.Name, params.Price, params.Type
	f.products[p.ID] = p
	return &p, nil
}

func (f fakeProducts) DeleteByID(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.products[id]; !ok {
		return catalogerrors.ErrProductNotFound
	}
	f.writes++
	delete(f.products, id)
	delete(f.links, id)
	f.productOrder = slices.DeleteFunc(f.productOrder, func(pid uuid.UUID) bool { return pid == id })
	return nil
}

func (f fakeProducts) FindStores(_ context.Context, productID uuid.UUID) ([]db.Store, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.storesOf(productID), nil
}

func (f fakeProducts) FindStoresByProductIDs(_ context.Context, productIDs []uuid.UUID) (map[uuid.UUID][]db.Store, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := make(map[uuid.UUID][]db.Store, len(productIDs))
	for _, id := range productIDs {
		if stores := f.storesOf(id); len(stores) > 0 {
			result[id] = stores
		}
	}
	return result, nil
}

type fakeStores struct{ *memCatalog }

func (f fakeStores) FindByID(_ context.Context, id uuid.UUID) (*db.Store, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.stores[id]
	if !ok {
		return nil, catalogerrors.ErrStoreNotFound
	}
	return &s, nil
}

func (f fakeStores) FindAll(_ context.Context) ([]db.Store, error) {
	if f.err != nil {
		return nil, f.err
	}
	stores := make([]db.Store, 0, len(f.storeOrder))
	for _, id := range f.storeOrder {
		stores = append(stores, f.stores[id])
	}
	return stores, nil
}

func (f fakeStores) Create(_ context.Context, params db.CreateStoreParams) (*db.Store, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.writes++
	s := db.Store{ID: uuid.New(), Name: params.Name, City: params.City, Address: params.Address}
	f.stores[s.ID] = s
	f.storeOrder = append(f.storeOrder, s.ID)
	return &s, nil
}

func (f fakeStores) Update(_ context.Context, params db.UpdateStoreParams) (*db.Store, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.stores[params.ID]
	if !ok {
		return nil, catalogerrors.ErrStoreNotFound
	}
	f.writes++
	s.Name, s.City, s.Address = params.Name, params.City, params.Address
	f.stores[s.ID] = s
	return &s, nil
}

func (f fakeStores) DeleteByID(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.stores[id]; !ok {
		return catalogerrors.ErrStoreNotFound
	}
	f.writes++
	delete(f.stores, id)
	for pid, ids := range f.links {
		f.links[pid] = slices.DeleteFunc(ids, func(sid uuid.UUID) bool { return sid == id })
	}
	f.storeOrder = slices.DeleteFunc(f.storeOrder, func(sid uuid.UUID) bool { return sid == id })
	return nil
}

func (f fakeStores) FindProducts(_ context.Context, storeID uuid.UUID) ([]db.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.productsOf(storeID), nil
}

func (f fakeStores) FindProductsByStoreIDs(_ context.Context, storeIDs []uuid.UUID) (map[uuid.UUID][]db.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := make(map[uuid.UUID][]db.Product, len(storeIDs))
	for _, id := range storeIDs {
		if products := f.productsOf(id); len(products) > 0 {
			result[id] = products
		}
	}
	return result, nil
}

type fakeLinks struct{ *memCatalog }

func (f fakeLinks) Add(_ context.Context, productID, storeID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.writes++
	if !slices.Contains(f.links[productID], storeID) {
		f.links[productID] = append(f.links[productID], storeID)
	}
	return nil
}

func (f fakeLinks) Remove(_ context.Context, productID, storeID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	if !slices.Contains(f.links[productID], storeID) {
		return catalogerrors.ErrStoreNotAssociated
	}
	f.writes++
	f.links[productID] = slices.DeleteFunc(f.links[productID], func(id uuid.UUID) bool { return id == storeID })
	return nil
}

func (f fakeLinks) Replace(_ context.Context, productID uuid.UUID, storeIDs []uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.writes++
	f.links[productID] = slices.Clone(storeIDs)
	return nil
}

// recordingPublisher keeps every published event and optionally fails.
type recordingPublisher struct {
	events []messaging.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event messaging.Event) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func price(v int64) *int64 {
	return &v
}
