package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	catalogerrors "github.com/maramosh/parcial-practico-miguel/internal/errors"
	"github.com/maramosh/parcial-practico-miguel/internal/store"
	"github.com/maramosh/parcial-practico-miguel/internal/store/db"
	"github.com/maramosh/parcial-practico-miguel/pkg/messaging"
	"github.com/maramosh/parcial-practico-miguel/pkg/messaging/events"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Values of the "operation" attribute of the product_store_links_changed counter.
const (
	operationAdd     = "add"
	operationReplace = "replace"
	operationRemove  = "remove"
)

// ProductStoreService manages the association between products and stores.
// Every method checks that the referenced records exist before touching the association.
type ProductStoreService interface {
	// AddStoreToProduct links the store to the product and returns the updated product.
	// Returns ErrStoreNotFound or ErrProductNotFound, checked in that order.
	AddStoreToProduct(ctx context.Context, productID, storeID uuid.UUID) (*ProductDto, error)

	// FindStoreByProductIDStoreID returns the store if it is linked to the product.
	// Returns ErrStoreNotAssociated if both exist but are not linked.
	FindStoreByProductIDStoreID(ctx context.Context, productID, storeID uuid.UUID) (*StoreSummaryDto, error)

	// FindStoresByProductID returns the stores linked to the product, never nil.
	FindStoresByProductID(ctx context.Context, productID uuid.UUID) ([]StoreSummaryDto, error)

	// UpdateStoresProduct replaces the product's stores with exactly the given ones.
	// Stops at the first unknown store with ErrStoreNotFound before anything is written.
	UpdateStoresProduct(ctx context.Context, productID uuid.UUID, stores []StoreRefDto) (*ProductDto, error)

	// DeleteStoreFromProduct unlinks the store from the product.
	// Returns ErrStoreNotAssociated if the store is not linked to the product.
	DeleteStoreFromProduct(ctx context.Context, productID, storeID uuid.UUID) error
}

// ProductStores implements ProductStoreService.
type ProductStores struct {
	products     store.ProductStore
	stores       store.StoreStore
	links        store.LinkStore
	publisher    messaging.Publisher
	logger       *slog.Logger
	linksChanged metric.Int64Counter
	now          func() time.Time
}

func NewProductStores(products store.ProductStore, stores store.StoreStore, links store.LinkStore,
	publisher messaging.Publisher, logger *slog.Logger) *ProductStores {
	meter := otel.Meter("catalog-service")
	linksChanged, err := meter.Int64Counter("product_store_links_changed",
		metric.WithDescription("Total number of product-store association changes"))
	if err != nil {
		panic(fmt.Sprintf("failed to create product_store_links_changed counter: %v", err))
	}
	return &ProductStores{
		products:     products,
		stores:       stores,
		links:        links,
		publisher:    publisher,
		logger:       logger.With("component", "product-stores"),
		linksChanged: linksChanged,
		now:          time.Now,
	}
}

func (s *ProductStores) AddStoreToProduct(ctx context.Context, productID, storeID uuid.UUID) (*ProductDto, error) {
	if _, err := s.stores.FindByID(ctx, storeID); err != nil {
		return nil, fmt.Errorf("failed to fetch store by ID %s: %w", storeID, err)
	}
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %s: %w", productID, err)
	}

	if err := s.links.Add(ctx, productID, storeID); err != nil {
		return nil, fmt.Errorf("failed to add store %s to product %s: %w", storeID, productID, err)
	}
	s.changed(ctx, operationAdd, events.NewStoreLinkedEvent(productID, storeID, s.now()))

	return s.productWithStores(ctx, productID)
}

func (s *ProductStores) FindStoreByProductIDStoreID(ctx context.Context, productID, storeID uuid.UUID) (*StoreSummaryDto, error) {
	linked, err := s.findLinkedStore(ctx, productID, storeID)
	if err != nil {
		return nil, err
	}
	summary := toStoreSummary(linked)
	return &summary, nil
}

func (s *ProductStores) FindStoresByProductID(ctx context.Context, productID uuid.UUID) ([]StoreSummaryDto, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %s: %w", productID, err)
	}
	stores, err := s.products.FindStores(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stores of product %s: %w", productID, err)
	}
	return toStoreSummaries(stores), nil
}

func (s *ProductStores) UpdateStoresProduct(ctx context.Context, productID uuid.UUID, refs []StoreRefDto) (*ProductDto, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %s: %w", productID, err)
	}

	storeIDs := make([]uuid.UUID, 0, len(refs))
	seen := make(map[uuid.UUID]struct{}, len(refs))
	for _, ref := range refs {
		if _, err := s.stores.FindByID(ctx, ref.ID); err != nil {
			return nil, fmt.Errorf("failed to fetch store by ID %s: %w", ref.ID, err)
		}
		if _, dup := seen[ref.ID]; dup {
			continue
		}
		seen[ref.ID] = struct{}{}
		storeIDs = append(storeIDs, ref.ID)
	}

	if err := s.links.Replace(ctx, productID, storeIDs); err != nil {
		return nil, fmt.Errorf("failed to replace stores of product %s: %w", productID, err)
	}
	s.changed(ctx, operationReplace, events.NewStoresReplacedEvent(productID, storeIDs, s.now()))

	return s.productWithStores(ctx, productID)
}

func (s *ProductStores) DeleteStoreFromProduct(ctx context.Context, productID, storeID uuid.UUID) error {
	if _, err := s.findLinkedStore(ctx, productID, storeID); err != nil {
		return err
	}
	if err := s.links.Remove(ctx, productID, storeID); err != nil {
		return fmt.Errorf("failed to remove store %s from product %s: %w", storeID, productID, err)
	}
	s.changed(ctx, operationRemove, events.NewStoreUnlinkedEvent(productID, storeID, s.now()))
	return nil
}

// findLinkedStore checks the store, then the product, then searches the product's stores.
func (s *ProductStores) findLinkedStore(ctx context.Context, productID, storeID uuid.UUID) (*db.Store, error) {
	if _, err := s.stores.FindByID(ctx, storeID); err != nil {
		return nil, fmt.Errorf("failed to fetch store by ID %s: %w", storeID, err)
	}
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %s: %w", productID, err)
	}
	stores, err := s.products.FindStores(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stores of product %s: %w", productID, err)
	}
	for i := range stores {
		if stores[i].ID == storeID {
			return &stores[i], nil
		}
	}
	return nil, catalogerrors.ErrStoreNotAssociated
}

func (s *ProductStores) productWithStores(ctx context.Context, productID uuid.UUID) (*ProductDto, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %s: %w", productID, err)
	}
	stores, err := s.products.FindStores(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stores of product %s: %w", productID, err)
	}
	return toProductDto(product, stores), nil
}

// changed records a successful association change. Publishing is best effort.
func (s *ProductStores) changed(ctx context.Context, operation string, event messaging.Event) {
	s.linksChanged.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", operation)))
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish association event",
			"subject", event.Subject(), "operation", operation, "error", err)
	}
}
