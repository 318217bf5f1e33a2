// Package events contains the catalog domain events published on the message broker.
package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/maramosh/parcial-practico-miguel/pkg/messaging"
)

// ProductStoresChangedEvent describes a change of a product's store associations.
// StoreIDs holds the linked or unlinked store, or the full new set on replace.
type ProductStoresChangedEvent struct {
	subject    string
	ProductID  uuid.UUID   `json:"product_id"`
	StoreIDs   []uuid.UUID `json:"store_ids"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// NewStoreLinkedEvent is published after a store is added to a product.
func NewStoreLinkedEvent(productID, storeID uuid.UUID, at time.Time) ProductStoresChangedEvent {
	return ProductStoresChangedEvent{
		subject:    messaging.ProductStoreLinkedSubject,
		ProductID:  productID,
		StoreIDs:   []uuid.UUID{storeID},
		OccurredAt: at,
	}
}

// NewStoreUnlinkedEvent is published after a store is removed from a product.
func NewStoreUnlinkedEvent(productID, storeID uuid.UUID, at time.Time) ProductStoresChangedEvent {
	return ProductStoresChangedEvent{
		subject:    messaging.ProductStoreUnlinkedSubject,
		ProductID:  productID,
		StoreIDs:   []uuid.UUID{storeID},
		OccurredAt: at,
	}
}

// NewStoresReplacedEvent is published after the whole store set of a product is replaced.
func NewStoresReplacedEvent(productID uuid.UUID, storeIDs []uuid.UUID, at time.Time) ProductStoresChangedEvent {
	ids := make([]uuid.UUID, len(storeIDs))
	copy(ids, storeIDs)
	return ProductStoresChangedEvent{
		subject:    messaging.ProductStoresReplacedSubject,
		ProductID:  productID,
		StoreIDs:   ids,
		OccurredAt: at,
	}
}

func (e ProductStoresChangedEvent) Subject() string {
	return e.subject
}

func (e ProductStoresChangedEvent) Payload() ([]byte, error) {
	return json.Marshal(e)
}
