package rest

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/maramosh/parcial-practico-miguel/internal/service"
	"github.com/maramosh/parcial-practico-miguel/pkg/web"
)

// AddStoreToProduct links a store to a product and returns the updated product.
func (h *Handler) AddStoreToProduct(w http.ResponseWriter, r *http.Request) {
	mLogger := h.requestLogger(r)
	productID, storeID, ok := h.parseLinkIDs(w, r)
	if !ok {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to add store to product", "productID", productID, "storeID", storeID)
	product, err := h.productStores.AddStoreToProduct(r.Context(), productID, storeID)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err, fmt.Sprintf("Failed to add store %s to product %s", storeID, productID))
		return
	}
	mLogger.InfoContext(r.Context(), "Store added to product", "productID", productID, "storeID", storeID)
	web.RespondJSON(w, mLogger, http.StatusOK, product)
}

// FindStoreByProductIDStoreID returns one store associated to the product.
func (h *Handler) FindStoreByProductIDStoreID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.requestLogger(r)
	productID, storeID, ok := h.parseLinkIDs(w, r)
	if !ok {
		return
	}
	found, err := h.productStores.FindStoreByProductIDStoreID(r.Context(), productID, storeID)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err, fmt.Sprintf("Failed to retrieve store %s of product %s", storeID, productID))
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

// FindStoresByProductID lists the stores associated to the product.
func (h *Handler) FindStoresByProductID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.requestLogger(r)
	productID, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	stores, err := h.productStores.FindStoresByProductID(r.Context(), productID)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err, fmt.Sprintf("Failed to retrieve stores of product %s", productID))
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved stores of product", "productID", productID, "count", len(stores))
	web.RespondJSON(w, mLogger, http.StatusOK, stores)
}

// UpdateStoresProduct replaces the stores of a product with the ones in the body.
func (h *Handler) UpdateStoresProduct(w http.ResponseWriter, r *http.Request) {
	mLogger := h.requestLogger(r)
	productID, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	var refs []service.StoreRefDto
	if !web.DecodeJSON(w, r, mLogger, &refs) {
		return
	}
	if refs == nil {
		mLogger.WarnContext(r.Context(), "Missing store list in request body")
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	for i, ref := range refs {
		if !web.ValidateStruct(w, r, mLogger, h.validate, ref, fmt.Sprintf("[%d].", i)) {
			return
		}
	}
	mLogger.DebugContext(r.Context(), "Received request to replace stores of product", "productID", productID, "count", len(refs))

	product, err := h.productStores.UpdateStoresProduct(r.Context(), productID, refs)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err, fmt.Sprintf("Failed to replace stores of product %s", productID))
		return
	}
	mLogger.InfoContext(r.Context(), "Stores of product replaced", "productID", productID, "count", len(product.Stores))
	web.RespondJSON(w, mLogger, http.StatusOK, product)
}

// DeleteStoreFromProduct unlinks a store from a product.
func (h *Handler) DeleteStoreFromProduct(w http.ResponseWriter, r *http.Request) {
	mLogger := h.requestLogger(r)
	productID, storeID, ok := h.parseLinkIDs(w, r)
	if !ok {
		return
	}
	if err := h.productStores.DeleteStoreFromProduct(r.Context(), productID, storeID); err != nil {
		h.respondServiceError(w, r, mLogger, err, fmt.Sprintf("Failed to remove store %s from product %s", storeID, productID))
		return
	}
	mLogger.InfoContext(r.Context(), "Store removed from product", "productID", productID, "storeID", storeID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) parseLinkIDs(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	mLogger := h.requestLogger(r)
	productID, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	storeID, ok := web.ParsePathID(w, r, mLogger, "storeId")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return productID, storeID, true
}
