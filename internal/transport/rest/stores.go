package rest

import (
	"fmt"
	"net/http"

	"github.com/maramosh/parcial-practico-miguel/internal/service"
	"github.com/maramosh/parcial-practico-miguel/pkg/web"
)

// FindAllStores lists every store with its products.
func (h *Handler) FindAllStores(w http.ResponseWriter, r *http.Request) {
	mLogger := h.requestLogger(r)
	mLogger.DebugContext(r.Context(), "Received request to find all stores")
	list, err := h.stores.FindAll(r.Context())
	if err != nil {
		h.respondServiceError(w, r, mLogger, err, "Failed to fetch stores")
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved store list", "count", len(list))
	web.RespondJSON(w, mLogger, http.StatusOK, list)
}

// FindStoreByID retrieves a store by its ID.
func (h *Handler) FindStoreByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.requestLogger(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to find store by ID", "ID", id)
	found, err := h.stores.FindByID(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err, fmt.Sprintf("Failed to retrieve store with ID %s", id))
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

// CreateStore handles the creation of a new store.
func (h *Handler) CreateStore(w http.ResponseWriter, r *http.Request) {
	mLogger := h.requestLogger(r)
	var dto service.StoreCreateDto
	if !web.DecodeJSON(w, r, mLogger, &dto) {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to create store", "store", dto)
	if !web.ValidateStruct(w, r, mLogger, h.validate, dto, "") {
		return
	}

	created, err := h.stores.Create(r.Context(), dto)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err, "Failed to create store")
		return
	}
	mLogger.InfoContext(r.Context(), "Store created successfully", "ID", created.ID, "Name", created.Name)
	web.RespondJSON(w, mLogger, http.StatusCreated, created)
}

// UpdateStore overwrites an existing store.
func (h *Handler) UpdateStore(w http.ResponseWriter, r *http.Request) {
	mLogger := h.requestLogger(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	var dto service.StoreCreateDto
	if !web.DecodeJSON(w, r, mLogger, &dto) {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to update store", "ID", id, "store", dto)
	if !web.ValidateStruct(w, r, mLogger, h.validate, dto, "") {
		return
	}

	updated, err := h.stores.Update(r.Context(), id, dto)
	if err != nil {
		h.respondServiceError(w, r, mLogger, err, fmt.Sprintf("Failed to update store with ID %s", id))
		return
	}
	mLogger.InfoContext(r.Context(), "Store updated successfully", "ID", updated.ID, "Name", updated.Name)
	web.RespondJSON(w, mLogger, http.StatusOK, updated)
}

// DeleteStoreByID deletes a store by its ID.
func (h *Handler) DeleteStoreByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.requestLogger(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to delete store", "ID", id)
	if err := h.stores.DeleteByID(r.Context(), id); err != nil {
		h.respondServiceError(w, r, mLogger, err, fmt.Sprintf("Failed to delete store with ID %s", id))
		return
	}
	mLogger.InfoContext(r.Context(), "Store deleted successfully", "ID", id)
	w.WriteHeader(http.StatusNoContent)
}
