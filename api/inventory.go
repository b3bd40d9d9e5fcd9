package api

import (
	"log/slog"
	"net/http"

	"github.com/garnizeh/treeline/internal/schema"
	"github.com/garnizeh/treeline/pkg/repository"
)

type InventoryHandler struct {
	repo repository.InventoryRepo
}

func NewInventoryHandler(repo repository.InventoryRepo) *InventoryHandler {
	return &InventoryHandler{repo: repo}
}

func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.ListInventoryItems(r.Context())
	if err != nil {
		logger.Error("list inventory", slog.Any("err", err))
		writeError(w, "Failed to fetch inventory items", http.StatusInternalServerError)
		return
	}

	writeJSON(w, items, http.StatusOK)
}

func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, "Inventory item not found", http.StatusNotFound)
		return
	}

	it, err := h.repo.GetInventoryItem(r.Context(), id)
	if err != nil {
		logger.Error("get inventory item", slog.Int64("id", id), slog.Any("err", err))
		writeError(w, "Failed to fetch inventory item", http.StatusInternalServerError)
		return
	}
	if it == nil {
		writeError(w, "Inventory item not found", http.StatusNotFound)
		return
	}

	writeJSON(w, it, http.StatusOK)
}

func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	in, err := schema.ParseInventoryItemInsert(r.Context(), body)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	it, err := h.repo.CreateInventoryItem(r.Context(), in)
	if err != nil {
		logger.Error("create inventory item", slog.Any("err", err))
		writeError(w, "Failed to create inventory item", http.StatusInternalServerError)
		return
	}

	writeJSON(w, it, http.StatusCreated)
}

func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, "Inventory item not found", http.StatusNotFound)
		return
	}

	body, err := readBody(r)
	if err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	patch, err := schema.ParseInventoryItemPatch(r.Context(), body)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	it, err := h.repo.UpdateInventoryItem(r.Context(), id, patch)
	if err != nil {
		logger.Error("update inventory item", slog.Int64("id", id), slog.Any("err", err))
		writeError(w, "Failed to update inventory item", http.StatusInternalServerError)
		return
	}
	if it == nil {
		writeError(w, "Inventory item not found", http.StatusNotFound)
		return
	}

	writeJSON(w, it, http.StatusOK)
}

func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, "Inventory item not found", http.StatusNotFound)
		return
	}

	removed, err := h.repo.DeleteInventoryItem(r.Context(), id)
	if err != nil {
		logger.Error("delete inventory item", slog.Int64("id", id), slog.Any("err", err))
		writeError(w, "Failed to delete inventory item", http.StatusInternalServerError)
		return
	}
	if !removed {
		writeError(w, "Inventory item not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
