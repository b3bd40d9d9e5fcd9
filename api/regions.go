package api

import (
	"log/slog"
	"net/http"

	"github.com/garnizeh/treeline/internal/schema"
	"github.com/garnizeh/treeline/pkg/repository"
)

type RegionsHandler struct {
	repo repository.RegionRepo
}

func NewRegionsHandler(repo repository.RegionRepo) *RegionsHandler {
	return &RegionsHandler{repo: repo}
}

func (h *RegionsHandler) List(w http.ResponseWriter, r *http.Request) {
	regions, err := h.repo.ListRegions(r.Context())
	if err != nil {
		logger.Error("list regions", slog.Any("err", err))
		writeError(w, "Failed to fetch regions", http.StatusInternalServerError)
		return
	}

	writeJSON(w, regions, http.StatusOK)
}

func (h *RegionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, "Region not found", http.StatusNotFound)
		return
	}

	reg, err := h.repo.GetRegion(r.Context(), id)
	if err != nil {
		logger.Error("get region", slog.Int64("id", id), slog.Any("err", err))
		writeError(w, "Failed to fetch region", http.StatusInternalServerError)
		return
	}
	if reg == nil {
		writeError(w, "Region not found", http.StatusNotFound)
		return
	}

	writeJSON(w, reg, http.StatusOK)
}

func (h *RegionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	in, err := schema.ParseRegionInsert(r.Context(), body)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	reg, err := h.repo.CreateRegion(r.Context(), in)
	if err != nil {
		logger.Error("create region", slog.Any("err", err))
		writeError(w, "Failed to create region", http.StatusInternalServerError)
		return
	}

	writeJSON(w, reg, http.StatusCreated)
}

func (h *RegionsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, "Region not found", http.StatusNotFound)
		return
	}

	body, err := readBody(r)
	if err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	patch, err := schema.ParseRegionPatch(r.Context(), body)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	reg, err := h.repo.UpdateRegion(r.Context(), id, patch)
	if err != nil {
		logger.Error("update region", slog.Int64("id", id), slog.Any("err", err))
		writeError(w, "Failed to update region", http.StatusInternalServerError)
		return
	}
	if reg == nil {
		writeError(w, "Region not found", http.StatusNotFound)
		return
	}

	writeJSON(w, reg, http.StatusOK)
}

func (h *RegionsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, "Region not found", http.StatusNotFound)
		return
	}

	removed, err := h.repo.DeleteRegion(r.Context(), id)
	if err != nil {
		logger.Error("delete region", slog.Int64("id", id), slog.Any("err", err))
		writeError(w, "Failed to delete region", http.StatusInternalServerError)
		return
	}
	if !removed {
		writeError(w, "Region not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
