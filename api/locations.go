package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/garnizeh/treeline/internal/schema"
	"github.com/garnizeh/treeline/pkg/models"
	"github.com/garnizeh/treeline/pkg/repository"
)

type LocationsHandler struct {
	repo repository.LocationRepo
}

func NewLocationsHandler(repo repository.LocationRepo) *LocationsHandler {
	return &LocationsHandler{repo: repo}
}

// List returns every location, or only those in a region when the regionId
// query parameter is present. A regionId that does not parse matches
// nothing, same as an unknown region.
func (h *LocationsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if raw := r.URL.Query().Get("regionId"); raw != "" {
		regionID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeJSON(w, []models.Location{}, http.StatusOK)
			return
		}

		locations, err := h.repo.ListLocationsByRegion(ctx, regionID)
		if err != nil {
			logger.Error("list locations by region", slog.Int64("regionId", regionID), slog.Any("err", err))
			writeError(w, "Failed to fetch locations", http.StatusInternalServerError)
			return
		}

		writeJSON(w, locations, http.StatusOK)
		return
	}

	locations, err := h.repo.ListLocations(ctx)
	if err != nil {
		logger.Error("list locations", slog.Any("err", err))
		writeError(w, "Failed to fetch locations", http.StatusInternalServerError)
		return
	}

	writeJSON(w, locations, http.StatusOK)
}

func (h *LocationsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, "Location not found", http.StatusNotFound)
		return
	}

	l, err := h.repo.GetLocation(r.Context(), id)
	if err != nil {
		logger.Error("get location", slog.Int64("id", id), slog.Any("err", err))
		writeError(w, "Failed to fetch location", http.StatusInternalServerError)
		return
	}
	if l == nil {
		writeError(w, "Location not found", http.StatusNotFound)
		return
	}

	writeJSON(w, l, http.StatusOK)
}

func (h *LocationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	in, err := schema.ParseLocationInsert(r.Context(), body)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	l, err := h.repo.CreateLocation(r.Context(), in)
	if err != nil {
		logger.Error("create location", slog.Any("err", err))
		writeError(w, "Failed to create location", http.StatusInternalServerError)
		return
	}

	writeJSON(w, l, http.StatusCreated)
}

func (h *LocationsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, "Location not found", http.StatusNotFound)
		return
	}

	body, err := readBody(r)
	if err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	patch, err := schema.ParseLocationPatch(r.Context(), body)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	l, err := h.repo.UpdateLocation(r.Context(), id, patch)
	if err != nil {
		logger.Error("update location", slog.Int64("id", id), slog.Any("err", err))
		writeError(w, "Failed to update location", http.StatusInternalServerError)
		return
	}
	if l == nil {
		writeError(w, "Location not found", http.StatusNotFound)
		return
	}

	writeJSON(w, l, http.StatusOK)
}

func (h *LocationsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, "Location not found", http.StatusNotFound)
		return
	}

	removed, err := h.repo.DeleteLocation(r.Context(), id)
	if err != nil {
		logger.Error("delete location", slog.Int64("id", id), slog.Any("err", err))
		writeError(w, "Failed to delete location", http.StatusInternalServerError)
		return
	}
	if !removed {
		writeError(w, "Location not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
