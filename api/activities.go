package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/garnizeh/treeline/internal/schema"
	"github.com/garnizeh/treeline/pkg/repository"
)

type ActivitiesHandler struct {
	repo repository.ActivityRepo
}

func NewActivitiesHandler(repo repository.ActivityRepo) *ActivitiesHandler {
	return &ActivitiesHandler{repo: repo}
}

// List returns activities in insertion order, or the most recent first when
// a positive limit query parameter is given.
func (h *ActivitiesHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			acts, err := h.repo.ListRecentActivities(ctx, limit)
			if err != nil {
				logger.Error("list recent activities", slog.Any("err", err))
				writeError(w, "Failed to fetch activities", http.StatusInternalServerError)
				return
			}

			writeJSON(w, acts, http.StatusOK)
			return
		}
	}

	acts, err := h.repo.ListActivities(ctx)
	if err != nil {
		logger.Error("list activities", slog.Any("err", err))
		writeError(w, "Failed to fetch activities", http.StatusInternalServerError)
		return
	}

	writeJSON(w, acts, http.StatusOK)
}

func (h *ActivitiesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, "Activity not found", http.StatusNotFound)
		return
	}

	a, err := h.repo.GetActivity(r.Context(), id)
	if err != nil {
		logger.Error("get activity", slog.Int64("id", id), slog.Any("err", err))
		writeError(w, "Failed to fetch activity", http.StatusInternalServerError)
		return
	}
	if a == nil {
		writeError(w, "Activity not found", http.StatusNotFound)
		return
	}

	writeJSON(w, a, http.StatusOK)
}

func (h *ActivitiesHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	in, err := schema.ParseActivityInsert(r.Context(), body)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	a, err := h.repo.CreateActivity(r.Context(), in)
	if err != nil {
		logger.Error("create activity", slog.Any("err", err))
		writeError(w, "Failed to create activity", http.StatusInternalServerError)
		return
	}

	writeJSON(w, a, http.StatusCreated)
}

func (h *ActivitiesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, "Activity not found", http.StatusNotFound)
		return
	}

	body, err := readBody(r)
	if err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	patch, err := schema.ParseActivityPatch(r.Context(), body)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	a, err := h.repo.UpdateActivity(r.Context(), id, patch)
	if err != nil {
		logger.Error("update activity", slog.Int64("id", id), slog.Any("err", err))
		writeError(w, "Failed to update activity", http.StatusInternalServerError)
		return
	}
	if a == nil {
		writeError(w, "Activity not found", http.StatusNotFound)
		return
	}

	writeJSON(w, a, http.StatusOK)
}

func (h *ActivitiesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, "Activity not found", http.StatusNotFound)
		return
	}

	removed, err := h.repo.DeleteActivity(r.Context(), id)
	if err != nil {
		logger.Error("delete activity", slog.Int64("id", id), slog.Any("err", err))
		writeError(w, "Failed to delete activity", http.StatusInternalServerError)
		return
	}
	if !removed {
		writeError(w, "Activity not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
