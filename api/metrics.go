package api

import (
	"log/slog"
	"net/http"

	"github.com/garnizeh/treeline/internal/schema"
	"github.com/garnizeh/treeline/pkg/repository"
)

type MetricsHandler struct {
	repo repository.MetricRepo
}

func NewMetricsHandler(repo repository.MetricRepo) *MetricsHandler {
	return &MetricsHandler{repo: repo}
}

// List returns every metric, or the most recent one per category when the
// latest=true query parameter is given.
func (h *MetricsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.URL.Query().Get("latest") == "true" {
		metrics, err := h.repo.ListLatestMetrics(ctx)
		if err != nil {
			logger.Error("list latest metrics", slog.Any("err", err))
			writeError(w, "Failed to fetch metrics", http.StatusInternalServerError)
			return
		}

		writeJSON(w, metrics, http.StatusOK)
		return
	}

	metrics, err := h.repo.ListMetrics(ctx)
	if err != nil {
		logger.Error("list metrics", slog.Any("err", err))
		writeError(w, "Failed to fetch metrics", http.StatusInternalServerError)
		return
	}

	writeJSON(w, metrics, http.StatusOK)
}

func (h *MetricsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, "Metric not found", http.StatusNotFound)
		return
	}

	m, err := h.repo.GetMetric(r.Context(), id)
	if err != nil {
		logger.Error("get metric", slog.Int64("id", id), slog.Any("err", err))
		writeError(w, "Failed to fetch metric", http.StatusInternalServerError)
		return
	}
	if m == nil {
		writeError(w, "Metric not found", http.StatusNotFound)
		return
	}

	writeJSON(w, m, http.StatusOK)
}

func (h *MetricsHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	in, err := schema.ParseMetricInsert(r.Context(), body)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	m, err := h.repo.CreateMetric(r.Context(), in)
	if err != nil {
		logger.Error("create metric", slog.Any("err", err))
		writeError(w, "Failed to create metric", http.StatusInternalServerError)
		return
	}

	writeJSON(w, m, http.StatusCreated)
}

func (h *MetricsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, "Metric not found", http.StatusNotFound)
		return
	}

	body, err := readBody(r)
	if err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	patch, err := schema.ParseMetricPatch(r.Context(), body)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	m, err := h.repo.UpdateMetric(r.Context(), id, patch)
	if err != nil {
		logger.Error("update metric", slog.Int64("id", id), slog.Any("err", err))
		writeError(w, "Failed to update metric", http.StatusInternalServerError)
		return
	}
	if m == nil {
		writeError(w, "Metric not found", http.StatusNotFound)
		return
	}

	writeJSON(w, m, http.StatusOK)
}

func (h *MetricsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, "Metric not found", http.StatusNotFound)
		return
	}

	removed, err := h.repo.DeleteMetric(r.Context(), id)
	if err != nil {
		logger.Error("delete metric", slog.Int64("id", id), slog.Any("err", err))
		writeError(w, "Failed to delete metric", http.StatusInternalServerError)
		return
	}
	if !removed {
		writeError(w, "Metric not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
