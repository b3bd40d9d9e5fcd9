package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/garnizeh/treeline/internal/schema"
	"github.com/garnizeh/treeline/pkg/repository"
)

type TasksHandler struct {
	repo repository.TaskRepo
}

func NewTasksHandler(repo repository.TaskRepo) *TasksHandler {
	return &TasksHandler{repo: repo}
}

// List returns tasks in insertion order, or only upcoming ones
// (incomplete, scheduled in the future, soonest first) when a positive
// limit query parameter is given.
func (h *TasksHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			tasks, err := h.repo.ListUpcomingTasks(ctx, limit)
			if err != nil {
				logger.Error("list upcoming tasks", slog.Any("err", err))
				writeError(w, "Failed to fetch tasks", http.StatusInternalServerError)
				return
			}

			writeJSON(w, tasks, http.StatusOK)
			return
		}
	}

	tasks, err := h.repo.ListTasks(ctx)
	if err != nil {
		logger.Error("list tasks", slog.Any("err", err))
		writeError(w, "Failed to fetch tasks", http.StatusInternalServerError)
		return
	}

	writeJSON(w, tasks, http.StatusOK)
}

func (h *TasksHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, "Task not found", http.StatusNotFound)
		return
	}

	t, err := h.repo.GetTask(r.Context(), id)
	if err != nil {
		logger.Error("get task", slog.Int64("id", id), slog.Any("err", err))
		writeError(w, "Failed to fetch task", http.StatusInternalServerError)
		return
	}
	if t == nil {
		writeError(w, "Task not found", http.StatusNotFound)
		return
	}

	writeJSON(w, t, http.StatusOK)
}

func (h *TasksHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	in, err := schema.ParseTaskInsert(r.Context(), body)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.repo.CreateTask(r.Context(), in)
	if err != nil {
		logger.Error("create task", slog.Any("err", err))
		writeError(w, "Failed to create task", http.StatusInternalServerError)
		return
	}

	writeJSON(w, t, http.StatusCreated)
}

func (h *TasksHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, "Task not found", http.StatusNotFound)
		return
	}

	body, err := readBody(r)
	if err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	patch, err := schema.ParseTaskPatch(r.Context(), body)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.repo.UpdateTask(r.Context(), id, patch)
	if err != nil {
		logger.Error("update task", slog.Int64("id", id), slog.Any("err", err))
		writeError(w, "Failed to update task", http.StatusInternalServerError)
		return
	}
	if t == nil {
		writeError(w, "Task not found", http.StatusNotFound)
		return
	}

	writeJSON(w, t, http.StatusOK)
}

// Complete is the dedicated transition endpoint; it takes no body.
func (h *TasksHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, "Task not found", http.StatusNotFound)
		return
	}

	t, err := h.repo.CompleteTask(r.Context(), id)
	if err != nil {
		logger.Error("complete task", slog.Int64("id", id), slog.Any("err", err))
		writeError(w, "Failed to complete task", http.StatusInternalServerError)
		return
	}
	if t == nil {
		writeError(w, "Task not found", http.StatusNotFound)
		return
	}

	writeJSON(w, t, http.StatusOK)
}

func (h *TasksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, "Task not found", http.StatusNotFound)
		return
	}

	removed, err := h.repo.DeleteTask(r.Context(), id)
	if err != nil {
		logger.Error("delete task", slog.Int64("id", id), slog.Any("err", err))
		writeError(w, "Failed to delete task", http.StatusInternalServerError)
		return
	}
	if !removed {
		writeError(w, "Task not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
