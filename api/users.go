package api

import (
	"log/slog"
	"net/http"

	"github.com/garnizeh/treeline/internal/schema"
	"github.com/garnizeh/treeline/pkg/repository"
)

type UsersHandler struct {
	repo repository.UserRepo
}

func NewUsersHandler(repo repository.UserRepo) *UsersHandler {
	return &UsersHandler{repo: repo}
}

func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.repo.ListUsers(r.Context())
	if err != nil {
		logger.Error("list users", slog.Any("err", err))
		writeError(w, "Failed to fetch users", http.StatusInternalServerError)
		return
	}

	writeJSON(w, users, http.StatusOK)
}

func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, "User not found", http.StatusNotFound)
		return
	}

	u, err := h.repo.GetUser(r.Context(), id)
	if err != nil {
		logger.Error("get user", slog.Int64("id", id), slog.Any("err", err))
		writeError(w, "Failed to fetch user", http.StatusInternalServerError)
		return
	}
	if u == nil {
		writeError(w, "User not found", http.StatusNotFound)
		return
	}

	writeJSON(w, u, http.StatusOK)
}

func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	in, err := schema.ParseUserInsert(r.Context(), body)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	u, err := h.repo.CreateUser(r.Context(), in)
	if err != nil {
		logger.Error("create user", slog.Any("err", err))
		writeError(w, "Failed to create user", http.StatusInternalServerError)
		return
	}

	writeJSON(w, u, http.StatusCreated)
}

func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, "User not found", http.StatusNotFound)
		return
	}

	body, err := readBody(r)
	if err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	patch, err := schema.ParseUserPatch(r.Context(), body)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	u, err := h.repo.UpdateUser(r.Context(), id, patch)
	if err != nil {
		logger.Error("update user", slog.Int64("id", id), slog.Any("err", err))
		writeError(w, "Failed to update user", http.StatusInternalServerError)
		return
	}
	if u == nil {
		writeError(w, "User not found", http.StatusNotFound)
		return
	}

	writeJSON(w, u, http.StatusOK)
}

func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, "User not found", http.StatusNotFound)
		return
	}

	removed, err := h.repo.DeleteUser(r.Context(), id)
	if err != nil {
		logger.Error("delete user", slog.Int64("id", id), slog.Any("err", err))
		writeError(w, "Failed to delete user", http.StatusInternalServerError)
		return
	}
	if !removed {
		writeError(w, "User not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
