package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/garnizeh/treeline/pkg/models"
)

func TestUsersCRUD(t *testing.T) {
	router := newTestRouter()

	body := `{"username":"mjohnson","password":"forest2024","confirmPassword":"forest2024","fullName":"Maria Johnson","email":"maria@treeline.local","role":"manager"}`
	rr := doRequest(t, router, http.MethodPost, "/api/users", body)
	expectStatus(t, rr, http.StatusCreated)

	var created models.User
	decodeJSON(t, rr, &created)
	if created.ID != 1 {
		t.Fatalf("expected id 1, got %d", created.ID)
	}
	if created.Username != "mjohnson" || created.Password != "forest2024" {
		t.Fatalf("unexpected user: %+v", created)
	}

	rr = doRequest(t, router, http.MethodGet, "/api/users/1", "")
	expectStatus(t, rr, http.StatusOK)
	var fetched models.User
	decodeJSON(t, rr, &fetched)
	if fetched != created {
		t.Fatalf("GET returned %+v, want %+v", fetched, created)
	}

	rr = doRequest(t, router, http.MethodGet, "/api/users", "")
	expectStatus(t, rr, http.StatusOK)
	var users []models.User
	decodeJSON(t, rr, &users)
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}

	rr = doRequest(t, router, http.MethodPut, "/api/users/1", `{"fullName":"Maria J. Johnson"}`)
	expectStatus(t, rr, http.StatusOK)
	var updated models.User
	decodeJSON(t, rr, &updated)
	if updated.FullName != "Maria J. Johnson" {
		t.Fatalf("expected patched fullName, got %q", updated.FullName)
	}
	if updated.Username != "mjohnson" {
		t.Fatalf("untouched field changed: %q", updated.Username)
	}

	rr = doRequest(t, router, http.MethodDelete, "/api/users/1", "")
	expectStatus(t, rr, http.StatusNoContent)
	if rr.Body.Len() != 0 {
		t.Fatalf("expected empty body on delete, got %q", rr.Body.String())
	}

	rr = doRequest(t, router, http.MethodGet, "/api/users/1", "")
	expectStatus(t, rr, http.StatusNotFound)
	if msg := errorMessage(t, rr); msg != "User not found" {
		t.Fatalf("unexpected error message: %q", msg)
	}
}

func TestUsersCreateValidation(t *testing.T) {
	router := newTestRouter()

	// missing required fields
	rr := doRequest(t, router, http.MethodPost, "/api/users", `{"username":"x"}`)
	expectStatus(t, rr, http.StatusBadRequest)
	msg := errorMessage(t, rr)
	if !strings.Contains(msg, "password") {
		t.Fatalf("expected error naming missing fields, got %q", msg)
	}

	// password confirmation mismatch
	body := `{"username":"x","password":"a","confirmPassword":"b","fullName":"X","email":"x@y","role":"admin"}`
	rr = doRequest(t, router, http.MethodPost, "/api/users", body)
	expectStatus(t, rr, http.StatusBadRequest)
	if msg := errorMessage(t, rr); !strings.Contains(msg, "confirmPassword") {
		t.Fatalf("expected confirmPassword error, got %q", msg)
	}

	// malformed JSON
	rr = doRequest(t, router, http.MethodPost, "/api/users", `{not json`)
	expectStatus(t, rr, http.StatusBadRequest)
}

func TestUsersBadPathID(t *testing.T) {
	router := newTestRouter()

	rr := doRequest(t, router, http.MethodGet, "/api/users/abc", "")
	expectStatus(t, rr, http.StatusNotFound)
	if msg := errorMessage(t, rr); msg != "User not found" {
		t.Fatalf("unexpected error message: %q", msg)
	}

	rr = doRequest(t, router, http.MethodDelete, "/api/users/abc", "")
	expectStatus(t, rr, http.StatusNotFound)
}
