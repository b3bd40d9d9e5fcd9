package api

import (
	"net/http"
	"testing"

	"github.com/garnizeh/treeline/pkg/models"
)

func TestRegionsCRUD(t *testing.T) {
	router := newTestRouter()

	body := `{"name":"North Ridge","description":"Old-growth conifer stands","coordinates":{"type":"Polygon","coordinates":[[[-122.51,45.62],[-122.44,45.62],[-122.44,45.68],[-122.51,45.62]]]}}`
	rr := doRequest(t, router, http.MethodPost, "/api/regions", body)
	expectStatus(t, rr, http.StatusCreated)

	var created models.Region
	decodeJSON(t, rr, &created)
	if created.Name != "North Ridge" {
		t.Fatalf("unexpected region: %+v", created)
	}
	if created.Coordinates == nil || created.Coordinates.Type != "Polygon" {
		t.Fatalf("coordinates not round-tripped: %+v", created.Coordinates)
	}

	rr = doRequest(t, router, http.MethodPut, "/api/regions/1", `{"description":"Protected old growth"}`)
	expectStatus(t, rr, http.StatusOK)
	var updated models.Region
	decodeJSON(t, rr, &updated)
	if updated.Description == nil || *updated.Description != "Protected old growth" {
		t.Fatalf("description not patched: %+v", updated)
	}
	if updated.Coordinates == nil {
		t.Fatalf("coordinates dropped by patch")
	}

	rr = doRequest(t, router, http.MethodDelete, "/api/regions/1", "")
	expectStatus(t, rr, http.StatusNoContent)

	rr = doRequest(t, router, http.MethodGet, "/api/regions/1", "")
	expectStatus(t, rr, http.StatusNotFound)
}

func TestRegionsCreateRequiresCoordinates(t *testing.T) {
	router := newTestRouter()

	rr := doRequest(t, router, http.MethodPost, "/api/regions", `{"name":"North Ridge"}`)
	expectStatus(t, rr, http.StatusBadRequest)
}
