package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/garnizeh/treeline/pkg/models"
)

func activityBody(desc string) string {
	return fmt.Sprintf(
		`{"userId":3,"type":"planting","description":%q,"location":"Burn Scar Replant A","team":"Replant Crew B"}`,
		desc,
	)
}

func TestActivitiesCreateAndList(t *testing.T) {
	router := newTestRouter()

	for _, desc := range []string{"first", "second", "third"} {
		rr := doRequest(t, router, http.MethodPost, "/api/activities", activityBody(desc))
		expectStatus(t, rr, http.StatusCreated)

		var created models.Activity
		decodeJSON(t, rr, &created)
		if created.Timestamp.IsZero() {
			t.Fatalf("timestamp not assigned on create")
		}
	}

	rr := doRequest(t, router, http.MethodGet, "/api/activities", "")
	expectStatus(t, rr, http.StatusOK)
	var all []models.Activity
	decodeJSON(t, rr, &all)
	if len(all) != 3 {
		t.Fatalf("expected 3 activities, got %d", len(all))
	}
	if all[0].Description != "first" {
		t.Fatalf("expected insertion order, got %q first", all[0].Description)
	}
}

func TestActivitiesListRecent(t *testing.T) {
	router := newTestRouter()

	for _, desc := range []string{"first", "second", "third"} {
		rr := doRequest(t, router, http.MethodPost, "/api/activities", activityBody(desc))
		expectStatus(t, rr, http.StatusCreated)
	}

	rr := doRequest(t, router, http.MethodGet, "/api/activities?limit=2", "")
	expectStatus(t, rr, http.StatusOK)
	var recent []models.Activity
	decodeJSON(t, rr, &recent)
	if len(recent) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(recent))
	}
	if recent[0].Description != "third" {
		t.Fatalf("expected newest first, got %q", recent[0].Description)
	}
}

func TestActivitiesCreateValidation(t *testing.T) {
	router := newTestRouter()

	// description is required
	rr := doRequest(t, router, http.MethodPost, "/api/activities", `{"userId":3,"type":"planting","location":"X"}`)
	expectStatus(t, rr, http.StatusBadRequest)
}
