package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/garnizeh/treeline/pkg/models"
)

func locationBody(regionID int64, name string) string {
	return fmt.Sprintf(
		`{"regionId":%d,"name":%q,"status":"healthy","coordinates":{"type":"Point","coordinates":[-122.47,45.65]}}`,
		regionID, name,
	)
}

func TestLocationsFilterByRegion(t *testing.T) {
	router := newTestRouter()

	for _, tc := range []struct {
		regionID int64
		name     string
	}{
		{1, "Ridge Lookout Stand"},
		{2, "Cedar Creek Plot 7"},
		{1, "North Slope Plot 2"},
	} {
		rr := doRequest(t, router, http.MethodPost, "/api/locations", locationBody(tc.regionID, tc.name))
		expectStatus(t, rr, http.StatusCreated)
	}

	rr := doRequest(t, router, http.MethodGet, "/api/locations?regionId=1", "")
	expectStatus(t, rr, http.StatusOK)
	var locs []models.Location
	decodeJSON(t, rr, &locs)
	if len(locs) != 2 {
		t.Fatalf("expected 2 locations in region 1, got %d", len(locs))
	}
	for _, l := range locs {
		if l.RegionID != 1 {
			t.Fatalf("filter leaked location from region %d", l.RegionID)
		}
	}

	rr = doRequest(t, router, http.MethodGet, "/api/locations", "")
	expectStatus(t, rr, http.StatusOK)
	decodeJSON(t, rr, &locs)
	if len(locs) != 3 {
		t.Fatalf("expected 3 locations unfiltered, got %d", len(locs))
	}
}

func TestLocationsUnparseableRegionID(t *testing.T) {
	router := newTestRouter()

	rr := doRequest(t, router, http.MethodPost, "/api/locations", locationBody(1, "Ridge Lookout Stand"))
	expectStatus(t, rr, http.StatusCreated)

	// matches nothing, same as an unknown region
	rr = doRequest(t, router, http.MethodGet, "/api/locations?regionId=west", "")
	expectStatus(t, rr, http.StatusOK)
	var locs []models.Location
	decodeJSON(t, rr, &locs)
	if len(locs) != 0 {
		t.Fatalf("expected empty list, got %d locations", len(locs))
	}
}

func TestLocationsUpdateRefreshesLastUpdated(t *testing.T) {
	router := newTestRouter()

	rr := doRequest(t, router, http.MethodPost, "/api/locations", locationBody(1, "Ridge Lookout Stand"))
	expectStatus(t, rr, http.StatusCreated)
	var created models.Location
	decodeJSON(t, rr, &created)
	if created.LastUpdated.IsZero() {
		t.Fatalf("lastUpdated not set on create")
	}

	rr = doRequest(t, router, http.MethodPut, "/api/locations/1", `{"status":"critical"}`)
	expectStatus(t, rr, http.StatusOK)
	var updated models.Location
	decodeJSON(t, rr, &updated)
	if updated.Status != models.LocationCritical {
		t.Fatalf("expected status critical, got %q", updated.Status)
	}
	if updated.LastUpdated.Before(created.LastUpdated) {
		t.Fatalf("lastUpdated went backwards")
	}
}

func TestLocationsCreateValidation(t *testing.T) {
	router := newTestRouter()

	// unknown status value
	body := `{"regionId":1,"name":"X","status":"thriving","coordinates":{"type":"Point","coordinates":[0,0]}}`
	rr := doRequest(t, router, http.MethodPost, "/api/locations", body)
	expectStatus(t, rr, http.StatusBadRequest)
}
