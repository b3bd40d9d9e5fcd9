package api

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/garnizeh/treeline/pkg/models"
)

func metricBody(name string, value float64, category string) string {
	return fmt.Sprintf(`{"name":%q,"value":%g,"unit":"%%","category":%q}`, name, value, category)
}

func TestMetricsLatest(t *testing.T) {
	router := newTestRouter()

	rr := doRequest(t, router, http.MethodPost, "/api/metrics", metricBody("Canopy Coverage", 66.1, "coverage"))
	expectStatus(t, rr, http.StatusCreated)

	time.Sleep(2 * time.Millisecond)

	rr = doRequest(t, router, http.MethodPost, "/api/metrics", metricBody("Canopy Coverage", 68.4, "coverage"))
	expectStatus(t, rr, http.StatusCreated)
	var newer models.Metric
	decodeJSON(t, rr, &newer)

	rr = doRequest(t, router, http.MethodPost, "/api/metrics", metricBody("Fire Risk Index", 7.2, "risk"))
	expectStatus(t, rr, http.StatusCreated)

	rr = doRequest(t, router, http.MethodGet, "/api/metrics?latest=true", "")
	expectStatus(t, rr, http.StatusOK)
	var latest []models.Metric
	decodeJSON(t, rr, &latest)
	if len(latest) != 2 {
		t.Fatalf("expected one latest metric per populated category, got %d", len(latest))
	}
	if latest[0].ID != newer.ID {
		t.Fatalf("expected the newer coverage metric first, got id %d", latest[0].ID)
	}
	if latest[1].Category != "risk" {
		t.Fatalf("expected risk after coverage, got %q", latest[1].Category)
	}

	// the plain list still returns everything
	rr = doRequest(t, router, http.MethodGet, "/api/metrics", "")
	expectStatus(t, rr, http.StatusOK)
	var all []models.Metric
	decodeJSON(t, rr, &all)
	if len(all) != 3 {
		t.Fatalf("expected 3 metrics, got %d", len(all))
	}
}

func TestMetricsCreateValidation(t *testing.T) {
	router := newTestRouter()

	rr := doRequest(t, router, http.MethodPost, "/api/metrics", metricBody("Soil pH", 6.5, "soil"))
	expectStatus(t, rr, http.StatusBadRequest)
}

func TestMetricsTimestampServerAssigned(t *testing.T) {
	router := newTestRouter()

	before := time.Now().UTC().Add(-time.Second)
	rr := doRequest(t, router, http.MethodPost, "/api/metrics", metricBody("Canopy Coverage", 68.4, "coverage"))
	expectStatus(t, rr, http.StatusCreated)

	var created models.Metric
	decodeJSON(t, rr, &created)
	if created.Timestamp.Before(before) {
		t.Fatalf("timestamp not assigned on create: %v", created.Timestamp)
	}
}
