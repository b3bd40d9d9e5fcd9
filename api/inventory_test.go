package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/garnizeh/treeline/pkg/models"
)

func TestInventoryCRUD(t *testing.T) {
	router := newTestRouter()

	body := `{"type":"plant","name":"Douglas Fir Saplings","quantity":1200,"unit":"units","status":"available"}`
	rr := doRequest(t, router, http.MethodPost, "/api/inventory", body)
	expectStatus(t, rr, http.StatusCreated)

	var created models.InventoryItem
	decodeJSON(t, rr, &created)
	if created.Quantity != 1200 || created.Status != models.InventoryAvailable {
		t.Fatalf("unexpected item: %+v", created)
	}
	if created.LastUpdated.IsZero() {
		t.Fatalf("lastUpdated not set on create")
	}

	rr = doRequest(t, router, http.MethodPut, "/api/inventory/1", `{"quantity":85,"status":"low_supply"}`)
	expectStatus(t, rr, http.StatusOK)
	var updated models.InventoryItem
	decodeJSON(t, rr, &updated)
	if updated.Quantity != 85 || updated.Status != models.InventoryLowSupply {
		t.Fatalf("unexpected patched item: %+v", updated)
	}
	if updated.Name != "Douglas Fir Saplings" {
		t.Fatalf("untouched field changed: %q", updated.Name)
	}

	rr = doRequest(t, router, http.MethodDelete, "/api/inventory/1", "")
	expectStatus(t, rr, http.StatusNoContent)

	rr = doRequest(t, router, http.MethodDelete, "/api/inventory/1", "")
	expectStatus(t, rr, http.StatusNotFound)
	if msg := errorMessage(t, rr); msg != "Inventory item not found" {
		t.Fatalf("unexpected error message: %q", msg)
	}
}

func TestInventoryNegativeQuantityRejected(t *testing.T) {
	router := newTestRouter()

	body := `{"type":"plant","name":"Oak Saplings","quantity":-5,"unit":"units","status":"available"}`
	rr := doRequest(t, router, http.MethodPost, "/api/inventory", body)
	expectStatus(t, rr, http.StatusBadRequest)
	if msg := errorMessage(t, rr); !strings.Contains(msg, "quantity") {
		t.Fatalf("expected error mentioning quantity, got %q", msg)
	}

	rr = doRequest(t, router, http.MethodGet, "/api/inventory", "")
	expectStatus(t, rr, http.StatusOK)
	var items []models.InventoryItem
	decodeJSON(t, rr, &items)
	if len(items) != 0 {
		t.Fatalf("rejected item must not be stored, got %d items", len(items))
	}
}
