package schema

import (
	"context"
	"strings"
	"testing"

	"github.com/garnizeh/treeline/pkg/models"
)

func TestParseUserInsert_Valid(t *testing.T) {
	body := `{"username":"mjohnson","password":"forest2024","confirmPassword":"forest2024","fullName":"Maria Johnson","email":"maria@treeline.local","role":"manager"}`
	in, err := ParseUserInsert(context.Background(), []byte(body))
	if err != nil {
		t.Fatalf("ParseUserInsert: %v", err)
	}
	if in.Username != "mjohnson" || in.Role != models.RoleManager {
		t.Fatalf("unexpected insert: %+v", in)
	}
	if in.ConfirmPassword != "" {
		t.Fatalf("confirmPassword must not survive parsing")
	}
}

func TestParseUserInsert_ConfirmPasswordMismatch(t *testing.T) {
	body := `{"username":"mjohnson","password":"forest2024","confirmPassword":"other","fullName":"Maria Johnson","email":"maria@treeline.local","role":"manager"}`
	_, err := ParseUserInsert(context.Background(), []byte(body))
	if err == nil {
		t.Fatalf("expected confirmPassword mismatch to fail")
	}
	if !IsValidationError(err) {
		t.Fatalf("expected a validation error, got %T", err)
	}
	if !strings.Contains(err.Error(), "confirmPassword must equal password") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestParseUserInsert_BadRole(t *testing.T) {
	body := `{"username":"x","password":"p","confirmPassword":"p","fullName":"X","email":"x@y","role":"superuser"}`
	_, err := ParseUserInsert(context.Background(), []byte(body))
	if err == nil || !strings.Contains(err.Error(), "role") {
		t.Fatalf("expected role violation, got: %v", err)
	}
}

func TestParseUserInsert_MultipleViolations(t *testing.T) {
	// missing everything: the error must enumerate more than one field
	_, err := ParseUserInsert(context.Background(), []byte(`{}`))
	if err == nil {
		t.Fatalf("expected empty payload to fail")
	}
	msg := err.Error()
	if !strings.Contains(msg, "username") || !strings.Contains(msg, "password") {
		t.Fatalf("expected consolidated message naming every missing field, got: %q", msg)
	}
}

func TestParseUserPatch_PasswordNeedsConfirmation(t *testing.T) {
	_, err := ParseUserPatch(context.Background(), []byte(`{"password":"newpass"}`))
	if err == nil || !strings.Contains(err.Error(), "confirmPassword") {
		t.Fatalf("expected confirmPassword requirement on password change, got: %v", err)
	}

	p, err := ParseUserPatch(context.Background(), []byte(`{"password":"newpass","confirmPassword":"newpass"}`))
	if err != nil {
		t.Fatalf("ParseUserPatch: %v", err)
	}
	if p.Password == nil || *p.Password != "newpass" {
		t.Fatalf("unexpected patch: %+v", p)
	}
}

func TestParseUserPatch_SubsetOK(t *testing.T) {
	p, err := ParseUserPatch(context.Background(), []byte(`{"fullName":"New Name"}`))
	if err != nil {
		t.Fatalf("ParseUserPatch: %v", err)
	}
	if p.FullName == nil || *p.FullName != "New Name" {
		t.Fatalf("unexpected patch: %+v", p)
	}
	if p.Username != nil || p.Email != nil {
		t.Fatalf("omitted fields must stay nil")
	}
}

func TestParseInventoryItemInsert_NegativeQuantity(t *testing.T) {
	body := `{"type":"plant","name":"Oak Saplings","quantity":-5,"unit":"units","status":"available"}`
	_, err := ParseInventoryItemInsert(context.Background(), []byte(body))
	if err == nil {
		t.Fatalf("expected negative quantity to fail")
	}
	if !strings.Contains(err.Error(), "quantity") {
		t.Fatalf("expected message to reference quantity, got: %v", err)
	}
}

func TestParseInventoryItemPatch_TypeChecked(t *testing.T) {
	// provided fields must individually satisfy their constraints
	_, err := ParseInventoryItemPatch(context.Background(), []byte(`{"quantity":-1}`))
	if err == nil || !strings.Contains(err.Error(), "quantity") {
		t.Fatalf("expected quantity violation on patch, got: %v", err)
	}

	p, err := ParseInventoryItemPatch(context.Background(), []byte(`{"quantity":7.5}`))
	if err != nil {
		t.Fatalf("ParseInventoryItemPatch: %v", err)
	}
	if p.Quantity == nil || *p.Quantity != 7.5 {
		t.Fatalf("unexpected patch: %+v", p)
	}
}

func TestParseTaskInsert_DefaultsStatus(t *testing.T) {
	body := `{"title":"Replace traps","location":"Cedar Creek","priority":"high","category":"pest_control","scheduledDate":"2026-09-14T09:00:00Z"}`
	in, err := ParseTaskInsert(context.Background(), []byte(body))
	if err != nil {
		t.Fatalf("ParseTaskInsert: %v", err)
	}
	if in.Status != models.TaskPending {
		t.Fatalf("expected default status pending, got %q", in.Status)
	}
	if in.ScheduledDate.IsZero() {
		t.Fatalf("scheduledDate not parsed")
	}
}

func TestParseTaskInsert_BadDate(t *testing.T) {
	body := `{"title":"T","location":"L","priority":"low","category":"c","scheduledDate":"next tuesday"}`
	_, err := ParseTaskInsert(context.Background(), []byte(body))
	if err == nil || !IsValidationError(err) {
		t.Fatalf("expected validation error for unparseable date, got: %v", err)
	}
}

func TestParseMetricInsert_BadCategory(t *testing.T) {
	body := `{"name":"Soil pH","value":6.5,"unit":"pH","category":"soil"}`
	_, err := ParseMetricInsert(context.Background(), []byte(body))
	if err == nil || !strings.Contains(err.Error(), "category") {
		t.Fatalf("expected category violation, got: %v", err)
	}
}

func TestParseRegionInsert_RequiresCoordinates(t *testing.T) {
	_, err := ParseRegionInsert(context.Background(), []byte(`{"name":"North Ridge"}`))
	if err == nil || !strings.Contains(err.Error(), "coordinates") {
		t.Fatalf("expected coordinates requirement, got: %v", err)
	}
}

func TestParseActivityInsert_NullCoordinates(t *testing.T) {
	// nullable fields accept an explicit null, same as omitting them
	body := `{"userId":1,"type":"planting","description":"Planted saplings","location":"North Ridge","team":null,"coordinates":null}`
	in, err := ParseActivityInsert(context.Background(), []byte(body))
	if err != nil {
		t.Fatalf("ParseActivityInsert: %v", err)
	}
	if in.Coordinates != nil {
		t.Fatalf("expected nil coordinates, got %+v", in.Coordinates)
	}
	if in.Team != nil {
		t.Fatalf("expected nil team, got %q", *in.Team)
	}
}

func TestParsePatch_NullCoordinates(t *testing.T) {
	rp, err := ParseRegionPatch(context.Background(), []byte(`{"coordinates":null}`))
	if err != nil {
		t.Fatalf("ParseRegionPatch: %v", err)
	}
	if rp.Coordinates != nil {
		t.Fatalf("expected null coordinates treated as absent, got %+v", rp.Coordinates)
	}

	lp, err := ParseLocationPatch(context.Background(), []byte(`{"name":"Cedar Creek Plot 7","coordinates":null}`))
	if err != nil {
		t.Fatalf("ParseLocationPatch: %v", err)
	}
	if lp.Coordinates != nil {
		t.Fatalf("expected null coordinates treated as absent, got %+v", lp.Coordinates)
	}
	if lp.Name == nil || *lp.Name != "Cedar Creek Plot 7" {
		t.Fatalf("unexpected patch: %+v", lp)
	}
}

func TestParseRegionInsert_NullCoordinatesRejected(t *testing.T) {
	// regions require a real geometry on create; null does not satisfy it
	_, err := ParseRegionInsert(context.Background(), []byte(`{"name":"North Ridge","coordinates":null}`))
	if err == nil || !IsValidationError(err) {
		t.Fatalf("expected validation error for null region coordinates, got: %v", err)
	}
}

func TestParseActivityInsert_InvalidJSON(t *testing.T) {
	_, err := ParseActivityInsert(context.Background(), []byte(`{not json`))
	if err == nil || !IsValidationError(err) {
		t.Fatalf("expected validation error for malformed JSON, got: %v", err)
	}
}
