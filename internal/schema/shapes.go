package schema

import (
	"context"

	"github.com/garnizeh/treeline/pkg/models"
)

// Each entity declares its field constraints once; the insert schema adds
// the required list and the patch schema reuses the same properties with
// everything optional. Server-assigned fields (id, timestamp, lastUpdated,
// completed, completedAt) never appear here.

const geometryDef = `{
	"type": "object",
	"properties": {
		"type": {"type": "string", "minLength": 1},
		"coordinates": {"type": "array"}
	},
	"required": ["type", "coordinates"]
}`

// nullableGeometryDef additionally admits JSON null. Patch payloads and
// nullable geometry fields use it; an explicit null decodes to a nil
// pointer, same as omitting the field.
const nullableGeometryDef = `{"oneOf": [` + geometryDef + `, {"type": "null"}]}`

const userProps = `{
	"username": {"type": "string", "minLength": 1},
	"password": {"type": "string", "minLength": 1},
	"confirmPassword": {"type": "string"},
	"fullName": {"type": "string", "minLength": 1},
	"email": {"type": "string", "minLength": 1},
	"role": {"type": "string", "enum": ["admin", "manager", "field_worker"]},
	"profileImage": {"type": ["string", "null"]}
}`

var (
	userInsertSchema = mustCompile(`{
		"type": "object",
		"properties": ` + userProps + `,
		"required": ["username", "password", "fullName", "email", "role"]
	}`)
	userPatchSchema = mustCompile(`{"type": "object", "properties": ` + userProps + `}`)
)

// ParseUserInsert validates and types a user create payload, enforcing the
// confirmPassword cross-field rule.
func ParseUserInsert(ctx context.Context, data []byte) (*models.UserInsert, error) {
	if err := validate(ctx, userInsertSchema, data); err != nil {
		return nil, err
	}
	var in models.UserInsert
	if err := unmarshalTyped(data, &in); err != nil {
		return nil, err
	}
	if in.ConfirmPassword != in.Password {
		return nil, newViolation("confirmPassword must equal password")
	}
	in.ConfirmPassword = ""
	return &in, nil
}

func ParseUserPatch(ctx context.Context, data []byte) (*models.UserPatch, error) {
	if err := validate(ctx, userPatchSchema, data); err != nil {
		return nil, err
	}
	var p models.UserPatch
	if err := unmarshalTyped(data, &p); err != nil {
		return nil, err
	}
	if p.Password != nil {
		if p.ConfirmPassword == nil || *p.ConfirmPassword != *p.Password {
			return nil, newViolation("confirmPassword must equal password")
		}
		p.ConfirmPassword = nil
	}
	return &p, nil
}

func regionProps(geometry string) string {
	return `{
	"name": {"type": "string", "minLength": 1},
	"description": {"type": ["string", "null"]},
	"coordinates": ` + geometry + `
}`
}

var (
	regionInsertSchema = mustCompile(`{
		"type": "object",
		"properties": ` + regionProps(geometryDef) + `,
		"required": ["name", "coordinates"]
	}`)
	regionPatchSchema = mustCompile(`{"type": "object", "properties": ` + regionProps(nullableGeometryDef) + `}`)
)

func ParseRegionInsert(ctx context.Context, data []byte) (*models.RegionInsert, error) {
	if err := validate(ctx, regionInsertSchema, data); err != nil {
		return nil, err
	}
	var in models.RegionInsert
	if err := unmarshalTyped(data, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func ParseRegionPatch(ctx context.Context, data []byte) (*models.RegionPatch, error) {
	if err := validate(ctx, regionPatchSchema, data); err != nil {
		return nil, err
	}
	var p models.RegionPatch
	if err := unmarshalTyped(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func locationProps(geometry string) string {
	return `{
	"regionId": {"type": "integer"},
	"name": {"type": "string", "minLength": 1},
	"status": {"type": "string", "enum": ["healthy", "monitoring", "critical", "unclassified"]},
	"coordinates": ` + geometry + `
}`
}

var (
	locationInsertSchema = mustCompile(`{
		"type": "object",
		"properties": ` + locationProps(geometryDef) + `,
		"required": ["regionId", "name", "status", "coordinates"]
	}`)
	locationPatchSchema = mustCompile(`{"type": "object", "properties": ` + locationProps(nullableGeometryDef) + `}`)
)

func ParseLocationInsert(ctx context.Context, data []byte) (*models.LocationInsert, error) {
	if err := validate(ctx, locationInsertSchema, data); err != nil {
		return nil, err
	}
	var in models.LocationInsert
	if err := unmarshalTyped(data, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func ParseLocationPatch(ctx context.Context, data []byte) (*models.LocationPatch, error) {
	if err := validate(ctx, locationPatchSchema, data); err != nil {
		return nil, err
	}
	var p models.LocationPatch
	if err := unmarshalTyped(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

const inventoryProps = `{
	"type": {"type": "string", "minLength": 1},
	"name": {"type": "string", "minLength": 1},
	"quantity": {"type": "number", "minimum": 0},
	"unit": {"type": "string", "minLength": 1},
	"status": {"type": "string", "enum": ["available", "low_supply", "maintenance", "depleted"]}
}`

var (
	inventoryInsertSchema = mustCompile(`{
		"type": "object",
		"properties": ` + inventoryProps + `,
		"required": ["type", "name", "quantity", "unit", "status"]
	}`)
	inventoryPatchSchema = mustCompile(`{"type": "object", "properties": ` + inventoryProps + `}`)
)

func ParseInventoryItemInsert(ctx context.Context, data []byte) (*models.InventoryItemInsert, error) {
	if err := validate(ctx, inventoryInsertSchema, data); err != nil {
		return nil, err
	}
	var in models.InventoryItemInsert
	if err := unmarshalTyped(data, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func ParseInventoryItemPatch(ctx context.Context, data []byte) (*models.InventoryItemPatch, error) {
	if err := validate(ctx, inventoryPatchSchema, data); err != nil {
		return nil, err
	}
	var p models.InventoryItemPatch
	if err := unmarshalTyped(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// coordinates are nullable on activities, so both shapes take the
// null-admitting geometry definition
const activityProps = `{
	"userId": {"type": "integer"},
	"type": {"type": "string", "minLength": 1},
	"description": {"type": "string", "minLength": 1},
	"location": {"type": "string", "minLength": 1},
	"team": {"type": ["string", "null"]},
	"coordinates": ` + nullableGeometryDef + `
}`

var (
	activityInsertSchema = mustCompile(`{
		"type": "object",
		"properties": ` + activityProps + `,
		"required": ["userId", "type", "description", "location"]
	}`)
	activityPatchSchema = mustCompile(`{"type": "object", "properties": ` + activityProps + `}`)
)

func ParseActivityInsert(ctx context.Context, data []byte) (*models.ActivityInsert, error) {
	if err := validate(ctx, activityInsertSchema, data); err != nil {
		return nil, err
	}
	var in models.ActivityInsert
	if err := unmarshalTyped(data, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func ParseActivityPatch(ctx context.Context, data []byte) (*models.ActivityPatch, error) {
	if err := validate(ctx, activityPatchSchema, data); err != nil {
		return nil, err
	}
	var p models.ActivityPatch
	if err := unmarshalTyped(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

const taskProps = `{
	"title": {"type": "string", "minLength": 1},
	"description": {"type": ["string", "null"]},
	"location": {"type": "string", "minLength": 1},
	"priority": {"type": "string", "enum": ["low", "normal", "high"]},
	"status": {"type": "string", "enum": ["pending", "completed", "cancelled"]},
	"category": {"type": "string", "minLength": 1},
	"assignedTo": {"type": ["integer", "null"]},
	"scheduledDate": {"type": "string", "format": "date-time"}
}`

var (
	taskInsertSchema = mustCompile(`{
		"type": "object",
		"properties": ` + taskProps + `,
		"required": ["title", "location", "priority", "category", "scheduledDate"]
	}`)
	taskPatchSchema = mustCompile(`{"type": "object", "properties": ` + taskProps + `}`)
)

// ParseTaskInsert defaults status to pending when omitted. The completed and
// completedAt fields are not part of the shape at all.
func ParseTaskInsert(ctx context.Context, data []byte) (*models.TaskInsert, error) {
	if err := validate(ctx, taskInsertSchema, data); err != nil {
		return nil, err
	}
	var in models.TaskInsert
	if err := unmarshalTyped(data, &in); err != nil {
		return nil, err
	}
	if in.Status == "" {
		in.Status = models.TaskPending
	}
	return &in, nil
}

func ParseTaskPatch(ctx context.Context, data []byte) (*models.TaskPatch, error) {
	if err := validate(ctx, taskPatchSchema, data); err != nil {
		return nil, err
	}
	var p models.TaskPatch
	if err := unmarshalTyped(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

const metricProps = `{
	"name": {"type": "string", "minLength": 1},
	"value": {"type": "number"},
	"unit": {"type": "string", "minLength": 1},
	"previousValue": {"type": ["number", "null"]},
	"changePercentage": {"type": ["number", "null"]},
	"trend": {"type": ["string", "null"], "enum": ["up", "down", "stable", null]},
	"icon": {"type": ["string", "null"]},
	"category": {"type": "string", "enum": ["coverage", "species", "risk", "health"]}
}`

var (
	metricInsertSchema = mustCompile(`{
		"type": "object",
		"properties": ` + metricProps + `,
		"required": ["name", "value", "unit", "category"]
	}`)
	metricPatchSchema = mustCompile(`{"type": "object", "properties": ` + metricProps + `}`)
)

func ParseMetricInsert(ctx context.Context, data []byte) (*models.MetricInsert, error) {
	if err := validate(ctx, metricInsertSchema, data); err != nil {
		return nil, err
	}
	var in models.MetricInsert
	if err := unmarshalTyped(data, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func ParseMetricPatch(ctx context.Context, data []byte) (*models.MetricPatch, error) {
	if err := validate(ctx, metricPatchSchema, data); err != nil {
		return nil, err
	}
	var p models.MetricPatch
	if err := unmarshalTyped(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
