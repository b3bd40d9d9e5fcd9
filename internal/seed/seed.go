// Package seed loads the demo dataset through the repository interfaces so
// it works against any backend. Ids and server-set timestamps are assigned
// by the storage engine, same as for API-created records.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/garnizeh/treeline/pkg/models"
	"github.com/garnizeh/treeline/pkg/repository"
)

func strPtr(s string) *string { return &s }

func intPtr(i int64) *int64 { return &i }

func floatPtr(f float64) *float64 { return &f }

func point(lng, lat float64) *models.Geometry {
	return &models.Geometry{
		Type:        "Point",
		Coordinates: json.RawMessage(fmt.Sprintf("[%g, %g]", lng, lat)),
	}
}

func polygon(coords string) *models.Geometry {
	return &models.Geometry{
		Type:        "Polygon",
		Coordinates: json.RawMessage(coords),
	}
}

// Load seeds the demo dataset: 3 users, 4 regions, 3 locations, 4 inventory
// items, 4 activities, 3 tasks and 4 metrics. A store that already holds
// users is assumed seeded and left untouched.
func Load(ctx context.Context, store repository.Store) error {
	existing, err := store.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("seed: check users: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	users := []models.UserInsert{
		{Username: "admin", Password: "admin123", FullName: "Alex Rivera", Email: "alex.rivera@treeline.local", Role: models.RoleAdmin},
		{Username: "mjohnson", Password: "forest2024", FullName: "Maria Johnson", Email: "maria.johnson@treeline.local", Role: models.RoleManager},
		{Username: "dchen", Password: "ranger42", FullName: "David Chen", Email: "david.chen@treeline.local", Role: models.RoleFieldWorker},
	}
	for i := range users {
		if _, err := store.CreateUser(ctx, &users[i]); err != nil {
			return fmt.Errorf("seed: user %q: %w", users[i].Username, err)
		}
	}

	regions := []models.RegionInsert{
		{Name: "North Ridge", Description: strPtr("Old-growth conifer stands along the northern ridge line"), Coordinates: polygon(`[[[-122.51, 45.62], [-122.44, 45.62], [-122.44, 45.68], [-122.51, 45.68], [-122.51, 45.62]]]`)},
		{Name: "Cedar Valley", Description: strPtr("Mixed cedar and fir valley floor"), Coordinates: polygon(`[[[-122.58, 45.51], [-122.49, 45.51], [-122.49, 45.57], [-122.58, 45.57], [-122.58, 45.51]]]`)},
		{Name: "East Basin", Description: strPtr("Post-fire regeneration zone, replanted 2021"), Coordinates: polygon(`[[[-122.41, 45.49], [-122.33, 45.49], [-122.33, 45.55], [-122.41, 45.55], [-122.41, 45.49]]]`)},
		{Name: "South Meadows", Description: nil, Coordinates: polygon(`[[[-122.56, 45.41], [-122.47, 45.41], [-122.47, 45.46], [-122.56, 45.46], [-122.56, 45.41]]]`)},
	}
	for i := range regions {
		if _, err := store.CreateRegion(ctx, &regions[i]); err != nil {
			return fmt.Errorf("seed: region %q: %w", regions[i].Name, err)
		}
	}

	locations := []models.LocationInsert{
		{RegionID: 1, Name: "Ridge Lookout Stand", Status: models.LocationHealthy, Coordinates: point(-122.47, 45.65)},
		{RegionID: 2, Name: "Cedar Creek Plot 7", Status: models.LocationMonitoring, Coordinates: point(-122.53, 45.54)},
		{RegionID: 3, Name: "Burn Scar Replant A", Status: models.LocationCritical, Coordinates: point(-122.37, 45.52)},
	}
	for i := range locations {
		if _, err := store.CreateLocation(ctx, &locations[i]); err != nil {
			return fmt.Errorf("seed: location %q: %w", locations[i].Name, err)
		}
	}

	inventory := []models.InventoryItemInsert{
		{Type: "plant", Name: "Douglas Fir Saplings", Quantity: 1200, Unit: "units", Status: models.InventoryAvailable},
		{Type: "plant", Name: "Western Red Cedar Saplings", Quantity: 85, Unit: "units", Status: models.InventoryLowSupply},
		{Type: "equipment", Name: "Chainsaw (Stihl MS 261)", Quantity: 4, Unit: "units", Status: models.InventoryMaintenance},
		{Type: "supply", Name: "Mulch", Quantity: 0, Unit: "kg", Status: models.InventoryDepleted},
	}
	for i := range inventory {
		if _, err := store.CreateInventoryItem(ctx, &inventory[i]); err != nil {
			return fmt.Errorf("seed: inventory %q: %w", inventory[i].Name, err)
		}
	}

	activities := []models.ActivityInsert{
		{UserID: 3, Type: "planting", Description: "Planted 150 Douglas fir saplings on the east slope", Location: "Burn Scar Replant A", Team: strPtr("Replant Crew B"), Coordinates: point(-122.37, 45.52)},
		{UserID: 3, Type: "inspection", Description: "Checked bark beetle traps along Cedar Creek", Location: "Cedar Creek Plot 7", Team: nil, Coordinates: point(-122.53, 45.54)},
		{UserID: 2, Type: "maintenance", Description: "Cleared fallen timber from access road", Location: "North Ridge", Team: strPtr("Road Crew"), Coordinates: nil},
		{UserID: 1, Type: "survey", Description: "Annual canopy coverage survey, quadrants 1-4", Location: "Ridge Lookout Stand", Team: nil, Coordinates: point(-122.47, 45.65)},
	}
	for i := range activities {
		if _, err := store.CreateActivity(ctx, &activities[i]); err != nil {
			return fmt.Errorf("seed: activity %d: %w", i+1, err)
		}
	}

	// two upcoming tasks and one already overdue
	tasks := []models.TaskInsert{
		{Title: "Replace beetle traps", Description: strPtr("Swap pheromone lures in traps 3-9"), Location: "Cedar Creek Plot 7", Priority: models.PriorityHigh, Status: models.TaskPending, Category: "pest_control", AssignedTo: intPtr(3), ScheduledDate: time.Now().UTC().Add(48 * time.Hour)},
		{Title: "Water new plantings", Description: nil, Location: "Burn Scar Replant A", Priority: models.PriorityNormal, Status: models.TaskPending, Category: "planting", AssignedTo: intPtr(3), ScheduledDate: time.Now().UTC().Add(96 * time.Hour)},
		{Title: "File Q2 coverage report", Description: strPtr("Submit canopy survey results to the county"), Location: "Field Office", Priority: models.PriorityLow, Status: models.TaskPending, Category: "reporting", AssignedTo: intPtr(2), ScheduledDate: time.Now().UTC().Add(-72 * time.Hour)},
	}
	for i := range tasks {
		if _, err := store.CreateTask(ctx, &tasks[i]); err != nil {
			return fmt.Errorf("seed: task %q: %w", tasks[i].Title, err)
		}
	}

	metrics := []models.MetricInsert{
		{Name: "Canopy Coverage", Value: 68.4, Unit: "%", PreviousValue: floatPtr(66.1), ChangePercentage: floatPtr(3.5), Trend: strPtr(models.TrendUp), Icon: strPtr("tree"), Category: "coverage"},
		{Name: "Species Count", Value: 42, Unit: "species", PreviousValue: floatPtr(42), ChangePercentage: floatPtr(0), Trend: strPtr(models.TrendStable), Icon: strPtr("leaf"), Category: "species"},
		{Name: "Fire Risk Index", Value: 7.2, Unit: "index", PreviousValue: floatPtr(5.9), ChangePercentage: floatPtr(22), Trend: strPtr(models.TrendUp), Icon: strPtr("flame"), Category: "risk"},
		{Name: "Stand Health Score", Value: 81, Unit: "score", PreviousValue: floatPtr(84), ChangePercentage: floatPtr(-3.6), Trend: strPtr(models.TrendDown), Icon: strPtr("heart"), Category: "health"},
	}
	for i := range metrics {
		if _, err := store.CreateMetric(ctx, &metrics[i]); err != nil {
			return fmt.Errorf("seed: metric %q: %w", metrics[i].Name, err)
		}
	}

	return nil
}
