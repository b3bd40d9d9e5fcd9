// Package mock provides test doubles for the repository contracts.
package mock

import (
	"context"

	"github.com/garnizeh/treeline/pkg/models"
	"github.com/garnizeh/treeline/pkg/repository"
)

// FailingStore implements repository.Store and fails every operation with
// Err. Handler tests use it to exercise the server-error paths.
type FailingStore struct {
	Err error
}

var _ repository.Store = (*FailingStore)(nil)

func (m *FailingStore) CreateUser(ctx context.Context, in *models.UserInsert) (*models.User, error) {
	return nil, m.Err
}

func (m *FailingStore) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return nil, m.Err
}

func (m *FailingStore) ListUsers(ctx context.Context) ([]models.User, error) {
	return nil, m.Err
}

func (m *FailingStore) UpdateUser(ctx context.Context, id int64, patch *models.UserPatch) (*models.User, error) {
	return nil, m.Err
}

func (m *FailingStore) DeleteUser(ctx context.Context, id int64) (bool, error) {
	return false, m.Err
}

func (m *FailingStore) CreateRegion(ctx context.Context, in *models.RegionInsert) (*models.Region, error) {
	return nil, m.Err
}

func (m *FailingStore) GetRegion(ctx context.Context, id int64) (*models.Region, error) {
	return nil, m.Err
}

func (m *FailingStore) ListRegions(ctx context.Context) ([]models.Region, error) {
	return nil, m.Err
}

func (m *FailingStore) UpdateRegion(ctx context.Context, id int64, patch *models.RegionPatch) (*models.Region, error) {
	return nil, m.Err
}

func (m *FailingStore) DeleteRegion(ctx context.Context, id int64) (bool, error) {
	return false, m.Err
}

func (m *FailingStore) CreateLocation(ctx context.Context, in *models.LocationInsert) (*models.Location, error) {
	return nil, m.Err
}

func (m *FailingStore) GetLocation(ctx context.Context, id int64) (*models.Location, error) {
	return nil, m.Err
}

func (m *FailingStore) ListLocations(ctx context.Context) ([]models.Location, error) {
	return nil, m.Err
}

func (m *FailingStore) ListLocationsByRegion(ctx context.Context, regionID int64) ([]models.Location, error) {
	return nil, m.Err
}

func (m *FailingStore) UpdateLocation(ctx context.Context, id int64, patch *models.LocationPatch) (*models.Location, error) {
	return nil, m.Err
}

func (m *FailingStore) DeleteLocation(ctx context.Context, id int64) (bool, error) {
	return false, m.Err
}

func (m *FailingStore) CreateInventoryItem(ctx context.Context, in *models.InventoryItemInsert) (*models.InventoryItem, error) {
	return nil, m.Err
}

func (m *FailingStore) GetInventoryItem(ctx context.Context, id int64) (*models.InventoryItem, error) {
	return nil, m.Err
}

func (m *FailingStore) ListInventoryItems(ctx context.Context) ([]models.InventoryItem, error) {
	return nil, m.Err
}

func (m *FailingStore) UpdateInventoryItem(ctx context.Context, id int64, patch *models.InventoryItemPatch) (*models.InventoryItem, error) {
	return nil, m.Err
}

func (m *FailingStore) DeleteInventoryItem(ctx context.Context, id int64) (bool, error) {
	return false, m.Err
}

func (m *FailingStore) CreateActivity(ctx context.Context, in *models.ActivityInsert) (*models.Activity, error) {
	return nil, m.Err
}

func (m *FailingStore) GetActivity(ctx context.Context, id int64) (*models.Activity, error) {
	return nil, m.Err
}

func (m *FailingStore) ListActivities(ctx context.Context) ([]models.Activity, error) {
	return nil, m.Err
}

func (m *FailingStore) ListRecentActivities(ctx context.Context, limit int) ([]models.Activity, error) {
	return nil, m.Err
}

func (m *FailingStore) UpdateActivity(ctx context.Context, id int64, patch *models.ActivityPatch) (*models.Activity, error) {
	return nil, m.Err
}

func (m *FailingStore) DeleteActivity(ctx context.Context, id int64) (bool, error) {
	return false, m.Err
}

func (m *FailingStore) CreateTask(ctx context.Context, in *models.TaskInsert) (*models.Task, error) {
	return nil, m.Err
}

func (m *FailingStore) GetTask(ctx context.Context, id int64) (*models.Task, error) {
	return nil, m.Err
}

func (m *FailingStore) ListTasks(ctx context.Context) ([]models.Task, error) {
	return nil, m.Err
}

func (m *FailingStore) ListUpcomingTasks(ctx context.Context, limit int) ([]models.Task, error) {
	return nil, m.Err
}

func (m *FailingStore) UpdateTask(ctx context.Context, id int64, patch *models.TaskPatch) (*models.Task, error) {
	return nil, m.Err
}

func (m *FailingStore) CompleteTask(ctx context.Context, id int64) (*models.Task, error) {
	return nil, m.Err
}

func (m *FailingStore) DeleteTask(ctx context.Context, id int64) (bool, error) {
	return false, m.Err
}

func (m *FailingStore) CreateMetric(ctx context.Context, in *models.MetricInsert) (*models.Metric, error) {
	return nil, m.Err
}

func (m *FailingStore) GetMetric(ctx context.Context, id int64) (*models.Metric, error) {
	return nil, m.Err
}

func (m *FailingStore) ListMetrics(ctx context.Context) ([]models.Metric, error) {
	return nil, m.Err
}

func (m *FailingStore) ListLatestMetrics(ctx context.Context) ([]models.Metric, error) {
	return nil, m.Err
}

func (m *FailingStore) UpdateMetric(ctx context.Context, id int64, patch *models.MetricPatch) (*models.Metric, error) {
	return nil, m.Err
}

func (m *FailingStore) DeleteMetric(ctx context.Context, id int64) (bool, error) {
	return false, m.Err
}
