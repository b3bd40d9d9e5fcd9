package repository

import (
	"context"

	"github.com/garnizeh/treeline/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.
//
// Get and Update return (nil, nil) when the id has no record: absence is a
// normal outcome, not an error. Delete reports whether a record existed and
// was removed. Create assigns the id and any server-set fields and returns
// the full stored record.

type UserRepo interface {
	CreateUser(ctx context.Context, in *models.UserInsert) (*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id int64, patch *models.UserPatch) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) (bool, error)
}

type RegionRepo interface {
	CreateRegion(ctx context.Context, in *models.RegionInsert) (*models.Region, error)
	GetRegion(ctx context.Context, id int64) (*models.Region, error)
	ListRegions(ctx context.Context) ([]models.Region, error)
	UpdateRegion(ctx context.Context, id int64, patch *models.RegionPatch) (*models.Region, error)
	DeleteRegion(ctx context.Context, id int64) (bool, error)
}

type LocationRepo interface {
	CreateLocation(ctx context.Context, in *models.LocationInsert) (*models.Location, error)
	GetLocation(ctx context.Context, id int64) (*models.Location, error)
	ListLocations(ctx context.Context) ([]models.Location, error)
	// ListLocationsByRegion filters on regionId equality; an unknown region
	// yields an empty list, never an error.
	ListLocationsByRegion(ctx context.Context, regionID int64) ([]models.Location, error)
	UpdateLocation(ctx context.Context, id int64, patch *models.LocationPatch) (*models.Location, error)
	DeleteLocation(ctx context.Context, id int64) (bool, error)
}

type InventoryRepo interface {
	CreateInventoryItem(ctx context.Context, in *models.InventoryItemInsert) (*models.InventoryItem, error)
	GetInventoryItem(ctx context.Context, id int64) (*models.InventoryItem, error)
	ListInventoryItems(ctx context.Context) ([]models.InventoryItem, error)
	UpdateInventoryItem(ctx context.Context, id int64, patch *models.InventoryItemPatch) (*models.InventoryItem, error)
	DeleteInventoryItem(ctx context.Context, id int64) (bool, error)
}

type ActivityRepo interface {
	CreateActivity(ctx context.Context, in *models.ActivityInsert) (*models.Activity, error)
	GetActivity(ctx context.Context, id int64) (*models.Activity, error)
	ListActivities(ctx context.Context) ([]models.Activity, error)
	// ListRecentActivities returns activities newest-first by timestamp,
	// truncated to limit.
	ListRecentActivities(ctx context.Context, limit int) ([]models.Activity, error)
	UpdateActivity(ctx context.Context, id int64, patch *models.ActivityPatch) (*models.Activity, error)
	DeleteActivity(ctx context.Context, id int64) (bool, error)
}

type TaskRepo interface {
	CreateTask(ctx context.Context, in *models.TaskInsert) (*models.Task, error)
	GetTask(ctx context.Context, id int64) (*models.Task, error)
	ListTasks(ctx context.Context) ([]models.Task, error)
	// ListUpcomingTasks returns incomplete tasks scheduled strictly in the
	// future, ascending by scheduledDate, truncated to limit.
	ListUpcomingTasks(ctx context.Context, limit int) ([]models.Task, error)
	UpdateTask(ctx context.Context, id int64, patch *models.TaskPatch) (*models.Task, error)
	// CompleteTask sets completed, status and completedAt. Completing an
	// already-completed task overwrites completedAt with the current time.
	CompleteTask(ctx context.Context, id int64) (*models.Task, error)
	DeleteTask(ctx context.Context, id int64) (bool, error)
}

type MetricRepo interface {
	CreateMetric(ctx context.Context, in *models.MetricInsert) (*models.Metric, error)
	GetMetric(ctx context.Context, id int64) (*models.Metric, error)
	ListMetrics(ctx context.Context) ([]models.Metric, error)
	// ListLatestMetrics returns at most one metric per fixed category, the
	// most recent by timestamp, in models.MetricCategories order.
	ListLatestMetrics(ctx context.Context) ([]models.Metric, error)
	UpdateMetric(ctx context.Context, id int64, patch *models.MetricPatch) (*models.Metric, error)
	DeleteMetric(ctx context.Context, id int64) (bool, error)
}

// Store aggregates every entity repository. The API layer takes a Store so
// a single backend instance can be injected at startup and swapped in tests.
type Store interface {
	UserRepo
	RegionRepo
	LocationRepo
	InventoryRepo
	ActivityRepo
	TaskRepo
	MetricRepo
}
