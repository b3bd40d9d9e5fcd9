package models

import (
	"encoding/json"
	"time"
)

// Geometry carries a GeoJSON point or polygon. Coordinates are kept as raw
// JSON: the server stores and returns them verbatim and never computes on
// them.
type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// Role values accepted for User.Role.
const (
	RoleAdmin       = "admin"
	RoleManager     = "manager"
	RoleFieldWorker = "field_worker"
)

type User struct {
	ID           int64   `json:"id"`
	Username     string  `json:"username"`
	Password     string  `json:"password"`
	FullName     string  `json:"fullName"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	ProfileImage *string `json:"profileImage"`
}

// UserInsert is the writable subset of User. ConfirmPassword is accepted on
// the wire for the cross-field check but never persisted.
type UserInsert struct {
	Username        string  `json:"username"`
	Password        string  `json:"password"`
	ConfirmPassword string  `json:"confirmPassword,omitempty"`
	FullName        string  `json:"fullName"`
	Email           string  `json:"email"`
	Role            string  `json:"role"`
	ProfileImage    *string `json:"profileImage,omitempty"`
}

type UserPatch struct {
	Username        *string `json:"username,omitempty"`
	Password        *string `json:"password,omitempty"`
	ConfirmPassword *string `json:"confirmPassword,omitempty"`
	FullName        *string `json:"fullName,omitempty"`
	Email           *string `json:"email,omitempty"`
	Role            *string `json:"role,omitempty"`
	ProfileImage    *string `json:"profileImage,omitempty"`
}

type Region struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Coordinates *Geometry `json:"coordinates"`
}

type RegionInsert struct {
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Coordinates *Geometry `json:"coordinates"`
}

type RegionPatch struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Coordinates *Geometry `json:"coordinates,omitempty"`
}

// Location status values.
const (
	LocationHealthy      = "healthy"
	LocationMonitoring   = "monitoring"
	LocationCritical     = "critical"
	LocationUnclassified = "unclassified"
)

type Location struct {
	ID          int64     `json:"id"`
	RegionID    int64     `json:"regionId"`
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	Coordinates *Geometry `json:"coordinates"`
	LastUpdated time.Time `json:"lastUpdated"`
}

type LocationInsert struct {
	RegionID    int64     `json:"regionId"`
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	Coordinates *Geometry `json:"coordinates"`
}

type LocationPatch struct {
	RegionID    *int64    `json:"regionId,omitempty"`
	Name        *string   `json:"name,omitempty"`
	Status      *string   `json:"status,omitempty"`
	Coordinates *Geometry `json:"coordinates,omitempty"`
}

// Inventory status values.
const (
	InventoryAvailable   = "available"
	InventoryLowSupply   = "low_supply"
	InventoryMaintenance = "maintenance"
	InventoryDepleted    = "depleted"
)

type InventoryItem struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Name        string    `json:"name"`
	Quantity    float64   `json:"quantity"`
	Unit        string    `json:"unit"`
	Status      string    `json:"status"`
	LastUpdated time.Time `json:"lastUpdated"`
}

type InventoryItemInsert struct {
	Type     string  `json:"type"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Status   string  `json:"status"`
}

type InventoryItemPatch struct {
	Type     *string  `json:"type,omitempty"`
	Name     *string  `json:"name,omitempty"`
	Quantity *float64 `json:"quantity,omitempty"`
	Unit     *string  `json:"unit,omitempty"`
	Status   *string  `json:"status,omitempty"`
}

type Activity struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Team        *string   `json:"team"`
	Timestamp   time.Time `json:"timestamp"`
	Coordinates *Geometry `json:"coordinates"`
}

// ActivityInsert has no timestamp field: the storage layer always assigns
// it, ignoring any client value.
type ActivityInsert struct {
	UserID      int64     `json:"userId"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Team        *string   `json:"team,omitempty"`
	Coordinates *Geometry `json:"coordinates,omitempty"`
}

type ActivityPatch struct {
	UserID      *int64    `json:"userId,omitempty"`
	Type        *string   `json:"type,omitempty"`
	Description *string   `json:"description,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Team        *string   `json:"team,omitempty"`
	Coordinates *Geometry `json:"coordinates,omitempty"`
}

// Task priority and status values.
const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"

	TaskPending   = "pending"
	TaskCompleted = "completed"
	TaskCancelled = "cancelled"
)

type Task struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Description   *string    `json:"description"`
	Location      string     `json:"location"`
	Priority      string     `json:"priority"`
	Status        string     `json:"status"`
	Category      string     `json:"category"`
	AssignedTo    *int64     `json:"assignedTo"`
	ScheduledDate time.Time  `json:"scheduledDate"`
	Completed     bool       `json:"completed"`
	CompletedAt   *time.Time `json:"completedAt"`
}

// TaskInsert excludes completed/completedAt: those fields are only
// reachable through the dedicated complete transition.
type TaskInsert struct {
	Title         string    `json:"title"`
	Description   *string   `json:"description,omitempty"`
	Location      string    `json:"location"`
	Priority      string    `json:"priority"`
	Status        string    `json:"status,omitempty"`
	Category      string    `json:"category"`
	AssignedTo    *int64    `json:"assignedTo,omitempty"`
	ScheduledDate time.Time `json:"scheduledDate"`
}

type TaskPatch struct {
	Title         *string    `json:"title,omitempty"`
	Description   *string    `json:"description,omitempty"`
	Location      *string    `json:"location,omitempty"`
	Priority      *string    `json:"priority,omitempty"`
	Status        *string    `json:"status,omitempty"`
	Category      *string    `json:"category,omitempty"`
	AssignedTo    *int64     `json:"assignedTo,omitempty"`
	ScheduledDate *time.Time `json:"scheduledDate,omitempty"`
}

// MetricCategories lists the fixed metric categories in the order the
// latest-per-category query reports them.
var MetricCategories = []string{"coverage", "species", "risk", "health"}

// Trend values.
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

type Metric struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Value            float64   `json:"value"`
	Unit             string    `json:"unit"`
	PreviousValue    *float64  `json:"previousValue"`
	ChangePercentage *float64  `json:"changePercentage"`
	Trend            *string   `json:"trend"`
	Icon             *string   `json:"icon"`
	Category         string    `json:"category"`
	Timestamp        time.Time `json:"timestamp"`
}

type MetricInsert struct {
	Name             string   `json:"name"`
	Value            float64  `json:"value"`
	Unit             string   `json:"unit"`
	PreviousValue    *float64 `json:"previousValue,omitempty"`
	ChangePercentage *float64 `json:"changePercentage,omitempty"`
	Trend            *string  `json:"trend,omitempty"`
	Icon             *string  `json:"icon,omitempty"`
	Category         string   `json:"category"`
}

type MetricPatch struct {
	Name             *string  `json:"name,omitempty"`
	Value            *float64 `json:"value,omitempty"`
	Unit             *string  `json:"unit,omitempty"`
	PreviousValue    *float64 `json:"previousValue,omitempty"`
	ChangePercentage *float64 `json:"changePercentage,omitempty"`
	Trend            *string  `json:"trend,omitempty"`
	Icon             *string  `json:"icon,omitempty"`
	Category         *string  `json:"category,omitempty"`
}
