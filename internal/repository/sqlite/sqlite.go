// Package sqlite implements the repository contracts on SQLite, giving the
// API a durable backend behind the same interface as the in-memory engine.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/garnizeh/treeline/internal/db"
	"github.com/garnizeh/treeline/pkg/models"
	"github.com/garnizeh/treeline/pkg/repository"
)

// SQLiteRepo implements repository.Store using the internal DB wrapper.
type SQLiteRepo struct {
	conn   *db.DB
	logger *slog.Logger
}

// Ensure SQLiteRepo implements the public interfaces.
var _ repository.UserRepo = (*SQLiteRepo)(nil)
var _ repository.RegionRepo = (*SQLiteRepo)(nil)
var _ repository.LocationRepo = (*SQLiteRepo)(nil)
var _ repository.InventoryRepo = (*SQLiteRepo)(nil)
var _ repository.ActivityRepo = (*SQLiteRepo)(nil)
var _ repository.TaskRepo = (*SQLiteRepo)(nil)
var _ repository.MetricRepo = (*SQLiteRepo)(nil)
var _ repository.Store = (*SQLiteRepo)(nil)

func New(conn *db.DB, logger *slog.Logger) *SQLiteRepo {
	if logger == nil {
		logger = slog.Default()
	}
	return &SQLiteRepo{conn: conn, logger: logger}
}

func now() int64 {
	return time.Now().UTC().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// geomText marshals a geometry for storage; nil maps to SQL NULL.
func geomText(g *models.Geometry) (sql.NullString, error) {
	if g == nil {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(g)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("marshal geometry: %w", err)
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

func geomFromText(ns sql.NullString) (*models.Geometry, error) {
	if !ns.Valid {
		return nil, nil
	}
	var g models.Geometry
	if err := json.Unmarshal([]byte(ns.String), &g); err != nil {
		return nil, fmt.Errorf("unmarshal geometry: %w", err)
	}
	return &g, nil
}

func nullStr(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

func strFromNull(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func nullInt(p *int64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *p, Valid: true}
}

func intFromNull(ni sql.NullInt64) *int64 {
	if !ni.Valid {
		return nil
	}
	v := ni.Int64
	return &v
}

func nullFloat(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}

func floatFromNull(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	v := nf.Float64
	return &v
}
