package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/garnizeh/treeline/pkg/models"
)

func (r *SQLiteRepo) CreateLocation(ctx context.Context, in *models.LocationInsert) (*models.Location, error) {
	if in == nil {
		return nil, fmt.Errorf("location insert is nil")
	}

	coords, err := geomText(in.Coordinates)
	if err != nil {
		return nil, err
	}

	res, err := r.conn.Exec(ctx,
		`INSERT INTO locations (region_id, name, status, coordinates, last_updated) VALUES (?, ?, ?, ?, ?)`,
		in.RegionID, in.Name, in.Status, coords, now())
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.GetLocation(ctx, id)
}

func (r *SQLiteRepo) GetLocation(ctx context.Context, id int64) (*models.Location, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, region_id, name, status, coordinates, last_updated FROM locations WHERE id = ?`, id)
	l, err := scanLocation(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return l, nil
}

func (r *SQLiteRepo) ListLocations(ctx context.Context) ([]models.Location, error) {
	return r.listLocations(ctx, `SELECT id, region_id, name, status, coordinates, last_updated FROM locations ORDER BY id`)
}

func (r *SQLiteRepo) ListLocationsByRegion(ctx context.Context, regionID int64) ([]models.Location, error) {
	return r.listLocations(ctx, `SELECT id, region_id, name, status, coordinates, last_updated FROM locations WHERE region_id = ? ORDER BY id`, regionID)
}

func (r *SQLiteRepo) listLocations(ctx context.Context, query string, args ...any) ([]models.Location, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Location{}
	for rows.Next() {
		l, err := scanLocation(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *l)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) UpdateLocation(ctx context.Context, id int64, patch *models.LocationPatch) (*models.Location, error) {
	if patch == nil {
		return nil, fmt.Errorf("location patch is nil")
	}

	l, err := r.GetLocation(ctx, id)
	if err != nil || l == nil {
		return nil, err
	}

	if patch.RegionID != nil {
		l.RegionID = *patch.RegionID
	}
	if patch.Name != nil {
		l.Name = *patch.Name
	}
	if patch.Status != nil {
		l.Status = *patch.Status
	}
	if patch.Coordinates != nil {
		l.Coordinates = patch.Coordinates
	}
	l.LastUpdated = fromMillis(now())

	coords, err := geomText(l.Coordinates)
	if err != nil {
		return nil, err
	}
	_, err = r.conn.Exec(ctx,
		`UPDATE locations SET region_id = ?, name = ?, status = ?, coordinates = ?, last_updated = ? WHERE id = ?`,
		l.RegionID, l.Name, l.Status, coords, l.LastUpdated.UnixMilli(), id)
	if err != nil {
		return nil, err
	}

	return l, nil
}

func (r *SQLiteRepo) DeleteLocation(ctx context.Context, id int64) (bool, error) {
	res, err := r.conn.Exec(ctx, `DELETE FROM locations WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func scanLocation(scan func(...any) error) (*models.Location, error) {
	var l models.Location
	var coords sql.NullString
	var updated int64
	if err := scan(&l.ID, &l.RegionID, &l.Name, &l.Status, &coords, &updated); err != nil {
		return nil, err
	}
	g, err := geomFromText(coords)
	if err != nil {
		return nil, err
	}
	l.Coordinates = g
	l.LastUpdated = fromMillis(updated)
	return &l, nil
}
