package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/garnizeh/treeline/pkg/models"
)

func (r *SQLiteRepo) CreateActivity(ctx context.Context, in *models.ActivityInsert) (*models.Activity, error) {
	if in == nil {
		return nil, fmt.Errorf("activity insert is nil")
	}

	coords, err := geomText(in.Coordinates)
	if err != nil {
		return nil, err
	}

	res, err := r.conn.Exec(ctx,
		`INSERT INTO activities (user_id, type, description, location, team, timestamp, coordinates) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		in.UserID, in.Type, in.Description, in.Location, nullStr(in.Team), now(), coords)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.GetActivity(ctx, id)
}

func (r *SQLiteRepo) GetActivity(ctx context.Context, id int64) (*models.Activity, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, user_id, type, description, location, team, timestamp, coordinates FROM activities WHERE id = ?`, id)
	a, err := scanActivity(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return a, nil
}

func (r *SQLiteRepo) ListActivities(ctx context.Context) ([]models.Activity, error) {
	return r.listActivities(ctx, `SELECT id, user_id, type, description, location, team, timestamp, coordinates FROM activities ORDER BY id`)
}

func (r *SQLiteRepo) ListRecentActivities(ctx context.Context, limit int) ([]models.Activity, error) {
	q := `SELECT id, user_id, type, description, location, team, timestamp, coordinates FROM activities ORDER BY timestamp DESC, id DESC`
	if limit > 0 {
		return r.listActivities(ctx, q+` LIMIT ?`, limit)
	}
	return r.listActivities(ctx, q)
}

func (r *SQLiteRepo) listActivities(ctx context.Context, query string, args ...any) ([]models.Activity, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Activity{}
	for rows.Next() {
		a, err := scanActivity(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) UpdateActivity(ctx context.Context, id int64, patch *models.ActivityPatch) (*models.Activity, error) {
	if patch == nil {
		return nil, fmt.Errorf("activity patch is nil")
	}

	a, err := r.GetActivity(ctx, id)
	if err != nil || a == nil {
		return nil, err
	}

	if patch.UserID != nil {
		a.UserID = *patch.UserID
	}
	if patch.Type != nil {
		a.Type = *patch.Type
	}
	if patch.Description != nil {
		a.Description = *patch.Description
	}
	if patch.Location != nil {
		a.Location = *patch.Location
	}
	if patch.Team != nil {
		a.Team = patch.Team
	}
	if patch.Coordinates != nil {
		a.Coordinates = patch.Coordinates
	}

	coords, err := geomText(a.Coordinates)
	if err != nil {
		return nil, err
	}
	_, err = r.conn.Exec(ctx,
		`UPDATE activities SET user_id = ?, type = ?, description = ?, location = ?, team = ?, coordinates = ? WHERE id = ?`,
		a.UserID, a.Type, a.Description, a.Location, nullStr(a.Team), coords, id)
	if err != nil {
		return nil, err
	}

	return a, nil
}

func (r *SQLiteRepo) DeleteActivity(ctx context.Context, id int64) (bool, error) {
	res, err := r.conn.Exec(ctx, `DELETE FROM activities WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func scanActivity(scan func(...any) error) (*models.Activity, error) {
	var a models.Activity
	var team, coords sql.NullString
	var ts int64
	if err := scan(&a.ID, &a.UserID, &a.Type, &a.Description, &a.Location, &team, &ts, &coords); err != nil {
		return nil, err
	}
	a.Team = strFromNull(team)
	a.Timestamp = fromMillis(ts)
	g, err := geomFromText(coords)
	if err != nil {
		return nil, err
	}
	a.Coordinates = g
	return &a, nil
}
