package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/garnizeh/treeline/pkg/models"
)

func (r *SQLiteRepo) CreateRegion(ctx context.Context, in *models.RegionInsert) (*models.Region, error) {
	if in == nil {
		return nil, fmt.Errorf("region insert is nil")
	}

	coords, err := geomText(in.Coordinates)
	if err != nil {
		return nil, err
	}

	res, err := r.conn.Exec(ctx,
		`INSERT INTO regions (name, description, coordinates) VALUES (?, ?, ?)`,
		in.Name, nullStr(in.Description), coords)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.GetRegion(ctx, id)
}

func (r *SQLiteRepo) GetRegion(ctx context.Context, id int64) (*models.Region, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, name, description, coordinates FROM regions WHERE id = ?`, id)
	reg, err := scanRegion(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return reg, nil
}

func (r *SQLiteRepo) ListRegions(ctx context.Context) ([]models.Region, error) {
	rows, err := r.conn.Query(ctx, `SELECT id, name, description, coordinates FROM regions ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Region{}
	for rows.Next() {
		reg, err := scanRegion(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *reg)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) UpdateRegion(ctx context.Context, id int64, patch *models.RegionPatch) (*models.Region, error) {
	if patch == nil {
		return nil, fmt.Errorf("region patch is nil")
	}

	reg, err := r.GetRegion(ctx, id)
	if err != nil || reg == nil {
		return nil, err
	}

	if patch.Name != nil {
		reg.Name = *patch.Name
	}
	if patch.Description != nil {
		reg.Description = patch.Description
	}
	if patch.Coordinates != nil {
		reg.Coordinates = patch.Coordinates
	}

	coords, err := geomText(reg.Coordinates)
	if err != nil {
		return nil, err
	}
	_, err = r.conn.Exec(ctx,
		`UPDATE regions SET name = ?, description = ?, coordinates = ? WHERE id = ?`,
		reg.Name, nullStr(reg.Description), coords, id)
	if err != nil {
		return nil, err
	}

	return reg, nil
}

func (r *SQLiteRepo) DeleteRegion(ctx context.Context, id int64) (bool, error) {
	res, err := r.conn.Exec(ctx, `DELETE FROM regions WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func scanRegion(scan func(...any) error) (*models.Region, error) {
	var reg models.Region
	var desc, coords sql.NullString
	if err := scan(&reg.ID, &reg.Name, &desc, &coords); err != nil {
		return nil, err
	}
	reg.Description = strFromNull(desc)
	g, err := geomFromText(coords)
	if err != nil {
		return nil, err
	}
	reg.Coordinates = g
	return &reg, nil
}
