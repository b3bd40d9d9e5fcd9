package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/garnizeh/treeline/pkg/models"
)

func (r *SQLiteRepo) CreateInventoryItem(ctx context.Context, in *models.InventoryItemInsert) (*models.InventoryItem, error) {
	if in == nil {
		return nil, fmt.Errorf("inventory insert is nil")
	}

	res, err := r.conn.Exec(ctx,
		`INSERT INTO inventory_items (type, name, quantity, unit, status, last_updated) VALUES (?, ?, ?, ?, ?, ?)`,
		in.Type, in.Name, in.Quantity, in.Unit, in.Status, now())
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.GetInventoryItem(ctx, id)
}

func (r *SQLiteRepo) GetInventoryItem(ctx context.Context, id int64) (*models.InventoryItem, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, type, name, quantity, unit, status, last_updated FROM inventory_items WHERE id = ?`, id)
	it, err := scanInventoryItem(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return it, nil
}

func (r *SQLiteRepo) ListInventoryItems(ctx context.Context) ([]models.InventoryItem, error) {
	rows, err := r.conn.Query(ctx, `SELECT id, type, name, quantity, unit, status, last_updated FROM inventory_items ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.InventoryItem{}
	for rows.Next() {
		it, err := scanInventoryItem(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *it)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) UpdateInventoryItem(ctx context.Context, id int64, patch *models.InventoryItemPatch) (*models.InventoryItem, error) {
	if patch == nil {
		return nil, fmt.Errorf("inventory patch is nil")
	}

	it, err := r.GetInventoryItem(ctx, id)
	if err != nil || it == nil {
		return nil, err
	}

	if patch.Type != nil {
		it.Type = *patch.Type
	}
	if patch.Name != nil {
		it.Name = *patch.Name
	}
	if patch.Quantity != nil {
		it.Quantity = *patch.Quantity
	}
	if patch.Unit != nil {
		it.Unit = *patch.Unit
	}
	if patch.Status != nil {
		it.Status = *patch.Status
	}
	it.LastUpdated = fromMillis(now())

	_, err = r.conn.Exec(ctx,
		`UPDATE inventory_items SET type = ?, name = ?, quantity = ?, unit = ?, status = ?, last_updated = ? WHERE id = ?`,
		it.Type, it.Name, it.Quantity, it.Unit, it.Status, it.LastUpdated.UnixMilli(), id)
	if err != nil {
		return nil, err
	}

	return it, nil
}

func (r *SQLiteRepo) DeleteInventoryItem(ctx context.Context, id int64) (bool, error) {
	res, err := r.conn.Exec(ctx, `DELETE FROM inventory_items WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func scanInventoryItem(scan func(...any) error) (*models.InventoryItem, error) {
	var it models.InventoryItem
	var updated int64
	if err := scan(&it.ID, &it.Type, &it.Name, &it.Quantity, &it.Unit, &it.Status, &updated); err != nil {
		return nil, err
	}
	it.LastUpdated = fromMillis(updated)
	return &it, nil
}
