package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/garnizeh/treeline/pkg/models"
)

func (r *SQLiteRepo) CreateMetric(ctx context.Context, in *models.MetricInsert) (*models.Metric, error) {
	if in == nil {
		return nil, fmt.Errorf("metric insert is nil")
	}

	res, err := r.conn.Exec(ctx,
		`INSERT INTO metrics (name, value, unit, previous_value, change_percentage, trend, icon, category, timestamp) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.Name, in.Value, in.Unit, nullFloat(in.PreviousValue), nullFloat(in.ChangePercentage), nullStr(in.Trend), nullStr(in.Icon), in.Category, now())
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.GetMetric(ctx, id)
}

func (r *SQLiteRepo) GetMetric(ctx context.Context, id int64) (*models.Metric, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, name, value, unit, previous_value, change_percentage, trend, icon, category, timestamp FROM metrics WHERE id = ?`, id)
	m, err := scanMetric(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (r *SQLiteRepo) ListMetrics(ctx context.Context) ([]models.Metric, error) {
	rows, err := r.conn.Query(ctx, `SELECT id, name, value, unit, previous_value, change_percentage, trend, icon, category, timestamp FROM metrics ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Metric{}
	for rows.Next() {
		m, err := scanMetric(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}

	return out, rows.Err()
}

// ListLatestMetrics issues one most-recent lookup per fixed category so the
// result follows models.MetricCategories order, not arrival order.
func (r *SQLiteRepo) ListLatestMetrics(ctx context.Context) ([]models.Metric, error) {
	out := []models.Metric{}
	for _, cat := range models.MetricCategories {
		row := r.conn.QueryRow(ctx,
			`SELECT id, name, value, unit, previous_value, change_percentage, trend, icon, category, timestamp FROM metrics WHERE category = ? ORDER BY timestamp DESC, id DESC LIMIT 1`, cat)
		m, err := scanMetric(row.Scan)
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}

	return out, nil
}

func (r *SQLiteRepo) UpdateMetric(ctx context.Context, id int64, patch *models.MetricPatch) (*models.Metric, error) {
	if patch == nil {
		return nil, fmt.Errorf("metric patch is nil")
	}

	m, err := r.GetMetric(ctx, id)
	if err != nil || m == nil {
		return nil, err
	}

	if patch.Name != nil {
		m.Name = *patch.Name
	}
	if patch.Value != nil {
		m.Value = *patch.Value
	}
	if patch.Unit != nil {
		m.Unit = *patch.Unit
	}
	if patch.PreviousValue != nil {
		m.PreviousValue = patch.PreviousValue
	}
	if patch.ChangePercentage != nil {
		m.ChangePercentage = patch.ChangePercentage
	}
	if patch.Trend != nil {
		m.Trend = patch.Trend
	}
	if patch.Icon != nil {
		m.Icon = patch.Icon
	}
	if patch.Category != nil {
		m.Category = *patch.Category
	}

	_, err = r.conn.Exec(ctx,
		`UPDATE metrics SET name = ?, value = ?, unit = ?, previous_value = ?, change_percentage = ?, trend = ?, icon = ?, category = ? WHERE id = ?`,
		m.Name, m.Value, m.Unit, nullFloat(m.PreviousValue), nullFloat(m.ChangePercentage), nullStr(m.Trend), nullStr(m.Icon), m.Category, id)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (r *SQLiteRepo) DeleteMetric(ctx context.Context, id int64) (bool, error) {
	res, err := r.conn.Exec(ctx, `DELETE FROM metrics WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func scanMetric(scan func(...any) error) (*models.Metric, error) {
	var m models.Metric
	var prev, change sql.NullFloat64
	var trend, icon sql.NullString
	var ts int64
	if err := scan(&m.ID, &m.Name, &m.Value, &m.Unit, &prev, &change, &trend, &icon, &m.Category, &ts); err != nil {
		return nil, err
	}
	m.PreviousValue = floatFromNull(prev)
	m.ChangePercentage = floatFromNull(change)
	m.Trend = strFromNull(trend)
	m.Icon = strFromNull(icon)
	m.Timestamp = fromMillis(ts)
	return &m, nil
}
