package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/garnizeh/treeline/pkg/models"
)

func (r *SQLiteRepo) CreateTask(ctx context.Context, in *models.TaskInsert) (*models.Task, error) {
	if in == nil {
		return nil, fmt.Errorf("task insert is nil")
	}

	status := in.Status
	if status == "" {
		status = models.TaskPending
	}

	res, err := r.conn.Exec(ctx,
		`INSERT INTO tasks (title, description, location, priority, status, category, assigned_to, scheduled_date, completed, completed_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0, NULL)`,
		in.Title, nullStr(in.Description), in.Location, in.Priority, status, in.Category, nullInt(in.AssignedTo), in.ScheduledDate.UTC().UnixMilli())
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.GetTask(ctx, id)
}

func (r *SQLiteRepo) GetTask(ctx context.Context, id int64) (*models.Task, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, title, description, location, priority, status, category, assigned_to, scheduled_date, completed, completed_at FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return t, nil
}

func (r *SQLiteRepo) ListTasks(ctx context.Context) ([]models.Task, error) {
	return r.listTasks(ctx, `SELECT id, title, description, location, priority, status, category, assigned_to, scheduled_date, completed, completed_at FROM tasks ORDER BY id`)
}

func (r *SQLiteRepo) ListUpcomingTasks(ctx context.Context, limit int) ([]models.Task, error) {
	q := `SELECT id, title, description, location, priority, status, category, assigned_to, scheduled_date, completed, completed_at FROM tasks WHERE completed = 0 AND scheduled_date > ? ORDER BY scheduled_date, id`
	if limit > 0 {
		return r.listTasks(ctx, q+` LIMIT ?`, now(), limit)
	}
	return r.listTasks(ctx, q, now())
}

func (r *SQLiteRepo) listTasks(ctx context.Context, query string, args ...any) ([]models.Task, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Task{}
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) UpdateTask(ctx context.Context, id int64, patch *models.TaskPatch) (*models.Task, error) {
	if patch == nil {
		return nil, fmt.Errorf("task patch is nil")
	}

	t, err := r.GetTask(ctx, id)
	if err != nil || t == nil {
		return nil, err
	}

	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = patch.Description
	}
	if patch.Location != nil {
		t.Location = *patch.Location
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.Category != nil {
		t.Category = *patch.Category
	}
	if patch.AssignedTo != nil {
		t.AssignedTo = patch.AssignedTo
	}
	if patch.ScheduledDate != nil {
		t.ScheduledDate = patch.ScheduledDate.UTC()
	}

	_, err = r.conn.Exec(ctx,
		`UPDATE tasks SET title = ?, description = ?, location = ?, priority = ?, status = ?, category = ?, assigned_to = ?, scheduled_date = ? WHERE id = ?`,
		t.Title, nullStr(t.Description), t.Location, t.Priority, t.Status, t.Category, nullInt(t.AssignedTo), t.ScheduledDate.UnixMilli(), id)
	if err != nil {
		return nil, err
	}

	return t, nil
}

func (r *SQLiteRepo) CompleteTask(ctx context.Context, id int64) (*models.Task, error) {
	// RowsAffected distinguishes missing ids; the update itself is
	// unconditional so repeat completion refreshes completed_at
	res, err := r.conn.Exec(ctx,
		`UPDATE tasks SET completed = 1, status = ?, completed_at = ? WHERE id = ?`,
		models.TaskCompleted, now(), id)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	return r.GetTask(ctx, id)
}

func (r *SQLiteRepo) DeleteTask(ctx context.Context, id int64) (bool, error) {
	res, err := r.conn.Exec(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func scanTask(scan func(...any) error) (*models.Task, error) {
	var t models.Task
	var desc sql.NullString
	var assigned sql.NullInt64
	var scheduled int64
	var completed int
	var completedAt sql.NullInt64
	if err := scan(&t.ID, &t.Title, &desc, &t.Location, &t.Priority, &t.Status, &t.Category, &assigned, &scheduled, &completed, &completedAt); err != nil {
		return nil, err
	}
	t.Description = strFromNull(desc)
	t.AssignedTo = intFromNull(assigned)
	t.ScheduledDate = fromMillis(scheduled)
	t.Completed = completed != 0
	if completedAt.Valid {
		ts := fromMillis(completedAt.Int64)
		t.CompletedAt = &ts
	}
	return &t, nil
}
