package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/garnizeh/treeline/pkg/models"
)

func (r *SQLiteRepo) CreateUser(ctx context.Context, in *models.UserInsert) (*models.User, error) {
	if in == nil {
		return nil, fmt.Errorf("user insert is nil")
	}

	res, err := r.conn.Exec(ctx,
		`INSERT INTO users (username, password, full_name, email, role, profile_image) VALUES (?, ?, ?, ?, ?, ?)`,
		in.Username, in.Password, in.FullName, in.Email, in.Role, nullStr(in.ProfileImage))
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.GetUser(ctx, id)
}

func (r *SQLiteRepo) GetUser(ctx context.Context, id int64) (*models.User, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, username, password, full_name, email, role, profile_image FROM users WHERE id = ?`, id)
	u, err := scanUser(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (r *SQLiteRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := r.conn.Query(ctx, `SELECT id, username, password, full_name, email, role, profile_image FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *u)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) UpdateUser(ctx context.Context, id int64, patch *models.UserPatch) (*models.User, error) {
	if patch == nil {
		return nil, fmt.Errorf("user patch is nil")
	}

	u, err := r.GetUser(ctx, id)
	if err != nil || u == nil {
		return nil, err
	}

	if patch.Username != nil {
		u.Username = *patch.Username
	}
	if patch.Password != nil {
		u.Password = *patch.Password
	}
	if patch.FullName != nil {
		u.FullName = *patch.FullName
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	if patch.ProfileImage != nil {
		u.ProfileImage = patch.ProfileImage
	}

	_, err = r.conn.Exec(ctx,
		`UPDATE users SET username = ?, password = ?, full_name = ?, email = ?, role = ?, profile_image = ? WHERE id = ?`,
		u.Username, u.Password, u.FullName, u.Email, u.Role, nullStr(u.ProfileImage), id)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (r *SQLiteRepo) DeleteUser(ctx context.Context, id int64) (bool, error) {
	res, err := r.conn.Exec(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

func scanUser(scan func(...any) error) (*models.User, error) {
	var u models.User
	var img sql.NullString
	if err := scan(&u.ID, &u.Username, &u.Password, &u.FullName, &u.Email, &u.Role, &img); err != nil {
		return nil, err
	}
	u.ProfileImage = strFromNull(img)
	return &u, nil
}
