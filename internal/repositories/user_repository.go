package repositories

import (
	"context"
	"database/sql"

	"luggagebill/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB { return dbOrDefault(r.DB) }

const userColumns = `id, username, email, password_hash, is_staff, is_superuser, is_active, created, updated`

func scanUser(row interface{ Scan(...any) error }) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsStaff, &u.IsSuperuser, &u.IsActive, &u.Created, &u.Updated)
	return u, err
}

func (r UserRepository) List(ctx context.Context, f ListFilter) ([]models.User, error) {
	db := r.db()
	if db == nil {
		return nil, errNoDB
	}
	var w whereBuilder
	w.search(f, "username", "email")
	q := `SELECT ` + userColumns + ` FROM users` + w.sql() + ` ORDER BY username ASC, id ASC` + w.page(f.Page)

	rows, err := db.QueryContext(ctx, q, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r UserRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	db := r.db()
	if db == nil {
		return models.User{}, errNoDB
	}
	u, err := scanUser(db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id=? LIMIT 1`, id))
	if err != nil {
		return models.User{}, readErr("user", err)
	}
	return u, nil
}

func (r UserRepository) GetByUsername(ctx context.Context, username string) (models.User, error) {
	db := r.db()
	if db == nil {
		return models.User{}, errNoDB
	}
	u, err := scanUser(db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username=? LIMIT 1`, username))
	if err != nil {
		return models.User{}, readErr("user", err)
	}
	return u, nil
}

// Create stores a user; PasswordHash must already be hashed.
func (r UserRepository) Create(ctx context.Context, u models.User) (models.User, error) {
	db := r.db()
	if db == nil {
		return u, errNoDB
	}
	ts := now()
	res, err := db.ExecContext(ctx, `
		INSERT INTO users (username, email, password_hash, is_staff, is_superuser, is_active, created, updated)
		VALUES (?,?,?,?,?,?,?,?)`,
		u.Username, u.Email, u.PasswordHash, u.IsStaff, u.IsSuperuser, u.IsActive, ts, ts)
	if err != nil {
		return u, writeErr("user", err)
	}
	u.ID, _ = res.LastInsertId()
	u.Created, u.Updated = ts, ts
	return u, nil
}

// Update writes profile and flags. An empty PasswordHash keeps the stored one.
func (r UserRepository) Update(ctx context.Context, u models.User) (models.User, error) {
	db := r.db()
	if db == nil {
		return u, errNoDB
	}
	ts := now()
	res, err := db.ExecContext(ctx, `
		UPDATE users
		SET username=?, email=?, password_hash=COALESCE(NULLIF(?, ''), password_hash),
			is_staff=?, is_superuser=?, is_active=?, updated=?
		WHERE id=?`,
		u.Username, u.Email, u.PasswordHash, u.IsStaff, u.IsSuperuser, u.IsActive, ts, u.ID)
	if err != nil {
		return u, writeErr("user", err)
	}
	if err := affectedOrNotFound("user", res); err != nil {
		return u, err
	}
	u.Updated = ts
	return u, nil
}

func (r UserRepository) Delete(ctx context.Context, id int64) error {
	db := r.db()
	if db == nil {
		return errNoDB
	}
	res, err := db.ExecContext(ctx, `DELETE FROM users WHERE id=?`, id)
	if err != nil {
		return err
	}
	return affectedOrNotFound("user", res)
}
