package repositories

import (
	"context"
	"database/sql"

	"luggagebill/internal/domain/models"
)

type StateRepository struct {
	DB *sql.DB
}

func (r StateRepository) db() *sql.DB { return dbOrDefault(r.DB) }

// park_locations_count rides along every read.
const stateSelect = `
	SELECT s.id, s.name, s.short_code, s.created, s.updated,
		(SELECT COUNT(*) FROM park_locations p WHERE p.state_id = s.id) AS park_locations_count
	FROM states s`

func scanState(row interface{ Scan(...any) error }) (models.State, error) {
	var s models.State
	err := row.Scan(&s.ID, &s.Name, &s.ShortCode, &s.Created, &s.Updated, &s.ParkLocationsCount)
	return s, err
}

// List orders by creation; Query searches name and short code.
func (r StateRepository) List(ctx context.Context, f ListFilter) ([]models.State, error) {
	db := r.db()
	if db == nil {
		return nil, errNoDB
	}
	var w whereBuilder
	w.search(f, "s.name", "s.short_code")
	q := stateSelect + w.sql() + ` ORDER BY s.created ASC, s.id ASC` + w.page(f.Page)

	rows, err := db.QueryContext(ctx, q, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.State{}
	for rows.Next() {
		s, err := scanState(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r StateRepository) GetByID(ctx context.Context, id int64) (models.State, error) {
	db := r.db()
	if db == nil {
		return models.State{}, errNoDB
	}
	s, err := scanState(db.QueryRowContext(ctx, stateSelect+` WHERE s.id=? LIMIT 1`, id))
	if err != nil {
		return models.State{}, readErr("state", err)
	}
	return s, nil
}

func (r StateRepository) GetByName(ctx context.Context, name string) (models.State, error) {
	db := r.db()
	if db == nil {
		return models.State{}, errNoDB
	}
	s, err := scanState(db.QueryRowContext(ctx, stateSelect+` WHERE s.name=? LIMIT 1`, name))
	if err != nil {
		return models.State{}, readErr("state", err)
	}
	return s, nil
}

func (r StateRepository) Create(ctx context.Context, s models.State) (models.State, error) {
	db := r.db()
	if db == nil {
		return s, errNoDB
	}
	ts := now()
	res, err := db.ExecContext(ctx, `INSERT INTO states (name, short_code, created, updated) VALUES (?,?,?,?)`,
		s.Name, s.ShortCode, ts, ts)
	if err != nil {
		return s, writeErr("state", err)
	}
	s.ID, _ = res.LastInsertId()
	s.Created, s.Updated = ts, ts
	return s, nil
}

func (r StateRepository) Update(ctx context.Context, s models.State) (models.State, error) {
	db := r.db()
	if db == nil {
		return s, errNoDB
	}
	ts := now()
	res, err := db.ExecContext(ctx, `UPDATE states SET name=?, short_code=?, updated=? WHERE id=?`,
		s.Name, s.ShortCode, ts, s.ID)
	if err != nil {
		return s, writeErr("state", err)
	}
	if err := affectedOrNotFound("state", res); err != nil {
		return s, err
	}
	s.Updated = ts
	return s, nil
}

// Delete removes the state and cascades to its park locations.
func (r StateRepository) Delete(ctx context.Context, id int64) error {
	db := r.db()
	if db == nil {
		return errNoDB
	}
	res, err := db.ExecContext(ctx, `DELETE FROM states WHERE id=?`, id)
	if err != nil {
		return err
	}
	return affectedOrNotFound("state", res)
}
