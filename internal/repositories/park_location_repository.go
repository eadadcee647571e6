package repositories

import (
	"context"
	"database/sql"

	"luggagebill/internal/domain/models"
)

type ParkLocationRepository struct {
	DB *sql.DB
}

func (r ParkLocationRepository) db() *sql.DB { return dbOrDefault(r.DB) }

const parkLocationSelect = `
	SELECT p.id, p.state_id, p.location, p.full_address, p.contact, p.created, p.updated,
		s.name, s.short_code
	FROM park_locations p
	JOIN states s ON s.id = p.state_id`

func scanParkLocation(row interface{ Scan(...any) error }) (models.ParkLocation, error) {
	var p models.ParkLocation
	st := models.State{}
	if err := row.Scan(&p.ID, &p.StateID, &p.Location, &p.FullAddress, &p.Contact, &p.Created, &p.Updated,
		&st.Name, &st.ShortCode); err != nil {
		return p, err
	}
	st.ID = p.StateID
	p.State = &st
	return p, nil
}

func (r ParkLocationRepository) query(ctx context.Context, q string, args ...any) ([]models.ParkLocation, error) {
	db := r.db()
	if db == nil {
		return nil, errNoDB
	}
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.ParkLocation{}
	for rows.Next() {
		p, err := scanParkLocation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// List orders by state; Query searches location and full address, StateID filters.
func (r ParkLocationRepository) List(ctx context.Context, f ListFilter) ([]models.ParkLocation, error) {
	var w whereBuilder
	if f.StateID > 0 {
		w.add("p.state_id = ?", f.StateID)
	}
	w.search(f, "p.full_address", "p.location")
	q := parkLocationSelect + w.sql() + ` ORDER BY s.created ASC, p.state_id ASC, p.id ASC` + w.page(f.Page)
	return r.query(ctx, q, w.args...)
}

// ListByState returns every park location of a state.
func (r ParkLocationRepository) ListByState(ctx context.Context, stateID int64) ([]models.ParkLocation, error) {
	return r.query(ctx, parkLocationSelect+` WHERE p.state_id = ? ORDER BY p.id ASC`, stateID)
}

func (r ParkLocationRepository) GetByID(ctx context.Context, id int64) (models.ParkLocation, error) {
	db := r.db()
	if db == nil {
		return models.ParkLocation{}, errNoDB
	}
	p, err := scanParkLocation(db.QueryRowContext(ctx, parkLocationSelect+` WHERE p.id=? LIMIT 1`, id))
	if err != nil {
		return models.ParkLocation{}, readErr("park location", err)
	}
	return p, nil
}

func (r ParkLocationRepository) Create(ctx context.Context, p models.ParkLocation) (models.ParkLocation, error) {
	db := r.db()
	if db == nil {
		return p, errNoDB
	}
	ts := now()
	res, err := db.ExecContext(ctx, `
		INSERT INTO park_locations (state_id, location, full_address, contact, created, updated)
		VALUES (?,?,?,?,?,?)`,
		p.StateID, p.Location, p.FullAddress, p.Contact, ts, ts)
	if err != nil {
		return p, writeErr("park location", err)
	}
	p.ID, _ = res.LastInsertId()
	p.Created, p.Updated = ts, ts
	return p, nil
}

func (r ParkLocationRepository) Update(ctx context.Context, p models.ParkLocation) (models.ParkLocation, error) {
	db := r.db()
	if db == nil {
		return p, errNoDB
	}
	ts := now()
	res, err := db.ExecContext(ctx, `
		UPDATE park_locations SET state_id=?, location=?, full_address=?, contact=?, updated=? WHERE id=?`,
		p.StateID, p.Location, p.FullAddress, p.Contact, ts, p.ID)
	if err != nil {
		return p, writeErr("park location", err)
	}
	if err := affectedOrNotFound("park location", res); err != nil {
		return p, err
	}
	p.Updated = ts
	return p, nil
}

// Delete removes the location; trips from or to it cascade.
func (r ParkLocationRepository) Delete(ctx context.Context, id int64) error {
	db := r.db()
	if db == nil {
		return errNoDB
	}
	res, err := db.ExecContext(ctx, `DELETE FROM park_locations WHERE id=?`, id)
	if err != nil {
		return err
	}
	return affectedOrNotFound("park location", res)
}
