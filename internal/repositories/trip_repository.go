package repositories

import (
	"context"
	"database/sql"

	"luggagebill/internal/domain/models"
)

type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB { return dbOrDefault(r.DB) }

// Trips are always read with their bus and both park locations (with states).
const tripSelect = `
	SELECT t.id, t.name, t.bus_id, t.departure_id, t.destination_id, t.date_of_journey, t.created, t.updated,
		b.plate_number, b.driver_name,
		dp.location, dp.state_id, ds.name, ds.short_code,
		ap.location, ap.state_id, ast.name, ast.short_code
	FROM trips t
	JOIN buses b ON b.id = t.bus_id
	JOIN park_locations dp ON dp.id = t.departure_id
	JOIN states ds ON ds.id = dp.state_id
	JOIN park_locations ap ON ap.id = t.destination_id
	JOIN states ast ON ast.id = ap.state_id`

func scanTrip(row interface{ Scan(...any) error }) (models.Trip, error) {
	var t models.Trip
	bus := models.Bus{}
	dep := models.ParkLocation{State: &models.State{}}
	dest := models.ParkLocation{State: &models.State{}}
	if err := row.Scan(
		&t.ID, &t.Name, &t.BusID, &t.DepartureID, &t.DestinationID, &t.DateOfJourney, &t.Created, &t.Updated,
		&bus.PlateNumber, &bus.DriverName,
		&dep.Location, &dep.StateID, &dep.State.Name, &dep.State.ShortCode,
		&dest.Location, &dest.StateID, &dest.State.Name, &dest.State.ShortCode,
	); err != nil {
		return t, err
	}
	bus.ID = t.BusID
	dep.ID, dep.State.ID = t.DepartureID, dep.StateID
	dest.ID, dest.State.ID = t.DestinationID, dest.StateID
	t.Bus, t.Departure, t.Destination = &bus, &dep, &dest
	return t, nil
}

func (r TripRepository) query(ctx context.Context, q string, args ...any) ([]models.Trip, error) {
	db := r.db()
	if db == nil {
		return nil, errNoDB
	}
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// List orders by journey date, newest first. From is inclusive, To exclusive.
func (r TripRepository) List(ctx context.Context, f ListFilter) ([]models.Trip, error) {
	var w whereBuilder
	if f.From != nil {
		w.add("t.date_of_journey >= ?", *f.From)
	}
	if f.To != nil {
		w.add("t.date_of_journey < ?", *f.To)
	}
	w.search(f, "dp.location", "ap.location", "b.plate_number", "t.name")
	q := tripSelect + w.sql() + ` ORDER BY t.date_of_journey DESC, t.id DESC` + w.page(f.Page)
	return r.query(ctx, q, w.args...)
}

func (r TripRepository) ListByBus(ctx context.Context, busID int64) ([]models.Trip, error) {
	return r.query(ctx, tripSelect+` WHERE t.bus_id = ? ORDER BY t.date_of_journey DESC, t.id DESC`, busID)
}

// ListByDeparture returns the trips leaving from a park location.
func (r TripRepository) ListByDeparture(ctx context.Context, parkLocationID int64) ([]models.Trip, error) {
	return r.query(ctx, tripSelect+` WHERE t.departure_id = ? ORDER BY t.date_of_journey DESC, t.id DESC`, parkLocationID)
}

func (r TripRepository) GetByID(ctx context.Context, id int64) (models.Trip, error) {
	db := r.db()
	if db == nil {
		return models.Trip{}, errNoDB
	}
	t, err := scanTrip(db.QueryRowContext(ctx, tripSelect+` WHERE t.id=? LIMIT 1`, id))
	if err != nil {
		return models.Trip{}, readErr("trip", err)
	}
	return t, nil
}

// Create stores a trip whose name has already been derived.
func (r TripRepository) Create(ctx context.Context, t models.Trip) (models.Trip, error) {
	db := r.db()
	if db == nil {
		return t, errNoDB
	}
	ts := now()
	res, err := db.ExecContext(ctx, `
		INSERT INTO trips (name, bus_id, departure_id, destination_id, date_of_journey, created, updated)
		VALUES (?,?,?,?,?,?,?)`,
		t.Name, t.BusID, t.DepartureID, t.DestinationID, t.DateOfJourney, ts, ts)
	if err != nil {
		return t, writeErr("trip", err)
	}
	t.ID, _ = res.LastInsertId()
	t.Created, t.Updated = ts, ts
	return t, nil
}

func (r TripRepository) Update(ctx context.Context, t models.Trip) (models.Trip, error) {
	db := r.db()
	if db == nil {
		return t, errNoDB
	}
	ts := now()
	res, err := db.ExecContext(ctx, `
		UPDATE trips SET name=?, bus_id=?, departure_id=?, destination_id=?, date_of_journey=?, updated=?
		WHERE id=?`,
		t.Name, t.BusID, t.DepartureID, t.DestinationID, t.DateOfJourney, ts, t.ID)
	if err != nil {
		return t, writeErr("trip", err)
	}
	if err := affectedOrNotFound("trip", res); err != nil {
		return t, err
	}
	t.Updated = ts
	return t, nil
}

// Delete removes the trip and its bills.
func (r TripRepository) Delete(ctx context.Context, id int64) error {
	db := r.db()
	if db == nil {
		return errNoDB
	}
	res, err := db.ExecContext(ctx, `DELETE FROM trips WHERE id=?`, id)
	if err != nil {
		return err
	}
	return affectedOrNotFound("trip", res)
}
