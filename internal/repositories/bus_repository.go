package repositories

import (
	"context"
	"database/sql"

	intdb "luggagebill/internal/db"
	"luggagebill/internal/domain/models"
)

type BusRepository struct {
	DB *sql.DB
}

func (r BusRepository) db() *sql.DB { return dbOrDefault(r.DB) }

const busColumns = `id, plate_number, driver_name, max_luggage_weight, created, updated`

func scanBus(row interface{ Scan(...any) error }) (models.Bus, error) {
	var b models.Bus
	var maxWeight sql.NullInt64
	if err := row.Scan(&b.ID, &b.PlateNumber, &b.DriverName, &maxWeight, &b.Created, &b.Updated); err != nil {
		return b, err
	}
	b.MaxLuggageWeight = intdb.IntPtr(maxWeight)
	return b, nil
}

// List orders by creation; Query searches plate number and driver name.
func (r BusRepository) List(ctx context.Context, f ListFilter) ([]models.Bus, error) {
	db := r.db()
	if db == nil {
		return nil, errNoDB
	}
	var w whereBuilder
	w.search(f, "plate_number", "driver_name")
	q := `SELECT ` + busColumns + ` FROM buses` + w.sql() + ` ORDER BY created ASC, id ASC` + w.page(f.Page)

	rows, err := db.QueryContext(ctx, q, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Bus{}
	for rows.Next() {
		b, err := scanBus(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r BusRepository) GetByID(ctx context.Context, id int64) (models.Bus, error) {
	db := r.db()
	if db == nil {
		return models.Bus{}, errNoDB
	}
	b, err := scanBus(db.QueryRowContext(ctx, `SELECT `+busColumns+` FROM buses WHERE id=? LIMIT 1`, id))
	if err != nil {
		return models.Bus{}, readErr("bus", err)
	}
	return b, nil
}

func (r BusRepository) Create(ctx context.Context, b models.Bus) (models.Bus, error) {
	db := r.db()
	if db == nil {
		return b, errNoDB
	}
	ts := now()
	res, err := db.ExecContext(ctx, `
		INSERT INTO buses (plate_number, driver_name, max_luggage_weight, created, updated)
		VALUES (?,?,?,?,?)`,
		b.PlateNumber, b.DriverName, intdb.NullInt(b.MaxLuggageWeight), ts, ts)
	if err != nil {
		return b, writeErr("bus", err)
	}
	b.ID, _ = res.LastInsertId()
	b.Created, b.Updated = ts, ts
	return b, nil
}

func (r BusRepository) Update(ctx context.Context, b models.Bus) (models.Bus, error) {
	db := r.db()
	if db == nil {
		return b, errNoDB
	}
	ts := now()
	res, err := db.ExecContext(ctx, `
		UPDATE buses SET plate_number=?, driver_name=?, max_luggage_weight=?, updated=? WHERE id=?`,
		b.PlateNumber, b.DriverName, intdb.NullInt(b.MaxLuggageWeight), ts, b.ID)
	if err != nil {
		return b, writeErr("bus", err)
	}
	if err := affectedOrNotFound("bus", res); err != nil {
		return b, err
	}
	b.Updated = ts
	return b, nil
}

// Delete removes the bus together with its trips and their bills.
func (r BusRepository) Delete(ctx context.Context, id int64) error {
	db := r.db()
	if db == nil {
		return errNoDB
	}
	res, err := db.ExecContext(ctx, `DELETE FROM buses WHERE id=?`, id)
	if err != nil {
		return err
	}
	return affectedOrNotFound("bus", res)
}
