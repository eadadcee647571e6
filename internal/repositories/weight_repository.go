package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"luggagebill/internal/domain/models"
)

type WeightRepository struct {
	DB *sql.DB
}

func (r WeightRepository) db() *sql.DB { return dbOrDefault(r.DB) }

const weightColumns = `id, name, min_weight, price, created, updated`

func scanWeight(row interface{ Scan(...any) error }) (models.Weight, error) {
	var w models.Weight
	var price string
	if err := row.Scan(&w.ID, &w.Name, &w.MinWeight, &price, &w.Created, &w.Updated); err != nil {
		return w, err
	}
	p, err := models.ParseMoney(price)
	if err != nil {
		return w, fmt.Errorf("weight %d price %q: %w", w.ID, price, err)
	}
	w.Price = p
	return w, nil
}

// List orders by creation; Query searches the tier name.
func (r WeightRepository) List(ctx context.Context, f ListFilter) ([]models.Weight, error) {
	db := r.db()
	if db == nil {
		return nil, errNoDB
	}
	var wb whereBuilder
	wb.search(f, "name")
	q := `SELECT ` + weightColumns + ` FROM weights` + wb.sql() + ` ORDER BY created ASC, id ASC` + wb.page(f.Page)

	rows, err := db.QueryContext(ctx, q, wb.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Weight{}
	for rows.Next() {
		w, err := scanWeight(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r WeightRepository) GetByID(ctx context.Context, id int64) (models.Weight, error) {
	db := r.db()
	if db == nil {
		return models.Weight{}, errNoDB
	}
	w, err := scanWeight(db.QueryRowContext(ctx, `SELECT `+weightColumns+` FROM weights WHERE id=? LIMIT 1`, id))
	if err != nil {
		return models.Weight{}, readErr("weight", err)
	}
	return w, nil
}

func (r WeightRepository) Create(ctx context.Context, w models.Weight) (models.Weight, error) {
	db := r.db()
	if db == nil {
		return w, errNoDB
	}
	ts := now()
	res, err := db.ExecContext(ctx, `INSERT INTO weights (name, min_weight, price, created, updated) VALUES (?,?,?,?,?)`,
		w.Name, w.MinWeight, w.Price.String(), ts, ts)
	if err != nil {
		return w, writeErr("weight", err)
	}
	w.ID, _ = res.LastInsertId()
	w.Created, w.Updated = ts, ts
	return w, nil
}

func (r WeightRepository) Update(ctx context.Context, w models.Weight) (models.Weight, error) {
	db := r.db()
	if db == nil {
		return w, errNoDB
	}
	ts := now()
	res, err := db.ExecContext(ctx, `UPDATE weights SET name=?, min_weight=?, price=?, updated=? WHERE id=?`,
		w.Name, w.MinWeight, w.Price.String(), ts, w.ID)
	if err != nil {
		return w, writeErr("weight", err)
	}
	if err := affectedOrNotFound("weight", res); err != nil {
		return w, err
	}
	w.Updated = ts
	return w, nil
}

func (r WeightRepository) Delete(ctx context.Context, id int64) error {
	db := r.db()
	if db == nil {
		return errNoDB
	}
	res, err := db.ExecContext(ctx, `DELETE FROM weights WHERE id=?`, id)
	if err != nil {
		return err
	}
	return affectedOrNotFound("weight", res)
}
