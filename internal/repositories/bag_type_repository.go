package repositories

import (
	"context"
	"database/sql"

	intdb "luggagebill/internal/db"
	"luggagebill/internal/domain/models"
)

type BagTypeRepository struct {
	DB *sql.DB
}

func (r BagTypeRepository) db() *sql.DB { return dbOrDefault(r.DB) }

const bagTypeColumns = `id, name, size, description, created, updated`

func scanBagType(row interface{ Scan(...any) error }) (models.BagType, error) {
	var b models.BagType
	var size string
	var desc sql.NullString
	if err := row.Scan(&b.ID, &b.Name, &size, &desc, &b.Created, &b.Updated); err != nil {
		return b, err
	}
	b.Size = models.BagSize(size)
	b.Description = intdb.StringPtr(desc)
	return b, nil
}

// List orders by name; Query searches the name.
func (r BagTypeRepository) List(ctx context.Context, f ListFilter) ([]models.BagType, error) {
	db := r.db()
	if db == nil {
		return nil, errNoDB
	}
	var w whereBuilder
	w.search(f, "name")
	q := `SELECT ` + bagTypeColumns + ` FROM bag_types` + w.sql() + ` ORDER BY name ASC, id ASC` + w.page(f.Page)

	rows, err := db.QueryContext(ctx, q, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.BagType{}
	for rows.Next() {
		b, err := scanBagType(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r BagTypeRepository) GetByID(ctx context.Context, id int64) (models.BagType, error) {
	db := r.db()
	if db == nil {
		return models.BagType{}, errNoDB
	}
	b, err := scanBagType(db.QueryRowContext(ctx, `SELECT `+bagTypeColumns+` FROM bag_types WHERE id=? LIMIT 1`, id))
	if err != nil {
		return models.BagType{}, readErr("bag type", err)
	}
	return b, nil
}

func (r BagTypeRepository) Create(ctx context.Context, b models.BagType) (models.BagType, error) {
	db := r.db()
	if db == nil {
		return b, errNoDB
	}
	ts := now()
	res, err := db.ExecContext(ctx, `INSERT INTO bag_types (name, size, description, created, updated) VALUES (?,?,?,?,?)`,
		b.Name, string(b.Size), intdb.NullString(b.Description), ts, ts)
	if err != nil {
		return b, writeErr("bag type", err)
	}
	b.ID, _ = res.LastInsertId()
	b.Created, b.Updated = ts, ts
	return b, nil
}

func (r BagTypeRepository) Update(ctx context.Context, b models.BagType) (models.BagType, error) {
	db := r.db()
	if db == nil {
		return b, errNoDB
	}
	ts := now()
	res, err := db.ExecContext(ctx, `UPDATE bag_types SET name=?, size=?, description=?, updated=? WHERE id=?`,
		b.Name, string(b.Size), intdb.NullString(b.Description), ts, b.ID)
	if err != nil {
		return b, writeErr("bag type", err)
	}
	if err := affectedOrNotFound("bag type", res); err != nil {
		return b, err
	}
	b.Updated = ts
	return b, nil
}

func (r BagTypeRepository) Delete(ctx context.Context, id int64) error {
	db := r.db()
	if db == nil {
		return errNoDB
	}
	res, err := db.ExecContext(ctx, `DELETE FROM bag_types WHERE id=?`, id)
	if err != nil {
		return err
	}
	return affectedOrNotFound("bag type", res)
}
