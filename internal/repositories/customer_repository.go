package repositories

import (
	"context"
	"database/sql"

	"luggagebill/internal/domain/models"
)

type CustomerRepository struct {
	DB *sql.DB
}

func (r CustomerRepository) db() *sql.DB { return dbOrDefault(r.DB) }

const customerColumns = `id, fullname, email, address, next_of_kin, next_of_kin_phonenumber, created, updated`

func scanCustomer(row interface{ Scan(...any) error }) (models.Customer, error) {
	var c models.Customer
	err := row.Scan(&c.ID, &c.Fullname, &c.Email, &c.Address, &c.NextOfKin, &c.NextOfKinPhoneNumber, &c.Created, &c.Updated)
	return c, err
}

// List orders by fullname; Query searches fullname and next of kin.
func (r CustomerRepository) List(ctx context.Context, f ListFilter) ([]models.Customer, error) {
	db := r.db()
	if db == nil {
		return nil, errNoDB
	}
	var w whereBuilder
	w.search(f, "fullname", "next_of_kin")
	q := `SELECT ` + customerColumns + ` FROM customers` + w.sql() + ` ORDER BY fullname ASC, id ASC` + w.page(f.Page)

	rows, err := db.QueryContext(ctx, q, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r CustomerRepository) GetByID(ctx context.Context, id int64) (models.Customer, error) {
	db := r.db()
	if db == nil {
		return models.Customer{}, errNoDB
	}
	c, err := scanCustomer(db.QueryRowContext(ctx, `SELECT `+customerColumns+` FROM customers WHERE id=? LIMIT 1`, id))
	if err != nil {
		return models.Customer{}, readErr("customer", err)
	}
	return c, nil
}

func (r CustomerRepository) Create(ctx context.Context, c models.Customer) (models.Customer, error) {
	db := r.db()
	if db == nil {
		return c, errNoDB
	}
	ts := now()
	res, err := db.ExecContext(ctx, `
		INSERT INTO customers (fullname, email, address, next_of_kin, next_of_kin_phonenumber, created, updated)
		VALUES (?,?,?,?,?,?,?)`,
		c.Fullname, c.Email, c.Address, c.NextOfKin, c.NextOfKinPhoneNumber, ts, ts)
	if err != nil {
		return c, writeErr("customer", err)
	}
	c.ID, _ = res.LastInsertId()
	c.Created, c.Updated = ts, ts
	return c, nil
}

func (r CustomerRepository) Update(ctx context.Context, c models.Customer) (models.Customer, error) {
	db := r.db()
	if db == nil {
		return c, errNoDB
	}
	ts := now()
	res, err := db.ExecContext(ctx, `
		UPDATE customers
		SET fullname=?, email=?, address=?, next_of_kin=?, next_of_kin_phonenumber=?, updated=?
		WHERE id=?`,
		c.Fullname, c.Email, c.Address, c.NextOfKin, c.NextOfKinPhoneNumber, ts, c.ID)
	if err != nil {
		return c, writeErr("customer", err)
	}
	if err := affectedOrNotFound("customer", res); err != nil {
		return c, err
	}
	c.Updated = ts
	return c, nil
}

// Delete removes the customer; bills and their items cascade.
func (r CustomerRepository) Delete(ctx context.Context, id int64) error {
	db := r.db()
	if db == nil {
		return errNoDB
	}
	res, err := db.ExecContext(ctx, `DELETE FROM customers WHERE id=?`, id)
	if err != nil {
		return err
	}
	return affectedOrNotFound("customer", res)
}
