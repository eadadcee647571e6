package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	intdb "luggagebill/internal/db"
	"luggagebill/internal/domain/models"
)

type LuggageBillRepository struct {
	DB *sql.DB
}

func (r LuggageBillRepository) db() *sql.DB { return dbOrDefault(r.DB) }

const billSelect = `
	SELECT lb.id, lb.customer_id, lb.trip_id, lb.added_by_id, lb.created, lb.updated,
		c.fullname, t.name, t.date_of_journey, b.plate_number, u.username
	FROM luggage_bills lb
	JOIN customers c ON c.id = lb.customer_id
	JOIN trips t ON t.id = lb.trip_id
	JOIN buses b ON b.id = t.bus_id
	JOIN users u ON u.id = lb.added_by_id`

const billOrder = ` ORDER BY lb.created DESC, lb.id DESC`

const itemSelect = `
	SELECT l.id, l.luggagebill_id, l.weight_id, l.bag_type_id, l.quantity, l.created, l.updated,
		w.name, w.min_weight, w.price, bt.name, bt.size
	FROM luggages l
	JOIN weights w ON w.id = l.weight_id
	JOIN bag_types bt ON bt.id = l.bag_type_id`

func scanBill(row interface{ Scan(...any) error }) (models.LuggageBill, error) {
	var b models.LuggageBill
	customer := models.Customer{}
	trip := models.Trip{Bus: &models.Bus{}}
	user := models.User{}
	if err := row.Scan(&b.ID, &b.CustomerID, &b.TripID, &b.AddedByID, &b.Created, &b.Updated,
		&customer.Fullname, &trip.Name, &trip.DateOfJourney, &trip.Bus.PlateNumber, &user.Username); err != nil {
		return b, err
	}
	customer.ID = b.CustomerID
	trip.ID = b.TripID
	user.ID = b.AddedByID
	b.Customer, b.Trip, b.AddedBy = &customer, &trip, &user
	b.Items = []models.Luggage{}
	return b, nil
}

func scanItem(row interface{ Scan(...any) error }) (models.Luggage, error) {
	var l models.Luggage
	w := models.Weight{}
	bt := models.BagType{}
	var price, size string
	if err := row.Scan(&l.ID, &l.LuggageBillID, &l.WeightID, &l.BagTypeID, &l.Quantity, &l.Created, &l.Updated,
		&w.Name, &w.MinWeight, &price, &bt.Name, &size); err != nil {
		return l, err
	}
	p, err := models.ParseMoney(price)
	if err != nil {
		return l, fmt.Errorf("luggage %d price %q: %w", l.ID, price, err)
	}
	w.ID, w.Price = l.WeightID, p
	bt.ID, bt.Size = l.BagTypeID, models.BagSize(size)
	l.Weight, l.BagType = &w, &bt
	return l, nil
}

// query loads bills and attaches their items.
func (r LuggageBillRepository) query(ctx context.Context, q string, args ...any) ([]models.LuggageBill, error) {
	db := r.db()
	if db == nil {
		return nil, errNoDB
	}
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	out := []models.LuggageBill{}
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		out = append(out, b)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, err
	}
	if err := r.attachItems(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r LuggageBillRepository) attachItems(ctx context.Context, bills []models.LuggageBill) error {
	if len(bills) == 0 {
		return nil
	}
	ids := make([]int64, len(bills))
	for i, b := range bills {
		ids[i] = b.ID
	}
	items, err := r.Items(ctx, ids...)
	if err != nil {
		return err
	}
	for i := range bills {
		if list, ok := items[bills[i].ID]; ok {
			bills[i].Items = list
		}
	}
	return nil
}

// Items returns the line items of the given bills keyed by bill id, newest first.
func (r LuggageBillRepository) Items(ctx context.Context, billIDs ...int64) (map[int64][]models.Luggage, error) {
	out := map[int64][]models.Luggage{}
	if len(billIDs) == 0 {
		return out, nil
	}
	db := r.db()
	if db == nil {
		return nil, errNoDB
	}
	q := itemSelect + ` WHERE l.luggagebill_id IN (` + placeholders(len(billIDs)) + `) ORDER BY l.created DESC, l.id DESC`
	rows, err := db.QueryContext(ctx, q, int64Args(billIDs)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		l, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out[l.LuggageBillID] = append(out[l.LuggageBillID], l)
	}
	return out, rows.Err()
}

// List orders by creation, newest first. AddedByID narrows to one staff user's bills.
func (r LuggageBillRepository) List(ctx context.Context, f ListFilter) ([]models.LuggageBill, error) {
	var w whereBuilder
	if f.AddedByID > 0 {
		w.add("lb.added_by_id = ?", f.AddedByID)
	}
	if f.From != nil {
		w.add("lb.created >= ?", *f.From)
	}
	if f.To != nil {
		w.add("lb.created < ?", *f.To)
	}
	w.search(f, "c.fullname", "t.name", "b.plate_number")
	q := billSelect + w.sql() + billOrder + w.page(f.Page)
	return r.query(ctx, q, w.args...)
}

func (r LuggageBillRepository) ListByTrip(ctx context.Context, tripID int64) ([]models.LuggageBill, error) {
	return r.query(ctx, billSelect+` WHERE lb.trip_id = ?`+billOrder, tripID)
}

func (r LuggageBillRepository) ListByCustomer(ctx context.Context, customerID int64) ([]models.LuggageBill, error) {
	return r.query(ctx, billSelect+` WHERE lb.customer_id = ?`+billOrder, customerID)
}

// ListByIDs returns the existing bills among ids; unknown ids are skipped.
func (r LuggageBillRepository) ListByIDs(ctx context.Context, ids []int64) ([]models.LuggageBill, error) {
	if len(ids) == 0 {
		return []models.LuggageBill{}, nil
	}
	return r.query(ctx, billSelect+` WHERE lb.id IN (`+placeholders(len(ids))+`)`+billOrder, int64Args(ids)...)
}

func (r LuggageBillRepository) GetByID(ctx context.Context, id int64) (models.LuggageBill, error) {
	db := r.db()
	if db == nil {
		return models.LuggageBill{}, errNoDB
	}
	b, err := scanBill(db.QueryRowContext(ctx, billSelect+` WHERE lb.id=? LIMIT 1`, id))
	if err != nil {
		return models.LuggageBill{}, readErr("luggage bill", err)
	}
	bills := []models.LuggageBill{b}
	if err := r.attachItems(ctx, bills); err != nil {
		return models.LuggageBill{}, err
	}
	return bills[0], nil
}

// TotalForTrip sums price*quantity over every item of every bill of the trip.
func (r LuggageBillRepository) TotalForTrip(ctx context.Context, tripID int64) (models.Money, error) {
	db := r.db()
	if db == nil {
		return 0, errNoDB
	}
	var total string
	err := db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(w.price * l.quantity), 0)
		FROM luggages l
		JOIN luggage_bills lb ON lb.id = l.luggagebill_id
		JOIN weights w ON w.id = l.weight_id
		WHERE lb.trip_id = ?`, tripID).Scan(&total)
	if err != nil {
		return 0, err
	}
	return models.ParseMoney(total)
}

// Create inserts the bill and its items in one transaction.
func (r LuggageBillRepository) Create(ctx context.Context, b models.LuggageBill) (models.LuggageBill, error) {
	db := r.db()
	if db == nil {
		return b, errNoDB
	}
	ts := now()
	err := intdb.InTx(ctx, db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO luggage_bills (customer_id, trip_id, added_by_id, created, updated)
			VALUES (?,?,?,?,?)`,
			b.CustomerID, b.TripID, b.AddedByID, ts, ts)
		if err != nil {
			return writeErr("luggage bill", err)
		}
		b.ID, _ = res.LastInsertId()
		return insertItems(ctx, tx, b.ID, b.Items, ts)
	})
	if err != nil {
		return b, err
	}
	b.Created, b.Updated = ts, ts
	return b, nil
}

// Update changes customer and trip; added_by is never written. With
// replaceItems the stored items are swapped for b.Items atomically.
func (r LuggageBillRepository) Update(ctx context.Context, b models.LuggageBill, replaceItems bool) (models.LuggageBill, error) {
	db := r.db()
	if db == nil {
		return b, errNoDB
	}
	ts := now()
	err := intdb.InTx(ctx, db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `UPDATE luggage_bills SET customer_id=?, trip_id=?, updated=? WHERE id=?`,
			b.CustomerID, b.TripID, ts, b.ID)
		if err != nil {
			return writeErr("luggage bill", err)
		}
		if err := affectedOrNotFound("luggage bill", res); err != nil {
			return err
		}
		if !replaceItems {
			return nil
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM luggages WHERE luggagebill_id=?`, b.ID); err != nil {
			return err
		}
		return insertItems(ctx, tx, b.ID, b.Items, ts)
	})
	if err != nil {
		return b, err
	}
	b.Updated = ts
	return b, nil
}

func insertItems(ctx context.Context, q intdb.DBTX, billID int64, items []models.Luggage, ts time.Time) error {
	for i := range items {
		item := &items[i]
		res, err := q.ExecContext(ctx, `
			INSERT INTO luggages (luggagebill_id, weight_id, bag_type_id, quantity, created, updated)
			VALUES (?,?,?,?,?,?)`,
			billID, item.WeightID, item.BagTypeID, item.Quantity, ts, ts)
		if err != nil {
			return writeErr(fmt.Sprintf("items[%d]", i), err)
		}
		item.ID, _ = res.LastInsertId()
		item.LuggageBillID = billID
		item.Created, item.Updated = ts, ts
	}
	return nil
}

// Delete removes the bill and its items.
func (r LuggageBillRepository) Delete(ctx context.Context, id int64) error {
	db := r.db()
	if db == nil {
		return errNoDB
	}
	res, err := db.ExecContext(ctx, `DELETE FROM luggage_bills WHERE id=?`, id)
	if err != nil {
		return err
	}
	return affectedOrNotFound("luggage bill", res)
}
