package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	intconfig "luggagebill/internal/config"
	intdb "luggagebill/internal/db"
	"luggagebill/internal/domain"
)

// ListFilter narrows list queries. Zero values mean "no filter".
type ListFilter struct {
	Query     string
	StateID   int64
	AddedByID int64
	From      *time.Time
	To        *time.Time
	Page      domain.Pagination
}

func (f ListFilter) like() string {
	return "%" + strings.TrimSpace(f.Query) + "%"
}

func (f ListFilter) hasQuery() bool {
	return strings.TrimSpace(f.Query) != ""
}

// whereBuilder collects AND-ed conditions and their args.
type whereBuilder struct {
	conds []string
	args  []any
}

func (w *whereBuilder) add(cond string, args ...any) {
	w.conds = append(w.conds, cond)
	w.args = append(w.args, args...)
}

// search adds "(c1 LIKE ? OR c2 LIKE ? ...)" for a non-empty query.
func (w *whereBuilder) search(f ListFilter, cols ...string) {
	if !f.hasQuery() || len(cols) == 0 {
		return
	}
	parts := make([]string, len(cols))
	like := f.like()
	for i, c := range cols {
		parts[i] = c + " LIKE ?"
		w.args = append(w.args, like)
	}
	w.conds = append(w.conds, "("+strings.Join(parts, " OR ")+")")
}

func (w *whereBuilder) sql() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// page appends LIMIT/OFFSET for the filter's pagination.
func (w *whereBuilder) page(p domain.Pagination) string {
	p = p.Normalize()
	w.args = append(w.args, p.PageSize, p.Offset())
	return " LIMIT ? OFFSET ?"
}

func dbOrDefault(db *sql.DB) *sql.DB {
	if db != nil {
		return db
	}
	return intconfig.DB
}

var errNoDB = errors.New("database not initialized")

// readErr maps a single-row read failure.
func readErr(resource string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: resource, Err: err}
	}
	return fmt.Errorf("load %s: %w", resource, err)
}

// writeErr maps constraint violations to domain errors.
func writeErr(resource string, err error) error {
	switch {
	case intdb.IsDuplicateKey(err):
		return domain.ConflictError{Resource: resource, Msg: "already exists", Err: err}
	case intdb.IsMissingReference(err):
		return domain.ValidationError{Field: resource, Msg: "references a record that does not exist", Err: err}
	default:
		return fmt.Errorf("save %s: %w", resource, err)
	}
}

// affectedOrNotFound turns a zero-row update/delete into NotFoundError.
func affectedOrNotFound(resource string, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFoundError{Resource: resource}
	}
	return nil
}

func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func int64Args(ids []int64) []any {
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return out
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
