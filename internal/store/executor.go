package store

import (
	"context"
	"database/sql"

	srvErrors "github.com/coffeehouse/e2e/pkg/errors"
)

// Row is one query result row keyed by column name. Rows are read-only
// snapshots; the harness never tracks them after return.
type Row map[string]any

// Int64 reads a numeric column. Missing or non-numeric columns yield
// zero; assertions on the zero value fail loudly enough on their own.
func (r Row) Int64(column string) int64 {
	switch v := r[column].(type) {
	case int64:
		return v
	case int32:
		return int64(v)
	case int:
		return int64(v)
	default:
		return 0
	}
}

// String reads a text column, or returns "" when absent.
func (r Row) String(column string) string {
	if v, ok := r[column].(string); ok {
		return v
	}
	return ""
}

// Executor runs parameterized SQL against the shared pool. Statements
// use positional $N placeholders produced by the squirrel builders in
// the repositories, so values are always bound, never interpolated.
type Executor struct {
	db *sql.DB
}

func NewExecutor(db *sql.DB) *Executor {
	return &Executor{db: db}
}

// Execute runs a mutation. The connection is acquired from the pool and
// released by database/sql regardless of outcome.
func (e *Executor) Execute(ctx context.Context, query string, args ...any) error {
	if _, err := e.db.ExecContext(ctx, query, args...); err != nil {
		return srvErrors.NewDatabaseError(err)
	}
	return nil
}

// FetchOne returns the first result row, or nil when the query matched
// nothing.
func (e *Executor) FetchOne(ctx context.Context, query string, args ...any) (Row, error) {
	rows, err := e.FetchAll(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// FetchAll returns every result row as a column-name keyed mapping.
func (e *Executor) FetchAll(ctx context.Context, query string, args ...any) ([]Row, error) {
	rows, err := e.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, srvErrors.NewDatabaseError(err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, srvErrors.NewDatabaseError(err)
	}

	var result []Row
	for rows.Next() {
		values := make([]any, len(columns))
		scanTargets := make([]any, len(columns))
		for i := range values {
			scanTargets[i] = &values[i]
		}
		if err := rows.Scan(scanTargets...); err != nil {
			return nil, srvErrors.NewDatabaseError(err)
		}

		row := make(Row, len(columns))
		for i, name := range columns {
			// lib/pq hands text columns back as []byte.
			if b, ok := values[i].([]byte); ok {
				row[name] = string(b)
				continue
			}
			row[name] = values[i]
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, srvErrors.NewDatabaseError(err)
	}

	return result, nil
}
