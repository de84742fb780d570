package store

import (
	"time"

	"database/sql"

	_ "github.com/lib/pq"

	srvErrors "github.com/coffeehouse/e2e/pkg/errors"
)

const (
	// Bounded pool plus overflow allowance for concurrent scenarios.
	maxIdleConns = 10
	maxOpenConns = 30

	// Connections are recycled hourly so long runs survive server-side
	// idle timeouts.
	connMaxLifetime = time.Hour
)

// NewDB opens a Postgres connection pool for the given connection
// string. Exactly one pool should be created per run; ownership of its
// lifecycle belongs to the run orchestrator, which injects the handle
// into the Store.
func NewDB(connString string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, srvErrors.NewDatabaseError(err)
	}

	db.SetMaxIdleConns(maxIdleConns)
	db.SetMaxOpenConns(maxOpenConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, srvErrors.NewDatabaseError(err)
	}

	return db, nil
}
