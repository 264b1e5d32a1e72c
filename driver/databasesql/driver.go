// Package databasesql provides a database/sql driver implementation for
// docpg.
//
// Use it when the application manages its connections through database/sql,
// e.g. with github.com/lib/pq:
//
//	db, _ := sql.Open("postgres", databaseURL)
//	drv := databasesql.New(db)
//	store := drv.GetStore()
//
// Queries use PostgreSQL placeholder syntax, so the underlying driver must
// speak Postgres.
package databasesql

import (
	"database/sql"

	"github.com/docpg/docpg/driver"
)

// Driver wraps a database/sql handle.
type Driver struct {
	db *sql.DB
}

// New creates a new database/sql driver with the given handle.
func New(db *sql.DB) *Driver {
	return &Driver{db: db}
}

// PoolIsSet returns true if the driver has a database handle configured.
func (d *Driver) PoolIsSet() bool {
	return d.db != nil
}

// DB returns the underlying *sql.DB for advanced usage.
func (d *Driver) DB() *sql.DB {
	return d.db
}

// GetStore returns a driver.Store backed by this handle.
func (d *Driver) GetStore() driver.Store {
	return &Store{db: d.db}
}
