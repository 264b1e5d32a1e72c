// Package pgxv5 provides a pgx/v5 driver implementation for docpg.
//
// This is the primary driver, intended for applications that already hold a
// pgxpool.Pool.
//
// Usage:
//
//	pool, _ := pgxpool.New(ctx, databaseURL)
//	drv := pgxv5.New(pool)
//	store := drv.GetStore()
package pgxv5

import (
	"github.com/docpg/docpg/driver"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Driver wraps a pgxpool.Pool.
type Driver struct {
	pool *pgxpool.Pool
}

// New creates a new pgx/v5 driver with the given connection pool.
func New(pool *pgxpool.Pool) *Driver {
	return &Driver{pool: pool}
}

// PoolIsSet returns true if the driver has a database pool configured.
func (d *Driver) PoolIsSet() bool {
	return d.pool != nil
}

// Pool returns the underlying pgxpool.Pool for advanced usage.
func (d *Driver) Pool() *pgxpool.Pool {
	return d.pool
}

// GetStore returns a driver.Store backed by this pool.
func (d *Driver) GetStore() driver.Store {
	return &Store{pool: d.pool}
}
