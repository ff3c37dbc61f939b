// Package store exposes the typed data operations of the shop backend:
// item and employee management, stock adjustments, atomic sale processing
// and the management reports. Every multi-write operation runs inside a
// single transaction.
package store

import (
	"github.com/jmoiron/sqlx"
)

// Store wraps the database handle and carries all data operations.
type Store struct {
	db *sqlx.DB
}

// New constructs a Store over an open database.
func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}
