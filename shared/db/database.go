package db

import (
	"database/sql"
)

// Database is a managed connection to a SQL backend. Implementations own the
// lifecycle of the underlying *sql.DB.
type Database interface {
	Connect() error
	Close() error
	DB() *sql.DB
}
