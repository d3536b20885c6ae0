// Package helper provides shared arrange-phase helpers for the test suites.
package helper

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite" // CGo-free sqlite driver, registered as "sqlite"
)

// GivenUniqueID supplies a fresh time-ordered UUID for test data.
func GivenUniqueID(t testing.TB) uuid.UUID {
	id, err := uuid.NewV7()
	require.NoError(t, err, "error in arranging test data")

	return id
}

// GivenSQLiteDB opens an in-memory sqlite database and applies the library
// catalog schema the SQL forwarding tests run against. The database is
// closed when the test finishes.
func GivenSQLiteDB(t testing.TB) *sqlx.DB {
	db, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err, "error in arranging test database")

	t.Cleanup(func() {
		_ = db.Close()
	})

	schema := `
		CREATE TABLE books (
			id     TEXT PRIMARY KEY,
			title  TEXT    NOT NULL,
			copies INTEGER NOT NULL,
			price  REAL    NOT NULL
		)`

	_, err = db.Exec(schema)
	require.NoError(t, err, "error in arranging test database schema")

	return db
}
