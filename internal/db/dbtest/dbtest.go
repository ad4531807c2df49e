// Package dbtest opens throwaway in-memory SQLite databases for tests.
package dbtest

import (
	"context"
	"testing"

	"tuarica/internal/db"

	"gorm.io/gorm"
)

// New returns a migrated, empty in-memory database closed at the end of the test.
func New(tb testing.TB) *gorm.DB {
	tb.Helper()
	gdb, err := db.Open("sqlite://:memory:")
	if err != nil {
		tb.Fatalf("Failed to open database: %v", err)
	}
	// every new connection to :memory: is a new database, so pin the pool to one
	if err := db.SetPool(gdb, 1, 1, 0); err != nil {
		tb.Fatalf("Failed to configure pool: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		tb.Fatalf("Failed to migrate: %v", err)
	}
	tb.Cleanup(func() { _ = db.Close(gdb) })
	return gdb
}

// Seeded returns a database holding the embedded demonstration rows.
func Seeded(tb testing.TB) *gorm.DB {
	tb.Helper()
	gdb := New(tb)
	data, err := db.LoadSeedData()
	if err != nil {
		tb.Fatalf("Failed to load seed data: %v", err)
	}
	if _, err := db.Seed(context.Background(), gdb, data); err != nil {
		tb.Fatalf("Failed to seed: %v", err)
	}
	return gdb
}

// Broken returns a database whose pool is already closed, so every query fails.
func Broken(tb testing.TB) *gorm.DB {
	tb.Helper()
	gdb := New(tb)
	if err := db.Close(gdb); err != nil {
		tb.Fatalf("Failed to close database: %v", err)
	}
	return gdb
}
