// Package dbtest contains supporting code for running tests that hit the store.
package dbtest

import (
	"path/filepath"
	"testing"

	"green-hash-api/database"
	"green-hash-api/models"

	"gorm.io/gorm"
)

// Success and failure markers.
const (
	Success = "✓"
	Failed  = "✗"
)

// NewUnit opens a migrated SQLite store in a temp directory. The store is
// closed when the test completes.
func NewUnit(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(database.Config{
		Driver: "sqlite",
		DSN:    DSN(t),
	})
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}

	if err := models.Migrate(db); err != nil {
		t.Fatalf("migrating store: %v", err)
	}

	t.Cleanup(func() {
		if err := database.Close(db); err != nil {
			t.Errorf("closing store: %v", err)
		}
	})

	return db
}

// DSN returns a fresh SQLite file path for the test.
func DSN(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "greenhash.db")
}
