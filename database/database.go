// Package database opens the relational store and prepares its schema.
package database

import (
	"context"
	"fmt"
	"time"

	"green-hash-api/metrics"
	"green-hash-api/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SeedRows is the number of stats snapshots written into an empty table.
const SeedRows = 7

// Config is the set of values needed to open a store.
type Config struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Open connects to the configured store and tunes its connection pool.
func Open(cfg Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// StatusCheck returns nil if it can successfully talk to the store.
func StatusCheck(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Prepare migrates the schema and seeds the stats table.
func Prepare(db *gorm.DB, src metrics.Source, now time.Time) (int, error) {
	if err := models.Migrate(db); err != nil {
		return 0, fmt.Errorf("migrating: %w", err)
	}

	seeded, err := SeedMiningStats(db, src, now)
	if err != nil {
		return 0, fmt.Errorf("seeding mining stats: %w", err)
	}

	return seeded, nil
}

// SeedMiningStats writes SeedRows snapshots when the stats table is empty
// and reports how many rows it wrote. Snapshots are spaced one hour apart
// ending at now, so the newest-first ordering is unambiguous.
func SeedMiningStats(db *gorm.DB, src metrics.Source, now time.Time) (int, error) {
	var seeded int

	err := db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.MiningStats{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		rows := make([]models.MiningStats, 0, SeedRows)
		for i := SeedRows - 1; i >= 0; i-- {
			rows = append(rows, src.Snapshot(now.Add(-time.Duration(i)*time.Hour)))
		}

		if err := tx.Create(&rows).Error; err != nil {
			return err
		}

		seeded = len(rows)
		return nil
	})
	if err != nil {
		return 0, err
	}

	return seeded, nil
}
