// services/scheduler.go
package services

import (
	"context"
	"fmt"
	"time"

	"green-hash-api/archive"
	"green-hash-api/metrics"
	"green-hash-api/models"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// archiveWindow is how many of the newest snapshots one export carries.
const archiveWindow = 24

// StatsExporter uploads a batch of snapshots.
type StatsExporter interface {
	ExportStats(ctx context.Context, stats []models.MiningStats, at time.Time) (string, error)
}

var _ StatsExporter = (*archive.Archiver)(nil)

// SchedulerConfig selects the background jobs. A zero interval or nil
// exporter disables the matching job.
type SchedulerConfig struct {
	SnapshotInterval time.Duration
	ArchiveInterval  time.Duration
	Exporter         StatsExporter
}

type StatsScheduler struct {
	DB     *gorm.DB
	Source metrics.Source
	Log    *zap.SugaredLogger
	Now    func() time.Time

	sched gocron.Scheduler
}

func NewStatsScheduler(db *gorm.DB, src metrics.Source, log *zap.SugaredLogger) *StatsScheduler {
	return &StatsScheduler{DB: db, Source: src, Log: log, Now: time.Now}
}

// Start registers the enabled jobs and starts the scheduler.
func (s *StatsScheduler) Start(ctx context.Context, cfg SchedulerConfig) error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}

	if cfg.SnapshotInterval > 0 {
		_, err := sched.NewJob(
			gocron.DurationJob(cfg.SnapshotInterval),
			gocron.NewTask(func() {
				if err := s.RecordSnapshot(ctx); err != nil {
					s.Log.Errorw("scheduler", "job", "snapshot", "ERROR", err)
				}
			}),
		)
		if err != nil {
			return fmt.Errorf("registering snapshot job: %w", err)
		}
		s.Log.Infow("scheduler", "job", "snapshot", "interval", cfg.SnapshotInterval)
	}

	if cfg.ArchiveInterval > 0 && cfg.Exporter != nil {
		_, err := sched.NewJob(
			gocron.DurationJob(cfg.ArchiveInterval),
			gocron.NewTask(func() {
				if _, err := s.ArchiveStats(ctx, cfg.Exporter); err != nil {
					s.Log.Errorw("scheduler", "job", "archive", "ERROR", err)
				}
			}),
		)
		if err != nil {
			return fmt.Errorf("registering archive job: %w", err)
		}
		s.Log.Infow("scheduler", "job", "archive", "interval", cfg.ArchiveInterval)
	}

	sched.Start()
	s.sched = sched
	return nil
}

// Stop waits for running jobs and shuts the scheduler down.
func (s *StatsScheduler) Stop() error {
	if s.sched == nil {
		return nil
	}
	return s.sched.Shutdown()
}

// RecordSnapshot appends one generated stats row.
func (s *StatsScheduler) RecordSnapshot(ctx context.Context) error {
	row := s.Source.Snapshot(s.Now())
	if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("recording snapshot: %w", err)
	}
	s.Log.Infow("scheduler", "job", "snapshot", "stats_id", row.ID)
	return nil
}

// ArchiveStats exports the newest snapshots, oldest first, and returns
// the object key.
func (s *StatsScheduler) ArchiveStats(ctx context.Context, exp StatsExporter) (string, error) {
	rows, err := RecentStats(s.DB.WithContext(ctx), archiveWindow)
	if err != nil {
		return "", fmt.Errorf("reading stats: %w", err)
	}

	key, err := exp.ExportStats(ctx, rows, s.Now())
	if err != nil {
		return "", err
	}

	s.Log.Infow("scheduler", "job", "archive", "key", key, "count", len(rows))
	return key, nil
}
