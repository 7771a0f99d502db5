package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"green-hash-api/archive"
	"green-hash-api/config"
	"green-hash-api/database"
	"green-hash-api/handlers"
	"green-hash-api/logger"
	"green-hash-api/metrics"
	"green-hash-api/services"
	"green-hash-api/sessions"

	"go.uber.org/zap"
)

// build is the git version of this program. It is set using build flags.
var build = "develop"

func main() {
	envLoaded, err := config.LoadEnv(config.EnvFile)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	cfg, help, err := config.Load(build)
	if err != nil {
		if errors.Is(err, config.ErrHelpWanted) {
			fmt.Println(help)
			return
		}
		fmt.Println(err)
		os.Exit(1)
	}

	log, err := logger.New("GREENHASH", cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer log.Sync()

	if !envLoaded {
		log.Infow("startup", "status", "no .env file found, using environment variables")
	}

	if err := run(cfg, log); err != nil {
		log.Errorw("startup", "ERROR", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, log *zap.SugaredLogger) error {
	log.Infow("starting service", "version", build)
	defer log.Infow("shutdown complete")

	out, err := cfg.String()
	if err != nil {
		return fmt.Errorf("generating config for output: %w", err)
	}
	log.Infow("startup", "config", out)

	// =========================================================================
	// Store

	db, err := database.Open(database.Config{
		Driver:          cfg.DB.Driver,
		DSN:             cfg.DB.DSN,
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("connecting to db: %w", err)
	}
	defer func() {
		log.Infow("shutdown", "status", "stopping database support")
		if err := database.Close(db); err != nil {
			log.Errorw("shutdown", "status", "database", "ERROR", err)
		}
	}()

	src := metrics.NewSynthetic(nil)

	seeded, err := database.Prepare(db, src, time.Now())
	if err != nil {
		return err
	}
	log.Infow("startup", "status", "database ready", "driver", cfg.DB.Driver, "seeded_stats", seeded)

	// =========================================================================
	// Background jobs

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	schedCfg := services.SchedulerConfig{
		SnapshotInterval: cfg.Snapshot.Interval,
	}
	if cfg.ArchiveEnabled() {
		client, err := archive.NewS3Client(ctx, archive.Config{
			Bucket:    cfg.Archive.Bucket,
			Name:      cfg.Archive.Name,
			Endpoint:  cfg.Archive.Endpoint,
			Region:    cfg.Archive.Region,
			AccessKey: cfg.Archive.AccessKey,
			SecretKey: cfg.Archive.SecretKey,
		})
		if err != nil {
			return fmt.Errorf("initializing archive: %w", err)
		}
		schedCfg.ArchiveInterval = cfg.Archive.Interval
		schedCfg.Exporter = archive.New(client, cfg.Archive.Bucket, cfg.Archive.Name)
	}

	scheduler := services.NewStatsScheduler(db, src, log)
	if err := scheduler.Start(ctx, schedCfg); err != nil {
		return err
	}
	defer func() {
		log.Infow("shutdown", "status", "stopping scheduler")
		if err := scheduler.Stop(); err != nil {
			log.Errorw("shutdown", "status", "scheduler", "ERROR", err)
		}
	}()

	// =========================================================================
	// API

	store := sessions.NewCookieStore(sessions.Config{
		CookieName: cfg.Session.CookieName,
		Expiration: cfg.Session.Expiration,
		Secure:     cfg.Session.Secure,
	})

	app := handlers.NewApp(handlers.Config{
		ReadTimeout:    cfg.Web.ReadTimeout,
		IdleTimeout:    cfg.Web.IdleTimeout,
		AllowOrigins:   cfg.CORS.AllowOrigins,
		PoolAddress:    cfg.Pool.Address,
		StreamInterval: cfg.Stream.Interval,
		StaticDir:      cfg.Web.StaticDir,
	}, db, src, store, log)

	serverErrors := make(chan error, 1)
	go func() {
		log.Infow("startup", "status", "api started", "host", cfg.Web.Host)
		serverErrors <- app.Listen(cfg.Web.Host)
	}()

	// =========================================================================
	// Shutdown

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		log.Infow("shutdown", "status", "shutdown started")
		defer log.Infow("shutdown", "status", "shutdown complete")

		if err := app.ShutdownWithTimeout(cfg.Web.ShutdownTimeout); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}
