// handlers/app.go
package handlers

import (
	"os"
	"time"

	"green-hash-api/metrics"
	"green-hash-api/middleware"
	"green-hash-api/services"
	"green-hash-api/sessions"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Config carries what the HTTP layer needs beyond its collaborators.
type Config struct {
	ReadTimeout    time.Duration
	IdleTimeout    time.Duration
	AllowOrigins   string
	PoolAddress    string
	StreamInterval time.Duration
	StaticDir      string
}

// NewApp builds the Fiber application with middleware and every route.
func NewApp(cfg Config, db *gorm.DB, src metrics.Source, store sessions.Store, log *zap.SugaredLogger) *fiber.App {
	// No WriteTimeout: fasthttp applies it to the whole response, which
	// would cut /api/stats/stream short.
	app := fiber.New(fiber.Config{
		AppName:               "green-hash-api",
		ReadTimeout:           cfg.ReadTimeout,
		IdleTimeout:           cfg.IdleTimeout,
		ErrorHandler:          middleware.ErrorHandler(log),
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestLogger(log))
	app.Use(recover.New())
	app.Use(middleware.CORS(cfg.AllowOrigins))

	SetupRoutes(app, Services{
		Stats:      services.NewStatsService(db, src, log, cfg.StreamInterval),
		Wallet:     services.NewWalletService(db, store, log),
		Mining:     services.NewMiningService(cfg.PoolAddress, log),
		Exchange:   services.NewExchangeService(src, log),
		Investment: services.NewInvestmentService(db, log),
		Community:  services.NewCommunityService(log),
		Market:     services.NewMarketService(src),
		Health:     services.NewHealthService(db),
	})

	// The front-end is optional; the API works without it.
	if cfg.StaticDir != "" {
		if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
			app.Static("/", cfg.StaticDir)
		}
	}

	return app
}
