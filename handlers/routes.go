// handlers/routes.go
package handlers

import (
	"green-hash-api/services"

	"github.com/gofiber/fiber/v2"
)

// Services bundles every handler group the API exposes.
type Services struct {
	Stats      *services.StatsService
	Wallet     *services.WalletService
	Mining     *services.MiningService
	Exchange   *services.ExchangeService
	Investment *services.InvestmentService
	Community  *services.CommunityService
	Market     *services.MarketService
	Health     *services.HealthService
}

func SetupRoutes(app *fiber.App, svc Services) {
	app.Get("/health", svc.Health.Check)

	api := app.Group("/api")

	// Pool statistics
	api.Get("/stats/realtime", svc.Stats.GetRealtimeStats)
	api.Get("/stats/stream", svc.Stats.StreamStatsSSE)
	api.Get("/ws/stats", svc.Stats.GetWSStats)
	api.Get("/mining/hashrate", svc.Stats.GetHashrateHistory)
	api.Get("/mining/blocks", svc.Stats.GetBlocksHistory)

	// Wallet session
	api.Post("/wallet/connect", svc.Wallet.ConnectWallet)
	api.Get("/wallet/balance", svc.Wallet.GetWalletBalance)

	api.Post("/mining/join", svc.Mining.JoinMiningPool)

	api.Get("/exchange/rates", svc.Exchange.GetExchangeRates)
	api.Post("/exchange/swap", svc.Exchange.ExecuteSwap)

	api.Post("/invest/create", svc.Investment.CreateInvestment)

	api.Post("/contact/send", svc.Community.SendContactMessage)
	api.Post("/community/join", svc.Community.JoinCommunity)

	api.Get("/market/analysis", svc.Market.GetMarketAnalysis)
	api.Get("/energy/production", svc.Market.GetEnergyProduction)
}
