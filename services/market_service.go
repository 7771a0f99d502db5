// services/market_service.go
package services

import (
	"green-hash-api/metrics"

	"github.com/gofiber/fiber/v2"
)

type MarketAnalysis struct {
	MarketSize2025  int    `json:"market_size_2025"` // millions USD
	MarketSize2030  int    `json:"market_size_2030"` // millions USD
	GrowthRate      int    `json:"growth_rate"`      // percent
	AfricaPotential string `json:"africa_potential"`
	MoroccoPosition string `json:"morocco_position"`
}

// marketAnalysis never changes.
var marketAnalysis = MarketAnalysis{
	MarketSize2025:  1200,
	MarketSize2030:  5000,
	GrowthRate:      300,
	AfricaPotential: "High",
	MoroccoPosition: "Leading",
}

type EnergyProduction struct {
	CurrentProduction   float64 `json:"current_production"` // MW
	DailyAverage        float64 `json:"daily_average"`
	Efficiency          float64 `json:"efficiency"`
	CarbonSaved         int     `json:"carbon_saved"` // tons CO2
	RenewablePercentage int     `json:"renewable_percentage"`
}

type MarketService struct {
	Source metrics.Source
}

func NewMarketService(src metrics.Source) *MarketService {
	return &MarketService{Source: src}
}

func (s *MarketService) GetMarketAnalysis(c *fiber.Ctx) error {
	return c.JSON(marketAnalysis)
}

// GetEnergyProduction serves the farm's output. Only the current
// production is drawn, the rest is constant.
func (s *MarketService) GetEnergyProduction(c *fiber.Ctx) error {
	return c.JSON(EnergyProduction{
		CurrentProduction:   s.Source.EnergyOutput(),
		DailyAverage:        2.5,
		Efficiency:          94.2,
		CarbonSaved:         1250,
		RenewablePercentage: 100,
	})
}
