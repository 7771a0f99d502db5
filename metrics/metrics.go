// Package metrics isolates every value the service makes up instead of
// reading from a mining pool, an exchange or energy telemetry. Handlers
// depend on Source so a live integration can replace Synthetic without
// touching them.
package metrics

import (
	"time"

	"green-hash-api/models"

	"github.com/shopspring/decimal"
)

// RealtimeStats is the payload of the realtime stats endpoints.
type RealtimeStats struct {
	TotalHashRate    float64 `json:"total_hash_rate"`
	ActiveMiners     int     `json:"active_miners"`
	BlocksFoundToday int     `json:"blocks_found_today"`
	EnergyProduced   float64 `json:"energy_produced"`
	BTCPrice         float64 `json:"btc_price"`
}

// Quote is a price and its daily change in percent.
type Quote struct {
	Price  float64 `json:"price"`
	Change float64 `json:"change"`
}

// ExchangeRates lists the quoted currencies in display order.
type ExchangeRates struct {
	BTC  Quote `json:"BTC"`
	ETH  Quote `json:"ETH"`
	USDT Quote `json:"USDT"`
	DOGE Quote `json:"DOGE"`
}

// Source produces pool, exchange and energy figures.
type Source interface {
	// Realtime is used when no stats snapshot has been stored.
	Realtime() RealtimeStats

	// Snapshot builds a stats row suitable for persisting at time t.
	Snapshot(t time.Time) models.MiningStats

	ExchangeRates() ExchangeRates

	// SwapRate is the conversion factor applied to a swap amount.
	SwapRate() float64

	// EnergyOutput is the current production in MW.
	EnergyOutput() float64
}

// FromSnapshot converts a stored row into the realtime payload.
func FromSnapshot(s models.MiningStats) RealtimeStats {
	return RealtimeStats{
		TotalHashRate:    Round(s.TotalHashRate, 1),
		ActiveMiners:     s.ActiveMiners,
		BlocksFoundToday: s.BlocksFound,
		EnergyProduced:   Round(s.EnergyProduced, 2),
		BTCPrice:         Round(s.BTCPrice, 2),
	}
}

// Round rounds v half away from zero to the given number of decimal places.
func Round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
