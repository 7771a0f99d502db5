package metrics

import (
	"math/rand"
	"sync"
	"time"

	"green-hash-api/models"
)

// Value ranges for generated figures.
const (
	realtimeHashRateMin, realtimeHashRateMax = 12.0, 13.0
	realtimeMinersMin, realtimeMinersMax     = 1200, 1300
	realtimeBlocksMin, realtimeBlocksMax     = 120, 140
	realtimeEnergyMin, realtimeEnergyMax     = 2.3, 2.6
	realtimePriceMin, realtimePriceMax       = 430000.0, 440000.0

	snapshotHashRateMin, snapshotHashRateMax = 10.5, 13.5
	snapshotMinersMin, snapshotMinersMax     = 1000, 1500
	snapshotBlocksMin, snapshotBlocksMax     = 15, 30
	snapshotEnergyMin, snapshotEnergyMax     = 2.0, 3.0
	snapshotPriceMin, snapshotPriceMax       = 420000.0, 450000.0

	SwapRateMin, SwapRateMax = 0.8, 1.2

	energyOutputMin, energyOutputMax = 2.3, 2.7
)

// USDTQuote is pinned rather than generated.
var USDTQuote = Quote{Price: 10.00, Change: 0.00}

// Synthetic draws every figure uniformly at random from fixed ranges.
type Synthetic struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSynthetic returns a generator reading from src. Pass nil to seed
// from the clock.
func NewSynthetic(src rand.Source) *Synthetic {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Synthetic{rnd: rand.New(src)}
}

func (s *Synthetic) Realtime() RealtimeStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return RealtimeStats{
		TotalHashRate:    Round(s.uniform(realtimeHashRateMin, realtimeHashRateMax), 1),
		ActiveMiners:     s.intn(realtimeMinersMin, realtimeMinersMax),
		BlocksFoundToday: s.intn(realtimeBlocksMin, realtimeBlocksMax),
		EnergyProduced:   Round(s.uniform(realtimeEnergyMin, realtimeEnergyMax), 2),
		BTCPrice:         Round(s.uniform(realtimePriceMin, realtimePriceMax), 2),
	}
}

func (s *Synthetic) Snapshot(t time.Time) models.MiningStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return models.MiningStats{
		Timestamp:      t.UTC(),
		TotalHashRate:  s.uniform(snapshotHashRateMin, snapshotHashRateMax),
		ActiveMiners:   s.intn(snapshotMinersMin, snapshotMinersMax),
		BlocksFound:    s.intn(snapshotBlocksMin, snapshotBlocksMax),
		EnergyProduced: s.uniform(snapshotEnergyMin, snapshotEnergyMax),
		BTCPrice:       s.uniform(snapshotPriceMin, snapshotPriceMax),
	}
}

func (s *Synthetic) ExchangeRates() ExchangeRates {
	s.mu.Lock()
	defer s.mu.Unlock()

	return ExchangeRates{
		BTC:  s.quote(430000, 440000, 2),
		ETH:  s.quote(22000, 24000, 3),
		USDT: USDTQuote,
		DOGE: s.quote(1.0, 1.5, 5),
	}
}

func (s *Synthetic) SwapRate() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.uniform(SwapRateMin, SwapRateMax)
}

func (s *Synthetic) EnergyOutput() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Round(s.uniform(energyOutputMin, energyOutputMax), 2)
}

// quote draws a price in [lo, hi] and a change in [-swing, swing].
func (s *Synthetic) quote(lo, hi, swing float64) Quote {
	return Quote{
		Price:  Round(s.uniform(lo, hi), 2),
		Change: Round(s.uniform(-swing, swing), 2),
	}
}

// uniform must be called with mu held.
func (s *Synthetic) uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rnd.Float64()
}

// intn returns an integer in [lo, hi], both ends inclusive. Must be called
// with mu held.
func (s *Synthetic) intn(lo, hi int) int {
	return lo + s.rnd.Intn(hi-lo+1)
}
