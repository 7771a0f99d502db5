package metrics_test

import (
	"math/rand"
	"testing"
	"time"

	"green-hash-api/metrics"
	"green-hash-api/models"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func TestSyntheticRanges(t *testing.T) {
	src := metrics.NewSynthetic(rand.NewSource(42))

	t.Log("Given the need to keep generated figures inside their ranges.")
	{
		t.Logf("\tTest 0:\tWhen drawing realtime stats repeatedly.")
		{
			for i := 0; i < 500; i++ {
				rt := src.Realtime()
				if rt.TotalHashRate < 12.0 || rt.TotalHashRate > 13.0 {
					t.Fatalf("\t%s\tTest 0:\tShould keep hash rate in [12,13] : got %v", failed, rt.TotalHashRate)
				}
				if rt.ActiveMiners < 1200 || rt.ActiveMiners > 1300 {
					t.Fatalf("\t%s\tTest 0:\tShould keep miners in [1200,1300] : got %v", failed, rt.ActiveMiners)
				}
				if rt.BlocksFoundToday < 120 || rt.BlocksFoundToday > 140 {
					t.Fatalf("\t%s\tTest 0:\tShould keep blocks in [120,140] : got %v", failed, rt.BlocksFoundToday)
				}
				if rt.EnergyProduced < 2.3 || rt.EnergyProduced > 2.6 {
					t.Fatalf("\t%s\tTest 0:\tShould keep energy in [2.3,2.6] : got %v", failed, rt.EnergyProduced)
				}
				if rt.BTCPrice < 430000 || rt.BTCPrice > 440000 {
					t.Fatalf("\t%s\tTest 0:\tShould keep price in [430000,440000] : got %v", failed, rt.BTCPrice)
				}
			}
			t.Logf("\t%s\tTest 0:\tShould keep realtime stats in range.", success)
		}

		t.Logf("\tTest 1:\tWhen drawing snapshots repeatedly.")
		{
			now := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
			for i := 0; i < 500; i++ {
				s := src.Snapshot(now)
				checkSnapshot(t, s)
				if !s.Timestamp.Equal(now) {
					t.Fatalf("\t%s\tTest 1:\tShould stamp the snapshot with the given time : got %v", failed, s.Timestamp)
				}
			}
			t.Logf("\t%s\tTest 1:\tShould keep snapshots in range.", success)
		}

		t.Logf("\tTest 2:\tWhen drawing exchange rates and swap rates.")
		{
			for i := 0; i < 500; i++ {
				r := src.ExchangeRates()
				if r.USDT != metrics.USDTQuote {
					t.Fatalf("\t%s\tTest 2:\tShould pin USDT : got %+v", failed, r.USDT)
				}
				if r.BTC.Price < 430000 || r.BTC.Price > 440000 || r.BTC.Change < -2 || r.BTC.Change > 2 {
					t.Fatalf("\t%s\tTest 2:\tShould keep BTC in range : got %+v", failed, r.BTC)
				}
				if r.ETH.Price < 22000 || r.ETH.Price > 24000 || r.ETH.Change < -3 || r.ETH.Change > 3 {
					t.Fatalf("\t%s\tTest 2:\tShould keep ETH in range : got %+v", failed, r.ETH)
				}
				if r.DOGE.Price < 1.0 || r.DOGE.Price > 1.5 || r.DOGE.Change < -5 || r.DOGE.Change > 5 {
					t.Fatalf("\t%s\tTest 2:\tShould keep DOGE in range : got %+v", failed, r.DOGE)
				}

				rate := src.SwapRate()
				if rate < metrics.SwapRateMin || rate > metrics.SwapRateMax {
					t.Fatalf("\t%s\tTest 2:\tShould keep swap rate in [0.8,1.2] : got %v", failed, rate)
				}

				e := src.EnergyOutput()
				if e < 2.3 || e > 2.7 {
					t.Fatalf("\t%s\tTest 2:\tShould keep energy output in [2.3,2.7] : got %v", failed, e)
				}
			}
			t.Logf("\t%s\tTest 2:\tShould keep market figures in range.", success)
		}
	}
}

func checkSnapshot(t *testing.T, s models.MiningStats) {
	t.Helper()

	if s.TotalHashRate < 10.5 || s.TotalHashRate > 13.5 {
		t.Fatalf("\t%s\tShould keep snapshot hash rate in [10.5,13.5] : got %v", failed, s.TotalHashRate)
	}
	if s.ActiveMiners < 1000 || s.ActiveMiners > 1500 {
		t.Fatalf("\t%s\tShould keep snapshot miners in [1000,1500] : got %v", failed, s.ActiveMiners)
	}
	if s.BlocksFound < 15 || s.BlocksFound > 30 {
		t.Fatalf("\t%s\tShould keep snapshot blocks in [15,30] : got %v", failed, s.BlocksFound)
	}
	if s.EnergyProduced < 2.0 || s.EnergyProduced > 3.0 {
		t.Fatalf("\t%s\tShould keep snapshot energy in [2,3] : got %v", failed, s.EnergyProduced)
	}
	if s.BTCPrice < 420000 || s.BTCPrice > 450000 {
		t.Fatalf("\t%s\tShould keep snapshot price in [420000,450000] : got %v", failed, s.BTCPrice)
	}
}

func TestRound(t *testing.T) {
	tt := []struct {
		in     float64
		places int32
		want   float64
	}{
		{12.345, 1, 12.3},
		{12.35, 1, 12.4},
		{2.555, 2, 2.56},
		{-1.005, 2, -1.01},
		{96.123456789, 8, 96.12345679},
	}

	t.Log("Given the need to round figures for display.")
	{
		for i, tst := range tt {
			got := metrics.Round(tst.in, tst.places)
			if got != tst.want {
				t.Fatalf("\t%s\tTest %d:\tShould round %v to %d places as %v : got %v", failed, i, tst.in, tst.places, tst.want, got)
			}
			t.Logf("\t%s\tTest %d:\tShould round %v to %v.", success, i, tst.in, tst.want)
		}
	}
}

func TestFromSnapshot(t *testing.T) {
	s := models.MiningStats{
		TotalHashRate:  12.46,
		ActiveMiners:   1234,
		BlocksFound:    21,
		EnergyProduced: 2.345,
		BTCPrice:       431234.567,
	}

	got := metrics.FromSnapshot(s)
	want := metrics.RealtimeStats{
		TotalHashRate:    12.5,
		ActiveMiners:     1234,
		BlocksFoundToday: 21,
		EnergyProduced:   2.35,
		BTCPrice:         431234.57,
	}

	if got != want {
		t.Fatalf("\t%s\tShould map a stored snapshot to the realtime payload : got %+v, want %+v", failed, got, want)
	}
	t.Logf("\t%s\tShould map a stored snapshot to the realtime payload.", success)
}
