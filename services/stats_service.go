// services/stats_service.go
package services

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"green-hash-api/metrics"
	"green-hash-api/models"
	"green-hash-api/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	hashrateHistoryLimit = 24
	blocksHistoryLimit   = 7
)

// WeekdayLabels are the block chart labels. They are fixed and do not
// follow the snapshot dates.
var WeekdayLabels = []string{"Lun", "Mar", "Mer", "Jeu", "Ven", "Sam", "Dim"}

// ChartSeries is a labelled series for the front-end charts.
type ChartSeries[T any] struct {
	Labels []string `json:"labels"`
	Values []T      `json:"values"`
}

type StatsService struct {
	DB             *gorm.DB
	Source         metrics.Source
	Log            *zap.SugaredLogger
	StreamInterval time.Duration
}

func NewStatsService(db *gorm.DB, src metrics.Source, log *zap.SugaredLogger, streamInterval time.Duration) *StatsService {
	return &StatsService{DB: db, Source: src, Log: log, StreamInterval: streamInterval}
}

// Realtime returns the newest stored snapshot, or a generated one when the
// table is empty.
func (s *StatsService) Realtime() (metrics.RealtimeStats, error) {
	var latest models.MiningStats
	err := s.DB.Order("timestamp DESC").Order("id DESC").First(&latest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.Source.Realtime(), nil
		}
		return metrics.RealtimeStats{}, err
	}
	return metrics.FromSnapshot(latest), nil
}

// RecentStats returns up to limit of the newest snapshots, oldest first.
func RecentStats(db *gorm.DB, limit int) ([]models.MiningStats, error) {
	var rows []models.MiningStats
	if err := db.Order("timestamp DESC").Order("id DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, err
	}
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows, nil
}

// GetRealtimeStats serves the current pool figures.
func (s *StatsService) GetRealtimeStats(c *fiber.Ctx) error {
	stats, err := s.Realtime()
	if err != nil {
		s.Log.Errorw("realtime stats", "ERROR", err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(stats)
}

// GetWSStats is a polling alias of GetRealtimeStats. Push updates are
// served by StreamStatsSSE.
func (s *StatsService) GetWSStats(c *fiber.Ctx) error {
	return s.GetRealtimeStats(c)
}

// GetHashrateHistory serves up to 24 snapshots as an HH:MM labelled series.
func (s *StatsService) GetHashrateHistory(c *fiber.Ctx) error {
	rows, err := RecentStats(s.DB, hashrateHistoryLimit)
	if err != nil {
		s.Log.Errorw("hashrate history", "ERROR", err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	series := ChartSeries[float64]{
		Labels: make([]string, 0, len(rows)),
		Values: make([]float64, 0, len(rows)),
	}
	for _, r := range rows {
		series.Labels = append(series.Labels, r.Timestamp.UTC().Format("15:04"))
		series.Values = append(series.Values, metrics.Round(r.TotalHashRate, 1))
	}

	return c.JSON(series)
}

// GetBlocksHistory serves up to 7 blocks-found values against the fixed
// weekday labels.
func (s *StatsService) GetBlocksHistory(c *fiber.Ctx) error {
	rows, err := RecentStats(s.DB, blocksHistoryLimit)
	if err != nil {
		s.Log.Errorw("blocks history", "ERROR", err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	series := ChartSeries[int]{
		Labels: append([]string(nil), WeekdayLabels...),
		Values: make([]int, 0, len(rows)),
	}
	for _, r := range rows {
		series.Values = append(series.Values, r.BlocksFound)
	}

	return c.JSON(series)
}

// StreamStatsSSE pushes the realtime payload on every tick until the
// client goes away.
func (s *StatsService) StreamStatsSSE(c *fiber.Ctx) error {
	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	interval := s.StreamInterval
	if interval <= 0 {
		interval = 5 * time.Second
	}
	done := c.Context().Done()

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		// Tell EventSource clients how soon to reconnect after a drop.
		if _, err := fmt.Fprintf(w, "retry: %d\n\n", interval.Milliseconds()); err != nil {
			return
		}
		if err := s.writeStatsEvent(w); err != nil {
			return
		}

		for {
			select {
			case <-ticker.C:
				if err := s.writeStatsEvent(w); err != nil {
					// Client disconnected.
					return
				}
			case <-done:
				return
			}
		}
	})

	return nil
}

func (s *StatsService) writeStatsEvent(w *bufio.Writer) error {
	stats, err := s.Realtime()
	if err != nil {
		s.Log.Errorw("stats stream", "ERROR", err)
		// Keep the connection alive with a comment line.
		if _, err := w.WriteString(":\n\n"); err != nil {
			return err
		}
		return w.Flush()
	}

	if err := WriteEvent(w, "stats", stats); err != nil {
		return err
	}
	return w.Flush()
}

// WriteEvent writes one Server-Sent Events frame carrying v as JSON.
func WriteEvent(w *bufio.Writer, event string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, payload)
	return err
}
