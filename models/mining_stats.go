package models

import "time"

// MiningStats is a pool-wide snapshot. Rows are only ever appended.
type MiningStats struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Timestamp      time.Time `gorm:"index;not null" json:"timestamp"`
	TotalHashRate  float64   `gorm:"default:0" json:"total_hash_rate"` // PH/s
	ActiveMiners   int       `gorm:"default:0" json:"active_miners"`
	BlocksFound    int       `gorm:"default:0" json:"blocks_found"`
	EnergyProduced float64   `gorm:"default:0" json:"energy_produced"` // MW
	BTCPrice       float64   `gorm:"column:btc_price;default:0" json:"btc_price"`
}

// TableName keeps the table singular-looking, "mining_stats".
func (MiningStats) TableName() string {
	return "mining_stats"
}
