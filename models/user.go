package models

import "time"

// User is a wallet holder, created lazily on the first wallet connect.
// HashRate, TotalMined and Balance are written once at creation and only
// read afterwards.
type User struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	WalletAddress string    `gorm:"size:42;uniqueIndex;not null" json:"wallet_address"` // opaque, not checksummed
	Email         *string   `gorm:"size:120;uniqueIndex" json:"email,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	HashRate      float64   `gorm:"default:0" json:"hash_rate"`
	TotalMined    float64   `gorm:"default:0" json:"total_mined"`
	Balance       float64   `gorm:"default:0" json:"balance"`
}
