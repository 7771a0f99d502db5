package models

import "time"

const InvestmentStatusActive = "active"

// Investment is a recorded intent to allocate funds; no money moves.
type Investment struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"index;not null" json:"user_id"`
	InvestmentType string    `gorm:"not null" json:"investment_type"`
	Amount         float64   `gorm:"not null" json:"amount"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	Status         string    `gorm:"size:20;default:'active'" json:"status"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
