package models

import "time"

// TransactionType tags what kind of event a Transaction records
type TransactionType string

const (
	TransactionTypeMining     TransactionType = "mining"
	TransactionTypeExchange   TransactionType = "exchange"
	TransactionTypeInvestment TransactionType = "investment"
)

// Transaction records a mining, exchange or investment event for a user.
// The table is migrated but no endpoint writes to it yet.
type Transaction struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UserID    uint            `gorm:"index;not null" json:"user_id"`
	Type      TransactionType `gorm:"size:20;not null" json:"type"`
	Amount    float64         `gorm:"not null" json:"amount"`
	Currency  string          `gorm:"size:10;not null" json:"currency"`
	Timestamp time.Time       `gorm:"autoCreateTime" json:"timestamp"`
	Status    string          `gorm:"size:20;default:'completed'" json:"status"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
