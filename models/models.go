package models

import "gorm.io/gorm"

// All lists every table the service owns, in dependency order.
func All() []any {
	return []any{
		&User{},
		&MiningStats{},
		&Transaction{},
		&Investment{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}
