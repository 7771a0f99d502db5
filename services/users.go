// services/users.go
package services

import (
	"errors"

	"green-hash-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FindUserByWallet looks a user up by wallet address. The bool reports
// whether a row was found.
func FindUserByWallet(db *gorm.DB, address string) (models.User, bool, error) {
	var user models.User
	if err := db.Where("wallet_address = ?", address).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, false, nil
		}
		return user, false, err
	}
	return user, true, nil
}

// EnsureUser returns the user for address, creating it on first sight.
// Concurrent first calls for the same address resolve to a single row.
func EnsureUser(db *gorm.DB, address string) (models.User, bool, error) {
	user, found, err := FindUserByWallet(db, address)
	if err != nil || found {
		return user, false, err
	}

	user = models.User{WalletAddress: address}
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&user)
	if res.Error != nil {
		return models.User{}, false, res.Error
	}
	created := res.RowsAffected == 1

	// Lost the race: another request inserted the row first.
	if !created {
		user, found, err = FindUserByWallet(db, address)
		if err != nil {
			return models.User{}, false, err
		}
		if !found {
			return models.User{}, false, gorm.ErrRecordNotFound
		}
	}

	return user, created, nil
}
