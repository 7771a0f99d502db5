// services/wallet_service.go
package services

import (
	"errors"

	"green-hash-api/sessions"
	"green-hash-api/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type WalletService struct {
	DB       *gorm.DB
	Sessions sessions.Store
	Log      *zap.SugaredLogger
}

func NewWalletService(db *gorm.DB, store sessions.Store, log *zap.SugaredLogger) *WalletService {
	return &WalletService{DB: db, Sessions: store, Log: log}
}

type WalletUser struct {
	ID            uint    `json:"id"`
	WalletAddress string  `json:"wallet_address"`
	Balance       float64 `json:"balance"`
	HashRate      float64 `json:"hash_rate"`
	TotalMined    float64 `json:"total_mined"`
}

type WalletBalance struct {
	Balance    float64 `json:"balance"`
	HashRate   float64 `json:"hash_rate"`
	TotalMined float64 `json:"total_mined"`
}

// ConnectWallet finds or creates the user for a wallet address and binds
// it to the caller's session.
func (s *WalletService) ConnectWallet(c *fiber.Ctx) error {
	var req struct {
		WalletAddress string `json:"wallet_address" validate:"required"`
	}
	if err := utils.BindJSON(c, &req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Wallet address required")
	}

	user, created, err := EnsureUser(s.DB, req.WalletAddress)
	if err != nil {
		s.Log.Errorw("connect wallet", "wallet_address", req.WalletAddress, "ERROR", err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if created {
		s.Log.Infow("connect wallet", "status", "user created", "user_id", user.ID, "wallet_address", user.WalletAddress)
	}

	if err := s.Sessions.Save(c, sessions.Wallet{WalletAddress: user.WalletAddress, UserID: user.ID}); err != nil {
		s.Log.Errorw("connect wallet", "wallet_address", req.WalletAddress, "ERROR", err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user": WalletUser{
			ID:            user.ID,
			WalletAddress: user.WalletAddress,
			Balance:       user.Balance,
			HashRate:      user.HashRate,
			TotalMined:    user.TotalMined,
		},
	})
}

// GetWalletBalance reports the figures of the wallet bound to the session.
func (s *WalletService) GetWalletBalance(c *fiber.Ctx) error {
	wallet, err := s.Sessions.Load(c)
	if err != nil {
		if errors.Is(err, sessions.ErrNoSession) {
			return utils.RespondWithError(c, fiber.StatusUnauthorized, "Not connected")
		}
		s.Log.Errorw("wallet balance", "ERROR", err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	user, found, err := FindUserByWallet(s.DB, wallet.WalletAddress)
	if err != nil {
		s.Log.Errorw("wallet balance", "wallet_address", wallet.WalletAddress, "ERROR", err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if !found {
		return utils.RespondWithError(c, fiber.StatusNotFound, "User not found")
	}

	return c.JSON(WalletBalance{
		Balance:    user.Balance,
		HashRate:   user.HashRate,
		TotalMined: user.TotalMined,
	})
}
