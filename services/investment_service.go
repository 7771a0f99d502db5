// services/investment_service.go
package services

import (
	"green-hash-api/models"
	"green-hash-api/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type InvestmentService struct {
	DB  *gorm.DB
	Log *zap.SugaredLogger
}

func NewInvestmentService(db *gorm.DB, log *zap.SugaredLogger) *InvestmentService {
	return &InvestmentService{DB: db, Log: log}
}

// CreateInvestment records an investment for an existing user.
func (s *InvestmentService) CreateInvestment(c *fiber.Ctx) error {
	var req struct {
		WalletAddress  string  `json:"wallet_address" validate:"required"`
		InvestmentType string  `json:"investment_type" validate:"required"`
		Amount         float64 `json:"amount" validate:"required"`
	}
	if err := utils.BindJSON(c, &req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Missing parameters")
	}

	user, found, err := FindUserByWallet(s.DB, req.WalletAddress)
	if err != nil {
		s.Log.Errorw("create investment", "wallet_address", req.WalletAddress, "ERROR", err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if !found {
		return utils.RespondWithError(c, fiber.StatusNotFound, "User not found")
	}

	investment := models.Investment{
		UserID:         user.ID,
		InvestmentType: req.InvestmentType,
		Amount:         req.Amount,
		Status:         models.InvestmentStatusActive,
	}
	if err := s.DB.Omit("User").Create(&investment).Error; err != nil {
		s.Log.Errorw("create investment", "user_id", user.ID, "ERROR", err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	s.Log.Infow("create investment", "investment_id", investment.ID, "user_id", user.ID, "type", investment.InvestmentType)

	return c.JSON(fiber.Map{
		"success":       true,
		"investment_id": investment.ID,
		"message":       "Investment created successfully",
	})
}
