// services/community_service.go
package services

import (
	"green-hash-api/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CommunityService acknowledges contact and community forms. Nothing is
// stored and no mail is sent.
type CommunityService struct {
	Log *zap.SugaredLogger
}

func NewCommunityService(log *zap.SugaredLogger) *CommunityService {
	return &CommunityService{Log: log}
}

func (s *CommunityService) SendContactMessage(c *fiber.Ctx) error {
	var req struct {
		Name    string `json:"name" validate:"required"`
		Email   string `json:"email" validate:"required"`
		Subject string `json:"subject" validate:"required"`
		Message string `json:"message" validate:"required"`
	}
	if err := utils.BindJSON(c, &req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Missing parameters")
	}

	s.Log.Infow("contact message", "subject", req.Subject)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Message sent successfully. We will respond within 24 hours.",
	})
}

func (s *CommunityService) JoinCommunity(c *fiber.Ctx) error {
	var req struct {
		Name  string `json:"name" validate:"required"`
		Email string `json:"email" validate:"required"`
		Level string `json:"level" validate:"required"`
	}
	if err := utils.BindJSON(c, &req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Missing parameters")
	}

	s.Log.Infow("community join", "level", req.Level)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Welcome to Green Hash community! Check your email for access links.",
	})
}
