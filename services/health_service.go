// services/health_service.go
package services

import (
	"context"
	"time"

	"green-hash-api/database"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HealthService struct {
	DB *gorm.DB
}

func NewHealthService(db *gorm.DB) *HealthService {
	return &HealthService{DB: db}
}

// Check reports whether the store answers a ping within a second.
func (s *HealthService) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := database.StatusCheck(ctx, s.DB); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "db not ready",
		})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
