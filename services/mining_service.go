// services/mining_service.go
package services

import (
	"green-hash-api/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// workerSuffix is appended to the wallet address to name the pool worker.
const workerSuffix = ".worker1"

// MiningService simulates pool membership. Nothing is persisted.
type MiningService struct {
	PoolAddress string
	Log         *zap.SugaredLogger
}

func NewMiningService(poolAddress string, log *zap.SugaredLogger) *MiningService {
	return &MiningService{PoolAddress: poolAddress, Log: log}
}

// JoinMiningPool hands out the stratum endpoint and a worker name.
func (s *MiningService) JoinMiningPool(c *fiber.Ctx) error {
	var req struct {
		WalletAddress string `json:"wallet_address" validate:"required"`
	}
	if err := utils.BindJSON(c, &req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Wallet address required")
	}

	workerName := req.WalletAddress + workerSuffix
	s.Log.Infow("join pool", "worker_name", workerName)

	return c.JSON(fiber.Map{
		"success":      true,
		"message":      "Successfully joined mining pool",
		"pool_address": s.PoolAddress,
		"worker_name":  workerName,
	})
}
