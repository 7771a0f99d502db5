// services/exchange_service.go
package services

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"time"

	"green-hash-api/metrics"
	"green-hash-api/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ExchangeService quotes prices and simulates swaps. No trade settles and
// nothing is persisted.
type ExchangeService struct {
	Source metrics.Source
	Log    *zap.SugaredLogger
	Now    func() time.Time
}

func NewExchangeService(src metrics.Source, log *zap.SugaredLogger) *ExchangeService {
	return &ExchangeService{Source: src, Log: log, Now: time.Now}
}

type SwapResult struct {
	Success        bool    `json:"success"`
	TransactionID  string  `json:"transaction_id"`
	FromCurrency   string  `json:"from_currency"`
	ToCurrency     string  `json:"to_currency"`
	Amount         float64 `json:"amount"`
	ReceivedAmount float64 `json:"received_amount"`
	Rate           float64 `json:"rate"`
}

// GetExchangeRates serves freshly drawn quotes.
func (s *ExchangeService) GetExchangeRates(c *fiber.Ctx) error {
	return c.JSON(s.Source.ExchangeRates())
}

// ExecuteSwap converts amount at a drawn rate.
func (s *ExchangeService) ExecuteSwap(c *fiber.Ctx) error {
	var req struct {
		FromCurrency string  `json:"from_currency" validate:"required"`
		ToCurrency   string  `json:"to_currency" validate:"required"`
		Amount       float64 `json:"amount" validate:"required"`
	}
	if err := utils.BindJSON(c, &req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Missing parameters")
	}

	rate := s.Source.SwapRate()
	res := SwapResult{
		Success:        true,
		TransactionID:  TransactionID(s.Now(), req.Amount),
		FromCurrency:   req.FromCurrency,
		ToCurrency:     req.ToCurrency,
		Amount:         req.Amount,
		ReceivedAmount: metrics.Round(req.Amount*rate, 8),
		Rate:           metrics.Round(rate, 6),
	}

	s.Log.Infow("swap", "transaction_id", res.TransactionID, "from", res.FromCurrency, "to", res.ToCurrency, "amount", res.Amount)

	return c.JSON(res)
}

// TransactionID is the hex MD5 of the unix time and the amount.
func TransactionID(t time.Time, amount float64) string {
	secs := float64(t.UnixNano()) / float64(time.Second)
	content := strconv.FormatFloat(secs, 'f', -1, 64) + strconv.FormatFloat(amount, 'f', -1, 64)
	sum := md5.Sum([]byte(content))
	return hex.EncodeToString(sum[:])
}
