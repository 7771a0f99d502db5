// middleware/errors.go
package middleware

import (
	"errors"

	"green-hash-api/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler turns errors that escape handlers into JSON. Unknown
// routes answer 404 and anything unexpected, panics included, answers a
// generic 500 while the cause goes to the log.
func ErrorHandler(log *zap.SugaredLogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			switch {
			case fe.Code == fiber.StatusNotFound:
				return utils.RespondWithError(c, fiber.StatusNotFound, "Endpoint not found")
			case fe.Code < fiber.StatusInternalServerError:
				return utils.RespondWithError(c, fe.Code, fe.Message)
			}
		}

		log.Errorw("request failed", "method", c.Method(), "path", c.Path(), "ERROR", err)
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Internal server error")
	}
}
