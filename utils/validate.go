// utils/validate.go
package utils

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// BindJSON parses the request body into req and runs its `validate` tags.
// A body that cannot be parsed and a failed check are both reported as
// errors; callers answer 400 either way.
func BindJSON(c *fiber.Ctx, req any) error {
	if err := c.BodyParser(req); err != nil {
		return err
	}
	return validate.Struct(req)
}
