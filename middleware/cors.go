// middleware/cors.go
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS allows the configured origins, a comma separated list or "*".
// Credentials are only allowed for an explicit list since browsers reject
// them with a wildcard origin.
func CORS(allowOrigins string) fiber.Handler {
	origins, credentials := parseOrigins(allowOrigins)

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, X-Requested-With",
		AllowCredentials: credentials,
		MaxAge:           86400,
	})
}

// parseOrigins normalizes the origin list. A "*" mixed with explicit
// origins is dropped so credentials never pair with a wildcard; a list
// with nothing else left falls back to "*" without credentials.
func parseOrigins(allowOrigins string) (string, bool) {
	var origins []string
	for _, origin := range strings.Split(allowOrigins, ",") {
		origin = strings.TrimSpace(origin)
		if origin == "" || origin == "*" {
			continue
		}
		origins = append(origins, origin)
	}

	if len(origins) == 0 {
		return "*", false
	}
	return strings.Join(origins, ","), true
}
