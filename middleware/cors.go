package middleware

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CORSConfig defines the config for CORS middleware
type CORSConfig struct {
	AllowedOrigins   []string
	AllowCredentials bool
	AllowedMethods   []string
	AllowedHeaders   []string
	MaxAge           int
}

// DefaultCORSConfig returns a default CORS config
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		MaxAge:           3600,
	}
}

// CORS creates a new CORS middleware handler
func CORS(config ...CORSConfig) fiber.Handler {
	cfg := DefaultCORSConfig()
	if len(config) > 0 {
		cfg = config[0]
	}

	allowedOrigins := make(map[string]struct{})
	for _, origin := range cfg.AllowedOrigins {
		allowedOrigins[origin] = struct{}{}
	}

	allowedMethods := strings.Join(cfg.AllowedMethods, ",")
	allowedHeaders := strings.Join(cfg.AllowedHeaders, ",")

	return func(c *fiber.Ctx) error {
		origin := c.Get("Origin")

		if len(cfg.AllowedOrigins) > 0 {
			if _, ok := allowedOrigins[origin]; ok {
				c.Set("Access-Control-Allow-Origin", origin)
			}
		} else {
			c.Set("Access-Control-Allow-Origin", "*")
		}

		if cfg.AllowCredentials {
			c.Set("Access-Control-Allow-Credentials", "true")
		}

		// Preflight
		if c.Method() == "OPTIONS" {
			c.Set("Access-Control-Allow-Methods", allowedMethods)
			c.Set("Access-Control-Allow-Headers", allowedHeaders)
			c.Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
			return c.SendStatus(fiber.StatusNoContent)
		}

		return c.Next()
	}
}
