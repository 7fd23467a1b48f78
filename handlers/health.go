package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/venra/site/lead"
)

// HandleHealth returns the health status of the application
func (s *Site) HandleHealth(c *fiber.Ctx) error {
	health := fiber.Map{
		"status":  "ok",
		"backend": s.Backend,
	}

	// Check store connectivity when the backend supports it
	if pinger, ok := s.Store.(lead.Pinger); ok {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		if err := pinger.Ping(ctx); err != nil {
			health["status"] = "unhealthy"
			health["store"] = "down"
			c.Status(fiber.StatusServiceUnavailable)
		} else {
			health["store"] = "up"
		}
	} else {
		health["store"] = "unknown"
	}

	if s.Pages != nil {
		health["page_cache"] = s.Pages.Stats()
	}

	return c.JSON(health)
}
