package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/venra/site/local"
)

// RequestLogger stores a logger tagged with the request id in the context
// locals. It must run after the requestid middleware.
func RequestLogger(base *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		local.SetLogger(c, base.With(zap.String("request_id", local.RequestID(c))))
		return c.Next()
	}
}

// isHTMX reports whether the request was issued by htmx.
func isHTMX(c *fiber.Ctx) bool {
	return c.Get("HX-Request") == "true"
}
