package local

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const loggerKey = "logger"

// SetLogger stores the request-scoped logger.
func SetLogger(c *fiber.Ctx, logger *zap.Logger) {
	c.Locals(loggerKey, logger)
}

// Logger returns the request-scoped logger, or a no-op logger when none was set.
func Logger(c *fiber.Ctx) *zap.Logger {
	if logger, ok := c.Locals(loggerKey).(*zap.Logger); ok && logger != nil {
		return logger
	}
	return zap.NewNop()
}

// RequestID returns the id set by the requestid middleware.
func RequestID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}
