package local

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLogger(t *testing.T) {
	base := zap.NewExample()
	app := fiber.New()
	app.Use(requestid.New())
	app.Get("/set", func(c *fiber.Ctx) error {
		SetLogger(c, base)
		assert.Same(t, base, Logger(c))
		assert.NotEmpty(t, RequestID(c))
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/unset", func(c *fiber.Ctx) error {
		assert.NotNil(t, Logger(c))
		return c.SendStatus(fiber.StatusOK)
	})

	for _, path := range []string{"/set", "/unset"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
}
