package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/venra/site/local"
	"github.com/venra/site/ui"
)

// CustomErrorHandler renders the error page and logs server errors.
func CustomErrorHandler(ctx *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	message := err.Error()
	if code >= fiber.StatusInternalServerError {
		local.Logger(ctx).Error("request failed",
			zap.Error(err),
			zap.String("method", ctx.Method()),
			zap.String("path", ctx.Path()),
		)
		message = "Something went wrong on our side. Please try again later."
	}

	ctx.Status(code)
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return ui.ErrorPage(code, message).Render(ctx.Response().BodyWriter())
}
