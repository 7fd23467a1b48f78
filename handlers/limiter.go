package handlers

import (
	"encoding/hex"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"golang.org/x/crypto/blake2b"

	"github.com/venra/site/ui"
)

// clientKey hashes the client IP so raw addresses are never stored.
func clientKey(c *fiber.Ctx) string {
	sum := blake2b.Sum256([]byte(c.IP()))
	return hex.EncodeToString(sum[:16])
}

// GlobalRateLimiter limits every route per client. A nil storage keeps
// counters in memory.
func GlobalRateLimiter(limit int, exp time.Duration, storage fiber.Storage) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:          limit,
		Expiration:   exp,
		KeyGenerator: func(c *fiber.Ctx) string { return "global:" + clientKey(c) },
		Storage:      storage,
	})
}

// SubmitRateLimiter is a strict limiter for waitlist submissions.
func SubmitRateLimiter(limit int, exp time.Duration, storage fiber.Storage) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:          limit,
		Expiration:   exp,
		KeyGenerator: func(c *fiber.Ctx) string { return "submit:" + clientKey(c) },
		Storage:      storage,
		LimitReached: func(c *fiber.Ctx) error {
			c.Status(fiber.StatusTooManyRequests)
			return render(c, ui.ValidationError("Too many signup attempts. Please try again later."))
		},
	})
}
