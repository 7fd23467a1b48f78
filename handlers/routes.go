package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes holds what RegisterRoutes needs besides the Site.
type Routes struct {
	BaseURL string
	// Submit limits POST /api/waitlist. Nil disables the limit.
	Submit fiber.Handler
	// Gatherer backs /metrics. Nil leaves the endpoint out.
	Gatherer prometheus.Gatherer
	// Admin guards /admin. Nil leaves the admin routes out.
	Admin fiber.Handler
}

// RegisterRoutes mounts every page, fragment and API route on app.
func RegisterRoutes(app *fiber.App, s *Site, r Routes) {
	app.Get("/.well-known/appspecific/com.chrome.devtools.json", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	// Pages
	app.Get("/", s.HandleHome)
	app.Get("/privacy", s.HandlePrivacyPolicy)
	app.Get("/terms", s.HandleTermsOfService)
	app.Get("/og-image.webp", s.HandleShareImage)
	app.Get("/sitemap.xml", HandleSitemap(r.BaseURL))

	// FAQ accordion
	app.Get("/faq/:index", s.HandleFAQToggle)

	// Modal routes for HTMX-based modals
	app.Get("/modal/waitlist", s.HandleWaitlistModal)
	app.Get("/modal/waitlist/close", s.HandleWaitlistClose)
	app.Post("/modal/waitlist/phone", s.HandleWaitlistPhone)
	app.Post("/modal/waitlist/tier/:homes", s.HandleWaitlistTier)

	// API group
	api := app.Group("/api")
	if r.Submit != nil {
		api.Post("/waitlist", r.Submit, s.HandleWaitlistSubmit)
	} else {
		api.Post("/waitlist", s.HandleWaitlistSubmit)
	}

	// Health check
	app.Get("/health", s.HandleHealth)
	if r.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(r.Gatherer, promhttp.HandlerOpts{})))
	}

	// Admin dashboard and management
	if r.Admin != nil {
		admin := app.Group("/admin", r.Admin)
		admin.Get("/cache", s.HandleAdminCache)
		admin.Get("/cache/refresh", s.HandleRefreshPageCache)
		admin.Post("/cache/clear", s.HandleClearPageCache)
	}

	// Everything else is a 404 page
	app.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})
}
