package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"golang.org/x/crypto/bcrypt"

	"github.com/venra/site/cache"
	"github.com/venra/site/ui"
)

// AdminRequired guards the admin routes with basic auth. passwordHash is a
// bcrypt hash; an empty hash rejects everyone.
func AdminRequired(username, passwordHash string) fiber.Handler {
	return basicauth.New(basicauth.Config{
		Realm: "Venra Admin",
		Authorizer: func(user, pass string) bool {
			if passwordHash == "" || user != username {
				return false
			}
			return VerifyPassword(passwordHash, pass) == nil
		},
	})
}

// VerifyPassword verifies a password against a bcrypt hash
func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func (s *Site) pageCacheStats() cache.Stats {
	if s.Pages == nil {
		return cache.Stats{Name: "pages"}
	}
	return s.Pages.Stats()
}

func (s *Site) HandleAdminCache(c *fiber.Ctx) error {
	if isHTMX(c) {
		return render(c, ui.AdminCacheSection(s.pageCacheStats()))
	}
	return render(c, ui.AdminCachePage(s.pageCacheStats()))
}

func (s *Site) HandleRefreshPageCache(c *fiber.Ctx) error {
	return render(c, ui.CacheStatsPanel("Page Cache", s.pageCacheStats(), "/admin/cache/clear", "/admin/cache/refresh"))
}

// HandleClearPageCache drops every rendered page so the next request renders fresh.
func (s *Site) HandleClearPageCache(c *fiber.Ctx) error {
	if s.Pages != nil {
		s.Pages.Clear()
	}
	return s.HandleRefreshPageCache(c)
}
