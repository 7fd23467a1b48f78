package handlers

import (
	"encoding/base64"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/venra/site/cache"
)

func newAdminApp(t *testing.T) (*fiber.App, *Site) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	pages, err := cache.New[[]byte]("pages", func(b []byte) int64 { return int64(len(b)) }, time.Hour)
	require.NoError(t, err)
	t.Cleanup(pages.Close)

	site := &Site{Pages: pages}
	app := fiber.New(fiber.Config{ErrorHandler: CustomErrorHandler})
	RegisterRoutes(app, site, Routes{Admin: AdminRequired("admin", string(hash))})
	return app, site
}

func basicAuth(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func TestAdminRequired(t *testing.T) {
	app, _ := newAdminApp(t)

	tests := []struct {
		name       string
		auth       string
		wantStatus int
	}{
		{name: "no credentials", auth: "", wantStatus: fiber.StatusUnauthorized},
		{name: "wrong password", auth: basicAuth("admin", "nope"), wantStatus: fiber.StatusUnauthorized},
		{name: "wrong user", auth: basicAuth("root", "s3cret"), wantStatus: fiber.StatusUnauthorized},
		{name: "valid", auth: basicAuth("admin", "s3cret"), wantStatus: fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/admin/cache", nil)
			if tt.auth != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.auth)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestAdminEmptyHashRejectsEveryone(t *testing.T) {
	app := fiber.New()
	app.Get("/", AdminRequired("admin", ""), func(c *fiber.Ctx) error { return c.SendString("ok") })

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderAuthorization, basicAuth("admin", ""))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminClearPageCache(t *testing.T) {
	app, site := newAdminApp(t)

	site.Pages.Set("/", []byte("<html></html>"))
	site.Pages.Wait()
	_, ok := site.Pages.Get("/")
	require.True(t, ok)

	req := httptest.NewRequest(fiber.MethodPost, "/admin/cache/clear", nil)
	req.Header.Set(fiber.HeaderAuthorization, basicAuth("admin", "s3cret"))
	req.Header.Set("HX-Request", "true")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Page Cache")

	_, ok = site.Pages.Get("/")
	assert.False(t, ok)
}
