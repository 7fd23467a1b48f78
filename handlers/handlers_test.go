package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/venra/site/cache"
	"github.com/venra/site/content"
	"github.com/venra/site/lead"
	"github.com/venra/site/metrics"
)

type fakeStore struct {
	mu    sync.Mutex
	leads []lead.Lead
	err   error
	ping  error
}

func (s *fakeStore) Insert(_ context.Context, l lead.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads = append(s.leads, l)
	return s.err
}

func (s *fakeStore) Ping(context.Context) error {
	return s.ping
}

func (s *fakeStore) inserted() []lead.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]lead.Lead(nil), s.leads...)
}

type fakeNotifier struct {
	mu    sync.Mutex
	leads []lead.Lead
}

func (n *fakeNotifier) NotifyNewLead(l lead.Lead) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.leads = append(n.leads, l)
}

type testEnv struct {
	app      *fiber.App
	site     *Site
	store    *fakeStore
	notifier *fakeNotifier
	logs     *observer.ObservedLogs
	registry *prometheus.Registry
}

func newTestEnv(t *testing.T, store *fakeStore) *testEnv {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	base := zap.New(core)

	pages, err := cache.New[[]byte]("pages", func(b []byte) int64 { return int64(len(b)) }, time.Hour)
	require.NoError(t, err)
	t.Cleanup(pages.Close)

	registry := prometheus.NewRegistry()
	notifier := &fakeNotifier{}
	site := &Site{
		Content:      content.MustLoad(),
		Store:        store,
		Backend:      "test",
		StoreTimeout: time.Second,
		Metrics:      metrics.NewWaitlistMetrics(registry),
		Notifier:     notifier,
		Pages:        pages,
		ShareImage:   func() ([]byte, error) { return []byte("RIFF....WEBP"), nil },
	}

	app := fiber.New(fiber.Config{ErrorHandler: CustomErrorHandler})
	app.Use(requestid.New())
	app.Use(RequestLogger(base))
	RegisterRoutes(app, site, Routes{
		BaseURL:  "https://venra.example",
		Submit:   SubmitRateLimiter(3, time.Minute, nil),
		Gatherer: registry,
	})

	return &testEnv{app: app, site: site, store: store, notifier: notifier, logs: logs, registry: registry}
}

func (e *testEnv) do(t *testing.T, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := e.app.Test(req)
	require.NoError(t, err)
	return resp, readBody(t, resp)
}

// assertMetric scrapes /metrics and looks for one exposition line.
func (e *testEnv) assertMetric(t *testing.T, line string) {
	t.Helper()
	_, body := e.do(t, httptest.NewRequest(fiber.MethodGet, "/metrics", nil))
	assert.Contains(t, body, line)
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func htmxGet(path string) *http.Request {
	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	req.Header.Set("HX-Request", "true")
	return req
}

func htmxPost(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	req.Header.Set("HX-Request", "true")
	return req
}

func janeDoe() url.Values {
	return url.Values{
		"name":          {"Jane Doe"},
		"email":         {"jane@example.com"},
		"phone":         {"5551234567"},
		"communityName": {"Oak Ridge HOA"},
		"hoaSize":       {"25"},
	}
}

func TestPages(t *testing.T) {
	env := newTestEnv(t, &fakeStore{})

	tests := []struct {
		name     string
		path     string
		contains []string
	}{
		{name: "home", path: "/", contains: []string{"Join the Waitlist", "When will Venra launch?", `id="faq-list"`}},
		{name: "privacy", path: "/privacy", contains: []string{"Privacy Policy"}},
		{name: "terms", path: "/terms", contains: []string{"Terms of Service"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 2 {
				resp, body := env.do(t, httptest.NewRequest(fiber.MethodGet, tt.path, nil))
				assert.Equal(t, fiber.StatusOK, resp.StatusCode)
				assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")
				for _, want := range tt.contains {
					assert.Contains(t, body, want)
				}
			}
		})
	}
}

func TestNotFound(t *testing.T) {
	env := newTestEnv(t, &fakeStore{})

	resp, body := env.do(t, httptest.NewRequest(fiber.MethodGet, "/no-such-page", nil))
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "404")
}

func TestFAQToggle(t *testing.T) {
	env := newTestEnv(t, &fakeStore{})

	t.Run("opens the clicked item", func(t *testing.T) {
		resp, body := env.do(t, htmxGet("/faq/1?open=-1"))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, body, `aria-controls="faq-answer-1"`)
		assert.Equal(t, 1, strings.Count(body, `aria-expanded="true"`))
		assert.Contains(t, body, `hx-get="/faq/0?open=1"`)
	})

	t.Run("clicking the open item closes it", func(t *testing.T) {
		_, body := env.do(t, htmxGet("/faq/1?open=1"))
		assert.NotContains(t, body, `aria-expanded="true"`)
	})

	t.Run("bad index", func(t *testing.T) {
		resp, _ := env.do(t, htmxGet("/faq/x"))
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestWaitlistModal(t *testing.T) {
	env := newTestEnv(t, &fakeStore{})

	resp, body := env.do(t, htmxGet("/modal/waitlist"))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `id="waitlist-modal"`)
	assert.Contains(t, body, `hx-post="/api/waitlist"`)
	env.assertMetric(t, "venra_waitlist_modal_opens_total 1")

	resp, _ = env.do(t, httptest.NewRequest(fiber.MethodGet, "/modal/waitlist", nil))
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get(fiber.HeaderLocation))
}

func TestWaitlistClose(t *testing.T) {
	env := newTestEnv(t, &fakeStore{})

	resp, body := env.do(t, htmxGet("/modal/waitlist/close"))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotContains(t, body, "waitlist")
}

func TestWaitlistPhone(t *testing.T) {
	env := newTestEnv(t, &fakeStore{})

	tests := []struct {
		input string
		want  string
	}{
		{input: "555", want: `value="555"`},
		{input: "5551234", want: `value="(555) 123-4"`},
		{input: "(555) 123-4567 ext", want: `value="(555) 123-4567"`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, body := env.do(t, htmxPost("/modal/waitlist/phone", url.Values{"phone": {tt.input}}))
			assert.Contains(t, body, tt.want)
			assert.Contains(t, body, `name="phone"`)
		})
	}
}

func TestWaitlistTier(t *testing.T) {
	env := newTestEnv(t, &fakeStore{})

	t.Run("select", func(t *testing.T) {
		_, body := env.do(t, htmxPost("/modal/waitlist/tier/50", url.Values{"hoaSize": {"10"}}))
		assert.Contains(t, body, `value="50"`)
		assert.Equal(t, 1, strings.Count(body, `aria-checked="true"`))
	})

	t.Run("unknown tier keeps the selection", func(t *testing.T) {
		_, body := env.do(t, htmxPost("/modal/waitlist/tier/75", url.Values{"hoaSize": {"10"}}))
		assert.Contains(t, body, `value="10"`)
	})
}

func TestWaitlistSubmit(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		env := newTestEnv(t, &fakeStore{})

		resp, body := env.do(t, htmxPost("/api/waitlist", janeDoe()))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "Thank You!")
		assert.Contains(t, body, `id="waitlist-modal"`)

		leads := env.store.inserted()
		require.Len(t, leads, 1)
		assert.Equal(t, "Jane Doe", leads[0].Name)
		assert.Equal(t, "(555) 123-4567", leads[0].Phone)
		require.NotNil(t, leads[0].HOASize)
		assert.Equal(t, 25, *leads[0].HOASize)

		assert.Len(t, env.notifier.leads, 1)
		env.assertMetric(t, `venra_waitlist_submissions_total{result="submitted"} 1`)
	})

	t.Run("without a tier stores a null size", func(t *testing.T) {
		env := newTestEnv(t, &fakeStore{})
		values := janeDoe()
		values.Del("hoaSize")

		resp, _ := env.do(t, htmxPost("/api/waitlist", values))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		leads := env.store.inserted()
		require.Len(t, leads, 1)
		assert.Nil(t, leads[0].HOASize)
	})

	t.Run("whitespace name is accepted like the browser does", func(t *testing.T) {
		env := newTestEnv(t, &fakeStore{})
		values := janeDoe()
		values.Set("name", "   ")

		_, body := env.do(t, htmxPost("/api/waitlist", values))
		assert.Contains(t, body, "Thank You!")
		leads := env.store.inserted()
		require.Len(t, leads, 1)
		assert.Equal(t, "   ", leads[0].Name)
	})

	t.Run("without alerts configured", func(t *testing.T) {
		env := newTestEnv(t, &fakeStore{})
		env.site.Notifier = nil

		resp, body := env.do(t, htmxPost("/api/waitlist", janeDoe()))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "Thank You!")
		assert.Len(t, env.store.inserted(), 1)
		assert.Empty(t, env.notifier.leads)
	})

	t.Run("incomplete", func(t *testing.T) {
		env := newTestEnv(t, &fakeStore{})
		values := janeDoe()
		values.Set("email", "")
		values.Set("phone", "  ")

		resp, body := env.do(t, htmxPost("/api/waitlist", values))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "Please fill in: Email, Phone Number")
		assert.Contains(t, body, `value="Jane Doe"`)
		assert.Empty(t, env.store.inserted())
		assert.Empty(t, env.notifier.leads)
	})

	t.Run("store failure is silent and logged once", func(t *testing.T) {
		env := newTestEnv(t, &fakeStore{err: &lead.StoreError{Backend: "test", Err: errors.New("connection refused")}})

		resp, body := env.do(t, htmxPost("/api/waitlist", janeDoe()))
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
		assert.Empty(t, body)
		assert.Len(t, env.store.inserted(), 1)
		assert.Empty(t, env.notifier.leads)

		failures := env.logs.FilterLevelExact(zapcore.ErrorLevel).All()
		require.Len(t, failures, 1)
		assert.Equal(t, "waitlist insert failed", failures[0].Message)
		env.assertMetric(t, `venra_waitlist_submissions_total{result="store_error"} 1`)
	})

	t.Run("rate limited", func(t *testing.T) {
		env := newTestEnv(t, &fakeStore{})

		for range 3 {
			resp, _ := env.do(t, htmxPost("/api/waitlist", janeDoe()))
			require.Equal(t, fiber.StatusOK, resp.StatusCode)
		}
		resp, body := env.do(t, htmxPost("/api/waitlist", janeDoe()))
		assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
		assert.Contains(t, body, "Too many signup attempts")
		assert.Len(t, env.store.inserted(), 3)
	})
}

func TestHealth(t *testing.T) {
	t.Run("up", func(t *testing.T) {
		env := newTestEnv(t, &fakeStore{})
		resp, body := env.do(t, httptest.NewRequest(fiber.MethodGet, "/health", nil))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, body, `"status":"ok"`)
		assert.Contains(t, body, `"store":"up"`)
	})

	t.Run("down", func(t *testing.T) {
		env := newTestEnv(t, &fakeStore{ping: errors.New("unreachable")})
		resp, body := env.do(t, httptest.NewRequest(fiber.MethodGet, "/health", nil))
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
		assert.Contains(t, body, `"store":"down"`)
	})
}

func TestShareImage(t *testing.T) {
	env := newTestEnv(t, &fakeStore{})

	resp, body := env.do(t, httptest.NewRequest(fiber.MethodGet, "/og-image.webp", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/webp", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, "RIFF....WEBP", body)
}

func TestSitemap(t *testing.T) {
	env := newTestEnv(t, &fakeStore{})

	resp, body := env.do(t, httptest.NewRequest(fiber.MethodGet, "/sitemap.xml", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "<loc>https://venra.example/</loc>")
	assert.Contains(t, body, "<loc>https://venra.example/terms</loc>")
	assert.NotContains(t, body, "/modal/")
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t, &fakeStore{})
	env.do(t, htmxPost("/api/waitlist", janeDoe()))

	resp, body := env.do(t, httptest.NewRequest(fiber.MethodGet, "/metrics", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `result="submitted"`)
}
