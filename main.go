package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/venra/site/analytics"
	"github.com/venra/site/cache"
	"github.com/venra/site/config"
	"github.com/venra/site/content"
	"github.com/venra/site/db"
	h "github.com/venra/site/handlers"
	"github.com/venra/site/lead"
	"github.com/venra/site/logger"
	"github.com/venra/site/metrics"
	"github.com/venra/site/notification"
	"github.com/venra/site/ogimage"
	"github.com/venra/site/redis"
	"github.com/venra/site/supabase"
)

func main() {
	config.Load()

	zl, err := logger.New(config.LogLevel, config.IsDevelopment())
	if err != nil {
		log.Fatalf("error initializing logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	// Analytics is optional; a bad container id only disables it
	if err := analytics.Init(config.GTMContainerID); err != nil {
		zl.Warn("analytics disabled", zap.Error(err))
	}

	site, err := content.Load()
	if err != nil {
		zl.Fatal("failed to load site content", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, backend, closeStore := openStore(ctx, zl)
	defer closeStore()

	// Rate limiter storage is shared across instances when Redis is configured
	var limiterStorage fiber.Storage
	if config.RedisAddress != "" {
		rs := redis.NewStorage(redis.NewClient(config.RedisAddress, config.RedisPassword), "")
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := rs.Ping(pingCtx); err != nil {
			zl.Warn("redis unavailable, limiter falls back to memory", zap.Error(err))
			_ = rs.Close()
		} else {
			limiterStorage = rs
			rs.StartHealthCheck(ctx, 30*time.Second, zl)
			defer rs.Close()
		}
		cancel()
	}

	// Initialize page cache
	pages, err := cache.New[[]byte]("pages", func(b []byte) int64 { return int64(len(b)) }, config.PageCacheTTL)
	if err != nil {
		zl.Fatal("failed to initialize page cache", zap.Error(err))
	}
	defer pages.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	waitlistMetrics := metrics.NewWaitlistMetrics(registry)

	notifier, err := notification.NewNotificationService(notification.Config{
		TwilioAccountSID:  config.TwilioAccountSID,
		TwilioAuthToken:   config.TwilioAuthToken,
		TwilioFromNumber:  config.TwilioFromNumber,
		AlertPhone:        config.LeadAlertPhone,
		SendGridAPIKey:    config.SendGridAPIKey,
		SendGridFromEmail: config.SendGridFromEmail,
		AlertEmail:        config.LeadAlertEmail,
		Timeout:           10 * time.Second,
	}, zl, waitlistMetrics)
	if err != nil {
		zl.Info("lead alerts disabled", zap.Error(err))
	}

	s := &h.Site{
		Content:      site,
		Store:        store,
		Backend:      backend,
		StoreTimeout: config.StoreTimeout,
		Metrics:      waitlistMetrics,
		Pages:        pages,
		ShareImage: func() ([]byte, error) {
			return ogimage.Render(ogimage.FromSite(site))
		},
	}

	if notifier != nil {
		s.Notifier = notifier
		defer notifier.Close()
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: h.CustomErrorHandler,
		ReadTimeout:  config.ServerReadTimeout,  // Prevent long-running requests
		WriteTimeout: config.ServerWriteTimeout, // Prevent long-running responses
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(h.RequestLogger(zl))

	// Add logger middleware
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(compress.New())

	// Add rate limiter
	app.Use(h.GlobalRateLimiter(config.ServerRateLimitMax, config.ServerRateLimitExp, limiterStorage))

	routes := h.Routes{
		BaseURL:  config.BaseURL,
		Submit:   h.SubmitRateLimiter(config.SubmitRateLimitMax, config.SubmitRateLimitExp, limiterStorage),
		Gatherer: registry,
	}
	if config.AdminPasswordHash != "" {
		routes.Admin = h.AdminRequired(config.AdminUsername, config.AdminPasswordHash)
	}
	h.RegisterRoutes(app, s, routes)

	go func() {
		<-ctx.Done()
		zl.Info("shutting down")
		if err := app.ShutdownWithTimeout(config.ServerShutdownGrace); err != nil {
			zl.Error("shutdown failed", zap.Error(err))
		}
	}()

	zl.Info("starting server",
		zap.String("port", config.ServerPort),
		zap.String("backend", backend),
		zap.Bool("analytics", analytics.ContainerID() != ""),
	)
	if err := app.Listen(":" + config.ServerPort); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}

// openStore picks the lead store: Supabase when configured, then Postgres,
// then the local SQLite file.
func openStore(ctx context.Context, zl *zap.Logger) (lead.Store, string, func()) {
	switch {
	case config.HostedStore():
		client, err := supabase.New(supabase.Config{
			URL:     config.SupabaseURL,
			APIKey:  config.SupabaseAnonKey,
			Table:   config.SupabaseTable,
			Timeout: config.StoreTimeout,
		})
		if err != nil {
			zl.Fatal("failed to configure supabase", zap.Error(err))
		}
		return client, "supabase", func() {}

	case config.PostgresStore():
		pool, err := db.OpenPostgres(ctx, db.PostgresConfig{
			DSN:         config.DatabaseURL,
			MaxConns:    10,
			MaxConnIdle: 5 * time.Minute,
		}, zl)
		if err != nil {
			zl.Fatal("failed to connect to postgres", zap.Error(err))
		}
		return lead.NewPostgresStore(pool), "postgres", pool.Close
	}

	// Initialize database
	if err := db.Init(config.DatabaseURL, zl); err != nil {
		zl.Fatal("error initializing database", zap.Error(err))
	}
	store, err := lead.NewSQLiteStore(ctx)
	if err != nil {
		zl.Fatal("failed to prepare leads table", zap.Error(err))
	}
	return store, "sqlite", func() { _ = db.Close() }
}
