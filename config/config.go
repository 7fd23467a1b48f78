// Package config holds the site's runtime settings. Values are package
// level and filled by Load at startup.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// HeaderOffset is the sticky header height subtracted when scrolling to a section.
	HeaderOffset = 80

	// LegalLastUpdated is shown on the privacy and terms pages.
	LegalLastUpdated = "March 20, 2025"

	// DefaultGTMContainerID is used when GTM_CONTAINER_ID is not set.
	DefaultGTMContainerID = "GTM-PCWFRBM9"
)

var (
	ServerPort          = "8080"
	BaseURL             = "http://localhost:8080"
	AppEnv              = "development"
	LogLevel            = "info"
	ServerReadTimeout   = 30 * time.Second
	ServerWriteTimeout  = 30 * time.Second
	ServerShutdownGrace = 10 * time.Second

	SupabaseURL     = ""
	SupabaseAnonKey = ""
	SupabaseTable   = "leads"
	StoreTimeout    = 10 * time.Second
	DatabaseURL     = "venra.db"

	RedisAddress  = ""
	RedisPassword = ""

	// Submissions allowed per client per window on the submit endpoint.
	SubmitRateLimitMax = 5
	SubmitRateLimitExp = time.Minute
	// Requests allowed per client per window on every other route.
	ServerRateLimitMax = 120
	ServerRateLimitExp = time.Minute

	GTMContainerID = DefaultGTMContainerID

	TwilioAccountSID = ""
	TwilioAuthToken  = ""
	TwilioFromNumber = ""
	LeadAlertPhone   = ""

	SendGridAPIKey    = ""
	SendGridFromEmail = ""
	LeadAlertEmail    = ""

	TailwindCDN = "https://cdn.tailwindcss.com"
	HTMXCDN     = "https://unpkg.com/htmx.org@2.0.4"

	PageCacheTTL = time.Hour

	// The admin dashboard is off until a bcrypt hash is set.
	AdminUsername     = "admin"
	AdminPasswordHash = ""
)

// Load reads .env, if present, and then the environment.
func Load() {
	_ = godotenv.Load()

	ServerPort = getEnv("PORT", ServerPort)
	BaseURL = strings.TrimRight(getEnv("BASE_URL", BaseURL), "/")
	AppEnv = getEnv("APP_ENV", AppEnv)
	LogLevel = getEnv("LOG_LEVEL", LogLevel)

	SupabaseURL = getEnv("SUPABASE_URL", SupabaseURL)
	SupabaseAnonKey = getEnv("SUPABASE_ANON_KEY", SupabaseAnonKey)
	SupabaseTable = getEnv("SUPABASE_TABLE", SupabaseTable)
	StoreTimeout = getEnvAsDuration("STORE_TIMEOUT", StoreTimeout)
	DatabaseURL = getEnv("DATABASE_URL", DatabaseURL)

	RedisAddress = getEnv("REDIS_ADDR", RedisAddress)
	RedisPassword = getEnv("REDIS_PASSWORD", RedisPassword)

	SubmitRateLimitMax = getEnvAsInt("SUBMIT_RATE_LIMIT_MAX", SubmitRateLimitMax)
	SubmitRateLimitExp = getEnvAsDuration("SUBMIT_RATE_LIMIT_WINDOW", SubmitRateLimitExp)
	ServerRateLimitMax = getEnvAsInt("RATE_LIMIT_MAX", ServerRateLimitMax)
	ServerRateLimitExp = getEnvAsDuration("RATE_LIMIT_WINDOW", ServerRateLimitExp)

	// An empty GTM_CONTAINER_ID disables analytics.
	if id, ok := os.LookupEnv("GTM_CONTAINER_ID"); ok {
		GTMContainerID = id
	}

	TwilioAccountSID = getEnv("TWILIO_ACCOUNT_SID", TwilioAccountSID)
	TwilioAuthToken = getEnv("TWILIO_AUTH_TOKEN", TwilioAuthToken)
	TwilioFromNumber = getEnv("TWILIO_FROM_NUMBER", TwilioFromNumber)
	LeadAlertPhone = getEnv("LEAD_ALERT_PHONE", LeadAlertPhone)

	SendGridAPIKey = getEnv("SENDGRID_API_KEY", SendGridAPIKey)
	SendGridFromEmail = getEnv("SENDGRID_FROM_EMAIL", SendGridFromEmail)
	LeadAlertEmail = getEnv("LEAD_ALERT_EMAIL", LeadAlertEmail)

	TailwindCDN = getEnv("TAILWIND_CDN", TailwindCDN)
	HTMXCDN = getEnv("HTMX_CDN", HTMXCDN)
	PageCacheTTL = getEnvAsDuration("PAGE_CACHE_TTL", PageCacheTTL)

	AdminUsername = getEnv("ADMIN_USERNAME", AdminUsername)
	AdminPasswordHash = getEnv("ADMIN_PASSWORD_HASH", AdminPasswordHash)
}

// IsDevelopment reports whether the site runs outside production.
func IsDevelopment() bool {
	return AppEnv != "production"
}

// HostedStore reports whether a Supabase project is configured.
func HostedStore() bool {
	return SupabaseURL != "" && SupabaseAnonKey != ""
}

// PostgresStore reports whether DATABASE_URL points at Postgres.
func PostgresStore() bool {
	return strings.HasPrefix(DatabaseURL, "postgres://") || strings.HasPrefix(DatabaseURL, "postgresql://")
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(val)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
