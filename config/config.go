package config

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds everything read from the environment at boot.
type AppConfig struct {
	Port   string
	AppEnv string

	DatabaseURL string
	RedisURL    string

	SupabaseJWTSecret string
	SupabaseJWKSURL   string

	AdminEmails     []string
	AdminPolicyFile string
	StoreTimezone   string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	ResendAPIKey    string
	ResendFromEmail string

	CORSOrigins        []string
	RateLimitPerMinute int
}

var App AppConfig

func init() {
	_ = godotenv.Load()
}

// Load reads the environment into App and returns it.
func Load() AppConfig {
	App = AppConfig{
		Port:                getEnv("PORT", "8081"),
		AppEnv:              getEnv("APP_ENV", "development"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		RedisURL:            os.Getenv("REDIS_URL"),
		SupabaseJWTSecret:   os.Getenv("SUPABASE_JWT_SECRET"),
		SupabaseJWKSURL:     os.Getenv("SUPABASE_JWKS_URL"),
		AdminEmails:         splitList(os.Getenv("ADMIN_EMAILS")),
		AdminPolicyFile:     os.Getenv("ADMIN_POLICY_FILE"),
		StoreTimezone:       getEnv("STORE_TIMEZONE", "America/Denver"),
		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		ResendAPIKey:        os.Getenv("RESEND_API_KEY"),
		ResendFromEmail:     getEnv("RESEND_FROM_EMAIL", "orders@stickershuttle.com"),
		CORSOrigins:         splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:3001")),
		RateLimitPerMinute:  getEnvInt("RATE_LIMIT_PER_MINUTE", 100),
	}
	return App
}

// IsProduction reports whether APP_ENV is production.
func (c AppConfig) IsProduction() bool {
	return c.AppEnv == "production"
}

// StoreLocation resolves StoreTimezone, falling back to the server's local zone.
func (c AppConfig) StoreLocation() *time.Location {
	if c.StoreTimezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.StoreTimezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// WithTimeout returns a context with a 10s timeout (Neon cold starts need the headroom)
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

// splitList splits a comma separated env value, dropping blanks.
// Entries are trimmed but case is preserved.
func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
