package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Default spot endpoints (EUR base, lower-case codes).
const (
	DefaultSpotPrimaryURL  = "https://cdn.jsdelivr.net/npm/@fawazahmed0/currency-api@latest/v1/currencies/eur.json"
	DefaultSpotFallbackURL = "https://latest.currency-api.pages.dev/v1/currencies/eur.json"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	JWTSecret          string
	JWTExpiryDuration  time.Duration
	JWTIssuer          string
	AdminEmails        []string
	CORSAllowedOrigins []string

	// Shop opening hours
	ShopTimezone  string
	ShopOpenTime  string
	ShopCloseTime string
	ShopRestDay   string

	// Pricing
	DefaultSpreadPercent float64
	RateCacheTTL         time.Duration
	SpotCacheTTL         time.Duration
	SpotFailureTTL       time.Duration
	SpotHTTPTimeout      time.Duration
	SpotPrimaryURL       string
	SpotFallbackURL      string

	// Rate limits in limiter format, e.g. "5-M"
	BookingRateLimit string
	LoginRateLimit   string

	// Product analytics, disabled when the key is empty
	PosthogAPIKey   string
	PosthogEndpoint string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "exchange-shop")
	viper.SetDefault("ADMIN_EMAILS", "admin@example.com,admin@exchange.local")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("SHOP_TIMEZONE", "Europe/Paris")
	viper.SetDefault("SHOP_OPEN_TIME", "09:30")
	viper.SetDefault("SHOP_CLOSE_TIME", "19:00")
	viper.SetDefault("SHOP_REST_DAY", "sunday")
	viper.SetDefault("DEFAULT_SPREAD_PERCENT", 2.5)
	viper.SetDefault("RATE_CACHE_TTL", "30s")
	viper.SetDefault("SPOT_CACHE_TTL", "5m")
	viper.SetDefault("SPOT_FAILURE_TTL", "30s")
	viper.SetDefault("SPOT_HTTP_TIMEOUT", "5s")
	viper.SetDefault("SPOT_PRIMARY_URL", DefaultSpotPrimaryURL)
	viper.SetDefault("SPOT_FALLBACK_URL", DefaultSpotFallbackURL)
	viper.SetDefault("BOOKING_RATE_LIMIT", "20-M")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "exchange-shop"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.JWTExpiryDuration = durationOr("JWT_EXPIRY_DURATION", time.Hour)
	cfg.AdminEmails = splitList(viper.GetString("ADMIN_EMAILS"), true)
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"), false)

	cfg.ShopTimezone = viper.GetString("SHOP_TIMEZONE")
	cfg.ShopOpenTime = viper.GetString("SHOP_OPEN_TIME")
	cfg.ShopCloseTime = viper.GetString("SHOP_CLOSE_TIME")
	cfg.ShopRestDay = viper.GetString("SHOP_REST_DAY")

	cfg.DefaultSpreadPercent = viper.GetFloat64("DEFAULT_SPREAD_PERCENT")
	if cfg.DefaultSpreadPercent < 0 {
		log.Printf("Warning: Invalid value for DEFAULT_SPREAD_PERCENT (%v). Defaulting to 2.5.\n", cfg.DefaultSpreadPercent)
		cfg.DefaultSpreadPercent = 2.5
	}
	cfg.RateCacheTTL = durationOr("RATE_CACHE_TTL", 30*time.Second)
	cfg.SpotCacheTTL = durationOr("SPOT_CACHE_TTL", 5*time.Minute)
	cfg.SpotFailureTTL = durationOr("SPOT_FAILURE_TTL", 30*time.Second)
	cfg.SpotHTTPTimeout = durationOr("SPOT_HTTP_TIMEOUT", 5*time.Second)
	cfg.SpotPrimaryURL = viper.GetString("SPOT_PRIMARY_URL")
	cfg.SpotFallbackURL = viper.GetString("SPOT_FALLBACK_URL")

	cfg.BookingRateLimit = viper.GetString("BOOKING_RATE_LIMIT")
	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = viper.GetString("POSTHOG_ENDPOINT")

	return cfg, nil
}

// IsAdminEmail reports whether email belongs to the configured administrator list.
func (c *Config) IsAdminEmail(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, admin := range c.AdminEmails {
		if admin == email {
			return true
		}
	}
	return false
}

// durationOr reads a duration key (e.g. "60m", "1h"), logging and falling back to def when invalid.
func durationOr(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}

func splitList(raw string, lower bool) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if lower {
			part = strings.ToLower(part)
		}
		out = append(out, part)
	}
	return out
}
