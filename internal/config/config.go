package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Stripe    StripeConfig
	Mail      MailConfig
	Admin     AdminConfig
	Uploads   UploadsConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port          string
	PublicBaseURL string
}

type DatabaseConfig struct {
	DSN string
}

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
}

type MailConfig struct {
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPassword  string
	FromAddress   string
	BusinessEmail string
}

type AdminConfig struct {
	// Token is the shared bearer secret; TokenHash, when set, is its bcrypt
	// hash and takes precedence so the plain value never has to live in env.
	Token     string
	TokenHash string
}

type UploadsConfig struct {
	BaseDir string
}

type RateLimitConfig struct {
	Window        time.Duration
	MaxRequests   int
	PaymentMaxReq int
}

// Load reads configuration from the environment. Only DATABASE_URL is
// mandatory; everything else has a development default or degrades (mail
// falls back to log-only, Stripe endpoints report unavailable).
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:          envOrDefault("PORT", "3001"),
			PublicBaseURL: envOrDefault("PUBLIC_BASE_URL", "http://localhost:3001"),
		},
		Database: DatabaseConfig{
			DSN: os.Getenv("DATABASE_URL"),
		},
		Stripe: StripeConfig{
			SecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
			WebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		},
		Mail: MailConfig{
			SMTPHost:      os.Getenv("SMTP_HOST"),
			SMTPPort:      envIntOrDefault("SMTP_PORT", 587),
			SMTPUser:      os.Getenv("SMTP_USER"),
			SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
			FromAddress:   envOrDefault("MAIL_FROM", "bookings@tidyjacks.com"),
			BusinessEmail: envOrDefault("BUSINESS_EMAIL", "hellotidyjack@gmail.com"),
		},
		Admin: AdminConfig{
			Token:     os.Getenv("ADMIN_PASSWORD"),
			TokenHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		},
		Uploads: UploadsConfig{
			BaseDir: envOrDefault("UPLOADS_DIR", "./uploads"),
		},
		RateLimit: RateLimitConfig{
			Window:        time.Minute,
			MaxRequests:   envIntOrDefault("RATE_LIMIT_MAX", 10),
			PaymentMaxReq: envIntOrDefault("RATE_LIMIT_PAYMENT_MAX", 5),
		},
	}
}

func envOrDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func envIntOrDefault(name string, def int) int {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
