package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// environment names
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Port        string
	Environment string
	Log         LogConfig
	CORS        CORSConfig
	Email       EmailConfig
	CSRF        CSRFConfig
	RateLimit   RateLimitConfig
	Redis       RedisConfig
}

type LogConfig struct {
	Level  string
	Format string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type EmailConfig struct {
	Provider     string
	From         string
	SupportInbox string
	SMTP         SMTPConfig
	SendGrid     SendGridConfig
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	UseTLS   bool
}

type SendGridConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

type CSRFConfig struct {
	Enabled  bool
	TokenTTL time.Duration
}

type RateLimitConfig struct {
	MaxRequests int
	Window      time.Duration
}

// RedisConfig is optional; an empty Addr selects the in-memory stores.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Could not find or load .env file.")
	}
}

func NewConfig() *Config {
	return &Config{
		Port:        getOptionalEnv("PORT", "8080"),
		Environment: getOptionalEnv("ENVIRONMENT", EnvDevelopment),
		Log: LogConfig{
			Level:  getOptionalEnv("LOG_LEVEL", "info"),
			Format: getOptionalEnv("LOG_FORMAT", "json"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getOptionalEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
			AllowedMethods: splitList(getOptionalEnv("CORS_ALLOWED_METHODS", "GET,POST,OPTIONS")),
			AllowedHeaders: splitList(getOptionalEnv("CORS_ALLOWED_HEADERS", "Content-Type,Origin")),
		},
		Email: EmailConfig{
			Provider:     getOptionalEnv("EMAIL_PROVIDER", "noop"),
			From:         getOptionalEnv("EMAIL_FROM", "no-reply@support-desk.local"),
			SupportInbox: getRequiredEnv("SUPPORT_INBOX"),
			SMTP: SMTPConfig{
				Host:     getOptionalEnv("SMTP_HOST", ""),
				Port:     parseIntDefault("SMTP_PORT", 587),
				Username: getOptionalEnv("SMTP_USERNAME", ""),
				Password: getOptionalEnv("SMTP_PASSWORD", ""),
				UseTLS:   parseBoolDefault("SMTP_USE_TLS", true),
			},
			SendGrid: SendGridConfig{
				APIKey:    getOptionalEnv("SENDGRID_API_KEY", ""),
				FromEmail: getOptionalEnv("SENDGRID_FROM_EMAIL", ""),
				FromName:  getOptionalEnv("SENDGRID_FROM_NAME", "Support Desk"),
			},
		},
		CSRF: CSRFConfig{
			Enabled:  parseBoolDefault("CSRF_ENABLED", true),
			TokenTTL: parseDurationDefault("CSRF_TOKEN_TTL", 30*time.Minute),
		},
		RateLimit: RateLimitConfig{
			MaxRequests: parseIntDefault("RATE_LIMIT_MAX", 10),
			Window:      parseDurationDefault("RATE_LIMIT_WINDOW", 15*time.Minute),
		},
		Redis: RedisConfig{
			Addr:     getOptionalEnv("REDIS_ADDR", ""),
			Password: getOptionalEnv("REDIS_PASSWORD", ""),
			DB:       parseIntDefault("REDIS_DB", 0),
		},
	}
}

// IsProduction reports whether the service runs in production mode.
// Cookies carry the Secure flag only in production.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
