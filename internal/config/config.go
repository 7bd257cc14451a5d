package config

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// AppConfig is read from the environment, with a .env file loaded first
// when one exists.
type AppConfig struct {
	Environment string `envconfig:"APP_ENV" default:"development"`
	Port        string `envconfig:"PORT" default:"3001"`

	DB      DBConfig
	Redis   RedisConfig
	Session SessionConfig
	Geo     GeoConfig
	Kafka   KafkaConfig

	AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:5174,http://localhost:3000,https://freshbind.com,https://backend.freshbind.com"`

	RateLimit RateLimitConfig `split_words:"true"`

	// TrustProxy makes the caller address come from X-Forwarded-For.
	TrustProxy bool `envconfig:"TRUST_PROXY" default:"false"`
	// HonorDetectedCountry lets product routes without a country parameter
	// use the detected country instead of US.
	HonorDetectedCountry bool `envconfig:"HONOR_DETECTED_COUNTRY" default:"false"`
	AutoMigrate          bool `envconfig:"AUTO_MIGRATE" default:"false"`
}

type DBConfig struct {
	Host           string `split_words:"true" default:"127.0.0.1"`
	Port           string `split_words:"true" default:"3306"`
	User           string `split_words:"true" default:"root"`
	Pass           string `split_words:"true"`
	Name           string `split_words:"true" default:"catalog-db"`
	MaxOpenConns   int    `split_words:"true" default:"10"`
	MaxIdleConns   int    `split_words:"true" default:"5"`
	ConnectRetries int    `split_words:"true" default:"10"`
}

type RedisConfig struct {
	// Addr empty keeps sessions in process memory.
	Addr     string `split_words:"true"`
	Password string `split_words:"true"`
	DB       int    `split_words:"true" default:"0"`
}

type SessionConfig struct {
	Secret       string        `split_words:"true" default:"your-secret-key"`
	CookieName   string        `split_words:"true" default:"sid"`
	CookieDomain string        `split_words:"true" default:".freshbind.com"`
	TTL          time.Duration `split_words:"true" default:"24h"`
}

type GeoConfig struct {
	BaseURL    string        `split_words:"true" default:"https://ipwho.is"`
	Timeout    time.Duration `split_words:"true" default:"5s"`
	LoopbackIP string        `split_words:"true" default:"8.8.8.8"`
}

type KafkaConfig struct {
	// Brokers empty disables event publishing.
	Brokers []string `split_words:"true"`
	Topic   string   `split_words:"true" default:"catalog-topic"`
}

type RateLimitConfig struct {
	Enabled   bool          `split_words:"true" default:"true"`
	Rate      float64       `split_words:"true" default:"20"`
	Burst     int           `split_words:"true" default:"40"`
	ExpiresIn time.Duration `split_words:"true" default:"3m"`
}

// Load reads the configuration. A missing .env file is not an error.
func Load(envFiles ...string) (*AppConfig, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	_ = godotenv.Load(envFiles...)

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}
	return &cfg, nil
}

func (c *AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// SameSite mirrors the cookie policy of the storefront: cross-site in
// production where the API lives on its own subdomain.
func (c *AppConfig) SameSite() http.SameSite {
	if c.IsProduction() {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}

// CookieDomain is only applied in production.
func (c *AppConfig) CookieDomain() string {
	if c.IsProduction() {
		return c.Session.CookieDomain
	}
	return ""
}
