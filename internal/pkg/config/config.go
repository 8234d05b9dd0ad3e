package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, API location, etc.), security settings
// - default: Values common across all environments (timezone, cache TTL, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	App    AppConfig
	API    APIConfig
	Cache  CacheConfig
	Cookie CookieConfig
	Guard  GuardConfig
	CORS   CORSConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type AppConfig struct {
	Name             string `envconfig:"APP_NAME" default:"Marketplace Admin"`
	Description      string `envconfig:"APP_DESCRIPTION" default:"Marketplace administration dashboard"`
	EditorAPIKey     string `envconfig:"EDITOR_API_KEY"`
	DefaultBannerURL string `envconfig:"DEFAULT_BANNER_URL" default:"/images/default-banner.png"`
}

type APIConfig struct {
	BaseURL   string `envconfig:"ADMIN_API_URL" default:"https://api.africanmarkethub.ca/api/v1/admin"`
	PublicURL string `envconfig:"PUBLIC_API_URL" default:"http://localhost:8000/api"`
	// zero keeps the transport default (no client-side deadline)
	Timeout time.Duration `envconfig:"API_TIMEOUT" default:"0s"`
}

type CacheConfig struct {
	Driver   string        `envconfig:"CACHE_DRIVER" default:"memory"`
	TTL      time.Duration `envconfig:"CACHE_TTL" default:"1h"`
	RedisURL string        `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
	Prefix   string        `envconfig:"CACHE_PREFIX" default:"market-admin"`
}

type CookieConfig struct {
	Domain   string        `envconfig:"COOKIE_DOMAIN"`
	Secure   bool          `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string        `envconfig:"COOKIE_SAME_SITE" default:"Strict"`
	MaxAge   time.Duration `envconfig:"COOKIE_MAX_AGE" default:"24h"`
}

type GuardConfig struct {
	PublicPrefix       string `envconfig:"GUARD_PUBLIC_PREFIX" default:"/auth"`
	LoginPath          string `envconfig:"GUARD_LOGIN_PATH" default:"/auth/login"`
	ChangePasswordPath string `envconfig:"GUARD_CHANGE_PASSWORD_PATH" default:"/auth/change-password"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// LoadConfig reads an optional .env file, then the process environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		App: AppConfig{
			Name:             "Marketplace Admin (test)",
			DefaultBannerURL: "/images/default-banner.png",
		},
		API: APIConfig{
			BaseURL:   "http://127.0.0.1:0/api/v1/admin",
			PublicURL: "http://127.0.0.1:0/api",
		},
		Cache: CacheConfig{
			Driver: "memory",
			TTL:    time.Hour,
			Prefix: "market-admin-test",
		},
		Cookie: CookieConfig{
			Secure:   true,
			SameSite: "Strict",
			MaxAge:   24 * time.Hour,
		},
		Guard: GuardConfig{
			PublicPrefix:       "/auth",
			LoginPath:          "/auth/login",
			ChangePasswordPath: "/auth/change-password",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}
