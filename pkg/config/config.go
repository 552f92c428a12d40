package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is empty because every envconfig tag carries the full
// YQLSTORE_ variable name.
const EnvPrefix = ""

type Config struct {
	App   AppConfig
	API   APIConfig
	Admin AdminConfig
	Cart  CartConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.API.validate(); err != nil {
		return nil, err
	}
	if err := cfg.Cart.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"YQLSTORE_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"YQLSTORE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"YQLSTORE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, "dev")
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, "prod")
}

// APIConfig points the storefront at the backend REST API.
type APIConfig struct {
	BaseURL string        `envconfig:"YQLSTORE_API_BASE_URL" default:"http://localhost:5000"`
	Timeout time.Duration `envconfig:"YQLSTORE_API_TIMEOUT" default:"10s"`
}

func (a APIConfig) validate() error {
	parsed, err := url.Parse(strings.TrimSpace(a.BaseURL))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("YQLSTORE_API_BASE_URL must be an absolute URL, got %q", a.BaseURL)
	}
	return nil
}

// AdminConfig carries the store identity shown on admin-authored comments and
// the secret used to verify admin tokens.
type AdminConfig struct {
	DisplayName string `envconfig:"YQLSTORE_ADMIN_DISPLAY_NAME" default:"YQL Store"`
	JWTSecret   string `envconfig:"YQLSTORE_ADMIN_JWT_SECRET"`
	JWTIssuer   string `envconfig:"YQLSTORE_ADMIN_JWT_ISSUER" default:"yql-store"`
}

// CartConfig controls the optional local cart snapshot store.
type CartConfig struct {
	PersistSnapshots bool   `envconfig:"YQLSTORE_CART_PERSIST" default:"false"`
	SnapshotPath     string `envconfig:"YQLSTORE_CART_SNAPSHOT_PATH" default:"storefront-cart.db"`
}

func (c CartConfig) validate() error {
	if c.PersistSnapshots && strings.TrimSpace(c.SnapshotPath) == "" {
		return fmt.Errorf("YQLSTORE_CART_SNAPSHOT_PATH is required when YQLSTORE_CART_PERSIST is set")
	}
	return nil
}
