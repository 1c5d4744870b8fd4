package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Configはアプリ全体の設定
type Config struct {
	Port  string `env:"PORT" env-default:"8080"`
	GoEnv string `env:"GO_ENV" env-default:"dev"` // dev/prod

	JWTSecret string `env:"JWT_SECRET" env-required:"true"` // JWT署名シークレット

	// AdminRoles are the token roles allowed into /admin.
	AdminRoles []string `env:"ADMIN_ROLES" env-default:"ADMIN" env-separator:","`

	Backend  BackendConfig
	Postgres PostgresConfig
	Kafka    KafkaConfig

	RefundReconcileInterval time.Duration `env:"REFUND_RECONCILE_INTERVAL" env-default:"5m"`
}

// BackendConfig points at the order backend (via the API gateway).
type BackendConfig struct {
	BaseURL string        `env:"BACKEND_BASE_URL" env-required:"true"`
	Timeout time.Duration `env:"BACKEND_TIMEOUT" env-default:"10s"`

	// ServiceToken authenticates background work. Empty disables the reconciler.
	ServiceToken string `env:"BACKEND_SERVICE_TOKEN"`
}

type PostgresConfig struct {
	URL      string `env:"DATABASE_URL"` // あれば最優先
	Host     string `env:"POSTGRES_HOST" env-default:"localhost"`
	Port     int    `env:"POSTGRES_PORT" env-default:"5432"`
	User     string `env:"POSTGRES_USER" env-default:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" env-default:"postgres"`
	DB       string `env:"POSTGRES_DB" env-default:"orderconsole"`
	SSLMode  string `env:"POSTGRES_SSLMODE" env-default:"disable"`
}

// DSN returns DATABASE_URL when set, else a key/value DSN.
func (p PostgresConfig) DSN() string {
	if p.URL != "" {
		return p.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DB, p.SSLMode,
	)
}

type KafkaConfig struct {
	Brokers []string `env:"KAFKA_BROKERS" env-separator:","`
	Topic   string   `env:"KAFKA_TOPIC" env-default:"order-lifecycle"`
}

func (k KafkaConfig) Enabled() bool {
	for _, b := range k.Brokers {
		if strings.TrimSpace(b) != "" {
			return true
		}
	}
	return false
}

func (c Config) IsProd() bool {
	return c.GoEnv == "prod"
}

// Loadは環境変数から設定を読む（.envの読み込みはmain側）
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}

	//必須チェック（空文字で設定されている場合もはじく）
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	cfg.Backend.BaseURL = strings.TrimRight(cfg.Backend.BaseURL, "/")
	if !strings.HasPrefix(cfg.Backend.BaseURL, "http://") && !strings.HasPrefix(cfg.Backend.BaseURL, "https://") {
		return Config{}, fmt.Errorf("BACKEND_BASE_URL must be an http(s) url")
	}
	if cfg.Backend.Timeout <= 0 {
		return Config{}, fmt.Errorf("BACKEND_TIMEOUT must be positive")
	}
	if cfg.RefundReconcileInterval <= 0 {
		return Config{}, fmt.Errorf("REFUND_RECONCILE_INTERVAL must be positive")
	}
	return cfg, nil
}
