package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is the full service configuration, read from the environment.
type Config struct {
	App         AppConfig
	Postgres    PostgresConfig
	Redis       RedisConfig
	Kafka       KafkaConfig
	JWT         JWTConfig
	Paystack    GatewayConfig `env-prefix:"PAYSTACK_"`
	Flutterwave GatewayConfig `env-prefix:"FLUTTERWAVE_"`
	Gateway     RetryConfig
	AccountTTL  time.Duration `env:"ACCOUNT_CACHE_TTL" env-default:"24h"`
}

type AppConfig struct {
	Host        string `env:"APP_HOST" env-default:"localhost"`
	Port        string `env:"APP_PORT" env-default:"8080"`
	LogLevel    string `env:"APP_LOG_LEVEL" env-default:"info"`
	CallbackURL string `env:"APP_CALLBACK_URL"`
}

type PostgresConfig struct {
	Host         string `env:"POSTGRES_HOST" env-default:"localhost"`
	Port         int    `env:"POSTGRES_PORT" env-default:"5432"`
	User         string `env:"POSTGRES_USER" env-default:"user"`
	Password     string `env:"POSTGRES_PASSWORD" env-default:"password"`
	DB           string `env:"POSTGRES_DB" env-default:"database"`
	MaxOpenConns int    `env:"POSTGRES_MAX_OPEN_CONNS" env-default:"16"`
	MaxIdleConns int    `env:"POSTGRES_MAX_IDLE_CONNS" env-default:"8"`
}

// DSN is the pgx connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable", c.User, c.Password, c.Host, c.Port, c.DB)
}

type RedisConfig struct {
	Host         string `env:"REDIS_HOST" env-default:"localhost"`
	Port         int    `env:"REDIS_PORT" env-default:"6379"`
	DB           int    `env:"REDIS_DB" env-default:"0"`
	Password     string `env:"REDIS_PASSWORD"`
	PoolSize     int    `env:"REDIS_POOL_SIZE" env-default:"10"`
	MinIdleConns int    `env:"REDIS_MIN_IDLE_CONNS" env-default:"2"`
}

// Addr is host:port.
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type KafkaConfig struct {
	Brokers string `env:"KAFKA_BROKERS"` // Comma separated, empty disables publishing
	Topic   string `env:"KAFKA_TOPIC" env-default:"payment-events"`
}

// BrokerList splits Brokers.
func (c KafkaConfig) BrokerList() []string {
	var brokers []string
	for _, b := range strings.Split(c.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

type JWTConfig struct {
	SecretKey string `env:"JWT_SECRET_KEY" env-default:"my_super_secret_key"`
}

// GatewayConfig is read once per provider with its env prefix.
type GatewayConfig struct {
	BaseURL       string `env:"BASE_URL"`
	SecretKey     string `env:"SECRET_KEY"`
	WebhookSecret string `env:"WEBHOOK_SECRET"`
}

// Enabled reports whether the provider has credentials.
func (c GatewayConfig) Enabled() bool {
	return c.SecretKey != ""
}

type RetryConfig struct {
	Timeout     time.Duration `env:"GATEWAY_TIMEOUT" env-default:"15s"`
	MaxAttempts int           `env:"GATEWAY_MAX_ATTEMPTS" env-default:"3"`
	BackoffBase time.Duration `env:"GATEWAY_BACKOFF_BASE" env-default:"500ms"`
	BackoffMax  time.Duration `env:"GATEWAY_BACKOFF_MAX" env-default:"5s"`
}

// Load reads the optional env file at path into the environment and then
// the environment into a Config. Variables already set win over the file.
func Load(path string) (*Config, error) {
	if path != "" {
		_ = godotenv.Load(path)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if cfg.Paystack.BaseURL == "" {
		cfg.Paystack.BaseURL = "https://api.paystack.co"
	}
	if cfg.Flutterwave.BaseURL == "" {
		cfg.Flutterwave.BaseURL = "https://api.flutterwave.com"
	}
	return &cfg, nil
}
