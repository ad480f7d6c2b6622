package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Upstream UpstreamConfig
	Pricing  PricingConfig
	Order    OrderConfig
	Archive  ArchiveConfig
	Janitor  JanitorConfig
	CORS     CORSConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

// Empty Addr selects the in-process cache backend.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CacheConfig struct {
	ConfigTTL time.Duration `envconfig:"CACHE_CONFIG_TTL" default:"60s"`
	ZoneTTL   time.Duration `envconfig:"CACHE_ZONE_TTL" default:"600s"`
}

type UpstreamConfig struct {
	BaseURL              string        `envconfig:"STUB_SERVICE_BASE_URL" default:"http://support-stubs:8081"`
	Timeout              time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"5s"`
	RetryMaxAttempts     int           `envconfig:"RETRY_MAX_ATTEMPTS" default:"3"`
	RetryInitialInterval time.Duration `envconfig:"RETRY_INITIAL_INTERVAL" default:"200ms"`
	RetryMaxInterval     time.Duration `envconfig:"RETRY_MAX_INTERVAL" default:"2s"`
}

type PricingConfig struct {
	LowChargeThreshold int `envconfig:"LOW_CHARGE_THRESHOLD" default:"30"`
}

type OrderConfig struct {
	MinimalDurationSeconds int64         `envconfig:"ORDER_MINIMAL_DURATION_SECONDS" default:"5"`
	SettlementRetention    time.Duration `envconfig:"SETTLEMENT_RETENTION" default:"24h"`
}

type ArchiveConfig struct {
	Bucket           string `envconfig:"ARCHIVE_BUCKET" default:"orders-archive"`
	ProjectID        string `envconfig:"ARCHIVE_PROJECT" default:"order-offer-service"`
	Endpoint         string `envconfig:"ARCHIVE_ENDPOINT"`
	MaxRetentionDays int    `envconfig:"ARCHIVE_MAX_RETENTION_DAYS" default:"365"`
}

type JanitorConfig struct {
	Interval time.Duration `envconfig:"JANITOR_INTERVAL" default:"1m"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,PUT,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

func LoadConfig() (Config, error) {
	// .env is optional; real environments inject variables directly
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
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
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Cache: CacheConfig{
			ConfigTTL: 60 * time.Second,
			ZoneTTL:   600 * time.Second,
		},
		Upstream: UpstreamConfig{
			BaseURL:              "http://localhost:8081",
			Timeout:              2 * time.Second,
			RetryMaxAttempts:     3,
			RetryInitialInterval: 5 * time.Millisecond,
			RetryMaxInterval:     20 * time.Millisecond,
		},
		Pricing: PricingConfig{
			LowChargeThreshold: 30,
		},
		Order: OrderConfig{
			MinimalDurationSeconds: 5,
			SettlementRetention:    24 * time.Hour,
		},
		Archive: ArchiveConfig{
			Bucket:           "orders-archive-test",
			ProjectID:        "test-project",
			MaxRetentionDays: 365,
		},
		Janitor: JanitorConfig{
			Interval: time.Minute,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
	}
}
