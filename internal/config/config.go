package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	TLS        TLSConfig
	Storage    StorageConfig
	Database   DatabaseConfig
	ClickHouse ClickHouseConfig
	Redis      RedisConfig
	Cache      CacheConfig
	Geo        GeoConfig
	Recorder   RecorderConfig
	Analytics  AnalyticsConfig
	Events     EventsConfig
	Scheduler  SchedulerConfig
	Metrics    MetricsConfig
	RateLimit  RateLimitConfig
	Validation ValidationConfig
	Pprof      PprofConfig
	App        AppConfig
}

type ServerConfig struct {
	Host           string `env:"SERVER_HOST" envDefault:"localhost"`
	Port           int    `env:"SERVER_PORT" envDefault:"8080"`
	MaxConnections int    `env:"SERVER_MAX_CONNECTIONS" envDefault:"0"`
}

type TLSConfig struct {
	Enabled  bool   `env:"TLS_ENABLED" envDefault:"false"`
	Port     int    `env:"TLS_PORT" envDefault:"8443"`
	CertFile string `env:"TLS_CERT_FILE"`
	KeyFile  string `env:"TLS_KEY_FILE"`
}

const (
	BackendPostgres   = "postgres"
	BackendMemory     = "memory"
	BackendClickHouse = "clickhouse"
)

type StorageConfig struct {
	// Backend holds links and users: postgres or memory.
	Backend string `env:"STORAGE" envDefault:"postgres"`
	// Clicks selects the click store: postgres, clickhouse or memory.
	Clicks string `env:"CLICK_STORE" envDefault:"postgres"`
}

type DatabaseConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	DBName   string `env:"POSTGRES_DB" envDefault:"linkpulse"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	MaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"20"`
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s&pool_max_conns=%d",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.MaxConns,
	)
}

type ClickHouseConfig struct {
	Addr     string `env:"CLICKHOUSE_ADDR" envDefault:"localhost:9000"`
	Database string `env:"CLICKHOUSE_DB" envDefault:"linkpulse"`
	User     string `env:"CLICKHOUSE_USER" envDefault:"default"`
	Password string `env:"CLICKHOUSE_PASSWORD"`
}

type RedisConfig struct {
	// Addr left empty selects the in-process URL cache.
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"URL_CACHE_TTL" envDefault:"24h"`
}

type CacheConfig struct {
	MaxSizePow2 int `env:"CACHE_MAX_SIZE_POW2" envDefault:"24"`
}

type GeoConfig struct {
	Enabled       bool          `env:"GEO_ENABLED" envDefault:"true"`
	APIKey        string        `env:"GEO_API_KEY"`
	APIURL        string        `env:"GEO_API_URL" envDefault:"http://api.ipstack.com"`
	FreeAPIURL    string        `env:"GEO_FREE_API_URL" envDefault:"http://ip-api.com"`
	MaxMindDB     string        `env:"GEO_MAXMIND_DB"`
	Attempts      uint          `env:"GEO_ATTEMPTS" envDefault:"2"`
	RetryDelay    time.Duration `env:"GEO_RETRY_DELAY" envDefault:"500ms"`
	Timeout       time.Duration `env:"GEO_TIMEOUT" envDefault:"2s"`
	CacheTTL      time.Duration `env:"GEO_CACHE_TTL" envDefault:"24h"`
	CacheSizePow2 int           `env:"GEO_CACHE_SIZE_POW2" envDefault:"20"`
}

type RecorderConfig struct {
	Workers         int           `env:"RECORDER_WORKERS" envDefault:"4"`
	QueueSize       int           `env:"RECORDER_QUEUE_SIZE" envDefault:"1000"`
	Attempts        uint          `env:"RECORDER_ATTEMPTS" envDefault:"3"`
	RetryDelay      time.Duration `env:"RECORDER_RETRY_DELAY" envDefault:"1s"`
	ShutdownTimeout time.Duration `env:"RECORDER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	DeviceCacheTTL  time.Duration `env:"DEVICE_CACHE_TTL" envDefault:"24h"`
}

type AnalyticsConfig struct {
	CacheTTL      time.Duration `env:"ANALYTICS_CACHE_TTL" envDefault:"1m"`
	CacheSizePow2 int           `env:"ANALYTICS_CACHE_SIZE_POW2" envDefault:"22"`
	MaxPageSize   int           `env:"ANALYTICS_MAX_PAGE_SIZE" envDefault:"100"`
	MaxTrendHours int           `env:"ANALYTICS_MAX_TREND_HOURS" envDefault:"720"`
}

type EventsConfig struct {
	Brokers []string      `env:"KAFKA_BROKERS" envSeparator:","`
	Topic   string        `env:"KAFKA_CLICK_TOPIC" envDefault:"clicks"`
	Timeout time.Duration `env:"KAFKA_WRITE_TIMEOUT" envDefault:"5s"`
}

type SchedulerConfig struct {
	Enabled      bool   `env:"SWEEP_ENABLED" envDefault:"true"`
	SweepSpec    string `env:"SWEEP_SCHEDULE" envDefault:"@every 4h"`
	RunOnStartup bool   `env:"SWEEP_ON_STARTUP" envDefault:"true"`
}

type MetricsConfig struct {
	Enabled        bool `env:"METRICS_ENABLED" envDefault:"true"`
	BufferSize     int  `env:"METRICS_BUFFER_SIZE" envDefault:"10000"`
	FlushThreshold int  `env:"METRICS_FLUSH_THRESHOLD" envDefault:"1000"`
	FlushInterval  int  `env:"METRICS_FLUSH_INTERVAL_MS" envDefault:"1000"`
}

type RateLimitConfig struct {
	RPS           float64 `env:"RATE_LIMIT_RPS" envDefault:"100"`
	Burst         int     `env:"RATE_LIMIT_BURST" envDefault:"200"`
	RedirectRPS   float64 `env:"RATE_LIMIT_REDIRECT_RPS" envDefault:"500"`
	RedirectBurst int     `env:"RATE_LIMIT_REDIRECT_BURST" envDefault:"1000"`
	ExpireMinutes int     `env:"RATE_LIMIT_EXPIRE_MINUTES" envDefault:"3"`
	BypassSecret  string  `env:"RATE_LIMIT_BYPASS_SECRET"`
}

type ValidationConfig struct {
	MaxURLLength       int    `env:"MAX_URL_LENGTH" envDefault:"2048"`
	MaxBatchSize       int    `env:"MAX_BATCH_SIZE" envDefault:"5000"`
	MaxTitleLength     int    `env:"MAX_TITLE_LENGTH" envDefault:"255"`
	MaxDescLength      int    `env:"MAX_DESCRIPTION_LENGTH" envDefault:"2000"`
	MaxRequestBodySize string `env:"MAX_REQUEST_BODY_SIZE" envDefault:"10M"`
	AllowPrivateIPs    bool   `env:"ALLOW_PRIVATE_IPS" envDefault:"false"`
}

type PprofConfig struct {
	Enabled bool   `env:"PPROF_ENABLED" envDefault:"false"`
	Secret  string `env:"PPROF_SECRET"`
}

type AppConfig struct {
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`
}

// Load reads an optional .env file and then parses the environment.
// Variables already set in the environment win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
