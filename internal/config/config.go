package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

var ErrWindowShorterThanInterval = errors.New("SCHEDULER_LOOKAHEAD_WINDOW must not be shorter than SCHEDULER_INTERVAL")

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Log       LogConfig
	Scheduler SchedulerConfig
	Mail      MailConfig
	PubSub    PubSubConfig
	App       AppConfig
}

type LogConfig struct {
	Level string
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type SchedulerConfig struct {
	Enabled bool
	// Interval is the period between two scans. The look-ahead window must
	// cover it or notifications fall between scans.
	Interval        time.Duration
	LookAheadWindow time.Duration
	RetryHorizon    time.Duration
	MaxAttempts     int
	Concurrency     int
	DispatchRate    float64
	DispatchBurst   int
	RunOnStart      bool
}

type MailConfig struct {
	SendGridAPIKey string
	FromAddress    string
	FromName       string
}

// Enabled reports whether email goes out through SendGrid. Without a key
// emails are only logged.
func (c *MailConfig) Enabled() bool {
	return c.SendGridAPIKey != ""
}

type PubSubConfig struct {
	NATSURL         string
	GCloudProjectID string
}

type AppConfig struct {
	Name     string
	TimeZone *time.Location
}

func Load() (*Config, error) {
	serverPort, err := strconv.Atoi(getEnv("SERVER_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("SERVER_READ_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("SERVER_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_WRITE_TIMEOUT: %w", err)
	}

	maxOpenConns, err := strconv.Atoi(getEnv("DB_MAX_OPEN_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_OPEN_CONNS: %w", err)
	}

	maxIdleConns, err := strconv.Atoi(getEnv("DB_MAX_IDLE_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_IDLE_CONNS: %w", err)
	}

	connMaxLifetime, err := time.ParseDuration(getEnv("DB_CONN_MAX_LIFETIME", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_CONN_MAX_LIFETIME: %w", err)
	}

	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		return nil, fmt.Errorf("POSTGRES_DSN environment variable is required")
	}

	scheduler, err := loadScheduler()
	if err != nil {
		return nil, err
	}

	location, err := time.LoadLocation(getEnv("APP_TIMEZONE", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}

	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         serverPort,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
		Database: DatabaseConfig{
			DSN:             dsn,
			MaxOpenConns:    maxOpenConns,
			MaxIdleConns:    maxIdleConns,
			ConnMaxLifetime: connMaxLifetime,
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Scheduler: scheduler,
		Mail: MailConfig{
			SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
			FromAddress:    getEnv("MAIL_FROM_ADDRESS", "reminders@campus-copilot.app"),
			FromName:       getEnv("MAIL_FROM_NAME", "Campus Copilot"),
		},
		PubSub: PubSubConfig{
			NATSURL:         os.Getenv("NATS_URL"),
			GCloudProjectID: os.Getenv("GCLOUD_PROJECT_ID"),
		},
		App: AppConfig{
			Name:     getEnv("APP_NAME", "Campus Copilot"),
			TimeZone: location,
		},
	}, nil
}

func loadScheduler() (SchedulerConfig, error) {
	enabled, err := strconv.ParseBool(getEnv("SCHEDULER_ENABLED", "true"))
	if err != nil {
		return SchedulerConfig{}, fmt.Errorf("invalid SCHEDULER_ENABLED: %w", err)
	}

	interval, err := time.ParseDuration(getEnv("SCHEDULER_INTERVAL", "5m"))
	if err != nil {
		return SchedulerConfig{}, fmt.Errorf("invalid SCHEDULER_INTERVAL: %w", err)
	}

	window, err := time.ParseDuration(getEnv("SCHEDULER_LOOKAHEAD_WINDOW", "5m"))
	if err != nil {
		return SchedulerConfig{}, fmt.Errorf("invalid SCHEDULER_LOOKAHEAD_WINDOW: %w", err)
	}

	retryHorizon, err := time.ParseDuration(getEnv("SCHEDULER_RETRY_HORIZON", "1h"))
	if err != nil {
		return SchedulerConfig{}, fmt.Errorf("invalid SCHEDULER_RETRY_HORIZON: %w", err)
	}

	maxAttempts, err := strconv.Atoi(getEnv("SCHEDULER_MAX_ATTEMPTS", "5"))
	if err != nil {
		return SchedulerConfig{}, fmt.Errorf("invalid SCHEDULER_MAX_ATTEMPTS: %w", err)
	}

	concurrency, err := strconv.Atoi(getEnv("SCHEDULER_CONCURRENCY", "4"))
	if err != nil {
		return SchedulerConfig{}, fmt.Errorf("invalid SCHEDULER_CONCURRENCY: %w", err)
	}

	dispatchRate, err := strconv.ParseFloat(getEnv("SCHEDULER_DISPATCH_RATE", "0"), 64)
	if err != nil {
		return SchedulerConfig{}, fmt.Errorf("invalid SCHEDULER_DISPATCH_RATE: %w", err)
	}

	dispatchBurst, err := strconv.Atoi(getEnv("SCHEDULER_DISPATCH_BURST", "1"))
	if err != nil {
		return SchedulerConfig{}, fmt.Errorf("invalid SCHEDULER_DISPATCH_BURST: %w", err)
	}

	runOnStart, err := strconv.ParseBool(getEnv("SCHEDULER_RUN_ON_START", "false"))
	if err != nil {
		return SchedulerConfig{}, fmt.Errorf("invalid SCHEDULER_RUN_ON_START: %w", err)
	}

	if enabled && window < interval {
		return SchedulerConfig{}, ErrWindowShorterThanInterval
	}

	return SchedulerConfig{
		Enabled:         enabled,
		Interval:        interval,
		LookAheadWindow: window,
		RetryHorizon:    retryHorizon,
		MaxAttempts:     maxAttempts,
		Concurrency:     concurrency,
		DispatchRate:    dispatchRate,
		DispatchBurst:   dispatchBurst,
		RunOnStart:      runOnStart,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
