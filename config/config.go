package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Profiles selectable through APP_ENV.
const (
	EnvDevelopment = "development"
	EnvTesting     = "testing"
	EnvProduction  = "production"
)

var ErrMissingDatabaseURL = errors.New("DATABASE_URL must be set in production")

type Config struct {
	Env     string
	Port    string
	Debug   bool
	Testing bool

	DatabaseURL       string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	LogLevel string

	CORSAllowedOrigins []string
	RateLimit          string

	// Redis backs the rate limiter; the in-memory store is used when empty.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Kafka receives registration notifications; disabled when no brokers are set.
	KafkaBrokers []string
	KafkaTopic   string

	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// Load reads the .env file (if any) and the process environment and returns
// the configuration for the selected profile.
func Load() (*Config, error) {
	if err := loadEnvFile(".env"); err != nil {
		return nil, err
	}
	return FromViper(newViper())
}

// loadEnvFile applies the variables in path. A missing file is not an error;
// a file that exists but cannot be parsed is.
func loadEnvFile(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		logrus.Debug("no .env file, using environment variables")
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", EnvDevelopment)
	v.SetDefault("PORT", "5000")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 5*time.Minute)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("KAFKA_TOPIC", "event-registrations")
	v.SetDefault("REQUEST_TIMEOUT", 30*time.Second)
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
	return v
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	env := strings.ToLower(strings.TrimSpace(v.GetString("APP_ENV")))
	switch env {
	case EnvDevelopment, EnvTesting, EnvProduction:
	default:
		return nil, fmt.Errorf("unknown APP_ENV %q", env)
	}

	cfg := &Config{
		Env:     env,
		Port:    v.GetString("PORT"),
		Debug:   env == EnvDevelopment,
		Testing: env == EnvTesting,

		DatabaseURL:       v.GetString("DATABASE_URL"),
		DBMaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
		DBMaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
		DBConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),

		LogLevel: v.GetString("LOG_LEVEL"),

		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		RateLimit:          v.GetString("RATE_LIMIT"),

		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),

		KafkaBrokers: splitList(v.GetString("KAFKA_BROKERS")),
		KafkaTopic:   v.GetString("KAFKA_TOPIC"),

		RequestTimeout:  v.GetDuration("REQUEST_TIMEOUT"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
	}

	if cfg.DatabaseURL == "" {
		switch env {
		case EnvDevelopment:
			cfg.DatabaseURL = "sqlite://events.db"
		case EnvTesting:
			cfg.DatabaseURL = "sqlite://test.db"
		default:
			return nil, ErrMissingDatabaseURL
		}
	}

	if cfg.LogLevel == "" {
		if env == EnvProduction {
			cfg.LogLevel = "info"
		} else {
			cfg.LogLevel = "debug"
		}
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
