package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// AWS / DynamoDB.
	AWSRegion          string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID     string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint   string `mapstructure:"DYNAMODB_ENDPOINT"`
	ProfilesTable      string `mapstructure:"PROFILES_TABLE"`
	BookingsTable      string `mapstructure:"BOOKINGS_TABLE"`

	// ProfileStore selects the remote profile backend: "dynamodb" or "mongo".
	ProfileStore  string `mapstructure:"PROFILE_STORE"`
	MongoURL      string `mapstructure:"MONGO_URL"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`

	// Redis configuration.
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	RedisPassword   string `mapstructure:"REDIS_PASSWORD"`
	RedisRecoveryDB int    `mapstructure:"REDIS_RECOVERY_DB"`

	// Booking creation service.
	BookingServiceURL   string `mapstructure:"BOOKING_SERVICE_URL"`
	BookingServiceToken string `mapstructure:"BOOKING_SERVICE_TOKEN"`
	BookingServiceMock  bool   `mapstructure:"BOOKING_SERVICE_MOCK"`

	PersistDebounceMS     int `mapstructure:"PERSIST_DEBOUNCE_MS"`
	PersistFastDebounceMS int `mapstructure:"PERSIST_FAST_DEBOUNCE_MS"`
	PersistTimeoutMS      int `mapstructure:"PERSIST_TIMEOUT_MS"`
	SelectionTTLHours     int `mapstructure:"SELECTION_TTL_HOURS"`
	SessionIdleMinutes    int `mapstructure:"SESSION_IDLE_MINUTES"`
	RateLimitPerMinute    int `mapstructure:"RATE_LIMIT_PER_MINUTE"`
}

const (
	ProfileStoreDynamoDB = "dynamodb"
	ProfileStoreMongo    = "mongo"
)

var ErrUnknownProfileStore = errors.New("unknown profile store")

var defaults = map[string]any{
	"APP_PORT":                 "8080",
	"ENV":                      "development",
	"LOG_LEVEL":                "info",
	"AWS_REGION":               "us-east-1",
	"AWS_ACCESS_KEY_ID":        "local",
	"AWS_SECRET_ACCESS_KEY":    "local",
	"DYNAMODB_ENDPOINT":        "",
	"PROFILES_TABLE":           "profiles",
	"BOOKINGS_TABLE":           "bookings",
	"PROFILE_STORE":            ProfileStoreDynamoDB,
	"MONGO_URL":                "mongodb://localhost:27017",
	"MONGO_DATABASE":           "nanny_booking",
	"REDIS_ADDR":               "localhost:6379",
	"REDIS_PASSWORD":           "",
	"REDIS_RECOVERY_DB":        0,
	"BOOKING_SERVICE_URL":      "http://localhost:8081",
	"BOOKING_SERVICE_TOKEN":    "",
	"BOOKING_SERVICE_MOCK":     false,
	"PERSIST_DEBOUNCE_MS":      500,
	"PERSIST_FAST_DEBOUNCE_MS": 100,
	"PERSIST_TIMEOUT_MS":       5000,
	"SELECTION_TTL_HOURS":      24,
	"SESSION_IDLE_MINUTES":     30,
	"RATE_LIMIT_PER_MINUTE":    120,
}

// Load reads configuration from the environment and an optional config.yaml
// in the working directory or ./config.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ProfileStore = strings.ToLower(strings.TrimSpace(cfg.ProfileStore))
	if cfg.ProfileStore != ProfileStoreDynamoDB && cfg.ProfileStore != ProfileStoreMongo {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownProfileStore, cfg.ProfileStore)
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) PersistDebounce() time.Duration {
	return time.Duration(c.PersistDebounceMS) * time.Millisecond
}

func (c Config) PersistFastDebounce() time.Duration {
	return time.Duration(c.PersistFastDebounceMS) * time.Millisecond
}

func (c Config) PersistTimeout() time.Duration {
	return time.Duration(c.PersistTimeoutMS) * time.Millisecond
}

func (c Config) SelectionTTL() time.Duration {
	return time.Duration(c.SelectionTTLHours) * time.Hour
}

func (c Config) SessionIdleTTL() time.Duration {
	return time.Duration(c.SessionIdleMinutes) * time.Minute
}
