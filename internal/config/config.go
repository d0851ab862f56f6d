package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration loaded from environment variables.
// Every field has a sensible default; only ONESIGNAL_REST_API_KEY is required.
type Config struct {
	// Server
	HTTPPort        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	LogLevel        string

	// OneSignal
	OneSignalAPIKey   string
	OneSignalAppID    string
	OneSignalURL      string
	AndroidChannelID  string
	ProviderTimeout   time.Duration
	ProviderRateLimit int
	AlarmSound        string
	AlarmPriority     int
	AlarmMessage      string
	AlarmLocation     *time.Location

	// Database (optional delivery audit log)
	DatabaseURL string
	DBMaxConns  int32
	DBMinConns  int32
}

// Load reads a local .env file if one exists, then the process environment.
// It fails when the provider credential is absent so a misconfigured
// deployment never starts serving.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		ReadTimeout:     getDuration("READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    getDuration("WRITE_TIMEOUT", 30*time.Second),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
		LogLevel:        getEnv("LOG_LEVEL", "info"),

		OneSignalAPIKey:   os.Getenv("ONESIGNAL_REST_API_KEY"),
		OneSignalAppID:    getEnv("ONESIGNAL_APP_ID", "e81fbf1a-1e59-4bc3-8254-1f738607b947"),
		OneSignalURL:      getEnv("ONESIGNAL_API_URL", "https://api.onesignal.com/notifications"),
		AndroidChannelID:  getEnv("ONESIGNAL_ANDROID_CHANNEL_ID", "35ea53a4-eb6e-4de9-a803-ca51691244e6"),
		ProviderTimeout:   getDuration("PROVIDER_TIMEOUT", 0),
		ProviderRateLimit: getInt("PROVIDER_RATE_LIMIT", 0),
		AlarmSound:        getEnv("ALARM_SOUND", "siren"),
		AlarmPriority:     getInt("ALARM_PRIORITY", 10),
		AlarmMessage:      getEnv("ALARM_MESSAGE", "Vibration detected on your vehicle!"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBMaxConns:  int32(getInt("DB_MAX_CONNS", 10)),
		DBMinConns:  int32(getInt("DB_MIN_CONNS", 1)),
	}

	var problems []string
	if cfg.OneSignalAPIKey == "" {
		problems = append(problems, "ONESIGNAL_REST_API_KEY is required")
	}

	loc, err := time.LoadLocation(getEnv("ALARM_TIMEZONE", "Local"))
	if err != nil {
		problems = append(problems, fmt.Sprintf("ALARM_TIMEZONE: %v", err))
	}
	cfg.AlarmLocation = loc

	if cfg.ProviderRateLimit < 0 {
		problems = append(problems, "PROVIDER_RATE_LIMIT must not be negative")
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return cfg, nil
}

// PersistenceEnabled reports whether deliveries should be written to Postgres.
func (c *Config) PersistenceEnabled() bool {
	return c.DatabaseURL != ""
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
