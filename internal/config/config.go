// Package config loads runtime settings from configs/.env and the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvFile is the optional dotenv file read before the environment.
const EnvFile = "configs/.env"

// Config holds every runtime setting of the service.
type Config struct {
	Port               string
	GinMode            string
	APIBaseURL         string
	APITimeout         time.Duration
	HealthURL          string
	HealthPollInterval time.Duration
	HealthHistorySize  int
	ReportTimezone     string
	ReportLocation     *time.Location
	LogLevel           string
	LogFormat          string
	CORSOrigins        []string
	DB                 DBConfig
}

// DBConfig holds the optional PostgreSQL settings for health history.
type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// Enabled reports whether a database was configured.
func (d DBConfig) Enabled() bool { return d.Host != "" }

// DSN builds the postgres connection string.
func (d DBConfig) DSN() string {
	return "postgres://" + d.User + ":" + d.Password + "@" + d.Host + ":" + d.Port + "/" + d.Name + "?sslmode=" + d.SSLMode
}

// Defaults registers the default value of every setting on v.
func Defaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("API_BASE_URL", "https://recruit.paysbypays.com/api/v1")
	v.SetDefault("API_TIMEOUT", "10s")
	v.SetDefault("HEALTH_URL", "")
	v.SetDefault("HEALTH_POLL_INTERVAL", "0s")
	v.SetDefault("HEALTH_HISTORY_SIZE", 100)
	v.SetDefault("REPORT_TIMEZONE", "Asia/Seoul")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")
	v.SetDefault("DB_HOST", "")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "postgres")
	v.SetDefault("DB_SSLMODE", "disable")
}

// Load reads configs/.env when present, then the environment.
func Load() (*Config, error) {
	return LoadWith(viper.New())
}

// LoadWith is Load on a caller-provided viper, so command-line flags bound to
// it take precedence over the environment.
func LoadWith(v *viper.Viper) (*Config, error) {
	// a missing dotenv file is fine, the environment alone is enough
	_ = godotenv.Load(EnvFile)

	Defaults(v)
	v.AutomaticEnv()
	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:               v.GetString("PORT"),
		GinMode:            v.GetString("GIN_MODE"),
		APIBaseURL:         strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
		APITimeout:         v.GetDuration("API_TIMEOUT"),
		HealthURL:          v.GetString("HEALTH_URL"),
		HealthPollInterval: v.GetDuration("HEALTH_POLL_INTERVAL"),
		HealthHistorySize:  v.GetInt("HEALTH_HISTORY_SIZE"),
		ReportTimezone:     v.GetString("REPORT_TIMEZONE"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		LogFormat:          v.GetString("LOG_FORMAT"),
		CORSOrigins:        splitList(v.GetString("CORS_ORIGINS")),
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
	}

	if cfg.APITimeout <= 0 {
		return nil, fmt.Errorf("API_TIMEOUT must be positive, got %q", v.GetString("API_TIMEOUT"))
	}
	if cfg.HealthPollInterval < 0 {
		return nil, fmt.Errorf("HEALTH_POLL_INTERVAL must not be negative, got %q", v.GetString("HEALTH_POLL_INTERVAL"))
	}
	if cfg.HealthHistorySize < 1 {
		cfg.HealthHistorySize = 100
	}

	loc, err := time.LoadLocation(cfg.ReportTimezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load REPORT_TIMEZONE %q: %w", cfg.ReportTimezone, err)
	}
	cfg.ReportLocation = loc

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
