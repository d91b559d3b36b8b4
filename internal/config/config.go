package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL string        `mapstructure:"DATABASE_URL"`
	JWTSecret   string        `mapstructure:"JWT_SECRET"`
	JWTTTL      time.Duration `mapstructure:"JWT_TTL"`
	HTTPAddr    string        `mapstructure:"HTTP_ADDR"`
	RedisURL    string        `mapstructure:"REDIS_URL"`
	CacheTTL    time.Duration `mapstructure:"CACHE_TTL"`
	Timezone    string        `mapstructure:"TIMEZONE"`
	LogLevel    string        `mapstructure:"LOG_LEVEL"`
	LoginRate   float64       `mapstructure:"LOGIN_RATE"`
	LoginBurst  int           `mapstructure:"LOGIN_BURST"`
}

var defaults = map[string]any{
	"DATABASE_URL": "",
	"JWT_SECRET":   "",
	"JWT_TTL":      "168h",
	"HTTP_ADDR":    ":8080",
	"REDIS_URL":    "",
	"CACHE_TTL":    "10m",
	"TIMEZONE":     "Local",
	"LOG_LEVEL":    "info",
	"LOGIN_RATE":   1.0,
	"LOGIN_BURST":  5,
}

// LoadConfig loads the configuration from a .env file in path and environment
// variables, environment taking precedence.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	return &cfg, nil
}

// Location resolves the time zone used for calendar days.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	return nil
}
