package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	TelegramToken        string        `mapstructure:"TELEGRAM_TOKEN"`
	DBDSN                string        `mapstructure:"DB_DSN"`
	Environment          string        `mapstructure:"ENV"`
	LogLevel             string        `mapstructure:"LOG_LEVEL"`
	SessionTTL           time.Duration `mapstructure:"SESSION_TTL"`
	SessionSweepInterval time.Duration `mapstructure:"SESSION_SWEEP_INTERVAL"`
	HistoryLimit         int           `mapstructure:"HISTORY_LIMIT"`
}

func Load() (*Config, error) {
	// .env необязателен, переменные окружения имеют приоритет
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	v := viper.New()
	v.AutomaticEnv()

	// без SetDefault viper не увидит ключ при Unmarshal
	v.SetDefault("TELEGRAM_TOKEN", "")
	v.SetDefault("DB_DSN", "")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SESSION_TTL", 2*time.Hour)
	v.SetDefault("SESSION_SWEEP_INTERVAL", 10*time.Minute)
	v.SetDefault("HISTORY_LIMIT", 5)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные поля и диапазоны
func (c *Config) Validate() error {
	if c.DBDSN == "" {
		return errors.New("DB_DSN is required but not set")
	}
	if c.TelegramToken == "" {
		return errors.New("TELEGRAM_TOKEN is required but not set")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	if c.SessionSweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive, got %s", c.SessionSweepInterval)
	}
	if c.HistoryLimit < 1 {
		return fmt.Errorf("HISTORY_LIMIT must be at least 1, got %d", c.HistoryLimit)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
