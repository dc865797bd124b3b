package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config конфигурация приложения
type Config struct {
	Atelier  AtelierConfig  `toml:"atelier"`
	Advisory AdvisoryConfig `toml:"advisory"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Seed     SeedConfig     `toml:"seed"`
}

// AtelierConfig реквизиты ателье
type AtelierConfig struct {
	WhatsAppNumber string `toml:"whatsapp_number"`
	AdminEmail     string `toml:"admin_email"`
	Address        string `toml:"address"`
}

// AdvisoryConfig настройки консультационного сервиса
type AdvisoryConfig struct {
	BaseURL        string `toml:"base_url"`
	APIKey         string `toml:"api_key"`
	Model          string `toml:"model"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Timeout возвращает таймаут HTTP-клиента консультационного сервиса
func (c AdvisoryConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
}

// SeedConfig настройки демонстрационных данных при старте
type SeedConfig struct {
	Enabled   bool     `toml:"enabled"`
	DaysAhead int      `toml:"days_ahead"`
	Times     []string `toml:"times"`
}

// Load читает конфигурацию из TOML-файла и проставляет значения
// по умолчанию для незаполненных полей.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Advisory.BaseURL == "" {
		c.Advisory.BaseURL = "https://generativelanguage.googleapis.com"
	}
	if c.Advisory.Model == "" {
		c.Advisory.Model = "gemini-2.5-flash"
	}
	if c.Advisory.TimeoutSeconds <= 0 {
		c.Advisory.TimeoutSeconds = 15
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "atelier"
	}
	if c.Seed.DaysAhead <= 0 {
		c.Seed.DaysAhead = 21
	}
	if len(c.Seed.Times) == 0 {
		c.Seed.Times = []string{"16:30", "16:50", "17:10", "17:30"}
	}
}

func (c *Config) validate() error {
	if c.Atelier.WhatsAppNumber == "" {
		return fmt.Errorf("config: atelier.whatsapp_number is required")
	}
	return nil
}
