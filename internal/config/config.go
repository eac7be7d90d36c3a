package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server         ServerConfig       `toml:"server"`
	Database       DatabaseConfig     `toml:"database"`
	Logs           LogsConfig         `toml:"logs"`
	Metrics        MetricsConfig      `toml:"metrics"`
	UserService    IntegrationConfig  `toml:"user_service"`
	PromoService   IntegrationConfig  `toml:"promo_service"`
	PaymentGateway PaymentConfig      `toml:"payment_gateway"`
	Pricing        PricingConfig      `toml:"pricing"`
	Availability   AvailabilityConfig `toml:"availability"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN собирает строку подключения
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// IntegrationConfig настройки HTTP клиента внешнего сервиса
type IntegrationConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// PaymentConfig настройки платежного шлюза
type PaymentConfig struct {
	URL       string `toml:"url"`
	Timeout   int    `toml:"timeout"`
	KeyID     string `toml:"key_id"`
	KeySecret string `toml:"key_secret"`
}

// PricingConfig бизнес-параметры расчета стоимости
// Peak-окно задается в локальном времени начала аренды
type PricingConfig struct {
	TaxPercent    float64 `toml:"tax_percent"`
	PeakStartHour int     `toml:"peak_start_hour"`
	PeakEndHour   int     `toml:"peak_end_hour"`
	WeekendIsPeak bool    `toml:"weekend_is_peak"`
}

// AvailabilityConfig параметры проверки доступности
type AvailabilityConfig struct {
	SearchBufferMinutes int `toml:"search_buffer_minutes"`
}

// Load читает конфигурацию из TOML файла и применяет дефолты
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Pricing.TaxPercent == 0 {
		c.Pricing.TaxPercent = 18
	}
	if c.Pricing.PeakStartHour == 0 && c.Pricing.PeakEndHour == 0 {
		c.Pricing.PeakStartHour = 17
		c.Pricing.PeakEndHour = 21
	}
	if c.Availability.SearchBufferMinutes == 0 {
		c.Availability.SearchBufferMinutes = 30
	}
}

func (c *Config) validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.Pricing.PeakStartHour < 0 || c.Pricing.PeakStartHour > 23 ||
		c.Pricing.PeakEndHour < 0 || c.Pricing.PeakEndHour > 24 {
		return fmt.Errorf("config: pricing peak hours out of range")
	}
	if c.Pricing.PeakStartHour >= c.Pricing.PeakEndHour {
		return fmt.Errorf("config: pricing.peak_start_hour must be before peak_end_hour")
	}
	return nil
}
