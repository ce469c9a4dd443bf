package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Catalog CatalogConfig `toml:"catalog"`
	Booking BookingConfig `toml:"booking"`
	Redis   RedisConfig   `toml:"redis"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
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

// CatalogConfig настройки каталога площадок
type CatalogConfig struct {
	// SeedFile путь к JSON-файлу с данными площадок
	SeedFile string `toml:"seed_file"`

	// AvailabilitySeed зерно генератора доступности; 0 = зерно от текущего времени
	AvailabilitySeed int64 `toml:"availability_seed"`

	// BookedRate вероятность изначально занятого слота [0..1]
	BookedRate float64 `toml:"booked_rate"`
}

// BookingConfig настройки обработки бронирований
type BookingConfig struct {
	// ProcessingDelayMS искусственная задержка обработки бронирования в миллисекундах
	ProcessingDelayMS int `toml:"processing_delay_ms"`

	// SessionTTL время жизни записи бронирования в хранилище сессий, секунды
	SessionTTL int `toml:"session_ttl"`
}

// RedisConfig настройки Redis-хранилища сессий
// При Enabled = false используется in-memory хранилище
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Load читает конфигурацию из TOML файла и подставляет значения по умолчанию
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if cfg.Catalog.BookedRate < 0 || cfg.Catalog.BookedRate > 1 {
		return nil, fmt.Errorf("config: catalog.booked_rate must be within [0, 1], got %v", cfg.Catalog.BookedRate)
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			File:  "logs/app.log",
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "sb-booking-service",
		},
		Catalog: CatalogConfig{
			SeedFile:   "seed/facilities.json",
			BookedRate: 0.3,
		},
		Booking: BookingConfig{
			ProcessingDelayMS: 2000,
			SessionTTL:        1800,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
	}
}
