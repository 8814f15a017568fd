package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/shamal-freight/SFB-LeadService/internal/domain"
)

// Config конфигурация сервиса, загружается из TOML файла.
// Переменные окружения (после godotenv) перекрывают адрес scheduling backend:
// это единственный деплой-параметр, меняющийся между окружениями.
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	SchedulingAPI SchedulingAPIConfig `toml:"scheduling_api"`
	Broker        BrokerConfig        `toml:"broker"`
	Wizard        WizardConfig        `toml:"wizard"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SchedulingAPIConfig настройки клиента scheduling backend
type SchedulingAPIConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// BrokerConfig настройки времени брокера.
// Единственная точка конфигурации фиксированного смещения UTC+3 (без DST):
// при переходе брокера на DST правится только это место.
type BrokerConfig struct {
	UTCOffsetHours int `toml:"utc_offset_hours"`
}

// WizardConfig настройки жизненного цикла сессий визарда
type WizardConfig struct {
	SessionTTLMinutes      int `toml:"session_ttl_minutes"`
	CleanupIntervalMinutes int `toml:"cleanup_interval_minutes"`
}

// Load загружает конфигурацию из TOML файла.
// Перед чтением файла подхватывает .env (если есть).
func Load(path string) (*Config, error) {
	// .env опционален: в проде переменные приходят из окружения
	_ = godotenv.Load(".env")

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if url := os.Getenv("SCHEDULING_API_URL"); url != "" {
		cfg.SchedulingAPI.URL = url
	}

	cfg.applyDefaults()

	if cfg.SchedulingAPI.URL == "" {
		return nil, fmt.Errorf("config: scheduling_api.url is required (or SCHEDULING_API_URL env)")
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "sfb-lead-service"
	}
	if c.SchedulingAPI.Timeout == 0 {
		c.SchedulingAPI.Timeout = 10
	}
	if c.Broker.UTCOffsetHours == 0 {
		c.Broker.UTCOffsetHours = domain.DefaultBrokerUTCOffsetHours
	}
	if c.Wizard.SessionTTLMinutes == 0 {
		c.Wizard.SessionTTLMinutes = 120
	}
	if c.Wizard.CleanupIntervalMinutes == 0 {
		c.Wizard.CleanupIntervalMinutes = 10
	}
}
