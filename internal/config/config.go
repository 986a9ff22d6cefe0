package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server         ServerConfig      `toml:"server"`
	Database       DatabaseConfig    `toml:"database"`
	Logs           LogsConfig        `toml:"logs"`
	Metrics        MetricsConfig     `toml:"metrics"`
	CatalogService IntegrationConfig `toml:"catalog_service"`
	ClientService  IntegrationConfig `toml:"client_service"`
	Auth           AuthConfig        `toml:"auth"`
}

// ServerConfig конфигурация HTTP сервера
type ServerConfig struct {
	HTTPPort        int      `toml:"http_port"`
	ReadTimeout     duration `toml:"read_timeout"`
	WriteTimeout    duration `toml:"write_timeout"`
	IdleTimeout     duration `toml:"idle_timeout"`
	ShutdownTimeout duration `toml:"shutdown_timeout"`
}

// DatabaseConfig конфигурация подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string   `toml:"host"`
	Port            int      `toml:"port"`
	User            string   `toml:"user"`
	Password        string   `toml:"password"`
	Name            string   `toml:"name"`
	SSLMode         string   `toml:"ssl_mode"`
	MaxOpenConns    int      `toml:"max_open_conns"`
	MaxIdleConns    int      `toml:"max_idle_conns"`
	ConnMaxLifetime duration `toml:"conn_max_lifetime"`
}

// LogsConfig конфигурация логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig конфигурация метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// IntegrationConfig конфигурация HTTP клиента смежного сервиса
type IntegrationConfig struct {
	URL     string   `toml:"url"`
	Timeout duration `toml:"timeout"`
}

// AuthConfig конфигурация проверки сессий
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
}

// duration обертка для парсинга длительностей из TOML ("15s", "2m")
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Load читает конфигурацию из TOML файла.
// Секреты перекрываются переменными окружения: DB_PASSWORD и JWT_SECRET
// имеют приоритет над значениями из файла.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.Database.Password = password
	}

	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DSN собирает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("config: auth.jwt_secret is required (file or JWT_SECRET env)")
	}
	return nil
}
