package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the full application configuration
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Logger    LoggerConfig
	Retention RetentionConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	Mode            string
	BasePath        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds relational store settings
// Driver selects between the embedded sqlite store and postgres
type DatabaseConfig struct {
	Driver          string
	Path            string
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// LoggerConfig holds logging settings
type LoggerConfig struct {
	Level string
}

// RetentionConfig holds the done-column retention job settings
type RetentionConfig struct {
	Enabled  bool
	Schedule string
	MaxAge   time.Duration
}

// GetDSN builds the GORM DSN for the configured driver
func (c DatabaseConfig) GetDSN() string {
	if c.Driver == "postgres" {
		return fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
		)
	}
	return c.Path
}

// rawConfig mirrors the YAML layout; durations are parsed from strings
type rawConfig struct {
	Server struct {
		Port            string `yaml:"port"`
		Mode            string `yaml:"mode"`
		BasePath        string `yaml:"base_path"`
		ReadTimeout     string `yaml:"read_timeout"`
		WriteTimeout    string `yaml:"write_timeout"`
		ShutdownTimeout string `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Database struct {
		Driver          string `yaml:"driver"`
		Path            string `yaml:"path"`
		Host            string `yaml:"host"`
		Port            int    `yaml:"port"`
		User            string `yaml:"user"`
		Password        string `yaml:"password"`
		Name            string `yaml:"name"`
		SSLMode         string `yaml:"sslmode"`
		MaxOpenConns    int    `yaml:"max_open_conns"`
		MaxIdleConns    int    `yaml:"max_idle_conns"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime"`
	} `yaml:"database"`
	Logger struct {
		Level string `yaml:"level"`
	} `yaml:"logger"`
	Retention struct {
		Enabled  bool   `yaml:"enabled"`
		Schedule string `yaml:"schedule"`
		MaxAge   string `yaml:"max_age"`
	} `yaml:"retention"`
}

// Load reads configuration from the given YAML file, applies defaults and
// environment overrides
func Load(path string) (*Config, error) {
	raw := rawConfig{}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Missing file is fine; defaults and environment take over
	} else if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyEnvOverrides(&raw)

	cfg := &Config{
		Server: ServerConfig{
			Port:     defaultString(raw.Server.Port, "4567"),
			Mode:     defaultString(raw.Server.Mode, "debug"),
			BasePath: raw.Server.BasePath,
		},
		Database: DatabaseConfig{
			Driver:       defaultString(raw.Database.Driver, "sqlite"),
			Path:         defaultString(raw.Database.Path, "kanban.db"),
			Host:         defaultString(raw.Database.Host, "localhost"),
			Port:         defaultInt(raw.Database.Port, 5432),
			User:         raw.Database.User,
			Password:     raw.Database.Password,
			Name:         defaultString(raw.Database.Name, "kanban"),
			SSLMode:      defaultString(raw.Database.SSLMode, "disable"),
			MaxOpenConns: defaultInt(raw.Database.MaxOpenConns, 10),
			MaxIdleConns: defaultInt(raw.Database.MaxIdleConns, 5),
		},
		Logger: LoggerConfig{
			Level: defaultString(raw.Logger.Level, "info"),
		},
		Retention: RetentionConfig{
			Enabled:  raw.Retention.Enabled,
			Schedule: defaultString(raw.Retention.Schedule, "0 3 * * *"),
		},
	}

	if cfg.Server.ReadTimeout, err = parseDuration(raw.Server.ReadTimeout, 15*time.Second); err != nil {
		return nil, fmt.Errorf("invalid server.read_timeout: %w", err)
	}
	if cfg.Server.WriteTimeout, err = parseDuration(raw.Server.WriteTimeout, 15*time.Second); err != nil {
		return nil, fmt.Errorf("invalid server.write_timeout: %w", err)
	}
	if cfg.Server.ShutdownTimeout, err = parseDuration(raw.Server.ShutdownTimeout, 10*time.Second); err != nil {
		return nil, fmt.Errorf("invalid server.shutdown_timeout: %w", err)
	}
	if cfg.Database.ConnMaxLifetime, err = parseDuration(raw.Database.ConnMaxLifetime, time.Hour); err != nil {
		return nil, fmt.Errorf("invalid database.conn_max_lifetime: %w", err)
	}
	if cfg.Retention.MaxAge, err = parseDuration(raw.Retention.MaxAge, 30*24*time.Hour); err != nil {
		return nil, fmt.Errorf("invalid retention.max_age: %w", err)
	}

	if cfg.Database.Driver != "sqlite" && cfg.Database.Driver != "postgres" {
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	return cfg, nil
}

// applyEnvOverrides lets deployment environments override file settings
func applyEnvOverrides(raw *rawConfig) {
	if v := os.Getenv("SERVER_PORT"); v != "" {
		raw.Server.Port = v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		raw.Server.Mode = v
	}
	if v := os.Getenv("DB_DRIVER"); v != "" {
		raw.Database.Driver = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		raw.Database.Path = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		raw.Database.Host = v
	}
	if v := os.Getenv("DB_USER"); v != "" {
		raw.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		raw.Database.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		raw.Database.Name = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		raw.Logger.Level = v
	}
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func defaultInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func parseDuration(v string, def time.Duration) (time.Duration, error) {
	if v == "" {
		return def, nil
	}
	return time.ParseDuration(v)
}
