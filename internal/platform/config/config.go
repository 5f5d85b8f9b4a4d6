package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPort            = 5555
	DefaultAppName         = "pet-api"
	DefaultReadTimeout     = 5 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultShutdownTimeout = 15 * time.Second
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Port    int    `yaml:"port"`
	AppName string `yaml:"app_name"`

	// DBDSN vacío => storage in-memory (modo dev).
	DBDSN       string `yaml:"db_dsn"`
	AutoMigrate bool   `yaml:"auto_migrate"`

	Log LogConfig `yaml:"log"`

	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Default() Config {
	return Config{
		Port:            DefaultPort,
		AppName:         DefaultAppName,
		AutoMigrate:     true,
		Log:             LogConfig{Level: "info", Format: "text"},
		ReadTimeout:     DefaultReadTimeout,
		WriteTimeout:    DefaultWriteTimeout,
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

// Load arma la config: defaults < archivo YAML (opcional) < env.
// Los flags se aplican después, desde cmd.
func Load(path string) (Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		if !ok {
			return "", false
		}
		v = strings.TrimSpace(v)
		return v, v != ""
	}

	if v, ok := get("PORT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: PORT=%q", ErrInvalidConfig, v)
		}
		cfg.Port = n
	}
	if v, ok := get("APP_NAME"); ok {
		cfg.AppName = v
	}
	if v, ok := get("DB_DSN"); ok {
		cfg.DBDSN = v
	}
	if v, ok := get("AUTO_MIGRATE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: AUTO_MIGRATE=%q", ErrInvalidConfig, v)
		}
		cfg.AutoMigrate = b
	}
	if v, ok := get("LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}
	if v, ok := get("LOG_FORMAT"); ok {
		cfg.Log.Format = v
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"READ_TIMEOUT", &cfg.ReadTimeout},
		{"WRITE_TIMEOUT", &cfg.WriteTimeout},
		{"SHUTDOWN_TIMEOUT", &cfg.ShutdownTimeout},
	}
	for _, d := range durations {
		v, ok := get(d.key)
		if !ok {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, d.key, v)
		}
		*d.dst = parsed
	}

	return nil
}

func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port)
	}
	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 || c.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidConfig)
	}
	return nil
}

// Addr es la dirección de escucha del server HTTP.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// UsesDatabase indica si hay DSN configurado.
func (c Config) UsesDatabase() bool {
	return strings.TrimSpace(c.DBDSN) != ""
}
