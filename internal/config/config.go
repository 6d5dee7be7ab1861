// Package config arma la configuración del servicio:
// defaults -> YAML opcional (SITTERS_CONFIG) -> env (SITTERS_*).
package config

import (
	"fmt"
	"strings"
	"time"
)

// Fuentes del catálogo.
const (
	SourceFixtures   = "fixtures"   // demo embebida, solo lectura
	SourceRepository = "repository" // repositorios propios (memory o postgres)
	SourceRemote     = "remote"     // backend hospedado (REST)
)

type Config struct {
	Addr      string `koanf:"addr"`
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"` // json | console
	AppName   string `koanf:"app_name"`

	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`

	// Vacío = repositorios en memoria.
	DBDSN string `koanf:"db_dsn"`

	CatalogSource          string        `koanf:"catalog_source"`
	SeedFixtures           bool          `koanf:"seed_fixtures"`
	CatalogRefreshInterval time.Duration `koanf:"catalog_refresh_interval"` // 0 = sin refresh periódico
	RemoteBaseURL          string        `koanf:"remote_base_url"`
	RemoteAPIKey           string        `koanf:"remote_api_key"`

	// Sin auth_base_url se usa el modo dev (X-Debug-User-ID).
	AuthBaseURL string `koanf:"auth_base_url"`
	AuthAPIKey  string `koanf:"auth_api_key"`

	// Vacío = estados de búsqueda en memoria.
	RedisAddr     string        `koanf:"redis_addr"`
	RedisDB       int           `koanf:"redis_db"`
	QueryStateTTL time.Duration `koanf:"query_state_ttl"`

	// Sin brokers los cambios refrescan el catálogo en el mismo proceso.
	KafkaBrokers []string `koanf:"kafka_brokers"`
	KafkaTopic   string   `koanf:"kafka_topic"`

	RateLimitRPS   float64 `koanf:"rate_limit_rps"` // <= 0 desactiva
	RateLimitBurst int     `koanf:"rate_limit_burst"`
}

// New devuelve la configuración por defecto (modo dev, todo en memoria).
func New() *Config {
	return &Config{
		Addr:                   ":8080",
		LogLevel:               "info",
		LogFormat:              "json",
		AppName:                "dog-sitters",
		ReadTimeout:            10 * time.Second,
		WriteTimeout:           15 * time.Second,
		CatalogSource:          SourceRepository,
		SeedFixtures:           true,
		CatalogRefreshInterval: 5 * time.Minute,
		QueryStateTTL:          30 * 24 * time.Hour,
		KafkaTopic:             "catalog-changes",
		RateLimitRPS:           20,
		RateLimitBurst:         40,
	}
}

// Validate revisa lo mínimo para poder arrancar.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	switch c.CatalogSource {
	case SourceFixtures, SourceRepository:
	case SourceRemote:
		if strings.TrimSpace(c.RemoteBaseURL) == "" || strings.TrimSpace(c.RemoteAPIKey) == "" {
			return fmt.Errorf("%w: remote catalog needs remote_base_url and remote_api_key", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown catalog_source %q", ErrInvalidConfig, c.CatalogSource)
	}
	if len(c.KafkaBrokers) > 0 && strings.TrimSpace(c.KafkaTopic) == "" {
		return fmt.Errorf("%w: kafka_topic must not be empty", ErrInvalidConfig)
	}
	if c.AuthBaseURL != "" && c.AuthAPIKey == "" {
		return fmt.Errorf("%w: auth_api_key is required with auth_base_url", ErrInvalidConfig)
	}
	return nil
}

// DevAuth indica si se aceptan los headers de depuración.
func (c *Config) DevAuth() bool {
	return strings.TrimSpace(c.AuthBaseURL) == ""
}
