// Package config loads the campus-coffee configuration and sets up logging.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store  StoreConfig  `yaml:"store" mapstructure:"store"`
	OSM    OSMConfig    `yaml:"osm" mapstructure:"osm"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// StoreConfig selects and configures the POS store.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
	MaxConns    int32  `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns    int32  `yaml:"min_conns" mapstructure:"min_conns"`
}

// OSMConfig configures access to the OpenStreetMap node API.
type OSMConfig struct {
	BaseURL            string  `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSecs        int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	ConnectTimeoutSecs int     `yaml:"connect_timeout_secs" mapstructure:"connect_timeout_secs"`
	UserAgent          string  `yaml:"user_agent" mapstructure:"user_agent"`
	RateLimit          float64 `yaml:"rate_limit" mapstructure:"rate_limit"` // requests per second, 0 = unlimited
}

// Timeout returns the overall request timeout.
func (c OSMConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSecs) * time.Second
}

// ConnectTimeout returns the dial timeout.
func (c OSMConfig) ConnectTimeout() time.Duration {
	return time.Duration(c.ConnectTimeoutSecs) * time.Second
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port        int      `yaml:"port" mapstructure:"port"`
	CORSOrigins []string `yaml:"cors_origins" mapstructure:"cors_origins"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("CAMPUSCOFFEE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "postgres")
	v.SetDefault("store.database_url", "")
	v.SetDefault("store.max_conns", 10)
	v.SetDefault("store.min_conns", 2)
	v.SetDefault("osm.base_url", "https://www.openstreetmap.org/api/0.6/node")
	v.SetDefault("osm.timeout_secs", 10)
	v.SetDefault("osm.connect_timeout_secs", 10)
	v.SetDefault("osm.user_agent", "campus-coffee/1.0")
	v.SetDefault("osm.rate_limit", 1.0)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the settings a command mode depends on. Modes are
// "serve", "import", "migrate" and "pos".
func (c *Config) Validate(mode string) error {
	var problems []string

	checkStore := func() {
		switch c.Store.Driver {
		case "postgres", "sqlite":
		default:
			problems = append(problems, fmt.Sprintf("store.driver %q is not supported (postgres, sqlite)", c.Store.Driver))
		}
		if c.Store.DatabaseURL == "" {
			problems = append(problems, "store.database_url is required")
		}
		if c.Store.MaxConns < 0 || c.Store.MinConns < 0 || (c.Store.MaxConns > 0 && c.Store.MinConns > c.Store.MaxConns) {
			problems = append(problems, "store.min_conns must be between 0 and store.max_conns")
		}
	}
	checkOSM := func() {
		if c.OSM.BaseURL == "" {
			problems = append(problems, "osm.base_url is required")
		}
		if c.OSM.TimeoutSecs <= 0 || c.OSM.ConnectTimeoutSecs <= 0 {
			problems = append(problems, "osm timeouts must be > 0")
		}
		if c.OSM.RateLimit < 0 {
			problems = append(problems, "osm.rate_limit must be >= 0")
		}
	}

	switch mode {
	case "serve":
		checkStore()
		checkOSM()
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			problems = append(problems, "server.port must be > 0 and <= 65535")
		}
	case "import":
		checkStore()
		checkOSM()
	case "migrate", "pos":
		checkStore()
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if len(problems) > 0 {
		return eris.Errorf("config: invalid for %s: %s", mode, strings.Join(problems, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
