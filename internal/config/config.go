package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Veraticus/sevos/internal/common"
	"github.com/Veraticus/sevos/internal/llm"
)

// Config is the full service configuration.
type Config struct {
	Logging LoggingConfig
	LLM     llm.Config
	Server  ServerConfig
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr            string
	CORSOrigins     []string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	RateLimit       int
}

// LoggingConfig configures the default slog logger.
type LoggingConfig struct {
	Level  string
	Format string
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":3001")
	v.SetDefault("server.read_timeout", 60*time.Second)
	v.SetDefault("server.write_timeout", 90*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.rate_limit", 0)
	v.SetDefault("server.cors_origins", []string{"*"})

	v.SetDefault("llm.provider", "openai")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.timeout", llm.DefaultTimeout)
	v.SetDefault("llm.rate_limit", 0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Load reads the configuration from v and validates it.
// The API key follows this precedence:
// 1. Viper configuration (from config file or SEVOS_ env vars)
// 2. The provider's own environment variable (OPENAI_API_KEY, ANTHROPIC_API_KEY)
// 3. None, which selects the offline stub client
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	cfg := Config{
		Server: ServerConfig{
			Addr:            v.GetString("server.addr"),
			ReadTimeout:     v.GetDuration("server.read_timeout"),
			WriteTimeout:    v.GetDuration("server.write_timeout"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
			RateLimit:       v.GetInt("server.rate_limit"),
			CORSOrigins:     v.GetStringSlice("server.cors_origins"),
		},
		LLM: llm.Config{
			Provider:  strings.ToLower(strings.TrimSpace(v.GetString("llm.provider"))),
			Model:     strings.TrimSpace(v.GetString("llm.model")),
			APIKey:    strings.TrimSpace(v.GetString("llm.api_key")),
			BaseURL:   strings.TrimSpace(v.GetString("llm.base_url")),
			Timeout:   v.GetDuration("llm.timeout"),
			RateLimit: v.GetInt("llm.rate_limit"),
		},
		Logging: LoggingConfig{
			Level:  strings.ToLower(v.GetString("logging.level")),
			Format: strings.ToLower(v.GetString("logging.format")),
		},
	}

	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = providerKey(cfg.LLM.Provider)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func providerKey(provider string) string {
	switch provider {
	case "anthropic":
		return strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY"))
	default:
		return strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	}
}

// Validate reports every invalid value, each wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{common.ErrInvalidConfig}, args...)...))
	}

	if c.Server.Addr == "" {
		invalid("server.addr is required")
	}
	if c.Server.RateLimit < 0 {
		invalid("server.rate_limit must be >= 0, got %d", c.Server.RateLimit)
	}
	if c.Server.ShutdownTimeout <= 0 {
		invalid("server.shutdown_timeout must be positive")
	}

	switch c.LLM.Provider {
	case "openai", "anthropic":
	default:
		invalid("llm.provider must be openai or anthropic, got %q", c.LLM.Provider)
	}
	if c.LLM.Timeout <= 0 {
		invalid("llm.timeout must be positive")
	}
	if c.LLM.RateLimit < 0 {
		invalid("llm.rate_limit must be >= 0, got %d", c.LLM.RateLimit)
	}

	if _, err := common.ParseLevel(c.Logging.Level); err != nil {
		invalid("logging.level: %v", err)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		invalid("logging.format must be console or json, got %q", c.Logging.Format)
	}

	return errors.Join(errs...)
}

// Mode reports whether the service calls a real provider.
func (c Config) Mode() string {
	if c.LLM.Live() {
		return "live"
	}
	return "stub"
}
