package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/sevos/internal/common"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, ":3001", cfg.Server.Addr)
	assert.Equal(t, 0, cfg.Server.RateLimit)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "stub", cfg.Mode())
}

func TestLoad_APIKeyPrecedence(t *testing.T) {
	tests := []struct {
		name      string
		provider  string
		configKey string
		openAI    string
		anthropic string
		want      string
	}{
		{name: "config wins", provider: "openai", configKey: "from-config", openAI: "from-env", want: "from-config"},
		{name: "openai env", provider: "openai", openAI: "sk-openai", anthropic: "sk-ant", want: "sk-openai"},
		{name: "anthropic env", provider: "anthropic", openAI: "sk-openai", anthropic: "sk-ant", want: "sk-ant"},
		{name: "none", provider: "anthropic", openAI: "sk-openai", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("OPENAI_API_KEY", tt.openAI)
			t.Setenv("ANTHROPIC_API_KEY", tt.anthropic)

			v := viper.New()
			v.Set("llm.provider", tt.provider)
			v.Set("llm.api_key", tt.configKey)

			cfg, err := Load(v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.LLM.APIKey)
		})
	}
}

func TestLoad_FromFile(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":8080"
  rate_limit: 120
  cors_origins: ["http://localhost:3000"]
llm:
  provider: Anthropic
  model: claude-3-haiku-20240307
  api_key: sk-test
  timeout: 5s
logging:
  level: DEBUG
  format: json
`), 0o600))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 120, cfg.Server.RateLimit)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, "claude-3-haiku-20240307", cfg.LLM.Model)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "live", cfg.Mode())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key     string
		value   any
		wantMsg string
	}{
		{"llm.provider", "gemini", "llm.provider"},
		{"llm.timeout", "0s", "llm.timeout"},
		{"llm.rate_limit", -1, "llm.rate_limit"},
		{"server.rate_limit", -5, "server.rate_limit"},
		{"server.addr", "", "server.addr"},
		{"logging.level", "verbose", "logging.level"},
		{"logging.format", "xml", "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v := viper.New()
			v.Set(tt.key, tt.value)

			_, err := Load(v)
			require.Error(t, err)
			assert.True(t, errors.Is(err, common.ErrInvalidConfig))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
