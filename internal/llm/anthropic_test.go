package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/sevos/internal/common"
)

func TestNewAnthropicClient(t *testing.T) {
	_, err := newAnthropicClient(Config{})
	require.Error(t, err)

	client, err := newAnthropicClient(Config{APIKey: "test-key"})
	require.NoError(t, err)
	assert.Equal(t, "claude-3-sonnet-20240229", client.model)
	assert.Equal(t, "https://api.anthropic.com", client.baseURL)
}

func TestAnthropicClient_Complete(t *testing.T) {
	var got struct {
		Model       string    `json:"model"`
		System      string    `json:"system"`
		Messages    []Message `json:"messages"`
		MaxTokens   int       `json:"max_tokens"`
		Temperature float64   `json:"temperature"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_, _ = w.Write([]byte(`{"id":"m1","type":"message","role":"assistant","content":[{"type":"text","text":"{\"summary\":"},{"type":"text","text":"\"ok\"}"}]}`))
	}))
	defer server.Close()

	client, err := newAnthropicClient(Config{APIKey: "test-key", BaseURL: server.URL, Model: "claude-test"})
	require.NoError(t, err)

	text, err := client.Complete(context.Background(), []Message{
		{Role: RoleSystem, Content: "be terse"},
		{Role: RoleUser, Content: "summarize"},
	}, Options{})
	require.NoError(t, err)

	assert.Equal(t, `{"summary":"ok"}`, text)
	assert.Equal(t, "claude-test", got.Model)
	assert.Equal(t, "be terse", got.System)
	assert.Equal(t, []Message{{Role: RoleUser, Content: "summarize"}}, got.Messages)
	assert.Equal(t, DefaultMaxTokens, got.MaxTokens)
	assert.InDelta(t, DefaultTemperature, got.Temperature, 1e-9)
}

func TestAnthropicClient_Errors(t *testing.T) {
	t.Run("status error keeps body for logs", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"invalid x-api-key"}`))
		}))
		defer server.Close()

		client, err := newAnthropicClient(Config{APIKey: "bad", BaseURL: server.URL})
		require.NoError(t, err)

		_, err = client.Complete(context.Background(), []Message{{Role: RoleUser, Content: "x"}}, Options{})
		var pe *ProviderError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, http.StatusUnauthorized, pe.StatusCode)
		assert.Contains(t, pe.Body, "invalid x-api-key")
		assert.NotErrorIs(t, err, common.ErrTimeout)
	})

	t.Run("empty content", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"content":[]}`))
		}))
		defer server.Close()

		client, err := newAnthropicClient(Config{APIKey: "k", BaseURL: server.URL})
		require.NoError(t, err)

		_, err = client.Complete(context.Background(), []Message{{Role: RoleUser, Content: "x"}}, Options{})
		assert.ErrorIs(t, err, common.ErrProvider)
	})
}
