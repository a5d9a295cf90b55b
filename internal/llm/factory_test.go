package llm

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/sevos/internal/common"
	"github.com/Veraticus/sevos/internal/model"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name         string
		cfg          Config
		wantProvider string
		wantErr      error
	}{
		{"no key falls back to stub", Config{Provider: "openai"}, "stub", nil},
		{"empty provider defaults to openai", Config{APIKey: "k"}, "openai", nil},
		{"anthropic", Config{Provider: "Anthropic", APIKey: "k"}, "anthropic", nil},
		{"unknown provider", Config{Provider: "mistral", APIKey: "k"}, "", common.ErrInvalidConfig},
		{"unknown provider without key", Config{Provider: "mistral"}, "", common.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.cfg, nil)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			defer client.Close()
			assert.Equal(t, tt.wantProvider, client.Provider())
			assert.Equal(t, DefaultTimeout, client.timeout)
		})
	}
}

type slowClient struct{ delay time.Duration }

func (s slowClient) Complete(ctx context.Context, _ []Message, _ Options) (string, error) {
	select {
	case <-time.After(s.delay):
		return "late", nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

type failingClient struct{ err error }

func (f failingClient) Complete(context.Context, []Message, Options) (string, error) {
	return "", f.err
}

func TestGuardedClient_Timeout(t *testing.T) {
	g := &GuardedClient{
		inner:    slowClient{delay: time.Second},
		provider: "test",
		timeout:  20 * time.Millisecond,
		logger:   slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
	}

	_, err := g.Complete(context.Background(), nil, Options{Task: model.TaskClassify})
	require.Error(t, err)

	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, KindTimeout, pe.Kind)
	assert.ErrorIs(t, err, common.ErrTimeout)
}

func TestGuardedClient_PassesErrorsThrough(t *testing.T) {
	cfgErr := fmt.Errorf("%w: no offline reply", common.ErrMissingConfig)
	g := &GuardedClient{
		inner:    failingClient{err: cfgErr},
		provider: "stub",
		timeout:  time.Second,
		logger:   slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
	}

	_, err := g.Complete(context.Background(), nil, Options{})
	assert.ErrorIs(t, err, common.ErrMissingConfig)
	assert.NotErrorIs(t, err, common.ErrTimeout)
}

func TestGuardedClient_RateLimited(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer server.Close()

	client, err := NewClient(Config{APIKey: "k", BaseURL: server.URL, RateLimit: 1, Timeout: 100 * time.Millisecond}, nil)
	require.NoError(t, err)
	defer client.Close()

	text, err := client.Complete(context.Background(), nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, "ok", text)

	// The single token is spent, so the second call waits out its deadline.
	_, err = client.Complete(context.Background(), nil, Options{})
	assert.ErrorIs(t, err, common.ErrTimeout)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGuardedClient_LogsRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	client, err := NewClient(Config{}, logger)
	require.NoError(t, err)

	ctx := common.WithRequestID(context.Background(), "req-123")
	_, err = client.Complete(ctx, nil, Options{Task: model.TaskSummarize})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "request_id=req-123")
	assert.Contains(t, buf.String(), "provider=stub")
	assert.Contains(t, buf.String(), "task=summarize")
}
