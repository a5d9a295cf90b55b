package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/sevos/internal/common"
)

// NewClient builds the completion client described by cfg. Without an API
// key the deterministic stub is used and the provider name is not checked
// against a live endpoint. Every client is wrapped with the call timeout
// and, when configured, the outbound rate limiter.
func NewClient(cfg Config, logger *slog.Logger) (*GuardedClient, error) {
	if logger == nil {
		logger = slog.Default()
	}

	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if provider == "" {
		provider = "openai"
	}

	var inner Client
	switch {
	case provider != "openai" && provider != "anthropic":
		return nil, fmt.Errorf("%w: unsupported LLM provider: %s", common.ErrInvalidConfig, cfg.Provider)
	case !cfg.Live():
		inner = newStubClient()
		provider = "stub"
	case provider == "openai":
		c, err := newOpenAIClient(cfg)
		if err != nil {
			return nil, err
		}
		inner = c
	default:
		c, err := newAnthropicClient(cfg)
		if err != nil {
			return nil, err
		}
		inner = c
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	g := &GuardedClient{
		inner:    inner,
		provider: provider,
		timeout:  timeout,
		logger:   logger,
	}
	if cfg.RateLimit > 0 {
		g.limiter = newRateLimiter(cfg.RateLimit)
	}
	return g, nil
}

// GuardedClient applies the per-call deadline and rate limit around a
// provider client and logs each call.
type GuardedClient struct {
	inner    Client
	limiter  *rateLimiter
	logger   *slog.Logger
	provider string
	timeout  time.Duration
}

// Provider names the backing provider ("openai", "anthropic" or "stub").
func (g *GuardedClient) Provider() string {
	return g.provider
}

// Complete forwards to the provider under the configured deadline. A missed
// deadline is reported as a timeout ProviderError.
func (g *GuardedClient) Complete(ctx context.Context, messages []Message, opts Options) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	logger := common.LoggerFrom(ctx, g.logger).With("provider", g.provider, "task", opts.Task)

	if g.limiter != nil {
		if err := g.limiter.wait(ctx); err != nil {
			logger.Warn("completion rate limited", "error", err)
			return "", providerError(g.provider, err)
		}
	}

	start := time.Now()
	text, err := g.inner.Complete(ctx, messages, opts)
	latency := time.Since(start)

	if err != nil {
		var pe *ProviderError
		if !errors.As(err, &pe) && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = providerError(g.provider, ctx.Err())
		}
		logger.Warn("completion failed", "error", err, "latency", latency)
		return "", err
	}

	logger.Debug("completion finished", "model", opts.Model, "latency", latency, "chars", len(text))
	return text, nil
}

// Close releases the rate limiter, if any.
func (g *GuardedClient) Close() {
	if g.limiter != nil {
		g.limiter.Close()
	}
}
