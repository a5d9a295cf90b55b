package llm

import (
	"context"
	"time"

	"github.com/Veraticus/sevos/internal/model"
)

// Role is the author of a chat message.
type Role string

// Role constants.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry of a chat-completion conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Options are the per-call generation settings.
type Options struct {
	Task        model.Task
	Model       string
	Temperature float64
	MaxTokens   int
}

// Client sends a conversation to a completion provider and returns the raw
// reply text.
type Client interface {
	Complete(ctx context.Context, messages []Message, opts Options) (string, error)
}

// Config selects and configures a provider.
type Config struct {
	Provider  string
	APIKey    string
	Model     string
	BaseURL   string
	Timeout   time.Duration
	RateLimit int // requests per minute, 0 disables
}

// Live reports whether calls go to a real provider rather than the stub.
func (c Config) Live() bool {
	return c.APIKey != ""
}

// Defaults applied when neither config nor options set a value.
const (
	DefaultTimeout     = 30 * time.Second
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 1000
)

// resolve fills unset options from the client defaults.
func resolve(opts Options, defaultModel string) Options {
	if opts.Model == "" {
		opts.Model = defaultModel
	}
	if opts.Temperature == 0 {
		opts.Temperature = DefaultTemperature
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = DefaultMaxTokens
	}
	return opts
}
