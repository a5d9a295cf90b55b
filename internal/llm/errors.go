package llm

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/Veraticus/sevos/internal/common"
)

// Kind separates provider timeouts from every other provider failure.
type Kind int

// Kind constants.
const (
	KindProvider Kind = iota
	KindTimeout
)

// ProviderError is returned when the completion provider cannot produce a
// reply. Status and Body are kept for logs and never shown to callers.
type ProviderError struct {
	Err        error
	Provider   string
	Body       string
	StatusCode int
	Kind       Kind
}

func (e *ProviderError) Error() string {
	switch {
	case e.Kind == KindTimeout:
		return fmt.Sprintf("%s: completion timed out: %v", e.Provider, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: API error (status %d): %s", e.Provider, e.StatusCode, e.Body)
	default:
		return fmt.Sprintf("%s: %v", e.Provider, e.Err)
	}
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Is matches ErrProvider for every kind and ErrTimeout for timeouts.
func (e *ProviderError) Is(target error) bool {
	switch target {
	case common.ErrProvider:
		return true
	case common.ErrTimeout:
		return e.Kind == KindTimeout
	default:
		return false
	}
}

// providerError wraps a transport failure, recognising deadlines.
func providerError(provider string, err error) *ProviderError {
	kind := KindProvider
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		kind = KindTimeout
	}
	return &ProviderError{Provider: provider, Kind: kind, Err: err}
}

// statusError records a non-200 reply.
func statusError(provider string, status int, body []byte) *ProviderError {
	const maxBody = 512
	if len(body) > maxBody {
		body = body[:maxBody]
	}
	return &ProviderError{
		Provider:   provider,
		StatusCode: status,
		Body:       string(body),
		Err:        fmt.Errorf("unexpected status %d", status),
	}
}
