// Package llm provides the chat-completion clients used by the assistant.
// It supports OpenAI and Anthropic, with a deterministic offline stub used
// whenever no API key is configured, an outbound rate limiter, and a
// per-call timeout.
package llm
