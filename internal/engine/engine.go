// Package engine runs the assistant pipeline: validate the request, build
// the prompt, call the completion client and coerce the reply.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/sevos/internal/coerce"
	"github.com/Veraticus/sevos/internal/common"
	"github.com/Veraticus/sevos/internal/llm"
	"github.com/Veraticus/sevos/internal/model"
	"github.com/Veraticus/sevos/internal/prompt"
)

// Engine is stateless; every call is independent and safe to run
// concurrently.
type Engine struct {
	client llm.Client
	logger *slog.Logger
	model  string
}

// Config holds configuration options for the engine.
type Config struct {
	// Model overrides the provider's default model for every task.
	Model string
}

// New creates an engine that uses the provider's default model.
func New(client llm.Client, logger *slog.Logger) *Engine {
	return NewWithConfig(client, logger, Config{})
}

// NewWithConfig creates an engine with custom configuration.
func NewWithConfig(client llm.Client, logger *slog.Logger, config Config) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		client: client,
		logger: logger,
		model:  config.Model,
	}
}

type request interface {
	Normalize()
	Validate() error
}

// Classify files a communication into a bucket with an intent and priority.
func (e *Engine) Classify(ctx context.Context, req model.ClassifyRequest) (model.ClassificationResult, error) {
	return run(ctx, e, model.TaskClassify, &req, coerce.Classification)
}

// DraftBid drafts a quote response to a customer's rate request.
func (e *Engine) DraftBid(ctx context.Context, req model.BidDraftRequest) (model.BidDraftResult, error) {
	return run(ctx, e, model.TaskDraftBid, &req, coerce.BidDraft)
}

// ExtractInvoice pulls structured fields out of an invoice document.
func (e *Engine) ExtractInvoice(ctx context.Context, req model.ExtractInvoiceRequest) (model.ExtractedInvoice, error) {
	return run(ctx, e, model.TaskExtractInvoice, &req, func() coerce.Schema[model.ExtractedInvoice] {
		return coerce.Invoice(req.Content)
	})
}

// SuggestJournalEntry proposes the double entry that records an invoice.
// Totals and the balanced flag are computed from the suggested lines.
func (e *Engine) SuggestJournalEntry(ctx context.Context, req model.JournalEntryRequest) (model.JournalEntryResult, error) {
	return run(ctx, e, model.TaskJournalEntry, &req, func() coerce.Schema[model.JournalEntryResult] {
		return coerce.JournalEntry(req)
	})
}

// Summarize condenses an email, call or document.
func (e *Engine) Summarize(ctx context.Context, req model.SummarizeRequest) (model.SummaryResult, error) {
	return run(ctx, e, model.TaskSummarize, &req, coerce.Summary)
}

// Chat answers a free-form question. The reply is plain text; an empty
// reply is a coercion failure.
func (e *Engine) Chat(ctx context.Context, req model.ChatRequest) (model.ChatReply, error) {
	raw, err := e.complete(ctx, model.TaskChat, &req)
	if err != nil {
		return model.ChatReply{}, err
	}

	reply := strings.TrimSpace(raw)
	if reply == "" {
		return model.ChatReply{}, &coerce.CoercionError{
			Schema:     "chat",
			Outcome:    coerce.Recovered,
			Violations: []common.Violation{{Field: "response", Constraint: "required"}},
		}
	}
	return model.ChatReply{Response: reply}, nil
}

// run is the shared pipeline. schema is called after the request is
// normalized so schemas built from the request see the cleaned values.
func run[T any, R request](ctx context.Context, e *Engine, task model.Task, req R, schema func() coerce.Schema[T]) (T, error) {
	var zero T

	raw, err := e.complete(ctx, task, req)
	if err != nil {
		return zero, err
	}

	logger := common.LoggerFrom(ctx, e.logger)
	result, outcome, err := coerce.Coerce(raw, schema())
	if err != nil {
		logger.Warn("Completion did not coerce",
			"task", task,
			"outcome", outcome,
			"error", err)
		logger.Debug("Rejected completion", "task", task, "raw", raw)
		return zero, fmt.Errorf("%s: %w", task, err)
	}

	logger.Info("Task completed", "task", task, "outcome", outcome)
	return result, nil
}

// complete validates req, renders its prompt and returns the raw reply.
func (e *Engine) complete(ctx context.Context, task model.Task, req request) (string, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return "", err
	}

	messages, err := prompt.Build(task, req)
	if err != nil {
		return "", fmt.Errorf("failed to build %s prompt: %w", task, err)
	}

	opts := prompt.OptionsFor(task)
	if e.model != "" {
		opts.Model = e.model
	}

	logger := common.LoggerFrom(ctx, e.logger)
	start := time.Now()
	raw, err := e.client.Complete(ctx, messages.Chat(), opts)
	if err != nil {
		return "", fmt.Errorf("%s completion: %w", task, err)
	}
	logger.Debug("Completion received",
		"task", task,
		"chars", len(raw),
		"latency", time.Since(start))
	return raw, nil
}
