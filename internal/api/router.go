// Package api exposes the assistant and the demo records over HTTP.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Veraticus/sevos/internal/api/middleware"
	"github.com/Veraticus/sevos/internal/model"
	"github.com/Veraticus/sevos/internal/service"
)

// Assistant runs the language-model tasks.
type Assistant interface {
	Classify(ctx context.Context, req model.ClassifyRequest) (model.ClassificationResult, error)
	DraftBid(ctx context.Context, req model.BidDraftRequest) (model.BidDraftResult, error)
	ExtractInvoice(ctx context.Context, req model.ExtractInvoiceRequest) (model.ExtractedInvoice, error)
	SuggestJournalEntry(ctx context.Context, req model.JournalEntryRequest) (model.JournalEntryResult, error)
	Summarize(ctx context.Context, req model.SummarizeRequest) (model.SummaryResult, error)
	Chat(ctx context.Context, req model.ChatRequest) (model.ChatReply, error)
}

// Options configures the router.
type Options struct {
	Assistant Assistant
	Store     service.Store
	Logger    *slog.Logger

	// Provider names the completion backend reported by the health check;
	// "stub" means no API key is configured.
	Provider string

	CORSOrigins []string

	// RateLimit is the number of requests allowed per client IP per
	// minute. Zero disables the limit.
	RateLimit int
}

// NewRouter builds the gin engine with every route and middleware.
func NewRouter(opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(opts.CORSOrigins))
	if opts.RateLimit > 0 {
		router.Use(middleware.RateLimit(middleware.NewRateLimiter(opts.RateLimit, time.Minute), logger))
	}

	h := &handler{
		assistant: opts.Assistant,
		store:     opts.Store,
		logger:    logger,
		provider:  opts.Provider,
	}

	api := router.Group("/api")
	{
		api.GET("/health", h.health)

		api.POST("/classify", handle("Classification", h.assistant.Classify, logger))
		api.POST("/draft-bid", handle("Bid drafting", h.assistant.DraftBid, logger))
		api.POST("/extract-invoice", handle("Invoice extraction", h.assistant.ExtractInvoice, logger))
		api.POST("/journal-entry", handle("Journal entry generation", h.assistant.SuggestJournalEntry, logger))
		api.POST("/summarize", handle("Summarization", h.assistant.Summarize, logger))
		api.POST("/chat", handle("Chat", h.assistant.Chat, logger))

		api.GET("/leads", h.listLeads)
		api.POST("/leads", h.createLead)
		api.GET("/leads/summary", h.leadSummary)
		api.GET("/leads/:id", h.getLead)

		api.GET("/invoices", h.listInvoices)
		api.POST("/invoices", h.createInvoice)
		api.GET("/invoices/summary", h.invoiceSummary)
		api.GET("/invoices/:id", h.getInvoice)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Not found",
			"request_id": middleware.GetRequestID(c),
		})
	})

	return router
}

type handler struct {
	assistant Assistant
	store     service.Store
	logger    *slog.Logger
	provider  string
}

func (h *handler) health(c *gin.Context) {
	mode := "live"
	if h.provider == "stub" || h.provider == "" {
		mode = "stub"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"mode":      mode,
		"provider":  h.provider,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
