package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/sevos/internal/api"
	"github.com/Veraticus/sevos/internal/common"
	"github.com/Veraticus/sevos/internal/config"
	"github.com/Veraticus/sevos/internal/engine"
	"github.com/Veraticus/sevos/internal/llm"
	"github.com/Veraticus/sevos/internal/repository"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API until interrupted.

The completion provider is chosen by llm.provider (openai or anthropic).
Without an API key every task answers from canned stub replies.`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", ":3001", "listen address")
	cmd.Flags().String("provider", "openai", "completion provider (openai, anthropic)")
	cmd.Flags().String("model", "", "model name (default: provider default)")
	cmd.Flags().Int("rate-limit", 0, "requests per client IP per minute (0 disables)")

	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("llm.provider", cmd.Flags().Lookup("provider"))
	_ = viper.BindPFlag("llm.model", cmd.Flags().Lookup("model"))
	_ = viper.BindPFlag("server.rate_limit", cmd.Flags().Lookup("rate-limit"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return common.NewUserError("configuration is invalid", err)
	}

	logger := slog.Default()

	client, err := llm.NewClient(cfg.LLM, logger)
	if err != nil {
		return fmt.Errorf("failed to create completion client: %w", err)
	}
	defer client.Close()

	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(api.Options{
		Assistant:   engine.NewWithConfig(client, logger, engine.Config{Model: cfg.LLM.Model}),
		Store:       repository.NewMemory(repository.WithSeed()),
		Logger:      logger,
		Provider:    client.Provider(),
		CORSOrigins: cfg.Server.CORSOrigins,
		RateLimit:   cfg.Server.RateLimit,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  2 * cfg.Server.ReadTimeout,
	}

	return serve(cmd.Context(), srv, cfg, client.Provider())
}

// serve runs srv until ctx is canceled, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, cfg config.Config, provider string) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server starting",
			"addr", srv.Addr,
			"mode", cfg.Mode(),
			"provider", provider)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	slog.Info("Server exited gracefully")
	return nil
}
