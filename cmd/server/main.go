package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"kamau.dev/portfolio/common/id"
	"kamau.dev/portfolio/common/llm"
	"kamau.dev/portfolio/common/logger"
	"kamau.dev/portfolio/common/otel"
	"kamau.dev/portfolio/core/config"
	"kamau.dev/portfolio/internal/github"
	"kamau.dev/portfolio/internal/http/middleware"
	httprouter "kamau.dev/portfolio/internal/http/router"
	"kamau.dev/portfolio/internal/metrics"
	"kamau.dev/portfolio/internal/service"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeServer)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		// Can't use slog yet: OTel failed before logger setup
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "portfolio server starting", "env", cfg.Env, "service", cfg.OTel.ServiceName, "completion", cfg.Completion)
	if err := id.Init(1); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	llmClient, err := newLLMClient(cfg)
	if err != nil {
		slog.ErrorContext(ctx, "completion client unavailable", "error", err)
		os.Exit(1)
	}
	if llmClient == nil {
		slog.WarnContext(ctx, "GROQ_API_KEY not set; /api/ask will answer with a configuration error")
	}

	m := metrics.New()

	services := service.NewServices(service.ServicesConfig{
		LLMClient: llmClient,
		GitHubClient: github.New(github.Config{
			BaseURL: cfg.GitHub.BaseURL,
			Token:   cfg.GitHub.Token,
		}),
		GitHubUsername: cfg.GitHub.Username,
		Metrics:        m,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services, m)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

// newLLMClient returns a nil client in development when no credential is configured, so
// the rest of the site keeps working. Production refuses to start without one.
func newLLMClient(cfg config.Config) (llm.Client, error) {
	if !cfg.Completion.Enabled() {
		if cfg.IsProduction() {
			return nil, config.ErrMissingCredential
		}
		return nil, nil
	}

	client, err := llm.New(llm.Config{
		APIKey:  cfg.Completion.APIKey,
		BaseURL: cfg.Completion.BaseURL,
		Model:   cfg.Completion.Model,
	})
	if err != nil {
		return nil, errors.Join(config.ErrMissingCredential, err)
	}
	return client, nil
}

func setupRouter(cfg config.Config, services *service.Services, m *metrics.Metrics) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → RequestID tags the
	// context → Logger logs with trace context and request id
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics(m))

	httprouter.SetupRoutes(router, services, httprouter.RouterConfig{
		TraceHeaderName: cfg.TraceHeaderName,
		Metrics:         m,
	})

	return router
}

const banner = `
██████╗  ██████╗ ██████╗ ████████╗███████╗ ██████╗ ██╗     ██╗ ██████╗
██╔══██╗██╔═══██╗██╔══██╗╚══██╔══╝██╔════╝██╔═══██╗██║     ██║██╔═══██╗
██████╔╝██║   ██║██████╔╝   ██║   █████╗  ██║   ██║██║     ██║██║   ██║
██╔═══╝ ██║   ██║██╔══██╗   ██║   ██╔══╝  ██║   ██║██║     ██║██║   ██║
██║     ╚██████╔╝██║  ██║   ██║   ██║     ╚██████╔╝███████╗██║╚██████╔╝
╚═╝      ╚═════╝ ╚═╝  ╚═╝   ╚═╝   ╚═╝      ╚═════╝ ╚══════╝╚═╝ ╚═════╝
`
