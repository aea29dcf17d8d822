package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/yooztech/mcp-api-request/internal/apireq/config"
	"github.com/yooztech/mcp-api-request/internal/apireq/service"
	"github.com/yooztech/mcp-api-request/internal/common/logtrace"
)

func newServeCmd() *cobra.Command {
	var httpMode bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server",
		Long:  "Run the MCP server over stdio (default) or HTTP (--http).",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(httpMode)
		},
	}
	cmd.Flags().BoolVar(&httpMode, "http", false, "Serve MCP over HTTP instead of stdio")
	return cmd
}

func runServe(httpMode bool) error {
	config.LoadDotEnv()
	if configFile != "" {
		if err := config.LoadConfig(configFile); err != nil {
			return fmt.Errorf("loading config file: %w", err)
		}
	}
	cfg := config.Config()
	logtrace.InitLogger(cfg.LogLevel)

	svc := service.New(cfg)
	if !httpMode {
		log.Info().Msg("serving MCP over stdio")
		return svc.ServeStdio()
	}
	return serveHTTP(svc, cfg)
}

func serveHTTP(svc *service.Service, cfg *config.ConfigParam) error {
	slog := log.With().Str("state", "init").Logger()

	h := svc.NewHTTPServer()
	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           h.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info().Str("addr", cfg.HTTPAddr()).Msg("mcp server started")
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		slog.Info().Str("signal", sig.String()).Msg("shutdown signal received")

		// Give outstanding requests 5 seconds to complete.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error().Err(err).Msg("could not stop server gracefully")
			if err := srv.Close(); err != nil {
				slog.Error().Err(err).Msg("could not stop server")
			}
		}
	}

	slog.Info().Msg("server stopped")
	return nil
}
