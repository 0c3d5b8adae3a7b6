package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bNTGeez/value-g/internal/api/handlers"
	"github.com/bNTGeez/value-g/internal/api/router"
	"github.com/bNTGeez/value-g/internal/api/web"
	"github.com/bNTGeez/value-g/internal/dashboard"
	"github.com/bNTGeez/value-g/internal/domain/quote"
	"github.com/bNTGeez/value-g/internal/infra/finnhub"
	"github.com/bNTGeez/value-g/internal/pkg/logger"
	"github.com/bNTGeez/value-g/internal/service/quotes"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var servePort string

// serveCmd 웹 대시보드 서버
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Web dashboard 서버 시작",
	Long: `Landing page, dashboard table, JSON API 를 제공하는 HTTP 서버를 시작합니다.
Ctrl+C로 종료할 수 있습니다.

Examples:
  go run ./cmd/valueg serve
  go run ./cmd/valueg serve --port 9000`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "listen port (default is $PORT or 8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	log.Info().
		Str("version", serviceVersion).
		Msg("🚀 Starting Value G dashboard...")

	symbols := quote.ParseSymbols(cfg.Dashboard.Symbols)
	for _, s := range symbols {
		if !quote.ValidateSymbol(s) {
			return fmt.Errorf("%w: %s in DASHBOARD_SYMBOLS", quote.ErrInvalidSymbol, s)
		}
	}
	if cfg.Finnhub.APIKey == "" {
		// 서버는 기동하고 대시보드에서 설정 오류를 보여준다
		log.Warn().Msg("⚠️ FINNHUB_API_KEY is empty")
	}

	client := finnhub.NewClient(finnhub.Config{
		APIKey:  cfg.Finnhub.APIKey,
		BaseURL: cfg.Finnhub.BaseURL,
	})
	fetcher := quotes.NewFetcher(client)

	table := dashboard.NewTable(fetcher, symbols)
	table.Mount(ctx)

	renderer, err := web.NewRenderer()
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}

	var accessLogger *zerolog.Logger
	if cfg.Logging.FileEnabled {
		l := logger.NewAccessLogger(cfg.Logging.FilePath, cfg.Logging.RotationSize, cfg.Logging.RetentionDays)
		accessLogger = &l
	}

	handler := router.NewRouter(&router.Config{
		DashboardHandler: handlers.NewDashboardHandler(ctx, table, renderer),
		QuotesHandler:    handlers.NewQuotesHandler(fetcher, symbols),
		HealthHandler:    handlers.NewHealthHandler(table, serviceVersion),
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AccessLogger:     accessLogger,
	})

	port := servePort
	if port == "" {
		port = cfg.Server.Port
	}
	addr := fmt.Sprintf(":%s", port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("address", addr).
			Strs("symbols", symbolStrings(symbols)).
			Msg("🎯 Dashboard listening")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("🛑 Shutdown signal received, stopping server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}

	log.Info().Msg("👋 Value G stopped")
	return nil
}

func symbolStrings(symbols []quote.Symbol) []string {
	out := make([]string, len(symbols))
	for i, s := range symbols {
		out[i] = s.String()
	}
	return out
}
