package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/garrettladley/cryptopay/internal/config"
	"github.com/garrettladley/cryptopay/internal/version"
	"github.com/garrettladley/cryptopay/internal/xslog"
	"github.com/garrettladley/cryptopay/pkg/cryptopay"
	"github.com/garrettladley/cryptopay/pkg/webhook"
	"github.com/joho/godotenv"
)

const (
	keyPort = "port"
	keyPath = "path"

	shutdownTimeout = 30 * time.Second
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Read()
	if err != nil {
		slog.ErrorContext(ctx, "failed to read config", xslog.Error(err))
		os.Exit(1)
	}

	logger := xslog.NewLogger(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)

	if cfg.Env.IsProduction() && version.IsDevelopment(version.Get()) {
		logger.WarnContext(ctx, "running a development build in production", xslog.Version())
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", xslog.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	dispatcher := webhook.NewDispatcher(cfg.API.Token, webhook.WithLogger(logger))
	dispatcher.On(cryptopay.UpdateTypeInvoicePaid, logInvoicePaid)

	srv, err := newServer(cfg, dispatcher, logger)
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "starting webhook server",
			xslog.Version(),
			xslog.Framework(cfg.Server.Framework.String()),
			xslog.Network(cfg.API.Network.String()),
			slog.String(keyPort, cfg.Server.Port),
			slog.String(keyPath, cfg.Server.WebhookPath))
		errCh <- srv.ListenAndServe(":" + cfg.Server.Port)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-done:
	}
	logger.InfoContext(ctx, "shutdown signal received, initiating graceful shutdown")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.InfoContext(ctx, "server stopped")
	return nil
}

func logInvoicePaid(ctx context.Context, update *cryptopay.Update) error {
	invoice := update.Payload
	xslog.FromContext(ctx).InfoContext(ctx, "invoice paid",
		xslog.UpdateID(update.UpdateID),
		xslog.InvoiceID(invoice.InvoiceID),
		slog.String("amount", invoice.Amount),
		slog.String("paid_asset", string(invoice.PaidAsset)),
		slog.String("paid_amount", invoice.PaidAmount),
		slog.String("payload", invoice.Payload),
	)
	return nil
}
