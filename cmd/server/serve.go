package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/linkhub/internal/logger"
	"github.com/example/linkhub/internal/routes"
	"github.com/example/linkhub/internal/services"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.cfg.ValidateAdmin(); err != nil {
		return err
	}

	telegram := services.NewTelegramService(a.cfg.TelegramBotToken, a.cfg.TelegramAdminChat).
		WithBaseURL(a.cfg.TelegramAPIURL)
	if !telegram.Enabled() {
		logger.Info("telegram notifications disabled")
	}

	clicks := services.NewClickRecorder(a.links, a.cfg.ClickQueueSize)
	defer clicks.Close()

	server := routes.NewApp(a.cfg, routes.Deps{
		Admin:  a.admin(telegram),
		Public: services.NewPublicService(a.links, a.socials, a.brand),
		Clicks: clicks,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("port", a.cfg.AppPort), zap.String("env", a.cfg.AppEnv))
		errCh <- server.Listen(":" + a.cfg.AppPort)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	if err := server.ShutdownWithTimeout(shutdownTimeout); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	return nil
}
