package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wizard-spelldash/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web dashboard",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize application
	server, err := app.Initialize(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("🔮 Dashboard available", zap.String("url", cfg.BaseURL+"/"))
	logger.Info("📤 Export endpoint", zap.String("url", cfg.BaseURL+"/dashboard/export?format=pdf"))

	return server.Run(ctx)
}
