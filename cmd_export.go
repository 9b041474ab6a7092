package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wizard-spelldash/app"
	"wizard-spelldash/dashboard"
	"wizard-spelldash/service"
)

var exportFlags struct {
	format string
	size   string
	search string
	level  string
	out    string
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Load the spells once and write the dashboard as PDF or PNG",
	Example: `  spelldash export --format pdf --out spells.pdf
  spelldash export --format png --size thumb --level mid --out mid.jpg`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFlags.format, "format", service.ExportFormatPDF, "Output format: pdf or png")
	exportCmd.Flags().StringVar(&exportFlags.size, "size", service.ImageSizeFull, "PNG size: full, medium or thumb")
	exportCmd.Flags().StringVar(&exportFlags.search, "q", "", "Search text applied before export")
	exportCmd.Flags().StringVar(&exportFlags.level, "level", "", "Level band: all, cantrip, low, mid, high")
	exportCmd.Flags().StringVarP(&exportFlags.out, "out", "o", "", "Output file (default: the export's file name)")
}

func runExport(cmd *cobra.Command, args []string) error {
	req, err := service.ExportRequest{Format: exportFlags.format, Size: exportFlags.size}.Normalize()
	if err != nil {
		return err
	}
	band, err := dashboard.ParseBand(exportFlags.level)
	if err != nil {
		return err
	}

	dashboardService, err := service.NewDashboardService(logger)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	result := app.NewLoader(cfg, logger).Load(ctx)
	if result.Failed() {
		return fmt.Errorf("spell load failed: %w", result.Err)
	}

	state := dashboard.NewState().
		WithLoadResult(result).
		WithSearch(exportFlags.search).
		WithBand(band)

	htmlContent, err := dashboardService.RenderDashboardHTML(state.Data(cfg.TargetClass), true)
	if err != nil {
		return err
	}

	exported, err := service.ExportDashboard(ctx, service.NewExportService(cfg.ChromePath, logger), htmlContent, req, logger)
	if err != nil {
		return err
	}

	out := exportFlags.out
	if out == "" {
		out = exported.Filename
	}
	if err := os.WriteFile(out, exported.Body, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	abs, _ := filepath.Abs(out)
	logger.Info("✅ Export written",
		zap.String("path", abs),
		zap.Int("spells", state.Stats().Visible),
		zap.Int("bytes", len(exported.Body)),
	)
	return nil
}
