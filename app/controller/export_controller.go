package controller

import (
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"wizard-spelldash/dashboard"
	"wizard-spelldash/service"
)

// ExportController handles HTTP requests for dashboard exports
type ExportController struct {
	store            *dashboard.Store
	dashboardService *service.DashboardService
	exportService    service.ExportServiceInterface
	targetClass      string
	logger           *zap.Logger
}

// NewExportController creates a new ExportController
func NewExportController(
	store *dashboard.Store,
	dashboardService *service.DashboardService,
	exportService service.ExportServiceInterface,
	targetClass string,
	logger *zap.Logger,
) *ExportController {
	return &ExportController{
		store:            store,
		dashboardService: dashboardService,
		exportService:    exportService,
		targetClass:      targetClass,
		logger:           logger,
	}
}

// Export handles GET /dashboard/export?format=pdf|png&size=full|medium|thumb&q=fire&level=mid
// Renders the print view of the current filter and converts it with headless Chrome
func (c *ExportController) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	req, err := service.ExportRequest{Format: query.Get("format"), Size: query.Get("size")}.Normalize()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	state, err := viewState(r, c.store)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if state.Loading() {
		http.Error(w, "Spells are still loading", http.StatusConflict)
		return
	}

	htmlContent, err := c.dashboardService.RenderDashboardHTML(state.Data(c.targetClass), true)
	if err != nil {
		c.logger.Error("❌ Export: error rendering HTML", zap.Error(err))
		http.Error(w, fmt.Sprintf("Failed to render dashboard: %v", err), http.StatusInternalServerError)
		return
	}

	c.logger.Info("📤 Export request received",
		zap.String("format", req.Format),
		zap.String("size", req.Size),
		zap.Int("rows", state.Stats().Visible),
	)

	result, err := service.ExportDashboard(r.Context(), c.exportService, htmlContent, req, c.logger)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrInvalidExport) {
			status = http.StatusBadRequest
		}
		c.logger.Error("❌ Export failed", zap.String("format", req.Format), zap.Error(err))
		http.Error(w, fmt.Sprintf("Failed to export dashboard: %v", err), status)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Body); err != nil {
		c.logger.Error("❌ Export: error writing response", zap.Error(err))
		return
	}

	c.logger.Info("✅ Export completed", zap.String("filename", result.Filename), zap.Int("bytes", len(result.Body)))
}
