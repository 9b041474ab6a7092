package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"wizard-spelldash/dashboard"
	"wizard-spelldash/service"
)

// DashboardController handles HTTP requests for the dashboard pages and the JSON view
type DashboardController struct {
	store            *dashboard.Store
	dashboardService *service.DashboardService
	targetClass      string
	logger           *zap.Logger
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(
	store *dashboard.Store,
	dashboardService *service.DashboardService,
	targetClass string,
	logger *zap.Logger,
) *DashboardController {
	return &DashboardController{
		store:            store,
		dashboardService: dashboardService,
		targetClass:      targetClass,
		logger:           logger,
	}
}

// viewState applies the q and level query parameters to the published state.
// An unknown level yields BandAll together with the parse error.
func viewState(r *http.Request, store *dashboard.Store) (dashboard.State, error) {
	query := r.URL.Query()
	band, err := dashboard.ParseBand(query.Get("level"))
	state := store.Snapshot().
		WithSearch(query.Get("q")).
		WithBand(band)
	return state, err
}

// Dashboard handles GET /?q=fire&level=mid
func (c *DashboardController) Dashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	c.renderPage(w, r, false)
}

// Render handles GET /dashboard/render?q=fire&level=mid
// Returns the dashboard without sidebar and controls (used for exports and printing)
func (c *DashboardController) Render(w http.ResponseWriter, r *http.Request) {
	c.renderPage(w, r, true)
}

func (c *DashboardController) renderPage(w http.ResponseWriter, r *http.Request, printView bool) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// The page falls back to all levels on an unknown selector value
	state, err := viewState(r, c.store)
	if err != nil {
		c.logger.Warn("⚠️  Dashboard: ignoring invalid level", zap.String("level", r.URL.Query().Get("level")))
	}

	htmlContent, err := c.dashboardService.RenderDashboardHTML(state.Data(c.targetClass), printView)
	if err != nil {
		c.logger.Error("❌ Dashboard: error rendering HTML", zap.Error(err))
		http.Error(w, fmt.Sprintf("Failed to render dashboard: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(htmlContent)); err != nil {
		c.logger.Error("❌ Dashboard: error writing HTML response", zap.Error(err))
	}
}

// Spells handles GET /api/spells?q=fire&level=mid
// Returns the full dashboard view (stats, rows, selector) as JSON
func (c *DashboardController) Spells(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	state, err := viewState(r, c.store)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(state.Data(c.targetClass)); err != nil {
		c.logger.Error("❌ Spells: error encoding JSON response", zap.Error(err))
	}
}
