package router

import (
	"net/http"

	"wizard-spelldash/app/controller"
)

type Controllers struct {
	Dashboard *controller.DashboardController
	Export    *controller.ExportController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(mux *http.ServeMux, controllers *Controllers) {
	// Ping endpoint
	mux.HandleFunc("/ping", pingHandler)

	// Dashboard page (also catches unknown paths and answers 404)
	mux.HandleFunc("/", controllers.Dashboard.Dashboard)

	// Print view used by exports
	mux.HandleFunc("/dashboard/render", controllers.Dashboard.Render)

	// PDF / PNG export of the filtered view
	mux.HandleFunc("/dashboard/export", controllers.Export.Export)

	// JSON view of the filtered dashboard
	mux.HandleFunc("/api/spells", controllers.Dashboard.Spells)
}
