package service

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"go.uber.org/zap"

	"wizard-spelldash/dashboard"
	"wizard-spelldash/models"
	"wizard-spelldash/utils"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

// DashboardService renders the dashboard HTML
type DashboardService struct {
	tmpl   *template.Template
	logger *zap.Logger
}

// NewDashboardService parses the embedded dashboard template
func NewDashboardService(logger *zap.Logger) (*DashboardService, error) {
	tmpl, err := template.New("dashboard.html").
		Funcs(template.FuncMap{
			"iconClass": utils.MapIconToClass,
			"lower":     strings.ToLower,
		}).
		ParseFS(templateFS, "templates/dashboard.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}
	return &DashboardService{tmpl: tmpl, logger: logger}, nil
}

// RenderDashboardHTML renders the dashboard page.
// printView drops the sidebar and the controls, for exports.
func (s *DashboardService) RenderDashboardHTML(data models.DashboardData, printView bool) (string, error) {
	templateData := struct {
		models.DashboardData
		Columns []string
		Print   bool
	}{
		DashboardData: data,
		Columns:       dashboard.Columns,
		Print:         printView,
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, templateData); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	s.logger.Debug("🖼️  Dashboard rendered",
		zap.Bool("loading", data.Loading),
		zap.Int("rows", len(data.Rows)),
		zap.Bool("print", printView),
	)
	return buf.String(), nil
}
