package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"wizard-spelldash/app/controller"
	"wizard-spelldash/app/middleware"
	"wizard-spelldash/app/router"
	"wizard-spelldash/config"
	"wizard-spelldash/dashboard"
	"wizard-spelldash/repository"
	"wizard-spelldash/service"
)

// Server is the wired web surface: the published dashboard store plus its HTTP handler
type Server struct {
	cfg     *config.Config
	logger  *zap.Logger
	loader  service.SpellLoaderInterface
	store   *dashboard.Store
	handler http.Handler
}

// NewLoader builds the spell loader from configuration.
// Shared by the web server and the terminal commands.
func NewLoader(cfg *config.Config, logger *zap.Logger) *service.SpellLoader {
	repo := repository.NewSpellAPIRepository(cfg.SpellAPIBaseURL, cfg.HTTPTimeout, logger)
	return service.NewSpellLoader(repo, service.LoaderOptions{
		TargetClass: cfg.TargetClass,
		SampleSize:  cfg.SampleSize,
		MaxSpells:   cfg.MaxSpells,
	}, logger)
}

// Initialize initializes the application
func Initialize(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	return newServer(cfg, logger, NewLoader(cfg, logger), service.NewExportService(cfg.ChromePath, logger))
}

func newServer(
	cfg *config.Config,
	logger *zap.Logger,
	loader service.SpellLoaderInterface,
	exporter service.ExportServiceInterface,
) (*Server, error) {
	dashboardService, err := service.NewDashboardService(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize dashboard service: %w", err)
	}

	store := dashboard.NewStore()

	// Create controllers
	controllers := &router.Controllers{
		Dashboard: controller.NewDashboardController(store, dashboardService, cfg.TargetClass, logger),
		Export:    controller.NewExportController(store, dashboardService, exporter, cfg.TargetClass, logger),
	}

	// Setup routes using standard http router
	mux := http.NewServeMux()
	router.SetupRoutes(mux, controllers)

	return &Server{
		cfg:     cfg,
		logger:  logger,
		loader:  loader,
		store:   store,
		handler: middleware.RequestLogging(logger, mux),
	}, nil
}

// Handler returns the HTTP handler with request logging applied
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Store returns the dashboard store fed by the load cycle
func (s *Server) Store() *dashboard.Store {
	return s.store
}

// StartLoading runs the single load cycle in the background and publishes its result
func (s *Server) StartLoading(ctx context.Context) {
	go func() {
		s.logger.Info("⏳ Loading spells", zap.String("class", s.cfg.TargetClass))
		s.store.Publish(s.loader.Load(ctx))
	}()
}

// Run starts the load cycle and serves HTTP until ctx is cancelled
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.StartLoading(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("🚀 Server starting", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed to start: %w", err)
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("🛑 Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
