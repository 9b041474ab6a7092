package service

import "context"

// ExportServiceInterface defines the contract for dashboard export operations
type ExportServiceInterface interface {
	GeneratePDF(ctx context.Context, htmlContent string) ([]byte, error)
	GeneratePNG(ctx context.Context, htmlContent string) ([]byte, error)
}

// Ensure ExportService implements ExportServiceInterface
var _ ExportServiceInterface = (*ExportService)(nil)
