package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Export formats
const (
	ExportFormatPDF = "pdf"
	ExportFormatPNG = "png"
)

// ErrInvalidExport is returned for an unknown export format or size
var ErrInvalidExport = errors.New("invalid export request")

// ExportRequest selects the output of ExportDashboard
type ExportRequest struct {
	Format string // pdf or png; empty means pdf
	Size   string // full, medium or thumb; only png is resized
}

// ExportResult is a finished export, ready to be served or written
type ExportResult struct {
	Body        []byte
	ContentType string
	Filename    string
}

// Normalize applies defaults and validates the request
func (r ExportRequest) Normalize() (ExportRequest, error) {
	r.Format = strings.ToLower(strings.TrimSpace(r.Format))
	r.Size = strings.ToLower(strings.TrimSpace(r.Size))
	if r.Format == "" {
		r.Format = ExportFormatPDF
	}
	if r.Size == "" {
		r.Size = ImageSizeFull
	}
	if r.Format != ExportFormatPDF && r.Format != ExportFormatPNG {
		return r, fmt.Errorf("%w: format %q, valid formats are pdf, png", ErrInvalidExport, r.Format)
	}
	if !ValidImageSize(r.Size) {
		return r, fmt.Errorf("%w: size %q, valid sizes are full, medium, thumb", ErrInvalidExport, r.Size)
	}
	return r, nil
}

// ExportDashboard converts rendered print-view HTML into the requested file.
// A png with a size other than full is downsized to JPEG.
func ExportDashboard(
	ctx context.Context,
	exporter ExportServiceInterface,
	htmlContent string,
	req ExportRequest,
	logger *zap.Logger,
) (*ExportResult, error) {
	req, err := req.Normalize()
	if err != nil {
		return nil, err
	}

	if req.Format == ExportFormatPDF {
		body, err := exporter.GeneratePDF(ctx, htmlContent)
		if err != nil {
			return nil, err
		}
		return &ExportResult{Body: body, ContentType: "application/pdf", Filename: "spelldash.pdf"}, nil
	}

	body, err := exporter.GeneratePNG(ctx, htmlContent)
	if err != nil {
		return nil, err
	}
	if req.Size == ImageSizeFull {
		return &ExportResult{Body: body, ContentType: "image/png", Filename: "spelldash.png"}, nil
	}

	optimized, err := OptimizeImage(body, req.Size, logger)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		Body:        optimized,
		ContentType: "image/jpeg",
		Filename:    "spelldash-" + req.Size + ".jpg",
	}, nil
}
