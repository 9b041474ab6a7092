package service

import (
	"bytes"
	"context"
	"errors"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type recordingExporter struct {
	pdf, png []byte
	err      error
	called   []string
}

func (e *recordingExporter) GeneratePDF(context.Context, string) ([]byte, error) {
	e.called = append(e.called, "pdf")
	return e.pdf, e.err
}

func (e *recordingExporter) GeneratePNG(context.Context, string) ([]byte, error) {
	e.called = append(e.called, "png")
	return e.png, e.err
}

func TestExportRequestNormalize(t *testing.T) {
	req, err := ExportRequest{}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, ExportRequest{Format: ExportFormatPDF, Size: ImageSizeFull}, req)

	req, err = ExportRequest{Format: " PNG ", Size: "Thumb"}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, ExportRequest{Format: ExportFormatPNG, Size: ImageSizeThumb}, req)

	_, err = ExportRequest{Format: "gif"}.Normalize()
	assert.ErrorIs(t, err, ErrInvalidExport)

	_, err = ExportRequest{Format: "png", Size: "huge"}.Normalize()
	assert.ErrorIs(t, err, ErrInvalidExport)
}

func TestExportDashboard(t *testing.T) {
	logger := zaptest.NewLogger(t)
	exporter := &recordingExporter{pdf: []byte("%PDF"), png: testPNG(t, 1400, 900)}

	pdf, err := ExportDashboard(context.Background(), exporter, "<html></html>", ExportRequest{}, logger)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", pdf.ContentType)
	assert.Equal(t, "spelldash.pdf", pdf.Filename)

	full, err := ExportDashboard(context.Background(), exporter, "<html></html>", ExportRequest{Format: "png"}, logger)
	require.NoError(t, err)
	assert.Equal(t, "image/png", full.ContentType)
	assert.Equal(t, exporter.png, full.Body)

	medium, err := ExportDashboard(context.Background(), exporter, "<html></html>", ExportRequest{Format: "png", Size: "medium"}, logger)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", medium.ContentType)
	assert.Equal(t, "spelldash-medium.jpg", medium.Filename)
	img, err := jpeg.Decode(bytes.NewReader(medium.Body))
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())

	assert.Equal(t, []string{"pdf", "png", "png"}, exporter.called)
}

func TestExportDashboardErrors(t *testing.T) {
	logger := zaptest.NewLogger(t)

	exporter := &recordingExporter{}
	_, err := ExportDashboard(context.Background(), exporter, "", ExportRequest{Format: "svg"}, logger)
	assert.ErrorIs(t, err, ErrInvalidExport)
	assert.Empty(t, exporter.called)

	failing := &recordingExporter{err: errors.New("chrome crashed")}
	_, err = ExportDashboard(context.Background(), failing, "", ExportRequest{Format: "png", Size: "thumb"}, logger)
	assert.EqualError(t, err, "chrome crashed")
}
