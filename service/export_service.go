package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// exportTimeout bounds one headless Chrome session
const exportTimeout = 30 * time.Second

// ExportService turns rendered dashboard HTML into PDF or PNG through headless Chrome
type ExportService struct {
	chromePath string
	logger     *zap.Logger
}

// NewExportService creates a new ExportService.
// chromePath may be empty, in which case common install paths are probed.
func NewExportService(chromePath string, logger *zap.Logger) *ExportService {
	if chromePath == "" {
		chromePath = detectChromePath()
	}
	return &ExportService{chromePath: chromePath, logger: logger}
}

// detectChromePath detects the path to Chrome/Chromium executable
// Checks CHROME_PATH env var first, then common installation paths
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// newBrowser starts a headless Chrome bound to ctx
func (s *ExportService) newBrowser(ctx context.Context) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if s.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(s.chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	return browserCtx, func() {
		browserCancel()
		allocCancel()
	}
}

// loadHTML replaces the blank page's document with htmlContent
func loadHTML(htmlContent string) chromedp.Tasks {
	return chromedp.Tasks{
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.WaitReady("body"),
	}
}

// GeneratePDF prints the dashboard to an A4 landscape PDF
func (s *ExportService) GeneratePDF(ctx context.Context, htmlContent string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, exportTimeout)
	defer cancel()

	browserCtx, browserCancel := s.newBrowser(ctx)
	defer browserCancel()

	var pdfBuf []byte
	err := chromedp.Run(browserCtx,
		loadHTML(htmlContent),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4 landscape: 297mm x 210mm = 11.69" x 8.27"
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithLandscape(true).
				WithPaperWidth(11.69).
				WithPaperHeight(8.27).
				WithMarginTop(0.4).
				WithMarginBottom(0.4).
				WithMarginLeft(0.4).
				WithMarginRight(0.4).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	s.logger.Info("📄 PDF generated", zap.Int("bytes", len(pdfBuf)))
	return pdfBuf, nil
}

// GeneratePNG captures a full-page screenshot of the dashboard
func (s *ExportService) GeneratePNG(ctx context.Context, htmlContent string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, exportTimeout)
	defer cancel()

	browserCtx, browserCancel := s.newBrowser(ctx)
	defer browserCancel()

	var buf []byte
	err := chromedp.Run(browserCtx,
		chromedp.EmulateViewport(1400, 900),
		loadHTML(htmlContent),
		// quality 100 keeps PNG encoding
		chromedp.FullScreenshot(&buf, 100),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to capture screenshot: %w", err)
	}
	if len(buf) == 0 {
		return nil, fmt.Errorf("failed to capture screenshot: empty image")
	}

	s.logger.Info("📸 PNG generated", zap.Int("bytes", len(buf)))
	return buf, nil
}
