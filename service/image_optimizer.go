package service

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

// Export image sizes
const (
	ImageSizeFull   = "full"
	ImageSizeMedium = "medium"
	ImageSizeThumb  = "thumb"
)

const (
	// Quality settings
	qualityThumb  = 60
	qualityMedium = 75
	// Size settings (max dimension)
	maxSizeThumb  = 300
	maxSizeMedium = 800
)

// ValidImageSize reports whether size is one of the export image sizes
func ValidImageSize(size string) bool {
	switch size {
	case ImageSizeFull, ImageSizeMedium, ImageSizeThumb:
		return true
	}
	return false
}

// OptimizeImage converts a dashboard screenshot to a resized JPEG
// imageData: raw image bytes (PNG, JPEG)
// size: "thumb" or "medium"
func OptimizeImage(imageData []byte, size string, logger *zap.Logger) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	var maxDim, quality int
	switch size {
	case ImageSizeThumb:
		maxDim = maxSizeThumb
		quality = qualityThumb
	case ImageSizeMedium:
		maxDim = maxSizeMedium
		quality = qualityMedium
	default:
		return nil, fmt.Errorf("unsupported image size %q", size)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	var resized image.Image = img
	if width > maxDim || height > maxDim {
		// imaging.Fit keeps the aspect ratio within maxDim x maxDim
		resized = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
		logger.Debug("🔄 Resizing image",
			zap.String("format", format),
			zap.Int("from_width", width),
			zap.Int("from_height", height),
			zap.Int("to_width", resized.Bounds().Dx()),
			zap.Int("to_height", resized.Bounds().Dy()),
		)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}

	logger.Info("✓ Image optimized", zap.String("size", size), zap.Int("quality", quality), zap.Int("bytes", buf.Len()))
	return buf.Bytes(), nil
}
