package service

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"wizard-spelldash/dashboard"
	"wizard-spelldash/models"
)

func renderState(t *testing.T, s dashboard.State, printView bool) string {
	t.Helper()
	svc, err := NewDashboardService(zaptest.NewLogger(t))
	require.NoError(t, err)
	html, err := svc.RenderDashboardHTML(s.Data("Wizard"), printView)
	require.NoError(t, err)
	return html
}

func TestRenderDashboardHTML(t *testing.T) {
	s := dashboard.NewState().WithLoadResult(models.LoadResult{Spells: []models.SpellDetail{
		{
			Index: "fireball", Name: "Fireball", Level: 3,
			School:      &models.APIReference{Name: "Evocation"},
			CastingTime: "1 action", Range: "150 feet", Duration: "Instantaneous",
			Components: []string{"V", "S", "M"},
		},
		{Index: "frost-ray", Name: "Frost Ray", Level: 3, AttackType: "ranged"},
	}}).WithSearch("fireball").WithBand(dashboard.BandMid)

	html := renderState(t, s, false)

	assert.Contains(t, html, "<h2>Wizard SpellDash</h2>")
	assert.Contains(t, html, `<a href="#">About</a>`)
	assert.Contains(t, html, `<p id="stat-total">2</p>`)
	assert.Contains(t, html, `<p id="stat-visible">1</p>`)
	assert.Contains(t, html, `<p id="stat-average">3.0</p>`)
	assert.Contains(t, html, `placeholder="Search spells..." value="fireball"`)
	assert.Contains(t, html, `<option value="mid" selected>Mid (3–5)</option>`)
	assert.Contains(t, html, "Fireball")
	assert.Contains(t, html, "V, S, M")
	assert.Contains(t, html, "magic-swirl")
	assert.NotContains(t, html, "Frost Ray")
	assert.Equal(t, 11, strings.Count(html, "<th>"))
}

func TestRenderDashboardHTMLPrintView(t *testing.T) {
	s := dashboard.NewState().WithLoadResult(models.LoadResult{Spells: []models.SpellDetail{{Name: "Shield", Level: 1}}})

	html := renderState(t, s, true)

	assert.Contains(t, html, `class="print"`)
	assert.NotContains(t, html, "<form")
	assert.NotContains(t, html, "sidebar glass")
	assert.Contains(t, html, "Shield")
}

func TestRenderDashboardHTMLLoading(t *testing.T) {
	html := renderState(t, dashboard.NewState(), false)

	assert.Contains(t, html, "Loading wizard spells...")
	assert.Contains(t, html, `http-equiv="refresh"`)
	assert.NotContains(t, html, "<table>")
}

func TestRenderDashboardHTMLEscapesSearch(t *testing.T) {
	s := dashboard.NewState().WithLoadResult(models.LoadResult{Spells: []models.SpellDetail{}}).WithSearch(`"><script>`)

	html := renderState(t, s, false)

	assert.NotContains(t, html, "<script>")
}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestOptimizeImage(t *testing.T) {
	src := testPNG(t, 1400, 900)

	tests := []struct {
		size    string
		maxSide int
	}{
		{ImageSizeThumb, 300},
		{ImageSizeMedium, 800},
	}
	for _, tt := range tests {
		t.Run(tt.size, func(t *testing.T) {
			out, err := OptimizeImage(src, tt.size, zaptest.NewLogger(t))
			require.NoError(t, err)

			img, err := jpeg.Decode(bytes.NewReader(out))
			require.NoError(t, err)
			assert.Equal(t, tt.maxSide, img.Bounds().Dx())
			assert.Less(t, img.Bounds().Dy(), tt.maxSide)
		})
	}
}

func TestOptimizeImageKeepsSmallImages(t *testing.T) {
	out, err := OptimizeImage(testPNG(t, 120, 80), ImageSizeThumb, zaptest.NewLogger(t))
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 120, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())
}

func TestOptimizeImageErrors(t *testing.T) {
	_, err := OptimizeImage([]byte("not an image"), ImageSizeThumb, zaptest.NewLogger(t))
	assert.Error(t, err)

	_, err = OptimizeImage(testPNG(t, 10, 10), "huge", zaptest.NewLogger(t))
	assert.Error(t, err)

	assert.True(t, ValidImageSize(ImageSizeFull))
	assert.False(t, ValidImageSize("huge"))
}
