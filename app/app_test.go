package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"wizard-spelldash/config"
	"wizard-spelldash/models"
)

type gatedLoader struct {
	release chan struct{}
	result  models.LoadResult
}

func (l *gatedLoader) Load(ctx context.Context) models.LoadResult {
	<-l.release
	return l.result
}

type nopExporter struct{}

func (nopExporter) GeneratePDF(context.Context, string) ([]byte, error) { return []byte("pdf"), nil }
func (nopExporter) GeneratePNG(context.Context, string) ([]byte, error) { return []byte("png"), nil }

func testConfig() *config.Config {
	return &config.Config{Env: "test", Port: "0", TargetClass: "Wizard"}
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestServerLoadCycle(t *testing.T) {
	defer goleak.VerifyNone(t)

	loader := &gatedLoader{
		release: make(chan struct{}),
		result:  models.LoadResult{Spells: []models.SpellDetail{{Index: "shield", Name: "Shield", Level: 1}}},
	}
	srv, err := newServer(testConfig(), zaptest.NewLogger(t), loader, nopExporter{})
	require.NoError(t, err)

	srv.StartLoading(context.Background())

	rec := get(t, srv.Handler(), "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Loading wizard spells...")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, http.StatusConflict, get(t, srv.Handler(), "/dashboard/export").Code)

	close(loader.release)
	<-srv.Store().Loaded()

	rec = get(t, srv.Handler(), "/")
	assert.Contains(t, rec.Body.String(), "Shield")
	assert.Equal(t, http.StatusOK, get(t, srv.Handler(), "/dashboard/export").Code)
}

func TestServerFailedLoad(t *testing.T) {
	defer goleak.VerifyNone(t)

	loader := &gatedLoader{
		release: make(chan struct{}),
		result:  models.LoadResult{Spells: []models.SpellDetail{}, Err: errors.New("catalog unavailable")},
	}
	close(loader.release)

	srv, err := newServer(testConfig(), zaptest.NewLogger(t), loader, nopExporter{})
	require.NoError(t, err)
	srv.StartLoading(context.Background())
	<-srv.Store().Loaded()

	rec := get(t, srv.Handler(), "/")
	body := rec.Body.String()
	assert.NotContains(t, body, "Loading wizard spells...")
	assert.Contains(t, body, `<p id="stat-total">0</p>`)
	assert.Contains(t, body, `<p id="stat-average">0</p>`)
}
