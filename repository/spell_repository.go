package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"wizard-spelldash/models"
)

var (
	// ErrUnexpectedStatus is returned when the API answers with a non-2xx status
	ErrUnexpectedStatus = errors.New("unexpected status from spell API")
	// ErrMalformedResponse is returned when a body does not decode into the expected shape
	ErrMalformedResponse = errors.New("malformed response from spell API")
)

// listPath is the list endpoint, relative to the API host
const listPath = "/api/spells"

// SpellAPIRepository reads spells over HTTP from the D&D 5e reference API
type SpellAPIRepository struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewSpellAPIRepository creates a new SpellAPIRepository
// baseURL is the API host without trailing slash (e.g., "https://www.dnd5eapi.co")
func NewSpellAPIRepository(baseURL string, timeout time.Duration, logger *zap.Logger) *SpellAPIRepository {
	return &SpellAPIRepository{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Ensure SpellAPIRepository implements SpellRepositoryInterface
var _ SpellRepositoryInterface = (*SpellAPIRepository)(nil)

// ListSpells retrieves the full spell catalog
func (r *SpellAPIRepository) ListSpells(ctx context.Context) ([]models.CatalogEntry, error) {
	var body models.CatalogListResponse
	if err := r.getJSON(ctx, listPath, &body); err != nil {
		return nil, fmt.Errorf("failed to list spells: %w", err)
	}
	if body.Results == nil {
		return nil, fmt.Errorf("failed to list spells: %w: missing results", ErrMalformedResponse)
	}

	r.logger.Debug("📦 Spell catalog fetched", zap.Int("count", len(body.Results)))
	return body.Results, nil
}

// GetSpell retrieves the detail record for one catalog entry
func (r *SpellAPIRepository) GetSpell(ctx context.Context, url string) (*models.SpellDetail, error) {
	var spell models.SpellDetail
	if err := r.getJSON(ctx, url, &spell); err != nil {
		return nil, fmt.Errorf("failed to get spell %s: %w", url, err)
	}
	if spell.Classes == nil {
		return nil, fmt.Errorf("failed to get spell %s: %w: missing classes", url, ErrMalformedResponse)
	}
	return &spell, nil
}

// getJSON issues a GET against baseURL+path and decodes the JSON body into out
func (r *SpellAPIRepository) getJSON(ctx context.Context, path string, out interface{}) error {
	// If path is already a full URL, use it; otherwise prepend baseURL
	fullURL := path
	if strings.HasPrefix(path, "/") {
		fullURL = r.baseURL + path
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: %s returned %d", ErrUnexpectedStatus, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
