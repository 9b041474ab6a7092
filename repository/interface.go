package repository

import (
	"context"

	"wizard-spelldash/models"
)

// SpellRepositoryInterface defines the contract for reading spells from the reference API
type SpellRepositoryInterface interface {
	// ListSpells returns every catalog entry of the list endpoint
	ListSpells(ctx context.Context) ([]models.CatalogEntry, error)
	// GetSpell fetches the full detail record behind a relative locator (e.g., "/api/spells/fireball")
	GetSpell(ctx context.Context, url string) (*models.SpellDetail, error)
}
