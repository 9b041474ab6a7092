package service

import (
	"context"

	"wizard-spelldash/models"
)

// SpellLoaderInterface defines the contract for the one-shot load cycle
type SpellLoaderInterface interface {
	Load(ctx context.Context) models.LoadResult
}

// Ensure SpellLoader implements SpellLoaderInterface
var _ SpellLoaderInterface = (*SpellLoader)(nil)
