package service

import (
	"context"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"wizard-spelldash/models"
	"wizard-spelldash/repository"
)

// LoaderOptions configures the load pipeline
type LoaderOptions struct {
	TargetClass string // Class membership to keep (e.g., "Wizard")
	SampleSize  int    // Catalog entries sampled before detail fetches
	MaxSpells   int    // Matching records kept after filtering
}

// DefaultLoaderOptions returns the options used by the dashboard
func DefaultLoaderOptions() LoaderOptions {
	return LoaderOptions{
		TargetClass: "Wizard",
		SampleSize:  50,
		MaxSpells:   10,
	}
}

// SpellLoader runs the fetch, sample, fetch-details, filter pipeline
type SpellLoader struct {
	repository repository.SpellRepositoryInterface
	options    LoaderOptions
	logger     *zap.Logger
	shuffle    func(n int, swap func(i, j int))
}

// NewSpellLoader creates a new SpellLoader
func NewSpellLoader(repo repository.SpellRepositoryInterface, opts LoaderOptions, logger *zap.Logger) *SpellLoader {
	return &SpellLoader{
		repository: repo,
		options:    opts,
		logger:     logger,
		shuffle:    rand.Shuffle,
	}
}

// Load runs one load cycle. It never returns an error to the caller:
// any failure is logged once and reported through models.LoadResult.Failed.
func (l *SpellLoader) Load(ctx context.Context) models.LoadResult {
	spells, err := l.fetch(ctx)
	if err != nil {
		l.logger.Error("❌ Error fetching spell data", zap.Error(err))
		return models.LoadResult{Spells: []models.SpellDetail{}, Err: err}
	}

	l.logger.Info("✅ Spell load finished",
		zap.String("class", l.options.TargetClass),
		zap.Int("spells", len(spells)),
	)
	return models.LoadResult{Spells: spells}
}

func (l *SpellLoader) fetch(ctx context.Context) ([]models.SpellDetail, error) {
	entries, err := l.repository.ListSpells(ctx)
	if err != nil {
		return nil, err
	}

	sampled := l.sample(entries)
	l.logger.Debug("🎲 Catalog sampled",
		zap.Int("catalog", len(entries)),
		zap.Int("sampled", len(sampled)),
	)

	details, err := l.fetchDetails(ctx, sampled)
	if err != nil {
		return nil, err
	}

	matching := make([]models.SpellDetail, 0, l.options.MaxSpells)
	for _, d := range details {
		if !d.HasClass(l.options.TargetClass) {
			continue
		}
		matching = append(matching, d)
		if len(matching) == l.options.MaxSpells {
			break
		}
	}
	return matching, nil
}

// sample draws up to SampleSize entries without replacement.
// The input slice is left untouched.
func (l *SpellLoader) sample(entries []models.CatalogEntry) []models.CatalogEntry {
	shuffled := make([]models.CatalogEntry, len(entries))
	copy(shuffled, entries)
	l.shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if len(shuffled) > l.options.SampleSize {
		shuffled = shuffled[:l.options.SampleSize]
	}
	return shuffled
}

// fetchDetails issues every detail request concurrently and waits for all of them.
// One failure fails the whole batch. Results keep the order of entries.
func (l *SpellLoader) fetchDetails(ctx context.Context, entries []models.CatalogEntry) ([]models.SpellDetail, error) {
	details := make([]models.SpellDetail, len(entries))

	var g errgroup.Group
	for i, entry := range entries {
		g.Go(func() error {
			detail, err := l.repository.GetSpell(ctx, entry.URL)
			if err != nil {
				return err
			}
			if detail == nil {
				return fmt.Errorf("failed to get spell %s: empty record", entry.URL)
			}
			details[i] = *detail
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return details, nil
}
