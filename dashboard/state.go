// Package dashboard holds the view state of the spell dashboard and every
// value derived from it. State is an immutable record: each transition
// returns a new State and derived values are recomputed on every call.
package dashboard

import (
	"math"
	"strings"

	"golang.org/x/text/cases"

	"wizard-spelldash/models"
	"wizard-spelldash/utils"
)

// DefaultTitle is the heading of both dashboard surfaces
const DefaultTitle = "Wizard SpellDash"

// State is the complete view state of one dashboard session
type State struct {
	spells  []models.SpellDetail
	loading bool
	search  string
	band    Band
}

// NewState returns the initial state: loading, empty search, all levels
func NewState() State {
	return State{
		spells:  []models.SpellDetail{},
		loading: true,
		band:    BandAll,
	}
}

// WithLoadResult publishes the outcome of the load cycle and leaves the loading state.
// A failed result publishes an empty list. Once loaded, further results are ignored.
func (s State) WithLoadResult(result models.LoadResult) State {
	if !s.loading {
		return s
	}
	spells := []models.SpellDetail{}
	if !result.Failed() {
		spells = append(spells, result.Spells...)
	}
	s.spells = spells
	s.loading = false
	return s
}

// WithSearch returns a copy of s with the search string replaced
func (s State) WithSearch(search string) State {
	s.search = search
	return s
}

// WithBand returns a copy of s with the level band replaced
func (s State) WithBand(band Band) State {
	s.band = band
	return s
}

func (s State) Loading() bool  { return s.loading }
func (s State) Search() string { return s.search }
func (s State) Band() Band     { return s.band }

// Spells returns a copy of the loaded spells
func (s State) Spells() []models.SpellDetail {
	out := make([]models.SpellDetail, len(s.spells))
	copy(out, s.spells)
	return out
}

// Filtered returns the spells that pass both the search and the band filter, in loaded order
func (s State) Filtered() []models.SpellDetail {
	fold := cases.Fold()
	needle := fold.String(s.search)

	out := make([]models.SpellDetail, 0, len(s.spells))
	for _, spell := range s.spells {
		if !strings.Contains(fold.String(spell.Name), needle) {
			continue
		}
		if !s.band.Matches(spell.Level) {
			continue
		}
		out = append(out, spell)
	}
	return out
}

// Stats computes the summary cards.
// Total and AverageLevel use every loaded spell; Visible counts the filtered view.
func (s State) Stats() models.DashboardStats {
	total := len(s.spells)
	avg := AverageLevel(s.spells)
	return models.DashboardStats{
		Total:        total,
		Visible:      len(s.Filtered()),
		AverageLevel: avg,
		AverageLabel: utils.FormatAverage(avg, total),
	}
}

// AverageLevel returns the mean level rounded to one decimal, or 0 for an empty list
func AverageLevel(spells []models.SpellDetail) float64 {
	if len(spells) == 0 {
		return 0
	}
	sum := 0
	for _, spell := range spells {
		sum += spell.Level
	}
	return math.Round(float64(sum)/float64(len(spells))*10) / 10
}
