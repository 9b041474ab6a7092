package dashboard

import (
	"wizard-spelldash/models"
	"wizard-spelldash/utils"
)

// navLinks is the static sidebar; none of the links go anywhere
var navLinks = []models.NavLink{
	{Label: "Dashboard", Href: "#"},
	{Label: "Search", Href: "#"},
	{Label: "About", Href: "#"},
}

// Columns are the spell table headers, in render order
var Columns = []string{
	"#", "Name", "Level", "School", "Casting Time", "Range",
	"Duration", "Concentration", "Ritual", "Attack Type", "Components",
}

// Rows renders the filtered spells. Row indexes are 1-based and recomputed per pass.
func (s State) Rows() []models.SpellRow {
	filtered := s.Filtered()
	rows := make([]models.SpellRow, 0, len(filtered))
	for i, spell := range filtered {
		rows = append(rows, NewSpellRow(i+1, spell))
	}
	return rows
}

// NewSpellRow renders one spell for display
func NewSpellRow(index int, spell models.SpellDetail) models.SpellRow {
	school := spell.SchoolName()
	return models.SpellRow{
		Index:         index,
		Key:           spell.Index,
		Icon:          utils.MapSchoolToIcon(school),
		Name:          spell.Name,
		Level:         spell.Level,
		School:        utils.OrPlaceholder(school),
		CastingTime:   spell.CastingTime,
		Range:         spell.Range,
		Duration:      spell.Duration,
		Concentration: utils.YesNo(spell.Concentration),
		Ritual:        utils.YesNo(spell.Ritual),
		AttackType:    utils.OrPlaceholder(spell.AttackType),
		Components:    utils.JoinComponents(spell.Components),
	}
}

// BandOptions returns the selector options with the current band marked
func (s State) BandOptions() []models.BandOption {
	options := make([]models.BandOption, 0, len(Bands))
	for _, b := range Bands {
		options = append(options, models.BandOption{
			Value:    string(b),
			Label:    b.Label(),
			Selected: b == s.band,
		})
	}
	return options
}

// Data assembles everything a surface needs to render the dashboard
func (s State) Data(targetClass string) models.DashboardData {
	return models.DashboardData{
		Title:       DefaultTitle,
		TargetClass: targetClass,
		Loading:     s.loading,
		Search:      s.search,
		Level:       string(s.band),
		Bands:       s.BandOptions(),
		Stats:       s.Stats(),
		Rows:        s.Rows(),
		Nav:         navLinks,
	}
}
