package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wizard-spelldash/models"
	"wizard-spelldash/utils"
)

func TestNewSpellRow(t *testing.T) {
	row := NewSpellRow(2, models.SpellDetail{
		Index:         "ray-of-frost",
		Name:          "Ray of Frost",
		Level:         0,
		School:        &models.APIReference{Name: "Evocation"},
		CastingTime:   "1 action",
		Range:         "60 feet",
		Duration:      "Instantaneous",
		Concentration: false,
		Ritual:        true,
		AttackType:    "ranged",
		Components:    []string{"V", "S"},
	})

	assert.Equal(t, models.SpellRow{
		Index:         2,
		Key:           "ray-of-frost",
		Icon:          utils.IconMagicSwirl,
		Name:          "Ray of Frost",
		Level:         0,
		School:        "Evocation",
		CastingTime:   "1 action",
		Range:         "60 feet",
		Duration:      "Instantaneous",
		Concentration: "No",
		Ritual:        "Yes",
		AttackType:    "ranged",
		Components:    "V, S",
	}, row)
}

func TestNewSpellRowPlaceholders(t *testing.T) {
	row := NewSpellRow(1, models.SpellDetail{Name: "Mystery", Concentration: true})

	assert.Equal(t, utils.IconDefault, row.Icon)
	assert.Equal(t, utils.Placeholder, row.School)
	assert.Equal(t, utils.Placeholder, row.AttackType)
	assert.Equal(t, "Yes", row.Concentration)
	assert.Equal(t, "", row.Components)
}

func TestRowsIndexRecomputedPerPass(t *testing.T) {
	s := loaded(spell("Fire Bolt", 0), spell("Shield", 1), spell("Fireball", 3))

	rows := s.WithSearch("fire").Rows()

	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Index)
	assert.Equal(t, "Fire Bolt", rows[0].Name)
	assert.Equal(t, 2, rows[1].Index)
	assert.Equal(t, "Fireball", rows[1].Name)
}

func TestData(t *testing.T) {
	s := loaded(spell("Shield", 1), spell("Fireball", 3)).WithBand(BandMid)

	data := s.Data("Wizard")

	assert.Equal(t, DefaultTitle, data.Title)
	assert.Equal(t, "Wizard", data.TargetClass)
	assert.False(t, data.Loading)
	assert.Equal(t, "mid", data.Level)
	assert.Equal(t, 2, data.Stats.Total)
	assert.Equal(t, 1, data.Stats.Visible)
	assert.Equal(t, "2.0", data.Stats.AverageLabel)
	require.Len(t, data.Rows, 1)
	assert.Equal(t, "Fireball", data.Rows[0].Name)
	require.Len(t, data.Bands, 5)
	for _, opt := range data.Bands {
		assert.Equal(t, opt.Value == "mid", opt.Selected, opt.Value)
	}
	require.Len(t, data.Nav, 3)
	assert.Equal(t, "#", data.Nav[0].Href)
}

func TestDataWhileLoading(t *testing.T) {
	data := NewState().Data("Wizard")

	assert.True(t, data.Loading)
	assert.Empty(t, data.Rows)
	assert.Equal(t, 0, data.Stats.Total)
}
