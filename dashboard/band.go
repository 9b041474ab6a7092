package dashboard

import (
	"fmt"

	"wizard-spelldash/utils"
)

// Band is one of the five level ranges of the level selector
type Band string

const (
	BandAll     Band = "all"
	BandCantrip Band = "cantrip"
	BandLow     Band = "low"
	BandMid     Band = "mid"
	BandHigh    Band = "high"
)

// Bands lists every band in selector order
var Bands = []Band{BandAll, BandCantrip, BandLow, BandMid, BandHigh}

var bandLabels = map[Band]string{
	BandAll:     "All Levels",
	BandCantrip: "Cantrips (0)",
	BandLow:     "Low (1–2)",
	BandMid:     "Mid (3–5)",
	BandHigh:    "High (6+)",
}

// ParseBand parses a selector value. An empty value means BandAll.
func ParseBand(value string) (Band, error) {
	normalized := utils.NormalizeLevelParam(value)
	if normalized == "" {
		return BandAll, nil
	}
	b := Band(normalized)
	if _, ok := bandLabels[b]; !ok {
		return BandAll, fmt.Errorf("invalid level %q: valid levels are all, cantrip, low, mid, high", value)
	}
	return b, nil
}

// Matches reports whether a spell level falls inside the band
func (b Band) Matches(level int) bool {
	switch b {
	case BandCantrip:
		return level == 0
	case BandLow:
		return level >= 1 && level <= 2
	case BandMid:
		return level >= 3 && level <= 5
	case BandHigh:
		return level >= 6
	default:
		return true
	}
}

// Label returns the selector label (e.g., "Mid (3–5)")
func (b Band) Label() string {
	if label, ok := bandLabels[b]; ok {
		return label
	}
	return bandLabels[BandAll]
}

// Next returns the following band, wrapping around
func (b Band) Next() Band {
	return Bands[(b.position()+1)%len(Bands)]
}

// Prev returns the preceding band, wrapping around
func (b Band) Prev() Band {
	return Bands[(b.position()+len(Bands)-1)%len(Bands)]
}

func (b Band) position() int {
	for i, candidate := range Bands {
		if candidate == b {
			return i
		}
	}
	return 0
}
