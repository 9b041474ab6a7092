package utils

import (
	"strings"
)

// Display tokens for the four schools that have a dedicated icon
const (
	IconMagicSwirl  = "🌀" // Evocation
	IconMagicGate   = "🌌" // Illusion
	IconSpellBook   = "📖" // Divination
	IconCrystalWand = "🔮" // Conjuration
	IconDefault     = "✨"
)

// schoolIconMap maps school names to their display icon
var schoolIconMap = map[string]string{
	"Evocation":   IconMagicSwirl,
	"Illusion":    IconMagicGate,
	"Divination":  IconSpellBook,
	"Conjuration": IconCrystalWand,
}

// schoolIconNames maps icon tokens to the CSS class used by the dashboard template
var schoolIconNames = map[string]string{
	IconMagicSwirl:  "magic-swirl",
	IconMagicGate:   "magic-gate",
	IconSpellBook:   "spell-book",
	IconCrystalWand: "crystal-wand",
	IconDefault:     "sparkles",
}

// MapSchoolToIcon maps a school name to its display icon
// Matching is exact, as the API returns canonical names ("Evocation")
// Returns IconDefault for unknown or empty schools
func MapSchoolToIcon(school string) string {
	if icon, exists := schoolIconMap[school]; exists {
		return icon
	}
	return IconDefault
}

// MapIconToClass maps an icon token to its CSS class name
func MapIconToClass(icon string) string {
	if name, exists := schoolIconNames[icon]; exists {
		return name
	}
	return schoolIconNames[IconDefault]
}

// NormalizeLevelParam trims and lowercases a level selector value from a query string
func NormalizeLevelParam(level string) string {
	return strings.ToLower(strings.TrimSpace(level))
}
