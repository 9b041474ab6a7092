package utils

import (
	"strconv"
	"strings"
)

// Placeholder rendered for absent optional fields
const Placeholder = "—"

// FormatAverage formats an average level for the summary card.
// An empty spell list renders "0"; anything else keeps one decimal ("4.0").
func FormatAverage(avg float64, count int) string {
	if count == 0 {
		return "0"
	}
	return strconv.FormatFloat(avg, 'f', 1, 64)
}

// YesNo renders a boolean flag as "Yes" or "No"
func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// OrPlaceholder returns s, or Placeholder when s is empty
func OrPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}

// JoinComponents renders component tags as "V, S, M"
func JoinComponents(components []string) string {
	return strings.Join(components, ", ")
}
