package config

import "time"

// View configuration constants
const (
	// Member list pagination
	DefaultPageSize = 10
	MaxPageSize     = 100

	// War rankings
	DefaultTopN = 5

	// Dashboard memoization
	DefaultCacheTTL = 5 * time.Minute

	// Snapshot reload loop
	DefaultUpdateInterval = 5 * time.Minute

	// Placeholder trophy history
	DefaultHistoryDays    = 7
	DefaultHistoryMaxDrop = 40
)

// FallbackTierColor is used for members without a recognised league tier
const FallbackTierColor = "#888"

// ClampPageSize keeps a requested page size within [1, MaxPageSize],
// substituting DefaultPageSize for non-positive requests.
func ClampPageSize(size int) int {
	if size <= 0 {
		return DefaultPageSize
	}
	if size > MaxPageSize {
		return MaxPageSize
	}
	return size
}

var tierColors = map[string]string{
	"Bronze":   "#b77c4f",
	"Silver":   "#a9a9a9",
	"Gold":     "#d4af37",
	"Crystal":  "#64c2f1",
	"Master":   "#7b68ee",
	"Champion": "#ff6347",
	"Titan":    "#4b0082",
	"Legend":   "#ff1493",
}

// TierColor resolves a league name such as "Crystal League II" to its tier
// color by matching the leading tier word.
func TierColor(leagueName string) string {
	if color, ok := tierColors[leagueName]; ok {
		return color
	}
	for i := 0; i < len(leagueName); i++ {
		if leagueName[i] == ' ' {
			if color, ok := tierColors[leagueName[:i]]; ok {
				return color
			}
			break
		}
	}
	return FallbackTierColor
}
