package member

import (
	"sort"
	"strings"

	"coc_clan_stats/internal/app"
)

// SortMembers returns a new slice ordered by key: trophies and donations
// descending, name ascending (case-insensitive). Members with equal keys keep
// their input order. An unrecognised key leaves the input order untouched.
// Pure function: Does not modify input slice, returns new sorted slice
func SortMembers(members []app.Member, key SortKey) []app.Member {
	sorted := make([]app.Member, len(members))
	copy(sorted, members)

	less := lessFunc(sorted, key)
	if less == nil {
		return sorted
	}

	sort.SliceStable(sorted, less)
	return sorted
}

func lessFunc(sorted []app.Member, key SortKey) func(i, j int) bool {
	switch key {
	case SortByTrophies:
		return func(i, j int) bool {
			return sorted[i].Trophies > sorted[j].Trophies
		}
	case SortByDonations:
		return func(i, j int) bool {
			return sorted[i].Donations > sorted[j].Donations
		}
	case SortByName:
		return func(i, j int) bool {
			return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
		}
	default:
		return nil
	}
}
