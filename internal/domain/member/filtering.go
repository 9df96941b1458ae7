package member

import (
	"strconv"
	"strings"

	"coc_clan_stats/internal/app"
)

// FilterMembers returns members passing every filter in the query, in input order
// Pure function: No I/O, returns new slice without modifying input
func FilterMembers(members []app.Member, query Query) []app.Member {
	filtered := make([]app.Member, 0, len(members))
	for _, m := range members {
		if MatchesQuery(m, query) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// MatchesQuery reports whether a single member passes the query's filters
func MatchesQuery(m app.Member, query Query) bool {
	return matchesSearch(m, strings.ToLower(query.SearchText)) &&
		matchesRole(m, query.RoleFilter) &&
		matchesTownHall(m, query.TownHallFilter) &&
		matchesLeague(m, query.LeagueFilter)
}

// matchesSearch expects an already lowercased search string
func matchesSearch(m app.Member, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(m.Name), search)
}

func matchesRole(m app.Member, filter string) bool {
	if isAll(filter) {
		return true
	}
	return string(m.Role) == filter
}

// matchesTownHall compares numerically; a filter that is not a number matches nobody
func matchesTownHall(m app.Member, filter string) bool {
	if isAll(filter) {
		return true
	}
	level, err := strconv.Atoi(strings.TrimSpace(filter))
	if err != nil {
		return false
	}
	return m.TownHallLevel == level
}

func matchesLeague(m app.Member, filter string) bool {
	if isAll(filter) {
		return true
	}
	return m.LeagueName() == filter
}

func isAll(filter string) bool {
	return filter == "" || strings.EqualFold(filter, FilterAll)
}
