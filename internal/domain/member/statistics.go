package member

import (
	"strconv"

	"coc_clan_stats/internal/app"
)

// AllLeagues is the first option of the league filter
const AllLeagues = "All"

// CategoryCount is one entry of an insertion-ordered tally
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Tally is a category-to-count mapping that remembers the order in which
// categories were first seen.
type Tally []CategoryCount

// Lookup returns the count for name and whether it was seen at all
func (t Tally) Lookup(name string) (int, bool) {
	for _, entry := range t {
		if entry.Name == name {
			return entry.Count, true
		}
	}
	return 0, false
}

// Names returns the categories in first-seen order
func (t Tally) Names() []string {
	names := make([]string, len(t))
	for i, entry := range t {
		names[i] = entry.Name
	}
	return names
}

// Aggregate summarizes a member collection
type Aggregate struct {
	Count       int     `json:"count"`
	AvgTrophies float64 `json:"avgTrophies"`
	ByLeague    Tally   `json:"byLeague"`
}

// CalculateAggregate computes member count, mean trophies and a per-league
// tally. Members without a league are counted under app.NotAvailable. An empty
// collection yields zero values and an empty tally.
// Pure function: No I/O operations, fully testable with direct inputs.
func CalculateAggregate(members []app.Member) Aggregate {
	agg := Aggregate{
		Count:    len(members),
		ByLeague: tallyBy(members, func(m app.Member) string { return m.LeagueName() }),
	}
	if agg.Count == 0 {
		return agg
	}

	total := 0
	for _, m := range members {
		total += m.Trophies
	}
	agg.AvgTrophies = float64(total) / float64(agg.Count)

	return agg
}

// CountByRole tallies members per role in first-seen order
func CountByRole(members []app.Member) Tally {
	return tallyBy(members, func(m app.Member) string {
		if m.Role == "" {
			return app.NotAvailable
		}
		return string(m.Role)
	})
}

// CountByTownHall tallies members per town hall level in first-seen order
func CountByTownHall(members []app.Member) Tally {
	return tallyBy(members, func(m app.Member) string {
		return strconv.Itoa(m.TownHallLevel)
	})
}

// LeagueOptions returns the league filter choices: AllLeagues followed by
// every distinct league name in first-seen order. Unranked members add no option.
func LeagueOptions(members []app.Member) []string {
	options := []string{AllLeagues}
	seen := make(map[string]bool)
	for _, m := range members {
		if m.League == nil || m.League.Name == "" || seen[m.League.Name] {
			continue
		}
		seen[m.League.Name] = true
		options = append(options, m.League.Name)
	}
	return options
}

func tallyBy(members []app.Member, category func(app.Member) string) Tally {
	tally := Tally{}
	index := make(map[string]int)
	for _, m := range members {
		name := category(m)
		if i, ok := index[name]; ok {
			tally[i].Count++
			continue
		}
		index[name] = len(tally)
		tally = append(tally, CategoryCount{Name: name, Count: 1})
	}
	return tally
}
