package member

import "coc_clan_stats/internal/app"

func sampleMembers() []app.Member {
	return []app.Member{
		{Tag: "#A", Name: "Alpha", Role: app.RoleLeader, TownHallLevel: 14, Trophies: 3200, Donations: 500, League: &app.League{Name: "Titan League III"}},
		{Tag: "#B", Name: "bravo", Role: app.RoleElder, TownHallLevel: 12, Trophies: 2800, Donations: 900, League: &app.League{Name: "Champion League I"}},
		{Tag: "#C", Name: "Charlie", Role: app.RoleMember, TownHallLevel: 12, Trophies: 3200, Donations: 100},
		{Tag: "#D", Name: "Delta", Role: app.RoleCoLeader, TownHallLevel: 10, Trophies: 1500, Donations: 900, League: &app.League{Name: "Champion League I"}},
		{Tag: "#E", Name: "alphabet", Role: app.RoleMember, TownHallLevel: 14, Trophies: 2800, Donations: 0, League: &app.League{Name: "Titan League III"}},
	}
}

func tags(members []app.Member) []string {
	result := make([]string, len(members))
	for i, m := range members {
		result[i] = m.Tag
	}
	return result
}

func equalTags(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
