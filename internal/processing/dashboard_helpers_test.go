package processing

import (
	"coc_clan_stats/internal/app"
	"coc_clan_stats/internal/domain/member"
)

// countingBuilder is a test double that counts calls through to a real DashboardService
type countingBuilder struct {
	inner           *DashboardService
	memberCalls     int
	warCalls        int
	lastMemberQuery member.Query
	lastWarTopN     int
}

func newCountingBuilder() *countingBuilder {
	return &countingBuilder{inner: NewDashboardService()}
}

func (b *countingBuilder) MemberDashboard(members []app.Member, query member.Query) MemberDashboard {
	b.memberCalls++
	b.lastMemberQuery = query
	return b.inner.MemberDashboard(members, query)
}

func (b *countingBuilder) WarDashboard(current app.War, topN int) WarDashboard {
	b.warCalls++
	b.lastWarTopN = topN
	return b.inner.WarDashboard(current, topN)
}

func testMembers() []app.Member {
	return []app.Member{
		{
			Tag: "#A", Name: "Alpha", Role: app.RoleLeader, TownHallLevel: 15, Trophies: 5000,
			Donations: 300, DonationsReceived: 100, AttackWins: 40, DefenseWins: 10,
			League:        &app.League{Name: "Legend League"},
			TrophyHistory: []app.TrophyPoint{{Day: 1, Trophies: 4980}, {Day: 2, Trophies: 5000}},
		},
		{
			Tag: "#B", Name: "Bravo", Role: app.RoleElder, TownHallLevel: 13, Trophies: 3000,
			Donations: 0, DonationsReceived: 500,
			League:        &app.League{Name: "Titan League I"},
			TrophyHistory: []app.TrophyPoint{{Day: 1, Trophies: 3100}, {Day: 2, Trophies: 3000}},
		},
		{
			Tag: "#C", Name: "Charlie", Role: app.RoleMember, TownHallLevel: 13, Trophies: 1000,
		},
	}
}

func testWar(state app.WarState) app.War {
	return app.War{
		State:    state,
		TeamSize: 3,
		Clan: app.WarSide{
			Name: "Our Clan", Stars: 7, Attacks: 6, AttacksUsed: 4, DestructionPercentage: 80, ExpEarned: 150,
			Members: []app.WarMember{
				{Name: "Alpha", Attacks: []app.WarStars{{Stars: 3}, {Stars: 2}}, Defenses: []app.WarStars{{Stars: 1}}},
				{Name: "Bravo", Attacks: []app.WarStars{{Stars: 2}}, Defenses: []app.WarStars{{Stars: 3}, {Stars: 2}}},
				{Name: "Charlie", Attacks: nil, Defenses: nil},
			},
		},
		Opponent: app.WarSide{
			Name: "Their Clan", Stars: 6, Attacks: 6, AttacksUsed: 3, DestructionPercentage: 60, ExpEarned: 90,
		},
	}
}
