package snapshot

import (
	"fmt"
	"sort"

	"coc_clan_stats/internal/app"

	"github.com/rs/zerolog/log"
)

// untaggedPrefix starts the synthetic tag of a member the payload left
// untagged. API tags always start with '#', so synthetic tags cannot collide.
const untaggedPrefix = "untagged-"

// NormalizeMembers applies the defensive defaults: missing names become
// app.NotAvailable, negative counters become 0, histories are ordered by day
// and repeated tags keep only their first occurrence. A member without a tag
// gets a synthetic one built from its input position, so tag-keyed views
// never merge two members.
// Pure function: returns new values without modifying input
func NormalizeMembers(members []app.Member) []app.Member {
	normalized := make([]app.Member, 0, len(members))
	seen := make(map[string]bool, len(members))

	for i, m := range members {
		if m.Tag == "" {
			m.Tag = fmt.Sprintf("%s%d", untaggedPrefix, i)
			log.Warn().
				Str("tag", m.Tag).
				Str("name", m.Name).
				Msg("Member has no tag; assigned a synthetic one")
		}
		if seen[m.Tag] {
			log.Warn().
				Str("tag", m.Tag).
				Str("name", m.Name).
				Msg("Dropping member with duplicate tag")
			continue
		}
		seen[m.Tag] = true
		normalized = append(normalized, normalizeMember(m))
	}

	return normalized
}

func normalizeMember(m app.Member) app.Member {
	if m.Name == "" {
		m.Name = app.NotAvailable
	}
	m.TownHallLevel = atLeastZero(m.TownHallLevel)
	m.ExpLevel = atLeastZero(m.ExpLevel)
	m.Trophies = atLeastZero(m.Trophies)
	m.BestTrophies = atLeastZero(m.BestTrophies)
	m.WarStars = atLeastZero(m.WarStars)
	m.AttackWins = atLeastZero(m.AttackWins)
	m.DefenseWins = atLeastZero(m.DefenseWins)
	m.Donations = atLeastZero(m.Donations)
	m.DonationsReceived = atLeastZero(m.DonationsReceived)

	if m.League != nil {
		league := *m.League
		m.League = &league
	}

	if len(m.TrophyHistory) > 0 {
		history := make([]app.TrophyPoint, len(m.TrophyHistory))
		copy(history, m.TrophyHistory)
		sort.SliceStable(history, func(i, j int) bool {
			return history[i].Day < history[j].Day
		})
		m.TrophyHistory = history
	}

	return m
}

// NormalizeWar clamps a war snapshot into range: counters at least 0,
// destruction within [0,100], per-attack stars within [0,3]. A missing team
// size is taken from the larger roster.
// Pure function: returns a new value without modifying input
func NormalizeWar(war app.War) app.War {
	war.Clan = normalizeSide(war.Clan)
	war.Opponent = normalizeSide(war.Opponent)

	if war.TeamSize <= 0 {
		war.TeamSize = len(war.Clan.Members)
		if len(war.Opponent.Members) > war.TeamSize {
			war.TeamSize = len(war.Opponent.Members)
		}
	}

	return war
}

func normalizeSide(side app.WarSide) app.WarSide {
	if side.Name == "" {
		side.Name = app.NotAvailable
	}
	side.Stars = atLeastZero(side.Stars)
	side.Attacks = atLeastZero(side.Attacks)
	side.AttacksUsed = atLeastZero(side.AttacksUsed)
	side.ExpEarned = atLeastZero(side.ExpEarned)

	switch {
	case side.DestructionPercentage < 0:
		side.DestructionPercentage = 0
	case side.DestructionPercentage > 100:
		side.DestructionPercentage = 100
	}

	members := make([]app.WarMember, len(side.Members))
	for i, member := range side.Members {
		if member.Name == "" {
			member.Name = app.NotAvailable
		}
		member.Attacks = clampStars(member.Attacks)
		member.Defenses = clampStars(member.Defenses)
		members[i] = member
	}
	side.Members = members

	return side
}

func clampStars(results []app.WarStars) []app.WarStars {
	if results == nil {
		return nil
	}
	clamped := make([]app.WarStars, len(results))
	for i, r := range results {
		switch {
		case r.Stars < 0:
			r.Stars = 0
		case r.Stars > 3:
			r.Stars = 3
		}
		clamped[i] = r
	}
	return clamped
}

func atLeastZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
