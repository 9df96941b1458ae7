package war

import (
	"sort"

	"coc_clan_stats/internal/app"
)

// AttackerRank is one row of the top attackers table
type AttackerRank struct {
	Name        string  `json:"name"`
	AttackCount int     `json:"attackCount"`
	StarsEarned int     `json:"starsEarned"`
	Efficiency  float64 `json:"efficiency"`
}

// DefenderRank is one row of the top defenders table
type DefenderRank struct {
	Name         string  `json:"name"`
	DefenseCount int     `json:"defenseCount"`
	StarsLost    int     `json:"starsLost"`
	Strength     float64 `json:"strength"`
}

// TopAttackers ranks a side's members by stars earned, most first, keeping
// member order for ties, and returns at most n rows.
// Pure function: No I/O, returns new slice without modifying input
func TopAttackers(side app.WarSide, n int) []AttackerRank {
	ranks := make([]AttackerRank, 0, len(side.Members))
	for _, member := range side.Members {
		stars := sumStars(member.Attacks)
		ranks = append(ranks, AttackerRank{
			Name:        memberName(member),
			AttackCount: len(member.Attacks),
			StarsEarned: stars,
			Efficiency:  AttackerEfficiency(stars, len(member.Attacks)),
		})
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].StarsEarned > ranks[j].StarsEarned
	})

	return ranks[:limit(n, len(ranks))]
}

// TopDefenders ranks a side's members by stars conceded, fewest first,
// keeping member order for ties, and returns at most n rows.
// Pure function: No I/O, returns new slice without modifying input
func TopDefenders(side app.WarSide, n int) []DefenderRank {
	ranks := make([]DefenderRank, 0, len(side.Members))
	for _, member := range side.Members {
		stars := sumStars(member.Defenses)
		ranks = append(ranks, DefenderRank{
			Name:         memberName(member),
			DefenseCount: len(member.Defenses),
			StarsLost:    stars,
			Strength:     DefenderStrength(stars, len(member.Defenses)),
		})
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].StarsLost < ranks[j].StarsLost
	})

	return ranks[:limit(n, len(ranks))]
}

func sumStars(results []app.WarStars) int {
	total := 0
	for _, r := range results {
		total += r.Stars
	}
	return total
}

func memberName(member app.WarMember) string {
	if member.Name == "" {
		return app.NotAvailable
	}
	return member.Name
}

func limit(n, length int) int {
	if n < 0 {
		return 0
	}
	if n > length {
		return length
	}
	return n
}
