package war

import (
	"coc_clan_stats/internal/app"
	"coc_clan_stats/internal/domain/scale"
)

// SideSummary holds per-side totals shown next to the rankings
type SideSummary struct {
	Name             string  `json:"name"`
	Stars            int     `json:"stars"`
	AttacksUsed      int     `json:"attacksUsed"`
	AttacksAvailable int     `json:"attacksAvailable"`
	AttacksRemaining int     `json:"attacksRemaining"`
	StarsPerAttack   float64 `json:"starsPerAttack"`
	Destruction      float64 `json:"destructionPercentage"`
}

// Comparison places both sides of a war on shared half-track scales
type Comparison struct {
	Stars       scale.Scale `json:"stars"`
	Destruction scale.Scale `json:"destruction"`
}

// SummarizeSide totals a side's attack usage and star rate. Attacks is read
// as the number of attacks the side may make.
func SummarizeSide(side app.WarSide) SideSummary {
	memberAttacks, memberStars := 0, 0
	for _, member := range side.Members {
		memberAttacks += len(member.Attacks)
		memberStars += sumStars(member.Attacks)
	}

	summary := SideSummary{
		Name:             side.Name,
		Stars:            side.Stars,
		AttacksUsed:      side.AttacksUsed,
		AttacksAvailable: side.Attacks,
		Destruction:      side.DestructionPercentage,
	}
	if summary.Name == "" {
		summary.Name = app.NotAvailable
	}
	if remaining := side.Attacks - side.AttacksUsed; remaining > 0 {
		summary.AttacksRemaining = remaining
	}
	if memberAttacks > 0 {
		summary.StarsPerAttack = float64(memberStars) / float64(memberAttacks)
	}

	return summary
}

// CompareSides scales stars against the maximum the team size allows and
// destruction against 100 percent.
func CompareSides(war app.War) Comparison {
	maxStars := float64(war.TeamSize * MaxStarsPerAttack)
	return Comparison{
		Stars: scale.HalfScale(
			float64(war.Clan.Stars), maxStars,
			float64(war.Opponent.Stars), maxStars,
		),
		Destruction: scale.HalfScale(
			war.Clan.DestructionPercentage, 100,
			war.Opponent.DestructionPercentage, 100,
		),
	}
}
