package member

import (
	"coc_clan_stats/internal/app"
	"coc_clan_stats/internal/domain/scale"
)

// Ratio compares two counters of one member as rounded shares of their sum
type Ratio struct {
	Given        int `json:"given"`
	Taken        int `json:"taken"`
	GivenPercent int `json:"givenPercent"`
	TakenPercent int `json:"takenPercent"`
}

// DonationRatio compares troops donated with troops received
func DonationRatio(m app.Member) Ratio {
	return newRatio(m.Donations, m.DonationsReceived)
}

// WinShare compares attack wins with defense wins
func WinShare(m app.Member) Ratio {
	return newRatio(m.AttackWins, m.DefenseWins)
}

func newRatio(given, taken int) Ratio {
	given, taken = nonNegative(given), nonNegative(taken)
	givenPct, takenPct := scale.ShareOfTotal(given, taken)
	return Ratio{
		Given:        given,
		Taken:        taken,
		GivenPercent: givenPct,
		TakenPercent: takenPct,
	}
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
