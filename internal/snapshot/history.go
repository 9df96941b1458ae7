package snapshot

import (
	"math/rand/v2"

	"coc_clan_stats/internal/app"
)

// SyntheticHistory builds a placeholder trophy history of the given length for
// payloads that carry none: every point sits up to maxDrop trophies below the
// current count. The random source is supplied by the caller so results are
// reproducible in tests.
func SyntheticHistory(trophies, days, maxDrop int, rng *rand.Rand) []app.TrophyPoint {
	if days <= 0 {
		return nil
	}

	history := make([]app.TrophyPoint, days)
	for i := range history {
		drop := 0
		if maxDrop > 0 {
			drop = rng.IntN(maxDrop)
		}
		value := trophies - drop
		if value < 0 {
			value = 0
		}
		history[i] = app.TrophyPoint{Day: i + 1, Trophies: value}
	}
	return history
}

// FillMissingHistory returns a copy of members where every member without a
// trophy history gets a synthetic one. Members with real history are untouched.
func FillMissingHistory(members []app.Member, days, maxDrop int, rng *rand.Rand) []app.Member {
	filled := make([]app.Member, len(members))
	for i, m := range members {
		if len(m.TrophyHistory) == 0 {
			m.TrophyHistory = SyntheticHistory(m.Trophies, days, maxDrop, rng)
		}
		filled[i] = m
	}
	return filled
}
