package trend

import "coc_clan_stats/internal/app"

// Direction is the sign of the most recent change in a history
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionFlat Direction = "flat"
)

// Trend describes the last value of a history and its latest change
type Trend struct {
	Last      int       `json:"last"`
	Delta     int       `json:"delta"`
	Direction Direction `json:"direction"`
}

// Calculate derives a trend from the final two points of a chronologically
// ordered history. An empty history yields {0, 0, flat}; a single point has
// no change to report.
// Pure function: No I/O, deterministic output from input
func Calculate(history []app.TrophyPoint) Trend {
	if len(history) == 0 {
		return Trend{Direction: DirectionFlat}
	}

	last := history[len(history)-1].Trophies
	previous := last
	if len(history) >= 2 {
		previous = history[len(history)-2].Trophies
	}

	delta := last - previous
	return Trend{
		Last:      last,
		Delta:     delta,
		Direction: DirectionOf(delta),
	}
}

// DirectionOf classifies a change by its sign
func DirectionOf(delta int) Direction {
	switch {
	case delta > 0:
		return DirectionUp
	case delta < 0:
		return DirectionDown
	default:
		return DirectionFlat
	}
}

// ForMembers calculates the trend of every member, keyed by tag
func ForMembers(members []app.Member) map[string]Trend {
	trends := make(map[string]Trend, len(members))
	for _, m := range members {
		trends[m.Tag] = Calculate(m.TrophyHistory)
	}
	return trends
}
