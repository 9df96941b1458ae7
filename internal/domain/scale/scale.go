package scale

import "math"

// HalfTrack is the share of a 0-100 track each side of a comparison may occupy
const HalfTrack = 50.0

// Scale holds the bar widths of two opposing quantities on a shared track
type Scale struct {
	LeftPercent  float64 `json:"leftPercent"`
	RightPercent float64 `json:"rightPercent"`
}

// HalfScale maps each side onto at most half of a shared 0-100 track, so the
// two bars never overlap. A side with a non-positive max maps to 0.
// Pure function: No I/O, deterministic output from input
func HalfScale(leftValue, leftMax, rightValue, rightMax float64) Scale {
	return Scale{
		LeftPercent:  halfOf(leftValue, leftMax),
		RightPercent: halfOf(rightValue, rightMax),
	}
}

func halfOf(value, limit float64) float64 {
	if limit <= 0 || math.IsNaN(value) || math.IsNaN(limit) {
		return 0
	}
	return clamp01(value/limit) * HalfTrack
}

func clamp01(ratio float64) float64 {
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}

// ShareOfTotal returns each value's rounded percentage of a+b, or 0/0 when
// the total is not positive. Used for the donated-vs-received and
// attack-vs-defense gauges.
func ShareOfTotal(a, b int) (aPercent, bPercent int) {
	total := a + b
	if total <= 0 {
		return 0, 0
	}
	aPercent = int(math.Round(float64(a) / float64(total) * 100))
	bPercent = int(math.Round(float64(b) / float64(total) * 100))
	return aPercent, bPercent
}
