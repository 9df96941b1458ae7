package war

import "coc_clan_stats/internal/app"

// Status is the display label for a war's current outcome
type Status string

const (
	StatusPreparation Status = "preparation in progress"
	StatusLeading     Status = "leading"
	StatusBehind      Status = "behind"
	StatusTied        Status = "tied"
	StatusWon         Status = "won"
	StatusLost        Status = "lost"
	StatusDraw        Status = "draw"
	StatusUnknown     Status = "unknown"
)

// outcomeRule describes how one war state is labelled. States that compare
// scores pick Ahead, Behind or Even from the star totals; the rest always
// report Fixed.
type outcomeRule struct {
	CompareStars bool
	Fixed        Status
	Ahead        Status
	Behind       Status
	Even         Status
}

var outcomeRules = map[app.WarState]outcomeRule{
	app.WarStatePreparation: {
		Fixed: StatusPreparation,
	},
	app.WarStateInWar: {
		CompareStars: true,
		Ahead:        StatusLeading,
		Behind:       StatusBehind,
		Even:         StatusTied,
	},
	app.WarStateEnded: {
		CompareStars: true,
		Ahead:        StatusWon,
		Behind:       StatusLost,
		Even:         StatusDraw,
	},
}

// Classify maps a war snapshot to its outcome status. States without a rule,
// including notInWar, report StatusUnknown.
// Pure function: re-evaluates from the snapshot on every call
func Classify(war app.War) Status {
	rule, ok := outcomeRules[war.State]
	if !ok {
		return StatusUnknown
	}
	if !rule.CompareStars {
		return rule.Fixed
	}

	switch {
	case war.Clan.Stars > war.Opponent.Stars:
		return rule.Ahead
	case war.Clan.Stars < war.Opponent.Stars:
		return rule.Behind
	default:
		return rule.Even
	}
}

// IsFinal reports whether the status can no longer change
func IsFinal(status Status) bool {
	return status == StatusWon || status == StatusLost || status == StatusDraw
}
