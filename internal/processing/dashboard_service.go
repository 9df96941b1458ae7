package processing

import (
	"coc_clan_stats/internal/app"
	"coc_clan_stats/internal/config"
	"coc_clan_stats/internal/domain/member"
	"coc_clan_stats/internal/domain/trend"
	"coc_clan_stats/internal/domain/war"

	"github.com/rs/zerolog/log"
)

// MemberDashboard is everything the members page renders for one query
type MemberDashboard struct {
	View           member.View             `json:"view"`
	Aggregate      member.Aggregate        `json:"aggregate"`
	RoleCounts     member.Tally            `json:"roleCounts"`
	TownHallCounts member.Tally            `json:"townHallCounts"`
	LeagueOptions  []string                `json:"leagueOptions"`
	LeagueColors   map[string]string       `json:"leagueColors"`
	Trends         map[string]trend.Trend  `json:"trends"`
	Donations      map[string]member.Ratio `json:"donations"`
	WinShares      map[string]member.Ratio `json:"winShares"`
}

// WarDashboard is everything the current war page renders
type WarDashboard struct {
	State        app.WarState       `json:"state"`
	Status       war.Status         `json:"status"`
	Final        bool               `json:"final"`
	ClanExp      *int               `json:"clanExp,omitempty"`
	OpponentExp  *int               `json:"opponentExp,omitempty"`
	Clan         war.SideSummary    `json:"clan"`
	Opponent     war.SideSummary    `json:"opponent"`
	Comparison   war.Comparison     `json:"comparison"`
	TopAttackers []war.AttackerRank `json:"topAttackers"`
	TopDefenders []war.DefenderRank `json:"topDefenders"`
}

// DashboardService assembles dashboards from the pure domain calculations
type DashboardService struct {
}

// NewDashboardService creates a new dashboard service
func NewDashboardService() *DashboardService {
	return &DashboardService{}
}

// MemberDashboard builds the member page for query. Aggregates and tallies
// cover the whole collection; trends and ratios are computed for the
// members on the requested page only.
func (ds *DashboardService) MemberDashboard(members []app.Member, query member.Query) MemberDashboard {
	view := member.BuildView(members, query)
	leagues := member.LeagueOptions(members)

	dashboard := MemberDashboard{
		View:           view,
		Aggregate:      member.CalculateAggregate(members),
		RoleCounts:     member.CountByRole(members),
		TownHallCounts: member.CountByTownHall(members),
		LeagueOptions:  leagues,
		LeagueColors:   make(map[string]string, len(leagues)),
		Trends:         trend.ForMembers(view.PageItems),
		Donations:      make(map[string]member.Ratio, len(view.PageItems)),
		WinShares:      make(map[string]member.Ratio, len(view.PageItems)),
	}

	for _, league := range leagues {
		if league != member.AllLeagues {
			dashboard.LeagueColors[league] = config.TierColor(league)
		}
	}

	for _, m := range view.PageItems {
		dashboard.Donations[m.Tag] = member.DonationRatio(m)
		dashboard.WinShares[m.Tag] = member.WinShare(m)
	}

	log.Debug().
		Int("members", len(members)).
		Int("matched", view.TotalCount).
		Int("page", view.Page).
		Int("page_items", len(view.PageItems)).
		Str("sort_key", string(query.SortKey)).
		Msg("Built member dashboard")

	return dashboard
}

// WarDashboard builds the war page with the top topN attackers and
// defenders of our clan. Experience is only reported once the war has ended.
func (ds *DashboardService) WarDashboard(current app.War, topN int) WarDashboard {
	status := war.Classify(current)

	dashboard := WarDashboard{
		State:        current.State,
		Status:       status,
		Final:        war.IsFinal(status),
		Clan:         war.SummarizeSide(current.Clan),
		Opponent:     war.SummarizeSide(current.Opponent),
		Comparison:   war.CompareSides(current),
		TopAttackers: war.TopAttackers(current.Clan, topN),
		TopDefenders: war.TopDefenders(current.Clan, topN),
	}

	if clanExp, opponentExp, ok := current.FinalExp(); ok {
		dashboard.ClanExp = &clanExp
		dashboard.OpponentExp = &opponentExp
	}

	log.Debug().
		Str("state", string(current.State)).
		Str("status", string(status)).
		Int("clan_stars", current.Clan.Stars).
		Int("opponent_stars", current.Opponent.Stars).
		Int("top_n", topN).
		Msg("Built war dashboard")

	return dashboard
}
