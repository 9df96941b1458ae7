package processing

import (
	"coc_clan_stats/internal/app"
	"coc_clan_stats/internal/domain/member"
)

// DashboardBuilder defines the dashboard operations used by the CLI and the cache
type DashboardBuilder interface {
	MemberDashboard(members []app.Member, query member.Query) MemberDashboard
	WarDashboard(current app.War, topN int) WarDashboard
}
