package member

import "coc_clan_stats/internal/app"

// View is one display-ready page of a member list
type View struct {
	PageItems  []app.Member `json:"pageItems"`
	TotalCount int          `json:"totalCount"`
	TotalPages int          `json:"totalPages"`
	Page       int          `json:"page"`
	PageSize   int          `json:"pageSize"`
}

// BuildView filters, sorts and paginates members according to query.
// TotalCount counts every member that passed the filters, not just the page.
// Pure function: No I/O, deterministic output from input
func BuildView(members []app.Member, query Query) View {
	filtered := FilterMembers(members, query)
	sorted := SortMembers(filtered, query.SortKey)
	pageSize := effectivePageSize(query.PageSize)

	return View{
		PageItems:  Paginate(sorted, query.Page, pageSize),
		TotalCount: len(sorted),
		TotalPages: TotalPages(len(sorted), pageSize),
		Page:       query.Page,
		PageSize:   pageSize,
	}
}
