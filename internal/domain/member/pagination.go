package member

import (
	"coc_clan_stats/internal/app"
	"coc_clan_stats/internal/config"
)

// Paginate returns the 1-indexed page of members. Pages outside
// [1, TotalPages] yield an empty slice. A non-positive pageSize falls back to
// config.DefaultPageSize.
// Pure function: the returned slice never aliases the input
func Paginate(members []app.Member, page, pageSize int) []app.Member {
	pageSize = effectivePageSize(pageSize)
	if page < 1 || page > TotalPages(len(members), pageSize) {
		return []app.Member{}
	}

	// page is bounded by TotalPages, so start cannot overflow
	start := (page - 1) * pageSize
	end := len(members)
	if remaining := end - start; remaining > pageSize {
		end = start + pageSize
	}

	pageItems := make([]app.Member, end-start)
	copy(pageItems, members[start:end])
	return pageItems
}

// TotalPages returns how many pages totalCount items fill
func TotalPages(totalCount, pageSize int) int {
	pageSize = effectivePageSize(pageSize)
	if totalCount <= 0 {
		return 0
	}
	pages := totalCount / pageSize
	if totalCount%pageSize != 0 {
		pages++
	}
	return pages
}

func effectivePageSize(pageSize int) int {
	if pageSize <= 0 {
		return config.DefaultPageSize
	}
	return pageSize
}
