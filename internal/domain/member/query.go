package member

// SortKey selects the primary ordering of a member view
type SortKey string

const (
	SortByTrophies  SortKey = "trophies"
	SortByDonations SortKey = "donations"
	SortByName      SortKey = "name"
)

// FilterAll disables a role, town hall or league filter
const FilterAll = "all"

// Query describes one page of a filtered, sorted member list
type Query struct {
	SearchText     string
	RoleFilter     string
	TownHallFilter string
	LeagueFilter   string
	SortKey        SortKey
	Page           int // 1-indexed
	PageSize       int
}
