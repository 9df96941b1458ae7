package app

// Role is a member's rank inside the clan, using the API literals
type Role string

const (
	RoleLeader   Role = "leader"
	RoleCoLeader Role = "coLeader"
	RoleElder    Role = "elder"
	RoleMember   Role = "member"
)

// NotAvailable is the display label substituted for missing names and leagues
const NotAvailable = "N/A"

// Member represents a clan member from the API
type Member struct {
	Tag               string        `json:"tag"`
	Name              string        `json:"name"`
	Role              Role          `json:"role"`
	TownHallLevel     int           `json:"townHallLevel"`
	ExpLevel          int           `json:"expLevel"`
	Trophies          int           `json:"trophies"`
	BestTrophies      int           `json:"bestTrophies"`
	WarStars          int           `json:"warStars"`
	AttackWins        int           `json:"attackWins"`
	DefenseWins       int           `json:"defenseWins"`
	Donations         int           `json:"donations"`
	DonationsReceived int           `json:"donationsReceived"`
	ClanRank          int           `json:"clanRank"`
	League            *League       `json:"league,omitempty"`
	TrophyHistory     []TrophyPoint `json:"trophyHistory,omitempty"`
}

// LeagueName returns the member's league name or NotAvailable when the member is unranked
func (m Member) LeagueName() string {
	if m.League == nil || m.League.Name == "" {
		return NotAvailable
	}
	return m.League.Name
}

// League represents a trophy league
type League struct {
	ID       int      `json:"id,omitempty"`
	Name     string   `json:"name"`
	IconURLs IconURLs `json:"iconUrls"`
}

// IconURLs holds the icon variants the API returns for a league
type IconURLs struct {
	Tiny   string `json:"tiny,omitempty"`
	Small  string `json:"small,omitempty"`
	Medium string `json:"medium,omitempty"`
}

// TrophyPoint is one sample of a member's trophy history
type TrophyPoint struct {
	Day      int `json:"day"`
	Trophies int `json:"trophies"`
}

// MemberListResponse represents the response from /clan/{tag}/members
type MemberListResponse struct {
	Items []Member `json:"items"`
}

// WarState is the lifecycle state of a clan war
type WarState string

const (
	WarStatePreparation WarState = "preparation"
	WarStateInWar       WarState = "inWar"
	WarStateEnded       WarState = "warEnded"
	WarStateNotInWar    WarState = "notInWar"
)

// War represents the response from /clan/{tag}/currentwar
type War struct {
	State    WarState `json:"state"`
	TeamSize int      `json:"teamSize"`
	Clan     WarSide  `json:"clan"`
	Opponent WarSide  `json:"opponent"`
}

// FinalExp returns the experience earned by both sides. The values are only
// authoritative once the war has ended; ok is false otherwise.
func (w War) FinalExp() (clan int, opponent int, ok bool) {
	if w.State != WarStateEnded {
		return 0, 0, false
	}
	return w.Clan.ExpEarned, w.Opponent.ExpEarned, true
}

// WarSide is one of the two clans in a war
type WarSide struct {
	Tag                   string      `json:"tag,omitempty"`
	Name                  string      `json:"name"`
	Stars                 int         `json:"stars"`
	Attacks               int         `json:"attacks"`
	AttacksUsed           int         `json:"attacksUsed"`
	DestructionPercentage float64     `json:"destructionPercentage"`
	ExpEarned             int         `json:"expEarned"`
	Members               []WarMember `json:"members"`
}

// WarMember is a participant on one side of a war
type WarMember struct {
	Name     string     `json:"name"`
	Attacks  []WarStars `json:"attacks"`
	Defenses []WarStars `json:"defenses"`
}

// WarStars is the star result of a single attack or defense
type WarStars struct {
	Stars int `json:"stars"`
}
