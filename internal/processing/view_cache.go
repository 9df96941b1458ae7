package processing

import (
	"sync"
	"time"

	"coc_clan_stats/internal/app"
	"coc_clan_stats/internal/config"
	"coc_clan_stats/internal/domain/member"

	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

const (
	memberView = "member_dashboard"
	warView    = "war_dashboard"
)

// ViewCacheConfig configures memoization behavior
type ViewCacheConfig struct {
	// TTL is how long a computed dashboard is reused for an identical input
	TTL time.Duration
}

// DefaultViewCacheConfig returns sensible cache defaults
func DefaultViewCacheConfig() ViewCacheConfig {
	return ViewCacheConfig{
		TTL: config.DefaultCacheTTL,
	}
}

// CachedDashboardService wraps a DashboardBuilder with memoization. Entries are
// keyed on a hash of the encoded input, so two snapshots with equal content
// share an entry however they were produced. Entries hold the encoded
// dashboard and every hit decodes a fresh copy.
type CachedDashboardService struct {
	builder DashboardBuilder
	config  ViewCacheConfig
	tracker *CacheTracker
	mutex   sync.RWMutex
	now     func() time.Time

	entries map[uint64]*cachedDashboard
}

type cachedDashboard struct {
	view      string
	encoded   []byte
	timestamp time.Time
}

type memberKey struct {
	Members []app.Member `json:"members"`
	Query   member.Query `json:"query"`
}

type warKey struct {
	War  app.War `json:"war"`
	TopN int     `json:"topN"`
}

// NewCachedDashboardService creates a caching wrapper around a DashboardBuilder
func NewCachedDashboardService(builder DashboardBuilder, tracker *CacheTracker, cacheConfig ViewCacheConfig) *CachedDashboardService {
	return &CachedDashboardService{
		builder: builder,
		config:  cacheConfig,
		tracker: tracker,
		now:     time.Now,
		entries: make(map[uint64]*cachedDashboard),
	}
}

// MemberDashboard returns a cached member dashboard or builds a fresh one
func (c *CachedDashboardService) MemberDashboard(members []app.Member, query member.Query) MemberDashboard {
	key, ok := c.keyFor(memberView, memberKey{Members: members, Query: query})
	if ok {
		var cached MemberDashboard
		if c.lookup(key, memberView, &cached) {
			return cached
		}
	}

	dashboard := c.builder.MemberDashboard(members, query)
	if ok {
		c.store(key, memberView, dashboard)
	}
	return dashboard
}

// WarDashboard returns a cached war dashboard or builds a fresh one
func (c *CachedDashboardService) WarDashboard(current app.War, topN int) WarDashboard {
	key, ok := c.keyFor(warView, warKey{War: current, TopN: topN})
	if ok {
		var cached WarDashboard
		if c.lookup(key, warView, &cached) {
			return cached
		}
	}

	dashboard := c.builder.WarDashboard(current, topN)
	if ok {
		c.store(key, warView, dashboard)
	}
	return dashboard
}

// keyFor hashes the encoded input together with the view name. An input that
// cannot be encoded is not cached.
func (c *CachedDashboardService) keyFor(view string, input interface{}) (uint64, bool) {
	encoded, err := json.Marshal(input)
	if err != nil {
		log.Debug().
			Err(err).
			Str("view", view).
			Msg("Cannot encode dashboard input; bypassing cache")
		return 0, false
	}

	digest := xxhash.New()
	_, _ = digest.WriteString(view)
	_, _ = digest.Write(encoded)
	return digest.Sum64(), true
}

// lookup decodes a live entry into out and reports whether it was found
func (c *CachedDashboardService) lookup(key uint64, view string, out interface{}) bool {
	c.mutex.RLock()
	cached := c.entries[key]
	c.mutex.RUnlock()

	if cached == nil || cached.view != view || c.now().Sub(cached.timestamp) >= c.config.TTL {
		c.tracker.RecordMiss(view)
		return false
	}

	if err := json.Unmarshal(cached.encoded, out); err != nil {
		log.Warn().
			Err(err).
			Str("view", view).
			Msg("Discarding undecodable cache entry")
		c.mutex.Lock()
		delete(c.entries, key)
		c.mutex.Unlock()
		c.tracker.RecordMiss(view)
		return false
	}

	log.Debug().
		Str("view", view).
		Dur("cache_age", c.now().Sub(cached.timestamp)).
		Msg("Using cached dashboard (computation saved)")
	c.tracker.RecordHit(view)
	return true
}

func (c *CachedDashboardService) store(key uint64, view string, dashboard interface{}) {
	if c.config.TTL <= 0 {
		return
	}

	encoded, err := json.Marshal(dashboard)
	if err != nil {
		log.Debug().
			Err(err).
			Str("view", view).
			Msg("Cannot encode dashboard; not caching")
		return
	}

	c.mutex.Lock()
	c.entries[key] = &cachedDashboard{
		view:      view,
		encoded:   encoded,
		timestamp: c.now(),
	}
	c.mutex.Unlock()
}

// ClearCache invalidates all cached dashboards
func (c *CachedDashboardService) ClearCache() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries = make(map[uint64]*cachedDashboard)

	log.Info().Msg("Dashboard cache cleared")
}

// PurgeExpired drops entries older than the TTL and returns how many were removed
func (c *CachedDashboardService) PurgeExpired() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	removed := 0
	for key, cached := range c.entries {
		if c.now().Sub(cached.timestamp) >= c.config.TTL {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// GetCacheStats returns counts of valid and expired entries
func (c *CachedDashboardService) GetCacheStats() CacheStats {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	var validEntries, expiredEntries int
	for _, cached := range c.entries {
		if c.now().Sub(cached.timestamp) < c.config.TTL {
			validEntries++
		} else {
			expiredEntries++
		}
	}

	return CacheStats{
		ValidEntries:   validEntries,
		ExpiredEntries: expiredEntries,
		TotalEntries:   validEntries + expiredEntries,
	}
}

// CacheStats represents cache entry statistics
type CacheStats struct {
	ValidEntries   int
	ExpiredEntries int
	TotalEntries   int
}
