package processing

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// CacheTracker counts dashboard cache hits and misses per view
type CacheTracker struct {
	sessionStart  time.Time
	sessionHits   int64
	sessionMisses int64
	totalHits     int64
	totalMisses   int64
	hitsByView    map[string]int64
	missesByView  map[string]int64
	mutex         sync.RWMutex
}

// NewCacheTracker creates a new cache tracker
func NewCacheTracker() *CacheTracker {
	return &CacheTracker{
		sessionStart: time.Now(),
		hitsByView:   make(map[string]int64),
		missesByView: make(map[string]int64),
	}
}

// RecordHit records a dashboard served from the cache
func (t *CacheTracker) RecordHit(view string) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.sessionHits++
	t.totalHits++
	t.hitsByView[view]++
}

// RecordMiss records a dashboard that had to be computed
func (t *CacheTracker) RecordMiss(view string) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.sessionMisses++
	t.totalMisses++
	t.missesByView[view]++
}

// GetSessionStats returns cache statistics for the current session
func (t *CacheTracker) GetSessionStats() CacheUsageStats {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	stats := CacheUsageStats{
		SessionHits:     t.sessionHits,
		SessionMisses:   t.sessionMisses,
		TotalHits:       t.totalHits,
		TotalMisses:     t.totalMisses,
		SessionDuration: time.Since(t.sessionStart),
		HitsByView:      copyCounts(t.hitsByView),
		MissesByView:    copyCounts(t.missesByView),
	}

	if lookups := t.sessionHits + t.sessionMisses; lookups > 0 {
		stats.HitRate = float64(t.sessionHits) / float64(lookups)
	}

	return stats
}

// ResetSession resets session-specific counters
func (t *CacheTracker) ResetSession() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.sessionStart = time.Now()
	t.sessionHits = 0
	t.sessionMisses = 0
	// Keep totals and per-view breakdown for historical tracking
}

// LogSessionSummary logs a summary of cache usage for the session
func (t *CacheTracker) LogSessionSummary() {
	stats := t.GetSessionStats()

	logEvent := log.Info().
		Int64("session_hits", stats.SessionHits).
		Int64("session_misses", stats.SessionMisses).
		Int64("total_hits", stats.TotalHits).
		Int64("total_misses", stats.TotalMisses).
		Float64("hit_rate", stats.HitRate).
		Dur("session_duration", stats.SessionDuration)

	for view, count := range stats.HitsByView {
		logEvent = logEvent.Int64(view+"_hits", count)
	}

	logEvent.Msg("Dashboard cache session summary")
}

// CacheUsageStats represents cache hit/miss statistics
type CacheUsageStats struct {
	SessionHits     int64
	SessionMisses   int64
	TotalHits       int64
	TotalMisses     int64
	SessionDuration time.Duration
	HitsByView      map[string]int64
	MissesByView    map[string]int64
	HitRate         float64
}

func copyCounts(counts map[string]int64) map[string]int64 {
	copied := make(map[string]int64, len(counts))
	for k, v := range counts {
		copied[k] = v
	}
	return copied
}
