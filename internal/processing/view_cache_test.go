package processing

import (
	"testing"
	"time"

	"coc_clan_stats/internal/app"
	"coc_clan_stats/internal/domain/member"

	"github.com/goccy/go-json"
)

func newTestCache(builder DashboardBuilder, ttl time.Duration) (*CachedDashboardService, *CacheTracker) {
	tracker := NewCacheTracker()
	return NewCachedDashboardService(builder, tracker, ViewCacheConfig{TTL: ttl}), tracker
}

func mustEncode(t *testing.T, v interface{}) string {
	t.Helper()
	encoded, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to encode: %v", err)
	}
	return string(encoded)
}

func TestCachedDashboardService_MemberDashboard(t *testing.T) {
	builder := newCountingBuilder()
	cache, tracker := newTestCache(builder, 5*time.Minute)
	query := member.Query{SortKey: member.SortByTrophies, Page: 1, PageSize: 2}

	first := cache.MemberDashboard(testMembers(), query)
	if builder.memberCalls != 1 {
		t.Fatalf("Expected the first call to compute, got %d calls", builder.memberCalls)
	}

	// A fresh but equal snapshot must hit the same entry
	second := cache.MemberDashboard(testMembers(), query)
	if builder.memberCalls != 1 {
		t.Errorf("Expected the second call to be served from cache, got %d calls", builder.memberCalls)
	}

	if mustEncode(t, first) != mustEncode(t, second) {
		t.Errorf("Cached dashboard differs from the computed one")
	}

	stats := tracker.GetSessionStats()
	if stats.SessionHits != 1 || stats.SessionMisses != 1 {
		t.Errorf("Expected 1 hit and 1 miss, got %d/%d", stats.SessionHits, stats.SessionMisses)
	}
}

func TestCachedDashboardService_KeyedOnValue(t *testing.T) {
	builder := newCountingBuilder()
	cache, _ := newTestCache(builder, 5*time.Minute)
	query := member.Query{SortKey: member.SortByTrophies, Page: 1, PageSize: 2}

	cache.MemberDashboard(testMembers(), query)

	// Different query parameters
	otherQuery := query
	otherQuery.Page = 2
	cache.MemberDashboard(testMembers(), otherQuery)
	if builder.memberCalls != 2 {
		t.Errorf("Expected a different page to miss, got %d calls", builder.memberCalls)
	}

	// Same query, changed member content
	changed := testMembers()
	changed[0].Trophies++
	cache.MemberDashboard(changed, query)
	if builder.memberCalls != 3 {
		t.Errorf("Expected changed content to miss, got %d calls", builder.memberCalls)
	}
}

func TestCachedDashboardService_HitsAreIndependentCopies(t *testing.T) {
	builder := newCountingBuilder()
	cache, _ := newTestCache(builder, 5*time.Minute)
	query := member.Query{SortKey: member.SortByName, Page: 1, PageSize: 5}

	cache.MemberDashboard(testMembers(), query)

	hit := cache.MemberDashboard(testMembers(), query)
	hit.View.PageItems[0].Name = "mutated"
	hit.Trends["#A"] = hit.Trends["#B"]

	again := cache.MemberDashboard(testMembers(), query)
	if again.View.PageItems[0].Name != "Alpha" {
		t.Errorf("Mutating a cache hit changed the cached entry: %q", again.View.PageItems[0].Name)
	}
	if again.Trends["#A"].Delta != 20 {
		t.Errorf("Mutating a cache hit changed cached trends: %+v", again.Trends["#A"])
	}
}

func TestCachedDashboardService_Expiry(t *testing.T) {
	builder := newCountingBuilder()
	cache, _ := newTestCache(builder, time.Minute)

	current := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return current }

	cache.WarDashboard(testWar(app.WarStateInWar), 3)
	cache.WarDashboard(testWar(app.WarStateInWar), 3)
	if builder.warCalls != 1 {
		t.Fatalf("Expected one computation before expiry, got %d", builder.warCalls)
	}

	current = current.Add(2 * time.Minute)

	stats := cache.GetCacheStats()
	if stats.ExpiredEntries != 1 || stats.ValidEntries != 0 {
		t.Errorf("Expected 1 expired entry, got %+v", stats)
	}

	cache.WarDashboard(testWar(app.WarStateInWar), 3)
	if builder.warCalls != 2 {
		t.Errorf("Expected recomputation after expiry, got %d", builder.warCalls)
	}
}

func TestCachedDashboardService_WarAndMemberKeysDoNotCollide(t *testing.T) {
	builder := newCountingBuilder()
	cache, _ := newTestCache(builder, 5*time.Minute)

	cache.WarDashboard(testWar(app.WarStateEnded), 1)
	cache.MemberDashboard(testMembers(), member.Query{Page: 1, PageSize: 1})

	if builder.warCalls != 1 || builder.memberCalls != 1 {
		t.Errorf("Expected one call per view, got war=%d member=%d", builder.warCalls, builder.memberCalls)
	}

	war := cache.WarDashboard(testWar(app.WarStateEnded), 1)
	if builder.warCalls != 1 {
		t.Errorf("Expected war dashboard from cache, got %d calls", builder.warCalls)
	}
	if war.ClanExp == nil || *war.ClanExp != 150 {
		t.Errorf("Expected cached final exp to survive decoding, got %v", war.ClanExp)
	}
}

func TestCachedDashboardService_ZeroTTLDisablesCaching(t *testing.T) {
	builder := newCountingBuilder()
	cache, _ := newTestCache(builder, 0)

	cache.WarDashboard(testWar(app.WarStateInWar), 2)
	cache.WarDashboard(testWar(app.WarStateInWar), 2)

	if builder.warCalls != 2 {
		t.Errorf("Expected every call to compute with zero TTL, got %d", builder.warCalls)
	}

	if stats := cache.GetCacheStats(); stats.TotalEntries != 0 {
		t.Errorf("Expected no stored entries, got %+v", stats)
	}
}

func TestCachedDashboardService_ClearAndPurge(t *testing.T) {
	builder := newCountingBuilder()
	cache, _ := newTestCache(builder, time.Minute)

	current := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return current }

	cache.WarDashboard(testWar(app.WarStateInWar), 1)
	current = current.Add(30 * time.Second)
	cache.WarDashboard(testWar(app.WarStateInWar), 2)
	current = current.Add(45 * time.Second)

	if removed := cache.PurgeExpired(); removed != 1 {
		t.Errorf("Expected 1 purged entry, got %d", removed)
	}

	if stats := cache.GetCacheStats(); stats.TotalEntries != 1 {
		t.Errorf("Expected 1 remaining entry, got %+v", stats)
	}

	cache.ClearCache()
	if stats := cache.GetCacheStats(); stats.TotalEntries != 0 {
		t.Errorf("Expected empty cache after clear, got %+v", stats)
	}
}

func TestDefaultViewCacheConfig(t *testing.T) {
	if DefaultViewCacheConfig().TTL != 5*time.Minute {
		t.Errorf("Expected default TTL of 5m, got %v", DefaultViewCacheConfig().TTL)
	}
}
