package worldbank

import (
	"slices"
	"strings"
	"sync"

	gocache "github.com/patrickmn/go-cache"

	"golang.org/x/exp/maps"
)

// The indicator catalog is large and effectively static within a process
// lifetime, and observation mapping re-resolves indicators by id, so the
// indicator lookups (and only those) are memoized. The store is injectable
// so callers control its lifecycle.
type indicatorCacheManager struct {
	store *gocache.Cache
	mu    sync.RWMutex
}

var indicatorCache = indicatorCacheManager{
	store: gocache.New(gocache.NoExpiration, 0),
}

// SetIndicatorCache replaces the memoization store for [GetIndicator] and
// [GetIndicators]. Pass nil to disable memoization.
func SetIndicatorCache(store *gocache.Cache) {
	indicatorCache.mu.Lock()
	defer indicatorCache.mu.Unlock()
	indicatorCache.store = store
}

func getIndicatorCache() *gocache.Cache {
	indicatorCache.mu.RLock()
	defer indicatorCache.mu.RUnlock()
	return indicatorCache.store
}

// cacheKey serializes the full argument tuple of a lookup. Two calls with
// the same path and options always produce the same key.
func cacheKey(path string, opts Options) string {
	keys := maps.Keys(opts)
	slices.Sort(keys)

	var b strings.Builder
	b.WriteString(path)
	for _, key := range keys {
		b.WriteByte('|')
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(opts[key])
	}
	return b.String()
}
