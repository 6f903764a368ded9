// internal/preview/rules.go
//
// Redirect-rule cache and middleware for the preview server.
//
// Context
// -------
// A production deploy turns filter-redirects.json into real HTTP redirect
// rules at the edge.  The preview server replays the same rules locally so
// a developer can click a legacy /search/ link and land on the scoped
// page, exactly as a visitor would.  Rules live in an in-memory map with
// TTL state, reloaded from the generated file when stale — re-running a
// build is immediately visible without restarting the preview.
//
// Workflow
// --------
//   1. cmd/preview constructs RuleCache via preview.NewRuleCache().
//   2. The server wires preview.Middleware(cache) early in the chain.
//   3. Middleware answers 301 on rule hit; otherwise falls through to the
//      static file server.

package preview

import (
	"encoding/json"
	"net/http"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/chobbledotcom/chobble-facets/internal/redirect"
)

// -----------------------------------------------------------------------------
// RuleCache
// -----------------------------------------------------------------------------

// RuleCache stores from→to pairs plus TTL state.  Zero value is unusable;
// construct with NewRuleCache.
type RuleCache struct {
	mu       sync.RWMutex
	data     map[string]string
	loadedAt time.Time
	ttl      time.Duration
	path     string
}

// NewRuleCache returns a ready cache reading rules from the given
// filter-redirects.json path with the specified TTL.
func NewRuleCache(path string, ttl time.Duration) *RuleCache {
	return &RuleCache{data: map[string]string{}, path: path, ttl: ttl}
}

// Load refreshes all rules from the redirects file.
func (c *RuleCache) Load() error {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		return err
	}
	var rds []redirect.Redirect
	if err := json.Unmarshal(raw, &rds); err != nil {
		return err
	}

	fresh := make(map[string]string, len(rds))
	for _, r := range rds {
		fresh[r.From] = r.To
	}

	c.mu.Lock()
	c.data = fresh
	c.loadedAt = time.Now()
	c.mu.Unlock()

	zap.L().Debug("redirect rule cache load",
		zap.Int("count", len(fresh)))
	return nil
}

// store seeds a single rule; used by tests.
func (c *RuleCache) store(from, to string) {
	c.mu.Lock()
	c.data[from] = to
	c.loadedAt = time.Now()
	c.mu.Unlock()
}

func (c *RuleCache) lookup(path string) (string, bool) {
	c.mu.RLock()
	target, ok := c.data[path]
	stale := time.Since(c.loadedAt) > c.ttl
	c.mu.RUnlock()
	return target, ok && !stale
}

func (c *RuleCache) needsRefresh() bool {
	c.mu.RLock()
	stale := time.Since(c.loadedAt) > c.ttl
	c.mu.RUnlock()
	return stale
}

// -----------------------------------------------------------------------------
// Middleware factory
// -----------------------------------------------------------------------------

// Middleware returns a chi middleware that answers legacy search paths
// with a permanent redirect to their category-scoped page.
func Middleware(cache *RuleCache) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			if cache.needsRefresh() {
				if err := cache.Load(); err != nil {
					// No rules yet (e.g. first build still running) is fine;
					// the static server answers 404 until they exist.
					zap.L().Warn("redirect rule reload failed", zap.Error(err))
				}
			}

			if target, ok := cache.lookup(r.URL.Path); ok {
				zap.L().Debug("legacy search redirect",
					zap.String("from", r.URL.Path),
					zap.String("to", target))
				http.Redirect(w, r, target, http.StatusMovedPermanently)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
