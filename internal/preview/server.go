// internal/preview/server.go
//
// Local preview of the generated site.
//
// The router is deliberately tiny: redirect replay first, then security
// headers, a Prometheus endpoint for the build counters, and a plain file
// server over the output directory.  There is no query-time filtering
// anywhere — every page it serves was materialised by a build pass.

package preview

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chobbledotcom/chobble-facets/internal/collections"
	"github.com/chobbledotcom/chobble-facets/internal/config"
	"github.com/chobbledotcom/chobble-facets/internal/middleware"
	"github.com/chobbledotcom/chobble-facets/internal/server"
)

// RuleTTL is how long redirect rules are trusted before re-reading the
// generated file; short, so a fresh build shows up promptly.
const RuleTTL = 5 * time.Second

// New builds the preview *http.Server for the given config.
func New(cfg *config.Config) *http.Server {
	rulesPath := filepath.Join(cfg.Build.OutputDir, "collections", collections.FilterRedirectsFile)
	cache := NewRuleCache(rulesPath, RuleTTL)

	r := chi.NewRouter()

	// Redirect replay must run before the file server gets a shot.
	r.Use(Middleware(cache))
	r.Use(middleware.Security)

	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/*", http.FileServer(http.Dir(cfg.Build.OutputDir)))

	return server.New(cfg.Preview.ListenAddr, r)
}
