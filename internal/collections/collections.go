// internal/collections/collections.go
//
// Build-pass assembly of the published collections.
//
// Context
// -------
// One build pass turns the current item snapshot into the four collections
// the page-generation layer consumes:
//
//   • filter pages        – one Combination per reachable filter state,
//   • category pages      – the same, scoped per category slug,
//   • filter attributes   – the catalog of filterable dimensions (global
//     and per category),
//   • filter redirects    – legacy /search/ paths mapped to scoped pages.
//
// Category scopes are independent of each other, so they fan out across an
// errgroup; each goroutine writes only its own result slot and the final
// maps are assembled after Wait, keeping the output deterministic.  The
// engine itself stays single-threaded per scope.

package collections

import (
	"context"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/chobbledotcom/chobble-facets/internal/facet"
	"github.com/chobbledotcom/chobble-facets/internal/item"
	"github.com/chobbledotcom/chobble-facets/internal/metrics"
	"github.com/chobbledotcom/chobble-facets/internal/redirect"
)

// Output is everything one build pass produces.
type Output struct {
	FilterPages        []facet.Combination            `json:"filterPages"`
	FilterAttributes   *facet.Catalog                 `json:"filterAttributes"`
	CategoryPages      map[string][]facet.Combination `json:"categoryFilterPages"`
	CategoryAttributes map[string]*facet.Catalog      `json:"categoryFilterAttributes"`
	Redirects          []redirect.Redirect            `json:"filterRedirects"`
}

// Builder holds the per-pass knobs.  The zero value builds the global
// scope with engine defaults and derives categories from the items.
type Builder struct {
	// MaxPairsPerItem caps per-item subset enumeration; zero means the
	// engine default.
	MaxPairsPerItem int

	// Categories lists category slugs to build scoped collections for.
	// Empty means every category any item belongs to.
	Categories []string

	// SearchBase is the legacy flat path redirects map away from; empty
	// means redirect.SearchBase.
	SearchBase string
}

// Build runs one full pass over the item snapshot.
func (b *Builder) Build(ctx context.Context, items []item.Item) (*Output, error) {
	cats := b.Categories
	if len(cats) == 0 {
		cats = deriveCategories(items)
	}

	out := &Output{
		FilterPages:        facet.GenerateWithLimit("", items, b.MaxPairsPerItem),
		FilterAttributes:   facet.BuildCatalog(items),
		CategoryPages:      make(map[string][]facet.Combination, len(cats)),
		CategoryAttributes: make(map[string]*facet.Catalog, len(cats)),
	}

	type scoped struct {
		pages []facet.Combination
		cat   *facet.Catalog
		rds   []redirect.Redirect
	}
	results := make([]scoped, len(cats))

	g, _ := errgroup.WithContext(ctx)
	for i, slug := range cats {
		g.Go(func() error {
			pages := facet.GenerateWithLimit(slug, items, b.MaxPairsPerItem)
			results[i] = scoped{
				pages: pages,
				cat:   facet.BuildCategoryCatalog(slug, items),
				rds:   redirect.FromCombinationsUnder(b.SearchBase, pages),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		metrics.BuildErrorsTotal.Inc()
		return nil, err
	}

	for i, slug := range cats {
		out.CategoryPages[slug] = results[i].pages
		out.CategoryAttributes[slug] = results[i].cat
		out.Redirects = append(out.Redirects, results[i].rds...)
	}
	// Two categories can legitimately claim the same legacy path; the
	// (from, to) sort keeps the winner deterministic across builds.
	sort.Slice(out.Redirects, func(i, j int) bool {
		if out.Redirects[i].From != out.Redirects[j].From {
			return out.Redirects[i].From < out.Redirects[j].From
		}
		return out.Redirects[i].To < out.Redirects[j].To
	})
	out.Redirects = dedupeRedirects(out.Redirects)

	combos := len(out.FilterPages)
	for _, pages := range out.CategoryPages {
		combos += len(pages)
	}

	metrics.ItemsLoadedTotal.Add(float64(len(items)))
	metrics.CombinationsGeneratedTotal.Add(float64(combos))
	metrics.RedirectsGeneratedTotal.Add(float64(len(out.Redirects)))
	metrics.LastBuildItems.Set(float64(len(items)))
	metrics.LastBuildCombinations.Set(float64(combos))

	zap.S().Infow("collections built",
		"items", len(items),
		"categories", len(cats),
		"combinations", combos,
		"redirects", len(out.Redirects),
	)
	return out, nil
}

// dedupeRedirects keeps the first redirect for each source path; input
// must already be sorted by (from, to).
func dedupeRedirects(rds []redirect.Redirect) []redirect.Redirect {
	out := rds[:0]
	for _, r := range rds {
		if len(out) > 0 && out[len(out)-1].From == r.From {
			continue
		}
		out = append(out, r)
	}
	return out
}

// deriveCategories returns the sorted union of every category slug the
// items belong to.
func deriveCategories(items []item.Item) []string {
	set := make(map[string]struct{})
	for _, it := range items {
		for _, s := range it.CategorySlugs() {
			set[s] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
