// internal/ui/ui.go
//
// Filter-widget data assembly.
//
// Context
// -------
// Each generated page renders a filter widget from one Data value: the
// available option groups with counts of surviving choices, the active
// filter chips with their “remove” URLs, and the fixed sort choices.  The
// builder never invents a link — an option only survives when its target
// path appears in the caller-supplied valid-combination list, so a widget
// can never point at a page that was not materialised.
//
// Two URL flavours exist for the same data:
//
//   • Build        – the flat search page; filter state lives in the URL
//     fragment (baseURL#type/cottage) and is applied client-side.
//   • BuildScoped  – category pages; filter state is a real path under the
//     category base (base/type/cottage/#content), the anchor scrolling the
//     visitor past the header to the results.
//
// Notes
// -----
// • A group with fewer than two surviving options is dropped entirely; a
//   single-choice filter carries no useful affordance.
// • Sort options are synthetic and fixed; they never appear as active
//   filter chips.

package ui

import (
	"github.com/chobbledotcom/chobble-facets/internal/facet"
)

// Option is one selectable value inside a group.
type Option struct {
	Value  string `json:"value"`
	Label  string `json:"label"`
	URL    string `json:"url"`
	Active bool   `json:"active"`
}

// Group is one filter dimension (or the synthetic sort group) with its
// selectable options.
type Group struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Options []Option `json:"options"`
}

// ActiveFilter is one applied filter chip.  Key and Value carry display
// labels, not canonical slugs.
type ActiveFilter struct {
	Key       string `json:"key"`
	Value     string `json:"value"`
	RemoveURL string `json:"removeUrl"`
}

// Data is everything one page's filter widget needs.
type Data struct {
	HasFilters       bool           `json:"hasFilters"`
	HasActiveFilters bool           `json:"hasActiveFilters"`
	ActiveFilters    []ActiveFilter `json:"activeFilters,omitempty"`
	ClearAllURL      string         `json:"clearAllUrl,omitempty"`
	Groups           []Group        `json:"groups,omitempty"`
}

// SortGroupName is the Name of the synthetic sort group.
const SortGroupName = "sort"

// sortLabels maps each sort mode to its widget label, presentation order
// given by facet.SortModes.
var sortLabels = map[string]string{
	facet.SortDefault:   "Featured",
	facet.SortNameAsc:   "Name (A–Z)",
	facet.SortNameDesc:  "Name (Z–A)",
	facet.SortPriceAsc:  "Price (low to high)",
	facet.SortPriceDesc: "Price (high to low)",
}

// Build assembles widget data for the flat search page.  Filter state is
// carried in the URL fragment appended to baseURL.
func Build(cat *facet.Catalog, current facet.FilterState, validPaths []string, baseURL string, itemCount int) Data {
	return build(cat, current, validPaths, itemCount, fragmentURLs{base: baseURL})
}

// BuildScoped assembles widget data for a category page.  Filter state is
// a real path under baseURL, always anchored to #content.
func BuildScoped(cat *facet.Catalog, current facet.FilterState, validPaths []string, baseURL string, itemCount int) Data {
	return build(cat, current, validPaths, itemCount, scopedURLs{base: baseURL})
}

func build(cat *facet.Catalog, current facet.FilterState, validPaths []string, itemCount int, urls urlScheme) Data {
	if len(cat.Attributes) == 0 {
		return Data{}
	}

	valid := make(map[string]struct{}, len(validPaths))
	for _, p := range validPaths {
		valid[p] = struct{}{}
	}

	d := Data{
		HasFilters:  true,
		ClearAllURL: urls.page(""),
	}

	if itemCount > 1 {
		d.Groups = append(d.Groups, sortGroup(current, urls))
	}

	for _, key := range cat.Keys() {
		g := Group{Name: key, Label: cat.Display.KeyLabel(key)}
		for _, value := range cat.Attributes[key] {
			path := facet.ToPath(current.With(key, value))
			if _, ok := valid[path]; !ok {
				continue
			}
			g.Options = append(g.Options, Option{
				Value:  value,
				Label:  cat.Display.ValueLabel(value),
				URL:    urls.page(path),
				Active: current[key] == value,
			})
		}
		if len(g.Options) < 2 {
			continue
		}
		d.Groups = append(d.Groups, g)
	}

	for _, key := range current.SortedKeys() {
		d.ActiveFilters = append(d.ActiveFilters, ActiveFilter{
			Key:       cat.Display.KeyLabel(key),
			Value:     cat.Display.ValueLabel(current[key]),
			RemoveURL: urls.page(facet.ToPath(current.Without(key))),
		})
	}
	d.HasActiveFilters = len(d.ActiveFilters) > 0

	return d
}

// sortGroup builds the fixed sort options against the page's own path so a
// choice keeps the current filter state.
func sortGroup(current facet.FilterState, urls urlScheme) Group {
	g := Group{Name: SortGroupName, Label: "Sort by"}
	path := facet.ToPath(current)
	for _, mode := range facet.SortModes {
		g.Options = append(g.Options, Option{
			Value:  mode,
			Label:  sortLabels[mode],
			URL:    urls.sort(path, mode),
			Active: mode == facet.SortDefault,
		})
	}
	return g
}
