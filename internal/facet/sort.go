// internal/facet/sort.go
//
// Sort modes for filter pages.
//
// The filter widget always offers the same fixed sort options; they are
// not derived from the catalog.  Apply produces the ordered item slice the
// page generator renders for a given mode.  Prices are authored as free
// text (“£450”, “from $1,200.50”), so the numeric comparison works on the
// first monetary amount found in the string; items without a parseable
// price sort after those with one.

package facet

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/chobbledotcom/chobble-facets/internal/item"
)

// Fixed sort modes, in the order the filter widget presents them.
const (
	SortDefault   = "default"
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

// SortModes lists every mode in presentation order.
var SortModes = []string{SortDefault, SortNameAsc, SortNameDesc, SortPriceAsc, SortPriceDesc}

var reAmount = regexp.MustCompile(`(\d+(?:,\d{3})*(?:\.\d{1,2})?)`)

// Apply returns a copy of items ordered by mode.  Unknown modes and
// SortDefault preserve input order.  All sorts are stable.
func Apply(items []item.Item, mode string) []item.Item {
	out := make([]item.Item, len(items))
	copy(out, items)

	switch strings.ToLower(strings.TrimSpace(mode)) {
	case SortNameAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
		})
	case SortNameDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Title) > strings.ToLower(out[j].Title)
		})
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return lessByPrice(out[i], out[j], false)
		})
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return lessByPrice(out[i], out[j], true)
		})
	}
	return out
}

func lessByPrice(a, b item.Item, desc bool) bool {
	pa, oka := parsePrice(a.Price)
	pb, okb := parsePrice(b.Price)
	switch {
	case oka && okb:
		if desc {
			return pa > pb
		}
		return pa < pb
	case oka:
		return true // priced items sort before unpriced either way
	default:
		return false
	}
}

// parsePrice extracts the first monetary amount from a free-text price.
func parsePrice(raw string) (float64, bool) {
	m := reAmount.FindStringSubmatch(raw)
	if m == nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
