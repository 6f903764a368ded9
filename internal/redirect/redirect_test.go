// internal/redirect/redirect_test.go
//
// Unit-tests for legacy search-path redirect generation.

package redirect

import (
	"strings"
	"testing"

	"github.com/chobbledotcom/chobble-facets/internal/facet"
	"github.com/chobbledotcom/chobble-facets/internal/item"
)

func TestGenerateMapsSearchToCategory(t *testing.T) {
	items := []item.Item{
		{Title: "Rose Cottage", Categories: []string{"Cottages"},
			Attributes: []item.RawAttribute{
				{Name: "Type", Value: "Cottage"},
				{Name: "Pet Friendly", Value: "Yes"},
			}},
	}
	rds := Generate("cottages", items)

	want := map[string]string{
		"/search/pet-friendly/yes/":              "/cottages/pet-friendly/yes/",
		"/search/type/cottage/":                  "/cottages/type/cottage/",
		"/search/pet-friendly/yes/type/cottage/": "/cottages/pet-friendly/yes/type/cottage/",
	}
	if len(rds) != len(want) {
		t.Fatalf("got %d redirects, want %d: %+v", len(rds), len(want), rds)
	}
	for _, r := range rds {
		if to, ok := want[r.From]; !ok || to != r.To {
			t.Errorf("unexpected redirect %q -> %q", r.From, r.To)
		}
	}
}

func TestGenerateSortedAndPrefixCovered(t *testing.T) {
	items := []item.Item{
		{Title: "Rose Cottage", Categories: []string{"Cottages"},
			Attributes: []item.RawAttribute{
				{Name: "Bedrooms", Value: "2"},
				{Name: "Type", Value: "Cottage"},
			}},
	}
	rds := Generate("cottages", items)

	// every proper prefix of the multi-pair path has its own redirect
	froms := make(map[string]struct{}, len(rds))
	for _, r := range rds {
		froms[r.From] = struct{}{}
	}
	if _, ok := froms["/search/bedrooms/2/"]; !ok {
		t.Error("prefix subset bedrooms/2 missing")
	}
	if _, ok := froms["/search/bedrooms/2/type/cottage/"]; !ok {
		t.Error("full path missing")
	}

	// deterministic ordering
	for i := 1; i < len(rds); i++ {
		if rds[i-1].From >= rds[i].From {
			t.Fatalf("redirects not sorted: %q before %q", rds[i-1].From, rds[i].From)
		}
	}
}

func TestGenerateEmptyCategory(t *testing.T) {
	items := []item.Item{
		{Title: "The Barn", Categories: []string{"Barns"},
			Attributes: []item.RawAttribute{{Name: "Type", Value: "Barn"}}},
	}
	if rds := Generate("cottages", items); len(rds) != 0 {
		t.Fatalf("redirects for empty category: %+v", rds)
	}
}

func TestFromCombinationsSkipsUnscoped(t *testing.T) {
	combos := []facet.Combination{
		{Path: "type/cottage", Count: 1}, // no CategoryURL
	}
	if rds := FromCombinations(combos); len(rds) != 0 {
		t.Fatalf("unscoped combination produced redirect: %+v", rds)
	}
}

func TestRedirectTargetsAreScoped(t *testing.T) {
	items := []item.Item{
		{Title: "Rose Cottage", Categories: []string{"Cottages"},
			Attributes: []item.RawAttribute{{Name: "Type", Value: "Cottage"}}},
	}
	for _, r := range Generate("cottages", items) {
		if !strings.HasPrefix(r.To, "/cottages/") {
			t.Errorf("target %q not category-scoped", r.To)
		}
		if !strings.HasPrefix(r.From, SearchBase) {
			t.Errorf("source %q not under %s", r.From, SearchBase)
		}
	}
}
