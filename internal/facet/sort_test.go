// internal/facet/sort_test.go
//
// Unit-tests for sort-mode application.

package facet

import (
	"testing"

	"github.com/chobbledotcom/chobble-facets/internal/item"
)

func titles(items []item.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Title
	}
	return out
}

func TestApplySortByName(t *testing.T) {
	items := []item.Item{{Title: "banana"}, {Title: "Apple"}, {Title: "cherry"}}

	asc := titles(Apply(items, SortNameAsc))
	if asc[0] != "Apple" || asc[1] != "banana" || asc[2] != "cherry" {
		t.Errorf("name-asc order = %v", asc)
	}

	desc := titles(Apply(items, SortNameDesc))
	if desc[0] != "cherry" || desc[2] != "Apple" {
		t.Errorf("name-desc order = %v", desc)
	}

	// input must not be mutated
	if items[0].Title != "banana" {
		t.Error("Apply mutated its input")
	}
}

func TestApplySortByPrice(t *testing.T) {
	items := []item.Item{
		{Title: "Mid", Price: "£450"},
		{Title: "Cheap", Price: "from $99.50"},
		{Title: "Dear", Price: "£1,200"},
		{Title: "Unpriced"},
	}

	asc := titles(Apply(items, SortPriceAsc))
	want := []string{"Cheap", "Mid", "Dear", "Unpriced"}
	for i := range want {
		if asc[i] != want[i] {
			t.Fatalf("price-asc order = %v, want %v", asc, want)
		}
	}

	desc := titles(Apply(items, SortPriceDesc))
	if desc[0] != "Dear" || desc[3] != "Unpriced" {
		t.Errorf("price-desc order = %v", desc)
	}
}

func TestApplyUnknownModeKeepsInputOrder(t *testing.T) {
	items := []item.Item{{Title: "B"}, {Title: "A"}}
	for _, mode := range []string{SortDefault, "", "bogus"} {
		got := titles(Apply(items, mode))
		if got[0] != "B" || got[1] != "A" {
			t.Errorf("mode %q reordered items: %v", mode, got)
		}
	}
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"£450", 450, true},
		{"from $1,200.50 per week", 1200.50, true},
		{"POA", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := parsePrice(c.in)
		if ok != c.ok || got != c.want {
			t.Errorf("parsePrice(%q) = (%v, %v), want (%v, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}
