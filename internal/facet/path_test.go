// internal/facet/path_test.go
//
// Unit-tests for the path codec.
//
// The round-trip law is the load-bearing invariant here: canonical paths
// become permanent URLs, so FromPath(ToPath(s)) must reproduce s exactly.
//
// Run: go test ./internal/facet -v

package facet

import (
	"reflect"
	"testing"
)

func TestToPathSortsKeys(t *testing.T) {
	s := FilterState{"type": "cottage", "bedrooms": "2"}
	if got, want := ToPath(s), "bedrooms/2/type/cottage"; got != want {
		t.Fatalf("ToPath = %q, want %q", got, want)
	}
}

func TestToPathEmpty(t *testing.T) {
	if got := ToPath(nil); got != "" {
		t.Fatalf("ToPath(nil) = %q, want empty", got)
	}
	if got := ToPath(FilterState{}); got != "" {
		t.Fatalf("ToPath(empty) = %q, want empty", got)
	}
}

func TestFromPath(t *testing.T) {
	cases := []struct {
		path string
		want FilterState
	}{
		{"", FilterState{}},
		{"/", FilterState{}},
		{"type/cottage", FilterState{"type": "cottage"}},
		{"bedrooms/2/type/cottage", FilterState{"bedrooms": "2", "type": "cottage"}},
		{"/type/cottage/", FilterState{"type": "cottage"}},
		// dangling key without a value is ignored
		{"type/cottage/orphan", FilterState{"type": "cottage"}},
	}
	for _, c := range cases {
		if got := FromPath(c.path); !reflect.DeepEqual(got, c.want) {
			t.Errorf("FromPath(%q) = %v, want %v", c.path, got, c.want)
		}
	}
}

func TestPathRoundTrip(t *testing.T) {
	states := []FilterState{
		{},
		{"size": "small"},
		{"bedrooms": "2", "type": "cottage"},
		{"a": "1", "b": "2", "c": "3", "pet-friendly": "yes"},
	}
	for _, s := range states {
		if got := FromPath(ToPath(s)); !reflect.DeepEqual(got, s) {
			t.Errorf("round trip failed for %v: got %v", s, got)
		}
	}
}
