// internal/facet/path.go
//
// Path codec: FilterState ⇄ URL path fragment.
//
// Context
// -------
// Every reachable combination is addressed by a canonical path fragment of
// alternating key/value segments, keys in lexicographic order:
//
//	{type: cottage, bedrooms: 2}  ⇄  "bedrooms/2/type/cottage"
//
// Round-trip law: FromPath(ToPath(s)) == s for any state whose keys and
// values contain no “/”, which canonical slugs guarantee (lowercase
// alphanumerics and dashes only).

package facet

import (
	"strings"
)

// ToPath renders the state as its canonical path fragment.  An empty or
// nil state yields the empty string.
func ToPath(s FilterState) string {
	if len(s) == 0 {
		return ""
	}
	keys := s.SortedKeys()
	segs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		segs = append(segs, k, s[k])
	}
	return strings.Join(segs, "/")
}

// FromPath parses a canonical path fragment back into a FilterState.  An
// empty path yields an empty state.  A dangling segment without a value is
// ignored.
func FromPath(path string) FilterState {
	state := FilterState{}
	path = strings.Trim(path, "/")
	if path == "" {
		return state
	}
	segs := strings.Split(path, "/")
	for i := 0; i+1 < len(segs); i += 2 {
		state[segs[i]] = segs[i+1]
	}
	return state
}
