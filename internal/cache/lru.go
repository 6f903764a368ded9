// internal/cache/lru.go
//
// Bounded expiring cache for resolved secrets.
//
// A build pass resolves a handful of vault: references, but a long-lived
// preview process may resolve them repeatedly.  Entries carry their own
// deadline; Get never returns an expired value.  When the cache is full
// the least-recently-used entry is evicted first.  Callers provide their
// own locking (Get mutates recency).

package cache

import (
	"container/list"
	"time"
)

// LRU evicts least-recently-used entries beyond its capacity and expired
// entries on read.  Zero value is unusable; construct with New.
type LRU struct {
	cap  int
	ll   *list.List
	dict map[string]*list.Element
}

type entry struct {
	key string
	val any
	exp time.Time // zero means no expiry
}

// New returns an LRU with the given capacity.  Panics on cap < 1.
func New(capacity int) *LRU {
	if capacity < 1 {
		panic("cache: capacity must be ≥1")
	}
	return &LRU{
		cap:  capacity,
		ll:   list.New(),
		dict: make(map[string]*list.Element, capacity),
	}
}

// Get returns the live value for key, marking it MRU.  Expired entries are
// removed and reported as absent.
func (c *LRU) Get(key string) (any, bool) {
	ele, hit := c.dict[key]
	if !hit {
		return nil, false
	}
	ent := ele.Value.(entry)
	if !ent.exp.IsZero() && time.Now().After(ent.exp) {
		c.ll.Remove(ele)
		delete(c.dict, key)
		return nil, false
	}
	c.ll.MoveToFront(ele)
	return ent.val, true
}

// Add inserts or updates a value with a per-entry TTL.  ttl <= 0 stores
// the entry without an expiry.
func (c *LRU) Add(key string, val any, ttl time.Duration) {
	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}

	if ele, hit := c.dict[key]; hit {
		ele.Value = entry{key, val, exp}
		c.ll.MoveToFront(ele)
		return
	}
	ele := c.ll.PushFront(entry{key, val, exp})
	c.dict[key] = ele
	if c.ll.Len() > c.cap {
		last := c.ll.Back()
		c.ll.Remove(last)
		delete(c.dict, last.Value.(entry).key)
	}
}

// Len reports current size, expired entries included until read.
func (c *LRU) Len() int { return c.ll.Len() }
