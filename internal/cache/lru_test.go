// internal/cache/lru_test.go
//
// Unit-tests for the bounded expiring cache.

package cache

import (
	"testing"
	"time"
)

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := New(2)
	c.Add("a", 1, 0)
	c.Add("b", 2, 0)

	// touch "a" so "b" becomes the eviction candidate
	if _, ok := c.Get("a"); !ok {
		t.Fatal("a missing before eviction")
	}
	c.Add("c", 3, 0)

	if _, ok := c.Get("b"); ok {
		t.Error("b survived past capacity")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("recently used a was evicted")
	}
	if c.Len() != 2 {
		t.Errorf("len = %d, want 2", c.Len())
	}
}

func TestExpiredEntriesAreAbsent(t *testing.T) {
	c := New(4)
	c.Add("secret", "s3cr3t", time.Nanosecond)
	time.Sleep(time.Millisecond)

	if _, ok := c.Get("secret"); ok {
		t.Fatal("expired entry returned")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry not removed on read: len = %d", c.Len())
	}
}

func TestAddUpdatesExistingKey(t *testing.T) {
	c := New(2)
	c.Add("k", "old", 0)
	c.Add("k", "new", 0)

	v, ok := c.Get("k")
	if !ok || v.(string) != "new" {
		t.Fatalf("Get = %v, %v; want new", v, ok)
	}
	if c.Len() != 1 {
		t.Errorf("len = %d, want 1", c.Len())
	}
}
