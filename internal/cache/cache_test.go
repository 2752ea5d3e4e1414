// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cache

import (
	"errors"
	"sync"
	"testing"
)

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](10)
	if _, ok := c.Get("missing"); ok {
		t.Error("Get on empty cache returned ok")
	}
	c.Set("a", 1)
	c.Set("a", 2)
	if v, ok := c.Get("a"); !ok || v != 2 {
		t.Errorf("Get(a) = %d, %v, want 2, true", v, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](2)
	c.Set(1, 1)
	c.Set(2, 2)
	c.Get(1) // 2 is now the oldest
	c.Set(3, 3)

	if _, ok := c.Get(2); ok {
		t.Error("entry 2 should have been evicted")
	}
	for _, k := range []int{1, 3} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("entry %d should still be cached", k)
		}
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestCacheUnlimited(t *testing.T) {
	c := New[int, int](0)
	for i := range 1000 {
		c.Set(i, i)
	}
	if c.Len() != 1000 {
		t.Errorf("Len() = %d, want 1000", c.Len())
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[string, int](4)
	calls := 0
	create := func() (int, error) {
		calls++
		return 7, nil
	}
	for range 3 {
		v, err := c.GetOrCreate("k", create)
		if err != nil || v != 7 {
			t.Fatalf("GetOrCreate = %d, %v, want 7, nil", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}

	errBoom := errors.New("boom")
	if _, err := c.GetOrCreate("bad", func() (int, error) { return 0, errBoom }); !errors.Is(err, errBoom) {
		t.Errorf("GetOrCreate error = %v, want %v", err, errBoom)
	}
	if _, ok := c.Get("bad"); ok {
		t.Error("failed create should not be cached")
	}

	s := c.Stats()
	if s.Hits != 2 || s.Misses != 3 {
		t.Errorf("Stats() hits=%d misses=%d, want 2 and 3", s.Hits, s.Misses)
	}
}

func TestCacheDeleteClear(t *testing.T) {
	c := New[int, string](4)
	c.Set(1, "a")
	c.Set(2, "b")
	if !c.Delete(1) || c.Delete(1) {
		t.Error("Delete(1) should succeed once")
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
	c.Set(3, "c")
	if v, _ := c.Get(3); v != "c" {
		t.Errorf("Get(3) after Clear = %q, want c", v)
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := New[int, int](16)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				c.Set(g*1000+i, i)
				c.Get(g*1000 + i/2)
			}
		}()
	}
	wg.Wait()
	if c.Len() > 16 {
		t.Errorf("Len() = %d, exceeds capacity 16", c.Len())
	}
}
