package vocab

import (
	"context"
	"testing"
)

func TestCache_GetLoadsOnceAndCaches(t *testing.T) {
	calls := 0
	c := NewCache(func(ctx context.Context, id string) (*Entry, error) {
		calls++
		return &Entry{ID: id, Term: "haus"}, nil
	})

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		e, err := c.Get(ctx, "e1")
		if err != nil {
			t.Fatalf("Get() error: %v", err)
		}
		if e == nil || e.Term != "haus" {
			t.Fatalf("Get() = %+v, want term haus", e)
		}
	}
	if calls != 1 {
		t.Errorf("loader called %d times, want 1", calls)
	}
}

func TestCache_MissNotCached(t *testing.T) {
	calls := 0
	c := NewCache(func(ctx context.Context, id string) (*Entry, error) {
		calls++
		return nil, nil
	})

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		e, err := c.Get(ctx, "missing")
		if err != nil || e != nil {
			t.Fatalf("Get() = (%v, %v), want (nil, nil)", e, err)
		}
	}
	if calls != 2 {
		t.Errorf("loader called %d times, want 2 (misses are not cached)", calls)
	}
}

func TestCache_InvalidateReloads(t *testing.T) {
	version := "old"
	c := NewCache(func(ctx context.Context, id string) (*Entry, error) {
		return &Entry{ID: id, Definition: version}, nil
	})

	ctx := context.Background()
	if e, _ := c.Get(ctx, "e1"); e.Definition != "old" {
		t.Fatalf("Definition = %s, want old", e.Definition)
	}

	version = "new"
	if e, _ := c.Get(ctx, "e1"); e.Definition != "old" {
		t.Fatal("expected cached entry before invalidation")
	}

	c.Invalidate("e1")
	if e, _ := c.Get(ctx, "e1"); e.Definition != "new" {
		t.Fatal("expected reloaded entry after invalidation")
	}
}

func TestCache_InvalidateAll(t *testing.T) {
	calls := map[string]int{}
	c := NewCache(func(ctx context.Context, id string) (*Entry, error) {
		calls[id]++
		return &Entry{ID: id}, nil
	})

	ctx := context.Background()
	c.Get(ctx, "a")
	c.Get(ctx, "b")
	c.InvalidateAll()
	c.Get(ctx, "a")
	c.Get(ctx, "b")

	if calls["a"] != 2 || calls["b"] != 2 {
		t.Errorf("loader calls = %v, want 2 each", calls)
	}
}

func TestEntry_Enriched(t *testing.T) {
	e := &Entry{ID: "e1", Term: "haus", Translation: "house"}
	if e.Enriched() {
		t.Error("bare entry should not be enriched")
	}
	e.Mnemonic = "sounds like house"
	if !e.Enriched() {
		t.Error("entry with a mnemonic should be enriched")
	}
}
