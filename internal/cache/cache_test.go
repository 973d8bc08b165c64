package cache

import (
	"bytes"
	"testing"
	"time"

	"github.com/ratiolab/ratiometer/internal/model"
)

func TestKey_Distinguishes(t *testing.T) {
	w := model.DefaultWeights()

	k1 := Key("some passage", w)
	k2 := Key("another passage", w)
	if k1 == k2 {
		t.Error("expected different keys for different texts")
	}

	w2 := w
	w2.EmotionalPenalty = 7
	k3 := Key("some passage", w2)
	if k1 == k3 {
		t.Error("expected different keys for different weights")
	}

	if Key("some passage", w) != k1 {
		t.Error("expected stable keys for identical input")
	}
}

func TestMemoryCache_RoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("expected miss for unknown key")
	}

	if err := c.Set("k", []byte("value"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	val, found := c.Get("k")
	if !found {
		t.Fatal("expected hit after set")
	}
	if !bytes.Equal(val, []byte("value")) {
		t.Errorf("expected 'value', got %q", val)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expected miss after delete")
	}
}

func TestMemoryCache_Clear(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	_ = c.Set("a", []byte("1"), time.Minute)
	_ = c.Set("b", []byte("2"), time.Minute)

	if err := c.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	if _, found := c.Get("a"); found {
		t.Error("expected miss after clear")
	}
}

func TestDiskCache_RoundTrip(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("expected miss for unknown key")
	}

	if err := c.Set("k", []byte("value"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	val, found := c.Get("k")
	if !found {
		t.Fatal("expected hit after set")
	}
	if !bytes.Equal(val, []byte("value")) {
		t.Errorf("expected 'value', got %q", val)
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	if err := c.Set("k", []byte("value"), -time.Second); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if _, found := c.Get("k"); found {
		t.Error("expected expired entry to miss")
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Minute, dir, time.Minute)

	if err := c.Set("k", []byte("value"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	// Simulate a fresh process: memory layer empty, disk layer populated
	fresh := NewLayeredCache(time.Minute, dir, time.Minute)
	val, found := fresh.Get("k")
	if !found {
		t.Fatal("expected disk hit in fresh layered cache")
	}
	if !bytes.Equal(val, []byte("value")) {
		t.Errorf("expected 'value', got %q", val)
	}

	// The hit should now also be served from memory
	if _, found := fresh.memory.Get("k"); !found {
		t.Error("expected disk hit to be promoted to memory")
	}
}
