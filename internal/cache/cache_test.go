package cache

import (
	"fmt"
	"testing"
	"time"
)

func TestGetMiss(t *testing.T) {
	c := New(Config{})
	if _, ok := c.Get("absent"); ok {
		t.Error("Get on empty cache reported a hit")
	}
}

func TestSetAndGet(t *testing.T) {
	c := New(Config{MaxEntries: 4, TTL: time.Minute})

	c.Set("a", 1)
	c.Set("b", "two")

	if v, ok := c.Get("a"); !ok || v.(int) != 1 {
		t.Errorf("Get(a) = %v, %v; want 1, true", v, ok)
	}
	if v, ok := c.Get("b"); !ok || v.(string) != "two" {
		t.Errorf("Get(b) = %v, %v; want two, true", v, ok)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestOverwriteSameKey(t *testing.T) {
	c := New(Config{MaxEntries: 2, TTL: time.Minute})

	c.Set("k", 1)
	c.Set("k", 2)

	if v, _ := c.Get("k"); v.(int) != 2 {
		t.Errorf("Get(k) = %v, want the overwritten value 2", v)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d after overwriting one key, want 1", c.Len())
	}
}

func TestTTLExpiry(t *testing.T) {
	c := New(Config{MaxEntries: 4, TTL: 10 * time.Millisecond})

	c.Set("k", "v")
	if _, ok := c.Get("k"); !ok {
		t.Fatal("entry missing immediately after Set")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Error("entry survived past its TTL")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d after lazy expiry, want 0", c.Len())
	}
}

func TestCapacityEviction(t *testing.T) {
	c := New(Config{MaxEntries: 3, TTL: time.Minute})

	// Oldest entry goes first when the cache is full
	for i := 0; i < 3; i++ {
		c.Set(fmt.Sprintf("k%d", i), i)
		time.Sleep(time.Millisecond)
	}
	c.Set("k3", 3)

	if c.Len() != 3 {
		t.Errorf("Len() = %d after eviction, want 3", c.Len())
	}
	if _, ok := c.Get("k0"); ok {
		t.Error("oldest entry k0 survived eviction")
	}
	for i := 1; i <= 3; i++ {
		if _, ok := c.Get(fmt.Sprintf("k%d", i)); !ok {
			t.Errorf("entry k%d evicted, want it retained", i)
		}
	}
}

func TestDefaults(t *testing.T) {
	c := New(Config{})
	for i := 0; i < 128; i++ {
		c.Set(fmt.Sprintf("k%d", i), i)
	}
	if c.Len() != 128 {
		t.Errorf("Len() = %d at default capacity, want 128", c.Len())
	}
	c.Set("overflow", true)
	if c.Len() != 128 {
		t.Errorf("Len() = %d after overflow, want capacity held at 128", c.Len())
	}
}
