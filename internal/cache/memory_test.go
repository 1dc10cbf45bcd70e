package cache

import "testing"

func TestMemoryCache_RoundTrip(t *testing.T) {
	c := NewMemoryCache()

	if _, ok := c.Get("missing"); ok {
		t.Error("unexpected hit on an empty cache")
	}

	c.Set("k", "v")
	got, ok := c.Get("k")
	if !ok || got != "v" {
		t.Errorf("got (%q, %v), want (\"v\", true)", got, ok)
	}

	c.Flush()
	if _, ok := c.Get("k"); ok {
		t.Error("flush must evict all entries")
	}
}

func TestFileKey_VariantsAreDistinct(t *testing.T) {
	raw := FileKey("events/a.txt", false)
	folded := FileKey("events/a.txt", true)
	if raw == folded {
		t.Errorf("raw and folded keys must differ, both %q", raw)
	}
	if FileKey("events/a.txt", true) != folded {
		t.Error("keys must be stable")
	}
}
