package querycache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	type row struct {
		Name string `json:"name"`
	}

	if ok, err := c.Get(ctx, "k", &row{}); err != nil || ok {
		t.Fatalf("empty cache should miss, got ok=%v err=%v", ok, err)
	}

	if err := c.Set(ctx, "k", []row{{Name: "a"}, {Name: "b"}}, DefaultTTL); err != nil {
		t.Fatal(err)
	}

	var got []row
	ok, err := c.Get(ctx, "k", &got)
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if len(got) != 2 || got[0].Name != "a" {
		t.Fatalf("wrong value back: %+v", got)
	}
}

func TestMemoryCacheInvalidate(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	c.Set(ctx, "a", 1, 0)
	c.Set(ctx, "b", 2, 0)

	if err := c.Invalidate(ctx, "a", "missing"); err != nil {
		t.Fatal(err)
	}

	var n int
	if ok, _ := c.Get(ctx, "a", &n); ok {
		t.Fatal("invalidated key should miss")
	}
	if ok, _ := c.Get(ctx, "b", &n); !ok || n != 2 {
		t.Fatal("untouched key should survive")
	}
}

func TestMemoryCacheTTL(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	c.Set(ctx, "k", 1, time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	var n int
	if ok, _ := c.Get(ctx, "k", &n); ok {
		t.Fatal("expired entry should miss")
	}
}

func TestTimeSlotKeysCoverBothListings(t *testing.T) {
	keys := TimeSlotKeysFor("2024-06-01")

	want := map[string]bool{
		TimeSlotsDayKey("2024-06-01"):   false,
		AvailableSlotsKey("2024-06-01"): false,
		AvailableSlotsKey(""):           false,
	}
	for _, k := range keys {
		want[k] = true
	}
	for k, seen := range want {
		if !seen {
			t.Errorf("slot mutation should invalidate %q", k)
		}
	}
}
