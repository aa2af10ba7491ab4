package querycache

import (
	"context"
	"time"
)

// Cache backs the day-scoped list queries. The contract mirrors the
// original UI's query cache: reads may be served from a prior result,
// and every successful mutation invalidates the keys it makes stale.
// Implementations never own correctness: a miss or a cache failure just
// falls through to the store.
type Cache interface {
	// Get unmarshals the cached value for key into dest and reports
	// whether it was present.
	Get(ctx context.Context, key string, dest any) (bool, error)

	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	Invalidate(ctx context.Context, keys ...string) error
}

const DefaultTTL = 30 * time.Second

// Key builders. Date is the "2006-01-02" form, or "all" for the
// unfiltered public listing.

func TimeSlotsDayKey(date string) string {
	return "time_slots:day:" + date
}

func AvailableSlotsKey(date string) string {
	if date == "" {
		date = "all"
	}
	return "time_slots:available:" + date
}

func AppointmentsDayKey(date string) string {
	return "appointments:day:" + date
}

// TimeSlotKeysFor lists every slot query a mutation on the given date
// makes stale.
func TimeSlotKeysFor(date string) []string {
	return []string{
		TimeSlotsDayKey(date),
		AvailableSlotsKey(date),
		AvailableSlotsKey(""),
	}
}
