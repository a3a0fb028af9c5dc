package calendar

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// SlotProvider looks up free meeting slots for a calendar date
// ("YYYY-MM-DD"). A real calendar backend can replace the static
// implementation without touching the scheduling flow.
type SlotProvider interface {
	AvailableSlots(ctx context.Context, date string) ([]string, error)
}

// defaultSlots is the placeholder availability returned for every date.
var defaultSlots = []string{"09:00", "11:00", "14:00", "16:00"}

// StaticProvider returns a fixed slot list regardless of date.
type StaticProvider struct {
	slots []string
}

// NewStaticProvider creates a provider with the default placeholder slots.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{slots: defaultSlots}
}

// AvailableSlots implements SlotProvider.
func (p *StaticProvider) AvailableSlots(ctx context.Context, date string) ([]string, error) {
	out := make([]string, len(p.slots))
	copy(out, p.slots)
	return out, nil
}

// CachedProvider wraps another SlotProvider with an expiring per-date cache,
// so repeated turns about the same day do not hit the backend again.
type CachedProvider struct {
	inner SlotProvider
	cache *expirable.LRU[string, []string]
}

// NewCachedProvider wraps inner with an LRU of the given size and TTL.
func NewCachedProvider(inner SlotProvider, size int, ttl time.Duration) *CachedProvider {
	if size <= 0 {
		size = 64
	}
	return &CachedProvider{
		inner: inner,
		cache: expirable.NewLRU[string, []string](size, nil, ttl),
	}
}

// AvailableSlots implements SlotProvider. Lookup errors are not cached.
func (p *CachedProvider) AvailableSlots(ctx context.Context, date string) ([]string, error) {
	if slots, ok := p.cache.Get(date); ok {
		return slots, nil
	}

	slots, err := p.inner.AvailableSlots(ctx, date)
	if err != nil {
		return nil, err
	}

	p.cache.Add(date, slots)
	return slots, nil
}
