package calendar

import (
	"context"
	"errors"
	"testing"
	"time"
)

type countingProvider struct {
	calls int
	err   error
}

func (p *countingProvider) AvailableSlots(ctx context.Context, date string) ([]string, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return []string{"10:00"}, nil
}

func TestStaticProvider(t *testing.T) {
	p := NewStaticProvider()

	slots, err := p.AvailableSlots(context.Background(), "2026-09-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"09:00", "11:00", "14:00", "16:00"}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d", len(want), len(slots))
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slot %d: expected %s, got %s", i, want[i], slots[i])
		}
	}
}

func TestCachedProvider(t *testing.T) {
	t.Run("Caches Per Date", func(t *testing.T) {
		inner := &countingProvider{}
		p := NewCachedProvider(inner, 8, time.Minute)

		for i := 0; i < 3; i++ {
			if _, err := p.AvailableSlots(context.Background(), "2026-09-02"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if inner.calls != 1 {
			t.Errorf("expected 1 backend call, got %d", inner.calls)
		}

		if _, err := p.AvailableSlots(context.Background(), "2026-09-03"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inner.calls != 2 {
			t.Errorf("expected 2 backend calls after new date, got %d", inner.calls)
		}
	})

	t.Run("Errors Are Not Cached", func(t *testing.T) {
		inner := &countingProvider{err: errors.New("backend down")}
		p := NewCachedProvider(inner, 8, time.Minute)

		if _, err := p.AvailableSlots(context.Background(), "2026-09-02"); err == nil {
			t.Fatal("expected error")
		}

		inner.err = nil
		slots, err := p.AvailableSlots(context.Background(), "2026-09-02")
		if err != nil {
			t.Fatalf("unexpected error after recovery: %v", err)
		}
		if len(slots) != 1 {
			t.Errorf("expected recovered slots, got %v", slots)
		}
	})
}
