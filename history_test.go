package tracker

import (
	"slices"
	"testing"
	"time"
)

func day(d int) time.Time { return time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC) }

func TestHistory_Append(t *testing.T) {
	var h History
	h.Append(day(3), 30).Append(day(1), 10).Append(day(2), 20).Append(day(2), 22)

	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}
	if got, want := h.Prices(), []float64{10, 22, 30}; !slices.Equal(got, want) {
		t.Errorf("Prices() = %v, want %v", got, want)
	}
	latest, ok := h.Latest()
	if !ok || !latest.Time.Equal(day(3)) || latest.Price != 30 {
		t.Errorf("Latest() = %v, %v, want day 3 at 30", latest, ok)
	}

	var days []int
	for ts := range h.Values() {
		days = append(days, ts.Day())
	}
	if !slices.Equal(days, []int{1, 2, 3}) {
		t.Errorf("Values() days = %v, want [1 2 3]", days)
	}
}

func TestHistory_Empty(t *testing.T) {
	var h History
	if _, ok := h.Latest(); ok {
		t.Errorf("Latest() on empty history returned ok")
	}
	if len(h.Prices()) != 0 {
		t.Errorf("Prices() = %v, want empty", h.Prices())
	}
}
