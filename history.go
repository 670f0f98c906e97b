package tracker

import (
	"iter"
	"slices"
	"time"
)

// PricePoint is a price observed at a given time.
type PricePoint struct {
	Time  time.Time
	Price float64
}

// History stores a chronological series of prices.
// Timestamps are unique and the series is always sorted.
type History struct {
	points []PricePoint
}

// NewHistory returns a history holding the given points.
func NewHistory(points ...PricePoint) History {
	var h History
	for _, pt := range points {
		h.Append(pt.Time, pt.Price)
	}
	return h
}

// Len returns the number of points in the history.
func (h *History) Len() int { return len(h.points) }

// Append adds a point to the history.
//
// Existing value at that time is overwritten.
func (h *History) Append(t time.Time, price float64) *History {
	i, found := slices.BinarySearchFunc(h.points, t, func(pt PricePoint, t time.Time) int {
		return pt.Time.Compare(t)
	})
	if found {
		h.points[i].Price = price
		return h
	}
	h.points = slices.Insert(h.points, i, PricePoint{Time: t, Price: price})
	return h
}

// Latest returns the latest point in the history, false if it is empty.
func (h *History) Latest() (PricePoint, bool) {
	if len(h.points) == 0 {
		return PricePoint{}, false
	}
	return h.points[len(h.points)-1], true
}

// Values returns an iterator over all time/price pairs, in chronological order.
func (h *History) Values() iter.Seq2[time.Time, float64] {
	return func(yield func(time.Time, float64) bool) {
		for _, pt := range h.points {
			if !yield(pt.Time, pt.Price) {
				return
			}
		}
	}
}

// Points returns a copy of the points.
func (h *History) Points() []PricePoint { return slices.Clone(h.points) }

// Prices returns the prices only, in chronological order.
func (h *History) Prices() []float64 {
	prices := make([]float64, len(h.points))
	for i, pt := range h.points {
		prices[i] = pt.Price
	}
	return prices
}
