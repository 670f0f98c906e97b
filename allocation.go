package tracker

import (
	"slices"
	"strings"
)

// Slice is the share of one category in an Allocation.
type Slice struct {
	Category string
	Value    Money
	Percent  Percent
}

// Allocation is the breakdown of the portfolio current value by category.
//
// Slices are sorted by decreasing value, then by category name. Only
// categories holding at least one asset are present.
type Allocation struct {
	Total  Money
	Slices []Slice
}

// Get returns the slice for category.
func (a Allocation) Get(category string) (Slice, bool) {
	for _, s := range a.Slices {
		if s.Category == category {
			return s, true
		}
	}
	return Slice{}, false
}

// ByCategory returns the slices keyed by category.
func (a Allocation) ByCategory() map[string]Slice {
	m := make(map[string]Slice, len(a.Slices))
	for _, s := range a.Slices {
		m[s.Category] = s
	}
	return m
}

// SectorAllocation groups the current value by sector.
func (p *Portfolio) SectorAllocation() Allocation {
	return p.allocate((*Asset).Sector)
}

// AssetClassAllocation groups the current value by asset class.
func (p *Portfolio) AssetClassAllocation() Allocation {
	return p.allocate((*Asset).AssetClass)
}

// allocate groups assets by 'category' and sums their current value.
func (p *Portfolio) allocate(category func(*Asset) string) Allocation {
	total := M(0, p.currency)
	values := make(map[string]Money)
	var order []string
	for a := range p.List() {
		c := category(a)
		v, seen := values[c]
		if !seen {
			order = append(order, c)
			v = M(0, p.currency)
		}
		values[c] = v.Add(a.CurrentValue())
		total = total.Add(a.CurrentValue())
	}

	res := Allocation{Total: total, Slices: make([]Slice, 0, len(order))}
	for _, c := range order {
		res.Slices = append(res.Slices, Slice{
			Category: c,
			Value:    values[c],
			Percent:  percentOf(values[c], total),
		})
	}
	slices.SortStableFunc(res.Slices, func(a, b Slice) int {
		if c := b.Value.Decimal().Cmp(a.Value.Decimal()); c != 0 {
			return c
		}
		return strings.Compare(a.Category, b.Category)
	})
	return res
}
