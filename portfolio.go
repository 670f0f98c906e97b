package tracker

import (
	"fmt"
	"iter"
	"slices"
)

// Portfolio is an ordered set of assets keyed by ticker.
//
// A Portfolio is not safe for concurrent mutation; it is meant to be owned by
// a single caller.
type Portfolio struct {
	name     string
	currency string
	tickers  []string // insertion order
	assets   map[string]*Asset
}

// NewPortfolio returns an empty portfolio valued in 'currency'.
func NewPortfolio(name, currency string) *Portfolio {
	return &Portfolio{
		name:     name,
		currency: currency,
		assets:   make(map[string]*Asset),
	}
}

func (p *Portfolio) Name() string     { return p.name }
func (p *Portfolio) Currency() string { return p.currency }
func (p *Portfolio) Len() int         { return len(p.tickers) }

// Add appends an asset to the portfolio.
//
// Adding a ticker already held fails with ErrDuplicateAsset and leaves the
// held asset untouched.
func (p *Portfolio) Add(a *Asset) error {
	if a == nil {
		return fmt.Errorf("%w: nil asset", ErrValidation)
	}
	if a.Currency() != p.currency {
		return fmt.Errorf("%w: %s is in %q, portfolio is in %q", ErrValidation, a.Ticker(), a.Currency(), p.currency)
	}
	if _, exists := p.assets[a.Ticker()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateAsset, a.Ticker())
	}
	p.tickers = append(p.tickers, a.Ticker())
	p.assets[a.Ticker()] = a
	return nil
}

// Remove deletes the asset held under ticker.
func (p *Portfolio) Remove(ticker string) error {
	ticker = NormalizeTicker(ticker)
	if _, exists := p.assets[ticker]; !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, ticker)
	}
	delete(p.assets, ticker)
	p.tickers = slices.DeleteFunc(p.tickers, func(t string) bool { return t == ticker })
	return nil
}

// Get returns the asset held under ticker.
func (p *Portfolio) Get(ticker string) (*Asset, error) {
	ticker = NormalizeTicker(ticker)
	a, exists := p.assets[ticker]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, ticker)
	}
	return a, nil
}

// List returns an iterator over the assets in insertion order.
func (p *Portfolio) List() iter.Seq[*Asset] {
	return func(yield func(*Asset) bool) {
		for _, t := range p.tickers {
			if !yield(p.assets[t]) {
				return
			}
		}
	}
}

// Tickers returns a copy of the held tickers in insertion order.
func (p *Portfolio) Tickers() []string { return slices.Clone(p.tickers) }

// Rows returns the display projection of every asset in insertion order.
func (p *Portfolio) Rows() []AssetRow {
	rows := make([]AssetRow, 0, p.Len())
	for a := range p.List() {
		rows = append(rows, a.Row())
	}
	return rows
}

// Summary holds the portfolio aggregates.
type Summary struct {
	Count                  int
	TotalInvested          Money
	TotalCurrentValue      Money
	TotalProfitLoss        Money
	TotalProfitLossPercent Percent
}

// Summary computes the aggregate metrics. An empty portfolio has zero totals.
func (p *Portfolio) Summary() Summary {
	invested, current := M(0, p.currency), M(0, p.currency)
	for a := range p.List() {
		invested = invested.Add(a.TransactionValue())
		current = current.Add(a.CurrentValue())
	}
	pl := current.Sub(invested)
	return Summary{
		Count:                  p.Len(),
		TotalInvested:          invested,
		TotalCurrentValue:      current,
		TotalProfitLoss:        pl,
		TotalProfitLossPercent: percentOf(pl, invested),
	}
}

// TotalCurrentValue returns the sum of the assets current value.
func (p *Portfolio) TotalCurrentValue() Money {
	total := M(0, p.currency)
	for a := range p.List() {
		total = total.Add(a.CurrentValue())
	}
	return total
}

// Weights returns each asset current value as a fraction of the total current value.
//
// Every weight is 0 when the total is 0.
func (p *Portfolio) Weights() map[string]float64 {
	total := p.TotalCurrentValue()
	weights := make(map[string]float64, p.Len())
	for a := range p.List() {
		weights[a.Ticker()] = a.CurrentValue().ratio(total).InexactFloat64()
	}
	return weights
}
