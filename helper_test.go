package tracker

import "testing"

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// newTestAsset creates an asset priced in USD or fails the test.
func newTestAsset(t *testing.T, ticker, sector, class string, qty, purchase, current float64) *Asset {
	t.Helper()
	a, err := NewAsset(ticker, sector, class, Q(qty), USD(purchase), USD(current))
	if err != nil {
		t.Fatalf("NewAsset(%q) unexpected error: %v", ticker, err)
	}
	return a
}

// newTestPortfolio creates a USD portfolio holding assets.
func newTestPortfolio(t *testing.T, assets ...*Asset) *Portfolio {
	t.Helper()
	p := NewPortfolio("test", "USD")
	for _, a := range assets {
		if err := p.Add(a); err != nil {
			t.Fatalf("Add(%s) unexpected error: %v", a.Ticker(), err)
		}
	}
	return p
}

// examplePortfolio holds A (10 @ 150, now 172.5) and B (5 @ 400, now 415.25).
func examplePortfolio(t *testing.T) *Portfolio {
	t.Helper()
	return newTestPortfolio(t,
		newTestAsset(t, "A", "Technology", "Stocks", 10, 150, 172.5),
		newTestAsset(t, "B", "Healthcare", "Stocks", 5, 400, 415.25),
	)
}
