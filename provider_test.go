package tracker

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// fakeProvider serves quotes from memory.
type fakeProvider struct {
	quotes  map[string]Quote
	history map[string]History
}

func (f fakeProvider) Resolve(_ context.Context, ticker string) (Quote, error) {
	q, ok := f.quotes[ticker]
	if !ok {
		return Quote{}, fmt.Errorf("%w: %s", ErrQuoteNotFound, ticker)
	}
	return q, nil
}

func (f fakeProvider) FetchPrice(ctx context.Context, ticker string) (Money, error) {
	q, err := f.Resolve(ctx, ticker)
	return q.Price, err
}

func (f fakeProvider) FetchHistory(_ context.Context, ticker string, _ Period) (History, error) {
	h, ok := f.history[ticker]
	if !ok {
		return History{}, fmt.Errorf("%w: %s", ErrQuoteNotFound, ticker)
	}
	return h, nil
}

func TestQuote_Classification(t *testing.T) {
	sector, class := Quote{Sector: "Technology"}.Classification()
	if sector != "Technology" || class != Unknown {
		t.Errorf("Classification() = %q, %q, want %q, %q", sector, class, "Technology", Unknown)
	}
}

func TestNewAssetFromQuote(t *testing.T) {
	provider := fakeProvider{quotes: map[string]Quote{
		"AAPL": {Ticker: "AAPL", Name: "Apple Inc.", Sector: "Technology", AssetClass: "Stocks", Price: USD(172.5)},
		"BTC":  {Ticker: "BTC", Name: "Bitcoin", AssetClass: "Cryptocurrency", Price: USD(60000)},
	}}
	ctx := context.Background()

	a, q, err := NewAssetFromQuote(ctx, provider, "aapl", Q(10), USD(150))
	if err != nil {
		t.Fatalf("NewAssetFromQuote(aapl) unexpected error: %v", err)
	}
	if q.Name != "Apple Inc." {
		t.Errorf("quote name = %q, want %q", q.Name, "Apple Inc.")
	}
	if a.Ticker() != "AAPL" || a.Sector() != "Technology" || a.AssetClass() != "Stocks" {
		t.Errorf("asset = %+v", a.Row())
	}
	if !a.CurrentPrice().Equal(USD(172.5)) {
		t.Errorf("CurrentPrice() = %v, want %v", a.CurrentPrice(), USD(172.5))
	}

	b, _, err := NewAssetFromQuote(ctx, provider, "BTC", Q(0.5), USD(30000))
	if err != nil {
		t.Fatalf("NewAssetFromQuote(BTC) unexpected error: %v", err)
	}
	if b.Sector() != Unknown {
		t.Errorf("Sector() = %q, want %q", b.Sector(), Unknown)
	}

	if _, _, err := NewAssetFromQuote(ctx, provider, "NOPE", Q(1), USD(1)); !errors.Is(err, ErrQuoteNotFound) {
		t.Errorf("NewAssetFromQuote(NOPE) error = %v, want %v", err, ErrQuoteNotFound)
	}
	if _, _, err := NewAssetFromQuote(ctx, provider, "AAPL", Q(-1), USD(1)); !errors.Is(err, ErrValidation) {
		t.Errorf("NewAssetFromQuote(qty -1) error = %v, want %v", err, ErrValidation)
	}
}

func TestFetchPriceFunc(t *testing.T) {
	provider := fakeProvider{quotes: map[string]Quote{"A": {Price: USD(12)}}}
	p := newTestPortfolio(t,
		newTestAsset(t, "A", "", "", 1, 10, 10),
		newTestAsset(t, "GONE", "", "", 1, 10, 10),
	)
	report := p.RefreshPrices(context.Background(), FetchPriceFunc(provider))
	if len(report.Failed) != 1 || report.Failed[0].Ticker != "GONE" || !errors.Is(report.Failed[0], ErrQuoteNotFound) {
		t.Errorf("Failed = %v, want GONE not found", report.Failed)
	}
	a, _ := p.Get("A")
	if !a.CurrentPrice().Equal(USD(12)) {
		t.Errorf("A price = %v, want %v", a.CurrentPrice(), USD(12))
	}
}
