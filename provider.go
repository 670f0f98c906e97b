package tracker

import (
	"context"
	"fmt"
)

// Quote is the description of a ticker as returned by a Provider.
type Quote struct {
	Ticker     string
	Name       string
	Sector     string // empty when the provider cannot classify it
	AssetClass string // empty when the provider cannot classify it
	Price      Money
}

// Classification returns the sector and asset class, Unknown when not classified.
func (q Quote) Classification() (sector, assetClass string) {
	return classification(q.Sector), classification(q.AssetClass)
}

// Provider resolves tickers into market data.
//
// Implementations return errors wrapping ErrQuoteNotFound for unknown or
// delisted tickers and ErrQuoteService for failures of the service itself.
type Provider interface {
	// Resolve returns the description and latest price of a ticker.
	Resolve(ctx context.Context, ticker string) (Quote, error)
	// FetchPrice returns the latest price of a ticker.
	FetchPrice(ctx context.Context, ticker string) (Money, error)
	// FetchHistory returns the price history of a ticker over a period.
	FetchHistory(ctx context.Context, ticker string, period Period) (History, error)
}

// NewAssetFromQuote resolves ticker with p and creates the matching asset.
//
// Sector, asset class and current price come from the quote. Provider errors
// are wrapped, so ErrQuoteNotFound and ErrQuoteService can still be told apart.
func NewAssetFromQuote(ctx context.Context, p Provider, ticker string, quantity Quantity, purchasePrice Money) (*Asset, Quote, error) {
	q, err := p.Resolve(ctx, NormalizeTicker(ticker))
	if err != nil {
		return nil, Quote{}, fmt.Errorf("cannot resolve %s: %w", NormalizeTicker(ticker), err)
	}
	sector, class := q.Classification()
	a, err := NewAsset(ticker, sector, class, quantity, purchasePrice, q.Price)
	if err != nil {
		return nil, q, err
	}
	return a, q, nil
}
