package eodhd

import (
	"context"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/etnz/tracker"
)

// searchResult is an item of the /search endpoint.
type searchResult struct {
	Code          string  `json:"Code"`
	Exchange      string  `json:"Exchange"`
	Name          string  `json:"Name"`
	Type          string  `json:"Type"`
	Currency      string  `json:"Currency"`
	ISIN          string  `json:"ISIN"`
	PreviousClose float64 `json:"previousClose"`
}

// Search looks up securities matching term (a ticker, a name or an ISIN).
// Tickers of the provider exchange are returned without suffix so that they
// can be added as is.
func (p *Provider) Search(ctx context.Context, term string) ([]tracker.Quote, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, nil
	}
	var results []searchResult
	if err := p.get(ctx, p.httpClient, "/search/"+url.PathEscape(term), nil, &results); err != nil {
		return nil, err
	}
	quotes := make([]tracker.Quote, 0, len(results))
	for _, r := range results {
		ticker := r.Code
		if !strings.EqualFold(r.Exchange, p.exchange) {
			ticker += "." + r.Exchange
		}
		currency := r.Currency
		if currency == "" {
			currency = p.currency
		}
		quotes = append(quotes, tracker.Quote{
			Ticker:     tracker.NormalizeTicker(ticker),
			Name:       r.Name,
			AssetClass: assetClass(r.Type),
			Price:      tracker.M(decimal.NewFromFloat(r.PreviousClose), strings.ToUpper(currency)),
		})
	}
	return quotes, nil
}
