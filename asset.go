package tracker

import (
	"fmt"
	"strings"
)

// Unknown is the sector or asset class of an asset that could not be classified.
const Unknown = "Unknown"

// Asset is a single held position.
//
// Ticker, Sector and AssetClass are fixed at creation. The current price is
// the only mutable part, see UpdatePrice.
type Asset struct {
	ticker     string
	sector     string
	assetClass string

	quantity      Quantity
	purchasePrice Money
	currentPrice  Money
}

// Metrics are the values derived from an asset holding.
type Metrics struct {
	TransactionValue  Money   // quantity * purchase price
	CurrentValue      Money   // quantity * current price
	ProfitLoss        Money   // current value - transaction value
	ProfitLossPercent Percent // 0 when the transaction value is 0
}

// NormalizeTicker returns the canonical form of a ticker.
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// classification returns v, or Unknown when v is blank.
func classification(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return Unknown
	}
	return v
}

// NewAsset creates a new Asset.
//
// Empty sector or asset class default to Unknown. Prices must share the
// same currency.
func NewAsset(ticker, sector, assetClass string, quantity Quantity, purchasePrice, currentPrice Money) (*Asset, error) {
	ticker = NormalizeTicker(ticker)
	if ticker == "" {
		return nil, fmt.Errorf("%w: empty ticker", ErrValidation)
	}
	if quantity.IsNegative() {
		return nil, fmt.Errorf("%w: %s: negative quantity %v", ErrValidation, ticker, quantity)
	}
	if purchasePrice.IsNegative() {
		return nil, fmt.Errorf("%w: %s: negative purchase price %v", ErrValidation, ticker, purchasePrice.Decimal())
	}
	if currentPrice.IsNegative() {
		return nil, fmt.Errorf("%w: %s: negative current price %v", ErrValidation, ticker, currentPrice.Decimal())
	}
	if purchasePrice.Currency() != currentPrice.Currency() {
		return nil, fmt.Errorf("%w: %s: purchase price in %q but current price in %q", ErrValidation, ticker, purchasePrice.Currency(), currentPrice.Currency())
	}
	return &Asset{
		ticker:        ticker,
		sector:        classification(sector),
		assetClass:    classification(assetClass),
		quantity:      quantity,
		purchasePrice: purchasePrice,
		currentPrice:  currentPrice,
	}, nil
}

func (a *Asset) Ticker() string       { return a.ticker }
func (a *Asset) Sector() string       { return a.sector }
func (a *Asset) AssetClass() string   { return a.assetClass }
func (a *Asset) Quantity() Quantity   { return a.quantity }
func (a *Asset) PurchasePrice() Money { return a.purchasePrice }
func (a *Asset) CurrentPrice() Money  { return a.currentPrice }
func (a *Asset) Currency() string     { return a.purchasePrice.Currency() }

// UpdatePrice replaces the current price.
//
// A negative price, or a price in another currency, is rejected and the
// asset is left unchanged.
func (a *Asset) UpdatePrice(price Money) error {
	if price.IsNegative() {
		return fmt.Errorf("%w: %s: negative price %v", ErrValidation, a.ticker, price.Decimal())
	}
	if price.Currency() != a.Currency() {
		return fmt.Errorf("%w: %s: price in %q, asset in %q", ErrValidation, a.ticker, price.Currency(), a.Currency())
	}
	a.currentPrice = price
	return nil
}

// TransactionValue returns quantity * purchase price.
func (a *Asset) TransactionValue() Money { return a.purchasePrice.Mul(a.quantity) }

// CurrentValue returns quantity * current price.
func (a *Asset) CurrentValue() Money { return a.currentPrice.Mul(a.quantity) }

// Metrics computes the asset metrics from its current state.
func (a *Asset) Metrics() Metrics {
	tv := a.TransactionValue()
	cv := a.CurrentValue()
	pl := cv.Sub(tv)
	return Metrics{
		TransactionValue:  tv,
		CurrentValue:      cv,
		ProfitLoss:        pl,
		ProfitLossPercent: percentOf(pl, tv),
	}
}

// percentOf returns 100*n/d, or 0 when d is zero.
func percentOf(n, d Money) Percent {
	return Percent(n.ratio(d).Shift(2).InexactFloat64())
}

// AssetRow is a flat projection of an asset for display.
type AssetRow struct {
	Ticker        string
	Sector        string
	AssetClass    string
	Quantity      Quantity
	PurchasePrice Money
	CurrentPrice  Money
	Metrics
}

// Row returns the display projection of the asset.
func (a *Asset) Row() AssetRow {
	return AssetRow{
		Ticker:        a.ticker,
		Sector:        a.sector,
		AssetClass:    a.assetClass,
		Quantity:      a.quantity,
		PurchasePrice: a.purchasePrice,
		CurrentPrice:  a.currentPrice,
		Metrics:       a.Metrics(),
	}
}
