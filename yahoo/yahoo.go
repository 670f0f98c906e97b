// Package yahoo implements a tracker.Provider on top of Yahoo Finance.
package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"github.com/etnz/tracker"
	"github.com/etnz/tracker/internal/common"
	"github.com/etnz/tracker/internal/httpcache"
)

const (
	DefaultProfileURL = "https://query2.finance.yahoo.com/v10/finance/quoteSummary"
	DefaultTimeout    = 30 * time.Second
	DefaultRateLimit  = 5 // requests per second

	sectorPath = "$.quoteSummary.result[0].assetProfile.sector"
)

// bar is a single point of a price chart.
type bar struct {
	Time  time.Time
	Close float64
}

// Provider implements tracker.Provider with Yahoo Finance.
type Provider struct {
	currency   string
	profileURL string
	timeout    time.Duration
	cacheDir   string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *common.Logger
	now        func() time.Time

	// remote calls, replaced in tests.
	getQuote func(symbol string) (*finance.Quote, error)
	getBars  func(symbol string, start, end time.Time, interval datetime.Interval) ([]bar, error)
}

// Option configures the provider
type Option func(*Provider)

// WithLogger sets the logger
func WithLogger(logger *common.Logger) Option {
	return func(p *Provider) { p.logger = logger }
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) Option {
	return func(p *Provider) {
		p.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout of profile requests
func WithTimeout(timeout time.Duration) Option {
	return func(p *Provider) { p.timeout = timeout }
}

// WithProfileURL sets the quoteSummary endpoint used to classify tickers
func WithProfileURL(u string) Option {
	return func(p *Provider) { p.profileURL = strings.TrimSuffix(u, "/") }
}

// WithCacheDir caches profile responses in dir for the day. Quotes are never
// cached.
func WithCacheDir(dir string) Option {
	return func(p *Provider) { p.cacheDir = dir }
}

// New creates a Yahoo provider. Prices without a currency reported by Yahoo
// are assumed to be in 'currency'.
func New(currency string, opts ...Option) *Provider {
	p := &Provider{
		currency:   strings.ToUpper(currency),
		profileURL: DefaultProfileURL,
		timeout:    DefaultTimeout,
		limiter:    rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:     common.NewSilentLogger(),
		now:        time.Now,
		getQuote:   quote.Get,
		getBars:    chartBars,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.httpClient = httpcache.NewClient(p.cacheDir, "trk-yahoo-", p.timeout, p.logger)
	return p
}

var _ tracker.Provider = (*Provider)(nil)

// wait blocks until the rate limiter allows a request.
func (p *Provider) wait(ctx context.Context) error {
	if err := p.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", tracker.ErrQuoteService, err)
	}
	return nil
}

// fetchQuote returns the Yahoo quote of ticker.
func (p *Provider) fetchQuote(ctx context.Context, ticker string) (*finance.Quote, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	q, err := p.getQuote(ticker)
	if err != nil {
		return nil, fmt.Errorf("%w: quote %s: %v", tracker.ErrQuoteService, ticker, err)
	}
	if q == nil || q.Symbol == "" {
		return nil, fmt.Errorf("%w: %s", tracker.ErrQuoteNotFound, ticker)
	}
	return q, nil
}

// minorUnits maps the currencies Yahoo quotes in hundredths (e.g. pence on
// the London Stock Exchange) to their major currency.
var minorUnits = map[string]string{
	"GBp": "GBP",
	"GBX": "GBP",
	"ZAc": "ZAR",
	"ILA": "ILS",
}

// price converts the quote market price into money, in major units.
func (p *Provider) price(q *finance.Quote) tracker.Money {
	value := decimal.NewFromFloat(q.RegularMarketPrice)
	currency := q.CurrencyID
	if major, ok := minorUnits[currency]; ok {
		value, currency = value.Shift(-2), major
	}
	currency = strings.ToUpper(currency)
	if currency == "" {
		currency = p.currency
	}
	return tracker.M(value, currency)
}

// Resolve implements tracker.Provider.
func (p *Provider) Resolve(ctx context.Context, ticker string) (tracker.Quote, error) {
	ticker = tracker.NormalizeTicker(ticker)
	q, err := p.fetchQuote(ctx, ticker)
	if err != nil {
		return tracker.Quote{}, err
	}
	res := tracker.Quote{
		Ticker:     ticker,
		Name:       q.ShortName,
		AssetClass: assetClass(string(q.QuoteType)),
		Price:      p.price(q),
	}
	// only companies have a sector, and it is optional anyway.
	if res.AssetClass == "Stocks" {
		res.Sector = p.sector(ctx, ticker)
	}
	p.logger.Debug().Str("ticker", ticker).Str("name", res.Name).Str("sector", res.Sector).Str("class", res.AssetClass).Msg("resolved")
	return res, nil
}

// FetchPrice implements tracker.Provider.
func (p *Provider) FetchPrice(ctx context.Context, ticker string) (tracker.Money, error) {
	q, err := p.fetchQuote(ctx, tracker.NormalizeTicker(ticker))
	if err != nil {
		return tracker.Money{}, err
	}
	return p.price(q), nil
}

// FetchHistory implements tracker.Provider. Prices are in the units Yahoo
// quotes them, pence for London tickers.
func (p *Provider) FetchHistory(ctx context.Context, ticker string, period tracker.Period) (tracker.History, error) {
	ticker = tracker.NormalizeTicker(ticker)
	if err := p.wait(ctx); err != nil {
		return tracker.History{}, err
	}
	end := p.now()
	start := period.Start(end)
	if start.IsZero() {
		start = time.Unix(0, 0)
	}
	bars, err := p.getBars(ticker, start, end, interval(period))
	if err != nil {
		return tracker.History{}, fmt.Errorf("%w: history %s: %v", tracker.ErrQuoteService, ticker, err)
	}
	if len(bars) == 0 {
		return tracker.History{}, fmt.Errorf("%w: no %s history for %s", tracker.ErrQuoteNotFound, period, ticker)
	}
	var h tracker.History
	for _, b := range bars {
		h.Append(b.Time, b.Close)
	}
	return h, nil
}

// assetClass maps Yahoo quote types to asset classes. Unknown types are
// left unclassified.
func assetClass(quoteType string) string {
	switch strings.ToUpper(quoteType) {
	case "EQUITY":
		return "Stocks"
	case "ETF":
		return "ETF"
	case "MUTUALFUND":
		return "Mutual Fund"
	case "CRYPTOCURRENCY":
		return "Cryptocurrency"
	case "CURRENCY":
		return "Currency"
	case "INDEX":
		return "Index"
	case "FUTURE":
		return "Future"
	default:
		return ""
	}
}

// interval returns the chart sampling interval for a period.
func interval(period tracker.Period) datetime.Interval {
	switch period {
	case tracker.OneDay:
		return datetime.Interval("5m")
	case tracker.FiveDays:
		return datetime.Interval("30m")
	case tracker.FiveYears, tracker.TenYears, tracker.Max:
		return datetime.Interval("1wk")
	default:
		return datetime.Interval("1d")
	}
}

// sector probes the asset profile of ticker. Any failure yields an empty sector.
func (p *Provider) sector(ctx context.Context, ticker string) string {
	if err := p.wait(ctx); err != nil {
		return ""
	}
	addr := fmt.Sprintf("%s/%s?modules=assetProfile", p.profileURL, url.PathEscape(ticker))
	var jobj any
	if err := httpcache.GetJSON(ctx, p.httpClient, addr, &jobj); err != nil {
		p.logger.Debug().Err(err).Str("ticker", ticker).Msg("no asset profile")
		return ""
	}
	jval, err := jsonpath.Get(sectorPath, jobj)
	if err != nil {
		p.logger.Debug().Err(err).Str("ticker", ticker).Msg("no sector in asset profile")
		return ""
	}
	// jsonpath may return a list of 1 answer or a single answer.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, _ := jval.(string)
	return strings.TrimSpace(s)
}

// chartBars fetches the close prices of symbol with finance-go.
func chartBars(symbol string, start, end time.Time, interval datetime.Interval) ([]bar, error) {
	params := &chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: interval,
	}
	var bars []bar
	iter := chart.Get(params)
	for iter.Next() {
		b := iter.Bar()
		bars = append(bars, bar{
			Time:  time.Unix(int64(b.Timestamp), 0).UTC(),
			Close: b.Close.InexactFloat64(),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return bars, nil
}
