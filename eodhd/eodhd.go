// Package eodhd implements a tracker.Provider on top of the EODHD API.
package eodhd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"github.com/etnz/tracker"
	"github.com/etnz/tracker/internal/common"
	"github.com/etnz/tracker/internal/httpcache"
)

const (
	DefaultBaseURL   = "https://eodhd.com/api"
	DefaultExchange  = "US"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 10 // requests per second
)

// Provider implements tracker.Provider with EODHD.
//
// EODHD does not report the currency of real-time prices: all prices are
// assumed to be in the provider currency.
type Provider struct {
	apiKey     string
	currency   string
	baseURL    string
	exchange   string
	timeout    time.Duration
	cacheDir   string
	liveClient *http.Client // real-time prices, never cached
	httpClient *http.Client // fundamentals, history and search, cached for the day
	limiter    *rate.Limiter
	logger     *common.Logger
	now        func() time.Time
}

// Option configures the provider
type Option func(*Provider)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) Option {
	return func(p *Provider) { p.baseURL = strings.TrimSuffix(baseURL, "/") }
}

// WithExchange sets the exchange code appended to tickers without one, e.g. "PA" for AIR.PA.
func WithExchange(exchange string) Option {
	return func(p *Provider) { p.exchange = strings.ToUpper(exchange) }
}

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

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) Option {
	return func(p *Provider) { p.timeout = timeout }
}

// WithCacheDir caches fundamentals, history and search responses in dir for
// the day. Real-time prices are never cached.
func WithCacheDir(dir string) Option {
	return func(p *Provider) { p.cacheDir = dir }
}

// New creates an EODHD provider.
func New(apiKey, currency string, opts ...Option) *Provider {
	p := &Provider{
		apiKey:     apiKey,
		currency:   strings.ToUpper(currency),
		baseURL:    DefaultBaseURL,
		exchange:   DefaultExchange,
		timeout:    DefaultTimeout,
		limiter:    rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:     common.NewSilentLogger(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.liveClient = &http.Client{Timeout: p.timeout}
	p.httpClient = httpcache.NewClient(p.cacheDir, "trk-eodhd-", p.timeout, p.logger)
	return p
}

var _ tracker.Provider = (*Provider)(nil)

// symbol returns the EODHD symbol (CODE.EXCHANGE) of a ticker.
func (p *Provider) symbol(ticker string) string {
	ticker = tracker.NormalizeTicker(ticker)
	if strings.Contains(ticker, ".") {
		return ticker
	}
	return ticker + "." + p.exchange
}

// get performs a rate-limited GET request on the API with client.
func (p *Provider) get(ctx context.Context, client *http.Client, path string, params url.Values, result any) error {
	if err := p.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", tracker.ErrQuoteService, err)
	}
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_token", p.apiKey)
	params.Set("fmt", "json")

	p.logger.Debug().Str("url", p.baseURL+path).Msg("EODHD API request")
	err := httpcache.GetJSON(ctx, client, fmt.Sprintf("%s%s?%s", p.baseURL, path, params.Encode()), result)
	var status *httpcache.StatusError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &status) && status.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", tracker.ErrQuoteNotFound, path)
	default:
		return fmt.Errorf("%w: %v", tracker.ErrQuoteService, err)
	}
}

// price is a price as returned by EODHD: a number, or "NA" when unknown.
type price struct {
	value decimal.Decimal
	valid bool
}

func (p *price) UnmarshalJSON(data []byte) error {
	if err := p.value.UnmarshalJSON(data); err != nil {
		p.valid = false
		return nil
	}
	p.valid = true
	return nil
}

// FetchPrice implements tracker.Provider.
func (p *Provider) FetchPrice(ctx context.Context, ticker string) (tracker.Money, error) {
	symbol := p.symbol(ticker)
	var rt struct {
		Code  string `json:"code"`
		Close price  `json:"close"`
	}
	if err := p.get(ctx, p.liveClient, "/real-time/"+url.PathEscape(symbol), nil, &rt); err != nil {
		return tracker.Money{}, err
	}
	if !rt.Close.valid {
		return tracker.Money{}, fmt.Errorf("%w: no price for %s", tracker.ErrQuoteNotFound, symbol)
	}
	return tracker.M(rt.Close.value, p.currency), nil
}

// general is the General section of the fundamentals.
type general struct {
	Code         string `json:"Code"`
	Type         string `json:"Type"`
	Name         string `json:"Name"`
	CurrencyCode string `json:"CurrencyCode"`
	Sector       string `json:"Sector"`
}

// Resolve implements tracker.Provider.
//
// Fundamentals are not available on every plan: when they cannot be fetched
// the ticker is returned unclassified.
func (p *Provider) Resolve(ctx context.Context, ticker string) (tracker.Quote, error) {
	last, err := p.FetchPrice(ctx, ticker)
	if err != nil {
		return tracker.Quote{}, err
	}
	q := tracker.Quote{Ticker: tracker.NormalizeTicker(ticker), Price: last}

	var g general
	params := url.Values{"filter": {"General"}}
	if err := p.get(ctx, p.httpClient, "/fundamentals/"+url.PathEscape(p.symbol(ticker)), params, &g); err != nil {
		p.logger.Debug().Err(err).Str("ticker", q.Ticker).Msg("no fundamentals")
		return q, nil
	}
	q.Name = g.Name
	q.Sector = strings.TrimSpace(g.Sector)
	q.AssetClass = assetClass(g.Type)
	return q, nil
}

// FetchHistory implements tracker.Provider with end of day prices. Intraday
// periods only get the daily closes they cover.
func (p *Provider) FetchHistory(ctx context.Context, ticker string, period tracker.Period) (tracker.History, error) {
	symbol := p.symbol(ticker)
	end := p.now()
	params := url.Values{}
	params.Set("order", "a")
	params.Set("period", "d")
	if period == tracker.FiveYears || period == tracker.TenYears || period == tracker.Max {
		params.Set("period", "w")
	}
	if start := period.Start(end); !start.IsZero() {
		params.Set("from", start.Format(time.DateOnly))
	}
	params.Set("to", end.Format(time.DateOnly))

	var bars []struct {
		Date  string `json:"date"`
		Close price  `json:"close"`
	}
	if err := p.get(ctx, p.httpClient, "/eod/"+url.PathEscape(symbol), params, &bars); err != nil {
		return tracker.History{}, err
	}
	var h tracker.History
	for _, b := range bars {
		day, err := time.Parse(time.DateOnly, b.Date)
		if err != nil || !b.Close.valid {
			continue
		}
		h.Append(day, b.Close.value.InexactFloat64())
	}
	if h.Len() == 0 {
		return tracker.History{}, fmt.Errorf("%w: no %s history for %s", tracker.ErrQuoteNotFound, period, symbol)
	}
	return h, nil
}

// assetClass maps EODHD security types to asset classes.
func assetClass(typ string) string {
	switch strings.ToUpper(typ) {
	case "COMMON STOCK", "PREFERRED STOCK":
		return "Stocks"
	case "ETF":
		return "ETF"
	case "FUND", "MUTUAL FUND":
		return "Mutual Fund"
	case "BOND":
		return "Bonds"
	case "INDEX":
		return "Index"
	case "CURRENCY":
		return "Currency"
	default:
		return ""
	}
}
