package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// QuoteFunc returns the latest price of a ticker.
type QuoteFunc func(ctx context.Context, ticker string) (Money, error)

// RefreshFailure records a ticker whose price could not be refreshed.
type RefreshFailure struct {
	Ticker string
	Err    error
}

func (f RefreshFailure) Error() string { return f.Ticker + ": " + f.Err.Error() }
func (f RefreshFailure) Unwrap() error { return f.Err }

// RefreshReport is the outcome of a price refresh.
type RefreshReport struct {
	Updated []string
	Failed  []RefreshFailure
}

// OK returns true if every price was refreshed.
func (r RefreshReport) OK() bool { return len(r.Failed) == 0 }

// FailedTickers returns the tickers that could not be refreshed.
func (r RefreshReport) FailedTickers() []string {
	tickers := make([]string, len(r.Failed))
	for i, f := range r.Failed {
		tickers[i] = f.Ticker
	}
	return tickers
}

// Err returns all the failures joined, or nil.
func (r RefreshReport) Err() error {
	errs := make([]error, len(r.Failed))
	for i, f := range r.Failed {
		errs[i] = f
	}
	return errors.Join(errs...)
}

// refresh fetches and applies the price of a single asset.
func refresh(ctx context.Context, a *Asset, quote QuoteFunc) error {
	price, err := quote(ctx, a.Ticker())
	if err != nil {
		return err
	}
	return a.UpdatePrice(price)
}

// RefreshPrices updates every asset price, one at a time, in list order.
//
// A failure for one ticker leaves that asset price unchanged and is recorded
// in the report; the other assets are still refreshed. If ctx is done, the
// remaining assets are reported as failed with the context error.
func (p *Portfolio) RefreshPrices(ctx context.Context, quote QuoteFunc) RefreshReport {
	var report RefreshReport
	for a := range p.List() {
		if err := ctx.Err(); err != nil {
			report.Failed = append(report.Failed, RefreshFailure{Ticker: a.Ticker(), Err: err})
			continue
		}
		if err := refresh(ctx, a, quote); err != nil {
			report.Failed = append(report.Failed, RefreshFailure{Ticker: a.Ticker(), Err: err})
			continue
		}
		report.Updated = append(report.Updated, a.Ticker())
	}
	return report
}

// RefreshPricesConcurrently is like RefreshPrices but runs up to 'workers'
// quotes at the same time. Updated and Failed are in completion order.
func (p *Portfolio) RefreshPricesConcurrently(ctx context.Context, quote QuoteFunc, workers int) RefreshReport {
	if workers <= 1 {
		return p.RefreshPrices(ctx, quote)
	}

	jobs := make(chan *Asset)
	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		report RefreshReport
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for a := range jobs {
				err := ctx.Err()
				if err == nil {
					// each asset is owned by exactly one worker.
					err = refresh(ctx, a, quote)
				}
				mu.Lock()
				if err != nil {
					report.Failed = append(report.Failed, RefreshFailure{Ticker: a.Ticker(), Err: err})
				} else {
					report.Updated = append(report.Updated, a.Ticker())
				}
				mu.Unlock()
			}
		}()
	}
	for a := range p.List() {
		jobs <- a
	}
	close(jobs)
	wg.Wait()
	return report
}

// FetchPriceFunc adapts a Provider into a QuoteFunc.
func FetchPriceFunc(p Provider) QuoteFunc {
	return func(ctx context.Context, ticker string) (Money, error) {
		price, err := p.FetchPrice(ctx, ticker)
		if err != nil {
			return Money{}, fmt.Errorf("cannot fetch price: %w", err)
		}
		return price, nil
	}
}
