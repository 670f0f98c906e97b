package tracker

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func TestPortfolio_Summary(t *testing.T) {
	p := examplePortfolio(t)
	got := p.Summary()

	if got.Count != 2 {
		t.Errorf("Count = %d, want 2", got.Count)
	}
	if want := USD(3500); !got.TotalInvested.Equal(want) {
		t.Errorf("TotalInvested = %v, want %v", got.TotalInvested, want)
	}
	if want := USD(3801.25); !got.TotalCurrentValue.Equal(want) {
		t.Errorf("TotalCurrentValue = %v, want %v", got.TotalCurrentValue, want)
	}
	if want := USD(301.25); !got.TotalProfitLoss.Equal(want) {
		t.Errorf("TotalProfitLoss = %v, want %v", got.TotalProfitLoss, want)
	}
	if want := Percent(8.6071); !got.TotalProfitLossPercent.Equal(want) {
		t.Errorf("TotalProfitLossPercent = %v, want %v", got.TotalProfitLossPercent, want)
	}
}

func TestPortfolio_SummaryEmpty(t *testing.T) {
	got := NewPortfolio("empty", "USD").Summary()
	if got.Count != 0 || !got.TotalInvested.IsZero() || !got.TotalCurrentValue.IsZero() || !got.TotalProfitLoss.IsZero() {
		t.Errorf("Summary() = %+v, want all zero", got)
	}
	if got.TotalProfitLossPercent != 0 {
		t.Errorf("TotalProfitLossPercent = %v, want 0", got.TotalProfitLossPercent)
	}
}

func TestPortfolio_Weights(t *testing.T) {
	p := examplePortfolio(t)
	weights := p.Weights()

	want := map[string]float64{"A": 1725 / 3801.25, "B": 2076.25 / 3801.25}
	var sum float64
	for ticker, w := range weights {
		if math.Abs(w-want[ticker]) > 1e-9 {
			t.Errorf("Weights()[%s] = %v, want %v", ticker, w, want[ticker])
		}
		if w < 0 || w > 1 {
			t.Errorf("Weights()[%s] = %v, out of [0,1]", ticker, w)
		}
		sum += w
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("sum of weights = %v, want 1", sum)
	}
}

func TestPortfolio_WeightsZeroTotal(t *testing.T) {
	if got := NewPortfolio("empty", "USD").Weights(); len(got) != 0 {
		t.Errorf("Weights() of empty portfolio = %v, want empty", got)
	}

	p := newTestPortfolio(t,
		newTestAsset(t, "A", "", "", 10, 1, 0),
		newTestAsset(t, "B", "", "", 0, 1, 5),
	)
	for ticker, w := range p.Weights() {
		if w != 0 {
			t.Errorf("Weights()[%s] = %v, want 0", ticker, w)
		}
	}
}

func TestPortfolio_AddDuplicate(t *testing.T) {
	p := examplePortfolio(t)
	dup := newTestAsset(t, "a", "Energy", "ETF", 1, 1, 1)

	if err := p.Add(dup); !errors.Is(err, ErrDuplicateAsset) {
		t.Fatalf("Add(duplicate) error = %v, want %v", err, ErrDuplicateAsset)
	}
	held, err := p.Get("A")
	if err != nil {
		t.Fatalf("Get(A) unexpected error: %v", err)
	}
	if held == dup || !held.PurchasePrice().Equal(USD(150)) || held.Sector() != "Technology" {
		t.Errorf("held asset was modified by a duplicate Add: %+v", held.Row())
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
}

func TestPortfolio_AddCurrencyMismatch(t *testing.T) {
	p := NewPortfolio("eur", "EUR")
	a := newTestAsset(t, "A", "", "", 1, 1, 1)
	if err := p.Add(a); !errors.Is(err, ErrValidation) {
		t.Errorf("Add(USD asset) error = %v, want %v", err, ErrValidation)
	}
	if err := p.Add(nil); !errors.Is(err, ErrValidation) {
		t.Errorf("Add(nil) error = %v, want %v", err, ErrValidation)
	}
}

func TestPortfolio_AddRemoveRoundTrip(t *testing.T) {
	p := examplePortfolio(t)
	beforeTickers := p.Tickers()
	before := p.Summary()

	if err := p.Add(newTestAsset(t, "C", "Energy", "Stocks", 3, 20, 25)); err != nil {
		t.Fatalf("Add(C) unexpected error: %v", err)
	}
	if err := p.Remove("c"); err != nil {
		t.Fatalf("Remove(c) unexpected error: %v", err)
	}

	if got := p.Tickers(); !slices.Equal(got, beforeTickers) {
		t.Errorf("Tickers() = %v, want %v", got, beforeTickers)
	}
	after := p.Summary()
	if !after.TotalInvested.Equal(before.TotalInvested) || !after.TotalCurrentValue.Equal(before.TotalCurrentValue) || after.Count != before.Count {
		t.Errorf("Summary() = %+v, want %+v", after, before)
	}
	if _, ok := p.SectorAllocation().Get("Energy"); ok {
		t.Errorf("SectorAllocation() still has Energy after removing C")
	}
}

func TestPortfolio_NotFound(t *testing.T) {
	p := examplePortfolio(t)
	if err := p.Remove("ZZZ"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove(ZZZ) error = %v, want %v", err, ErrNotFound)
	}
	if _, err := p.Get("ZZZ"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(ZZZ) error = %v, want %v", err, ErrNotFound)
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
}

func TestPortfolio_List(t *testing.T) {
	p := newTestPortfolio(t,
		newTestAsset(t, "MSFT", "", "", 1, 1, 1),
		newTestAsset(t, "AAPL", "", "", 1, 1, 1),
		newTestAsset(t, "VOO", "", "", 1, 1, 1),
	)
	want := []string{"MSFT", "AAPL", "VOO"}

	// List is restartable.
	for range 2 {
		var got []string
		for a := range p.List() {
			got = append(got, a.Ticker())
		}
		if !slices.Equal(got, want) {
			t.Errorf("List() = %v, want %v", got, want)
		}
	}

	// and can be stopped early.
	var first []string
	for a := range p.List() {
		first = append(first, a.Ticker())
		break
	}
	if !slices.Equal(first, want[:1]) {
		t.Errorf("List() with break = %v, want %v", first, want[:1])
	}

	if err := p.Remove("AAPL"); err != nil {
		t.Fatalf("Remove(AAPL) unexpected error: %v", err)
	}
	if got := p.Tickers(); !slices.Equal(got, []string{"MSFT", "VOO"}) {
		t.Errorf("Tickers() = %v, want [MSFT VOO]", got)
	}
}

func TestPortfolio_Rows(t *testing.T) {
	p := examplePortfolio(t)
	rows := p.Rows()
	if len(rows) != 2 {
		t.Fatalf("len(Rows()) = %d, want 2", len(rows))
	}
	if rows[1].Ticker != "B" || !rows[1].CurrentValue.Equal(USD(2076.25)) {
		t.Errorf("Rows()[1] = %+v, want B valued %v", rows[1], USD(2076.25))
	}
}
