package renderer

import (
	"slices"
	"strings"

	"github.com/etnz/tracker"
)

// WeightRow is one line of the weights table.
type WeightRow struct {
	Ticker string
	Value  tracker.Money
	Weight tracker.Percent
}

// WeightsView is the data rendered by RenderWeights.
type WeightsView struct {
	Total tracker.Money
	Rows  []WeightRow
}

// NewWeightsView computes the weights of p, in portfolio order.
func NewWeightsView(p *tracker.Portfolio) *WeightsView {
	weights := p.Weights()
	v := &WeightsView{Total: p.TotalCurrentValue()}
	for a := range p.List() {
		v.Rows = append(v.Rows, WeightRow{
			Ticker: a.Ticker(),
			Value:  a.CurrentValue(),
			Weight: tracker.Percent(weights[a.Ticker()] * 100),
		})
	}
	return v
}

// RenderWeights renders each asset share of the portfolio value.
func RenderWeights(v *WeightsView) string {
	return renderTemplate("weights", "weights.md", nil, v)
}

// AllocationView is the data rendered by RenderAllocation.
type AllocationView struct {
	Title      string
	Category   string // column header, e.g. "Sector"
	Allocation tracker.Allocation
}

// RenderAllocation renders a sector or asset class breakdown.
func RenderAllocation(v *AllocationView) string {
	return renderTemplate("allocation", "allocation.md", nil, v)
}

// RefreshView is the data rendered by RenderRefresh.
type RefreshView struct {
	Updated []string
	Failed  []tracker.RefreshFailure
}

// NewRefreshView copies the report, with failures sorted by ticker.
func NewRefreshView(r tracker.RefreshReport) *RefreshView {
	failed := slices.Clone(r.Failed)
	slices.SortFunc(failed, func(a, b tracker.RefreshFailure) int { return strings.Compare(a.Ticker, b.Ticker) })
	return &RefreshView{Updated: slices.Clone(r.Updated), Failed: failed}
}

// RenderRefresh renders the outcome of a price refresh.
func RenderRefresh(v *RefreshView) string {
	return renderTemplate("refresh", "refresh.md", nil, v)
}

// StatsRow holds the series statistics of one ticker.
type StatsRow struct {
	Ticker     string
	Points     int
	Last       float64
	Return     tracker.Percent // cumulative return over the period
	Volatility tracker.Percent // annualised
}

// StatsView is the data rendered by RenderStats.
type StatsView struct {
	Period tracker.Period
	Rows   []StatsRow
}

// NewStatsRow computes the statistics of a price history.
func NewStatsRow(ticker string, h tracker.History) StatsRow {
	row := StatsRow{Ticker: ticker, Points: h.Len()}
	if last, ok := h.Latest(); ok {
		row.Last = last.Price
	}
	returns := tracker.Returns(h)
	if cum := tracker.CumulativeReturns(returns); len(cum) > 0 {
		row.Return = tracker.Percent((cum[len(cum)-1] - 1) * 100)
	}
	row.Volatility = tracker.Percent(tracker.Volatility(returns) * 100)
	return row
}

// RenderStats renders returns and volatility per ticker.
func RenderStats(v *StatsView) string {
	return renderTemplate("stats", "stats.md", nil, v)
}

// SearchRow is one security found by a search.
type SearchRow struct {
	Ticker     string
	Name       string
	AssetClass string
	Price      tracker.Money
}

// SearchView is the data rendered by RenderSearch.
type SearchView struct {
	Term string
	Rows []SearchRow
}

// NewSearchView lists the quotes found for term.
func NewSearchView(term string, quotes []tracker.Quote) *SearchView {
	v := &SearchView{Term: term}
	for _, q := range quotes {
		_, class := q.Classification()
		v.Rows = append(v.Rows, SearchRow{Ticker: q.Ticker, Name: q.Name, AssetClass: class, Price: q.Price})
	}
	return v
}

// RenderSearch renders search results.
func RenderSearch(v *SearchView) string {
	return renderTemplate("search", "search.md", nil, v)
}
