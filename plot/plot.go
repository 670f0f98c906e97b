// Package plot renders portfolio charts as PNG images.
package plot

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/etnz/tracker"
)

// ErrNoData is returned when there is nothing meaningful to draw.
var ErrNoData = errors.New("not enough data to plot")

// Size is the dimension of the rendered image, in pixels.
type Size struct {
	Width, Height int
}

// DefaultSize is used when a zero Size is given.
var DefaultSize = Size{Width: 900, Height: 400}

func (s Size) orDefault() Size {
	if s.Width <= 0 || s.Height <= 0 {
		return DefaultSize
	}
	return s
}

// Series is a named price history.
type Series struct {
	Name    string
	History tracker.History
}

// RenderHistory draws one line per series with the historical prices.
func RenderHistory(w io.Writer, series []Series, size Size) error {
	return renderLines(w, "Historical Prices", series, size, "%.2f")
}

// RenderNormalized draws the series rebased to 100 so they can be compared.
func RenderNormalized(w io.Writer, series []Series, size Size) error {
	normalized := make([]Series, 0, len(series))
	for _, s := range series {
		normalized = append(normalized, Series{Name: s.Name, History: tracker.Normalize(s.History)})
	}
	return renderLines(w, "Normalized Prices (base 100)", normalized, size, "%.0f")
}

func renderLines(w io.Writer, title string, series []Series, size Size, yFormat string) error {
	if len(series) == 0 {
		return ErrNoData
	}
	size = size.orDefault()

	lo, hi := math.Inf(1), math.Inf(-1)
	lines := make([]chart.Series, 0, len(series))
	for _, s := range series {
		if s.History.Len() < 2 {
			return fmt.Errorf("%w: %s has %d price(s), need at least 2", ErrNoData, s.Name, s.History.Len())
		}
		ts := chart.TimeSeries{
			Name:  s.Name,
			Style: chart.Style{StrokeWidth: 2},
		}
		for t, price := range s.History.Values() {
			ts.XValues = append(ts.XValues, t)
			ts.YValues = append(ts.YValues, price)
			lo, hi = math.Min(lo, price), math.Max(hi, price)
		}
		lines = append(lines, ts)
	}
	// a flat line still needs a non empty range.
	margin := (hi - lo) * 0.05
	if margin == 0 {
		margin = math.Max(math.Abs(hi)*0.05, 1)
	}

	graph := chart.Chart{
		Title:  title,
		Width:  size.Width,
		Height: size.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format(dateLayout(series))
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: lo - margin, Max: hi + margin},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf(yFormat, f)
				}
				return ""
			},
		},
		Series: lines,
	}
	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("chart render failed: %w", err)
	}
	return nil
}

// dateLayout picks the x axis label layout from the time span covered.
func dateLayout(series []Series) string {
	var first, last time.Time
	for _, s := range series {
		pts := s.History.Points()
		if len(pts) == 0 {
			continue
		}
		if first.IsZero() || pts[0].Time.Before(first) {
			first = pts[0].Time
		}
		if pts[len(pts)-1].Time.After(last) {
			last = pts[len(pts)-1].Time
		}
	}
	switch span := last.Sub(first); {
	case span <= 7*24*time.Hour:
		return "Jan 02 15:04"
	case span <= 366*24*time.Hour:
		return "Jan 02"
	default:
		return "Jan 06"
	}
}

// RenderWeights draws a pie chart of the assets weights. Assets without value
// are left out.
func RenderWeights(w io.Writer, p *tracker.Portfolio, size Size) error {
	size = size.orDefault()
	weights := p.Weights()
	var values []chart.Value
	for _, ticker := range p.Tickers() {
		if weights[ticker] <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s %s", ticker, tracker.Percent(weights[ticker]*100)),
			Value: weights[ticker],
		})
	}
	if len(values) == 0 {
		return fmt.Errorf("%w: the portfolio has no value", ErrNoData)
	}

	pie := chart.PieChart{
		Title:  "Portfolio Weights",
		Width:  size.Width,
		Height: size.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Values: values,
	}
	if err := pie.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("chart render failed: %w", err)
	}
	return nil
}

// RenderAllocation draws a bar chart of an allocation, one bar per category.
func RenderAllocation(w io.Writer, title string, a tracker.Allocation, size Size) error {
	size = size.orDefault()
	var top float64
	bars := make([]chart.Value, 0, len(a.Slices))
	for _, s := range a.Slices {
		v := s.Value.AsFloat()
		top = math.Max(top, v)
		bars = append(bars, chart.Value{
			Label: s.Category,
			Value: v,
			Style: chart.Style{
				FillColor:   drawing.ColorFromHex("2563eb"),
				StrokeColor: drawing.ColorFromHex("2563eb"),
			},
		})
	}
	if top <= 0 {
		return fmt.Errorf("%w: the portfolio has no value", ErrNoData)
	}

	currency := a.Total.Currency()
	graph := chart.BarChart{
		Title:  title,
		Width:  size.Width,
		Height: size.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		BarWidth: barWidth(size, len(bars)),
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: top * 1.1},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f %s", f, currency)
				}
				return ""
			},
		},
		Bars: bars,
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("chart render failed: %w", err)
	}
	return nil
}

// barWidth spreads the bars over the chart width.
func barWidth(size Size, n int) int {
	bw := size.Width / (2*n + 1)
	return min(max(bw, 10), 120)
}
