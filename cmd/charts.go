package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"github.com/etnz/tracker"
	"github.com/etnz/tracker/plot"
)

// chartCmd plots price histories, as is ("history") or rebased to 100 ("normalized").
type chartCmd struct {
	name       string
	normalized bool
	period     string
	output     string
}

func (c *chartCmd) Name() string { return c.name }
func (c *chartCmd) Synopsis() string {
	if c.normalized {
		return "plot price histories rebased to 100"
	}
	return "plot historical prices"
}
func (c *chartCmd) Usage() string {
	return c.name + ` [-period <period>] [-o <file>] [<ticker>...|all]

  Plots the price history of the tickers, all the portfolio assets by default.
  Periods: 1d, 5d, 1mo, 3mo, 6mo, 1y, 2y, 5y, 10y, ytd, max.

`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "period", "", "History period, defaults to the configured one")
	f.StringVar(&c.output, "o", "", "Output PNG file, defaults to <name>.png in the charts directory")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := session(args)
	period, err := s.period(c.period)
	if err != nil {
		return s.fail(err)
	}
	series, err := s.histories(ctx, tickers(s.Portfolio, f.Args()), period)
	if err != nil {
		return s.fail(err)
	}
	render := plot.RenderHistory
	if c.normalized {
		render = plot.RenderNormalized
	}
	return s.writeChart(c.output, c.name, func(w io.Writer) error {
		return render(w, series, s.chartSize())
	})
}

type pieCmd struct {
	output string
}

func (*pieCmd) Name() string     { return "pie" }
func (*pieCmd) Synopsis() string { return "plot the assets weights as a pie chart" }
func (*pieCmd) Usage() string {
	return `pie [-o <file>]

  Plots the weight of each asset in the portfolio current value.

`
}

func (c *pieCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output PNG file, defaults to weights.png in the charts directory")
}

func (c *pieCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := session(args)
	return s.writeChart(c.output, "weights", func(w io.Writer) error {
		return plot.RenderWeights(w, s.Portfolio, s.chartSize())
	})
}

type barsCmd struct {
	classes bool
	output  string
}

func (*barsCmd) Name() string     { return "bars" }
func (*barsCmd) Synopsis() string { return "plot the sector allocation as a bar chart" }
func (*barsCmd) Usage() string {
	return `bars [-classes] [-o <file>]

  Plots the portfolio current value by sector, or by asset class with -classes.

`
}

func (c *barsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.classes, "classes", false, "Plot the asset class allocation instead")
	f.StringVar(&c.output, "o", "", "Output PNG file, defaults to sectors.png (or classes.png) in the charts directory")
}

func (c *barsCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := session(args)
	name, title, allocation := "sectors", "Sector Allocation", s.Portfolio.SectorAllocation()
	if c.classes {
		name, title, allocation = "classes", "Asset Class Allocation", s.Portfolio.AssetClassAllocation()
	}
	return s.writeChart(c.output, name, func(w io.Writer) error {
		return plot.RenderAllocation(w, title, allocation, s.chartSize())
	})
}

// tickers returns args, or all the portfolio tickers when args is empty or "all".
func tickers(p *tracker.Portfolio, args []string) []string {
	if len(args) == 0 || (len(args) == 1 && args[0] == "all") {
		return p.Tickers()
	}
	res := make([]string, 0, len(args))
	for _, a := range args {
		res = append(res, tracker.NormalizeTicker(a))
	}
	return res
}

// period parses p, or returns the configured default period when p is empty.
func (s *Session) period(p string) (tracker.Period, error) {
	if p == "" {
		return s.Config.Portfolio.Period(), nil
	}
	return tracker.ParsePeriod(p)
}

// histories fetches the price history of each ticker.
func (s *Session) histories(ctx context.Context, tickers []string, period tracker.Period) ([]plot.Series, error) {
	if len(tickers) == 0 {
		return nil, fmt.Errorf("no ticker: %w", tracker.ErrNotFound)
	}
	series := make([]plot.Series, 0, len(tickers))
	for _, ticker := range tickers {
		h, err := s.Provider.FetchHistory(ctx, ticker, period)
		if err != nil {
			return nil, fmt.Errorf("cannot fetch %s history: %w", ticker, err)
		}
		s.Logger.Debug().Str("ticker", ticker).Stringer("period", period).Int("points", h.Len()).Msg("history fetched")
		series = append(series, plot.Series{Name: ticker, History: h})
	}
	return series, nil
}

func (s *Session) chartSize() plot.Size {
	return plot.Size{Width: s.Config.Charts.Width, Height: s.Config.Charts.Height}
}

// writeChart renders a chart into output, or into <name>.png in the charts directory.
func (s *Session) writeChart(output, name string, render func(io.Writer) error) subcommands.ExitStatus {
	if output == "" {
		output = filepath.Join(s.Config.Charts.Dir, name+".png")
	}
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return s.fail(err)
	}
	f, err := os.Create(output)
	if err != nil {
		return s.fail(err)
	}
	if err := render(f); err != nil {
		f.Close()
		os.Remove(output)
		return s.fail(err)
	}
	if err := f.Close(); err != nil {
		return s.fail(err)
	}
	fmt.Fprintf(s.Out, "Chart written to %s\n", output)
	return subcommands.ExitSuccess
}
