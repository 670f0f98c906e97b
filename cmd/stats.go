package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/tracker/renderer"
)

type statsCmd struct {
	period string
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "show returns and volatility over a period" }
func (*statsCmd) Usage() string {
	return `stats [-period <period>] [<ticker>...|all]

  Shows, for each ticker, the cumulative return and the annualised volatility
  of its daily returns over the period. All the portfolio assets by default.

`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "period", "", "History period, defaults to the configured one")
}

func (c *statsCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := session(args)
	period, err := s.period(c.period)
	if err != nil {
		return s.fail(err)
	}
	series, err := s.histories(ctx, tickers(s.Portfolio, f.Args()), period)
	if err != nil {
		return s.fail(err)
	}
	v := &renderer.StatsView{Period: period}
	for _, ser := range series {
		v.Rows = append(v.Rows, renderer.NewStatsRow(ser.Name, ser.History))
	}
	s.printMarkdown(renderer.RenderStats(v))
	return subcommands.ExitSuccess
}
