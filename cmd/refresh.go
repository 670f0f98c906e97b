package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/tracker"
	"github.com/etnz/tracker/renderer"
)

type refreshCmd struct {
	workers int
}

func (*refreshCmd) Name() string     { return "refresh" }
func (*refreshCmd) Synopsis() string { return "fetch the current price of every asset" }
func (*refreshCmd) Usage() string {
	return `refresh [-j <workers>]

  Fetches the current price of every asset. An asset whose price cannot be
  fetched keeps its previous price and is listed in the report.

`
}

func (c *refreshCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.workers, "j", 0, "Number of concurrent requests, defaults to the configured refresh workers")
}

func (c *refreshCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := session(args)
	workers := c.workers
	if workers <= 0 {
		workers = s.Config.Refresh.Workers
	}

	quote := tracker.FetchPriceFunc(s.Provider)
	report := s.Portfolio.RefreshPricesConcurrently(ctx, quote, workers)
	for _, f := range report.Failed {
		s.Logger.Warn().Str("ticker", f.Ticker).Err(f.Err).Msg("price not refreshed")
	}
	s.Logger.Info().Int("updated", len(report.Updated)).Int("failed", len(report.Failed)).Int("workers", workers).Msg("refresh done")

	s.printMarkdown(renderer.RenderRefresh(renderer.NewRefreshView(report)))
	if ctx.Err() != nil {
		return s.fail(ctx.Err())
	}
	return subcommands.ExitSuccess
}
