package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/tracker/renderer"
)

type viewCmd struct {
	summary bool
}

func (*viewCmd) Name() string     { return "view" }
func (*viewCmd) Synopsis() string { return "show the assets and the portfolio summary" }
func (*viewCmd) Usage() string {
	return `view [-summary]

  Shows every asset with its value and profit/loss, followed by the portfolio totals.

`
}

func (c *viewCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.summary, "summary", false, "Only show the portfolio totals")
}

func (c *viewCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := session(args)
	v := renderer.NewPortfolioView(s.Portfolio)
	if c.summary {
		s.printMarkdown(renderer.RenderSummary(v))
	} else {
		s.printMarkdown(renderer.RenderPortfolio(v))
	}
	return subcommands.ExitSuccess
}

type weightsCmd struct{}

func (*weightsCmd) Name() string     { return "weights" }
func (*weightsCmd) Synopsis() string { return "show each asset share of the portfolio value" }
func (*weightsCmd) Usage() string {
	return `weights

  Shows the weight of each asset: its current value over the portfolio current value.

`
}

func (*weightsCmd) SetFlags(f *flag.FlagSet) {}

func (*weightsCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := session(args)
	s.printMarkdown(renderer.RenderWeights(renderer.NewWeightsView(s.Portfolio)))
	return subcommands.ExitSuccess
}

// allocationCmd shows the sector allocation ("sectors") or the asset class allocation ("classes").
type allocationCmd struct {
	name string
}

func (c *allocationCmd) Name() string { return c.name }
func (c *allocationCmd) Synopsis() string {
	if c.name == "classes" {
		return "show the portfolio allocation by asset class"
	}
	return "show the portfolio allocation by sector"
}
func (c *allocationCmd) Usage() string {
	return c.name + "\n\n  " + c.Synopsis() + ", largest first.\n\n"
}

func (*allocationCmd) SetFlags(f *flag.FlagSet) {}

func (c *allocationCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := session(args)
	v := &renderer.AllocationView{Title: "Sector Allocation", Category: "Sector", Allocation: s.Portfolio.SectorAllocation()}
	if c.name == "classes" {
		v = &renderer.AllocationView{Title: "Asset Class Allocation", Category: "Asset Class", Allocation: s.Portfolio.AssetClassAllocation()}
	}
	s.printMarkdown(renderer.RenderAllocation(v))
	return subcommands.ExitSuccess
}
