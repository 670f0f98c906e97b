package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/etnz/tracker"
)

type addCmd struct {
	quantity string
	price    string
	current  string
	sector   string
	class    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an asset to the portfolio" }
func (*addCmd) Usage() string {
	return `add -q <quantity> -p <purchase price> [-s <sector>] [-c <asset class>] [-cur <current price>] <ticker>

  Adds an asset to the portfolio. The ticker is resolved on the quote provider to
  get its sector, asset class and current price. -s and -c override the
  sector and asset class. With -cur, the ticker is not resolved at all.

  Prices are in the portfolio currency.

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.quantity, "q", "", "Quantity held")
	f.StringVar(&c.price, "p", "", "Purchase price per unit")
	f.StringVar(&c.current, "cur", "", "Current price per unit, skips the quote lookup")
	f.StringVar(&c.sector, "s", "", "Sector, overrides the resolved one")
	f.StringVar(&c.class, "c", "", "Asset class, overrides the resolved one")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := session(args)
	if f.NArg() != 1 || c.quantity == "" || c.price == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	ticker := tracker.NormalizeTicker(f.Arg(0))
	currency := s.Portfolio.Currency()

	qty, err := tracker.ParseQuantity(c.quantity)
	if err != nil {
		return s.fail(fmt.Errorf("invalid quantity %q: %w", c.quantity, err))
	}
	price, err := tracker.ParseMoney(c.price, currency)
	if err != nil {
		return s.fail(fmt.Errorf("invalid purchase price %q: %w", c.price, err))
	}

	var asset *tracker.Asset
	if c.current != "" {
		current, err := tracker.ParseMoney(c.current, currency)
		if err != nil {
			return s.fail(fmt.Errorf("invalid current price %q: %w", c.current, err))
		}
		asset, err = tracker.NewAsset(ticker, c.sector, c.class, qty, price, current)
		if err != nil {
			return s.fail(err)
		}
	} else {
		a, q, err := tracker.NewAssetFromQuote(ctx, s.Provider, ticker, qty, price)
		if err != nil {
			if errors.Is(err, tracker.ErrQuoteService) {
				fmt.Fprintln(s.Err, "The quote service is unavailable, use -cur to set the current price manually.")
			}
			return s.fail(err)
		}
		s.Logger.Info().Str("ticker", ticker).Str("name", q.Name).Str("price", q.Price.String()).Msg("resolved")
		asset = a
		if c.sector != "" || c.class != "" {
			asset, err = tracker.NewAsset(ticker, or(c.sector, a.Sector()), or(c.class, a.AssetClass()), qty, price, a.CurrentPrice())
			if err != nil {
				return s.fail(err)
			}
		}
	}

	if err := s.Portfolio.Add(asset); err != nil {
		if errors.Is(err, tracker.ErrDuplicateAsset) {
			fmt.Fprintf(s.Err, "Remove %s first to replace it.\n", ticker)
		}
		return s.fail(err)
	}
	fmt.Fprintf(s.Out, "Added %s: %s at %s (%s, %s)\n", asset.Ticker(), asset.Quantity(), asset.PurchasePrice(), asset.Sector(), asset.AssetClass())
	return subcommands.ExitSuccess
}

// or returns v, or def when v is empty.
func or(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
