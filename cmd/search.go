package cmd

import (
	"context"
	"errors"
	"flag"
	"strings"

	"github.com/google/subcommands"

	"github.com/etnz/tracker"
	"github.com/etnz/tracker/renderer"
)

// Searcher is implemented by providers able to look up securities.
type Searcher interface {
	Search(ctx context.Context, term string) ([]tracker.Quote, error)
}

var errNoSearch = errors.New("the quote provider does not support search (use provider = \"eodhd\")")

type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search securities by ticker, name or ISIN" }
func (*searchCmd) Usage() string {
	return `search <term>...

  Searches the quote provider for securities matching the terms. The tickers
  found can be used with add.

`
}

func (*searchCmd) SetFlags(f *flag.FlagSet) {}

func (*searchCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := session(args)
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	searcher, ok := s.Provider.(Searcher)
	if !ok {
		return s.fail(errNoSearch)
	}
	term := strings.Join(f.Args(), " ")
	quotes, err := searcher.Search(ctx, term)
	if err != nil {
		return s.fail(err)
	}
	s.printMarkdown(renderer.RenderSearch(renderer.NewSearchView(term, quotes)))
	return subcommands.ExitSuccess
}
