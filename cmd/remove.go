package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove assets from the portfolio" }
func (*removeCmd) Usage() string {
	return `remove <ticker>...

  Removes the assets from the portfolio.

`
}

func (*removeCmd) SetFlags(f *flag.FlagSet) {}

func (*removeCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := session(args)
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	status := subcommands.ExitSuccess
	for _, ticker := range f.Args() {
		if err := s.Portfolio.Remove(ticker); err != nil {
			status = s.fail(err)
			continue
		}
		fmt.Fprintf(s.Out, "Removed %s\n", ticker)
	}
	return status
}
