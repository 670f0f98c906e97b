// Package cmd implements the interactive session managing a portfolio.
package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/google/subcommands"

	"github.com/etnz/tracker"
	"github.com/etnz/tracker/agent"
	"github.com/etnz/tracker/internal/common"
)

const prompt = "trk> "

// menu maps the menu numbers to the commands. 0 quits the session.
var menu = [...]string{"quit", "add", "remove", "view", "refresh", "weights", "sectors", "classes", "history", "normalized", "pie", "bars"}

var errQuit = errors.New("quit")

// Session is the state of an interactive session.
type Session struct {
	Portfolio *tracker.Portfolio
	Provider  tracker.Provider
	Config    *common.Config
	Logger    *common.Logger
	Out       io.Writer
	Err       io.Writer
	// Style is the glamour style used to print markdown: StyleAuto, StyleRaw
	// or a glamour standard style name.
	Style string

	in    *bufio.Reader
	agent *agent.Agent
}

// NewSession creates a session around a new empty portfolio.
func NewSession(cfg *common.Config, provider tracker.Provider, logger *common.Logger) *Session {
	return &Session{
		Portfolio: tracker.NewPortfolio(cfg.Portfolio.Name, cfg.Portfolio.Currency),
		Provider:  provider,
		Config:    cfg,
		Logger:    logger,
		Out:       os.Stdout,
		Err:       os.Stderr,
		Style:     StyleAuto,
		in:        bufio.NewReader(os.Stdin),
	}
}

// Register registers the session commands.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "portfolio")
	c.Register(&removeCmd{}, "portfolio")
	c.Register(&searchCmd{}, "portfolio")
	c.Register(&refreshCmd{}, "portfolio")

	c.Register(&viewCmd{}, "reports")
	c.Register(&weightsCmd{}, "reports")
	c.Register(&allocationCmd{name: "sectors"}, "reports")
	c.Register(&allocationCmd{name: "classes"}, "reports")
	c.Register(&statsCmd{}, "reports")

	c.Register(&chartCmd{name: "history"}, "charts")
	c.Register(&chartCmd{name: "normalized", normalized: true}, "charts")
	c.Register(&pieCmd{}, "charts")
	c.Register(&barsCmd{}, "charts")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// Run reads command lines from in and executes them until "quit" or the end of input.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	s.in = bufio.NewReader(in)
	s.printMenu()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.Out, prompt)
		line, err := s.in.ReadString('\n')
		if _, xerr := s.Exec(ctx, line); errors.Is(xerr, errQuit) {
			return nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.Out)
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Exec executes a single command line. A menu number can be used instead of
// the command name.
func (s *Session) Exec(ctx context.Context, line string) (subcommands.ExitStatus, error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return subcommands.ExitSuccess, nil
	}
	if n := slices.Index(menuNumbers(), words[0]); n >= 0 {
		words[0] = menu[n]
	}
	switch words[0] {
	case "quit", "exit":
		return subcommands.ExitSuccess, errQuit
	case "menu":
		s.printMenu()
		return subcommands.ExitSuccess, nil
	}

	fs := flag.NewFlagSet("trk", flag.ContinueOnError)
	fs.SetOutput(s.Err)
	if err := fs.Parse(words); err != nil {
		return subcommands.ExitUsageError, nil
	}
	cdr := subcommands.NewCommander(fs, "trk")
	cdr.Output = s.Out
	cdr.Error = s.Err
	cdr.Register(cdr.HelpCommand(), "")
	cdr.Register(cdr.CommandsCommand(), "")
	Register(cdr)

	status := cdr.Execute(ctx, s)
	s.Logger.Debug().Str("command", words[0]).Int("status", int(status)).Msg("executed")
	return status, nil
}

func menuNumbers() []string {
	numbers := make([]string, len(menu))
	for i := range menu {
		numbers[i] = fmt.Sprint(i)
	}
	return numbers
}

func (s *Session) printMenu() {
	fmt.Fprintf(s.Out, "%s (%s)\n\n", s.Portfolio.Name(), s.Portfolio.Currency())
	for i := 1; i < len(menu); i++ {
		fmt.Fprintf(s.Out, "%3d. %s\n", i, menu[i])
	}
	fmt.Fprintf(s.Out, "%3d. %s\n\n", 0, menu[0])
	fmt.Fprintln(s.Out, "Type a number or a command, 'help' for details.")
}

// session extracts the session passed to Execute.
func session(args []interface{}) *Session {
	return args[0].(*Session)
}

// fail reports err and returns a failure status.
func (s *Session) fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(s.Err, "Error: %v\n", err)
	return subcommands.ExitFailure
}
