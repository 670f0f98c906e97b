package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/etnz/tracker/agent"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask the AI assistant about the portfolio" }
func (*assistCmd) Usage() string {
	return `assist [<question>]

  Asks Gemini a question about the portfolio. Without question, starts a
  conversation, type 'bye' to come back. Needs GEMINI_API_KEY.

`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (*assistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := session(args)
	if !s.Config.Assist.Enabled() {
		return s.fail(errors.New("the assistant is disabled: set GEMINI_API_KEY or assist.api_key"))
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.Config.Assist.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return s.fail(fmt.Errorf("cannot create Gemini client: %w", err))
	}
	// the agent lives as long as the session, so that the conversation goes on.
	if s.agent == nil {
		s.agent = agent.New(s.Out, s.in, s.Config.Assist.Model, s.Portfolio)
		s.agent.Print = s.printMarkdown
	}

	var questions []string
	if f.NArg() > 0 {
		questions = append(questions, strings.Join(f.Args(), " "))
	}
	if err := s.agent.Run(ctx, client, questions...); err != nil {
		return s.fail(fmt.Errorf("assistant failed: %w", err))
	}
	return subcommands.ExitSuccess
}
