// Package agent implements the Gemini assistant answering questions about a portfolio.
package agent

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"

	"github.com/etnz/tracker"
)

const prompt = "assist> "

// Agent holds the chats of the assistant session.
type Agent struct {
	w       io.Writer
	r       *bufio.Reader
	Analyst *Expert
	Experts []*Expert
	// Print displays an answer, raw markdown by default.
	Print func(markdown string)
}

// New creates an agent reading questions from r and writing to w.
func New(w io.Writer, r *bufio.Reader, model string, p *tracker.Portfolio) *Agent {
	if model == "" {
		model = DefaultModel
	}
	experts := []*Expert{NewTrader(model)}
	a := &Agent{
		w:       w,
		r:       r,
		Experts: experts,
		Analyst: NewAnalyst(model, p, experts...),
	}
	a.Print = func(md string) { fmt.Fprintln(a.w, md) }
	return a
}

// Start opens all chats, once.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	if a.Analyst.Started() {
		return nil
	}
	for _, e := range a.Experts {
		if err := e.Start(ctx, client); err != nil {
			return err
		}
	}
	return a.Analyst.Start(ctx, client)
}

// Run answers the questions, or when there is none, reads questions until
// "bye" or the end of input.
func (a *Agent) Run(ctx context.Context, client *genai.Client, questions ...string) error {
	if err := a.Start(ctx, client); err != nil {
		return err
	}
	if len(questions) > 0 {
		for _, q := range questions {
			if err := a.ask(ctx, q); err != nil {
				return err
			}
		}
		return nil
	}

	fmt.Fprintln(a.w, "Ask about your portfolio. Type 'bye' to go back.")
	for {
		fmt.Fprint(a.w, prompt)
		input, err := a.r.ReadString('\n')
		if errors.Is(err, io.EOF) && strings.TrimSpace(input) == "" {
			return nil
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		input = strings.TrimSpace(input)
		if input == "bye" {
			return nil
		}
		if input == "" {
			continue
		}
		if err := a.ask(ctx, input); err != nil {
			return err
		}
	}
}

func (a *Agent) ask(ctx context.Context, question string) error {
	content, err := a.Analyst.Ask(ctx, &genai.Part{Text: question})
	if err != nil {
		return err
	}
	a.Print(Text(content))
	return nil
}
