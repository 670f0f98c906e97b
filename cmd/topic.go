package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/etnz/tracker/docs"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `topic [<topic>...|*]

  Shows documentation topics. Without topic, shows the list of topics.

`
}

func (*topicCmd) SetFlags(f *flag.FlagSet) {}

func (*topicCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := session(args)
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{docs.Index}
	}
	doc, err := docs.Topics(topics...)
	if err != nil {
		return s.fail(err)
	}
	s.printMarkdown(doc)
	return subcommands.ExitSuccess
}
