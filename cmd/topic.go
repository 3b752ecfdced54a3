package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etavares/estoque/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `estoque topic [<topic>...]

Show documentation for the given topics, or the index when none is given.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	var parts []string
	for _, topic := range topics {
		doc, err := docs.GetTopic(topic)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
			return subcommands.ExitFailure
		}
		parts = append(parts, doc)
	}
	printMarkdown(strings.Join(parts, "\n\n"))

	return subcommands.ExitSuccess
}
