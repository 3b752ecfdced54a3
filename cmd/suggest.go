package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etavares/estoque/renderer"
	"github.com/google/subcommands"
)

type suggestCmd struct{}

func (*suggestCmd) Name() string     { return "suggest" }
func (*suggestCmd) Synopsis() string { return "display purchase suggestions" }
func (*suggestCmd) Usage() string {
	return `estoque suggest

  Lists every product below its desired level, how many units are missing and
  what they would cost at the registered unit cost.
`
}

func (*suggestCmd) SetFlags(f *flag.FlagSet) {}

func (c *suggestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sess, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening stock file %q: %v\n", *stockFile, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Suggestions(sess.Stock().Suggestions()))
	return subcommands.ExitSuccess
}
