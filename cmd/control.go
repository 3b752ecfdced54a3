package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etavares/estoque/renderer"
	"github.com/google/subcommands"
)

type controlCmd struct{}

func (*controlCmd) Name() string     { return "control" }
func (*controlCmd) Synopsis() string { return "display the per-product stock-control report" }
func (*controlCmd) Usage() string {
	return `estoque control

  Displays every product with totals in and out, levels, quantity on hand and
  a low-stock status, plus a grand-total row.
`
}

func (*controlCmd) SetFlags(f *flag.FlagSet) {}

func (c *controlCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sess, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening stock file %q: %v\n", *stockFile, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Control(sess.Stock().Control()))
	return subcommands.ExitSuccess
}
