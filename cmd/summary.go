package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etavares/estoque/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the stock dashboard summary" }
func (*summaryCmd) Usage() string {
	return `estoque summary

  Displays the aggregate view of the stock: product count, units on hand,
  stock value at sale price, invested cost, progress toward the desired
  level, and the low-stock alerts.
`
}

func (*summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sess, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening stock file %q: %v\n", *stockFile, err)
		return subcommands.ExitFailure
	}

	stock := sess.Stock()
	printMarkdown(renderer.Summary(stock.Summarize(), stock.LowStock()))
	return subcommands.ExitSuccess
}
