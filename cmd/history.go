package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etavares/estoque"
	"github.com/etavares/estoque/renderer"
	"github.com/google/subcommands"
)

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct {
	out bool
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display a product's movement history" }
func (*historyCmd) Usage() string {
	return `estoque history [-out] <name>

  Displays a product's inbound movements in the order they were recorded.
  With -out, displays the outbound movements instead.

Usage Examples:
$ estoque history "Xícara Grande"
$ estoque history -out "Xícara Comum Preta"

`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.out, "out", false, "Show outbound movements instead of inbound ones")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name := strings.TrimSpace(strings.Join(f.Args(), " "))
	if name == "" {
		fmt.Fprintln(os.Stderr, "Error: a product name is required.")
		return subcommands.ExitUsageError
	}

	sess, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening stock file %q: %v\n", *stockFile, err)
		return subcommands.ExitFailure
	}

	name = estoque.Normalize(name)
	p := sess.Stock().Product(name)
	if p == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown product %q\n", name)
		return subcommands.ExitFailure
	}

	if c.out {
		printMarkdown(renderer.OutboundHistory(name, p))
	} else {
		printMarkdown(renderer.InboundHistory(name, p))
	}
	return subcommands.ExitSuccess
}
