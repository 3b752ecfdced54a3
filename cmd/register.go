package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

// registerCmd holds the flags for the 'register' subcommand.
type registerCmd struct {
	min     string
	desired string
	cost    string
	price   string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create or edit a product" }
func (*registerCmd) Usage() string {
	return `estoque register -min <qty> -des <qty> -c <cost> -p <price> <name>

  Creates a product, or overwrites the levels and prices of an existing one.
  Movement history is never touched. The name is normalized, so "xícara
  grande" and "Xícara Grande" are the same product.

Usage Examples:
$ estoque register -min 15 -des 22.5 -c 14.50 -p 38 "Xícara Grande"

`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.min, "min", "0", "Minimum stock level before the product is flagged low")
	f.StringVar(&c.desired, "des", "0", "Desired stock level used by purchase suggestions")
	f.StringVar(&c.cost, "c", "0", "Acquisition cost per unit")
	f.StringVar(&c.price, "p", "0", "Sale price per unit")
}

func (c *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name := strings.TrimSpace(strings.Join(f.Args(), " "))
	if name == "" {
		fmt.Fprintln(os.Stderr, "Error: a product name is required.")
		return subcommands.ExitUsageError
	}

	min, err := parseQuantity(c.min)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -min: %v\n", err)
		return subcommands.ExitUsageError
	}
	desired, err := parseQuantity(c.desired)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -des: %v\n", err)
		return subcommands.ExitUsageError
	}
	cost, err := parseMoney(c.cost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -c: %v\n", err)
		return subcommands.ExitUsageError
	}
	price, err := parseMoney(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -p: %v\n", err)
		return subcommands.ExitUsageError
	}

	sess, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening stock file %q: %v\n", *stockFile, err)
		return subcommands.ExitFailure
	}

	normalized, err := sess.Register(name, min, desired, cost, price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving stock file %q: %v\n", *stockFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Registered %q (min %s, desired %s, cost %s, price %s)\n", normalized, min, desired, cost, price)
	return subcommands.ExitSuccess
}
