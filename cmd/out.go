package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etavares/estoque"
	"github.com/google/subcommands"
)

// outCmd holds the flags for the 'out' subcommand.
type outCmd struct {
	qty   string
	price string
	date  string
}

func (*outCmd) Name() string     { return "out" }
func (*outCmd) Synopsis() string { return "record an outbound stock movement (sale)" }
func (*outCmd) Usage() string {
	return `estoque out -q <qty> [-p <unit-price>] [-d <date>] <name>

  Appends an outbound movement to the product's ledger. The quantity must not
  exceed the quantity on hand. The unit price defaults to the product's
  registered sale price, the date defaults to today.

Usage Examples:
$ estoque out -q 15 -d 15/01/2026 "Xícara Comum Preta"

`
}

func (c *outCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.qty, "q", "", "Quantity leaving stock (required)")
	f.StringVar(&c.price, "p", "", "Sale price per unit. Defaults to the product's registered price.")
	f.StringVar(&c.date, "d", "", "Movement date as dd/mm/yyyy. Defaults to today.")
}

func (c *outCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name := strings.TrimSpace(strings.Join(f.Args(), " "))
	if name == "" {
		fmt.Fprintln(os.Stderr, "Error: a product name is required.")
		return subcommands.ExitUsageError
	}

	qty, err := parseQuantity(c.qty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -q: %v\n", err)
		return subcommands.ExitUsageError
	}
	on, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -d: %v\n", err)
		return subcommands.ExitUsageError
	}

	sess, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening stock file %q: %v\n", *stockFile, err)
		return subcommands.ExitFailure
	}

	var price estoque.Money
	if c.price == "" {
		p := sess.Stock().Product(name)
		if p == nil {
			fmt.Fprintf(os.Stderr, "Error: unknown product %q\n", name)
			return subcommands.ExitFailure
		}
		price = p.Price
	} else if price, err = parseMoney(c.price); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -p: %v\n", err)
		return subcommands.ExitUsageError
	}

	e, err := sess.RecordOutbound(name, qty, price, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording outbound: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded sale of %s × %s on %s (total %s)\n", e.Quantity, e.UnitPrice, e.Date, e.Total)
	return subcommands.ExitSuccess
}
