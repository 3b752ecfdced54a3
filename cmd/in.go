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

// inCmd holds the flags for the 'in' subcommand.
type inCmd struct {
	typ  string
	qty  string
	cost string
	date string
}

func (*inCmd) Name() string     { return "in" }
func (*inCmd) Synopsis() string { return "record an inbound stock movement" }
func (*inCmd) Usage() string {
	return `estoque in -q <qty> [-t <type>] [-c <unit-cost>] [-d <date>] <name>

  Appends an inbound movement (purchase, inventory count, customer return) to
  the product's ledger. The unit cost defaults to the product's registered
  cost, the date defaults to today.

Usage Examples:
$ estoque in -q 20 "Xícara Comum Branca"
$ estoque in -q 15 -t devolução -c 13.33 -d 17/01/2026 "Xícara Grande"

`
}

func (c *inCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "t", "", "Movement type: compra, inventário or devolução. Defaults to compra.")
	f.StringVar(&c.qty, "q", "", "Quantity entering stock (required)")
	f.StringVar(&c.cost, "c", "", "Cost per unit. Defaults to the product's registered cost.")
	f.StringVar(&c.date, "d", "", "Movement date as dd/mm/yyyy. Defaults to today.")
}

func (c *inCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name := strings.TrimSpace(strings.Join(f.Args(), " "))
	if name == "" {
		fmt.Fprintln(os.Stderr, "Error: a product name is required.")
		return subcommands.ExitUsageError
	}

	typ, err := estoque.ParseMovementType(c.typ)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -t: %v\n", err)
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

	var cost estoque.Money
	if c.cost == "" {
		p := sess.Stock().Product(name)
		if p == nil {
			fmt.Fprintf(os.Stderr, "Error: unknown product %q\n", name)
			return subcommands.ExitFailure
		}
		cost = p.Cost
	} else if cost, err = parseMoney(c.cost); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -c: %v\n", err)
		return subcommands.ExitUsageError
	}

	e, err := sess.RecordInbound(name, typ, qty, cost, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording inbound: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s of %s × %s on %s (total %s)\n", e.Type, e.Quantity, e.UnitCost, e.Date, e.Total)
	return subcommands.ExitSuccess
}
