// Package cmd implements the CLI application to manage the stock ledger.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etavares/estoque"
	"github.com/google/subcommands"
)

// Commands lists every subcommand. A main package registers them all and
// derives shell completion from the same list.
var Commands = []subcommands.Command{
	&registerCmd{},
	&inCmd{},
	&outCmd{},
	&controlCmd{},
	&summaryCmd{},
	&historyCmd{},
	&suggestCmd{},
	&menuCmd{},
	&topicCmd{},
	&assistCmd{},
}

// Environment variables that override the flag defaults.
const (
	EnvStockFile = "ESTOQUE_FILE"
	EnvCurrency  = "ESTOQUE_CURRENCY"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var stockFile = flag.String("stock-file", envOr(EnvStockFile, "estoque.json"), "Path to the stock ledger file (JSON)")
var currency = flag.String("currency", envOr(EnvCurrency, estoque.DefaultCurrency), "ISO 4217 code amounts are denominated in")
var verbose = flag.Bool("v", false, "Log internal events to stderr")

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// openSession loads the stock file named by the global flags. Internal event
// logging is silenced unless -v is set.
func openSession() (*estoque.Session, error) {
	if !*verbose {
		log.SetOutput(io.Discard)
	}
	return estoque.Open(*stockFile, *currency)
}

// renderMarkdown styles markdown for the terminal, returning the raw text
// when styling fails (e.g. output is not a tty).
func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

func printMarkdown(md string) { fmt.Print(renderMarkdown(md)) }

// parseNumber accepts both "13.33" and the comma decimal separator used in
// the legacy spreadsheets.
func parseNumber(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", estoque.ErrInvalidInput, s)
	}
	return v, nil
}

func parseQuantity(s string) (estoque.Quantity, error) {
	v, err := parseNumber(s)
	if err != nil {
		return estoque.Quantity{}, err
	}
	return estoque.Q(v), nil
}

func parseMoney(s string) (estoque.Money, error) {
	v, err := parseNumber(s)
	if err != nil {
		return estoque.Money{}, err
	}
	return estoque.M(v, *currency), nil
}

// parseDateFlag turns an optional -d value into a date, zero meaning today.
func parseDateFlag(s string) (estoque.Date, error) {
	if s == "" {
		return estoque.Date{}, nil
	}
	return estoque.ParseDate(s)
}
