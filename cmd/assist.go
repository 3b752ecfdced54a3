package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etavares/estoque/advisor"
	"github.com/etavares/estoque/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask the AI advisor what to restock" }
func (*assistCmd) Usage() string {
	return `estoque assist

  Sends the stock-control report and the purchase suggestions to Gemini and
  prints its restocking advice. Requires a GEMINI_API_KEY in the environment.
`
}

func (*assistCmd) SetFlags(f *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sess, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening stock file %q: %v\n", *stockFile, err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	stock := sess.Stock()
	advice, err := advisor.New(client).Advise(ctx,
		renderer.Control(stock.Control()),
		renderer.Suggestions(stock.Suggestions()),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Advisor failed:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(advice)
	return subcommands.ExitSuccess
}
