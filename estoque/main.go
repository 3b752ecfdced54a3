package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etavares/estoque/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion runs first and exits when invoked by the shell.
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	completer := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"stock-file": predict.Files("*.json"),
			"currency":   predict.Set{"BRL", "USD", "EUR"},
			"v":          predict.Nothing,
		},
	}
	completer.Complete("estoque")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
