package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"

	"github.com/Brenda-fassie/Puppy-shop/cmd"
)

func main() {
	// Shell completion, registered before flag parsing.
	completer := &complete.Command{
		Sub: map[string]*complete.Command{
			"sell":           {},
			"sales":          {},
			"products":       {},
			"add-product":    {},
			"modify-product": {},
			"monthly":        {},
			"top-products":   {},
			"shell":          {},
		},
	}
	completer.Complete("pup")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
