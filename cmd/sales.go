package cmd

import (
	"context"
	"flag"
	"fmt"
	"iter"
	"os"

	"github.com/google/subcommands"

	puppyshop "github.com/Brenda-fassie/Puppy-shop"
	"github.com/Brenda-fassie/Puppy-shop/renderer"
)

type salesCmd struct {
	date string
	name string
	from string
	to   string
}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "search the sales history" }
func (*salesCmd) Usage() string {
	return `pup sales [-d <DD/MM/YYYY>] [-n <name>] [-from <DD/MM/YYYY> -to <DD/MM/YYYY>]

  Searches sales by exact date, by product name substring, or by name within
  an inclusive date range. With no flags, lists the whole history.
`
}

func (c *salesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Exact sale date")
	f.StringVar(&c.name, "n", "", "Product name, or part of it")
	f.StringVar(&c.from, "from", "", "Start of the date range (inclusive)")
	f.StringVar(&c.to, "to", "", "End of the date range (inclusive)")
}

func (c *salesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if (c.from == "") != (c.to == "") {
		fmt.Fprintln(os.Stderr, "Error: -from and -to must be used together.")
		return subcommands.ExitUsageError
	}
	store, cfg, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if _, err := login(store.Credentials); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var result iter.Seq[puppyshop.Sale]
	switch {
	case c.from != "":
		start, err := puppyshop.ParseDate(c.from)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		end, err := puppyshop.ParseDate(c.to)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		result = store.Ledger.ByProductNameInRange(store.Catalog, c.name, puppyshop.NewRange(start, end))
	case c.date != "":
		day, err := puppyshop.ParseDate(c.date)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		result = store.Ledger.OnDate(day)
	case c.name != "":
		result = store.Ledger.ByProductName(store.Catalog, c.name)
	default:
		result = store.Ledger.All()
	}

	printMarkdown(renderer.Sales(store.Catalog, result, cfg.currency))
	return subcommands.ExitSuccess
}
