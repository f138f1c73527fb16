package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/Brenda-fassie/Puppy-shop/renderer"
)

type sellCmd struct {
	product  string
	quantity int
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale against the catalog" }
func (*sellCmd) Usage() string {
	return `pup sell -i <id|name> -q <quantity>

  Records a sale: checks the stock, decrements it, and appends a row to the
  sales file stamped with the current date and time.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.product, "i", "", "Product id, or part of a product name")
	f.IntVar(&c.quantity, "q", 0, "Quantity sold")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.product == "" {
		f.Usage()
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

	in := bufio.NewReader(os.Stdin)
	product, err := resolveProduct(store.Catalog, c.product, cfg.currency, in, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	sale, err := store.Ledger.RecordSale(store.Catalog, product.ID, c.quantity, time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Print(renderer.Receipt(store.Catalog, sale, cfg.currency))
	return flushStore(store)
}
