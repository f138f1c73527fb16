package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	puppyshop "github.com/Brenda-fassie/Puppy-shop"
	"github.com/Brenda-fassie/Puppy-shop/renderer"
)

// --- Monthly report ---

type monthlyCmd struct {
	product string
	from    string
	to      string
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display monthly sales totals" }
func (*monthlyCmd) Usage() string {
	return `pup monthly -from <MM/YYYY> -to <MM/YYYY> [-product <id>]

  Displays sales value and number of sales per month over the window,
  optionally restricted to one product.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "First month of the window")
	f.StringVar(&c.to, "to", "", "Last month of the window")
	f.StringVar(&c.product, "product", "", "Restrict to this product id")
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" || c.to == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	from, err := puppyshop.ParseMonth(c.from)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	to, err := puppyshop.ParseMonth(c.to)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
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

	rng := puppyshop.MonthRange(from, to)
	var buckets []puppyshop.MonthlyBucket
	if c.product != "" {
		if _, ok := store.Catalog.Get(c.product); !ok {
			fmt.Fprintf(os.Stderr, "Error: product id %q not found.\n", c.product)
			return subcommands.ExitFailure
		}
		buckets = store.Ledger.MonthlyForProduct(rng, c.product)
	} else {
		buckets = store.Ledger.Monthly(rng)
	}
	printMarkdown(renderer.Monthly(buckets, cfg.currency))
	return subcommands.ExitSuccess
}

// --- Per-product totals ---

type topProductsCmd struct {
	from string
	to   string
}

func (*topProductsCmd) Name() string     { return "top-products" }
func (*topProductsCmd) Synopsis() string { return "display total sales per product, highest first" }
func (*topProductsCmd) Usage() string {
	return `pup top-products -from <DD/MM/YYYY> -to <DD/MM/YYYY>

  Sums payments per product over the window and lists them in descending
  order of total sales.
`
}

func (c *topProductsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start of the window (inclusive)")
	f.StringVar(&c.to, "to", "", "End of the window (inclusive)")
}

func (c *topProductsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" || c.to == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
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

	store, cfg, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if _, err := login(store.Credentials); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	totals := store.Ledger.ProductTotals(store.Catalog, puppyshop.NewRange(start, end))
	printMarkdown(renderer.ProductTotals(totals, cfg.currency))
	return subcommands.ExitSuccess
}
