package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	puppyshop "github.com/Brenda-fassie/Puppy-shop"
	"github.com/Brenda-fassie/Puppy-shop/renderer"
)

// --- Products listing ---

type productsCmd struct{}

func (*productsCmd) Name() string             { return "products" }
func (*productsCmd) Synopsis() string         { return "list the product catalog" }
func (*productsCmd) SetFlags(f *flag.FlagSet) {}
func (*productsCmd) Usage() string {
	return `pup products

  Lists all products with id, name, price and stock.
`
}

func (c *productsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, cfg, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if _, err := login(store.Credentials); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Products(store.Catalog, cfg.currency))
	return subcommands.ExitSuccess
}

// --- Add Product ---

type addProductCmd struct {
	name  string
	price string
	stock string
}

func (*addProductCmd) Name() string     { return "add-product" }
func (*addProductCmd) Synopsis() string { return "add a new product to the catalog (manager only)" }
func (*addProductCmd) Usage() string {
	return `pup add-product -n <name> -p <price> -s <stock>

  Adds a product. The new id is one above the highest existing id.
`
}

func (c *addProductCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Product name")
	f.StringVar(&c.price, "p", "", "Product price")
	f.StringVar(&c.stock, "s", "", "Initial stock level")
}

func (c *addProductCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, _, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := requireManager(store.Credentials); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	p, err := store.Catalog.Add(puppyshop.AddProductInput{Name: c.name, Price: c.price, Stock: c.stock})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Product %q added successfully with ID %s.\n", p.Name, p.ID)
	return flushStore(store)
}

// --- Modify Product ---

type modifyProductCmd struct {
	product string
	price   string
	stock   string
}

func (*modifyProductCmd) Name() string { return "modify-product" }
func (*modifyProductCmd) Synopsis() string {
	return "change the price or stock of a product (manager only)"
}
func (*modifyProductCmd) Usage() string {
	return `pup modify-product -i <id|name> [-p <price>] [-s <stock>]

  Updates the given fields of a product; omitted fields keep their value.
`
}

func (c *modifyProductCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.product, "i", "", "Product id, or part of a product name")
	f.StringVar(&c.price, "p", "", "New price (blank keeps the current price)")
	f.StringVar(&c.stock, "s", "", "New stock level (blank keeps the current stock)")
}

func (c *modifyProductCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.product == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	store, cfg, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := requireManager(store.Credentials); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	in := bufio.NewReader(os.Stdin)
	product, err := resolveProduct(store.Catalog, c.product, cfg.currency, in, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	p, err := store.Catalog.Modify(product.ID, puppyshop.ModifyProductInput{Price: c.price, Stock: c.stock})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Product %q updated successfully.\n", p.Name)
	return flushStore(store)
}
