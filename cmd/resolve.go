package cmd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cast"

	puppyshop "github.com/Brenda-fassie/Puppy-shop"
	"github.com/Brenda-fassie/Puppy-shop/renderer"
)

// resolveProduct turns a raw search term into a single product. An ambiguous
// name match is presented as an indexed choice, and the selection is resolved
// again by its exact id.
func resolveProduct(c *puppyshop.Catalog, term, currency string, in *bufio.Reader, out io.Writer) (puppyshop.Product, error) {
	switch r := c.Resolve(term).(type) {
	case puppyshop.Found:
		return r.Product, nil
	case puppyshop.Ambiguous:
		fmt.Fprint(out, renderer.Candidates(r.Candidates, currency))
		answer, err := prompt(in, out, "Select product number: ")
		if err != nil {
			return puppyshop.Product{}, fmt.Errorf("could not read selection: %w", err)
		}
		n, err := cast.ToIntE(answer)
		if err != nil || n < 1 || n > len(r.Candidates) {
			return puppyshop.Product{}, fmt.Errorf("invalid selection %q", answer)
		}
		return resolveProduct(c, r.Candidates[n-1].ID, currency, in, out)
	default:
		return puppyshop.Product{}, fmt.Errorf("no product found matching %q", term)
	}
}

// parseQuantity parses a raw quantity answer. Range validation happens in
// the ledger.
func parseQuantity(s string) (int, error) {
	n, err := cast.ToIntE(s)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q: please enter a number", s)
	}
	return n, nil
}
