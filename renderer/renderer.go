// Package renderer formats catalog, ledger and report data as markdown.
// It is pure presentation: it only consumes the read-only query outputs of
// the puppyshop package.
package renderer

import (
	"fmt"
	"iter"
	"strings"

	puppyshop "github.com/Brenda-fassie/Puppy-shop"
)

// Products renders the catalog as a markdown table.
func Products(c *puppyshop.Catalog, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Available Products\n\n")
	fmt.Fprintf(&b, "| ID | Name | Price | Stock |\n")
	fmt.Fprintf(&b, "|:---|:---|---:|---:|\n")
	for p := range c.Products() {
		fmt.Fprintf(&b, "| %s | %s | %s | %d |\n", p.ID, p.Name, p.Price.Display(currency), p.Stock)
	}
	return b.String()
}

// Sales renders a sales query result as a markdown table, resolving product
// names through the catalog. An empty result renders a "no results" line.
func Sales(c *puppyshop.Catalog, sales iter.Seq[puppyshop.Sale], currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Sales Records\n\n")
	n := 0
	for s := range sales {
		if n == 0 {
			fmt.Fprintf(&b, "| Date | Time | Product ID | Product Name | Quantity | Payment |\n")
			fmt.Fprintf(&b, "|:---|:---|:---|:---|---:|---:|\n")
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %d | %s |\n",
			s.Date, s.Time, s.ProductID, c.NameOf(s.ProductID), s.Quantity, s.Payment.Display(currency))
		n++
	}
	if n == 0 {
		fmt.Fprintf(&b, "No sales records found.\n")
	}
	return b.String()
}

// Receipt renders a freshly recorded sale.
func Receipt(c *puppyshop.Catalog, s puppyshop.Sale, currency string) string {
	return fmt.Sprintf("Sold %d x %s for %s on %s at %s.\n",
		s.Quantity, c.NameOf(s.ProductID), s.Payment.Display(currency), s.Date, s.Time)
}

// Monthly renders monthly aggregation buckets as a markdown table.
func Monthly(buckets []puppyshop.MonthlyBucket, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Monthly Sales Performance\n\n")
	if len(buckets) == 0 {
		fmt.Fprintf(&b, "No sales data found for the specified period.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "| Month | Sales Value | Number of Sales |\n")
	fmt.Fprintf(&b, "|:---|---:|---:|\n")
	for _, bucket := range buckets {
		fmt.Fprintf(&b, "| %s | %s | %d |\n", bucket.Month, bucket.Total.Display(currency), bucket.Count)
	}
	return b.String()
}

// ProductTotals renders per-product totals, highest first.
func ProductTotals(totals []puppyshop.ProductTotal, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Total Sales by Product\n\n")
	if len(totals) == 0 {
		fmt.Fprintf(&b, "No sales data found for the specified period.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "| Product | Total Sales |\n")
	fmt.Fprintf(&b, "|:---|---:|\n")
	for _, t := range totals {
		fmt.Fprintf(&b, "| %s | %s |\n", t.Name, t.Total.Display(currency))
	}
	return b.String()
}

// Candidates renders an ambiguous catalog resolution as an indexed list for
// the prompt collaborator to present.
func Candidates(candidates []puppyshop.Product, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Multiple products found:\n")
	for i, p := range candidates {
		fmt.Fprintf(&b, "%d. ID: %s, Name: %s, Price: %s, Stock: %d\n",
			i+1, p.ID, p.Name, p.Price.Display(currency), p.Stock)
	}
	return b.String()
}
