package puppyshop

import (
	"iter"
	"strings"
	"time"
)

// Ledger is the in-memory, append-only table of sales, in file insertion
// order (chronological as recorded). It is exclusively owned by the running
// session.
type Ledger struct {
	sales []Sale
}

// NewLedger creates a ledger, optionally pre-loaded with sales.
func NewLedger(sales ...Sale) *Ledger {
	return &Ledger{sales: sales}
}

// Len returns the number of sales.
func (l *Ledger) Len() int { return len(l.sales) }

// All iterates over all sales in insertion order.
func (l *Ledger) All() iter.Seq[Sale] {
	return func(yield func(Sale) bool) {
		for _, s := range l.sales {
			if !yield(s) {
				return
			}
		}
	}
}

// RecordSale validates the requested quantity against the product's stock,
// decrements the stock, and appends a sale stamped with the given instant.
// This is the only mutating operation on the ledger. On error neither the
// catalog nor the ledger is changed.
func (l *Ledger) RecordSale(c *Catalog, productID string, quantity int, at time.Time) (Sale, error) {
	i := c.index(productID)
	if i < 0 {
		return Sale{}, &NotFoundError{ProductID: productID}
	}
	if quantity <= 0 {
		return Sale{}, &ValidationError{Field: "quantity", Reason: "must be a positive number"}
	}
	p := c.products[i]
	if quantity > p.Stock {
		return Sale{}, &InsufficientStockError{ProductID: productID, Have: p.Stock, Want: quantity}
	}

	c.products[i].Stock -= quantity
	sale := Sale{
		Date:      DateOf(at),
		Time:      ClockOf(at),
		ProductID: productID,
		Quantity:  quantity,
		Payment:   p.Price.MulQuantity(quantity),
	}
	l.sales = append(l.sales, sale)
	return sale, nil
}

// OnDate iterates over sales recorded exactly on the given date.
func (l *Ledger) OnDate(d Date) iter.Seq[Sale] {
	return func(yield func(Sale) bool) {
		for _, s := range l.sales {
			if s.Date == d {
				if !yield(s) {
					return
				}
			}
		}
	}
}

// ByProductName iterates over sales whose product name contains term,
// case-insensitively. Product ids missing from the catalog resolve to the
// UnknownProduct sentinel before matching, so rows are never dropped for an
// unresolved id.
func (l *Ledger) ByProductName(c *Catalog, term string) iter.Seq[Sale] {
	needle := strings.ToLower(term)
	return func(yield func(Sale) bool) {
		for _, s := range l.sales {
			if strings.Contains(strings.ToLower(c.NameOf(s.ProductID)), needle) {
				if !yield(s) {
					return
				}
			}
		}
	}
}

// ByProductNameInRange is ByProductName additionally restricted to the
// inclusive date range. Sales with an unparsable date are silently skipped.
func (l *Ledger) ByProductNameInRange(c *Catalog, term string, rng Range) iter.Seq[Sale] {
	needle := strings.ToLower(term)
	return func(yield func(Sale) bool) {
		for _, s := range l.sales {
			if !rng.Contains(s.Date) {
				continue
			}
			if strings.Contains(strings.ToLower(c.NameOf(s.ProductID)), needle) {
				if !yield(s) {
					return
				}
			}
		}
	}
}
