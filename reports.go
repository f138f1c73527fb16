package puppyshop

import "sort"

// MonthlyBucket is one month of aggregated sales.
type MonthlyBucket struct {
	Month Month
	Total Money
	Count int
}

// ProductTotal is the aggregated payment for one product over a window.
type ProductTotal struct {
	ProductID string
	Name      string
	Total     Money
}

// Monthly groups sales inside the window by calendar month, summing payments
// and counting rows. Buckets are returned in chronological order. Sales with
// an unparsable date or a non-numeric payment are skipped.
func (l *Ledger) Monthly(rng Range) []MonthlyBucket {
	return l.monthly(rng, "")
}

// MonthlyForProduct is Monthly restricted to sales of one product id.
func (l *Ledger) MonthlyForProduct(rng Range, productID string) []MonthlyBucket {
	return l.monthly(rng, productID)
}

func (l *Ledger) monthly(rng Range, productID string) []MonthlyBucket {
	buckets := make(map[Month]*MonthlyBucket)
	for _, s := range l.sales {
		if productID != "" && s.ProductID != productID {
			continue
		}
		if !rng.Contains(s.Date) || !s.Payment.IsValid() {
			continue
		}
		m := s.Date.MonthOf()
		b, ok := buckets[m]
		if !ok {
			b = &MonthlyBucket{Month: m}
			buckets[m] = b
		}
		b.Total = b.Total.Add(s.Payment)
		b.Count++
	}

	out := make([]MonthlyBucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month.Before(out[j].Month) })
	return out
}

// ProductTotals groups sales inside the window by product, summing payments.
// Products that no longer resolve in the catalog are dropped. Totals are
// sorted by summed payment descending; ties keep first-appearance order.
func (l *Ledger) ProductTotals(c *Catalog, rng Range) []ProductTotal {
	totals := make(map[string]*ProductTotal)
	var order []string
	for _, s := range l.sales {
		if !rng.Contains(s.Date) || !s.Payment.IsValid() {
			continue
		}
		t, ok := totals[s.ProductID]
		if !ok {
			t = &ProductTotal{ProductID: s.ProductID}
			totals[s.ProductID] = t
			order = append(order, s.ProductID)
		}
		t.Total = t.Total.Add(s.Payment)
	}

	out := make([]ProductTotal, 0, len(order))
	for _, id := range order {
		p, ok := c.Get(id)
		if !ok {
			continue
		}
		t := totals[id]
		t.Name = p.Name
		out = append(out, *t)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total.GreaterThan(out[j].Total) })
	return out
}
