package puppyshop

import "time"

// testCatalog returns a small catalog used across tests.
func testCatalog() *Catalog {
	return NewCatalog(
		Product{ID: "1", Name: "Beagle", Price: M(100), Stock: 5},
		Product{ID: "2", Name: "Labrador", Price: M(250.50), Stock: 3},
		Product{ID: "3", Name: "Black Labrador", Price: M(300), Stock: 2},
	)
}

// noon returns an instant on the given day, so recorded sales carry a
// deterministic date and time.
func noon(day string) time.Time {
	d := MustParseDate(day)
	return time.Date(d.Year(), d.Month(), d.Day(), 12, 30, 45, 0, time.UTC)
}

// saleOn builds a ledger row for query and report tests.
func saleOn(day, productID string, quantity int, payment float64) Sale {
	return Sale{
		Date:      MustParseDate(day),
		Time:      ClockOf(noon(day)),
		ProductID: productID,
		Quantity:  quantity,
		Payment:   M(payment),
	}
}

// badDate decodes an unparsable date field the way the loader would.
func badDate(field string) Date {
	var d Date
	_ = d.UnmarshalCSV(field)
	return d
}

// badMoney decodes a non-numeric payment field the way the loader would.
func badMoney(field string) Money {
	var m Money
	_ = m.UnmarshalCSV(field)
	return m
}
