// Package puppyshop implements the record model of a small single-shop
// inventory and sales tracker: a product catalog, an append-only sales
// ledger, a flat credential list, and the query and aggregation rules over
// them.
//
// The three collections are loaded once from flat tabular files, mutated in
// place by a single interactive session, and flushed back as a whole on
// logout. The package never reads from a terminal; the cmd package collects
// raw answers and the core validates them.
package puppyshop
