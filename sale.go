package puppyshop

// Sale is one row of the sales file. Payment is derived from the product
// price at the time of sale and never changes afterwards.
type Sale struct {
	Date      Date   `csv:"date"`
	Time      Clock  `csv:"time"`
	ProductID string `csv:"product_id"`
	Quantity  int    `csv:"quantity"`
	Payment   Money  `csv:"payment"`
}
