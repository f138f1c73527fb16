package puppyshop

// Product is one row of the catalog file.
type Product struct {
	ID    string `csv:"id"`
	Name  string `csv:"name"`
	Price Money  `csv:"price"`
	Stock int    `csv:"stock"`
}

// AddProductInput carries the raw text answers collected by the prompt
// collaborator for a new product. The catalog performs all validation.
type AddProductInput struct {
	Name  string `validate:"required"`
	Price string `validate:"required,numeric"`
	Stock string `validate:"required,number"`
}

// ModifyProductInput carries the raw text answers for a product update.
// A blank field keeps the current value.
type ModifyProductInput struct {
	Price string `validate:"omitempty,numeric"`
	Stock string `validate:"omitempty,number"`
}
