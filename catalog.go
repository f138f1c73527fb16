package puppyshop

import (
	"errors"
	"iter"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
)

// UnknownProduct is the name rendered for a sale whose product id no longer
// resolves in the catalog.
const UnknownProduct = "Unknown"

var validate = validator.New()

// Resolution is the outcome of a catalog lookup. The caller branches on the
// concrete type: Found, NotFound or Ambiguous.
type Resolution interface {
	isResolution()
}

// Found carries the single product matching the search term.
type Found struct {
	Product Product
}

// NotFound reports that no product matched the search term.
type NotFound struct {
	Term string
}

// Ambiguous carries all products matching a name search. The prompt
// collaborator presents the candidates as an indexed choice and re-resolves
// by the selected id; the catalog never prompts.
type Ambiguous struct {
	Candidates []Product
}

func (Found) isResolution()     {}
func (NotFound) isResolution()  {}
func (Ambiguous) isResolution() {}

// Catalog is the in-memory table of products, in file insertion order. It is
// exclusively owned by the running session.
type Catalog struct {
	products []Product
}

// NewCatalog creates an empty catalog.
func NewCatalog(products ...Product) *Catalog {
	return &Catalog{products: products}
}

// Len returns the number of products.
func (c *Catalog) Len() int { return len(c.products) }

// Products iterates over all products in insertion order.
func (c *Catalog) Products() iter.Seq[Product] {
	return func(yield func(Product) bool) {
		for _, p := range c.products {
			if !yield(p) {
				return
			}
		}
	}
}

// Get returns the product with the given id.
func (c *Catalog) Get(id string) (Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// NameOf resolves a product id to its name, or UnknownProduct when the id is
// not in the catalog.
func (c *Catalog) NameOf(id string) string {
	if p, ok := c.Get(id); ok {
		return p.Name
	}
	return UnknownProduct
}

// Resolve looks a product up by exact id first, then by case-insensitive
// substring match on the name.
func (c *Catalog) Resolve(term string) Resolution {
	if p, ok := c.Get(term); ok {
		return Found{Product: p}
	}
	needle := strings.ToLower(term)
	var matches []Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 0:
		return NotFound{Term: term}
	case 1:
		return Found{Product: matches[0]}
	default:
		return Ambiguous{Candidates: matches}
	}
}

// Add validates the input, assigns the next free id and appends the new
// product. The catalog is unchanged when an error is returned.
func (c *Catalog) Add(in AddProductInput) (Product, error) {
	if err := validate.Struct(in); err != nil {
		return Product{}, asValidationError(err)
	}
	price, err := ParseMoney(in.Price)
	if err != nil {
		return Product{}, &ValidationError{Field: "price", Reason: "must be a number"}
	}
	if price.IsNegative() {
		return Product{}, &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	stock, err := cast.ToIntE(in.Stock)
	if err != nil {
		return Product{}, &ValidationError{Field: "stock", Reason: "must be a whole number"}
	}
	if stock < 0 {
		return Product{}, &ValidationError{Field: "stock", Reason: "must not be negative"}
	}
	id, err := c.nextID()
	if err != nil {
		return Product{}, err
	}
	p := Product{ID: id, Name: in.Name, Price: price, Stock: stock}
	c.products = append(c.products, p)
	return p, nil
}

// Modify updates the price and/or stock of the product with the given id.
// Blank fields keep their current value. Both fields are validated before
// either is touched, so a failed call leaves the product untouched.
func (c *Catalog) Modify(id string, in ModifyProductInput) (Product, error) {
	i := c.index(id)
	if i < 0 {
		return Product{}, &NotFoundError{ProductID: id}
	}
	if err := validate.Struct(in); err != nil {
		return Product{}, asValidationError(err)
	}

	price := c.products[i].Price
	if in.Price != "" {
		parsed, err := ParseMoney(in.Price)
		if err != nil {
			return Product{}, &ValidationError{Field: "price", Reason: "must be a number"}
		}
		if parsed.IsNegative() {
			return Product{}, &ValidationError{Field: "price", Reason: "must not be negative"}
		}
		price = parsed
	}

	stock := c.products[i].Stock
	if in.Stock != "" {
		parsed, err := cast.ToIntE(in.Stock)
		if err != nil {
			return Product{}, &ValidationError{Field: "stock", Reason: "must be a whole number"}
		}
		if parsed < 0 {
			return Product{}, &ValidationError{Field: "stock", Reason: "must not be negative"}
		}
		stock = parsed
	}

	c.products[i].Price = price
	c.products[i].Stock = stock
	return c.products[i], nil
}

// nextID assigns max(existing ids)+1. An empty catalog has no maximum to
// build on and is surfaced as ErrEmptyCatalog.
func (c *Catalog) nextID() (string, error) {
	if len(c.products) == 0 {
		return "", ErrEmptyCatalog
	}
	max := 0
	for _, p := range c.products {
		if n := cast.ToInt(p.ID); n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1), nil
}

func (c *Catalog) index(id string) int {
	for i, p := range c.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// asValidationError converts a validator error into the taxonomy error.
func asValidationError(err error) error {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		fe := ve[0]
		reason := "malformed value"
		switch fe.Tag() {
		case "required":
			reason = "must not be empty"
		case "numeric":
			reason = "must be a number"
		case "number":
			reason = "must be a whole number"
		}
		return &ValidationError{Field: strings.ToLower(fe.Field()), Reason: reason}
	}
	return err
}
