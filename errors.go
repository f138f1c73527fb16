package puppyshop

import (
	"errors"
	"fmt"
)

// ErrEmptyCatalog is returned by Catalog.Add when there is no existing
// product to derive a new id from. Id assignment is max(existing)+1, so an
// empty catalog is a precondition violation, not something to paper over.
var ErrEmptyCatalog = errors.New("catalog is empty: cannot assign a new product id")

// ValidationError reports a malformed or out-of-range user-supplied value.
// It aborts only the offending operation; collections are left untouched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// InsufficientStockError reports a sale quantity exceeding the available stock.
type InsufficientStockError struct {
	ProductID string
	Have      int
	Want      int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for product %s: only %d available, want %d", e.ProductID, e.Have, e.Want)
}

// NotFoundError reports an id that resolves to no product.
type NotFoundError struct {
	ProductID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ProductID)
}

// StorageError reports a failure to load or save one of the data files.
type StorageError struct {
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage unavailable at %s: %v", e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
